package services

import (
	"bytes"
	"mime/multipart"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fileHeader(t *testing.T, content []byte) *multipart.FileHeader {
	t.Helper()

	var body bytes.Buffer
	w := multipart.NewWriter(&body)
	part, err := w.CreateFormFile("file", "resume.pdf")
	require.NoError(t, err)
	_, err = part.Write(content)
	require.NoError(t, err)
	require.NoError(t, w.Close())

	form, err := multipart.NewReader(&body, w.Boundary()).ReadForm(1 << 20)
	require.NoError(t, err)
	t.Cleanup(func() { _ = form.RemoveAll() })

	return form.File["file"][0]
}

func TestResumeService_ExtractText(t *testing.T) {
	svc := NewResumeService(1024)

	text, err := svc.ExtractText(fileHeader(t, []byte("%PDF-1.4 not really parsed")))
	require.NoError(t, err)
	assert.Equal(t, "Extracted 26 bytes of resume text. Skills: React, Python, SQL", text)

	text, err = svc.ExtractText(fileHeader(t, []byte{}))
	require.NoError(t, err)
	assert.Equal(t, "Extracted 0 bytes of resume text. Skills: React, Python, SQL", text)
}

func TestResumeService_TooLarge(t *testing.T) {
	svc := NewResumeService(4)

	_, err := svc.ExtractText(fileHeader(t, []byte("0123456789")))
	assert.ErrorIs(t, err, ErrFileTooLarge)
}
