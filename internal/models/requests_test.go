package models

import (
	"errors"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestApplyRequest_Validation(t *testing.T) {
	tests := []struct {
		name      string
		request   ApplyRequest
		wantErr   bool
		wantField string
		wantTag   string
	}{
		{
			name:    "valid request",
			request: ApplyRequest{Name: "Ada Lovelace", Email: "ada@example.com"},
		},
		{
			name:      "missing name",
			request:   ApplyRequest{Email: "ada@example.com"},
			wantErr:   true,
			wantField: "name",
			wantTag:   "required",
		},
		{
			name:      "missing email",
			request:   ApplyRequest{Name: "Ada Lovelace"},
			wantErr:   true,
			wantField: "email",
			wantTag:   "required",
		},
		{
			name:      "invalid email format",
			request:   ApplyRequest{Name: "Ada Lovelace", Email: "not-an-email"},
			wantErr:   true,
			wantField: "email",
			wantTag:   "email",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.request.Validate()
			if !tt.wantErr {
				assert.NoError(t, err)
				return
			}

			var verrs validator.ValidationErrors
			require.True(t, errors.As(err, &verrs))
			require.NotEmpty(t, verrs)
			assert.Equal(t, tt.wantField, verrs[0].Field())
			assert.Equal(t, tt.wantTag, verrs[0].Tag())
		})
	}
}

func TestCreateRoleRequest_Validation(t *testing.T) {
	assert.NoError(t, (&CreateRoleRequest{Title: "SRE", Description: "Keep it running"}).Validate())

	err := (&CreateRoleRequest{Description: "Keep it running"}).Validate()
	var verrs validator.ValidationErrors
	require.True(t, errors.As(err, &verrs))
	assert.Equal(t, "title", verrs[0].Field())

	err = (&CreateRoleRequest{Title: "SRE"}).Validate()
	require.True(t, errors.As(err, &verrs))
	assert.Equal(t, "description", verrs[0].Field())
}

func strPtr(s string) *string { return &s }

func TestCodingRunRequest_Validation(t *testing.T) {
	tests := []struct {
		name      string
		request   CodingRunRequest
		wantField string
	}{
		{name: "valid request", request: CodingRunRequest{InterviewID: "abc", Language: "go", Code: strPtr("x")}},
		{name: "empty code", request: CodingRunRequest{InterviewID: "abc", Language: "go", Code: strPtr("")}},
		{name: "missing interview id", request: CodingRunRequest{Language: "go", Code: strPtr("x")}, wantField: "interview_id"},
		{name: "missing language", request: CodingRunRequest{InterviewID: "abc", Code: strPtr("x")}, wantField: "language"},
		{name: "missing code", request: CodingRunRequest{InterviewID: "abc", Language: "go"}, wantField: "code"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.request.Validate()
			if tt.wantField == "" {
				assert.NoError(t, err)
				return
			}

			var verrs validator.ValidationErrors
			require.True(t, errors.As(err, &verrs))
			assert.Equal(t, tt.wantField, verrs[0].Field())
			assert.Equal(t, "required", verrs[0].Tag())
		})
	}
}

func TestChatRequest_Validation(t *testing.T) {
	assert.NoError(t, (&ChatRequest{InterviewID: "abc", Message: strPtr("hello")}).Validate())
	assert.NoError(t, (&ChatRequest{InterviewID: "abc", Message: strPtr("")}).Validate())

	err := (&ChatRequest{InterviewID: "abc"}).Validate()
	var verrs validator.ValidationErrors
	require.True(t, errors.As(err, &verrs))
	assert.Equal(t, "message", verrs[0].Field())

	err = (&ChatRequest{Message: strPtr("hello")}).Validate()
	require.True(t, errors.As(err, &verrs))
	assert.Equal(t, "interview_id", verrs[0].Field())
}
