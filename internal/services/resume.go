package services

import (
	"errors"
	"fmt"
	"io"
	"mime/multipart"
)

// ErrFileTooLarge is returned when an upload exceeds the configured limit.
var ErrFileTooLarge = errors.New("file too large")

// ResumeService stands in for resume parsing. It never looks inside the file;
// it only measures it.
type ResumeService interface {
	ExtractText(file *multipart.FileHeader) (string, error)
}

type resumeService struct {
	maxFileSize int64
}

func NewResumeService(maxFileSize int64) ResumeService {
	return &resumeService{
		maxFileSize: maxFileSize,
	}
}

func (s *resumeService) ExtractText(file *multipart.FileHeader) (string, error) {
	if s.maxFileSize > 0 && file.Size > s.maxFileSize {
		return "", fmt.Errorf("%w: max size %d bytes", ErrFileTooLarge, s.maxFileSize)
	}

	src, err := file.Open()
	if err != nil {
		return "", fmt.Errorf("failed to open uploaded file: %w", err)
	}
	defer src.Close()

	n, err := io.Copy(io.Discard, src)
	if err != nil {
		return "", fmt.Errorf("failed to read uploaded file: %w", err)
	}

	return PlaceholderResumeText(n), nil
}

func PlaceholderResumeText(size int64) string {
	return fmt.Sprintf("Extracted %d bytes of resume text. Skills: React, Python, SQL", size)
}
