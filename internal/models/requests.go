package models

import (
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = newValidator()

// newValidator reports field errors under their json names.
func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

type CreateRoleRequest struct {
	Title        string   `json:"title" validate:"required"`
	Department   *string  `json:"department"`
	Location     *string  `json:"location"`
	Level        *string  `json:"level"`
	Description  string   `json:"description" validate:"required"`
	Requirements []string `json:"requirements"`
}

type ApplyRequest struct {
	Name       string  `json:"name" validate:"required"`
	Email      string  `json:"email" validate:"required,email"`
	RoleID     *string `json:"role_id"`
	ResumeText *string `json:"resume_text"`
}

// ChatRequest.Message must be present but may be empty.
type ChatRequest struct {
	InterviewID string  `json:"interview_id" validate:"required"`
	Message     *string `json:"message" validate:"required"`
}

// CodingRunRequest.Code must be present but may be empty.
type CodingRunRequest struct {
	InterviewID string  `json:"interview_id" validate:"required"`
	Language    string  `json:"language" validate:"required"`
	Code        *string `json:"code" validate:"required"`
	Input       string  `json:"input"`
}

// Validate validates the CreateRoleRequest using the validator.
func (r *CreateRoleRequest) Validate() error {
	return validate.Struct(r)
}

// Validate validates the ApplyRequest using the validator.
func (r *ApplyRequest) Validate() error {
	return validate.Struct(r)
}

// Validate validates the ChatRequest using the validator.
func (r *ChatRequest) Validate() error {
	return validate.Struct(r)
}

// Validate validates the CodingRunRequest using the validator.
func (r *CodingRunRequest) Validate() error {
	return validate.Struct(r)
}
