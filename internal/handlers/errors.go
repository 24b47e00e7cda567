package handlers

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// ErrValidation indicates request validation failure
type ErrValidation struct {
	Field   string
	Message string
}

func (e *ErrValidation) Error() string {
	return fmt.Sprintf("validation error: %s - %s", e.Field, e.Message)
}

// HTTPStatus returns the appropriate HTTP status code for an error
func HTTPStatus(err error) int {
	var validationErr *ErrValidation
	var fiberErr *fiber.Error

	switch {
	case errors.As(err, &validationErr):
		return http.StatusBadRequest
	case errors.As(err, &fiberErr):
		return fiberErr.Code
	default:
		return http.StatusInternalServerError
	}
}

// fromValidator reports the first failing field of a validator error.
func fromValidator(err error) error {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return &ErrValidation{Field: "body", Message: err.Error()}
	}

	fe := verrs[0]
	message := fe.Field() + " is required"
	if fe.Tag() != "required" {
		message = fmt.Sprintf("%s must be a valid %s", fe.Field(), fe.Tag())
	}
	return &ErrValidation{Field: fe.Field(), Message: message}
}

func requiredQuery(c *fiber.Ctx, key string) (string, error) {
	value := c.Query(key)
	if value == "" {
		return "", &ErrValidation{Field: key, Message: key + " is required"}
	}
	return value, nil
}

func invalidPayload() error {
	return &ErrValidation{Field: "body", Message: "Invalid request payload"}
}

// ErrorHandler renders every error returned by a handler as JSON.
func ErrorHandler(c *fiber.Ctx, err error) error {
	code := HTTPStatus(err)

	body := fiber.Map{
		"error": err.Error(),
		"code":  code,
	}

	var validationErr *ErrValidation
	if errors.As(err, &validationErr) {
		body["error"] = validationErr.Message
		body["field"] = validationErr.Field
	}

	return c.Status(code).JSON(body)
}
