package handlers

import (
	"github.com/go-playground/validator/v10"
)

// CustomValidator wraps the go-playground/validator library to implement Echo's Validator interface.
type CustomValidator struct {
	validator *validator.Validate
}

// NewValidator creates a new CustomValidator.
func NewValidator() *CustomValidator {
	return &CustomValidator{validator: validator.New()}
}

// Validate implements the echo.Validator interface.
func (cv *CustomValidator) Validate(i any) error {
	return cv.validator.Struct(i)
}

// FragmentRequest is the DTO of the tab fragment endpoints. Unknown slugs are
// accepted and resolve to the first tab; only oversized ones are rejected.
type FragmentRequest struct {
	Slug string `param:"slug" validate:"max=64"`
}
