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
func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}

// SignupRequest is the sign-up form. Nothing is validated here; the
// activities service decides what it accepts.
type SignupRequest struct {
	Email    string `form:"email"`
	Activity string `form:"activity"`
}

// RemoveRequest is posted by a participant's delete button. Both fields come
// from hidden inputs, so a missing one means the request was not ours.
type RemoveRequest struct {
	Activity string `form:"activity" validate:"required"`
	Email    string `form:"email" validate:"required"`
}
