package http

import (
	"github.com/go-playground/validator/v10"
)

// requestValidator adapts go-playground/validator to echo's Validator
// interface.
type requestValidator struct {
	validate *validator.Validate
}

// NewRequestValidator creates the validator installed on the echo instance.
func NewRequestValidator() *requestValidator {
	return &requestValidator{validate: validator.New()}
}

// Validate implements echo.Validator.
func (v *requestValidator) Validate(i any) error {
	return v.validate.Struct(i)
}
