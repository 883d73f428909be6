// Package validator adapts go-playground/validator to echo's Validator
// interface.
package validator

import (
	domainerrors "emporia/internal/domain/errors"

	"github.com/go-playground/validator/v10"
)

// RequestValidator wraps a shared validator instance.
type RequestValidator struct {
	validate *validator.Validate
}

// New builds the validator used by the HTTP server.
func New() *RequestValidator {
	return &RequestValidator{
		validate: validator.New(validator.WithRequiredStructEnabled()),
	}
}

// Validate implements echo.Validator. Failures surface as the shared
// validation error so the error handler renders a consistent envelope.
func (v *RequestValidator) Validate(i any) error {
	if err := v.validate.Struct(i); err != nil {
		return domainerrors.ErrValidationRejected.WithDetails(err.Error())
	}

	return nil
}
