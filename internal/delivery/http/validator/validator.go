// Package validator adapts go-playground/validator to Echo's Validator interface.
package validator

import (
	domainerrors "homeplate/internal/domain/errors"

	"github.com/go-playground/validator/v10"
)

// echoValidator wraps a validator instance for request struct validation.
type echoValidator struct {
	validate *validator.Validate
}

// New creates the Echo validator used by the HTTP server.
func New() *echoValidator {
	return &echoValidator{
		validate: validator.New(validator.WithRequiredStructEnabled()),
	}
}

// Validate implements echo.Validator. Validation failures surface as the
// shared validation error so the error handler renders them uniformly.
func (v *echoValidator) Validate(i any) error {
	if err := v.validate.Struct(i); err != nil {
		return domainerrors.ErrValidationFailed.WithDetails(err.Error())
	}

	return nil
}
