// Package validator adapts go-playground/validator to echo's Validator hook.
package validator

import (
	domainerrors "pantry/internal/domain/errors"

	playground "github.com/go-playground/validator/v10"
)

// CustomValidator wraps a single shared validator instance. The instance
// caches struct metadata, so it must be reused across requests.
type CustomValidator struct {
	validate *playground.Validate
}

// New creates the validator used by the echo server.
func New() *CustomValidator {
	return &CustomValidator{
		validate: playground.New(playground.WithRequiredStructEnabled()),
	}
}

// Validate checks the bound request payload against its struct tags. Failures
// surface as a 400 through the central error handler.
func (v *CustomValidator) Validate(i any) error {
	if err := v.validate.Struct(i); err != nil {
		return domainerrors.ErrValidationFailed.WrapMessage(err.Error())
	}

	return nil
}
