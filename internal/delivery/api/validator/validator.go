// Package validator adapts go-playground/validator to echo.Validator.
package validator

import (
	"challengehub/internal/errors"

	"github.com/go-playground/validator/v10"
)

// CustomValidator implements echo.Validator.
type CustomValidator struct {
	validator *validator.Validate
}

// New creates a validator that reports the first failing field by its json name.
func New() *CustomValidator {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(jsonTagName)

	return &CustomValidator{validator: v}
}

// Validate checks i against its validate tags.
func (cv *CustomValidator) Validate(i any) error {
	if err := cv.validator.Struct(i); err != nil {
		var fieldErrs validator.ValidationErrors
		if errors.As(err, &fieldErrs) && len(fieldErrs) > 0 {
			return errors.Errorf("%s is %s", fieldErrs[0].Field(), fieldErrs[0].Tag())
		}

		return errors.WithStack(err)
	}

	return nil
}
