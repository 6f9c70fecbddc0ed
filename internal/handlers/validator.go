package handlers

import (
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

// FormValidator implements echo.Validator for form DTOs. Validation errors name
// fields after their form tag, so they match what the browser posted.
type FormValidator struct {
	validator *validator.Validate
}

// NewValidator creates a FormValidator.
func NewValidator() *FormValidator {
	v := validator.New()
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("form"), ",")
		if name == "" || name == "-" {
			return f.Name
		}
		return name
	})
	return &FormValidator{validator: v}
}

// Validate implements echo.Validator.
func (fv *FormValidator) Validate(i any) error {
	return fv.validator.Struct(i)
}
