package service

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

var (
	ErrMissingField     = errors.New("missing required field")
	ErrNoSchedule       = errors.New("inputs do not produce a schedule")
	ErrTooManyScenarios = errors.New("too many scenarios")
)

// ValidationError lists the form fields that were left empty.
type ValidationError struct {
	Fields []string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", ErrMissingField, strings.Join(e.Fields, ", "))
}

func (e *ValidationError) Unwrap() error {
	return ErrMissingField
}

// NewValidator returns a validator that reports fields by their JSON names.
func NewValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" || name == "" {
			return fld.Name
		}
		return name
	})
	return v
}

// validateForm only checks presence; the values themselves are sanitized
// later and never rejected.
func validateForm(v *validator.Validate, form any) error {
	err := v.Struct(form)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return fmt.Errorf("validate form: %w", err)
	}

	fields := make([]string, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		fields = append(fields, fe.Field())
	}
	return &ValidationError{Fields: fields}
}
