// Package validator runs go-playground/validator tag checks over configuration
// and registry input.
//
// Field errors name the failing field by its dotted path below the root
// struct and the rule it broke. Values are never echoed since configuration
// carries credentials.
package validator

import (
	"errors"
	"fmt"
	"strings"

	gvalidator "github.com/go-playground/validator/v10"
)

// ErrValidationFailed heads the joined error returned by Validate.
var ErrValidationFailed = errors.New("struct validation failed")

var validator = gvalidator.New(gvalidator.WithRequiredStructEnabled())

func describe(fe gvalidator.FieldError) error {
	field := fe.StructNamespace()
	if _, rest, ok := strings.Cut(field, "."); ok {
		field = rest
	}

	rule := fe.Tag()
	if fe.Param() != "" {
		rule += "=" + fe.Param()
	}

	return fmt.Errorf("'%s' failed the '%s' rule", field, rule)
}

func formatError(err error) error {
	var fieldErrs gvalidator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return err
	}

	errs := make([]error, 0, len(fieldErrs)+1)
	errs = append(errs, ErrValidationFailed)
	for _, fe := range fieldErrs {
		errs = append(errs, describe(fe))
	}

	return errors.Join(errs...)
}

// RegisterStringValidation registers tag as a struct tag whose fields are
// valid when fn accepts their string value. It must be called during package
// initialization, before any concurrent call to Validate.
func RegisterStringValidation(tag string, fn func(string) bool) error {
	return validator.RegisterValidation(tag, func(fl gvalidator.FieldLevel) bool {
		return fn(fl.Field().String())
	})
}

// Validate checks v against its `validate` tags. On failure the returned
// error matches ErrValidationFailed and lists every broken field.
func Validate(v any) error {
	if err := validator.Struct(v); err != nil {
		return formatError(err)
	}

	return nil
}
