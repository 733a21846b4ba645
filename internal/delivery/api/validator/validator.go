// Package validator adapts go-playground/validator to echo.Validator for
// request DTOs that never reach the domain validators, such as query filters.
package validator

import (
	"reflect"
	"strings"

	domainerrors "foodcritic/internal/domain/errors"
	"foodcritic/internal/errors"

	govalidator "github.com/go-playground/validator/v10"
)

// EchoValidator implements echo.Validator.
type EchoValidator struct {
	validate *govalidator.Validate
}

// New returns an echo validator that reports failures by their query, form or json name.
func New() *EchoValidator {
	validate := govalidator.New()
	validate.RegisterTagNameFunc(fieldName)

	return &EchoValidator{validate: validate}
}

// Validate checks i and turns field failures into a *ValidationError.
func (v *EchoValidator) Validate(i any) error {
	err := v.validate.Struct(i)
	if err == nil {
		return nil
	}

	var fieldErrs govalidator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return errors.Wrap(err, "request validation failed")
	}

	reasons := make(map[string]string, len(fieldErrs))
	for _, fe := range fieldErrs {
		if _, seen := reasons[fe.Field()]; seen {
			continue
		}
		reasons[fe.Field()] = describe(fe)
	}

	return domainerrors.NewValidationError(reasons)
}

func fieldName(field reflect.StructField) string {
	for _, tag := range []string{"query", "param", "json"} {
		name, _, _ := strings.Cut(field.Tag.Get(tag), ",")
		if name != "" && name != "-" {
			return name
		}
	}

	return field.Name
}

func describe(fe govalidator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "must not be empty"
	case "gt":
		return "must be greater than " + fe.Param()
	case "gte", "min":
		return "must be at least " + fe.Param()
	case "email":
		return "must be a valid email address"
	default:
		return "failed on the '" + fe.Tag() + "' rule"
	}
}
