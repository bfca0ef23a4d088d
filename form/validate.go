package form

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

// FieldErrors maps a form field name to the message shown beneath it.
type FieldErrors map[string]string

func (errs FieldErrors) Has(field string) bool {
	_, ok := errs[field]
	return ok
}

func (errs FieldErrors) Get(field string) string {
	return errs[field]
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	// Errors are keyed by the name the field has in the HTML form.
	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name := strings.SplitN(field.Tag.Get("form"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		if name == "" {
			return field.Name
		}
		return name
	})
	return v
}

// Validate checks the struct against its `validate` tags. The result is nil
// if everything passed.
func Validate(value any) FieldErrors {
	err := validate.Struct(value)
	if err == nil {
		return nil
	}

	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		// Only happens for programming errors, such as passing a non-struct.
		panic(fmt.Sprintf("form: cant validate %T: %v", value, err))
	}

	structType := reflect.Indirect(reflect.ValueOf(value)).Type()
	errs := make(FieldErrors, len(validationErrors))
	for _, fieldError := range validationErrors {
		if errs.Has(fieldError.Field()) {
			continue
		}
		errs[fieldError.Field()] = message(structType, fieldError)
	}
	return errs
}

func message(structType reflect.Type, fieldError validator.FieldError) string {
	label := fieldError.Field()
	if field, ok := structType.FieldByName(fieldError.StructField()); ok {
		if tag := field.Tag.Get("label"); tag != "" {
			label = tag
		}
	}

	switch fieldError.Tag() {
	case "required":
		return label + " is required"
	case "email":
		return "Invalid email"
	case "min":
		return fmt.Sprintf("%s must be at least %s characters", label, fieldError.Param())
	case "max":
		return fmt.Sprintf("%s must be at most %s characters", label, fieldError.Param())
	case "startswith":
		return fmt.Sprintf("%s must start with %s", label, fieldError.Param())
	default:
		return label + " is invalid"
	}
}
