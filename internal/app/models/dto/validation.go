package dto

import (
	"encoding/json"
	"errors"
	"reflect"
	"strings"
	"sync"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

var setupValidatorOnce sync.Once

// SetupValidator makes gin's validator report wire field names (json tag,
// falling back to form tag) instead of Go struct field names.
func SetupValidator() {
	setupValidatorOnce.Do(func() {
		v, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			return
		}
		v.RegisterTagNameFunc(wireFieldName)
	})
}

func wireFieldName(field reflect.StructField) string {
	for _, tag := range []string{"json", "form"} {
		name := strings.SplitN(field.Tag.Get(tag), ",", 2)[0]
		if name == "-" {
			continue
		}
		if name != "" {
			return name
		}
	}
	return field.Name
}

// HandleValidationError converts a binding error into an error detail with a
// field -> message map.
func HandleValidationError(err error) *ErrorDetail {
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		fields := make(map[string]string, len(validationErrs))
		for _, fe := range validationErrs {
			fields[fe.Field()] = formatValidationError(fe)
		}
		return NewErrorDetail(ErrorCodeValidationFailed, "Validation failed").WithDetails(fields)
	}

	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) && typeErr.Field != "" {
		return NewErrorDetail(ErrorCodeValidationFailed, "Validation failed").
			WithDetails(map[string]string{typeErr.Field: "Invalid type, expected " + typeErr.Type.String()})
	}

	return NewErrorDetail(ErrorCodeValidationFailed, "Invalid request format").WithDetails(err.Error())
}

// formatValidationError creates a human-readable validation error message
func formatValidationError(e validator.FieldError) string {
	switch e.Tag() {
	case "required":
		return "This field is required"
	case "max":
		return "Ensure this field has no more than " + e.Param() + " characters"
	case "min":
		return "Ensure this field has at least " + e.Param() + " characters"
	case "email":
		return "Enter a valid email address"
	case "oneof":
		return "Must be one of: " + strings.Join(strings.Fields(e.Param()), ", ")
	case "gte":
		return "Ensure this value is greater than or equal to " + e.Param()
	case "gt":
		return "Ensure this value is greater than " + e.Param()
	case "lte":
		return "Ensure this value is less than or equal to " + e.Param()
	case "datetime":
		return "Invalid format, use " + datetimeLayoutName(e.Param())
	default:
		return "Invalid value"
	}
}

func datetimeLayoutName(layout string) string {
	switch layout {
	case DateLayout:
		return "YYYY-MM-DD"
	case TimeLayout:
		return "hh:mm"
	default:
		return layout
	}
}
