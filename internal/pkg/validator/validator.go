package validator

import (
	"reflect"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate *validator.Validate

var phoneRegex = regexp.MustCompile(`^\d{10}$`)

func init() {
	validate = validator.New()

	// Use JSON tag names in error messages
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	// Phone numbers are exactly 10 digits
	validate.RegisterValidation("phone10", func(fl validator.FieldLevel) bool {
		return phoneRegex.MatchString(fl.Field().String())
	})
}

// Error is a validation failure carrying the first violation message.
// Services return it so callers can separate input problems from
// persistence failures without inspecting strings.
type Error struct {
	Message string
}

func (e *Error) Error() string {
	return e.Message
}

// First validates a struct and returns the first violation as *Error, or
// nil when the struct is valid. Violations are reported in struct field
// declaration order, and tag order within a field, so the message for a
// given input is deterministic.
func First(s interface{}) *Error {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}

	violations, ok := err.(validator.ValidationErrors)
	if !ok || len(violations) == 0 {
		return &Error{Message: "invalid input"}
	}

	return &Error{Message: message(violations[0])}
}

func message(v validator.FieldError) string {
	field := v.Field()
	switch v.Tag() {
	case "required":
		return field + " is required"
	case "email":
		return field + " must be a valid email address"
	case "phone10":
		return field + " must contain exactly 10 digits"
	case "uuid4", "uuid":
		return field + " must be a valid UUID"
	case "numeric":
		return field + " must be numeric"
	case "gt":
		return field + " must be greater than " + v.Param()
	case "min":
		return field + " must be at least " + v.Param() + " characters"
	case "max":
		return field + " must be at most " + v.Param() + " characters"
	case "len":
		return field + " must be exactly " + v.Param() + " characters"
	default:
		return field + " is invalid"
	}
}
