package validation

import (
	"fmt"

	"github.com/go-playground/validator/v10"
)

// validate is a singleton validator instance
var validate = validator.New()

// Struct validates a tagged struct and rewrites the first violation into a
// caller-friendly message naming the offending field.
func Struct(v any) error {
	return formatValidationError(validate.Struct(v))
}

func formatValidationError(err error) error {
	if err == nil {
		return nil
	}

	validationErrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return err
	}

	// Return the first validation error in a user-friendly format
	for _, e := range validationErrs {
		field := e.Field()
		tag := e.Tag()
		param := e.Param()

		switch tag {
		case "required":
			return fmt.Errorf("%s: field is required", field)
		case "min":
			return fmt.Errorf("%s: must be at least %s", field, param)
		case "max":
			return fmt.Errorf("%s: must be at most %s", field, param)
		case "gte":
			return fmt.Errorf("%s: must be >= %s", field, param)
		case "lte":
			return fmt.Errorf("%s: must be <= %s", field, param)
		default:
			return fmt.Errorf("%s: failed %s validation", field, tag)
		}
	}
	return err
}
