package handlers

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/legalpulse/survey-api/internal/validation"
)

// ParseValidationErrors converts binding tag failures into the same
// field/kind/message shape used for rejected submissions
func ParseValidationErrors(err error) []validation.Violation {
	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return nil
	}

	violations := make([]validation.Violation, 0, len(validationErrors))
	for _, fieldError := range validationErrors {
		violations = append(violations, validation.Violation{
			Field:   fieldError.Field(),
			Kind:    violationKind(fieldError),
			Message: getErrorMessage(fieldError),
		})
	}

	return violations
}

func violationKind(fe validator.FieldError) validation.ViolationKind {
	switch fe.Tag() {
	case "required":
		return validation.KindMissingRequired
	case "oneof":
		return validation.KindInvalidEnum
	case "min", "max", "gte", "lte":
		return validation.KindOutOfRange
	default:
		return validation.KindInvalidFormat
	}
}

func getErrorMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return fe.Field() + " is required"
	case "min", "gte":
		return fe.Field() + " must be at least " + fe.Param()
	case "max", "lte":
		return fe.Field() + " must not exceed " + fe.Param()
	case "oneof":
		return fe.Field() + " must be one of: " + fe.Param()
	default:
		return fe.Field() + " is invalid"
	}
}
