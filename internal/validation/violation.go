package validation

import (
	"fmt"
	"strings"

	apperrors "github.com/legalpulse/survey-api/pkg/errors"
)

// ViolationKind is the stable, machine-checkable category of a field violation
type ViolationKind string

const (
	KindMissingRequired ViolationKind = "missing_required"
	KindInvalidEnum     ViolationKind = "invalid_enum"
	KindInvalidType     ViolationKind = "invalid_type"
	KindOutOfRange      ViolationKind = "out_of_range"
	KindEmptyCollection ViolationKind = "empty_collection"
	KindInvalidFormat   ViolationKind = "invalid_format"
)

// Violation is one failed field rule
type Violation struct {
	Field   string        `json:"field"`
	Kind    ViolationKind `json:"kind"`
	Message string        `json:"message"`
}

func newViolation(field string, kind ViolationKind, format string, args ...any) Violation {
	return Violation{Field: field, Kind: kind, Message: fmt.Sprintf(format, args...)}
}

// Error is a rejected submission carrying every violated rule.
// It unwraps to ErrInvalidInput.
type Error struct {
	Record     string
	Violations []Violation
}

func (e *Error) Error() string {
	parts := make([]string, 0, len(e.Violations))
	for _, v := range e.Violations {
		parts = append(parts, v.Message)
	}
	return fmt.Sprintf("%s validation failed: %s", e.Record, strings.Join(parts, "; "))
}

func (e *Error) Unwrap() error {
	return apperrors.ErrInvalidInput
}

// Fields returns the violated field names in evaluation order
func (e *Error) Fields() []string {
	fields := make([]string, 0, len(e.Violations))
	for _, v := range e.Violations {
		fields = append(fields, v.Field)
	}
	return fields
}

// Has reports whether field was rejected with kind
func (e *Error) Has(field string, kind ViolationKind) bool {
	for _, v := range e.Violations {
		if v.Field == field && v.Kind == kind {
			return true
		}
	}
	return false
}
