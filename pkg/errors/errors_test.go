package errors

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConstructorsWrapSentinels(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		target error
		text   string
	}{
		{"not found", NotFoundError("lawyer survey"), ErrNotFound, "lawyer survey not found"},
		{"conflict", ConflictError("email already submitted"), ErrConflict, "email already submitted: conflict"},
		{"invalid input", InvalidInputError("sort", "unknown field"), ErrInvalidInput, "sort: unknown field: invalid input"},
		{"transition", InvalidTransitionError("archived"), ErrInvalidTransition, `invalid status transition: "archived" is not a lifecycle status`},
		{"internal", InternalError("boom"), ErrInternal, "boom: internal error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.True(t, Is(tt.err, tt.target))
			assert.Equal(t, tt.text, tt.err.Error())

			wrapped := fmt.Errorf("outer: %w", tt.err)
			assert.True(t, Is(wrapped, tt.target))
		})
	}
}

func TestSentinelsAreDistinct(t *testing.T) {
	assert.False(t, Is(ConflictError("dup"), ErrInvalidInput))
	assert.False(t, Is(InvalidTransitionError("x"), ErrInvalidInput))
	assert.False(t, Is(NotFoundError("x"), ErrConflict))
}
