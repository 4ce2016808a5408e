package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/legalpulse/survey-api/internal/validation"
	apperrors "github.com/legalpulse/survey-api/pkg/errors"
)

// attachError attaches err to the gin context so the observability middleware
// can include the reason in the request log. c.Error() returns *gin.Error (not
// the error interface), so we suppress errcheck here intentionally.
func attachError(c *gin.Context, err error) {
	if err != nil {
		_ = c.Error(err) //nolint:errcheck
	}
}

// respondError sends an error JSON response and attaches the error to the gin context
// so the observability middleware can include the reason in the request log.
func respondError(c *gin.Context, status int, message string, err error) {
	attachError(c, err)
	c.JSON(status, gin.H{"error": message})
}

// respondErrorWithDetails sends an error response with an additional details field.
func respondErrorWithDetails(c *gin.Context, status int, message string, details any, err error) {
	attachError(c, err)
	c.JSON(status, gin.H{"error": message, "details": details})
}

// respondServiceError maps a service error onto its HTTP status
func respondServiceError(c *gin.Context, err error) {
	var verr *validation.Error
	switch {
	case apperrors.As(err, &verr):
		respondErrorWithDetails(c, http.StatusBadRequest, "Validation failed", verr.Violations, err)
	case apperrors.Is(err, apperrors.ErrInvalidTransition):
		respondError(c, http.StatusBadRequest, err.Error(), err)
	case apperrors.Is(err, apperrors.ErrInvalidInput):
		respondErrorWithDetails(c, http.StatusBadRequest, "Invalid request", err.Error(), err)
	case apperrors.Is(err, apperrors.ErrConflict):
		respondError(c, http.StatusConflict, "A survey with this email has already been submitted", err)
	case apperrors.Is(err, apperrors.ErrNotFound):
		respondError(c, http.StatusNotFound, "Survey not found", err)
	case apperrors.Is(err, apperrors.ErrUnavailable):
		respondError(c, http.StatusServiceUnavailable, "Export archive storage is not configured", err)
	default:
		respondError(c, http.StatusInternalServerError, "Internal server error", err)
	}
}

// respondBindingError reports a malformed body or query string
func respondBindingError(c *gin.Context, err error) {
	if details := ParseValidationErrors(err); len(details) > 0 {
		respondErrorWithDetails(c, http.StatusBadRequest, "Invalid request", details, err)
		return
	}
	respondErrorWithDetails(c, http.StatusBadRequest, "Invalid request", err.Error(), err)
}
