package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/legalpulse/survey-api/internal/models"
	"github.com/legalpulse/survey-api/internal/services"
	"github.com/legalpulse/survey-api/internal/validation"
)

// SurveyHandler serves /api/v1/survey
type SurveyHandler struct {
	service services.GeneralSurveyServiceInterface
}

// NewSurveyHandler creates a new SurveyHandler
func NewSurveyHandler(service services.GeneralSurveyServiceInterface) *SurveyHandler {
	return &SurveyHandler{service: service}
}

// Submit handles POST /api/v1/survey/submit
func (h *SurveyHandler) Submit(c *gin.Context) {
	var payload validation.Payload
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondBindingError(c, err)
		return
	}

	receipt, err := h.service.Submit(c.Request.Context(), payload, c.ClientIP())
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, models.SubmitResponse{
		Success: true,
		Message: "Survey submitted successfully",
		Data:    *receipt,
	})
}

// List handles GET /api/v1/survey/all
func (h *SurveyHandler) List(c *gin.Context) {
	var q models.GeneralListQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		respondBindingError(c, err)
		return
	}

	page, err := h.service.List(c.Request.Context(), q.Filter(), q.Page, q.Limit, q.Sort)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, models.ListResponse[*models.GeneralSurvey]{Success: true, Page: *page})
}

// GetByID handles GET /api/v1/survey/:id
func (h *SurveyHandler) GetByID(c *gin.Context) {
	survey, err := h.service.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, models.DataResponse[*models.GeneralSurvey]{Success: true, Data: survey})
}

// Analytics handles GET /api/v1/survey/analytics/summary
func (h *SurveyHandler) Analytics(c *gin.Context) {
	summary, err := h.service.Analytics(c.Request.Context())
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, models.DataResponse[*models.GeneralAnalytics]{Success: true, Data: summary})
}

// Delete handles DELETE /api/v1/survey/:id
func (h *SurveyHandler) Delete(c *gin.Context) {
	if err := h.service.Delete(c.Request.Context(), c.Param("id")); err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Survey deleted successfully"})
}
