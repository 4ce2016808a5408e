package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/legalpulse/survey-api/internal/models"
	"github.com/legalpulse/survey-api/internal/services"
	"github.com/legalpulse/survey-api/internal/validation"
)

const (
	lawyerSubmittedMessage = "تم استلام الاستبيان بنجاح"
	lawyerUpdatedMessage   = "تم تحديث الحالة بنجاح"
	lawyerDeletedMessage   = "تم حذف الاستبيان بنجاح"

	exportFilename = "lawyer-surveys.csv"
)

// LawyerSurveyHandler serves /api/v1/lawyer-survey
type LawyerSurveyHandler struct {
	service services.LawyerSurveyServiceInterface
}

// NewLawyerSurveyHandler creates a new LawyerSurveyHandler
func NewLawyerSurveyHandler(service services.LawyerSurveyServiceInterface) *LawyerSurveyHandler {
	return &LawyerSurveyHandler{service: service}
}

// Submit handles POST /api/v1/lawyer-survey/submit
func (h *LawyerSurveyHandler) Submit(c *gin.Context) {
	var payload validation.Payload
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondBindingError(c, err)
		return
	}

	receipt, err := h.service.Submit(c.Request.Context(), payload)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, models.SubmitResponse{
		Success: true,
		Message: lawyerSubmittedMessage,
		Data:    *receipt,
	})
}

// List handles GET /api/v1/lawyer-survey/all
func (h *LawyerSurveyHandler) List(c *gin.Context) {
	var q models.LawyerListQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		respondBindingError(c, err)
		return
	}

	page, err := h.service.List(c.Request.Context(), q.Filter(), q.Page, q.Limit, q.Sort)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, models.ListResponse[*models.LawyerSurvey]{Success: true, Page: *page})
}

// GetByID handles GET /api/v1/lawyer-survey/:id
func (h *LawyerSurveyHandler) GetByID(c *gin.Context) {
	survey, err := h.service.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, models.DataResponse[*models.LawyerSurvey]{Success: true, Data: survey})
}

// Search handles GET /api/v1/lawyer-survey/search
func (h *LawyerSurveyHandler) Search(c *gin.Context) {
	var q models.LawyerSearchQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		respondBindingError(c, err)
		return
	}

	results, err := h.service.Search(c.Request.Context(), q.Criteria())
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, models.SearchResponse{Success: true, Count: len(results), Data: results})
}

// Analytics handles GET /api/v1/lawyer-survey/analytics/summary
func (h *LawyerSurveyHandler) Analytics(c *gin.Context) {
	summary, err := h.service.Analytics(c.Request.Context())
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, models.DataResponse[*models.LawyerAnalytics]{Success: true, Data: summary})
}

// UpdateStatus handles PATCH /api/v1/lawyer-survey/:id/status
func (h *LawyerSurveyHandler) UpdateStatus(c *gin.Context) {
	var update models.LawyerStatusUpdate
	if err := c.ShouldBindJSON(&update); err != nil {
		respondBindingError(c, err)
		return
	}

	survey, err := h.service.UpdateStatus(c.Request.Context(), c.Param("id"), update)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, models.DataResponse[*models.LawyerSurvey]{
		Success: true,
		Message: lawyerUpdatedMessage,
		Data:    survey,
	})
}

// Delete handles DELETE /api/v1/lawyer-survey/:id
func (h *LawyerSurveyHandler) Delete(c *gin.Context) {
	if err := h.service.Delete(c.Request.Context(), c.Param("id")); err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "message": lawyerDeletedMessage})
}

// ExportCSV handles GET /api/v1/lawyer-survey/export/csv
func (h *LawyerSurveyHandler) ExportCSV(c *gin.Context) {
	body, err := h.service.ExportCSV(c.Request.Context())
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.Header("Content-Disposition", "attachment; filename="+exportFilename)
	c.Data(http.StatusOK, "text/csv; charset=utf-8", body)
}

// ArchiveExport handles POST /api/v1/lawyer-survey/export/archive
func (h *LawyerSurveyHandler) ArchiveExport(c *gin.Context) {
	archive, err := h.service.ArchiveExport(c.Request.Context())
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, models.ExportArchiveResponse{Success: true, Data: *archive})
}
