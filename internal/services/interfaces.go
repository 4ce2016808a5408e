package services

import (
	"context"
	"time"

	"github.com/legalpulse/survey-api/internal/models"
	"github.com/legalpulse/survey-api/internal/validation"
)

// GeneralSurveyServiceInterface defines the general survey operations exposed to handlers
type GeneralSurveyServiceInterface interface {
	Submit(ctx context.Context, payload validation.Payload, ipAddress string) (*models.SubmitReceipt, error)
	List(ctx context.Context, filter models.GeneralFilter, page, limit int, sort string) (*models.Page[*models.GeneralSurvey], error)
	GetByID(ctx context.Context, id string) (*models.GeneralSurvey, error)
	Analytics(ctx context.Context) (*models.GeneralAnalytics, error)
	Delete(ctx context.Context, id string) error
}

// LawyerSurveyServiceInterface defines the lawyer survey operations exposed to handlers
type LawyerSurveyServiceInterface interface {
	Submit(ctx context.Context, payload validation.Payload) (*models.SubmitReceipt, error)
	List(ctx context.Context, filter models.LawyerFilter, page, limit int, sort string) (*models.Page[*models.LawyerSurvey], error)
	GetByID(ctx context.Context, id string) (*models.LawyerSurvey, error)
	Search(ctx context.Context, criteria models.LawyerSearchCriteria) ([]*models.LawyerSurvey, error)
	Analytics(ctx context.Context) (*models.LawyerAnalytics, error)
	UpdateStatus(ctx context.Context, id string, update models.LawyerStatusUpdate) (*models.LawyerSurvey, error)
	Delete(ctx context.Context, id string) error
	ExportCSV(ctx context.Context) ([]byte, error)
	ArchiveExport(ctx context.Context) (*models.ExportArchive, error)
}

// LeadNotifier is told about newly submitted, highly interested lawyers
type LeadNotifier interface {
	NotifyAsync(recordID string)
}

// ArchiveStore keeps CSV exports in object storage
type ArchiveStore interface {
	ExportKey(kind string, at time.Time) string
	Upload(ctx context.Context, key string, body []byte, contentType string) (string, error)
}

// Ensure services implement their interfaces
var _ GeneralSurveyServiceInterface = (*GeneralSurveyService)(nil)
var _ LawyerSurveyServiceInterface = (*LawyerSurveyService)(nil)
