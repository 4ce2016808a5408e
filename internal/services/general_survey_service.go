package services

import (
	"context"
	"time"

	"github.com/legalpulse/survey-api/internal/models"
	"github.com/legalpulse/survey-api/internal/query"
	"github.com/legalpulse/survey-api/internal/repository"
	"github.com/legalpulse/survey-api/internal/validation"
	"github.com/legalpulse/survey-api/pkg/logger"
	"github.com/legalpulse/survey-api/pkg/metrics"
	"github.com/legalpulse/survey-api/pkg/tracing"
	"go.uber.org/zap"
)

const kindGeneral = "general"

// GeneralSurveyService accepts and serves general-population survey responses
type GeneralSurveyService struct {
	repo      repository.GeneralSurveyRepositoryInterface
	validator *validation.Validator
	listing   query.Listing
}

// NewGeneralSurveyService creates a new general survey service
func NewGeneralSurveyService(repo repository.GeneralSurveyRepositoryInterface, listing query.Listing) *GeneralSurveyService {
	return &GeneralSurveyService{
		repo:      repo,
		validator: validation.New(),
		listing:   listing,
	}
}

// WithClock returns a copy validating against now, for tests
func (s *GeneralSurveyService) WithClock(now func() time.Time) *GeneralSurveyService {
	clone := *s
	clone.validator = validation.NewWithClock(now)
	return &clone
}

// Submit validates and stores a general survey, recording the caller's IP
func (s *GeneralSurveyService) Submit(ctx context.Context, payload validation.Payload, ipAddress string) (receipt *models.SubmitReceipt, err error) {
	ctx, span := tracing.StartSpan(ctx, "GeneralSurveyService.Submit")
	defer func() { tracing.End(span, err) }()

	record, err := s.validator.ValidateGeneral(payload)
	if err != nil {
		recordRejection(kindGeneral, err)
		return nil, err
	}
	if ipAddress != "" {
		record.IPAddress = &ipAddress
	}

	if err = s.repo.Create(ctx, record); err != nil {
		metrics.SurveySubmissions.WithLabelValues(kindGeneral, "error").Inc()
		logger.Error("Failed to save general survey", zap.Error(err))
		return nil, err
	}

	metrics.SurveySubmissions.WithLabelValues(kindGeneral, "success").Inc()
	logger.Info("General survey submitted",
		zap.String("id", record.ID),
		zap.String("language", record.Language),
		zap.String("nationality", record.Nationality),
	)

	return &models.SubmitReceipt{ID: record.ID, SubmittedAt: record.SubmittedAt}, nil
}

// List returns one page of general surveys
func (s *GeneralSurveyService) List(ctx context.Context, filter models.GeneralFilter, page, limit int, sort string) (*models.Page[*models.GeneralSurvey], error) {
	opts, err := s.listing.Options(page, limit, sort)
	if err != nil {
		return nil, err
	}

	records, total, err := s.repo.List(ctx, filter, opts)
	if err != nil {
		logger.Error("Failed to list general surveys", zap.Error(err))
		return nil, err
	}

	result := models.NewPage(records, total, opts)
	return &result, nil
}

// GetByID returns one general survey
func (s *GeneralSurveyService) GetByID(ctx context.Context, id string) (*models.GeneralSurvey, error) {
	return s.repo.GetByID(ctx, id)
}

// Analytics returns the general survey summary
func (s *GeneralSurveyService) Analytics(ctx context.Context) (*models.GeneralAnalytics, error) {
	summary, err := s.repo.Analytics(ctx)
	if err != nil {
		logger.Error("Failed to compute general analytics", zap.Error(err))
		return nil, err
	}
	return summary, nil
}

// Delete removes one general survey
func (s *GeneralSurveyService) Delete(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}

	metrics.SurveyDeletions.WithLabelValues(kindGeneral).Inc()
	logger.Info("General survey deleted", zap.String("id", id))
	return nil
}
