package services

import (
	"context"
	"time"

	"github.com/legalpulse/survey-api/internal/export"
	"github.com/legalpulse/survey-api/internal/models"
	"github.com/legalpulse/survey-api/internal/query"
	"github.com/legalpulse/survey-api/internal/repository"
	"github.com/legalpulse/survey-api/internal/scoring"
	"github.com/legalpulse/survey-api/internal/validation"
	apperrors "github.com/legalpulse/survey-api/pkg/errors"
	"github.com/legalpulse/survey-api/pkg/logger"
	"github.com/legalpulse/survey-api/pkg/metrics"
	"github.com/legalpulse/survey-api/pkg/storage"
	"github.com/legalpulse/survey-api/pkg/tracing"
	"go.opentelemetry.io/otel/attribute"
	"go.uber.org/zap"
)

const (
	kindLawyer = "lawyer"

	// lawyerExportName prefixes archived export objects
	lawyerExportName = "lawyer-surveys"
)

// LawyerSurveyService runs the lawyer survey submission pipeline and the
// administrative operations on accepted records
type LawyerSurveyService struct {
	repo      repository.LawyerSurveyRepositoryInterface
	validator *validation.Validator
	listing   query.Listing
	notifier  LeadNotifier
	archive   ArchiveStore
	now       func() time.Time
}

// LawyerSurveyServiceOption customises a LawyerSurveyService
type LawyerSurveyServiceOption func(*LawyerSurveyService)

// WithLeadNotifier notifies n about highly interested submissions
func WithLeadNotifier(n LeadNotifier) LawyerSurveyServiceOption {
	return func(s *LawyerSurveyService) { s.notifier = n }
}

// WithArchiveStore enables export archives
func WithArchiveStore(a ArchiveStore) LawyerSurveyServiceOption {
	return func(s *LawyerSurveyService) { s.archive = a }
}

// WithLawyerListing overrides paging defaults
func WithLawyerListing(l query.Listing) LawyerSurveyServiceOption {
	return func(s *LawyerSurveyService) { s.listing = l }
}

// WithLawyerClock replaces the wall clock used for acceptance times and archive names
func WithLawyerClock(now func() time.Time) LawyerSurveyServiceOption {
	return func(s *LawyerSurveyService) {
		s.now = now
		s.validator = validation.NewWithClock(now)
	}
}

// NewLawyerSurveyService creates a new lawyer survey service
func NewLawyerSurveyService(repo repository.LawyerSurveyRepositoryInterface, opts ...LawyerSurveyServiceOption) *LawyerSurveyService {
	s := &LawyerSurveyService{
		repo:      repo,
		validator: validation.New(),
		listing:   query.LawyerListing,
		now:       time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Submit validates, checks email uniqueness, derives metrics and persists a
// lawyer survey. Nothing is written unless every step before the insert passes.
func (s *LawyerSurveyService) Submit(ctx context.Context, payload validation.Payload) (receipt *models.SubmitReceipt, err error) {
	ctx, span := tracing.StartSpan(ctx, "LawyerSurveyService.Submit")
	defer func() { tracing.End(span, err) }()

	record, err := s.validator.ValidateLawyer(payload)
	if err != nil {
		recordRejection(kindLawyer, err)
		return nil, err
	}

	if record.Email != nil && *record.Email != "" {
		exists, existsErr := s.repo.EmailExists(ctx, *record.Email)
		if existsErr != nil {
			metrics.SurveySubmissions.WithLabelValues(kindLawyer, "error").Inc()
			logger.Error("Failed to check lawyer survey email", zap.Error(existsErr))
			return nil, existsErr
		}
		if exists {
			metrics.SurveySubmissions.WithLabelValues(kindLawyer, "duplicate").Inc()
			logger.Warn("Duplicate lawyer survey submission rejected")
			return nil, apperrors.ConflictError("a survey with this email has already been submitted")
		}
	}

	scoring.Apply(record)

	if err = s.repo.Create(ctx, record); err != nil {
		if apperrors.Is(err, apperrors.ErrConflict) {
			metrics.SurveySubmissions.WithLabelValues(kindLawyer, "duplicate").Inc()
			return nil, err
		}
		metrics.SurveySubmissions.WithLabelValues(kindLawyer, "error").Inc()
		logger.Error("Failed to save lawyer survey", zap.Error(err))
		return nil, err
	}

	span.SetAttributes(
		attribute.String("survey.id", record.ID),
		attribute.Float64("survey.value_score", record.ValueScore),
	)

	if s.notifier != nil && models.IsHighlyInterested(record.InterestLevel) {
		s.notifier.NotifyAsync(record.ID)
	}

	metrics.SurveySubmissions.WithLabelValues(kindLawyer, "success").Inc()
	logger.Info("Lawyer survey submitted",
		zap.String("id", record.ID),
		zap.String("interest_level", record.InterestLevel),
		zap.Int("total_monthly_capacity", record.TotalMonthlyCapacity),
		zap.Float64("value_score", record.ValueScore),
	)

	return &models.SubmitReceipt{ID: record.ID, SubmittedAt: record.SubmittedAt}, nil
}

// List returns one page of lawyer surveys
func (s *LawyerSurveyService) List(ctx context.Context, filter models.LawyerFilter, page, limit int, sort string) (*models.Page[*models.LawyerSurvey], error) {
	opts, err := s.listing.Options(page, limit, sort)
	if err != nil {
		return nil, err
	}

	records, total, err := s.repo.List(ctx, filter, opts)
	if err != nil {
		logger.Error("Failed to list lawyer surveys", zap.Error(err))
		return nil, err
	}

	result := models.NewPage(records, total, opts)
	return &result, nil
}

// GetByID returns one lawyer survey
func (s *LawyerSurveyService) GetByID(ctx context.Context, id string) (*models.LawyerSurvey, error) {
	return s.repo.GetByID(ctx, id)
}

// Search returns up to models.SearchLimit matches ordered by value score
func (s *LawyerSurveyService) Search(ctx context.Context, criteria models.LawyerSearchCriteria) (result []*models.LawyerSurvey, err error) {
	ctx, span := tracing.StartSpan(ctx, "LawyerSurveyService.Search")
	defer func() { tracing.End(span, err) }()

	result, err = s.repo.Search(ctx, criteria)
	if err != nil {
		logger.Error("Failed to search lawyer surveys", zap.Error(err))
		return nil, err
	}
	if result == nil {
		result = []*models.LawyerSurvey{}
	}

	metrics.SearchResultsReturned.Observe(float64(len(result)))
	return result, nil
}

// Analytics returns the lawyer survey summary
func (s *LawyerSurveyService) Analytics(ctx context.Context) (*models.LawyerAnalytics, error) {
	summary, err := s.repo.Analytics(ctx)
	if err != nil {
		logger.Error("Failed to compute lawyer analytics", zap.Error(err))
		return nil, err
	}
	return summary, nil
}

// UpdateStatus applies an administrative update. An unknown status is
// rejected before anything is written; notes are merged independently of status.
func (s *LawyerSurveyService) UpdateStatus(ctx context.Context, id string, update models.LawyerStatusUpdate) (result *models.LawyerSurvey, err error) {
	ctx, span := tracing.StartSpan(ctx, "LawyerSurveyService.UpdateStatus", attribute.String("survey.id", id))
	defer func() { tracing.End(span, err) }()

	var status *models.LifecycleStatus
	if update.Status != nil && *update.Status != "" {
		next := models.LifecycleStatus(*update.Status)
		if !next.IsValid() {
			metrics.LawyerStatusUpdates.WithLabelValues("rejected").Inc()
			return nil, apperrors.InvalidTransitionError(*update.Status)
		}
		status = &next
	}

	if update.IsEmpty() {
		return s.repo.GetByID(ctx, id)
	}

	result, err = s.repo.UpdateStatus(ctx, id, status, update.Notes)
	if err != nil {
		if !apperrors.Is(err, apperrors.ErrNotFound) {
			logger.Error("Failed to update lawyer survey", zap.String("id", id), zap.Error(err))
		}
		return nil, err
	}

	metrics.LawyerStatusUpdates.WithLabelValues(string(result.Status)).Inc()
	logger.Info("Lawyer survey updated",
		zap.String("id", id),
		zap.String("status", string(result.Status)),
		zap.Int("notes_keys", len(update.Notes)),
	)
	return result, nil
}

// Delete removes one lawyer survey
func (s *LawyerSurveyService) Delete(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}

	metrics.SurveyDeletions.WithLabelValues(kindLawyer).Inc()
	logger.Info("Lawyer survey deleted", zap.String("id", id))
	return nil
}

// ExportCSV renders every lawyer survey, in insertion order, as CSV
func (s *LawyerSurveyService) ExportCSV(ctx context.Context) ([]byte, error) {
	body, _, err := s.renderExport(ctx)
	return body, err
}

// ArchiveExport uploads a fresh CSV export to object storage
func (s *LawyerSurveyService) ArchiveExport(ctx context.Context) (result *models.ExportArchive, err error) {
	if s.archive == nil {
		return nil, apperrors.ErrUnavailable
	}

	ctx, span := tracing.StartSpan(ctx, "LawyerSurveyService.ArchiveExport")
	defer func() { tracing.End(span, err) }()

	body, rows, err := s.renderExport(ctx)
	if err != nil {
		return nil, err
	}

	createdAt := s.now().UTC()
	key := s.archive.ExportKey(lawyerExportName, createdAt)
	url, err := s.archive.Upload(ctx, key, body, storage.ContentTypeCSV)
	if err != nil {
		logger.Error("Failed to archive lawyer survey export", zap.String("key", key), zap.Error(err))
		return nil, err
	}

	logger.Info("Lawyer survey export archived", zap.String("key", key), zap.Int("rows", rows))
	return &models.ExportArchive{URL: url, Key: key, Rows: rows, CreatedAt: createdAt}, nil
}

func (s *LawyerSurveyService) renderExport(ctx context.Context) ([]byte, int, error) {
	records, err := s.repo.All(ctx)
	if err != nil {
		logger.Error("Failed to load lawyer surveys for export", zap.Error(err))
		return nil, 0, err
	}

	body, err := export.LawyerCSV(records)
	if err != nil {
		return nil, 0, apperrors.InternalError("failed to render export: " + err.Error())
	}

	metrics.ExportRows.Observe(float64(len(records)))
	return body, len(records), nil
}

// recordRejection counts a validation failure and each of its violations
func recordRejection(kind string, err error) {
	metrics.SurveySubmissions.WithLabelValues(kind, "invalid").Inc()

	var verr *validation.Error
	if !apperrors.As(err, &verr) {
		return
	}
	for _, v := range verr.Violations {
		metrics.SurveyViolations.WithLabelValues(kind, string(v.Kind)).Inc()
	}
	logger.Info("Survey submission rejected",
		zap.String("kind", kind),
		zap.Strings("fields", verr.Fields()),
	)
}
