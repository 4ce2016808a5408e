package repository

import (
	"context"

	"github.com/legalpulse/survey-api/internal/models"
)

// GeneralSurveyDataSource is the persistent store of general surveys.
// Implementations return apperrors.ErrNotFound for unknown ids.
type GeneralSurveyDataSource interface {
	// CreateGeneralSurvey persists an accepted survey and assigns its id and timestamps
	CreateGeneralSurvey(ctx context.Context, survey *models.GeneralSurvey) error

	// GetGeneralSurvey fetches one survey by id
	GetGeneralSurvey(ctx context.Context, id string) (*models.GeneralSurvey, error)

	// ListGeneralSurveys returns one page of matching surveys and the total match count
	ListGeneralSurveys(ctx context.Context, filter models.GeneralFilter, opts models.ListOptions) ([]*models.GeneralSurvey, int, error)

	// GeneralSurveyAnalytics aggregates every stored survey
	GeneralSurveyAnalytics(ctx context.Context) (*models.GeneralAnalytics, error)

	// DeleteGeneralSurvey removes one survey
	DeleteGeneralSurvey(ctx context.Context, id string) error
}

// LawyerSurveyDataSource is the persistent store of lawyer surveys.
// Implementations return apperrors.ErrNotFound for unknown ids and
// apperrors.ErrConflict when an email is already taken.
type LawyerSurveyDataSource interface {
	// CreateLawyerSurvey persists an accepted survey and assigns its id and timestamps
	CreateLawyerSurvey(ctx context.Context, survey *models.LawyerSurvey) error

	// GetLawyerSurvey fetches one survey by id
	GetLawyerSurvey(ctx context.Context, id string) (*models.LawyerSurvey, error)

	// LawyerEmailExists reports whether an accepted survey already uses the normalised email
	LawyerEmailExists(ctx context.Context, email string) (bool, error)

	// ListLawyerSurveys returns one page of matching surveys and the total match count
	ListLawyerSurveys(ctx context.Context, filter models.LawyerFilter, opts models.ListOptions) ([]*models.LawyerSurvey, int, error)

	// SearchLawyerSurveys returns up to models.SearchLimit matches by value score
	SearchLawyerSurveys(ctx context.Context, criteria models.LawyerSearchCriteria) ([]*models.LawyerSurvey, error)

	// AllLawyerSurveys returns every survey in insertion order
	AllLawyerSurveys(ctx context.Context) ([]*models.LawyerSurvey, error)

	// LawyerSurveyAnalytics aggregates every stored survey
	LawyerSurveyAnalytics(ctx context.Context) (*models.LawyerAnalytics, error)

	// UpdateLawyerSurveyStatus sets the status and merges notes, returning the updated survey
	UpdateLawyerSurveyStatus(ctx context.Context, id string, status *models.LifecycleStatus, notes map[string]any) (*models.LawyerSurvey, error)

	// DeleteLawyerSurvey removes one survey
	DeleteLawyerSurvey(ctx context.Context, id string) error
}

// HealthChecker reports whether the store is reachable
type HealthChecker interface {
	Ping(ctx context.Context) error
}

// Store is a complete survey store: PostgreSQL or the in-memory fallback
type Store interface {
	GeneralSurveyDataSource
	LawyerSurveyDataSource
	HealthChecker
}
