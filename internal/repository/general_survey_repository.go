package repository

import (
	"context"

	"github.com/legalpulse/survey-api/internal/cache"
	"github.com/legalpulse/survey-api/internal/models"
)

// GeneralSurveyRepositoryInterface defines general survey data access
type GeneralSurveyRepositoryInterface interface {
	Create(ctx context.Context, survey *models.GeneralSurvey) error
	GetByID(ctx context.Context, id string) (*models.GeneralSurvey, error)
	List(ctx context.Context, filter models.GeneralFilter, opts models.ListOptions) ([]*models.GeneralSurvey, int, error)
	Analytics(ctx context.Context) (*models.GeneralAnalytics, error)
	Delete(ctx context.Context, id string) error
}

// GeneralSurveyRepository reads and writes general surveys, caching the analytics summary
type GeneralSurveyRepository struct {
	store GeneralSurveyDataSource
	cache *cache.AnalyticsCache
}

// NewGeneralSurveyRepository creates a new general survey repository
func NewGeneralSurveyRepository(store GeneralSurveyDataSource, analyticsCache *cache.AnalyticsCache) *GeneralSurveyRepository {
	return &GeneralSurveyRepository{store: store, cache: analyticsCache}
}

// Create persists an accepted survey
func (r *GeneralSurveyRepository) Create(ctx context.Context, survey *models.GeneralSurvey) error {
	if err := r.store.CreateGeneralSurvey(ctx, survey); err != nil {
		return err
	}
	r.cache.Invalidate(cache.GeneralAnalyticsKey)
	return nil
}

// GetByID fetches one survey
func (r *GeneralSurveyRepository) GetByID(ctx context.Context, id string) (*models.GeneralSurvey, error) {
	return r.store.GetGeneralSurvey(ctx, id)
}

// List returns one page of matching surveys and the total
func (r *GeneralSurveyRepository) List(ctx context.Context, filter models.GeneralFilter, opts models.ListOptions) ([]*models.GeneralSurvey, int, error) {
	return r.store.ListGeneralSurveys(ctx, filter, opts)
}

// Analytics returns the cached summary or recomputes it
func (r *GeneralSurveyRepository) Analytics(ctx context.Context) (*models.GeneralAnalytics, error) {
	return cache.Load(ctx, r.cache, cache.GeneralAnalyticsKey, r.store.GeneralSurveyAnalytics)
}

// Delete removes one survey
func (r *GeneralSurveyRepository) Delete(ctx context.Context, id string) error {
	if err := r.store.DeleteGeneralSurvey(ctx, id); err != nil {
		return err
	}
	r.cache.Invalidate(cache.GeneralAnalyticsKey)
	return nil
}
