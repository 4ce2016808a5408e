package repository

import (
	"context"

	"github.com/legalpulse/survey-api/internal/cache"
	"github.com/legalpulse/survey-api/internal/models"
)

// LawyerSurveyRepositoryInterface defines lawyer survey data access
type LawyerSurveyRepositoryInterface interface {
	Create(ctx context.Context, survey *models.LawyerSurvey) error
	GetByID(ctx context.Context, id string) (*models.LawyerSurvey, error)
	EmailExists(ctx context.Context, email string) (bool, error)
	List(ctx context.Context, filter models.LawyerFilter, opts models.ListOptions) ([]*models.LawyerSurvey, int, error)
	Search(ctx context.Context, criteria models.LawyerSearchCriteria) ([]*models.LawyerSurvey, error)
	All(ctx context.Context) ([]*models.LawyerSurvey, error)
	Analytics(ctx context.Context) (*models.LawyerAnalytics, error)
	UpdateStatus(ctx context.Context, id string, status *models.LifecycleStatus, notes map[string]any) (*models.LawyerSurvey, error)
	Delete(ctx context.Context, id string) error
}

// LawyerSurveyRepository reads and writes lawyer surveys, caching the analytics summary
type LawyerSurveyRepository struct {
	store LawyerSurveyDataSource
	cache *cache.AnalyticsCache
}

// NewLawyerSurveyRepository creates a new lawyer survey repository
func NewLawyerSurveyRepository(store LawyerSurveyDataSource, analyticsCache *cache.AnalyticsCache) *LawyerSurveyRepository {
	return &LawyerSurveyRepository{store: store, cache: analyticsCache}
}

// Create persists an accepted survey
func (r *LawyerSurveyRepository) Create(ctx context.Context, survey *models.LawyerSurvey) error {
	if err := r.store.CreateLawyerSurvey(ctx, survey); err != nil {
		return err
	}
	r.cache.Invalidate(cache.LawyerAnalyticsKey)
	return nil
}

// GetByID fetches one survey
func (r *LawyerSurveyRepository) GetByID(ctx context.Context, id string) (*models.LawyerSurvey, error) {
	return r.store.GetLawyerSurvey(ctx, id)
}

// EmailExists reports whether the normalised email is already used
func (r *LawyerSurveyRepository) EmailExists(ctx context.Context, email string) (bool, error) {
	return r.store.LawyerEmailExists(ctx, email)
}

// List returns one page of matching surveys and the total
func (r *LawyerSurveyRepository) List(ctx context.Context, filter models.LawyerFilter, opts models.ListOptions) ([]*models.LawyerSurvey, int, error) {
	return r.store.ListLawyerSurveys(ctx, filter, opts)
}

// Search returns matches by value score
func (r *LawyerSurveyRepository) Search(ctx context.Context, criteria models.LawyerSearchCriteria) ([]*models.LawyerSurvey, error) {
	return r.store.SearchLawyerSurveys(ctx, criteria)
}

// All returns every survey in insertion order
func (r *LawyerSurveyRepository) All(ctx context.Context) ([]*models.LawyerSurvey, error) {
	return r.store.AllLawyerSurveys(ctx)
}

// Analytics returns the cached summary or recomputes it
func (r *LawyerSurveyRepository) Analytics(ctx context.Context) (*models.LawyerAnalytics, error) {
	return cache.Load(ctx, r.cache, cache.LawyerAnalyticsKey, r.store.LawyerSurveyAnalytics)
}

// UpdateStatus applies an administrative update
func (r *LawyerSurveyRepository) UpdateStatus(ctx context.Context, id string, status *models.LifecycleStatus, notes map[string]any) (*models.LawyerSurvey, error) {
	survey, err := r.store.UpdateLawyerSurveyStatus(ctx, id, status, notes)
	if err != nil {
		return nil, err
	}
	r.cache.Invalidate(cache.LawyerAnalyticsKey)
	return survey, nil
}

// Delete removes one survey
func (r *LawyerSurveyRepository) Delete(ctx context.Context, id string) error {
	if err := r.store.DeleteLawyerSurvey(ctx, id); err != nil {
		return err
	}
	r.cache.Invalidate(cache.LawyerAnalyticsKey)
	return nil
}
