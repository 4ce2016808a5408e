// Package memory is an in-process survey store backed by the query engine.
// It serves offline mode and tests.
package memory

import (
	"context"
	"maps"
	"slices"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/legalpulse/survey-api/internal/models"
	"github.com/legalpulse/survey-api/internal/query"
	apperrors "github.com/legalpulse/survey-api/pkg/errors"
)

// Store keeps both survey kinds in insertion order
type Store struct {
	mu      sync.RWMutex
	general []*models.GeneralSurvey
	lawyers []*models.LawyerSurvey
	now     func() time.Time
}

// NewStore creates an empty store
func NewStore() *Store {
	return &Store{now: time.Now}
}

// NewStoreWithClock creates an empty store stamping records with now
func NewStoreWithClock(now func() time.Time) *Store {
	return &Store{now: now}
}

// Ping always succeeds
func (s *Store) Ping(_ context.Context) error {
	return nil
}

// CreateGeneralSurvey stores a copy of the survey and assigns its id and timestamps
func (s *Store) CreateGeneralSurvey(_ context.Context, survey *models.GeneralSurvey) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now().UTC()
	survey.ID = uuid.NewString()
	survey.CreatedAt = now
	survey.UpdatedAt = now

	stored := *survey
	s.general = append(s.general, &stored)
	return nil
}

// GetGeneralSurvey returns a copy of one survey
func (s *Store) GetGeneralSurvey(_ context.Context, id string) (*models.GeneralSurvey, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, g := range s.general {
		if g.ID == id {
			c := *g
			return &c, nil
		}
	}
	return nil, apperrors.NotFoundError("survey")
}

// ListGeneralSurveys filters, sorts and pages a snapshot of the stored surveys
func (s *Store) ListGeneralSurveys(_ context.Context, filter models.GeneralFilter, opts models.ListOptions) ([]*models.GeneralSurvey, int, error) {
	matched := query.FilterGeneral(s.snapshotGeneral(), filter)
	query.Sort(matched, opts.Sort, query.GeneralSortFields)
	return query.Paginate(matched, opts), len(matched), nil
}

// GeneralSurveyAnalytics summarises every stored survey
func (s *Store) GeneralSurveyAnalytics(_ context.Context) (*models.GeneralAnalytics, error) {
	summary := query.SummarizeGeneral(s.snapshotGeneral())
	return &summary, nil
}

// DeleteGeneralSurvey removes one survey
func (s *Store) DeleteGeneralSurvey(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := slices.IndexFunc(s.general, func(g *models.GeneralSurvey) bool { return g.ID == id })
	if i < 0 {
		return apperrors.NotFoundError("survey")
	}
	s.general = slices.Delete(s.general, i, i+1)
	return nil
}

// CreateLawyerSurvey stores a copy of the survey; a taken email yields ErrConflict
func (s *Store) CreateLawyerSurvey(_ context.Context, survey *models.LawyerSurvey) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if survey.Email != nil && s.emailTaken(*survey.Email) {
		return apperrors.ConflictError("a survey with this email has already been submitted")
	}

	now := s.now().UTC()
	survey.ID = uuid.NewString()
	survey.CreatedAt = now
	survey.UpdatedAt = now

	s.lawyers = append(s.lawyers, copyLawyer(survey))
	return nil
}

// GetLawyerSurvey returns a copy of one survey
func (s *Store) GetLawyerSurvey(_ context.Context, id string) (*models.LawyerSurvey, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if l := s.findLawyer(id); l != nil {
		return copyLawyer(l), nil
	}
	return nil, apperrors.NotFoundError("survey")
}

// LawyerEmailExists reports whether the email is already used, ignoring case
func (s *Store) LawyerEmailExists(_ context.Context, email string) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.emailTaken(email), nil
}

// ListLawyerSurveys filters, sorts and pages a snapshot of the stored surveys
func (s *Store) ListLawyerSurveys(_ context.Context, filter models.LawyerFilter, opts models.ListOptions) ([]*models.LawyerSurvey, int, error) {
	matched := query.FilterLawyers(s.snapshotLawyers(), filter)
	query.Sort(matched, opts.Sort, query.LawyerSortFields)
	return query.Paginate(matched, opts), len(matched), nil
}

// SearchLawyerSurveys runs the search over a snapshot of the stored surveys
func (s *Store) SearchLawyerSurveys(_ context.Context, criteria models.LawyerSearchCriteria) ([]*models.LawyerSurvey, error) {
	return query.SearchLawyers(s.snapshotLawyers(), criteria), nil
}

// AllLawyerSurveys returns copies of every survey in insertion order
func (s *Store) AllLawyerSurveys(_ context.Context) ([]*models.LawyerSurvey, error) {
	return s.snapshotLawyers(), nil
}

// LawyerSurveyAnalytics summarises every stored survey
func (s *Store) LawyerSurveyAnalytics(_ context.Context) (*models.LawyerAnalytics, error) {
	summary := query.SummarizeLawyers(s.snapshotLawyers())
	return &summary, nil
}

// UpdateLawyerSurveyStatus sets status when given and merges notes key by key
func (s *Store) UpdateLawyerSurveyStatus(_ context.Context, id string, status *models.LifecycleStatus, notes map[string]any) (*models.LawyerSurvey, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	l := s.findLawyer(id)
	if l == nil {
		return nil, apperrors.NotFoundError("survey")
	}
	if status != nil {
		l.Status = *status
	}
	if l.Notes == nil {
		l.Notes = make(map[string]any, len(notes))
	}
	maps.Copy(l.Notes, notes)
	l.UpdatedAt = s.now().UTC()

	return copyLawyer(l), nil
}

// DeleteLawyerSurvey removes one survey
func (s *Store) DeleteLawyerSurvey(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := slices.IndexFunc(s.lawyers, func(l *models.LawyerSurvey) bool { return l.ID == id })
	if i < 0 {
		return apperrors.NotFoundError("survey")
	}
	s.lawyers = slices.Delete(s.lawyers, i, i+1)
	return nil
}

func (s *Store) findLawyer(id string) *models.LawyerSurvey {
	for _, l := range s.lawyers {
		if l.ID == id {
			return l
		}
	}
	return nil
}

func (s *Store) emailTaken(email string) bool {
	email = models.NormalizeEmail(email)
	for _, l := range s.lawyers {
		if l.Email != nil && models.NormalizeEmail(*l.Email) == email {
			return true
		}
	}
	return false
}

func (s *Store) snapshotGeneral() []*models.GeneralSurvey {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]*models.GeneralSurvey, len(s.general))
	for i, g := range s.general {
		c := *g
		out[i] = &c
	}
	return out
}

func (s *Store) snapshotLawyers() []*models.LawyerSurvey {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]*models.LawyerSurvey, len(s.lawyers))
	for i, l := range s.lawyers {
		out[i] = copyLawyer(l)
	}
	return out
}

func copyLawyer(l *models.LawyerSurvey) *models.LawyerSurvey {
	c := *l
	c.Specializations = slices.Clone(l.Specializations)
	c.Languages = slices.Clone(l.Languages)
	c.Notes = maps.Clone(l.Notes)
	if c.Notes == nil {
		c.Notes = map[string]any{}
	}
	return &c
}
