package memory

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/legalpulse/survey-api/internal/models"
	"github.com/legalpulse/survey-api/internal/query"
	apperrors "github.com/legalpulse/survey-api/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }

func newClockedStore() *Store {
	t := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	return NewStoreWithClock(func() time.Time {
		t = t.Add(time.Minute)
		return t
	})
}

func newLawyer(email string, score float64) *models.LawyerSurvey {
	s := &models.LawyerSurvey{
		ProfessionalStatus: "محامي مستقل (freelancer)",
		InterestLevel:      models.InterestHigh,
		Specializations:    []string{"عمل"},
		Languages:          []string{"العربية"},
		ValueScore:         score,
		Status:             models.StatusPending,
		Notes:              map[string]any{},
	}
	if email != "" {
		s.Email = strPtr(email)
	}
	return s
}

func TestStore_LawyerLifecycle(t *testing.T) {
	ctx := context.Background()
	store := newClockedStore()

	// Create
	rec := newLawyer("a@example.com", 10)
	require.NoError(t, store.CreateLawyerSurvey(ctx, rec))
	require.NotEmpty(t, rec.ID)
	assert.False(t, rec.CreatedAt.IsZero())

	// Get returns a copy
	got, err := store.GetLawyerSurvey(ctx, rec.ID)
	require.NoError(t, err)
	got.Specializations[0] = "mutated"
	again, err := store.GetLawyerSurvey(ctx, rec.ID)
	require.NoError(t, err)
	assert.Equal(t, "عمل", again.Specializations[0])

	// Update merges notes
	status := models.StatusContacted
	updated, err := store.UpdateLawyerSurveyStatus(ctx, rec.ID, &status, map[string]any{"call": "monday"})
	require.NoError(t, err)
	assert.Equal(t, models.StatusContacted, updated.Status)
	updated, err = store.UpdateLawyerSurveyStatus(ctx, rec.ID, nil, map[string]any{"rate": 5})
	require.NoError(t, err)
	assert.Equal(t, models.StatusContacted, updated.Status)
	assert.Equal(t, map[string]any{"call": "monday", "rate": 5}, updated.Notes)
	assert.True(t, updated.UpdatedAt.After(updated.CreatedAt))

	// Delete
	require.NoError(t, store.DeleteLawyerSurvey(ctx, rec.ID))
	_, err = store.GetLawyerSurvey(ctx, rec.ID)
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
	assert.ErrorIs(t, store.DeleteLawyerSurvey(ctx, rec.ID), apperrors.ErrNotFound)
}

func TestStore_LawyerEmailUniqueness(t *testing.T) {
	ctx := context.Background()
	store := NewStore()

	require.NoError(t, store.CreateLawyerSurvey(ctx, newLawyer("lawyer@example.com", 1)))
	require.NoError(t, store.CreateLawyerSurvey(ctx, newLawyer("", 1)))
	require.NoError(t, store.CreateLawyerSurvey(ctx, newLawyer("", 1)))

	exists, err := store.LawyerEmailExists(ctx, "LAWYER@example.com")
	require.NoError(t, err)
	assert.True(t, exists)

	err = store.CreateLawyerSurvey(ctx, newLawyer("Lawyer@Example.com", 1))
	assert.ErrorIs(t, err, apperrors.ErrConflict)

	all, err := store.AllLawyerSurveys(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 3)
}

func TestStore_ListLawyerSurveys(t *testing.T) {
	ctx := context.Background()
	store := newClockedStore()
	for i := 0; i < 25; i++ {
		rec := newLawyer(fmt.Sprintf("l%d@example.com", i), float64(i))
		if i%5 == 0 {
			rec.Status = models.StatusConverted
		}
		require.NoError(t, store.CreateLawyerSurvey(ctx, rec))
	}

	opts, err := query.LawyerListing.Options(2, 0, "")
	require.NoError(t, err)
	page, total, err := store.ListLawyerSurveys(ctx, models.LawyerFilter{}, opts)
	require.NoError(t, err)
	assert.Equal(t, 25, total)
	require.Len(t, page, 5)
	assert.Equal(t, "l4@example.com", *page[0].Email, "newest first")

	opts, err = query.LawyerListing.Options(1, 10, "-value_score")
	require.NoError(t, err)
	page, total, err = store.ListLawyerSurveys(ctx, models.LawyerFilter{Status: "converted"}, opts)
	require.NoError(t, err)
	assert.Equal(t, 5, total)
	assert.Equal(t, 20.0, page[0].ValueScore)
}

func TestStore_SearchAndAnalytics(t *testing.T) {
	ctx := context.Background()
	store := NewStore()

	empty, err := store.LawyerSurveyAnalytics(ctx)
	require.NoError(t, err)
	assert.Zero(t, empty.Total)

	low := newLawyer("low@example.com", 1)
	low.MonthlyCompensation = 3000
	high := newLawyer("high@example.com", 9)
	high.MonthlyCompensation = 8000
	require.NoError(t, store.CreateLawyerSurvey(ctx, low))
	require.NoError(t, store.CreateLawyerSurvey(ctx, high))

	minCompensation := 4000.0
	found, err := store.SearchLawyerSurveys(ctx, models.LawyerSearchCriteria{MinCompensation: &minCompensation})
	require.NoError(t, err)
	require.Len(t, found, 1)
	assert.Equal(t, high.ID, found[0].ID)

	summary, err := store.LawyerSurveyAnalytics(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, summary.Total)
	assert.Equal(t, 2, summary.WithContactInfo)
	assert.Equal(t, high.ID, summary.TopValueLawyers[0].ID)
}

func TestStore_GeneralSurveys(t *testing.T) {
	ctx := context.Background()
	store := newClockedStore()

	for i, nationality := range []string{"Egypt", "India", "Egypt"} {
		rec := &models.GeneralSurvey{
			Nationality: nationality,
			LegalIssues: "Yes",
			Language:    "en",
			SubmittedAt: time.Date(2025, 1, i+1, 0, 0, 0, 0, time.UTC),
		}
		require.NoError(t, store.CreateGeneralSurvey(ctx, rec))
	}

	opts, err := query.GeneralListing.Options(0, 0, "")
	require.NoError(t, err)
	page, total, err := store.ListGeneralSurveys(ctx, models.GeneralFilter{Nationality: "Egypt"}, opts)
	require.NoError(t, err)
	assert.Equal(t, 2, total)
	assert.Equal(t, 3, page[0].SubmittedAt.Day())

	summary, err := store.GeneralSurveyAnalytics(ctx)
	require.NoError(t, err)
	assert.Equal(t, 3, summary.TotalSurveys)
	assert.Equal(t, "100.00", summary.LegalIssuesPercentage)

	got, err := store.GetGeneralSurvey(ctx, page[0].ID)
	require.NoError(t, err)
	require.NoError(t, store.DeleteGeneralSurvey(ctx, got.ID))
	_, err = store.GetGeneralSurvey(ctx, got.ID)
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}
