//go:build integration

package postgres_test

import (
	"context"
	"testing"

	"github.com/legalpulse/survey-api/internal/database/memory"
	"github.com/legalpulse/survey-api/internal/database/postgres"
	"github.com/legalpulse/survey-api/internal/models"
	"github.com/legalpulse/survey-api/internal/repository"
	"github.com/legalpulse/survey-api/internal/scoring"
	"github.com/legalpulse/survey-api/internal/testutil/containers"
	apperrors "github.com/legalpulse/survey-api/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const migrationsPath = "file://../../../migrations"

// storeFactories returns a fresh PostgreSQL-backed store and a fresh in-memory
// store, so each scenario runs against both and their behaviour can be compared
func storeFactories(t *testing.T) map[string]func(t *testing.T) repository.Store {
	pg := containers.NewPostgresContainer(t, migrationsPath)

	return map[string]func(t *testing.T) repository.Store{
		"postgres": func(t *testing.T) repository.Store {
			require.NoError(t, pg.Truncate(context.Background()))
			return postgres.NewClient(pg.Pool)
		},
		"memory": func(t *testing.T) repository.Store {
			return memory.NewStore()
		},
	}
}

func strPtr(s string) *string { return &s }

func lawyerRecord(email string, written int, compensation float64) *models.LawyerSurvey {
	r := &models.LawyerSurvey{
		ProfessionalStatus:       "محامي مستقل (freelancer)",
		YearsExperience:          "1-3 سنوات",
		Specializations:          []string{"عمل"},
		Languages:                []string{"العربية"},
		WrittenConsultations:     written,
		MonthlyCompensation:      compensation,
		DiscountAcceptance:       models.DiscountTierFullPrice,
		CurrentConsultationPrice: "201-300 ر.س",
		MostImportant:            "ضمان الدخل الشهري الثابت",
		InterestLevel:            models.InterestVeryHigh,
		Status:                   models.StatusPending,
		Notes:                    map[string]any{},
	}
	if email != "" {
		r.Email = strPtr(email)
	}
	scoring.Apply(r)
	return r
}

func TestStore_DuplicateEmailConflicts(t *testing.T) {
	for name, newStore := range storeFactories(t) {
		t.Run(name, func(t *testing.T) {
			// Setup
			ctx := context.Background()
			store := newStore(t)
			require.NoError(t, store.CreateLawyerSurvey(ctx, lawyerRecord("lead@example.com", 1, 1000)))

			// Execute
			err := store.CreateLawyerSurvey(ctx, lawyerRecord("lead@example.com", 2, 2000))

			// Assert
			assert.ErrorIs(t, err, apperrors.ErrConflict)
			exists, err := store.LawyerEmailExists(ctx, "lead@example.com")
			require.NoError(t, err)
			assert.True(t, exists)
		})
	}
}

func TestStore_SearchOrdersByValueScoreThenInsertion(t *testing.T) {
	for name, newStore := range storeFactories(t) {
		t.Run(name, func(t *testing.T) {
			// Setup
			ctx := context.Background()
			store := newStore(t)
			first := lawyerRecord("a@example.com", 2, 1000)
			top := lawyerRecord("b@example.com", 10, 5000)
			second := lawyerRecord("c@example.com", 2, 1000)
			third := lawyerRecord("", 2, 1000)
			for _, r := range []*models.LawyerSurvey{first, top, second, third} {
				require.NoError(t, store.CreateLawyerSurvey(ctx, r))
			}

			// Execute
			results, err := store.SearchLawyerSurveys(ctx, models.LawyerSearchCriteria{})

			// Assert
			require.NoError(t, err)
			ids := make([]string, 0, len(results))
			for _, r := range results {
				ids = append(ids, r.ID)
			}
			assert.Equal(t, []string{top.ID, first.ID, second.ID, third.ID}, ids)
		})
	}
}

func TestStore_EmptyAnalytics(t *testing.T) {
	for name, newStore := range storeFactories(t) {
		t.Run(name, func(t *testing.T) {
			// Setup
			ctx := context.Background()
			store := newStore(t)

			// Execute
			lawyer, lawyerErr := store.LawyerSurveyAnalytics(ctx)
			general, generalErr := store.GeneralSurveyAnalytics(ctx)

			// Assert
			require.NoError(t, lawyerErr)
			assert.Zero(t, lawyer.Total)
			assert.Zero(t, lawyer.HighlyInterested)
			assert.Zero(t, lawyer.WithContactInfo)
			assert.Zero(t, lawyer.AvgCapacity.AvgCompensation)
			assert.Empty(t, lawyer.ByInterestLevel)
			assert.NotNil(t, lawyer.TopValueLawyers)
			assert.Empty(t, lawyer.TopValueLawyers)

			require.NoError(t, generalErr)
			assert.Zero(t, general.TotalSurveys)
			assert.Equal(t, "0.00", general.LegalIssuesPercentage)
		})
	}
}

func TestStore_UpdateStatusMergesNotes(t *testing.T) {
	for name, newStore := range storeFactories(t) {
		t.Run(name, func(t *testing.T) {
			// Setup
			ctx := context.Background()
			store := newStore(t)
			record := lawyerRecord("notes@example.com", 1, 1000)
			require.NoError(t, store.CreateLawyerSurvey(ctx, record))
			contacted := models.StatusContacted

			// Execute
			_, err := store.UpdateLawyerSurveyStatus(ctx, record.ID, nil, map[string]any{"call": "missed"})
			require.NoError(t, err)
			_, err = store.UpdateLawyerSurveyStatus(ctx, record.ID, &contacted, map[string]any{"owner": "ops"})
			require.NoError(t, err)
			updated, err := store.UpdateLawyerSurveyStatus(ctx, record.ID, nil, map[string]any{"call": "answered"})

			// Assert
			require.NoError(t, err)
			assert.Equal(t, models.StatusContacted, updated.Status)
			assert.Equal(t, map[string]any{"call": "answered", "owner": "ops"}, updated.Notes)

			stored, err := store.GetLawyerSurvey(ctx, record.ID)
			require.NoError(t, err)
			assert.Equal(t, updated.Notes, stored.Notes)
		})
	}
}

func TestStore_UnknownIDNotFound(t *testing.T) {
	for name, newStore := range storeFactories(t) {
		t.Run(name, func(t *testing.T) {
			store := newStore(t)

			_, err := store.GetLawyerSurvey(context.Background(), "not-a-uuid")

			assert.ErrorIs(t, err, apperrors.ErrNotFound)
		})
	}
}
