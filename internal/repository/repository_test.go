package repository

import (
	"context"
	"testing"

	"github.com/legalpulse/survey-api/internal/cache"
	"github.com/legalpulse/survey-api/internal/database/memory"
	"github.com/legalpulse/survey-api/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	_ LawyerSurveyDataSource           = (*memory.Store)(nil)
	_ GeneralSurveyDataSource          = (*memory.Store)(nil)
	_ Store                            = (*memory.Store)(nil)
	_ LawyerSurveyRepositoryInterface  = (*LawyerSurveyRepository)(nil)
	_ GeneralSurveyRepositoryInterface = (*GeneralSurveyRepository)(nil)
)

func TestLawyerSurveyRepository_WritesInvalidateAnalytics(t *testing.T) {
	ctx := context.Background()
	repo := NewLawyerSurveyRepository(memory.NewStore(), cache.NewAnalyticsCache(300))

	before, err := repo.Analytics(ctx)
	require.NoError(t, err)
	assert.Zero(t, before.Total)

	rec := &models.LawyerSurvey{InterestLevel: models.InterestHigh, Status: models.StatusPending}
	require.NoError(t, repo.Create(ctx, rec))

	after, err := repo.Analytics(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, after.Total)
	assert.Equal(t, 1, after.HighlyInterested)

	require.NoError(t, repo.Delete(ctx, rec.ID))
	final, err := repo.Analytics(ctx)
	require.NoError(t, err)
	assert.Zero(t, final.Total)
}

func TestGeneralSurveyRepository_WritesInvalidateAnalytics(t *testing.T) {
	ctx := context.Background()
	repo := NewGeneralSurveyRepository(memory.NewStore(), cache.NewAnalyticsCache(300))

	_, err := repo.Analytics(ctx)
	require.NoError(t, err)

	require.NoError(t, repo.Create(ctx, &models.GeneralSurvey{Nationality: "Egypt", LegalIssues: "نعم"}))

	summary, err := repo.Analytics(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, summary.TotalSurveys)
	assert.Equal(t, 1, summary.LegalIssuesYes)
}
