package services_test

import (
	"time"

	"github.com/legalpulse/survey-api/internal/cache"
	"github.com/legalpulse/survey-api/internal/database/memory"
	"github.com/legalpulse/survey-api/internal/models"
	"github.com/legalpulse/survey-api/internal/query"
	"github.com/legalpulse/survey-api/internal/repository"
	"github.com/legalpulse/survey-api/internal/services"
	"github.com/legalpulse/survey-api/internal/validation"
	"github.com/legalpulse/survey-api/pkg/logger"
)

func init() {
	// Initialize logger for tests
	if err := logger.Initialize(logger.Config{
		Level:       "debug",
		Environment: "development",
	}); err != nil {
		panic(err)
	}
}

var fixedNow = time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)

func clock() time.Time { return fixedNow }

// lawyerPayload is the worked example: capacity 3, value score 13.5
func lawyerPayload() validation.Payload {
	return validation.Payload{
		"professional_status":        "محامي مستقل (freelancer)",
		"years_experience":           "1-3 سنوات",
		"specializations":            []any{"عمل", "أحوال شخصية"},
		"languages":                  []any{"العربية"},
		"written_consultations":      float64(2),
		"labor_cases":                float64(1),
		"family_cases":               float64(0),
		"monthly_compensation":       float64(5000),
		"discount_acceptance":        models.DiscountTier10to15,
		"current_consultation_price": "201-300 ر.س",
		"most_important":             "ضمان الدخل الشهري الثابت",
		"interest_level":             models.InterestVeryHigh,
	}
}

func withFields(p validation.Payload, fields map[string]any) validation.Payload {
	out := make(validation.Payload, len(p)+len(fields))
	for k, v := range p {
		out[k] = v
	}
	for k, v := range fields {
		out[k] = v
	}
	return out
}

func generalPayload() validation.Payload {
	return validation.Payload{
		"surveySource":     "Instagram",
		"nationality":      "Philippines",
		"residenceYears":   "1-3",
		"age":              "25-34",
		"income":           "3000-5000",
		"legalIssues":      "Oo",
		"mainBarrier":      "Cost",
		"quickDecision":    "Yes",
		"giveawayInterest": "Oo",
	}
}

// newMemoryLawyerService wires the service to an in-memory store with caching enabled
func newMemoryLawyerService(opts ...services.LawyerSurveyServiceOption) (*services.LawyerSurveyService, *memory.Store) {
	store := memory.NewStore()
	repo := repository.NewLawyerSurveyRepository(store, cache.NewAnalyticsCache(60))
	opts = append([]services.LawyerSurveyServiceOption{services.WithLawyerClock(clock)}, opts...)
	return services.NewLawyerSurveyService(repo, opts...), store
}

func newMemoryGeneralService() (*services.GeneralSurveyService, *memory.Store) {
	store := memory.NewStore()
	repo := repository.NewGeneralSurveyRepository(store, cache.NewAnalyticsCache(60))
	return services.NewGeneralSurveyService(repo, query.GeneralListing).WithClock(clock), store
}
