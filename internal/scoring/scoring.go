// Package scoring computes the derived metrics of a lawyer survey.
package scoring

import "github.com/legalpulse/survey-api/internal/models"

// FallbackMultiplier applies to a discount tier without a declared weight.
// Validation rejects such tiers, so accepted records never reach it.
const FallbackMultiplier = 0.85

var discountMultipliers = map[string]float64{
	models.DiscountTier10to15:    0.9,
	models.DiscountTier20to25:    0.8,
	models.DiscountTier30to35:    0.7,
	models.DiscountTierFullPrice: 1.0,
}

// Metrics are the derived fields of a lawyer survey
type Metrics struct {
	TotalMonthlyCapacity int
	ValueScore           float64
}

// DiscountMultiplier returns the weight of a discount tier
func DiscountMultiplier(tier string) float64 {
	if m, ok := discountMultipliers[tier]; ok {
		return m
	}
	return FallbackMultiplier
}

// Compute derives the metrics from the submitted capacity, compensation and discount tier
func Compute(r *models.LawyerSurvey) Metrics {
	total := r.WrittenConsultations + r.LaborCases + r.FamilyCases
	return Metrics{
		TotalMonthlyCapacity: total,
		ValueScore:           float64(total) * (r.MonthlyCompensation / 1000) * DiscountMultiplier(r.DiscountAcceptance),
	}
}

// Apply overwrites the derived fields of r
func Apply(r *models.LawyerSurvey) {
	m := Compute(r)
	r.TotalMonthlyCapacity = m.TotalMonthlyCapacity
	r.ValueScore = m.ValueScore
}
