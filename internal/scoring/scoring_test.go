package scoring

import (
	"testing"

	"github.com/legalpulse/survey-api/internal/models"
	"github.com/stretchr/testify/assert"
)

func TestCompute_WorkedExample(t *testing.T) {
	r := &models.LawyerSurvey{
		WrittenConsultations: 2,
		LaborCases:           1,
		FamilyCases:          0,
		MonthlyCompensation:  5000,
		DiscountAcceptance:   models.DiscountTier10to15,
	}

	m := Compute(r)

	assert.Equal(t, 3, m.TotalMonthlyCapacity)
	assert.InDelta(t, 13.5, m.ValueScore, 1e-9)
}

func TestCompute_Multipliers(t *testing.T) {
	tests := []struct {
		tier       string
		multiplier float64
	}{
		{models.DiscountTier10to15, 0.9},
		{models.DiscountTier20to25, 0.8},
		{models.DiscountTier30to35, 0.7},
		{models.DiscountTierFullPrice, 1.0},
		{"unmapped", FallbackMultiplier},
	}

	for _, tt := range tests {
		t.Run(tt.tier, func(t *testing.T) {
			r := &models.LawyerSurvey{
				WrittenConsultations: 4,
				LaborCases:           3,
				FamilyCases:          3,
				MonthlyCompensation:  2500,
				DiscountAcceptance:   tt.tier,
			}

			m := Compute(r)

			assert.Equal(t, tt.multiplier, DiscountMultiplier(tt.tier))
			assert.Equal(t, 10, m.TotalMonthlyCapacity)
			assert.Equal(t, float64(10)*(2500.0/1000)*tt.multiplier, m.ValueScore)
		})
	}
}

func TestApply_IsIdempotent(t *testing.T) {
	r := &models.LawyerSurvey{
		WrittenConsultations: 7,
		LaborCases:           2,
		FamilyCases:          5,
		MonthlyCompensation:  12345.5,
		DiscountAcceptance:   models.DiscountTier20to25,
		TotalMonthlyCapacity: 1000,
		ValueScore:           -1,
	}

	Apply(r)
	first := *r
	Apply(r)

	assert.Equal(t, 14, r.TotalMonthlyCapacity)
	assert.Equal(t, first.TotalMonthlyCapacity, r.TotalMonthlyCapacity)
	assert.Equal(t, first.ValueScore, r.ValueScore)
}

func TestCompute_ZeroCapacity(t *testing.T) {
	m := Compute(&models.LawyerSurvey{MonthlyCompensation: 9000, DiscountAcceptance: models.DiscountTierFullPrice})

	assert.Zero(t, m.TotalMonthlyCapacity)
	assert.Zero(t, m.ValueScore)
}
