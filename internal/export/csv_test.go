package export

import (
	"encoding/csv"
	"strings"
	"testing"
	"time"

	"github.com/legalpulse/survey-api/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLawyerCSV_Empty(t *testing.T) {
	out, err := LawyerCSV(nil)

	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(out), BOM))
	lines := strings.Split(strings.TrimSuffix(string(out), "\n"), "\n")
	assert.Len(t, lines, 1)
}

func TestLawyerCSV_Rows(t *testing.T) {
	// Setup
	name := `Ahmed "The Advocate", Jr.`
	mobile := "0551234567"
	rec := &models.LawyerSurvey{
		ID:                       "abc",
		CreatedAt:                time.Date(2025, 2, 3, 23, 0, 0, 0, time.UTC),
		ProfessionalStatus:       "محامي مستقل (freelancer)",
		YearsExperience:          "1-3 سنوات",
		Specializations:          []string{"عمل", "أسرة"},
		Languages:                []string{"العربية"},
		WrittenConsultations:     2,
		LaborCases:               1,
		MonthlyCompensation:      5000.5,
		DiscountAcceptance:       models.DiscountTier10to15,
		CurrentConsultationPrice: "201-300 ر.س",
		MostImportant:            "ضمان الدخل الشهري الثابت",
		InterestLevel:            models.InterestVeryHigh,
		Name:                     &name,
		Mobile:                   &mobile,
		Status:                   models.StatusContacted,
	}

	// Execute
	out, err := LawyerCSV([]*models.LawyerSurvey{rec})
	require.NoError(t, err)

	// Assert
	rows, err := csv.NewReader(strings.NewReader(strings.TrimPrefix(string(out), BOM))).ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, Header, rows[0])

	row := rows[1]
	require.Len(t, row, len(Header))
	assert.Equal(t, "abc", row[0])
	assert.Equal(t, "2025-02-03", row[1])
	assert.Equal(t, "عمل; أسرة", row[4])
	assert.Equal(t, "2", row[6])
	assert.Equal(t, "0", row[8])
	assert.Equal(t, "5000.5", row[9])
	assert.Equal(t, "", row[13])
	assert.Equal(t, name, row[15])
	assert.Equal(t, "", row[17])
	assert.Equal(t, "contacted", row[19])
	assert.Contains(t, string(out), `"Ahmed ""The Advocate"", Jr."`)
}
