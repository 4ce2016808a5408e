package query

import (
	"strconv"

	"github.com/legalpulse/survey-api/internal/models"
)

// FilterGeneral keeps the records matching every non-empty equality filter
func FilterGeneral(records []*models.GeneralSurvey, f models.GeneralFilter) []*models.GeneralSurvey {
	out := make([]*models.GeneralSurvey, 0, len(records))
	for _, r := range records {
		if f.Nationality != "" && r.Nationality != f.Nationality {
			continue
		}
		if f.Language != "" && r.Language != f.Language {
			continue
		}
		out = append(out, r)
	}
	return out
}

// SummarizeGeneral builds the general analytics summary
func SummarizeGeneral(records []*models.GeneralSurvey) models.GeneralAnalytics {
	summary := models.GeneralAnalytics{
		TotalSurveys:         len(records),
		NationalityBreakdown: GroupCounts(records, func(r *models.GeneralSurvey) string { return r.Nationality }),
	}
	for _, r := range records {
		if models.LegalIssueAnswers.IsAffirmative(r.LegalIssues) {
			summary.LegalIssuesYes++
		}
		if models.GiveawayAnswers.IsAffirmative(r.GiveawayInterest) {
			summary.GiveawayInterested++
		}
	}
	summary.LegalIssuesPercentage = Percentage(summary.LegalIssuesYes, summary.TotalSurveys)
	return summary
}

// Percentage formats part/total as a percentage with two decimals, "0.00" when total is zero.
// Rounding is to the nearest representable value; an exact binary tie at the
// third decimal rounds half to even.
func Percentage(part, total int) string {
	if total == 0 {
		return "0.00"
	}
	return strconv.FormatFloat(float64(part)/float64(total)*100, 'f', 2, 64)
}
