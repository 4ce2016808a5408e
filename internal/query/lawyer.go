package query

import (
	"cmp"
	"slices"
	"strings"

	"github.com/legalpulse/survey-api/internal/models"
)

// FilterLawyers keeps the records matching every non-empty equality filter
func FilterLawyers(records []*models.LawyerSurvey, f models.LawyerFilter) []*models.LawyerSurvey {
	out := make([]*models.LawyerSurvey, 0, len(records))
	for _, r := range records {
		if f.Status != "" && string(r.Status) != f.Status {
			continue
		}
		if f.InterestLevel != "" && r.InterestLevel != f.InterestLevel {
			continue
		}
		out = append(out, r)
	}
	return out
}

// MatchesSearch reports whether r satisfies every given criterion
func MatchesSearch(r *models.LawyerSurvey, c models.LawyerSearchCriteria) bool {
	if c.Name != "" && !containsFold(deref(r.Name), c.Name) {
		return false
	}
	if c.Email != "" && !containsFold(deref(r.Email), c.Email) {
		return false
	}
	if c.City != "" && !containsFold(deref(r.City), c.City) {
		return false
	}
	if c.Mobile != "" && !strings.Contains(deref(r.Mobile), c.Mobile) {
		return false
	}
	if c.MinCompensation != nil && r.MonthlyCompensation < *c.MinCompensation {
		return false
	}
	if c.MaxCompensation != nil && r.MonthlyCompensation > *c.MaxCompensation {
		return false
	}
	if c.MinCapacity != nil && r.TotalMonthlyCapacity < *c.MinCapacity {
		return false
	}
	return true
}

// SearchLawyers returns at most models.SearchLimit matching records by value score, highest first
func SearchLawyers(records []*models.LawyerSurvey, c models.LawyerSearchCriteria) []*models.LawyerSurvey {
	out := make([]*models.LawyerSurvey, 0)
	for _, r := range records {
		if MatchesSearch(r, c) {
			out = append(out, r)
		}
	}
	sortByValueScore(out)
	if len(out) > models.SearchLimit {
		out = out[:models.SearchLimit]
	}
	return out
}

// SummarizeLawyers builds the lawyer analytics summary. records must be in insertion order.
func SummarizeLawyers(records []*models.LawyerSurvey) models.LawyerAnalytics {
	summary := models.LawyerAnalytics{
		Total:                len(records),
		ByInterestLevel:      GroupCounts(records, func(r *models.LawyerSurvey) string { return r.InterestLevel }),
		ByProfessionalStatus: GroupCounts(records, func(r *models.LawyerSurvey) string { return r.ProfessionalStatus }),
		TopValueLawyers:      []models.LawyerSummary{},
	}
	if len(records) == 0 {
		return summary
	}

	var written, labor, family int
	var compensation float64
	for _, r := range records {
		written += r.WrittenConsultations
		labor += r.LaborCases
		family += r.FamilyCases
		compensation += r.MonthlyCompensation
		if models.IsHighlyInterested(r.InterestLevel) {
			summary.HighlyInterested++
		}
		if r.HasContactInfo() {
			summary.WithContactInfo++
		}
	}
	n := float64(len(records))
	summary.AvgCapacity = models.CapacityAverages{
		AvgConsultations: float64(written) / n,
		AvgLaborCases:    float64(labor) / n,
		AvgFamilyCases:   float64(family) / n,
		AvgCompensation:  compensation / n,
	}

	ranked := slices.Clone(records)
	sortByValueScore(ranked)
	for _, r := range ranked[:min(models.TopValueLimit, len(ranked))] {
		summary.TopValueLawyers = append(summary.TopValueLawyers, r.Summary())
	}
	return summary
}

// GroupCounts counts records per key, largest group first and then by key
func GroupCounts[T any](records []T, key func(T) string) []models.GroupCount {
	counts := make(map[string]int)
	for _, r := range records {
		counts[key(r)]++
	}
	groups := make([]models.GroupCount, 0, len(counts))
	for value, n := range counts {
		groups = append(groups, models.GroupCount{Value: value, Count: n})
	}
	slices.SortFunc(groups, func(a, b models.GroupCount) int {
		if c := cmp.Compare(b.Count, a.Count); c != 0 {
			return c
		}
		return cmp.Compare(a.Value, b.Value)
	})
	return groups
}

func sortByValueScore(records []*models.LawyerSurvey) {
	Sort(records, models.SortSpec{{Field: "value_score", Descending: true}}, LawyerSortFields)
}

func containsFold(s, substr string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(substr))
}
