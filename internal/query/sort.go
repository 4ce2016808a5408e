// Package query filters, orders, pages and summarises survey records held in memory.
package query

import (
	"cmp"
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/legalpulse/survey-api/internal/models"
	apperrors "github.com/legalpulse/survey-api/pkg/errors"
)

// Comparator orders two records by one field
type Comparator[T any] func(a, b T) int

// Fields maps sortable field names to comparators
type Fields[T any] map[string]Comparator[T]

// Names returns the sortable field names in lexical order
func (f Fields[T]) Names() []string {
	names := make([]string, 0, len(f))
	for name := range f {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// ParseSort reads a sort specification such as "-createdAt" or "value_score,-labor_cases".
// Keys are separated by spaces or commas; a leading '-' sorts descending.
// An empty specification yields def.
func ParseSort(raw string, allowed []string, def models.SortSpec) (models.SortSpec, error) {
	terms := strings.FieldsFunc(raw, func(r rune) bool { return r == ',' || r == ' ' })
	if len(terms) == 0 {
		return def, nil
	}

	spec := make(models.SortSpec, 0, len(terms))
	for _, term := range terms {
		key := models.SortKey{Field: term}
		switch {
		case strings.HasPrefix(term, "-"):
			key = models.SortKey{Field: term[1:], Descending: true}
		case strings.HasPrefix(term, "+"):
			key.Field = term[1:]
		}
		if !slices.Contains(allowed, key.Field) {
			return nil, fmt.Errorf("%w: cannot sort by %q", apperrors.ErrInvalidInput, key.Field)
		}
		spec = append(spec, key)
	}
	return spec, nil
}

// Sort orders records by spec. The sort is stable, so records that tie on
// every key keep their incoming (insertion) order.
func Sort[T any](records []T, spec models.SortSpec, fields Fields[T]) {
	if len(spec) == 0 {
		return
	}
	slices.SortStableFunc(records, func(a, b T) int {
		for _, key := range spec {
			compare, ok := fields[key.Field]
			if !ok {
				continue
			}
			c := compare(a, b)
			if key.Descending {
				c = -c
			}
			if c != 0 {
				return c
			}
		}
		return 0
	})
}

// Paginate returns the page of records selected by opts
func Paginate[T any](records []T, opts models.ListOptions) []T {
	start := opts.Offset()
	if start < 0 || start >= len(records) || opts.Limit <= 0 {
		return []T{}
	}
	end := start + min(opts.Limit, len(records)-start)
	return records[start:end]
}

func byString[T any](get func(T) string) Comparator[T] {
	return func(a, b T) int { return cmp.Compare(get(a), get(b)) }
}

func byOptional[T any](get func(T) *string) Comparator[T] {
	return func(a, b T) int { return cmp.Compare(deref(get(a)), deref(get(b))) }
}

func byNumber[T any, N cmp.Ordered](get func(T) N) Comparator[T] {
	return func(a, b T) int { return cmp.Compare(get(a), get(b)) }
}

func byTime[T any](get func(T) time.Time) Comparator[T] {
	return func(a, b T) int { return get(a).Compare(get(b)) }
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

// LawyerSortFields are the sortable lawyer survey fields
var LawyerSortFields = Fields[*models.LawyerSurvey]{
	"createdAt":              byTime(func(r *models.LawyerSurvey) time.Time { return r.CreatedAt }),
	"updatedAt":              byTime(func(r *models.LawyerSurvey) time.Time { return r.UpdatedAt }),
	"submittedAt":            byTime(func(r *models.LawyerSurvey) time.Time { return r.SubmittedAt }),
	"value_score":            byNumber(func(r *models.LawyerSurvey) float64 { return r.ValueScore }),
	"total_monthly_capacity": byNumber(func(r *models.LawyerSurvey) int { return r.TotalMonthlyCapacity }),
	"monthly_compensation":   byNumber(func(r *models.LawyerSurvey) float64 { return r.MonthlyCompensation }),
	"written_consultations":  byNumber(func(r *models.LawyerSurvey) int { return r.WrittenConsultations }),
	"labor_cases":            byNumber(func(r *models.LawyerSurvey) int { return r.LaborCases }),
	"family_cases":           byNumber(func(r *models.LawyerSurvey) int { return r.FamilyCases }),
	"professional_status":    byString(func(r *models.LawyerSurvey) string { return r.ProfessionalStatus }),
	"interest_level":         byString(func(r *models.LawyerSurvey) string { return r.InterestLevel }),
	"status":                 byString(func(r *models.LawyerSurvey) string { return string(r.Status) }),
	"name":                   byOptional(func(r *models.LawyerSurvey) *string { return r.Name }),
	"city":                   byOptional(func(r *models.LawyerSurvey) *string { return r.City }),
}

// GeneralSortFields are the sortable general survey fields
var GeneralSortFields = Fields[*models.GeneralSurvey]{
	"submittedAt": byTime(func(r *models.GeneralSurvey) time.Time { return r.SubmittedAt }),
	"createdAt":   byTime(func(r *models.GeneralSurvey) time.Time { return r.CreatedAt }),
	"nationality": byString(func(r *models.GeneralSurvey) string { return r.Nationality }),
	"language":    byString(func(r *models.GeneralSurvey) string { return r.Language }),
	"age":         byString(func(r *models.GeneralSurvey) string { return r.Age }),
	"income":      byString(func(r *models.GeneralSurvey) string { return r.Income }),
}
