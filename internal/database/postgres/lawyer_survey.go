package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/legalpulse/survey-api/internal/models"
	"github.com/legalpulse/survey-api/pkg/metrics"
	"go.uber.org/zap"
)

const lawyerColumns = `
	id::text, professional_status, years_experience, specializations, specializations_other,
	languages, languages_other, written_consultations, labor_cases, family_cases,
	monthly_compensation, discount_acceptance, current_consultation_price,
	most_important, most_important_other, biggest_challenge, biggest_challenge_other,
	interest_level, questions_concerns, name, mobile, email, city,
	status, notes, total_monthly_capacity, value_score,
	submitted_at, created_at, updated_at`

// lawyerSortColumns maps sortable fields to columns
var lawyerSortColumns = map[string]string{
	"createdAt":              "created_at",
	"updatedAt":              "updated_at",
	"submittedAt":            "submitted_at",
	"value_score":            "value_score",
	"total_monthly_capacity": "total_monthly_capacity",
	"monthly_compensation":   "monthly_compensation",
	"written_consultations":  "written_consultations",
	"labor_cases":            "labor_cases",
	"family_cases":           "family_cases",
	"professional_status":    `professional_status COLLATE "C"`,
	"interest_level":         `interest_level COLLATE "C"`,
	"status":                 `status COLLATE "C"`,
	"name":                   `COALESCE(name, '') COLLATE "C"`,
	"city":                   `COALESCE(city, '') COLLATE "C"`,
}

func scanLawyer(row pgx.Row) (*models.LawyerSurvey, error) {
	var s models.LawyerSurvey
	var status string
	err := row.Scan(
		&s.ID, &s.ProfessionalStatus, &s.YearsExperience, &s.Specializations, &s.SpecializationsOther,
		&s.Languages, &s.LanguagesOther, &s.WrittenConsultations, &s.LaborCases, &s.FamilyCases,
		&s.MonthlyCompensation, &s.DiscountAcceptance, &s.CurrentConsultationPrice,
		&s.MostImportant, &s.MostImportantOther, &s.BiggestChallenge, &s.BiggestChallengeOther,
		&s.InterestLevel, &s.QuestionsConcerns, &s.Name, &s.Mobile, &s.Email, &s.City,
		&status, &s.Notes, &s.TotalMonthlyCapacity, &s.ValueScore,
		&s.SubmittedAt, &s.CreatedAt, &s.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	s.Status = models.LifecycleStatus(status)
	if s.Notes == nil {
		s.Notes = map[string]any{}
	}
	return &s, nil
}

func (c *Client) queryLawyers(ctx context.Context, query string, queryArgs ...any) ([]*models.LawyerSurvey, error) {
	rows, err := c.pool.Query(ctx, query, queryArgs...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	surveys := make([]*models.LawyerSurvey, 0)
	for rows.Next() {
		s, err := scanLawyer(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan lawyer survey row: %w", err)
		}
		surveys = append(surveys, s)
	}
	return surveys, rows.Err()
}

// CreateLawyerSurvey inserts an accepted survey; a taken email yields ErrConflict
func (c *Client) CreateLawyerSurvey(ctx context.Context, s *models.LawyerSurvey) error {
	start := time.Now()
	operation := "createLawyerSurvey"

	notes := s.Notes
	if notes == nil {
		notes = map[string]any{}
	}

	err := c.pool.QueryRow(ctx, `
		INSERT INTO lawyer_surveys (
			professional_status, years_experience, specializations, specializations_other,
			languages, languages_other, written_consultations, labor_cases, family_cases,
			monthly_compensation, discount_acceptance, current_consultation_price,
			most_important, most_important_other, biggest_challenge, biggest_challenge_other,
			interest_level, questions_concerns, name, mobile, email, city,
			status, notes, total_monthly_capacity, value_score, submitted_at
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14,
			$15, $16, $17, $18, $19, $20, $21, $22, $23, $24, $25, $26, $27
		)
		RETURNING id::text, created_at, updated_at`,
		s.ProfessionalStatus, s.YearsExperience, s.Specializations, s.SpecializationsOther,
		s.Languages, s.LanguagesOther, s.WrittenConsultations, s.LaborCases, s.FamilyCases,
		s.MonthlyCompensation, s.DiscountAcceptance, s.CurrentConsultationPrice,
		s.MostImportant, s.MostImportantOther, s.BiggestChallenge, s.BiggestChallengeOther,
		s.InterestLevel, s.QuestionsConcerns, s.Name, s.Mobile, s.Email, s.City,
		string(s.Status), notes, s.TotalMonthlyCapacity, s.ValueScore, s.SubmittedAt,
	).Scan(&s.ID, &s.CreatedAt, &s.UpdatedAt)

	return finish(operation, metrics.MeasureDuration(start), err, zap.String("survey_id", s.ID))
}

// GetLawyerSurvey fetches one survey by id
func (c *Client) GetLawyerSurvey(ctx context.Context, id string) (*models.LawyerSurvey, error) {
	start := time.Now()

	s, err := scanLawyer(c.pool.QueryRow(ctx, `SELECT `+lawyerColumns+` FROM lawyer_surveys WHERE id = $1`, id))
	if err := finish("getLawyerSurvey", metrics.MeasureDuration(start), err, zap.String("survey_id", id)); err != nil {
		return nil, err
	}
	return s, nil
}

// LawyerEmailExists reports whether the email is already used, ignoring case
func (c *Client) LawyerEmailExists(ctx context.Context, email string) (bool, error) {
	start := time.Now()

	var exists bool
	err := c.pool.QueryRow(ctx,
		`SELECT EXISTS (SELECT 1 FROM lawyer_surveys WHERE lower(email) = lower($1))`, email,
	).Scan(&exists)
	if err := finish("lawyerEmailExists", metrics.MeasureDuration(start), err); err != nil {
		return false, err
	}
	return exists, nil
}

// ListLawyerSurveys returns one page of surveys matching the equality filters
func (c *Client) ListLawyerSurveys(ctx context.Context, filter models.LawyerFilter, opts models.ListOptions) ([]*models.LawyerSurvey, int, error) {
	start := time.Now()
	operation := "listLawyerSurveys"

	var a args
	conditions := make([]string, 0, 2)
	if filter.Status != "" {
		conditions = append(conditions, "status = "+a.add(filter.Status))
	}
	if filter.InterestLevel != "" {
		conditions = append(conditions, "interest_level = "+a.add(filter.InterestLevel))
	}
	where := whereClause(conditions)

	var total int
	if err := c.pool.QueryRow(ctx, `SELECT count(*) FROM lawyer_surveys`+where, a...).Scan(&total); err != nil {
		return nil, 0, finish(operation, metrics.MeasureDuration(start), err)
	}

	query := fmt.Sprintf(`SELECT %s FROM lawyer_surveys%s ORDER BY %s LIMIT %s OFFSET %s`,
		lawyerColumns, where, orderBy(opts.Sort, lawyerSortColumns), a.add(opts.Limit), a.add(opts.Offset()))
	surveys, err := c.queryLawyers(ctx, query, a...)
	if err := finish(operation, metrics.MeasureDuration(start), err, zap.Int("count", len(surveys)), zap.Int("total", total)); err != nil {
		return nil, 0, err
	}
	return surveys, total, nil
}

// SearchLawyerSurveys matches text criteria literally and orders by value score
func (c *Client) SearchLawyerSurveys(ctx context.Context, criteria models.LawyerSearchCriteria) ([]*models.LawyerSurvey, error) {
	start := time.Now()

	var a args
	conditions := make([]string, 0, 7)
	if criteria.Name != "" {
		conditions = append(conditions, "name ILIKE "+a.add("%"+escapeLike(criteria.Name)+"%"))
	}
	if criteria.Email != "" {
		conditions = append(conditions, "email ILIKE "+a.add("%"+escapeLike(criteria.Email)+"%"))
	}
	if criteria.City != "" {
		conditions = append(conditions, "city ILIKE "+a.add("%"+escapeLike(criteria.City)+"%"))
	}
	if criteria.Mobile != "" {
		conditions = append(conditions, "strpos(mobile, "+a.add(criteria.Mobile)+") > 0")
	}
	if criteria.MinCompensation != nil {
		conditions = append(conditions, "monthly_compensation >= "+a.add(*criteria.MinCompensation))
	}
	if criteria.MaxCompensation != nil {
		conditions = append(conditions, "monthly_compensation <= "+a.add(*criteria.MaxCompensation))
	}
	if criteria.MinCapacity != nil {
		conditions = append(conditions, "total_monthly_capacity >= "+a.add(*criteria.MinCapacity))
	}

	query := fmt.Sprintf(`SELECT %s FROM lawyer_surveys%s ORDER BY value_score DESC, seq ASC LIMIT %d`,
		lawyerColumns, whereClause(conditions), models.SearchLimit)
	surveys, err := c.queryLawyers(ctx, query, a...)
	if err := finish("searchLawyerSurveys", metrics.MeasureDuration(start), err, zap.Int("count", len(surveys))); err != nil {
		return nil, err
	}
	return surveys, nil
}

// AllLawyerSurveys returns every survey in insertion order
func (c *Client) AllLawyerSurveys(ctx context.Context) ([]*models.LawyerSurvey, error) {
	start := time.Now()

	surveys, err := c.queryLawyers(ctx, `SELECT `+lawyerColumns+` FROM lawyer_surveys ORDER BY seq ASC`)
	if err := finish("allLawyerSurveys", metrics.MeasureDuration(start), err, zap.Int("count", len(surveys))); err != nil {
		return nil, err
	}
	return surveys, nil
}

// LawyerSurveyAnalytics aggregates counts, averages and the top-value list
func (c *Client) LawyerSurveyAnalytics(ctx context.Context) (*models.LawyerAnalytics, error) {
	start := time.Now()
	operation := "lawyerSurveyAnalytics"

	a := models.LawyerAnalytics{TopValueLawyers: []models.LawyerSummary{}}
	err := c.pool.QueryRow(ctx, `
		SELECT
			count(*),
			COALESCE(avg(written_consultations), 0)::float8,
			COALESCE(avg(labor_cases), 0)::float8,
			COALESCE(avg(family_cases), 0)::float8,
			COALESCE(avg(monthly_compensation), 0)::float8,
			count(*) FILTER (WHERE interest_level = ANY($1)),
			count(*) FILTER (WHERE COALESCE(email, '') <> '' OR COALESCE(mobile, '') <> '')
		FROM lawyer_surveys`, models.HighInterestLevels,
	).Scan(
		&a.Total,
		&a.AvgCapacity.AvgConsultations, &a.AvgCapacity.AvgLaborCases,
		&a.AvgCapacity.AvgFamilyCases, &a.AvgCapacity.AvgCompensation,
		&a.HighlyInterested, &a.WithContactInfo,
	)
	if err != nil {
		return nil, finish(operation, metrics.MeasureDuration(start), err)
	}

	if a.ByInterestLevel, err = c.groupCounts(ctx, "lawyer_surveys", "interest_level"); err != nil {
		return nil, finish(operation, metrics.MeasureDuration(start), err)
	}
	if a.ByProfessionalStatus, err = c.groupCounts(ctx, "lawyer_surveys", "professional_status"); err != nil {
		return nil, finish(operation, metrics.MeasureDuration(start), err)
	}

	top, err := c.queryLawyers(ctx, fmt.Sprintf(
		`SELECT %s FROM lawyer_surveys ORDER BY value_score DESC, seq ASC LIMIT %d`, lawyerColumns, models.TopValueLimit))
	if err != nil {
		return nil, finish(operation, metrics.MeasureDuration(start), err)
	}
	for _, s := range top {
		a.TopValueLawyers = append(a.TopValueLawyers, s.Summary())
	}

	if err := finish(operation, metrics.MeasureDuration(start), nil, zap.Int("total", a.Total)); err != nil {
		return nil, err
	}
	return &a, nil
}

// UpdateLawyerSurveyStatus sets status when given and merges notes into the stored object
func (c *Client) UpdateLawyerSurveyStatus(ctx context.Context, id string, status *models.LifecycleStatus, notes map[string]any) (*models.LawyerSurvey, error) {
	start := time.Now()

	var statusArg *string
	if status != nil {
		s := string(*status)
		statusArg = &s
	}
	if notes == nil {
		notes = map[string]any{}
	}

	s, err := scanLawyer(c.pool.QueryRow(ctx, `
		UPDATE lawyer_surveys
		SET status = COALESCE($2, status),
			notes = notes || $3::jsonb,
			updated_at = NOW()
		WHERE id = $1
		RETURNING `+lawyerColumns, id, statusArg, notes))
	if err := finish("updateLawyerSurveyStatus", metrics.MeasureDuration(start), err, zap.String("survey_id", id)); err != nil {
		return nil, err
	}
	return s, nil
}

// DeleteLawyerSurvey removes one survey
func (c *Client) DeleteLawyerSurvey(ctx context.Context, id string) error {
	return c.deleteByID(ctx, "deleteLawyerSurvey", "lawyer_surveys", id)
}
