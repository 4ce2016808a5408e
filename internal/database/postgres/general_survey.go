package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/legalpulse/survey-api/internal/models"
	"github.com/legalpulse/survey-api/internal/query"
	"github.com/legalpulse/survey-api/pkg/metrics"
	"go.uber.org/zap"
)

const generalColumns = `
	id::text, survey_source, survey_source_other, nationality, residence_years, age, income,
	legal_issues, main_barrier, quick_decision, giveaway_interest, email, phone,
	legal_tech_services, legal_tech_service_name, legal_tech_consideration,
	language, ip_address, submitted_at, created_at, updated_at`

var generalSortColumns = map[string]string{
	"submittedAt": "submitted_at",
	"createdAt":   "created_at",
	"nationality": `nationality COLLATE "C"`,
	"language":    `language COLLATE "C"`,
	"age":         `age COLLATE "C"`,
	"income":      `income COLLATE "C"`,
}

func scanGeneral(row pgx.Row) (*models.GeneralSurvey, error) {
	var s models.GeneralSurvey
	err := row.Scan(
		&s.ID, &s.SurveySource, &s.SurveySourceOther, &s.Nationality, &s.ResidenceYears, &s.Age, &s.Income,
		&s.LegalIssues, &s.MainBarrier, &s.QuickDecision, &s.GiveawayInterest, &s.Email, &s.Phone,
		&s.LegalTechServices, &s.LegalTechServiceName, &s.LegalTechConsideration,
		&s.Language, &s.IPAddress, &s.SubmittedAt, &s.CreatedAt, &s.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &s, nil
}

// CreateGeneralSurvey inserts an accepted survey
func (c *Client) CreateGeneralSurvey(ctx context.Context, s *models.GeneralSurvey) error {
	start := time.Now()

	err := c.pool.QueryRow(ctx, `
		INSERT INTO general_surveys (
			survey_source, survey_source_other, nationality, residence_years, age, income,
			legal_issues, main_barrier, quick_decision, giveaway_interest, email, phone,
			legal_tech_services, legal_tech_service_name, legal_tech_consideration,
			language, ip_address, submitted_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18)
		RETURNING id::text, created_at, updated_at`,
		s.SurveySource, s.SurveySourceOther, s.Nationality, s.ResidenceYears, s.Age, s.Income,
		s.LegalIssues, s.MainBarrier, s.QuickDecision, s.GiveawayInterest, s.Email, s.Phone,
		s.LegalTechServices, s.LegalTechServiceName, s.LegalTechConsideration,
		s.Language, s.IPAddress, s.SubmittedAt,
	).Scan(&s.ID, &s.CreatedAt, &s.UpdatedAt)

	return finish("createGeneralSurvey", metrics.MeasureDuration(start), err, zap.String("survey_id", s.ID))
}

// GetGeneralSurvey fetches one survey by id
func (c *Client) GetGeneralSurvey(ctx context.Context, id string) (*models.GeneralSurvey, error) {
	start := time.Now()

	s, err := scanGeneral(c.pool.QueryRow(ctx, `SELECT `+generalColumns+` FROM general_surveys WHERE id = $1`, id))
	if err := finish("getGeneralSurvey", metrics.MeasureDuration(start), err, zap.String("survey_id", id)); err != nil {
		return nil, err
	}
	return s, nil
}

// ListGeneralSurveys returns one page of surveys matching the equality filters
func (c *Client) ListGeneralSurveys(ctx context.Context, filter models.GeneralFilter, opts models.ListOptions) ([]*models.GeneralSurvey, int, error) {
	start := time.Now()
	operation := "listGeneralSurveys"

	var a args
	conditions := make([]string, 0, 2)
	if filter.Nationality != "" {
		conditions = append(conditions, "nationality = "+a.add(filter.Nationality))
	}
	if filter.Language != "" {
		conditions = append(conditions, "language = "+a.add(filter.Language))
	}
	where := whereClause(conditions)

	var total int
	if err := c.pool.QueryRow(ctx, `SELECT count(*) FROM general_surveys`+where, a...).Scan(&total); err != nil {
		return nil, 0, finish(operation, metrics.MeasureDuration(start), err)
	}

	rows, err := c.pool.Query(ctx, fmt.Sprintf(`SELECT %s FROM general_surveys%s ORDER BY %s LIMIT %s OFFSET %s`,
		generalColumns, where, orderBy(opts.Sort, generalSortColumns), a.add(opts.Limit), a.add(opts.Offset())), a...)
	if err != nil {
		return nil, 0, finish(operation, metrics.MeasureDuration(start), err)
	}
	defer rows.Close()

	surveys := make([]*models.GeneralSurvey, 0)
	for rows.Next() {
		s, err := scanGeneral(rows)
		if err != nil {
			return nil, 0, finish(operation, metrics.MeasureDuration(start), err)
		}
		surveys = append(surveys, s)
	}
	if err := finish(operation, metrics.MeasureDuration(start), rows.Err(), zap.Int("count", len(surveys))); err != nil {
		return nil, 0, err
	}
	return surveys, total, nil
}

// GeneralSurveyAnalytics aggregates affirmative answer counts and the nationality breakdown
func (c *Client) GeneralSurveyAnalytics(ctx context.Context) (*models.GeneralAnalytics, error) {
	start := time.Now()
	operation := "generalSurveyAnalytics"

	var a models.GeneralAnalytics
	err := c.pool.QueryRow(ctx, `
		SELECT
			count(*),
			count(*) FILTER (WHERE legal_issues = ANY($1)),
			count(*) FILTER (WHERE giveaway_interest = ANY($2))
		FROM general_surveys`,
		models.LegalIssueAnswers.Affirmatives(), models.GiveawayAnswers.Affirmatives(),
	).Scan(&a.TotalSurveys, &a.LegalIssuesYes, &a.GiveawayInterested)
	if err != nil {
		return nil, finish(operation, metrics.MeasureDuration(start), err)
	}

	if a.NationalityBreakdown, err = c.groupCounts(ctx, "general_surveys", "nationality"); err != nil {
		return nil, finish(operation, metrics.MeasureDuration(start), err)
	}
	a.LegalIssuesPercentage = query.Percentage(a.LegalIssuesYes, a.TotalSurveys)

	if err := finish(operation, metrics.MeasureDuration(start), nil, zap.Int("total", a.TotalSurveys)); err != nil {
		return nil, err
	}
	return &a, nil
}

// DeleteGeneralSurvey removes one survey
func (c *Client) DeleteGeneralSurvey(ctx context.Context, id string) error {
	return c.deleteByID(ctx, "deleteGeneralSurvey", "general_surveys", id)
}
