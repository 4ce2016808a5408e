package postgres

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/legalpulse/survey-api/internal/models"
	apperrors "github.com/legalpulse/survey-api/pkg/errors"
	"github.com/legalpulse/survey-api/pkg/metrics"
	"go.uber.org/zap"
)

func whereClause(conditions []string) string {
	if len(conditions) == 0 {
		return ""
	}
	return " WHERE " + strings.Join(conditions, " AND ")
}

// orderBy renders a sort spec against a column allowlist; insertion order breaks ties.
// Fields missing from columns are skipped.
func orderBy(spec models.SortSpec, columns map[string]string) string {
	terms := make([]string, 0, len(spec)+1)
	for _, key := range spec {
		column, ok := columns[key.Field]
		if !ok {
			continue
		}
		direction := "ASC"
		if key.Descending {
			direction = "DESC"
		}
		terms = append(terms, column+" "+direction)
	}
	terms = append(terms, "seq ASC")
	return strings.Join(terms, ", ")
}

// groupCounts counts rows per column value, largest group first then by value.
// table and column are never user input.
func (c *Client) groupCounts(ctx context.Context, table, column string) ([]models.GroupCount, error) {
	query := fmt.Sprintf(
		`SELECT %[2]s, count(*) FROM %[1]s GROUP BY %[2]s ORDER BY count(*) DESC, %[2]s COLLATE "C" ASC`,
		table, column)

	rows, err := c.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	groups := make([]models.GroupCount, 0)
	for rows.Next() {
		var g models.GroupCount
		if err := rows.Scan(&g.Value, &g.Count); err != nil {
			return nil, fmt.Errorf("failed to scan %s group: %w", column, err)
		}
		groups = append(groups, g)
	}
	return groups, rows.Err()
}

func (c *Client) deleteByID(ctx context.Context, operation, table, id string) error {
	start := time.Now()

	result, err := c.pool.Exec(ctx, fmt.Sprintf(`DELETE FROM %s WHERE id = $1`, table), id)
	if err == nil && result.RowsAffected() == 0 {
		err = apperrors.ErrNotFound
	}
	return finish(operation, metrics.MeasureDuration(start), err, zap.String("survey_id", id))
}
