package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	apperrors "github.com/legalpulse/survey-api/pkg/errors"
	"github.com/legalpulse/survey-api/pkg/logger"
	"github.com/legalpulse/survey-api/pkg/metrics"
	"go.uber.org/zap"
)

// uniqueViolation is the SQLSTATE raised by a unique index
const uniqueViolation = "23505"

// invalidTextRepresentation is raised when an id is not a valid UUID
const invalidTextRepresentation = "22P02"

// Client runs survey queries against a pgx connection pool
type Client struct {
	pool *pgxpool.Pool
}

// NewClient wraps an initialised pool
func NewClient(pool *pgxpool.Pool) *Client {
	return &Client{pool: pool}
}

// Ping checks if the database connection is alive
func (c *Client) Ping(ctx context.Context) error {
	return c.pool.Ping(ctx)
}

// Stats returns connection pool statistics
func (c *Client) Stats() *pgxpool.Stat {
	return c.pool.Stat()
}

// RecordPoolStats publishes the pool gauges every interval until ctx is done
func (c *Client) RecordPoolStats(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		c.recordPoolStats()
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
		}
	}
}

func (c *Client) recordPoolStats() {
	stat := c.Stats()
	metrics.DBPoolConnections.WithLabelValues("max").Set(float64(stat.MaxConns()))
	metrics.DBPoolConnections.WithLabelValues("total").Set(float64(stat.TotalConns()))
	metrics.DBPoolConnections.WithLabelValues("idle").Set(float64(stat.IdleConns()))
	metrics.DBPoolConnections.WithLabelValues("acquired").Set(float64(stat.AcquiredConns()))
}

// recordMetrics records database operation metrics
func recordMetrics(operation, status string, duration float64) {
	metrics.DBOperationDuration.WithLabelValues(operation, status).Observe(duration)
	metrics.DBOperationTotal.WithLabelValues(operation, status).Inc()
}

// finish records metrics and logs the outcome of a store operation, mapping
// driver errors to application errors
func finish(operation string, duration float64, err error, fields ...zap.Field) error {
	if err == nil {
		recordMetrics(operation, "success", duration)
		logger.LogAPICall("postgres", operation, "success", duration, fields...)
		return nil
	}

	if errors.Is(err, pgx.ErrNoRows) || errors.Is(err, apperrors.ErrNotFound) {
		recordMetrics(operation, "not_found", duration)
		return apperrors.NotFoundError("survey")
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case uniqueViolation:
			recordMetrics(operation, "conflict", duration)
			return apperrors.ConflictError("a survey with this email has already been submitted")
		case invalidTextRepresentation:
			recordMetrics(operation, "not_found", duration)
			return apperrors.NotFoundError("survey")
		}
	}

	recordMetrics(operation, "error", duration)
	logger.LogAPICall("postgres", operation, "error", duration, append(fields, zap.Error(err))...)
	return fmt.Errorf("%s failed: %w", operation, err)
}

// escapeLike escapes LIKE wildcards so user input matches literally
func escapeLike(s string) string {
	return strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`).Replace(s)
}

// args accumulates positional query arguments
type args []any

// add appends v and returns its placeholder
func (a *args) add(v any) string {
	*a = append(*a, v)
	return fmt.Sprintf("$%d", len(*a))
}
