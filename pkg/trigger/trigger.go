package trigger

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/legalpulse/survey-api/pkg/circuitbreaker"
	"github.com/legalpulse/survey-api/pkg/httpclient"
	"github.com/legalpulse/survey-api/pkg/logger"
	"github.com/legalpulse/survey-api/pkg/metrics"
	"go.uber.org/zap"
)

// Notifier calls a webhook with a record id appended to its URL, e.g.
// https://hooks.example/lead?id=<record id>
type Notifier struct {
	url     string
	client  httpclient.Client
	breaker *circuitbreaker.Breaker
}

// NewNotifier returns a Notifier for url. An empty url disables it.
func NewNotifier(url string, client httpclient.Client) *Notifier {
	return &Notifier{
		url:     url,
		client:  client,
		breaker: circuitbreaker.New(circuitbreaker.DefaultConfig("lead-trigger")),
	}
}

// Enabled reports whether a webhook URL is configured
func (n *Notifier) Enabled() bool {
	return n != nil && n.url != ""
}

// Notify issues GET <url><recordID> and fails on a non-2xx response.
// While the webhook keeps failing the breaker rejects calls without sending them.
func (n *Notifier) Notify(ctx context.Context, recordID string) error {
	if !n.Enabled() {
		return nil
	}

	_, err := circuitbreaker.Execute(n.breaker, func() (struct{}, error) {
		return struct{}{}, n.call(ctx, recordID)
	})
	if errors.Is(err, circuitbreaker.ErrOpen) {
		metrics.LeadNotifications.WithLabelValues("circuit_open").Inc()
	}
	return err
}

func (n *Notifier) call(ctx context.Context, recordID string) error {
	targetURL := n.url + recordID
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, targetURL, http.NoBody)
	if err != nil {
		return fmt.Errorf("failed to build trigger request: %w", err)
	}

	resp, err := n.client.Do(req)
	if err != nil {
		metrics.LeadNotifications.WithLabelValues("error").Inc()
		return fmt.Errorf("trigger call failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		metrics.LeadNotifications.WithLabelValues("rejected").Inc()
		return fmt.Errorf("trigger returned status %d", resp.StatusCode)
	}

	metrics.LeadNotifications.WithLabelValues("success").Inc()
	return nil
}

// NotifyAsync runs Notify in a goroutine detached from the request context.
// Failures are logged and never reach the caller.
func (n *Notifier) NotifyAsync(recordID string) {
	if !n.Enabled() {
		return
	}

	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), httpclient.DefaultTimeout)
		defer cancel()

		start := time.Now()
		if err := n.Notify(ctx, recordID); err != nil {
			logger.LogError(err, "Failed to call trigger URL", zap.String("record_id", recordID))
			return
		}

		logger.Info("Trigger URL called successfully",
			zap.String("record_id", recordID),
			zap.Duration("duration", time.Since(start)))
	}()
}
