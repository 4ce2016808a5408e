package httpclient

import (
	"net/http"
	"time"
)

// DefaultTimeout bounds outbound webhook calls when no timeout is configured
const DefaultTimeout = 30 * time.Second

// Client is the subset of *http.Client used for outbound calls, so tests
// can substitute a fake transport
type Client interface {
	Do(req *http.Request) (*http.Response, error)
}

// New returns an http.Client with the given timeout, falling back to
// DefaultTimeout for non-positive values
func New(timeout time.Duration) *http.Client {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &http.Client{Timeout: timeout}
}
