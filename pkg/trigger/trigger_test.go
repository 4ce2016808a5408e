package trigger

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/legalpulse/survey-api/pkg/circuitbreaker"
	"github.com/legalpulse/survey-api/pkg/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestNotifier_Notify(t *testing.T) {
	// Setup
	var gotQuery string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.Query().Get("id")
		w.WriteHeader(http.StatusAccepted)
	}))
	defer server.Close()

	n := NewNotifier(server.URL+"/lead?id=", server.Client())

	// Execute
	err := n.Notify(context.Background(), "rec-1")

	// Assert
	require.NoError(t, err)
	assert.Equal(t, "rec-1", gotQuery)
}

func TestNotifier_NotifyNonSuccessStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer server.Close()

	err := NewNotifier(server.URL+"?id=", server.Client()).Notify(context.Background(), "rec-1")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "502")
}

func TestNotifier_Disabled(t *testing.T) {
	n := NewNotifier("", http.DefaultClient)

	assert.False(t, n.Enabled())
	assert.NoError(t, n.Notify(context.Background(), "rec-1"))
	n.NotifyAsync("rec-1")

	var nilNotifier *Notifier
	assert.False(t, nilNotifier.Enabled())
}

func TestNotifier_NotifyAsync(t *testing.T) {
	called := make(chan string, 1)
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called <- r.URL.Query().Get("id")
	}))
	defer server.Close()

	NewNotifier(server.URL+"?id=", server.Client()).NotifyAsync("rec-2")

	select {
	case id := <-called:
		assert.Equal(t, "rec-2", id)
	case <-time.After(2 * time.Second):
		t.Fatal("webhook was not called")
	}
}

func TestNotifier_BreakerStopsCallingFailingWebhook(t *testing.T) {
	// Setup
	var calls atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	n := NewNotifier(server.URL+"?id=", server.Client())

	// Execute
	for i := 0; i < 3; i++ {
		require.Error(t, n.Notify(context.Background(), "rec"))
	}
	err := n.Notify(context.Background(), "rec")

	// Assert
	require.ErrorIs(t, err, circuitbreaker.ErrOpen)
	assert.Equal(t, int32(3), calls.Load())
}

func TestNotifier_NotifyAsyncLogsFailure(t *testing.T) {
	// Setup
	core, logs := observer.New(zapcore.ErrorLevel)
	previous := logger.Log
	logger.Log = zap.New(core)
	t.Cleanup(func() { logger.Log = previous })

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer server.Close()

	// Execute
	NewNotifier(server.URL+"?id=", server.Client()).NotifyAsync("rec-3")

	// Assert
	require.Eventually(t, func() bool { return logs.Len() == 1 }, 2*time.Second, 10*time.Millisecond)
	entry := logs.All()[0]
	assert.Equal(t, "Failed to call trigger URL", entry.Message)
	assert.Equal(t, "rec-3", entry.ContextMap()["record_id"])
	assert.Contains(t, entry.ContextMap()["error"], "503")
}
