package tracing

import (
	"context"
	"errors"
	"testing"

	"github.com/legalpulse/survey-api/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitTracer_DisabledWithoutEndpoint(t *testing.T) {
	shutdown, err := InitTracer(config.ObservabilityConfig{ServiceName: "survey-api"}, "test")

	require.NoError(t, err)
	assert.NoError(t, shutdown(context.Background()))
}

func TestStartSpan_WithoutTracerIsNonRecording(t *testing.T) {
	ctx := context.Background()

	spanCtx, span := StartSpan(ctx, "LawyerSurveyService.Submit")

	assert.Equal(t, ctx, spanCtx)
	assert.False(t, span.IsRecording())
	End(span, errors.New("boom"))
}
