package profiling

import (
	"testing"

	"github.com/grafana/pyroscope-go"
	"github.com/legalpulse/survey-api/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseProfileTypes_Default(t *testing.T) {
	got, err := parseProfileTypes("")
	require.NoError(t, err)
	assert.Equal(t, defaultProfileTypes, got)
}

func TestParseProfileTypes_Custom(t *testing.T) {
	got, err := parseProfileTypes("cpu, alloc_space,mutex")
	require.NoError(t, err)

	assert.Equal(t, []pyroscope.ProfileType{
		pyroscope.ProfileCPU,
		pyroscope.ProfileAllocSpace,
		pyroscope.ProfileMutexCount,
		pyroscope.ProfileMutexDuration,
	}, got)
}

func TestParseProfileTypes_Invalid(t *testing.T) {
	_, err := parseProfileTypes("cpu,unknown")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported O11Y_PROFILING_SAMPLE_TYPES")
}

func TestBuildApplicationName(t *testing.T) {
	got := buildApplicationName("survey-api", config.ObservabilityConfig{
		ServiceName:       "survey-api",
		ServiceNamespace:  "legalpulse",
		ServiceVersion:    "2.0.0",
		ServiceInstanceID: "inst-1",
	}, "production")
	assert.Equal(t, "survey-api{service_name=survey-api,namespace=legalpulse,environment=production,service_version=2.0.0,instance=inst-1}", got)
}

func TestBuildApplicationName_DefaultsBlankAppName(t *testing.T) {
	got := buildApplicationName("  ", config.ObservabilityConfig{
		ServiceName:      "svc",
		ServiceNamespace: "ns",
		ServiceVersion:   "1.0.0",
	}, "staging")
	assert.Equal(t, "survey-api{service_name=svc,namespace=ns,environment=staging,service_version=1.0.0,instance=}", got)
}

func TestInitProfiler_Disabled(t *testing.T) {
	stop, err := InitProfiler(config.ProfilingConfig{}, config.ObservabilityConfig{}, "test")
	require.NoError(t, err)
	require.NotNil(t, stop)
	stop()
}

func TestInitProfiler_RequiresEndpoint(t *testing.T) {
	_, err := InitProfiler(config.ProfilingConfig{Enabled: true, Endpoint: "  "}, config.ObservabilityConfig{}, "test")
	assert.Error(t, err)
}
