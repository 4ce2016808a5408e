package cache

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_CachesUntilInvalidated(t *testing.T) {
	c := NewAnalyticsCache(60)
	calls := 0
	load := func(context.Context) (int, error) {
		calls++
		return calls, nil
	}

	first, err := Load(context.Background(), c, LawyerAnalyticsKey, load)
	require.NoError(t, err)
	second, err := Load(context.Background(), c, LawyerAnalyticsKey, load)
	require.NoError(t, err)
	assert.Equal(t, 1, first)
	assert.Equal(t, 1, second)

	c.Invalidate(LawyerAnalyticsKey)
	third, err := Load(context.Background(), c, LawyerAnalyticsKey, load)
	require.NoError(t, err)
	assert.Equal(t, 2, third)
}

func TestLoad_DisabledAlwaysLoads(t *testing.T) {
	c := NewAnalyticsCache(0)
	calls := 0
	load := func(context.Context) (int, error) {
		calls++
		return calls, nil
	}

	_, _ = Load(context.Background(), c, GeneralAnalyticsKey, load)
	v, err := Load(context.Background(), c, GeneralAnalyticsKey, load)

	require.NoError(t, err)
	assert.Equal(t, 2, v)
	assert.False(t, c.Enabled())
}

func TestLoad_ErrorsAreNotCached(t *testing.T) {
	c := NewAnalyticsCache(60)
	fail := true
	load := func(context.Context) (string, error) {
		if fail {
			return "", errors.New("store down")
		}
		return "ok", nil
	}

	_, err := Load(context.Background(), c, GeneralAnalyticsKey, load)
	assert.Error(t, err)

	fail = false
	v, err := Load(context.Background(), c, GeneralAnalyticsKey, load)
	require.NoError(t, err)
	assert.Equal(t, "ok", v)
}
