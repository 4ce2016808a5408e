package cache

import (
	"context"
	"time"

	"github.com/legalpulse/survey-api/pkg/logger"
	"github.com/legalpulse/survey-api/pkg/metrics"
	gocache "github.com/patrickmn/go-cache"
	"go.uber.org/zap"
)

const (
	analyticsCacheName = "analytics"
	cleanupInterval    = time.Minute
)

// Keys of the cached analytics summaries
const (
	LawyerAnalyticsKey  = "analytics:lawyer"
	GeneralAnalyticsKey = "analytics:general"
)

// AnalyticsCache holds analytics summaries for a short TTL. Writes to a
// survey kind invalidate its summary, so a cached value is never older than
// the last accepted change made through this process.
type AnalyticsCache struct {
	cache *gocache.Cache
	ttl   time.Duration
}

// NewAnalyticsCache creates a cache; a non-positive TTL disables caching
func NewAnalyticsCache(ttlSeconds int) *AnalyticsCache {
	ttl := time.Duration(ttlSeconds) * time.Second
	return &AnalyticsCache{
		cache: gocache.New(ttl, cleanupInterval),
		ttl:   ttl,
	}
}

// Enabled reports whether summaries are cached at all
func (c *AnalyticsCache) Enabled() bool {
	return c != nil && c.ttl > 0
}

// Invalidate drops one cached summary
func (c *AnalyticsCache) Invalidate(key string) {
	if !c.Enabled() {
		return
	}
	c.cache.Delete(key)
	metrics.CacheSize.WithLabelValues(analyticsCacheName).Set(float64(c.cache.ItemCount()))
	logger.Debug("Analytics cache invalidated", zap.String("key", key))
}

// Load returns the cached value under key, or loads and caches it
func Load[T any](ctx context.Context, c *AnalyticsCache, key string, load func(context.Context) (T, error)) (T, error) {
	if !c.Enabled() {
		return load(ctx)
	}

	if data, found := c.cache.Get(key); found {
		if value, ok := data.(T); ok {
			metrics.CacheHits.WithLabelValues(analyticsCacheName).Inc()
			return value, nil
		}
		logger.Error("Invalid analytics cache data type", zap.String("key", key))
		c.cache.Delete(key)
	}

	metrics.CacheMisses.WithLabelValues(analyticsCacheName).Inc()
	value, err := load(ctx)
	if err != nil {
		return value, err
	}

	c.cache.Set(key, value, c.ttl)
	metrics.CacheSize.WithLabelValues(analyticsCacheName).Set(float64(c.cache.ItemCount()))
	return value, nil
}
