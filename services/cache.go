package services

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// Cache keys for the availability lookup views.
const (
	CacheKeyCities           = "availability:cities"
	CacheKeyAirports         = "availability:airports"
	CacheKeyOutstationCities = "availability:outstation"

	availabilityTTL = 5 * time.Minute
)

// AvailabilityCache keeps the availability lookup responses in Redis. A nil
// client disables caching entirely; every method then reports a miss or
// no-ops, so the server runs fine without Redis.
type AvailabilityCache struct {
	redis *redis.Client
	ttl   time.Duration
}

func NewAvailabilityCache(client *redis.Client) *AvailabilityCache {
	return &AvailabilityCache{redis: client, ttl: availabilityTTL}
}

// Get loads a cached response into out and reports whether it was present.
func (c *AvailabilityCache) Get(ctx context.Context, key string, out interface{}) bool {
	if c == nil || c.redis == nil {
		return false
	}
	data, err := c.redis.Get(ctx, key).Bytes()
	if err != nil {
		return false
	}
	if err := json.Unmarshal(data, out); err != nil {
		zap.L().Warn("Failed to unmarshal cached availability view",
			zap.String("key", key), zap.Error(err))
		return false
	}
	return true
}

// Set stores a response under key with the cache TTL.
func (c *AvailabilityCache) Set(ctx context.Context, key string, value interface{}) {
	if c == nil || c.redis == nil {
		return
	}
	data, err := json.Marshal(value)
	if err != nil {
		zap.L().Warn("Failed to marshal availability view for cache",
			zap.String("key", key), zap.Error(err))
		return
	}
	if err := c.redis.Set(ctx, key, data, c.ttl).Err(); err != nil {
		zap.L().Warn("Failed to cache availability view",
			zap.String("key", key), zap.Error(err))
	}
}

// Invalidate drops the given view keys after a catalog write.
func (c *AvailabilityCache) Invalidate(ctx context.Context, keys ...string) {
	if c == nil || c.redis == nil || len(keys) == 0 {
		return
	}
	if err := c.redis.Del(ctx, keys...).Err(); err != nil {
		zap.L().Warn("Failed to invalidate availability cache", zap.Error(err))
	}
}
