package redis

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/vaais251/GB-Guide/internal/api/metrics"
)

const listingTTL = 5 * time.Minute

// ListingCache caches serialized public listing payloads in Redis.
// All operations are best-effort: an unreachable cache degrades to a miss and
// never fails the request.
type ListingCache struct {
	client *redis.Client
	log    zerolog.Logger
}

// NewListingCache creates a ListingCache wrapping the given Redis client.
func NewListingCache(client *redis.Client, log zerolog.Logger) *ListingCache {
	return &ListingCache{client: client, log: log}
}

// Get returns the cached payload for key, reporting a miss on absence or error.
func (c *ListingCache) Get(ctx context.Context, key string) ([]byte, bool) {
	payload, err := c.client.Get(ctx, key).Bytes()
	if err != nil {
		if err != redis.Nil {
			c.log.Warn().Err(err).Str("key", key).Msg("listing cache read failed")
		}
		metrics.ListingCacheTotal.WithLabelValues("miss").Inc()
		return nil, false
	}
	metrics.ListingCacheTotal.WithLabelValues("hit").Inc()
	return payload, true
}

// Set stores payload under key for the listing TTL.
func (c *ListingCache) Set(ctx context.Context, key string, payload []byte) {
	if err := c.client.Set(ctx, key, payload, listingTTL).Err(); err != nil {
		c.log.Warn().Err(err).Str("key", key).Msg("listing cache write failed")
	}
}

// Invalidate removes the given keys.
func (c *ListingCache) Invalidate(ctx context.Context, keys ...string) {
	if len(keys) == 0 {
		return
	}
	if err := c.client.Del(ctx, keys...).Err(); err != nil {
		c.log.Warn().Err(err).Strs("keys", keys).Msg("listing cache invalidation failed")
	}
}
