// Package rediscache provides a Redis-backed cache for the unclaimed order
// pool. The cache is advisory with a short TTL: any failure degrades to a
// miss and the caller falls through to the authoritative store.
package rediscache

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"time"

	"driverhub/internal/core/application/usecases/queries"

	"github.com/redis/go-redis/v9"
)

const unclaimedPoolKey = "orders:unclaimed"

// UnclaimedPoolCache implements queries.UnclaimedPoolCache over a Redis
// client. Entries are JSON snapshots of the pool with a bounded TTL, which
// caps staleness: a stale entry can at worst show an order that was just
// claimed, and the claim path rejects that attempt against the store.
type UnclaimedPoolCache struct {
	client *redis.Client
	ttl    time.Duration
	logger *slog.Logger
}

// NewUnclaimedPoolCache creates a cache over the given Redis client.
func NewUnclaimedPoolCache(client *redis.Client, ttl time.Duration, logger *slog.Logger) *UnclaimedPoolCache {
	return &UnclaimedPoolCache{
		client: client,
		ttl:    ttl,
		logger: logger.With("component", "unclaimed-pool-cache"),
	}
}

// Get returns the cached pool snapshot and true on a hit. Redis failures
// and decode failures are logged and reported as a miss.
func (c *UnclaimedPoolCache) Get(ctx context.Context) ([]queries.UnclaimedOrderView, bool) {
	raw, err := c.client.Get(ctx, unclaimedPoolKey).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false
	}
	if err != nil {
		c.logger.Warn("cache read failed", "error", err)
		return nil, false
	}

	var orders []queries.UnclaimedOrderView
	if err = json.Unmarshal(raw, &orders); err != nil {
		c.logger.Warn("cache entry corrupted", "error", err)
		return nil, false
	}

	return orders, true
}

// Set stores a pool snapshot. Failures are logged and swallowed; the cache
// never fails a read path.
func (c *UnclaimedPoolCache) Set(ctx context.Context, orders []queries.UnclaimedOrderView) {
	raw, err := json.Marshal(orders)
	if err != nil {
		c.logger.Warn("cache encode failed", "error", err)
		return
	}

	if err = c.client.Set(ctx, unclaimedPoolKey, raw, c.ttl).Err(); err != nil {
		c.logger.Warn("cache write failed", "error", err)
	}
}
