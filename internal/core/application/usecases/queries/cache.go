package queries

import (
	"context"
)

// UnclaimedPoolCache serves bounded-staleness reads of the unclaimed pool.
// The cache is advisory: a miss or a cache failure falls through to the
// authoritative store, and the claim path never consults it.
type UnclaimedPoolCache interface {
	// Get returns the cached pool and true on a hit.
	Get(ctx context.Context) ([]UnclaimedOrderView, bool)

	// Set stores the pool snapshot. Failures are swallowed by the
	// implementation.
	Set(ctx context.Context, orders []UnclaimedOrderView)
}

// NopUnclaimedPoolCache always misses. Used when no cache is configured.
type NopUnclaimedPoolCache struct{}

func (NopUnclaimedPoolCache) Get(context.Context) ([]UnclaimedOrderView, bool) {
	return nil, false
}

func (NopUnclaimedPoolCache) Set(context.Context, []UnclaimedOrderView) {}
