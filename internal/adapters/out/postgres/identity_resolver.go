package postgres

import (
	"context"
	"errors"

	"driverhub/internal/adapters/out/postgres/driverrepo"
	"driverhub/internal/adapters/out/postgres/shoprepo"
	"driverhub/internal/core/domain/model/driver"
	"driverhub/internal/core/domain/model/kernel"
	"driverhub/internal/core/domain/model/shop"
	"driverhub/internal/core/ports"
	"driverhub/internal/pkg/errs"
)

// GormIdentityResolver resolves authenticated actor ids to Driver and Shop
// records through the identity key columns. Resolution is a read outside
// any unit of work; the resolved aggregate is then passed into commands.
type GormIdentityResolver struct {
	drivers *driverrepo.GormDriverRepository
	shops   *shoprepo.GormShopRepository
}

// NewGormIdentityResolver creates a resolver over the given repositories.
func NewGormIdentityResolver(
	drivers *driverrepo.GormDriverRepository,
	shops *shoprepo.GormShopRepository,
) *GormIdentityResolver {
	return &GormIdentityResolver{drivers: drivers, shops: shops}
}

// ResolveDriver returns the single driver record whose identity key equals
// actorID. A missing record becomes ports.ErrActorHasNoRecord; a duplicate
// identity key surfaces as ports.ErrMultipleRecordsForIdentity unchanged.
func (r *GormIdentityResolver) ResolveDriver(ctx context.Context, actorID string) (*driver.Driver, error) {
	found, err := r.drivers.GetByIdentityKey(ctx, actorID)
	if err != nil {
		if errors.Is(err, errs.ErrObjectNotFound) {
			return nil, ports.ErrActorHasNoRecord
		}
		return nil, err
	}

	return found, nil
}

// ResolveShop is the shop counterpart of ResolveDriver.
func (r *GormIdentityResolver) ResolveShop(ctx context.Context, actorID string) (*shop.Shop, error) {
	found, err := r.shops.GetByIdentityKey(ctx, actorID)
	if err != nil {
		if errors.Is(err, errs.ErrObjectNotFound) {
			return nil, ports.ErrActorHasNoRecord
		}
		return nil, err
	}

	return found, nil
}

// NopAggregateTracker satisfies the repositories' tracker dependency for
// read-only use outside a unit of work.
type NopAggregateTracker struct{}

func (NopAggregateTracker) TrackAggregate(kernel.UUID, any) {}
