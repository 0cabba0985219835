package ports

import (
	"context"

	"driverhub/internal/core/domain/model/kernel"
	"driverhub/internal/core/domain/model/shop"
)

// ShopRepository defines the persistence contract for shop aggregates.
type ShopRepository interface {
	// Add persists a new shop record to storage. The store enforces a
	// uniqueness constraint on the identity key.
	Add(ctx context.Context, aggregate *shop.Shop) error

	// Update persists changes to an existing shop record.
	Update(ctx context.Context, aggregate *shop.Shop) error

	// Get retrieves a shop record by its unique identifier.
	// Returns errs.ObjectNotFoundError when no such shop exists.
	Get(ctx context.Context, id kernel.UUID) (*shop.Shop, error)

	// GetByIdentityKey retrieves the shop record linked to an external actor
	// identity, with the same zero/multiple-record semantics as
	// DriverRepository.GetByIdentityKey.
	GetByIdentityKey(ctx context.Context, identityKey string) (*shop.Shop, error)
}
