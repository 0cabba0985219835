// Package ports defines the contracts between the dispatch core and its
// infrastructure: repositories, the unit of work, and identity resolution.
// These interfaces enable dependency inversion and testability.
package ports

import (
	"context"

	"driverhub/internal/core/domain/model/kernel"
	"driverhub/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
type OrderRepository interface {
	// Add persists a new order aggregate to storage.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists changes to an existing order aggregate.
	// Used for transitions on rows the caller already exclusively owns
	// (MarkDelivered by the claimant); plain last-writer-wins semantics.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order aggregate by its unique identifier.
	// Returns errs.ObjectNotFoundError when no such order exists.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// Claim persists a freshly claimed order with a conditional write: the
	// update applies only if the stored claiming driver reference is still
	// null. When a concurrent claim won the race, the row is left untouched
	// and order.ErrOrderAlreadyClaimed is returned. This is the store-side
	// half of the claim-exclusivity guarantee and must always target the
	// authoritative, strongly consistent store.
	Claim(ctx context.Context, aggregate *order.Order) error

	// GetAllInFlight retrieves all orders that are claimed but not yet
	// delivered, across all drivers. Used by the activity reconciliation job.
	GetAllInFlight(ctx context.Context) ([]*order.Order, error)
}
