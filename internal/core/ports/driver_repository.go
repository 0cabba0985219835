package ports

import (
	"context"

	"driverhub/internal/core/domain/model/driver"
	"driverhub/internal/core/domain/model/kernel"
)

// DriverRepository defines the persistence contract for driver aggregates.
type DriverRepository interface {
	// Add persists a new driver record to storage. The store enforces a
	// uniqueness constraint on the identity key.
	Add(ctx context.Context, aggregate *driver.Driver) error

	// Update persists changes to an existing driver record.
	Update(ctx context.Context, aggregate *driver.Driver) error

	// Get retrieves a driver record by its unique identifier.
	// Returns errs.ObjectNotFoundError when no such driver exists.
	Get(ctx context.Context, id kernel.UUID) (*driver.Driver, error)

	// GetByIdentityKey retrieves the driver record linked to an external
	// actor identity. Returns errs.ObjectNotFoundError when no record
	// matches and ErrMultipleRecordsForIdentity when more than one does.
	// The latter is an integrity failure that is never resolved by
	// silently picking one record.
	GetByIdentityKey(ctx context.Context, identityKey string) (*driver.Driver, error)

	// GetAll retrieves every driver record. Used by the activity
	// reconciliation job.
	GetAll(ctx context.Context) ([]*driver.Driver, error)
}
