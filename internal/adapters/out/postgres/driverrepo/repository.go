package driverrepo

import (
	"context"
	"errors"

	"driverhub/internal/core/domain/model/driver"
	"driverhub/internal/core/domain/model/kernel"
	"driverhub/internal/core/ports"
	"driverhub/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormDriverRepository implements DriverRepository using GORM.
type GormDriverRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormDriverRepository creates a new GORM driver repository.
func NewGormDriverRepository(db *gorm.DB, tracker aggregateTracker) *GormDriverRepository {
	return &GormDriverRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new driver to the database.
func (r *GormDriverRepository) Add(ctx context.Context, aggregate *driver.Driver) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return errs.WrapStoreUnavailable("add driver", err)
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update saves an existing driver to the database. Flag fields are written
// explicitly so that clearing a flag is not dropped as a zero value.
func (r *GormDriverRepository) Update(ctx context.Context, aggregate *driver.Driver) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).
		Model(&DriverDTO{}).
		Where("id = ?", dto.ID).
		Updates(map[string]any{
			"identity_key": dto.IdentityKey,
			"name":         dto.Name,
			"online":       dto.Online,
			"on_delivery":  dto.OnDelivery,
		})
	if result.Error != nil {
		return errs.WrapStoreUnavailable("update driver", result.Error)
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("driver", aggregate.ID().String())
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves a driver by ID.
func (r *GormDriverRepository) Get(ctx context.Context, id kernel.UUID) (*driver.Driver, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto DriverDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("driver", id.String())
		}
		return nil, errs.WrapStoreUnavailable("get driver", err)
	}

	return toDomain(dto)
}

// GetByIdentityKey retrieves the single driver whose identity key equals
// identityKey. The unique index makes a second match impossible in a
// healthy store; if one appears anyway the lookup fails loudly with
// ports.ErrMultipleRecordsForIdentity instead of picking one.
func (r *GormDriverRepository) GetByIdentityKey(ctx context.Context, identityKey string) (*driver.Driver, error) {
	if identityKey == "" {
		return nil, errs.NewValueIsRequiredError("identityKey")
	}

	var dtos []DriverDTO
	err := r.db.WithContext(ctx).
		Where("identity_key = ?", identityKey).
		Limit(2).
		Find(&dtos).Error
	if err != nil {
		return nil, errs.WrapStoreUnavailable("get driver by identity key", err)
	}

	switch len(dtos) {
	case 0:
		return nil, errs.NewObjectNotFoundError("driver", identityKey)
	case 1:
		return toDomain(dtos[0])
	default:
		return nil, ports.ErrMultipleRecordsForIdentity
	}
}

// GetAll retrieves all driver records.
func (r *GormDriverRepository) GetAll(ctx context.Context) ([]*driver.Driver, error) {
	var dtos []DriverDTO
	if err := r.db.WithContext(ctx).Find(&dtos).Error; err != nil {
		return nil, errs.WrapStoreUnavailable("get all drivers", err)
	}

	drivers := make([]*driver.Driver, 0, len(dtos))
	for _, dto := range dtos {
		d, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		drivers = append(drivers, d)
	}

	return drivers, nil
}
