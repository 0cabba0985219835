package shoprepo

import (
	"context"
	"errors"

	"driverhub/internal/core/domain/model/kernel"
	"driverhub/internal/core/domain/model/shop"
	"driverhub/internal/core/ports"
	"driverhub/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormShopRepository implements ShopRepository using GORM.
type GormShopRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormShopRepository creates a new GORM shop repository.
func NewGormShopRepository(db *gorm.DB, tracker aggregateTracker) *GormShopRepository {
	return &GormShopRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new shop to the database.
func (r *GormShopRepository) Add(ctx context.Context, aggregate *shop.Shop) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return errs.WrapStoreUnavailable("add shop", err)
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update saves an existing shop to the database. The open flag is written
// explicitly so that closing a shop is not dropped as a zero value.
func (r *GormShopRepository) Update(ctx context.Context, aggregate *shop.Shop) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).
		Model(&ShopDTO{}).
		Where("id = ?", dto.ID).
		Updates(map[string]any{
			"identity_key": dto.IdentityKey,
			"name":         dto.Name,
			"open":         dto.Open,
		})
	if result.Error != nil {
		return errs.WrapStoreUnavailable("update shop", result.Error)
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("shop", aggregate.ID().String())
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves a shop by ID.
func (r *GormShopRepository) Get(ctx context.Context, id kernel.UUID) (*shop.Shop, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto ShopDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("shop", id.String())
		}
		return nil, errs.WrapStoreUnavailable("get shop", err)
	}

	return toDomain(dto)
}

// GetByIdentityKey retrieves the single shop whose identity key equals
// identityKey, failing loudly with ports.ErrMultipleRecordsForIdentity if
// the uniqueness invariant is violated.
func (r *GormShopRepository) GetByIdentityKey(ctx context.Context, identityKey string) (*shop.Shop, error) {
	if identityKey == "" {
		return nil, errs.NewValueIsRequiredError("identityKey")
	}

	var dtos []ShopDTO
	err := r.db.WithContext(ctx).
		Where("identity_key = ?", identityKey).
		Limit(2).
		Find(&dtos).Error
	if err != nil {
		return nil, errs.WrapStoreUnavailable("get shop by identity key", err)
	}

	switch len(dtos) {
	case 0:
		return nil, errs.NewObjectNotFoundError("shop", identityKey)
	case 1:
		return toDomain(dtos[0])
	default:
		return nil, ports.ErrMultipleRecordsForIdentity
	}
}
