// Package shoprepo provides data transfer objects and mapping functions for shop persistence.
// This package implements the repository pattern for the shop domain aggregate, handling
// the conversion between domain entities and database representations.
package shoprepo

import (
	"driverhub/internal/core/domain/model/kernel"
	"driverhub/internal/core/domain/model/shop"

	"github.com/google/uuid"
)

// ShopDTO represents the database structure for persisting shop aggregates.
// The identity key carries a unique index, same as the driver table.
type ShopDTO struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	IdentityKey string    `gorm:"type:varchar(255);not null;uniqueIndex"`
	Name        string    `gorm:"type:varchar(255);not null"`
	Open        bool      `gorm:"not null"`
}

// TableName specifies the database table name for shop entities.
// Overrides GORM's default naming convention to use "shops".
func (ShopDTO) TableName() string {
	return "shops"
}

// fromDomain converts a shop domain aggregate to its database representation.
func fromDomain(aggregate *shop.Shop) ShopDTO {
	return ShopDTO{
		ID:          aggregate.ID().Bytes(),
		IdentityKey: aggregate.IdentityKey(),
		Name:        aggregate.Name(),
		Open:        aggregate.IsOpen(),
	}
}

// toDomain converts a database DTO to a shop domain aggregate using RestoreShop.
func toDomain(dto ShopDTO) (*shop.Shop, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	return shop.RestoreShop(id, dto.IdentityKey, dto.Name, dto.Open)
}
