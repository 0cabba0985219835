// Package driverrepo provides data transfer objects and mapping functions for driver persistence.
// This package implements the repository pattern for the driver domain aggregate, handling
// the conversion between domain entities and database representations.
package driverrepo

import (
	"driverhub/internal/core/domain/model/driver"
	"driverhub/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// DriverDTO represents the database structure for persisting driver aggregates.
// The identity key carries a unique index: the store enforces the
// one-record-per-actor invariant that identity resolution relies on.
type DriverDTO struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	IdentityKey string    `gorm:"type:varchar(255);not null;uniqueIndex"`
	Name        string    `gorm:"type:varchar(255);not null"`
	Online      bool      `gorm:"not null"`
	OnDelivery  bool      `gorm:"not null"`
}

// TableName specifies the database table name for driver entities.
// Overrides GORM's default naming convention to use "drivers".
func (DriverDTO) TableName() string {
	return "drivers"
}

// fromDomain converts a driver domain aggregate to its database representation.
func fromDomain(aggregate *driver.Driver) DriverDTO {
	return DriverDTO{
		ID:          aggregate.ID().Bytes(),
		IdentityKey: aggregate.IdentityKey(),
		Name:        aggregate.Name(),
		Online:      aggregate.IsOnline(),
		OnDelivery:  aggregate.IsOnDelivery(),
	}
}

// toDomain converts a database DTO to a driver domain aggregate using RestoreDriver.
func toDomain(dto DriverDTO) (*driver.Driver, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	return driver.RestoreDriver(id, dto.IdentityKey, dto.Name, dto.Online, dto.OnDelivery)
}
