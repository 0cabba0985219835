// Package orderrepo provides data transfer objects and mapping functions for order persistence.
// This package implements the repository pattern for the order domain aggregate, handling
// the conversion between domain entities and database representations.
package orderrepo

import (
	"time"

	"driverhub/internal/core/domain/model/kernel"
	"driverhub/internal/core/domain/model/order"

	"github.com/google/uuid"
)

// OrderDTO represents the database structure for persisting order aggregates.
// Indexed by shop and driver references for the role-scoped list queries.
type OrderDTO struct {
	ID              uuid.UUID  `gorm:"type:uuid;primaryKey"`
	ShopID          uuid.UUID  `gorm:"type:uuid;index"`
	DriverID        *uuid.UUID `gorm:"type:uuid;index"`
	CreatedAt       time.Time  `gorm:"index"`
	TotalCents      int64
	CommissionCents int64
	Address         string
	Status          int
}

// TableName specifies the database table name for order entities.
// Overrides GORM's default naming convention to use "orders".
func (OrderDTO) TableName() string {
	return "orders"
}

// fromDomain converts an order domain aggregate to its database representation.
func fromDomain(aggregate *order.Order) OrderDTO {
	var driverID *uuid.UUID
	if id := aggregate.Driver(); id != nil {
		raw := id.Bytes()
		driverID = &raw
	}

	return OrderDTO{
		ID:              aggregate.ID().Bytes(),
		ShopID:          aggregate.ShopID().Bytes(),
		DriverID:        driverID,
		CreatedAt:       aggregate.CreatedAt(),
		TotalCents:      aggregate.Total().Cents(),
		CommissionCents: aggregate.Commission().Cents(),
		Address:         aggregate.Address(),
		Status:          int(aggregate.Status()),
	}
}

// toDomain converts a database DTO to an order domain aggregate using RestoreOrder.
func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	shopID, err := kernel.UUIDFromBytes(dto.ShopID[:])
	if err != nil {
		return nil, err
	}

	var driverID *kernel.UUID
	if dto.DriverID != nil {
		dID, driverErr := kernel.UUIDFromBytes((*dto.DriverID)[:])
		if driverErr != nil {
			return nil, driverErr
		}

		driverID = &dID
	}

	total, err := kernel.NewMoneyFromCents(dto.TotalCents)
	if err != nil {
		return nil, err
	}

	commission, err := kernel.NewMoneyFromCents(dto.CommissionCents)
	if err != nil {
		return nil, err
	}

	return order.RestoreOrder(
		id,
		shopID,
		driverID,
		dto.CreatedAt,
		total,
		commission,
		dto.Address,
		order.Status(dto.Status),
	)
}
