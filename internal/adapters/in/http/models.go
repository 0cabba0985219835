package http

import (
	"time"

	"driverhub/internal/core/domain/model/order"

	"github.com/google/uuid"
)

// ErrorResponse is the JSON error body returned by every handler.
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// OrderResponse is the JSON representation of one order.
type OrderResponse struct {
	ID              uuid.UUID  `json:"id"`
	ShopID          uuid.UUID  `json:"shop_id"`
	DriverID        *uuid.UUID `json:"driver_id,omitempty"`
	CreatedAt       time.Time  `json:"created_at"`
	TotalCents      int64      `json:"total_cents"`
	CommissionCents int64      `json:"commission_cents"`
	Address         string     `json:"address,omitempty"`
	Status          string     `json:"status"`
}

// CreateOrderRequest is the body of POST /api/v1/shops/me/orders.
type CreateOrderRequest struct {
	TotalCents      int64  `json:"total_cents"`
	CommissionCents int64  `json:"commission_cents"`
	Address         string `json:"address"`
}

// SetOnlineRequest is the body of PUT /api/v1/drivers/me/online.
type SetOnlineRequest struct {
	Online bool `json:"online"`
}

// SetOpenRequest is the body of PUT /api/v1/shops/me/open.
type SetOpenRequest struct {
	Open bool `json:"open"`
}

// UnclaimedOrdersResponse carries the claimable pool plus the calling
// driver's own availability flag.
type UnclaimedOrdersResponse struct {
	DriverOnline bool                  `json:"driver_online"`
	Orders       []UnclaimedOrderEntry `json:"orders"`
}

// UnclaimedOrderEntry is one claimable order in the pool response.
type UnclaimedOrderEntry struct {
	ID              uuid.UUID `json:"id"`
	ShopID          uuid.UUID `json:"shop_id"`
	CreatedAt       time.Time `json:"created_at"`
	TotalCents      int64     `json:"total_cents"`
	CommissionCents int64     `json:"commission_cents"`
	Address         string    `json:"address,omitempty"`
}

// ShopOrdersResponse carries a shop's order list plus its open flag.
type ShopOrdersResponse struct {
	ShopOpen bool            `json:"shop_open"`
	Orders   []OrderResponse `json:"orders"`
}

// StatisticsResponse is the aggregate view for both roles. NetCents is
// only populated for shops.
type StatisticsResponse struct {
	HasOrders       bool   `json:"has_orders"`
	OrderCount      int64  `json:"order_count"`
	TotalCents      int64  `json:"total_cents"`
	CommissionCents int64  `json:"commission_cents"`
	NetCents        *int64 `json:"net_cents,omitempty"`
}

// orderToResponse maps an order aggregate to its JSON representation.
func orderToResponse(aggregate *order.Order) OrderResponse {
	var driverID *uuid.UUID
	if id := aggregate.Driver(); id != nil {
		raw := id.Bytes()
		driverID = &raw
	}

	return OrderResponse{
		ID:              aggregate.ID().Bytes(),
		ShopID:          aggregate.ShopID().Bytes(),
		DriverID:        driverID,
		CreatedAt:       aggregate.CreatedAt(),
		TotalCents:      aggregate.Total().Cents(),
		CommissionCents: aggregate.Commission().Cents(),
		Address:         aggregate.Address(),
		Status:          aggregate.Status().String(),
	}
}
