package queries

import (
	"context"

	"driverhub/internal/core/domain/model/order"
	"driverhub/internal/core/ports"
	"driverhub/internal/pkg/errs"

	"gorm.io/gorm"
)

// GetDriverOrdersQueryHandler retrieves the calling driver's claimed orders
// from the database, filtered to in-flight or delivered ones.
type GetDriverOrdersQueryHandler struct {
	db       *gorm.DB
	resolver ports.IdentityResolver
}

// NewGetDriverOrdersQueryHandler creates a handler for driver-scoped order
// list queries.
func NewGetDriverOrdersQueryHandler(db *gorm.DB, resolver ports.IdentityResolver) GetDriverOrdersQueryHandler {
	return GetDriverOrdersQueryHandler{db: db, resolver: resolver}
}

// Handle resolves the calling driver and returns their orders in the
// requested scope, oldest first. The driver reference is taken from the
// resolved record, never from the request.
func (h GetDriverOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetDriverOrdersQuery,
) ([]GetDriverOrdersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	caller, err := h.resolver.ResolveDriver(ctx, query.ActorID())
	if err != nil {
		return nil, err
	}

	status := order.Claimed
	if query.Scope() == ScopeDelivered {
		status = order.Delivered
	}

	orders := make([]GetDriverOrdersQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			shop_id,
			created_at,
			total_cents,
			commission_cents,
			address,
			status
		FROM orders
		WHERE driver_id = ? AND status = ?
		ORDER BY created_at
	`, caller.ID().Bytes(), status).Rows()
	if err != nil {
		return nil, errs.WrapStoreUnavailable("list driver orders", err)
	}
	defer rows.Close()

	for rows.Next() {
		var view GetDriverOrdersQueryResponse
		var rowStatus int

		err = rows.Scan(
			&view.ID,
			&view.ShopID,
			&view.CreatedAt,
			&view.TotalCents,
			&view.CommissionCents,
			&view.Address,
			&rowStatus,
		)
		if err != nil {
			return nil, errs.WrapStoreUnavailable("list driver orders", err)
		}

		view.Delivered = order.Status(rowStatus) == order.Delivered
		orders = append(orders, view)
	}

	if err = rows.Err(); err != nil {
		return nil, errs.WrapStoreUnavailable("list driver orders", err)
	}

	return orders, nil
}
