package queries

import (
	"context"
	"database/sql"

	"driverhub/internal/core/domain/model/order"
	"driverhub/internal/core/ports"
	"driverhub/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetShopOrdersQueryHandler retrieves the calling shop's orders from the
// database. The owning shop reference is taken from the resolved record,
// never from the request, so a shop can only ever list its own orders.
type GetShopOrdersQueryHandler struct {
	db       *gorm.DB
	resolver ports.IdentityResolver
}

// NewGetShopOrdersQueryHandler creates a handler for shop-scoped order
// list queries.
func NewGetShopOrdersQueryHandler(db *gorm.DB, resolver ports.IdentityResolver) GetShopOrdersQueryHandler {
	return GetShopOrdersQueryHandler{db: db, resolver: resolver}
}

// Handle resolves the calling shop and returns its orders in the requested
// scope, newest first. The response carries the shop's own open flag.
func (h GetShopOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetShopOrdersQuery,
) (GetShopOrdersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetShopOrdersQueryResponse{}, err
	}

	caller, err := h.resolver.ResolveShop(ctx, query.ActorID())
	if err != nil {
		return GetShopOrdersQueryResponse{}, err
	}

	var status order.Status
	switch query.Scope() {
	case ScopeUnclaimed:
		status = order.Unclaimed
	case ScopeInFlight:
		status = order.Claimed
	case ScopeDelivered:
		status = order.Delivered
	case ScopeUnknown:
		return GetShopOrdersQueryResponse{}, ErrOrderScopeIsInvalid
	}

	orders := make([]ShopOrderView, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			driver_id,
			created_at,
			total_cents,
			commission_cents,
			address,
			status
		FROM orders
		WHERE shop_id = ? AND status = ?
		ORDER BY created_at DESC
	`, caller.ID().Bytes(), status).Rows()
	if err != nil {
		return GetShopOrdersQueryResponse{}, errs.WrapStoreUnavailable("list shop orders", err)
	}
	defer rows.Close()

	for rows.Next() {
		var view ShopOrderView
		var driverID sql.Null[uuid.UUID]
		var rowStatus int

		err = rows.Scan(
			&view.ID,
			&driverID,
			&view.CreatedAt,
			&view.TotalCents,
			&view.CommissionCents,
			&view.Address,
			&rowStatus,
		)
		if err != nil {
			return GetShopOrdersQueryResponse{}, errs.WrapStoreUnavailable("list shop orders", err)
		}

		if driverID.Valid {
			view.DriverID = &driverID.V
		}
		view.Delivered = order.Status(rowStatus) == order.Delivered
		orders = append(orders, view)
	}

	if err = rows.Err(); err != nil {
		return GetShopOrdersQueryResponse{}, errs.WrapStoreUnavailable("list shop orders", err)
	}

	return GetShopOrdersQueryResponse{
		ShopOpen: caller.IsOpen(),
		Orders:   orders,
	}, nil
}
