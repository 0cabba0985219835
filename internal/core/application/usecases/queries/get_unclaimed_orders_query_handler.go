package queries

import (
	"context"

	"driverhub/internal/core/ports"
	"driverhub/internal/pkg/errs"

	"gorm.io/gorm"
)

// GetUnclaimedOrdersQueryHandler retrieves all orders without a claiming
// driver. Reads may be served from the pool cache with bounded staleness;
// the store remains authoritative and a stale entry can at worst show an
// order that has just been claimed, which the claim path then rejects.
type GetUnclaimedOrdersQueryHandler struct {
	db       *gorm.DB
	resolver ports.IdentityResolver
	cache    UnclaimedPoolCache
}

// NewGetUnclaimedOrdersQueryHandler creates a handler for unclaimed pool
// queries. Pass NopUnclaimedPoolCache{} to disable caching.
func NewGetUnclaimedOrdersQueryHandler(
	db *gorm.DB,
	resolver ports.IdentityResolver,
	cache UnclaimedPoolCache,
) GetUnclaimedOrdersQueryHandler {
	return GetUnclaimedOrdersQueryHandler{db: db, resolver: resolver, cache: cache}
}

// Handle resolves the calling driver, then returns every order whose
// claiming driver reference is null, oldest first. The response carries
// the caller's own online flag.
func (h GetUnclaimedOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetUnclaimedOrdersQuery,
) (GetUnclaimedOrdersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetUnclaimedOrdersQueryResponse{}, err
	}

	caller, err := h.resolver.ResolveDriver(ctx, query.ActorID())
	if err != nil {
		return GetUnclaimedOrdersQueryResponse{}, err
	}

	if cached, ok := h.cache.Get(ctx); ok {
		return GetUnclaimedOrdersQueryResponse{
			DriverOnline: caller.IsOnline(),
			Orders:       cached,
		}, nil
	}

	orders := make([]UnclaimedOrderView, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			shop_id,
			created_at,
			total_cents,
			commission_cents,
			address
		FROM orders
		WHERE driver_id IS NULL
		ORDER BY created_at
	`).Rows()
	if err != nil {
		return GetUnclaimedOrdersQueryResponse{}, errs.WrapStoreUnavailable("list unclaimed orders", err)
	}
	defer rows.Close()

	for rows.Next() {
		var view UnclaimedOrderView

		err = rows.Scan(
			&view.ID,
			&view.ShopID,
			&view.CreatedAt,
			&view.TotalCents,
			&view.CommissionCents,
			&view.Address,
		)
		if err != nil {
			return GetUnclaimedOrdersQueryResponse{}, errs.WrapStoreUnavailable("list unclaimed orders", err)
		}

		orders = append(orders, view)
	}

	if err = rows.Err(); err != nil {
		return GetUnclaimedOrdersQueryResponse{}, errs.WrapStoreUnavailable("list unclaimed orders", err)
	}

	h.cache.Set(ctx, orders)

	return GetUnclaimedOrdersQueryResponse{
		DriverOnline: caller.IsOnline(),
		Orders:       orders,
	}, nil
}
