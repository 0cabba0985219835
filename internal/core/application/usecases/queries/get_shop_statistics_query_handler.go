package queries

import (
	"context"

	"driverhub/internal/core/ports"
	"driverhub/internal/pkg/errs"

	"gorm.io/gorm"
)

// GetShopStatisticsQueryHandler computes count, monetary sums, and the
// shop's net take over the calling shop's full owned order set.
type GetShopStatisticsQueryHandler struct {
	db       *gorm.DB
	resolver ports.IdentityResolver
}

// NewGetShopStatisticsQueryHandler creates a handler for shop statistics
// queries.
func NewGetShopStatisticsQueryHandler(db *gorm.DB, resolver ports.IdentityResolver) GetShopStatisticsQueryHandler {
	return GetShopStatisticsQueryHandler{db: db, resolver: resolver}
}

// Handle resolves the calling shop and aggregates all orders it owns.
// Net is total minus commission.
func (h GetShopStatisticsQueryHandler) Handle(
	ctx context.Context,
	query GetShopStatisticsQuery,
) (GetShopStatisticsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetShopStatisticsQueryResponse{}, err
	}

	caller, err := h.resolver.ResolveShop(ctx, query.ActorID())
	if err != nil {
		return GetShopStatisticsQueryResponse{}, err
	}

	var resp GetShopStatisticsQueryResponse

	row := h.db.WithContext(ctx).Raw(`
		SELECT
			COUNT(*),
			COALESCE(SUM(total_cents), 0),
			COALESCE(SUM(commission_cents), 0)
		FROM orders
		WHERE shop_id = ?
	`, caller.ID().Bytes()).Row()

	err = row.Scan(&resp.OrderCount, &resp.TotalCents, &resp.CommissionCents)
	if err != nil {
		return GetShopStatisticsQueryResponse{}, errs.WrapStoreUnavailable("get shop statistics", err)
	}

	resp.HasOrders = resp.OrderCount > 0
	resp.NetCents = resp.TotalCents - resp.CommissionCents
	return resp, nil
}
