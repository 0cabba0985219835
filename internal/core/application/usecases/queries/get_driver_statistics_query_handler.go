package queries

import (
	"context"

	"driverhub/internal/core/ports"
	"driverhub/internal/pkg/errs"

	"gorm.io/gorm"
)

// GetDriverStatisticsQueryHandler computes count and monetary sums over
// the calling driver's full claimed order set in a single aggregate query.
type GetDriverStatisticsQueryHandler struct {
	db       *gorm.DB
	resolver ports.IdentityResolver
}

// NewGetDriverStatisticsQueryHandler creates a handler for driver
// statistics queries.
func NewGetDriverStatisticsQueryHandler(db *gorm.DB, resolver ports.IdentityResolver) GetDriverStatisticsQueryHandler {
	return GetDriverStatisticsQueryHandler{db: db, resolver: resolver}
}

// Handle resolves the calling driver and aggregates all orders they have
// claimed, regardless of delivery status.
func (h GetDriverStatisticsQueryHandler) Handle(
	ctx context.Context,
	query GetDriverStatisticsQuery,
) (GetDriverStatisticsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetDriverStatisticsQueryResponse{}, err
	}

	caller, err := h.resolver.ResolveDriver(ctx, query.ActorID())
	if err != nil {
		return GetDriverStatisticsQueryResponse{}, err
	}

	var resp GetDriverStatisticsQueryResponse

	row := h.db.WithContext(ctx).Raw(`
		SELECT
			COUNT(*),
			COALESCE(SUM(total_cents), 0),
			COALESCE(SUM(commission_cents), 0)
		FROM orders
		WHERE driver_id = ?
	`, caller.ID().Bytes()).Row()

	err = row.Scan(&resp.OrderCount, &resp.TotalCents, &resp.CommissionCents)
	if err != nil {
		return GetDriverStatisticsQueryResponse{}, errs.WrapStoreUnavailable("get driver statistics", err)
	}

	resp.HasOrders = resp.OrderCount > 0
	return resp, nil
}
