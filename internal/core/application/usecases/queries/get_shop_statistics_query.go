package queries

import (
	"errors"

	"driverhub/internal/pkg/guard"
)

var ErrGetShopStatisticsQueryIsNotConstructed = errors.New(
	"GetShopStatisticsQuery must be created via NewGetShopStatisticsQuery constructor",
)

// GetShopStatisticsQuery computes aggregates over every order the calling
// shop owns, in any lifecycle state.
type GetShopStatisticsQuery struct { //nolint:recvcheck //using for validation
	actorID string

	guard guard.ConstructorGuard
}

// NewGetShopStatisticsQuery creates a statistics query for a shop actor.
func NewGetShopStatisticsQuery(actorID string) (GetShopStatisticsQuery, error) {
	q := GetShopStatisticsQuery{
		guard: guard.NewConstructorGuard(),
	}

	if err := q.setActorID(actorID); err != nil {
		return GetShopStatisticsQuery{}, err
	}

	return q, nil
}

// Validate ensures the query was created through the constructor.
func (q GetShopStatisticsQuery) Validate() error {
	return q.guard.Validate(ErrGetShopStatisticsQueryIsNotConstructed)
}

// ActorID returns the authenticated shop actor.
func (q GetShopStatisticsQuery) ActorID() string {
	return q.actorID
}

func (q *GetShopStatisticsQuery) setActorID(actorID string) error {
	if actorID == "" {
		return ErrQueryActorIDIsRequired
	}

	q.actorID = actorID
	return nil
}

// GetShopStatisticsQueryResponse aggregates the shop's owned order set.
// NetCents is the shop's take after driver commissions. HasOrders
// distinguishes zero activity from a store failure.
type GetShopStatisticsQueryResponse struct {
	HasOrders       bool
	OrderCount      int64
	TotalCents      int64
	CommissionCents int64
	NetCents        int64
}
