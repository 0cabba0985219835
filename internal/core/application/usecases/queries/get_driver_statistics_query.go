package queries

import (
	"errors"

	"driverhub/internal/pkg/guard"
)

var ErrGetDriverStatisticsQueryIsNotConstructed = errors.New(
	"GetDriverStatisticsQuery must be created via NewGetDriverStatisticsQuery constructor",
)

// GetDriverStatisticsQuery computes aggregates over every order the
// calling driver has claimed, delivered or not.
type GetDriverStatisticsQuery struct { //nolint:recvcheck //using for validation
	actorID string

	guard guard.ConstructorGuard
}

// NewGetDriverStatisticsQuery creates a statistics query for a driver actor.
func NewGetDriverStatisticsQuery(actorID string) (GetDriverStatisticsQuery, error) {
	q := GetDriverStatisticsQuery{
		guard: guard.NewConstructorGuard(),
	}

	if err := q.setActorID(actorID); err != nil {
		return GetDriverStatisticsQuery{}, err
	}

	return q, nil
}

// Validate ensures the query was created through the constructor.
func (q GetDriverStatisticsQuery) Validate() error {
	return q.guard.Validate(ErrGetDriverStatisticsQueryIsNotConstructed)
}

// ActorID returns the authenticated driver actor.
func (q GetDriverStatisticsQuery) ActorID() string {
	return q.actorID
}

func (q *GetDriverStatisticsQuery) setActorID(actorID string) error {
	if actorID == "" {
		return ErrQueryActorIDIsRequired
	}

	q.actorID = actorID
	return nil
}

// GetDriverStatisticsQueryResponse aggregates the driver's claimed order
// set. HasOrders distinguishes zero activity from a store failure: an
// empty set yields HasOrders=false with zero sums, not an error.
type GetDriverStatisticsQueryResponse struct {
	HasOrders       bool
	OrderCount      int64
	TotalCents      int64
	CommissionCents int64
}
