package queries

import (
	"errors"
	"time"

	"driverhub/internal/pkg/errs"
	"driverhub/internal/pkg/guard"

	"github.com/google/uuid"
)

var (
	ErrGetUnclaimedOrdersQueryIsNotConstructed = errors.New(
		"GetUnclaimedOrdersQuery must be created via NewGetUnclaimedOrdersQuery constructor",
	)
	ErrQueryActorIDIsRequired = errs.NewValueIsRequiredError("actorID")
)

// GetUnclaimedOrdersQuery retrieves the global unclaimed pool for a driver
// actor. The pool is not scoped by shop or geography; every driver sees the
// same set of claimable orders.
//
// Example:
//
//	query, err := NewGetUnclaimedOrdersQuery(actorID)
//	if err != nil {
//	    return err
//	}
//	resp, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to get unclaimed orders: %w", err)
//	}
//	fmt.Printf("%d orders claimable, driver online: %v\n", len(resp.Orders), resp.DriverOnline)
type GetUnclaimedOrdersQuery struct { //nolint:recvcheck //using for validation
	actorID string

	guard guard.ConstructorGuard
}

// NewGetUnclaimedOrdersQuery creates a query for the unclaimed pool on
// behalf of a driver actor.
func NewGetUnclaimedOrdersQuery(actorID string) (GetUnclaimedOrdersQuery, error) {
	q := GetUnclaimedOrdersQuery{
		guard: guard.NewConstructorGuard(),
	}

	if err := q.setActorID(actorID); err != nil {
		return GetUnclaimedOrdersQuery{}, err
	}

	return q, nil
}

// Validate ensures the query was created through the constructor.
func (q GetUnclaimedOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetUnclaimedOrdersQueryIsNotConstructed)
}

// ActorID returns the authenticated driver actor.
func (q GetUnclaimedOrdersQuery) ActorID() string {
	return q.actorID
}

func (q *GetUnclaimedOrdersQuery) setActorID(actorID string) error {
	if actorID == "" {
		return ErrQueryActorIDIsRequired
	}

	q.actorID = actorID
	return nil
}

// UnclaimedOrderView is a flat read model of one claimable order.
// JSON tags define the cache serialization format.
type UnclaimedOrderView struct {
	ID              uuid.UUID `json:"id"`
	ShopID          uuid.UUID `json:"shop_id"`
	CreatedAt       time.Time `json:"created_at"`
	TotalCents      int64     `json:"total_cents"`
	CommissionCents int64     `json:"commission_cents"`
	Address         string    `json:"address"`
}

// GetUnclaimedOrdersQueryResponse carries the claimable orders together
// with the calling driver's own availability flag for UI annotation.
type GetUnclaimedOrdersQueryResponse struct {
	DriverOnline bool
	Orders       []UnclaimedOrderView
}
