package queries

import (
	"errors"
	"time"

	"driverhub/internal/pkg/guard"

	"github.com/google/uuid"
)

var ErrGetDriverOrdersQueryIsNotConstructed = errors.New(
	"GetDriverOrdersQuery must be created via NewGetDriverOrdersQuery constructor",
)

// GetDriverOrdersQuery retrieves the calling driver's own orders, either
// in flight (claimed, undelivered) or delivered. The unclaimed pool is a
// separate query because it is global rather than driver-scoped.
type GetDriverOrdersQuery struct { //nolint:recvcheck //using for validation
	actorID string
	scope   OrderScope

	guard guard.ConstructorGuard
}

// NewGetDriverOrdersQuery creates a driver-scoped order list query.
// The scope must be ScopeInFlight or ScopeDelivered.
func NewGetDriverOrdersQuery(actorID string, scope OrderScope) (GetDriverOrdersQuery, error) {
	q := GetDriverOrdersQuery{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		q.setActorID(actorID),
		q.setScope(scope),
	); err != nil {
		return GetDriverOrdersQuery{}, err
	}

	return q, nil
}

// Validate ensures the query was created through the constructor.
func (q GetDriverOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetDriverOrdersQueryIsNotConstructed)
}

// ActorID returns the authenticated driver actor.
func (q GetDriverOrdersQuery) ActorID() string {
	return q.actorID
}

// Scope returns the requested order slice.
func (q GetDriverOrdersQuery) Scope() OrderScope {
	return q.scope
}

func (q *GetDriverOrdersQuery) setActorID(actorID string) error {
	if actorID == "" {
		return ErrQueryActorIDIsRequired
	}

	q.actorID = actorID
	return nil
}

func (q *GetDriverOrdersQuery) setScope(scope OrderScope) error {
	if scope != ScopeInFlight && scope != ScopeDelivered {
		return ErrOrderScopeIsInvalid
	}

	q.scope = scope
	return nil
}

// GetDriverOrdersQueryResponse is a flat read model of one order in the
// driver's own list.
type GetDriverOrdersQueryResponse struct {
	ID              uuid.UUID
	ShopID          uuid.UUID
	CreatedAt       time.Time
	TotalCents      int64
	CommissionCents int64
	Address         string
	Delivered       bool
}
