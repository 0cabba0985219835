package queries

import (
	"errors"
	"time"

	"driverhub/internal/pkg/guard"

	"github.com/google/uuid"
)

var ErrGetShopOrdersQueryIsNotConstructed = errors.New(
	"GetShopOrdersQuery must be created via NewGetShopOrdersQuery constructor",
)

// GetShopOrdersQuery retrieves the calling shop's own orders in one of the
// three lifecycle scopes. Shop views are sorted newest first.
type GetShopOrdersQuery struct { //nolint:recvcheck //using for validation
	actorID string
	scope   OrderScope

	guard guard.ConstructorGuard
}

// NewGetShopOrdersQuery creates a shop-scoped order list query.
// The scope must be ScopeUnclaimed, ScopeInFlight or ScopeDelivered.
func NewGetShopOrdersQuery(actorID string, scope OrderScope) (GetShopOrdersQuery, error) {
	q := GetShopOrdersQuery{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		q.setActorID(actorID),
		q.setScope(scope),
	); err != nil {
		return GetShopOrdersQuery{}, err
	}

	return q, nil
}

// Validate ensures the query was created through the constructor.
func (q GetShopOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetShopOrdersQueryIsNotConstructed)
}

// ActorID returns the authenticated shop actor.
func (q GetShopOrdersQuery) ActorID() string {
	return q.actorID
}

// Scope returns the requested order slice.
func (q GetShopOrdersQuery) Scope() OrderScope {
	return q.scope
}

func (q *GetShopOrdersQuery) setActorID(actorID string) error {
	if actorID == "" {
		return ErrQueryActorIDIsRequired
	}

	q.actorID = actorID
	return nil
}

func (q *GetShopOrdersQuery) setScope(scope OrderScope) error {
	switch scope {
	case ScopeUnclaimed, ScopeInFlight, ScopeDelivered:
		q.scope = scope
		return nil
	case ScopeUnknown:
		return ErrOrderScopeIsInvalid
	default:
		return ErrOrderScopeIsInvalid
	}
}

// ShopOrderView is a flat read model of one order in the shop's own list.
type ShopOrderView struct {
	ID              uuid.UUID
	DriverID        *uuid.UUID
	CreatedAt       time.Time
	TotalCents      int64
	CommissionCents int64
	Address         string
	Delivered       bool
}

// GetShopOrdersQueryResponse carries the shop's orders, newest first,
// together with the shop's own open flag for UI annotation.
type GetShopOrdersQueryResponse struct {
	ShopOpen bool
	Orders   []ShopOrderView
}
