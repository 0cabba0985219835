package commands

import (
	"context"

	"driverhub/internal/core/domain/model/order"
	"driverhub/internal/core/ports"
)

// CreateOrderCommandHandler handles order creation on behalf of a shop actor.
// Resolves the acting shop through the identity resolver so the owning shop
// reference can never be forged by the caller.
type CreateOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	resolver   ports.IdentityResolver
}

// NewCreateOrderCommandHandler creates a handler for order creation.
func NewCreateOrderCommandHandler(uowFactory OrderUoWFactory, resolver ports.IdentityResolver) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		uowFactory: uowFactory,
		resolver:   resolver,
	}
}

// Handle processes the order creation command. The new order starts
// unclaimed, owned by the resolved shop, with its creation timestamp set
// exactly once. Fails with ports.ErrActorHasNoRecord when the actor has no
// shop record.
func (h CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	owner, err := h.resolver.ResolveShop(ctx, cmd.ActorID())
	if err != nil {
		return nil, err
	}

	newOrder, err := order.NewOrder(cmd.OrderID(), owner.ID(), cmd.Total(), cmd.Commission(), cmd.Address())
	if err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.OrderRepository().Add(ctx, newOrder); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return newOrder, nil
}
