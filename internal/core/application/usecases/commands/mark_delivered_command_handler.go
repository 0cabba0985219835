package commands

import (
	"context"

	"driverhub/internal/core/domain/model/order"
	"driverhub/internal/core/ports"
)

// MarkDeliveredCommandHandler orchestrates the delivery transition.
// Only the claiming driver may deliver; the claimant exclusively owns the
// claimed row, so a plain row update suffices here; there is no
// cross-actor race left to guard against.
type MarkDeliveredCommandHandler struct {
	uowFactory OrderUoWFactory
	resolver   ports.IdentityResolver
}

// NewMarkDeliveredCommandHandler creates a handler for delivery operations.
func NewMarkDeliveredCommandHandler(uowFactory OrderUoWFactory, resolver ports.IdentityResolver) MarkDeliveredCommandHandler {
	return MarkDeliveredCommandHandler{
		uowFactory: uowFactory,
		resolver:   resolver,
	}
}

// Handle processes the delivery command and returns the delivered order.
//
// Failure modes: ports.ErrActorHasNoRecord when the actor has no driver
// record, errs.ErrObjectNotFound when the order does not exist,
// order.ErrNotClaimant when the actor is not the claiming driver, and
// order.ErrOrderAlreadyDelivered when the transition was already applied,
// reported rather than silently re-applied, with no state change.
func (h MarkDeliveredCommandHandler) Handle(ctx context.Context, cmd MarkDeliveredCommand) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	claimant, err := h.resolver.ResolveDriver(ctx, cmd.ActorID())
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

	orderRepo := uow.OrderRepository()

	aggregate, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return nil, err
	}

	if err = aggregate.Deliver(claimant.ID()); err != nil {
		return nil, err
	}

	if err = orderRepo.Update(ctx, aggregate); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return aggregate, nil
}
