package commands

import (
	"context"

	"driverhub/internal/core/domain/model/order"
	"driverhub/internal/core/ports"
)

// ClaimOrderCommandHandler orchestrates the claim transition.
//
// The in-memory Claim on the aggregate rejects orders that are already
// claimed at read time; the repository's conditional write closes the
// remaining window, so that of N concurrent claims for one order exactly
// one commits and the rest observe order.ErrOrderAlreadyClaimed.
type ClaimOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	resolver   ports.IdentityResolver
}

// NewClaimOrderCommandHandler creates a handler for claim operations.
func NewClaimOrderCommandHandler(uowFactory OrderUoWFactory, resolver ports.IdentityResolver) ClaimOrderCommandHandler {
	return ClaimOrderCommandHandler{
		uowFactory: uowFactory,
		resolver:   resolver,
	}
}

// Handle processes the claim command and returns the claimed order.
//
// Failure modes: ports.ErrActorHasNoRecord when the actor has no driver
// record, errs.ErrObjectNotFound when the order does not exist, and
// order.ErrOrderAlreadyClaimed when the order was claimed earlier or lost
// a concurrent race; the losing request sees the row untouched.
func (h ClaimOrderCommandHandler) Handle(ctx context.Context, cmd ClaimOrderCommand) (*order.Order, error) {
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

	if err = aggregate.Claim(claimant.ID()); err != nil {
		return nil, err
	}

	if err = orderRepo.Claim(ctx, aggregate); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return aggregate, nil
}
