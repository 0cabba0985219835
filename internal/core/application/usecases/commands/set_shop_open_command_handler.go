package commands

import (
	"context"

	"driverhub/internal/core/ports"
)

// SetShopOpenCommandHandler applies the availability toggle to the acting
// shop's own record. Toggling the already-set value is a no-op and skips
// the write entirely.
type SetShopOpenCommandHandler struct {
	uowFactory ShopUoWFactory
	resolver   ports.IdentityResolver
}

// NewSetShopOpenCommandHandler creates a handler for shop availability toggles.
func NewSetShopOpenCommandHandler(uowFactory ShopUoWFactory, resolver ports.IdentityResolver) SetShopOpenCommandHandler {
	return SetShopOpenCommandHandler{
		uowFactory: uowFactory,
		resolver:   resolver,
	}
}

// Handle resolves the actor's shop record and persists the single-field
// update. Fails with ports.ErrActorHasNoRecord when no record matches the
// actor and ports.ErrMultipleRecordsForIdentity on an integrity violation.
func (h SetShopOpenCommandHandler) Handle(ctx context.Context, cmd SetShopOpenCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	aggregate, err := h.resolver.ResolveShop(ctx, cmd.ActorID())
	if err != nil {
		return err
	}

	if !aggregate.SetOpen(cmd.Open()) {
		return nil
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.ShopRepository().Update(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
