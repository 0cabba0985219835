package commands

import (
	"context"

	"driverhub/internal/core/ports"
)

// SetDriverOnlineCommandHandler applies the availability toggle to the
// acting driver's own record. Toggling the already-set value is a no-op
// and skips the write entirely.
type SetDriverOnlineCommandHandler struct {
	uowFactory DriverUoWFactory
	resolver   ports.IdentityResolver
}

// NewSetDriverOnlineCommandHandler creates a handler for driver availability toggles.
func NewSetDriverOnlineCommandHandler(uowFactory DriverUoWFactory, resolver ports.IdentityResolver) SetDriverOnlineCommandHandler {
	return SetDriverOnlineCommandHandler{
		uowFactory: uowFactory,
		resolver:   resolver,
	}
}

// Handle resolves the actor's driver record and persists the single-field
// update. Fails with ports.ErrActorHasNoRecord when no record matches the
// actor and ports.ErrMultipleRecordsForIdentity on an integrity violation.
func (h SetDriverOnlineCommandHandler) Handle(ctx context.Context, cmd SetDriverOnlineCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	aggregate, err := h.resolver.ResolveDriver(ctx, cmd.ActorID())
	if err != nil {
		return err
	}

	if !aggregate.SetOnline(cmd.Online()) {
		return nil
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.DriverRepository().Update(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
