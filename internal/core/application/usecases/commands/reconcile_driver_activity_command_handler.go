package commands

import (
	"context"
)

// ReconcileDriverActivityCommandHandler recomputes the derived on-delivery
// flag for all drivers. A driver is on delivery while at least one claimed,
// undelivered order references their record. Drivers whose flag already
// matches are left untouched.
type ReconcileDriverActivityCommandHandler struct {
	uowFactory UoWFactory
}

// NewReconcileDriverActivityCommandHandler creates a handler for activity
// reconciliation.
func NewReconcileDriverActivityCommandHandler(uowFactory UoWFactory) ReconcileDriverActivityCommandHandler {
	return ReconcileDriverActivityCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle loads all in-flight orders and all drivers inside a single
// transaction and persists only the drivers whose flag actually changed.
func (h ReconcileDriverActivityCommandHandler) Handle(ctx context.Context, cmd ReconcileDriverActivityCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	inFlight, err := uow.OrderRepository().GetAllInFlight(ctx)
	if err != nil {
		return err
	}

	busy := make(map[string]struct{}, len(inFlight))
	for _, ord := range inFlight {
		if claimant := ord.Driver(); claimant != nil {
			busy[claimant.String()] = struct{}{}
		}
	}

	driverRepo := uow.DriverRepository()

	drivers, err := driverRepo.GetAll(ctx)
	if err != nil {
		return err
	}

	for _, drv := range drivers {
		_, onDelivery := busy[drv.ID().String()]
		if !drv.SetOnDelivery(onDelivery) {
			continue
		}
		if err = driverRepo.Update(ctx, drv); err != nil {
			return err
		}
	}

	return uow.Commit(ctx)
}
