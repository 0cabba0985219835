package commands

import (
	"errors"

	"driverhub/internal/pkg/guard"
)

var ErrReconcileDriverActivityCommandIsNotConstructed = errors.New(
	"ReconcileDriverActivityCommand must be created via NewReconcileDriverActivityCommand constructor",
)

// ReconcileDriverActivityCommand triggers recomputation of the on-delivery
// flag for every driver from the set of currently claimed orders. This is a
// parameterless command run periodically by the background scheduler.
type ReconcileDriverActivityCommand struct {
	guard guard.ConstructorGuard
}

// NewReconcileDriverActivityCommand creates a new reconciliation command.
func NewReconcileDriverActivityCommand() ReconcileDriverActivityCommand {
	return ReconcileDriverActivityCommand{
		guard: guard.NewConstructorGuard(),
	}
}

// Validate ensures the command was created through the constructor.
func (c ReconcileDriverActivityCommand) Validate() error {
	return c.guard.Validate(ErrReconcileDriverActivityCommandIsNotConstructed)
}
