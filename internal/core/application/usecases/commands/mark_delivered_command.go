package commands

import (
	"errors"

	"driverhub/internal/core/domain/model/kernel"
	"driverhub/internal/pkg/guard"
)

var ErrMarkDeliveredCommandIsNotConstructed = errors.New(
	"MarkDeliveredCommand must be created via NewMarkDeliveredCommand constructor",
)

// MarkDeliveredCommand represents the claiming driver's request to mark an
// order delivered. Delivery is the terminal, irreversible transition of the
// order lifecycle.
type MarkDeliveredCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID
	actorID string

	guard guard.ConstructorGuard
}

// NewMarkDeliveredCommand creates a command for a driver actor to mark an
// order delivered.
func NewMarkDeliveredCommand(orderID kernel.UUID, actorID string) (MarkDeliveredCommand, error) {
	cmd := MarkDeliveredCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setActorID(actorID),
	); err != nil {
		return MarkDeliveredCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c MarkDeliveredCommand) Validate() error {
	return c.guard.Validate(ErrMarkDeliveredCommandIsNotConstructed)
}

// OrderID returns the identifier of the order to deliver.
func (c MarkDeliveredCommand) OrderID() kernel.UUID {
	return c.orderID
}

// ActorID returns the authenticated driver actor delivering the order.
func (c MarkDeliveredCommand) ActorID() string {
	return c.actorID
}

func (c *MarkDeliveredCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *MarkDeliveredCommand) setActorID(actorID string) error {
	if actorID == "" {
		return ErrActorIDIsRequired
	}

	c.actorID = actorID
	return nil
}
