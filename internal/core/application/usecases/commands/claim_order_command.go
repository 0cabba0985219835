package commands

import (
	"errors"

	"driverhub/internal/core/domain/model/kernel"
	"driverhub/internal/pkg/guard"
)

var ErrClaimOrderCommandIsNotConstructed = errors.New(
	"ClaimOrderCommand must be created via NewClaimOrderCommand constructor",
)

// ClaimOrderCommand represents a driver's request to claim an unclaimed
// order. A claim is the irreversible assignment of exactly one driver to
// one order.
//
// Example:
//
//	cmd, err := NewClaimOrderCommand(orderID, actorID)
//	if err != nil {
//	    return err
//	}
//	claimed, err := handler.Handle(ctx, cmd)
//	switch {
//	case errors.Is(err, order.ErrOrderAlreadyClaimed):
//	    // another driver was faster; pick a different order
//	case err != nil:
//	    return err
//	}
type ClaimOrderCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID
	actorID string

	guard guard.ConstructorGuard
}

// NewClaimOrderCommand creates a command for a driver actor to claim an order.
func NewClaimOrderCommand(orderID kernel.UUID, actorID string) (ClaimOrderCommand, error) {
	cmd := ClaimOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setActorID(actorID),
	); err != nil {
		return ClaimOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c ClaimOrderCommand) Validate() error {
	return c.guard.Validate(ErrClaimOrderCommandIsNotConstructed)
}

// OrderID returns the identifier of the order to claim.
func (c ClaimOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// ActorID returns the authenticated driver actor claiming the order.
func (c ClaimOrderCommand) ActorID() string {
	return c.actorID
}

func (c *ClaimOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *ClaimOrderCommand) setActorID(actorID string) error {
	if actorID == "" {
		return ErrActorIDIsRequired
	}

	c.actorID = actorID
	return nil
}
