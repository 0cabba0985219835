package commands

import (
	"errors"

	"driverhub/internal/core/domain/model/kernel"
	"driverhub/internal/pkg/errs"
	"driverhub/internal/pkg/guard"
)

var (
	ErrCreateOrderCommandIsNotConstructed = errors.New(
		"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
	)
	ErrActorIDIsRequired = errs.NewValueIsRequiredError("actorID")
)

// CreateOrderCommand represents a shop's request to create a new delivery
// order. The owning shop is fixed from the resolved actor, never from the
// request payload.
//
// Example:
//
//	cmd, err := NewCreateOrderCommand(kernel.NewUUID(), actorID, 10000, 1000, "12 Harbor St")
//	if err != nil {
//	    return fmt.Errorf("invalid order data: %w", err)
//	}
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("failed to create order: %w", err)
//	}
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	orderID    kernel.UUID
	actorID    string
	total      kernel.Money
	commission kernel.Money
	address    string

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand creates a command to register a new order.
// Amounts are given in integer cents; both must be non-negative and the
// commission/total relationship is enforced by the Order aggregate.
func NewCreateOrderCommand(
	orderID kernel.UUID,
	actorID string,
	totalCents, commissionCents int64,
	address string,
) (CreateOrderCommand, error) {
	cmd := CreateOrderCommand{
		address: address,
		guard:   guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setActorID(actorID),
		cmd.setAmounts(totalCents, commissionCents),
	); err != nil {
		return CreateOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

// OrderID returns the unique identifier for the new order.
func (c CreateOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// ActorID returns the authenticated shop actor creating the order.
func (c CreateOrderCommand) ActorID() string {
	return c.actorID
}

// Total returns the order's monetary value.
func (c CreateOrderCommand) Total() kernel.Money {
	return c.total
}

// Commission returns the driver's commission.
func (c CreateOrderCommand) Commission() kernel.Money {
	return c.commission
}

// Address returns the optional delivery address.
func (c CreateOrderCommand) Address() string {
	return c.address
}

func (c *CreateOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *CreateOrderCommand) setActorID(actorID string) error {
	if actorID == "" {
		return ErrActorIDIsRequired
	}

	c.actorID = actorID
	return nil
}

func (c *CreateOrderCommand) setAmounts(totalCents, commissionCents int64) error {
	total, err := kernel.NewMoneyFromCents(totalCents)
	if err != nil {
		return errs.NewValueIsInvalidErrorWithCause("total", err)
	}

	commission, err := kernel.NewMoneyFromCents(commissionCents)
	if err != nil {
		return errs.NewValueIsInvalidErrorWithCause("commission", err)
	}

	c.total = total
	c.commission = commission
	return nil
}
