package commands

import (
	"errors"

	"driverhub/internal/pkg/guard"
)

var ErrSetShopOpenCommandIsNotConstructed = errors.New(
	"SetShopOpenCommand must be created via NewSetShopOpenCommand constructor",
)

// SetShopOpenCommand toggles the acting shop's own open flag. Like the
// driver toggle, the target record is always the actor's own.
type SetShopOpenCommand struct { //nolint:recvcheck //using for validation
	actorID string
	open    bool

	guard guard.ConstructorGuard
}

// NewSetShopOpenCommand creates a command to set the shop's open flag.
func NewSetShopOpenCommand(actorID string, open bool) (SetShopOpenCommand, error) {
	cmd := SetShopOpenCommand{
		open:  open,
		guard: guard.NewConstructorGuard(),
	}

	if err := cmd.setActorID(actorID); err != nil {
		return SetShopOpenCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c SetShopOpenCommand) Validate() error {
	return c.guard.Validate(ErrSetShopOpenCommandIsNotConstructed)
}

// ActorID returns the authenticated shop actor.
func (c SetShopOpenCommand) ActorID() string {
	return c.actorID
}

// Open returns the desired open state.
func (c SetShopOpenCommand) Open() bool {
	return c.open
}

func (c *SetShopOpenCommand) setActorID(actorID string) error {
	if actorID == "" {
		return ErrActorIDIsRequired
	}

	c.actorID = actorID
	return nil
}
