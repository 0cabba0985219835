package commands

import (
	"errors"

	"driverhub/internal/pkg/guard"
)

var ErrSetDriverOnlineCommandIsNotConstructed = errors.New(
	"SetDriverOnlineCommand must be created via NewSetDriverOnlineCommand constructor",
)

// SetDriverOnlineCommand toggles the acting driver's own online flag.
// The caller never names a target record; the flag always lands on the
// record the actor resolves to.
type SetDriverOnlineCommand struct { //nolint:recvcheck //using for validation
	actorID string
	online  bool

	guard guard.ConstructorGuard
}

// NewSetDriverOnlineCommand creates a command to set the driver's online flag.
func NewSetDriverOnlineCommand(actorID string, online bool) (SetDriverOnlineCommand, error) {
	cmd := SetDriverOnlineCommand{
		online: online,
		guard:  guard.NewConstructorGuard(),
	}

	if err := cmd.setActorID(actorID); err != nil {
		return SetDriverOnlineCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c SetDriverOnlineCommand) Validate() error {
	return c.guard.Validate(ErrSetDriverOnlineCommandIsNotConstructed)
}

// ActorID returns the authenticated driver actor.
func (c SetDriverOnlineCommand) ActorID() string {
	return c.actorID
}

// Online returns the desired online state.
func (c SetDriverOnlineCommand) Online() bool {
	return c.online
}

func (c *SetDriverOnlineCommand) setActorID(actorID string) error {
	if actorID == "" {
		return ErrActorIDIsRequired
	}

	c.actorID = actorID
	return nil
}
