package commands_test

import (
	"testing"

	"driverhub/internal/core/application/usecases/commands"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewSetDriverOnlineCommand_Success(t *testing.T) {
	tests := []struct {
		name   string
		online bool
	}{
		{name: "going online", online: true},
		{name: "going offline", online: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmd, err := commands.NewSetDriverOnlineCommand("actor-1", tt.online)

			require.NoError(t, err)
			assert.Equal(t, "actor-1", cmd.ActorID())
			assert.Equal(t, tt.online, cmd.Online())
			require.NoError(t, cmd.Validate())
		})
	}
}

func TestNewSetDriverOnlineCommand_EmptyActorID_ReturnsError(t *testing.T) {
	_, err := commands.NewSetDriverOnlineCommand("", true)

	require.Error(t, err)
	require.ErrorIs(t, err, commands.ErrActorIDIsRequired)
}

func TestSetDriverOnlineCommand_Validate_ZeroValue(t *testing.T) {
	var cmd commands.SetDriverOnlineCommand // zero value, not constructed via constructor

	err := cmd.Validate()

	require.Error(t, err)
	require.ErrorIs(t, err, commands.ErrSetDriverOnlineCommandIsNotConstructed)
}
