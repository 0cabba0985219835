package commands_test

import (
	"testing"

	"driverhub/internal/core/application/usecases/commands"
	"driverhub/internal/core/domain/model/kernel"
	"driverhub/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCreateOrderCommand_Success(t *testing.T) {
	orderID := kernel.NewUUID()

	cmd, err := commands.NewCreateOrderCommand(orderID, "shop-1", 10000, 1500, "12 Harbor St")

	require.NoError(t, err)
	assert.Equal(t, orderID, cmd.OrderID())
	assert.Equal(t, "shop-1", cmd.ActorID())
	assert.Equal(t, int64(10000), cmd.Total().Cents())
	assert.Equal(t, int64(1500), cmd.Commission().Cents())
	assert.Equal(t, "12 Harbor St", cmd.Address())
	assert.NoError(t, cmd.Validate())
}

func TestNewCreateOrderCommand_EmptyAddress(t *testing.T) {
	// The address is optional metadata carried as given.
	cmd, err := commands.NewCreateOrderCommand(kernel.NewUUID(), "shop-1", 10000, 1500, "")

	require.NoError(t, err)
	assert.Empty(t, cmd.Address())
}

func TestNewCreateOrderCommand_ZeroAmounts(t *testing.T) {
	cmd, err := commands.NewCreateOrderCommand(kernel.NewUUID(), "shop-1", 0, 0, "12 Harbor St")

	require.NoError(t, err)
	assert.Equal(t, int64(0), cmd.Total().Cents())
	assert.Equal(t, int64(0), cmd.Commission().Cents())
}

func TestNewCreateOrderCommand_Errors(t *testing.T) {
	tests := []struct {
		name            string
		orderID         kernel.UUID
		actorID         string
		totalCents      int64
		commissionCents int64
		wantErr         error
	}{
		{
			name:            "empty order id",
			orderID:         kernel.UUID{},
			actorID:         "shop-1",
			totalCents:      10000,
			commissionCents: 1500,
			wantErr:         kernel.ErrUUIDIsNotConstructed,
		},
		{
			name:            "empty actor id",
			orderID:         kernel.NewUUID(),
			actorID:         "",
			totalCents:      10000,
			commissionCents: 1500,
			wantErr:         errs.ErrValueIsRequired,
		},
		{
			name:            "negative total",
			orderID:         kernel.NewUUID(),
			actorID:         "shop-1",
			totalCents:      -1,
			commissionCents: 0,
			wantErr:         errs.ErrValueIsInvalid,
		},
		{
			name:            "negative commission",
			orderID:         kernel.NewUUID(),
			actorID:         "shop-1",
			totalCents:      10000,
			commissionCents: -1,
			wantErr:         errs.ErrValueIsInvalid,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := commands.NewCreateOrderCommand(tt.orderID, tt.actorID, tt.totalCents, tt.commissionCents, "addr")

			require.Error(t, err)
			require.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestCreateOrderCommand_Validate_NotConstructed(t *testing.T) {
	var cmd commands.CreateOrderCommand

	err := cmd.Validate()

	require.Error(t, err)
	require.ErrorIs(t, err, commands.ErrCreateOrderCommandIsNotConstructed)
}
