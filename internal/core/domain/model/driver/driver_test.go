package driver_test

import (
	"testing"

	"driverhub/internal/core/domain/model/driver"
	"driverhub/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDriver(t *testing.T) {
	t.Run("creates offline driver", func(t *testing.T) {
		id := kernel.NewUUID()

		d, err := driver.NewDriver(id, "auth0|driver-1", "Sam")

		require.NoError(t, err)
		require.NoError(t, d.Validate())
		assert.True(t, d.ID().IsEqual(id))
		assert.Equal(t, "auth0|driver-1", d.IdentityKey())
		assert.Equal(t, "Sam", d.Name())
		assert.False(t, d.IsOnline())
		assert.False(t, d.IsOnDelivery())
	})

	t.Run("rejects empty identity key", func(t *testing.T) {
		_, err := driver.NewDriver(kernel.NewUUID(), "", "Sam")

		require.ErrorIs(t, err, driver.ErrIdentityKeyIsRequired)
	})

	t.Run("rejects empty name", func(t *testing.T) {
		_, err := driver.NewDriver(kernel.NewUUID(), "auth0|driver-1", "")

		require.ErrorIs(t, err, driver.ErrNameIsRequired)
	})

	t.Run("rejects invalid ID", func(t *testing.T) {
		var id kernel.UUID

		_, err := driver.NewDriver(id, "auth0|driver-1", "Sam")

		require.Error(t, err)
	})
}

func TestRestoreDriver(t *testing.T) {
	d, err := driver.RestoreDriver(kernel.NewUUID(), "auth0|driver-1", "Sam", true, true)

	require.NoError(t, err)
	assert.True(t, d.IsOnline())
	assert.True(t, d.IsOnDelivery())
}

func TestDriver_SetOnline(t *testing.T) {
	d, err := driver.NewDriver(kernel.NewUUID(), "auth0|driver-1", "Sam")
	require.NoError(t, err)

	assert.True(t, d.SetOnline(true))
	assert.True(t, d.IsOnline())

	assert.False(t, d.SetOnline(true), "same value twice is a no-op")
	assert.True(t, d.IsOnline())

	assert.True(t, d.SetOnline(false))
	assert.False(t, d.IsOnline())
}

func TestDriver_SetOnDelivery(t *testing.T) {
	d, err := driver.NewDriver(kernel.NewUUID(), "auth0|driver-1", "Sam")
	require.NoError(t, err)

	assert.True(t, d.SetOnDelivery(true))
	assert.False(t, d.SetOnDelivery(true))
	assert.True(t, d.SetOnDelivery(false))
}

func TestDriver_Validate(t *testing.T) {
	var zero driver.Driver

	require.ErrorIs(t, zero.Validate(), driver.ErrDriverIsNotConstructed)

	var nilDriver *driver.Driver
	require.ErrorIs(t, nilDriver.Validate(), driver.ErrDriverIsNotConstructed)
}
