package shop_test

import (
	"testing"

	"driverhub/internal/core/domain/model/kernel"
	"driverhub/internal/core/domain/model/shop"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewShop(t *testing.T) {
	t.Run("creates open shop", func(t *testing.T) {
		id := kernel.NewUUID()

		s, err := shop.NewShop(id, "auth0|shop-1", "Corner Deli")

		require.NoError(t, err)
		require.NoError(t, s.Validate())
		assert.True(t, s.ID().IsEqual(id))
		assert.Equal(t, "auth0|shop-1", s.IdentityKey())
		assert.Equal(t, "Corner Deli", s.Name())
		assert.True(t, s.IsOpen())
	})

	t.Run("rejects empty identity key", func(t *testing.T) {
		_, err := shop.NewShop(kernel.NewUUID(), "", "Corner Deli")

		require.ErrorIs(t, err, shop.ErrIdentityKeyIsRequired)
	})

	t.Run("rejects empty name", func(t *testing.T) {
		_, err := shop.NewShop(kernel.NewUUID(), "auth0|shop-1", "")

		require.ErrorIs(t, err, shop.ErrNameIsRequired)
	})
}

func TestRestoreShop(t *testing.T) {
	s, err := shop.RestoreShop(kernel.NewUUID(), "auth0|shop-1", "Corner Deli", false)

	require.NoError(t, err)
	assert.False(t, s.IsOpen())
}

func TestShop_SetOpen(t *testing.T) {
	s, err := shop.NewShop(kernel.NewUUID(), "auth0|shop-1", "Corner Deli")
	require.NoError(t, err)

	assert.True(t, s.SetOpen(false))
	assert.False(t, s.IsOpen())

	assert.False(t, s.SetOpen(false), "same value twice is a no-op")
	assert.False(t, s.IsOpen())

	assert.True(t, s.SetOpen(true))
	assert.True(t, s.IsOpen())
}

func TestShop_Validate(t *testing.T) {
	var zero shop.Shop

	require.ErrorIs(t, zero.Validate(), shop.ErrShopIsNotConstructed)

	var nilShop *shop.Shop
	require.ErrorIs(t, nilShop.Validate(), shop.ErrShopIsNotConstructed)
}
