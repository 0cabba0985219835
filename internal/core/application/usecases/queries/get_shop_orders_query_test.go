package queries_test

import (
	"testing"

	"driverhub/internal/core/application/usecases/queries"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGetShopOrdersQuery_Success(t *testing.T) {
	tests := []struct {
		name  string
		scope queries.OrderScope
	}{
		{name: "unclaimed", scope: queries.ScopeUnclaimed},
		{name: "in flight", scope: queries.ScopeInFlight},
		{name: "delivered", scope: queries.ScopeDelivered},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q, err := queries.NewGetShopOrdersQuery("shop-1", tt.scope)

			require.NoError(t, err)
			assert.Equal(t, "shop-1", q.ActorID())
			assert.Equal(t, tt.scope, q.Scope())
			assert.NoError(t, q.Validate())
		})
	}
}

func TestNewGetShopOrdersQuery_InvalidScope(t *testing.T) {
	_, err := queries.NewGetShopOrdersQuery("shop-1", queries.ScopeUnknown)

	require.Error(t, err)
	require.ErrorIs(t, err, queries.ErrOrderScopeIsInvalid)
}

func TestGetShopOrdersQuery_Validate_NotConstructed(t *testing.T) {
	var q queries.GetShopOrdersQuery

	err := q.Validate()

	require.Error(t, err)
	require.ErrorIs(t, err, queries.ErrGetShopOrdersQueryIsNotConstructed)
}
