package queries_test

import (
	"testing"

	"driverhub/internal/core/application/usecases/queries"
	"driverhub/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGetDriverOrdersQuery_Success(t *testing.T) {
	tests := []struct {
		name  string
		scope queries.OrderScope
	}{
		{name: "in flight", scope: queries.ScopeInFlight},
		{name: "delivered", scope: queries.ScopeDelivered},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q, err := queries.NewGetDriverOrdersQuery("driver-7", tt.scope)

			require.NoError(t, err)
			assert.Equal(t, "driver-7", q.ActorID())
			assert.Equal(t, tt.scope, q.Scope())
			assert.NoError(t, q.Validate())
		})
	}
}

func TestNewGetDriverOrdersQuery_InvalidScope(t *testing.T) {
	tests := []struct {
		name  string
		scope queries.OrderScope
	}{
		{name: "unknown", scope: queries.ScopeUnknown},
		{name: "unclaimed is a separate global query", scope: queries.ScopeUnclaimed},
		{name: "out of range", scope: queries.OrderScope(42)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := queries.NewGetDriverOrdersQuery("driver-7", tt.scope)

			require.Error(t, err)
			require.ErrorIs(t, err, queries.ErrOrderScopeIsInvalid)
		})
	}
}

func TestNewGetDriverOrdersQuery_EmptyActorID(t *testing.T) {
	_, err := queries.NewGetDriverOrdersQuery("", queries.ScopeInFlight)

	require.Error(t, err)
	require.ErrorIs(t, err, errs.ErrValueIsRequired)
}

func TestGetDriverOrdersQuery_Validate_NotConstructed(t *testing.T) {
	var q queries.GetDriverOrdersQuery

	err := q.Validate()

	require.Error(t, err)
	require.ErrorIs(t, err, queries.ErrGetDriverOrdersQueryIsNotConstructed)
}
