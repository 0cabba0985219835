package queries_test

import (
	"testing"

	"driverhub/internal/core/application/usecases/queries"
	"driverhub/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGetDriverStatisticsQuery(t *testing.T) {
	q, err := queries.NewGetDriverStatisticsQuery("driver-7")

	require.NoError(t, err)
	assert.Equal(t, "driver-7", q.ActorID())
	assert.NoError(t, q.Validate())

	_, err = queries.NewGetDriverStatisticsQuery("")
	require.ErrorIs(t, err, errs.ErrValueIsRequired)
}

func TestNewGetShopStatisticsQuery(t *testing.T) {
	q, err := queries.NewGetShopStatisticsQuery("shop-1")

	require.NoError(t, err)
	assert.Equal(t, "shop-1", q.ActorID())
	assert.NoError(t, q.Validate())

	_, err = queries.NewGetShopStatisticsQuery("")
	require.ErrorIs(t, err, errs.ErrValueIsRequired)
}

func TestStatisticsQueries_Validate_NotConstructed(t *testing.T) {
	var dq queries.GetDriverStatisticsQuery
	require.ErrorIs(t, dq.Validate(), queries.ErrGetDriverStatisticsQueryIsNotConstructed)

	var sq queries.GetShopStatisticsQuery
	require.ErrorIs(t, sq.Validate(), queries.ErrGetShopStatisticsQueryIsNotConstructed)
}
