package queries_test

import (
	"testing"

	"solarstore/internal/core/application/usecases/queries"
	"solarstore/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGetOrderByIDQuery_Valid(t *testing.T) {
	id := kernel.NewUUID()

	query, err := queries.NewGetOrderByIDQuery(id)

	require.NoError(t, err)
	require.NoError(t, query.Validate())
	assert.True(t, query.OrderID().IsEqual(id))
}

func TestNewGetOrderByIDQuery_ZeroValueID(t *testing.T) {
	_, err := queries.NewGetOrderByIDQuery(kernel.UUID{})

	require.Error(t, err)
}

func TestGetOrderByIDQuery_NotConstructedViaConstructor(t *testing.T) {
	query := queries.GetOrderByIDQuery{}

	err := query.Validate()

	require.Error(t, err)
	assert.ErrorIs(t, err, queries.ErrGetOrderByIDQueryIsNotConstructed)
}

func TestNewGetAccountQuery_Valid(t *testing.T) {
	query := queries.NewGetAccountQuery()
	require.NoError(t, query.Validate())
}

func TestGetAccountQuery_NotConstructedViaConstructor(t *testing.T) {
	err := queries.GetAccountQuery{}.Validate()
	assert.ErrorIs(t, err, queries.ErrGetAccountQueryIsNotConstructed)
}

func TestNewGetPendingOrdersQuery_Valid(t *testing.T) {
	query := queries.NewGetPendingOrdersQuery()
	require.NoError(t, query.Validate())
}

func TestGetPendingOrdersQuery_NotConstructedViaConstructor(t *testing.T) {
	err := queries.GetPendingOrdersQuery{}.Validate()
	assert.ErrorIs(t, err, queries.ErrGetPendingOrdersQueryIsNotConstructed)
}
