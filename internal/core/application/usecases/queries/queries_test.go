package queries_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"barpos/internal/core/application/usecases/queries"
	"barpos/internal/core/domain/model/kernel"
)

func TestNewListOrdersQuery_Valid(t *testing.T) {
	query := queries.NewListOrdersQuery()
	require.NoError(t, query.Validate())
}

func TestListOrdersQuery_NotConstructedViaConstructor(t *testing.T) {
	query := queries.ListOrdersQuery{}
	err := query.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, queries.ErrListOrdersQueryIsNotConstructed)
}

func TestNewGetOrderByIDQuery_Valid(t *testing.T) {
	query, err := queries.NewGetOrderByIDQuery(kernel.NewUUID())
	require.NoError(t, err)
	require.NoError(t, query.Validate())
}

func TestNewGetOrderByIDQuery_InvalidID(t *testing.T) {
	_, err := queries.NewGetOrderByIDQuery(kernel.UUID{})
	require.Error(t, err)
}

func TestNewListTableOrdersQuery_Valid(t *testing.T) {
	table, err := kernel.NewTableNumber(11)
	require.NoError(t, err)

	query, err := queries.NewListTableOrdersQuery(table)
	require.NoError(t, err)
	require.NoError(t, query.Validate())
	assert.Equal(t, 11, query.TableNumber().Value())
}

func TestNewListTableOrdersQuery_InvalidTable(t *testing.T) {
	_, err := queries.NewListTableOrdersQuery(kernel.TableNumber{})
	require.Error(t, err)
}

func TestNewListStaffQuery_Valid(t *testing.T) {
	query := queries.NewListStaffQuery()
	require.NoError(t, query.Validate())
}

func TestNewListMenuQuery_Valid(t *testing.T) {
	query := queries.NewListMenuQuery()
	require.NoError(t, query.Validate())
}

func TestListMenuQuery_NotConstructedViaConstructor(t *testing.T) {
	query := queries.ListMenuQuery{}
	err := query.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, queries.ErrListMenuQueryIsNotConstructed)
}
