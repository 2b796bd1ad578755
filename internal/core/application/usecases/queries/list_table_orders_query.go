package queries

import (
	"errors"

	"barpos/internal/core/domain/model/kernel"
	"barpos/internal/pkg/guard"
)

var ErrListTableOrdersQueryIsNotConstructed = errors.New(
	"ListTableOrdersQuery must be created via NewListTableOrdersQuery constructor",
)

// ListTableOrdersQuery retrieves the orders of one table, newest first.
// Backs the per-table view a waiter opens at the table.
type ListTableOrdersQuery struct { //nolint:recvcheck //using for validation
	tableNumber kernel.TableNumber

	guard guard.ConstructorGuard
}

// NewListTableOrdersQuery creates a query for one table's orders.
func NewListTableOrdersQuery(tableNumber kernel.TableNumber) (ListTableOrdersQuery, error) {
	query := ListTableOrdersQuery{
		guard: guard.NewConstructorGuard(),
	}

	if err := query.setTableNumber(tableNumber); err != nil {
		return ListTableOrdersQuery{}, err
	}

	return query, nil
}

// Validate ensures the query was created through the constructor.
func (q ListTableOrdersQuery) Validate() error {
	return q.guard.Validate(ErrListTableOrdersQueryIsNotConstructed)
}

// TableNumber returns the table whose orders are fetched.
func (q ListTableOrdersQuery) TableNumber() kernel.TableNumber {
	return q.tableNumber
}

func (q *ListTableOrdersQuery) setTableNumber(tableNumber kernel.TableNumber) error {
	if err := tableNumber.Validate(); err != nil {
		return err
	}

	q.tableNumber = tableNumber
	return nil
}
