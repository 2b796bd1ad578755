package order_test

import (
	"testing"
	"time"

	"barpos/internal/core/domain/model/kernel"
	"barpos/internal/core/domain/model/order"
	"barpos/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustTable(t *testing.T, n int) kernel.TableNumber {
	t.Helper()
	table, err := kernel.NewTableNumber(n)
	require.NoError(t, err)
	return table
}

func mustItem(t *testing.T, ref string, qty int) order.Item {
	t.Helper()
	item, err := order.NewItem(ref, qty)
	require.NoError(t, err)
	return item
}

func TestNewItem(t *testing.T) {
	t.Run("creates valid item", func(t *testing.T) {
		item, err := order.NewItem("beer", 2)

		require.NoError(t, err)
		assert.Equal(t, "beer", item.ProductRef())
		assert.Equal(t, 2, item.Quantity())
	})

	t.Run("rejects empty product reference", func(t *testing.T) {
		_, err := order.NewItem("", 1)

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("rejects non-positive quantity", func(t *testing.T) {
		for _, qty := range []int{0, -1} {
			_, err := order.NewItem("beer", qty)

			require.Error(t, err)
			assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
		}
	})
}

func TestNewOrder(t *testing.T) {
	t.Run("creates pending order with creation time", func(t *testing.T) {
		id := kernel.NewUUID()
		table := mustTable(t, 5)
		items := []order.Item{mustItem(t, "beer", 2), mustItem(t, "fries", 1)}

		before := time.Now().UTC()
		o, err := order.NewOrder(id, table, items)
		after := time.Now().UTC()

		require.NoError(t, err)
		assert.True(t, o.ID().IsEqual(id))
		assert.True(t, o.TableNumber().IsEqual(table))
		assert.Equal(t, order.Pending, o.Status())
		assert.Equal(t, items, o.Items())
		assert.False(t, o.CreatedAt().Before(before))
		assert.False(t, o.CreatedAt().After(after))
	})

	t.Run("rejects invalid id", func(t *testing.T) {
		_, err := order.NewOrder(kernel.UUID{}, mustTable(t, 5), []order.Item{mustItem(t, "beer", 1)})

		require.Error(t, err)
	})

	t.Run("rejects unconstructed table number", func(t *testing.T) {
		_, err := order.NewOrder(kernel.NewUUID(), kernel.TableNumber{}, []order.Item{mustItem(t, "beer", 1)})

		require.Error(t, err)
	})

	t.Run("rejects empty items", func(t *testing.T) {
		_, err := order.NewOrder(kernel.NewUUID(), mustTable(t, 5), nil)

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("copies the item slice", func(t *testing.T) {
		items := []order.Item{mustItem(t, "beer", 2)}
		o, err := order.NewOrder(kernel.NewUUID(), mustTable(t, 5), items)
		require.NoError(t, err)

		items[0] = mustItem(t, "wine", 9)

		assert.Equal(t, "beer", o.Items()[0].ProductRef())
	})
}

func TestRestoreOrder(t *testing.T) {
	t.Run("restores order with persisted state", func(t *testing.T) {
		id := kernel.NewUUID()
		table := mustTable(t, 3)
		items := []order.Item{mustItem(t, "espresso", 1)}
		createdAt := time.Date(2025, 6, 1, 12, 30, 0, 0, time.UTC)

		o, err := order.RestoreOrder(id, table, items, order.Ready, createdAt)

		require.NoError(t, err)
		assert.Equal(t, order.Ready, o.Status())
		assert.Equal(t, createdAt, o.CreatedAt())
	})

	t.Run("rejects invalid status", func(t *testing.T) {
		_, err := order.RestoreOrder(
			kernel.NewUUID(), mustTable(t, 3),
			[]order.Item{mustItem(t, "espresso", 1)},
			order.Unknown, time.Now().UTC(),
		)

		require.Error(t, err)
	})

	t.Run("rejects zero creation time", func(t *testing.T) {
		_, err := order.RestoreOrder(
			kernel.NewUUID(), mustTable(t, 3),
			[]order.Item{mustItem(t, "espresso", 1)},
			order.Pending, time.Time{},
		)

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsRequired)
	})
}

func TestOrder_Validate(t *testing.T) {
	t.Run("constructed order is valid", func(t *testing.T) {
		o, err := order.NewOrder(kernel.NewUUID(), mustTable(t, 1), []order.Item{mustItem(t, "beer", 1)})

		require.NoError(t, err)
		require.NoError(t, o.Validate())
	})

	t.Run("zero value order is invalid", func(t *testing.T) {
		var o order.Order

		err := o.Validate()

		require.Error(t, err)
		assert.Equal(t, order.ErrOrderIsNotConstructed, err)
	})

	t.Run("nil order is invalid", func(t *testing.T) {
		var o *order.Order

		err := o.Validate()

		require.Error(t, err)
	})
}

func TestOrder_ChangeStatus(t *testing.T) {
	newOrder := func(t *testing.T) *order.Order {
		t.Helper()
		o, err := order.NewOrder(kernel.NewUUID(), mustTable(t, 5), []order.Item{mustItem(t, "beer", 2)})
		require.NoError(t, err)
		return o
	}

	t.Run("returns previous status on every change", func(t *testing.T) {
		o := newOrder(t)

		previous, err := o.ChangeStatus(order.Preparing)
		require.NoError(t, err)
		assert.Equal(t, order.Pending, previous)
		assert.Equal(t, order.Preparing, o.Status())

		previous, err = o.ChangeStatus(order.Delivered)
		require.NoError(t, err)
		assert.Equal(t, order.Preparing, previous)
		assert.Equal(t, order.Delivered, o.Status())
	})

	t.Run("accepts every valid target status", func(t *testing.T) {
		targets := []order.Status{
			order.Pending, order.Preparing, order.Ready, order.Delivered, order.Cancelled,
		}

		for _, target := range targets {
			o := newOrder(t)

			previous, err := o.ChangeStatus(target)

			require.NoError(t, err)
			assert.Equal(t, order.Pending, previous)
			assert.Equal(t, target, o.Status())
		}
	})

	t.Run("allows corrective backwards transitions", func(t *testing.T) {
		o := newOrder(t)

		_, err := o.ChangeStatus(order.Ready)
		require.NoError(t, err)

		previous, err := o.ChangeStatus(order.Preparing)
		require.NoError(t, err)
		assert.Equal(t, order.Ready, previous)
		assert.Equal(t, order.Preparing, o.Status())
	})

	t.Run("rejects invalid target and leaves order unchanged", func(t *testing.T) {
		o := newOrder(t)

		_, err := o.ChangeStatus(order.Status(42))

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
		assert.Equal(t, order.Pending, o.Status())
	})
}

func TestOrder_IsEqual(t *testing.T) {
	a, err := order.NewOrder(kernel.NewUUID(), mustTable(t, 1), []order.Item{mustItem(t, "beer", 1)})
	require.NoError(t, err)
	b, err := order.NewOrder(kernel.NewUUID(), mustTable(t, 1), []order.Item{mustItem(t, "beer", 1)})
	require.NoError(t, err)

	assert.True(t, a.IsEqual(a))
	assert.False(t, a.IsEqual(b))
	assert.False(t, a.IsEqual(nil))
}
