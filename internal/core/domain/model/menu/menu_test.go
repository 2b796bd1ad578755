package menu_test

import (
	"testing"

	"barpos/internal/core/domain/model/kernel"
	"barpos/internal/core/domain/model/menu"
	"barpos/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCategory(t *testing.T) {
	t.Run("creates valid category", func(t *testing.T) {
		id := kernel.NewUUID()

		c, err := menu.NewCategory(id, "beers")

		require.NoError(t, err)
		assert.True(t, c.ID().IsEqual(id))
		assert.Equal(t, "beers", c.Name())
		require.NoError(t, c.Validate())
	})

	t.Run("rejects empty name", func(t *testing.T) {
		_, err := menu.NewCategory(kernel.NewUUID(), "")

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("rejects invalid id", func(t *testing.T) {
		_, err := menu.NewCategory(kernel.UUID{}, "beers")

		require.Error(t, err)
	})
}

func TestCategory_Rename(t *testing.T) {
	c, err := menu.NewCategory(kernel.NewUUID(), "beers")
	require.NoError(t, err)

	require.NoError(t, c.Rename("craft beers"))
	assert.Equal(t, "craft beers", c.Name())

	require.Error(t, c.Rename(""))
	assert.Equal(t, "craft beers", c.Name())
}

func TestNewProduct(t *testing.T) {
	categoryID := kernel.NewUUID()

	t.Run("creates valid product", func(t *testing.T) {
		id := kernel.NewUUID()

		p, err := menu.NewProduct(id, "IPA", 550, categoryID)

		require.NoError(t, err)
		assert.True(t, p.ID().IsEqual(id))
		assert.Equal(t, "IPA", p.Name())
		assert.Equal(t, int64(550), p.PriceCents())
		assert.True(t, p.CategoryID().IsEqual(categoryID))
	})

	t.Run("allows zero price", func(t *testing.T) {
		_, err := menu.NewProduct(kernel.NewUUID(), "tap water", 0, categoryID)

		require.NoError(t, err)
	})

	t.Run("rejects negative price", func(t *testing.T) {
		_, err := menu.NewProduct(kernel.NewUUID(), "IPA", -1, categoryID)

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("rejects empty name", func(t *testing.T) {
		_, err := menu.NewProduct(kernel.NewUUID(), "", 550, categoryID)

		require.Error(t, err)
	})

	t.Run("rejects invalid category id", func(t *testing.T) {
		_, err := menu.NewProduct(kernel.NewUUID(), "IPA", 550, kernel.UUID{})

		require.Error(t, err)
	})
}
