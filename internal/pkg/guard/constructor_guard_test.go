package guard_test

import (
	"errors"
	"testing"

	"barpos/internal/pkg/guard"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewConstructorGuard(t *testing.T) {
	t.Run("creates_properly_constructed_guard", func(t *testing.T) {
		g := guard.NewConstructorGuard()

		customError := errors.New("test object not constructed")
		require.NoError(t, g.Validate(customError))
		require.NoError(t, g.Validate(nil))
	})
}

func TestConstructorGuard_Validate(t *testing.T) {
	t.Run("zero_value_guard_returns_custom_error", func(t *testing.T) {
		var g guard.ConstructorGuard // zero value
		expectedError := errors.New("entity not constructed")

		err := g.Validate(expectedError)

		require.Error(t, err)
		assert.Equal(t, expectedError, err)
	})

	t.Run("zero_value_guard_returns_default_error_when_nil", func(t *testing.T) {
		var g guard.ConstructorGuard // zero value

		err := g.Validate(nil)

		require.Error(t, err)
		assert.Equal(t, guard.ErrDefaultConstructorGuard, err)
	})

	t.Run("default_error_has_meaningful_message", func(t *testing.T) {
		assert.Equal(t, "object must be created via its constructor", guard.ErrDefaultConstructorGuard.Error())
	})
}

// TestConstructorGuardUsageExample demonstrates how ConstructorGuard is used
// by domain objects to enforce constructor usage.
func TestConstructorGuardUsageExample(t *testing.T) {
	type tableTicket struct {
		table int
		guard guard.ConstructorGuard
	}

	var errTicketNotConstructed = errors.New("tableTicket must be created via newTableTicket")

	newTableTicket := func(table int) (tableTicket, error) {
		if table <= 0 {
			return tableTicket{}, errors.New("table must be positive")
		}
		return tableTicket{table: table, guard: guard.NewConstructorGuard()}, nil
	}

	t.Run("valid_construction_through_constructor", func(t *testing.T) {
		ticket, err := newTableTicket(5)

		require.NoError(t, err)
		require.NoError(t, ticket.guard.Validate(errTicketNotConstructed))
		assert.Equal(t, 5, ticket.table)
	})

	t.Run("zero_value_fails_validation", func(t *testing.T) {
		var ticket tableTicket // zero value

		err := ticket.guard.Validate(errTicketNotConstructed)

		require.Error(t, err)
		assert.Equal(t, errTicketNotConstructed, err)
	})

	t.Run("constructor_validates_business_rules", func(t *testing.T) {
		_, err := newTableTicket(0)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "table must be positive")
	})
}

func TestConstructorGuard_PassedByValue(t *testing.T) {
	g := guard.NewConstructorGuard()
	testError := errors.New("test error")

	gCopy := g

	require.NoError(t, g.Validate(testError))
	require.NoError(t, gCopy.Validate(testError))
}
