package guard_test

import (
	"errors"
	"testing"

	"bookstore/internal/pkg/guard"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConstructorGuard_Validate(t *testing.T) {
	t.Run("should pass for constructed guard", func(t *testing.T) {
		g := guard.NewConstructorGuard()

		require.NoError(t, g.Validate(errors.New("not constructed")))
		require.NoError(t, g.Validate(nil))
	})

	t.Run("should return custom error for zero value guard", func(t *testing.T) {
		var g guard.ConstructorGuard
		expected := errors.New("command not constructed")

		err := g.Validate(expected)

		require.Error(t, err)
		assert.Equal(t, expected, err)
	})

	t.Run("should fall back to default error when nil is passed", func(t *testing.T) {
		var g guard.ConstructorGuard

		err := g.Validate(nil)

		require.Error(t, err)
		assert.Equal(t, guard.ErrDefaultConstructorGuard, err)
	})
}

// TestConstructorGuard_Usage shows the intended embedding pattern: a value
// object whose zero value fails validation.
func TestConstructorGuard_Usage(t *testing.T) {
	type orderLine struct {
		title string
		guard guard.ConstructorGuard
	}

	errNotConstructed := errors.New("orderLine must be created via newOrderLine")

	newOrderLine := func(title string) (orderLine, error) {
		if title == "" {
			return orderLine{}, errors.New("title is required")
		}
		return orderLine{title: title, guard: guard.NewConstructorGuard()}, nil
	}

	t.Run("should accept factory-built value", func(t *testing.T) {
		line, err := newOrderLine("The Go Programming Language")

		require.NoError(t, err)
		require.NoError(t, line.guard.Validate(errNotConstructed))
	})

	t.Run("should reject zero value", func(t *testing.T) {
		var line orderLine

		err := line.guard.Validate(errNotConstructed)

		require.Error(t, err)
		assert.Equal(t, errNotConstructed, err)
	})
}
