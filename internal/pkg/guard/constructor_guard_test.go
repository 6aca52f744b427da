package guard_test

import (
	"errors"
	"testing"

	"freight/internal/pkg/guard"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewConstructorGuard(t *testing.T) {
	g := guard.NewConstructorGuard()

	require.NoError(t, g.Validate(errors.New("not constructed")))
	require.NoError(t, g.Validate(nil))
}

func TestConstructorGuard_Validate(t *testing.T) {
	t.Run("zero_value_guard_returns_custom_error", func(t *testing.T) {
		// Given
		var g guard.ConstructorGuard
		expected := errors.New("rate card not constructed")

		// When
		err := g.Validate(expected)

		// Then
		require.Error(t, err)
		assert.Equal(t, expected, err)
	})

	t.Run("zero_value_guard_returns_default_error_when_nil", func(t *testing.T) {
		// Given
		var g guard.ConstructorGuard

		// When
		err := g.Validate(nil)

		// Then
		assert.Equal(t, guard.ErrDefaultConstructorGuard, err)
	})
}

func TestConstructorGuardEmbeddedInEntity(t *testing.T) {
	errCarrierNotConstructed := errors.New("Carrier must be created via NewCarrier")

	type carrier struct {
		name  string
		guard guard.ConstructorGuard
	}

	newCarrier := func(name string) (carrier, error) {
		if name == "" {
			return carrier{}, errors.New("name is required")
		}
		return carrier{name: name, guard: guard.NewConstructorGuard()}, nil
	}

	t.Run("constructed", func(t *testing.T) {
		c, err := newCarrier("Pony Express")

		require.NoError(t, err)
		require.NoError(t, c.guard.Validate(errCarrierNotConstructed))
		assert.Equal(t, "Pony Express", c.name)
	})

	t.Run("zero_value", func(t *testing.T) {
		var c carrier

		assert.ErrorIs(t, c.guard.Validate(errCarrierNotConstructed), errCarrierNotConstructed)
	})

	t.Run("constructor_rules", func(t *testing.T) {
		_, err := newCarrier("")

		assert.EqualError(t, err, "name is required")
	})
}
