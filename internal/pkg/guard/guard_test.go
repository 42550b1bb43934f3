package guard_test

import (
	"errors"
	"testing"

	"orderdesk/internal/pkg/guard"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConstructorGuard_Validate(t *testing.T) {
	t.Run("constructed_guard_returns_nil", func(t *testing.T) {
		// Given
		g := guard.NewConstructorGuard()

		// Then
		require.NoError(t, g.Validate(errors.New("not constructed")))
		require.NoError(t, g.Validate(nil))
	})

	t.Run("zero_value_guard_returns_custom_error", func(t *testing.T) {
		// Given
		var g guard.ConstructorGuard
		expected := errors.New("Client must be created via NewClient")

		// When
		err := g.Validate(expected)

		// Then
		assert.Equal(t, expected, err)
	})

	t.Run("zero_value_guard_returns_default_error_when_nil", func(t *testing.T) {
		var g guard.ConstructorGuard

		assert.Equal(t, guard.ErrDefaultConstructorGuard, g.Validate(nil))
	})
}

func TestConstructorGuard_EmbeddedInEntity(t *testing.T) {
	errLineNotConstructed := errors.New("Line must be created via NewLine")

	type line struct {
		quantity int
		guard    guard.ConstructorGuard
	}

	newLine := func(quantity int) (line, error) {
		if quantity <= 0 {
			return line{}, errors.New("quantity must be positive")
		}
		return line{quantity: quantity, guard: guard.NewConstructorGuard()}, nil
	}

	t.Run("constructed_line_is_valid", func(t *testing.T) {
		l, err := newLine(2)

		require.NoError(t, err)
		require.NoError(t, l.guard.Validate(errLineNotConstructed))
		assert.Equal(t, 2, l.quantity)
	})

	t.Run("failed_construction_returns_zero_value", func(t *testing.T) {
		l, err := newLine(0)

		require.Error(t, err)
		assert.Equal(t, errLineNotConstructed, l.guard.Validate(errLineNotConstructed))
	})

	t.Run("guard_survives_copy", func(t *testing.T) {
		l, _ := newLine(1)
		cp := l

		require.NoError(t, cp.guard.Validate(errLineNotConstructed))
	})
}

func BenchmarkConstructorGuard_Validate(b *testing.B) {
	g := guard.NewConstructorGuard()
	err := errors.New("not constructed")
	b.ResetTimer()
	for range b.N {
		_ = g.Validate(err)
	}
}
