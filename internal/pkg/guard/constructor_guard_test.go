package guard_test

import (
	"errors"
	"testing"

	"logitrack/internal/pkg/guard"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConstructorGuard_Validate(t *testing.T) {
	errNotConstructed := errors.New("receipt must be created via NewReceipt")

	t.Run("constructed guard passes", func(t *testing.T) {
		// Given
		g := guard.NewConstructorGuard()

		// Then
		require.NoError(t, g.Validate(errNotConstructed))
		require.NoError(t, g.Validate(nil))
	})

	t.Run("zero value returns the supplied error", func(t *testing.T) {
		// Given
		var g guard.ConstructorGuard

		// When
		err := g.Validate(errNotConstructed)

		// Then
		assert.Equal(t, errNotConstructed, err)
	})

	t.Run("zero value falls back to the default error", func(t *testing.T) {
		var g guard.ConstructorGuard

		assert.Equal(t, guard.ErrDefaultConstructorGuard, g.Validate(nil))
		assert.Equal(t, "object must be created via its constructor", guard.ErrDefaultConstructorGuard.Error())
	})
}

func TestConstructorGuard_EmbeddedInStruct(t *testing.T) {
	type label struct {
		text  string
		guard guard.ConstructorGuard
	}
	errLabel := errors.New("label must be created via newLabel")

	newLabel := func(text string) (label, error) {
		if text == "" {
			return label{}, errors.New("text is required")
		}
		return label{text: text, guard: guard.NewConstructorGuard()}, nil
	}

	t.Run("copy of a constructed value stays valid", func(t *testing.T) {
		l, err := newLabel("Central Hub NY")
		require.NoError(t, err)

		cp := l
		require.NoError(t, cp.guard.Validate(errLabel))
	})

	t.Run("failed construction yields an invalid zero value", func(t *testing.T) {
		l, err := newLabel("")
		require.Error(t, err)
		assert.Equal(t, errLabel, l.guard.Validate(errLabel))
	})
}

func BenchmarkConstructorGuard_Validate(b *testing.B) {
	g := guard.NewConstructorGuard()
	err := errors.New("not constructed")
	for range b.N {
		_ = g.Validate(err)
	}
}
