package ers

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParsePanic(t *testing.T) {
	t.Parallel()

	t.Run("Nil", func(t *testing.T) {
		assert.NoError(t, ParsePanic(nil))
	})
	t.Run("Error", func(t *testing.T) {
		err := ParsePanic(context.Canceled)
		require.Error(t, err)
		assert.ErrorIs(t, err, context.Canceled)
		assert.ErrorIs(t, err, ErrRecoveredPanic)
		assert.Equal(t, "context canceled: recovered panic", err.Error())
	})
	t.Run("String", func(t *testing.T) {
		err := ParsePanic("whoops")
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrRecoveredPanic)
		assert.ErrorIs(t, err, Error("whoops"))
		assert.Equal(t, "whoops: recovered panic", err.Error())
	})
	t.Run("Other", func(t *testing.T) {
		err := ParsePanic(42)
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrRecoveredPanic)
		assert.Equal(t, "[int]: 42: recovered panic", err.Error())
	})
}

func TestWithRecoverDo(t *testing.T) {
	t.Parallel()

	t.Run("NoPanic", func(t *testing.T) {
		out, err := WithRecoverDo(func() int { return 42 })
		assert.NoError(t, err)
		assert.Equal(t, 42, out)
	})
	t.Run("Panic", func(t *testing.T) {
		assert.NotPanics(t, func() {
			out, err := WithRecoverDo(func() string { panic(context.DeadlineExceeded) })
			assert.ErrorIs(t, err, context.DeadlineExceeded)
			assert.ErrorIs(t, err, ErrRecoveredPanic)
			assert.Zero(t, out)
		})
	})
	t.Run("PanicWithNil", func(t *testing.T) {
		var fn func() int
		out, err := WithRecoverDo(fn)
		assert.ErrorIs(t, err, ErrRecoveredPanic)
		assert.Zero(t, out)
	})
}
