package cache

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemory(t *testing.T) {
	ctx := context.Background()

	t.Run("MissOnUnknownKey", func(t *testing.T) {
		m := NewMemory()

		_, ok, err := m.Get(ctx, "posts:all")
		require.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("RoundTripWithinTTL", func(t *testing.T) {
		m := NewMemory()

		require.NoError(t, m.Set(ctx, "posts:all", []byte(`[1,2,3]`), time.Minute))

		value, ok, err := m.Get(ctx, "posts:all")
		require.NoError(t, err)
		require.True(t, ok)
		assert.Equal(t, []byte(`[1,2,3]`), value)
	})

	t.Run("ExpiresAfterTTL", func(t *testing.T) {
		m := NewMemory()
		current := time.Date(2024, 1, 14, 12, 0, 0, 0, time.UTC)
		m.now = func() time.Time { return current }

		require.NoError(t, m.Set(ctx, "posts:all", []byte(`[]`), time.Minute))

		current = current.Add(59 * time.Second)
		_, ok, err := m.Get(ctx, "posts:all")
		require.NoError(t, err)
		assert.True(t, ok, "value should still be valid before the TTL")

		current = current.Add(2 * time.Second)
		_, ok, err = m.Get(ctx, "posts:all")
		require.NoError(t, err)
		assert.False(t, ok, "value should be revalidated after the TTL")
	})
}
