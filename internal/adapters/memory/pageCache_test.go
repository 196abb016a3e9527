package memory

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPageCacheExpiry(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	c := NewPageCache(0, time.Hour)
	c.Now = func() time.Time { return now }

	_, ok, err := c.Get(ctx, "/")
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, c.Set(ctx, "/", []byte("body"), 20*time.Second))

	now = now.Add(19 * time.Second)
	got, ok, err := c.Get(ctx, "/")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "body", string(got))

	now = now.Add(time.Second)
	_, ok, err = c.Get(ctx, "/")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestPageCacheKeysAndClear(t *testing.T) {
	ctx := context.Background()
	c := NewPageCache(10, time.Minute)

	require.NoError(t, c.Set(ctx, "/", []byte("one"), time.Minute))
	require.NoError(t, c.Set(ctx, "/?page=2", []byte("two"), time.Minute))

	got, _, _ := c.Get(ctx, "/?page=2")
	assert.Equal(t, "two", string(got))

	require.NoError(t, c.Clear(ctx))
	for _, k := range []string{"/", "/?page=2"} {
		_, ok, err := c.Get(ctx, k)
		require.NoError(t, err)
		assert.False(t, ok)
	}
}

func TestPageCacheEvictsLeastRecent(t *testing.T) {
	ctx := context.Background()
	c := NewPageCache(2, time.Minute)

	require.NoError(t, c.Set(ctx, "a", []byte("a"), time.Minute))
	require.NoError(t, c.Set(ctx, "b", []byte("b"), time.Minute))
	_, _, _ = c.Get(ctx, "a")
	require.NoError(t, c.Set(ctx, "c", []byte("c"), time.Minute))

	_, ok, _ := c.Get(ctx, "b")
	assert.False(t, ok)
	_, ok, _ = c.Get(ctx, "a")
	assert.True(t, ok)
}
