package redis

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redis/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newCache(t *testing.T) (*PageCacheRedis, *miniredis.Miniredis) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return NewPageCacheRedis(client, ""), mr
}

func TestPageCacheRedisExpiry(t *testing.T) {
	c, mr := newCache(t)
	ctx := context.Background()

	_, ok, err := c.Get(ctx, "/")
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, c.Set(ctx, "/", []byte("<html>page</html>"), 20*time.Second))
	assert.True(t, mr.Exists(DefaultPagePrefix+"/"))

	got, ok, err := c.Get(ctx, "/")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "<html>page</html>", string(got))

	mr.FastForward(19 * time.Second)
	_, ok, err = c.Get(ctx, "/")
	require.NoError(t, err)
	assert.True(t, ok)

	mr.FastForward(2 * time.Second)
	_, ok, err = c.Get(ctx, "/")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestPageCacheRedisClearKeepsForeignKeys(t *testing.T) {
	c, mr := newCache(t)
	ctx := context.Background()

	require.NoError(t, mr.Set("session:1", "keep me"))
	for _, k := range []string{"/", "/?page=2", "/?page=3"} {
		require.NoError(t, c.Set(ctx, k, []byte(k), time.Minute))
	}

	require.NoError(t, c.Clear(ctx))

	for _, k := range []string{"/", "/?page=2", "/?page=3"} {
		_, ok, err := c.Get(ctx, k)
		require.NoError(t, err)
		assert.False(t, ok, k)
	}
	assert.True(t, mr.Exists("session:1"))
}
