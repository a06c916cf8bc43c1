package cache

import (
	"context"
	"testing"
	"time"

	"github.com/SAP-F-2025/challenge-service/internal/proposal"
	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestCache(t *testing.T) (*miniredis.Miniredis, CacheService) {
	t.Helper()

	server := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: server.Addr()})
	t.Cleanup(func() { client.Close() })

	return server, NewRedisCache(client, zap.NewNop())
}

func TestRedisCache(t *testing.T) {
	ctx := context.Background()
	server, cache := newTestCache(t)

	t.Run("miss", func(t *testing.T) {
		var dest map[string]string
		assert.ErrorIs(t, cache.Get(ctx, "absent", &dest), ErrCacheMiss)
	})

	t.Run("set then get", func(t *testing.T) {
		require.NoError(t, cache.Set(ctx, "k", map[string]string{"a": "b"}, time.Minute))

		var dest map[string]string
		require.NoError(t, cache.Get(ctx, "k", &dest))
		assert.Equal(t, map[string]string{"a": "b"}, dest)
	})

	t.Run("expiry", func(t *testing.T) {
		require.NoError(t, cache.Set(ctx, "short", 1, time.Second))
		server.FastForward(2 * time.Second)

		var dest int
		assert.ErrorIs(t, cache.Get(ctx, "short", &dest), ErrCacheMiss)
	})

	t.Run("undecodable entry is dropped", func(t *testing.T) {
		require.NoError(t, server.Set("broken", "{not json"))

		var dest map[string]string
		assert.ErrorIs(t, cache.Get(ctx, "broken", &dest), ErrCacheMiss)
		assert.False(t, server.Exists("broken"))
	})

	t.Run("delete pattern", func(t *testing.T) {
		require.NoError(t, cache.Set(ctx, "p:1:a", 1, 0))
		require.NoError(t, cache.Set(ctx, "p:1:b", 2, 0))
		require.NoError(t, cache.Set(ctx, "p:2:a", 3, 0))

		require.NoError(t, cache.DeletePattern(ctx, "p:1:*"))
		assert.False(t, server.Exists("p:1:a"))
		assert.False(t, server.Exists("p:1:b"))
		assert.True(t, server.Exists("p:2:a"))

		require.NoError(t, cache.DeletePattern(ctx, "nothing:*"))
	})
}

func TestTemplateCache(t *testing.T) {
	ctx := context.Background()
	server, cache := newTestCache(t)
	templates := NewTemplateCache(cache, time.Hour, nil)

	template := "City: ${city#Paris}\nYear: ${year}"

	first, err := templates.Rendering(ctx, 4, proposal.MultiText, template)
	require.NoError(t, err)
	assert.Equal(t, []string{"city", "year"}, first.Fields)

	key := RenderKey(4, proposal.MultiText, template)
	assert.True(t, server.Exists(key))
	assert.Equal(t, time.Hour, server.TTL(key))

	second, err := templates.Rendering(ctx, 4, proposal.MultiText, template)
	require.NoError(t, err)
	assert.Equal(t, first, second)

	assert.NotEqual(t, key, RenderKey(4, proposal.MultiText, template+"!"))
	assert.NotEqual(t, key, RenderKey(4, proposal.SingleText, template))

	require.NoError(t, templates.Invalidate(ctx, 4))
	assert.False(t, server.Exists(key))
}

func TestTemplateCache_RedisDown(t *testing.T) {
	client := redis.NewClient(&redis.Options{
		Addr:        "127.0.0.1:1",
		MaxRetries:  -1,
		DialTimeout: 100 * time.Millisecond,
	})
	t.Cleanup(func() { client.Close() })

	templates := NewTemplateCache(NewRedisCache(client, nil), time.Minute, zap.NewNop())

	rendering, err := templates.Rendering(context.Background(), 1, proposal.MultiChoice, "- a\n- b")
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b"}, rendering.Proposals)
}
