package cache

import (
	"context"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNopCache_AlwaysMisses(t *testing.T) {
	var c NopCache
	ctx := context.Background()

	require.NoError(t, c.Set(ctx, "salon:info", map[string]string{"name": "Élégance"}, time.Hour))

	var dst map[string]string
	found, err := c.Get(ctx, "salon:info", &dst)
	require.NoError(t, err)
	assert.False(t, found)
	assert.Nil(t, dst)

	assert.NoError(t, c.Delete(ctx, "salon:info"))
}

func TestRedisCache_KeyPrefix(t *testing.T) {
	c := &RedisCache{prefix: "salon:"}
	assert.Equal(t, "salon:services:list", c.key("services:list"))
}

func TestNewRedisCache_Unreachable(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 200*time.Millisecond)
	defer cancel()

	_, err := NewRedisCache(ctx, "127.0.0.1:1", "", 0, "salon:")
	assert.ErrorIs(t, err, ErrCacheUnavailable)
}

func TestRedisCache_DeleteNoKeys(t *testing.T) {
	c := &RedisCache{client: redis.NewClient(&redis.Options{Addr: "127.0.0.1:1"})}
	defer c.Close()

	assert.NoError(t, c.Delete(context.Background()))
}
