package cache

import (
	"context"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFastCache_SetGetDel(t *testing.T) {
	fc := NewFastCache(FastCacheConfig{})
	ctx := context.Background()

	require.NoError(t, fc.Set(ctx, "k", "v", 0).Err())
	v, err := fc.Get(ctx, "k").Result()
	require.NoError(t, err)
	assert.Equal(t, "v", v)

	assert.Equal(t, int64(1), fc.Del(ctx, "k", "missing").Val())
	_, err = fc.Get(ctx, "k").Result()
	assert.ErrorIs(t, err, redis.Nil)
}

func TestFastCache_Expiry(t *testing.T) {
	fc := NewFastCache(FastCacheConfig{})
	ctx := context.Background()
	now := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	fc.now = func() time.Time { return now }

	fc.Set(ctx, "k", []byte("v"), time.Minute)
	_, err := fc.Get(ctx, "k").Result()
	require.NoError(t, err)

	now = now.Add(2 * time.Minute)
	_, err = fc.Get(ctx, "k").Result()
	assert.ErrorIs(t, err, redis.Nil)

	fc.Set(ctx, "k2", "v", time.Minute)
	assert.True(t, fc.Expire(ctx, "k2", time.Hour).Val())
	now = now.Add(30 * time.Minute)
	_, err = fc.Get(ctx, "k2").Result()
	assert.NoError(t, err)
}

func TestFastCache_EvalUnsupported(t *testing.T) {
	fc := NewFastCache(FastCacheConfig{})
	assert.ErrorIs(t, fc.Eval(context.Background(), "return 1", nil).Err(), errEvalUnsupported)
}
