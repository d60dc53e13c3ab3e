package ratelimit

import (
	"context"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupTestRedis(t *testing.T) *redis.Client {
	client := redis.NewClient(&redis.Options{
		Addr: "localhost:6379",
		DB:   15,
	})

	ctx := context.Background()
	err := client.Ping(ctx).Err()
	if err != nil {
		t.Skipf("Redis not available: %v", err)
	}

	client.FlushDB(ctx)

	t.Cleanup(func() {
		client.FlushDB(ctx)
		client.Close()
	})

	return client
}

// fixedClock pins the limiter to the start of a window so a test never
// straddles two windows.
func fixedClock(l *RedisRateLimiter) {
	start := time.Now().Truncate(time.Hour).Add(time.Second)
	l.now = func() time.Time { return start }
}

func TestRedisRateLimiter_Allow(t *testing.T) {
	limiter := NewRedisRateLimiter(setupTestRedis(t))
	fixedClock(limiter)
	ctx := context.Background()

	for i := 0; i < 5; i++ {
		d, err := limiter.Allow(ctx, "10.0.0.1", 5, time.Minute)
		require.NoError(t, err)
		assert.True(t, d.Allowed, "request %d should be allowed", i+1)
		assert.Equal(t, int64(4-i), d.Remaining)
	}

	d, err := limiter.Allow(ctx, "10.0.0.1", 5, time.Minute)
	require.NoError(t, err)
	assert.False(t, d.Allowed, "6th request should be denied")
	assert.Zero(t, d.Remaining)
	assert.Greater(t, d.ResetIn, time.Duration(0))
}

func TestRedisRateLimiter_KeysAreIndependent(t *testing.T) {
	limiter := NewRedisRateLimiter(setupTestRedis(t))
	fixedClock(limiter)
	ctx := context.Background()

	d, err := limiter.Allow(ctx, "10.0.0.1", 1, time.Minute)
	require.NoError(t, err)
	assert.True(t, d.Allowed)

	d, err = limiter.Allow(ctx, "10.0.0.2", 1, time.Minute)
	require.NoError(t, err)
	assert.True(t, d.Allowed)

	d, err = limiter.Allow(ctx, "10.0.0.1", 1, time.Minute)
	require.NoError(t, err)
	assert.False(t, d.Allowed)
}

func TestRedisRateLimiter_NextWindowStartsFresh(t *testing.T) {
	limiter := NewRedisRateLimiter(setupTestRedis(t))
	fixedClock(limiter)
	ctx := context.Background()

	d, err := limiter.Allow(ctx, "10.0.0.3", 1, time.Minute)
	require.NoError(t, err)
	require.True(t, d.Allowed)

	next := limiter.now().Add(time.Minute)
	limiter.now = func() time.Time { return next }

	d, err = limiter.Allow(ctx, "10.0.0.3", 1, time.Minute)
	require.NoError(t, err)
	assert.True(t, d.Allowed)
}

func TestRedisRateLimiter_Reset(t *testing.T) {
	limiter := NewRedisRateLimiter(setupTestRedis(t))
	fixedClock(limiter)
	ctx := context.Background()

	_, err := limiter.Allow(ctx, "10.0.0.4", 1, time.Minute)
	require.NoError(t, err)
	require.NoError(t, limiter.Reset(ctx, "10.0.0.4"))

	d, err := limiter.Allow(ctx, "10.0.0.4", 1, time.Minute)
	require.NoError(t, err)
	assert.True(t, d.Allowed)
}

func TestRedisRateLimiter_UnlimitedSkipsRedis(t *testing.T) {
	// an unreachable client proves no command is issued
	client := redis.NewClient(&redis.Options{Addr: "127.0.0.1:1", DialTimeout: 50 * time.Millisecond})
	t.Cleanup(func() { client.Close() })

	d, err := NewRedisRateLimiter(client).Allow(context.Background(), "k", 0, time.Minute)
	require.NoError(t, err)
	assert.True(t, d.Allowed)
}

func TestRedisRateLimiter_UnreachableRedisReturnsError(t *testing.T) {
	client := redis.NewClient(&redis.Options{Addr: "127.0.0.1:1", DialTimeout: 50 * time.Millisecond, MaxRetries: -1})
	t.Cleanup(func() { client.Close() })

	_, err := NewRedisRateLimiter(client).Allow(context.Background(), "k", 5, time.Minute)
	assert.Error(t, err)
}
