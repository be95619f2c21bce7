package analytics

import (
	"context"
	"testing"
	"time"

	"airline-warehouse/internal/shared/errors"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryCacheExpiry(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	cache := NewMemoryCache()
	cache.now = func() time.Time { return now }

	require.NoError(t, cache.Set(ctx, "k", Count{Label: "Gold", Count: 3}, time.Minute))

	var got Count
	hit, err := cache.Get(ctx, "k", &got)
	require.NoError(t, err)
	assert.True(t, hit)
	assert.Equal(t, Count{Label: "Gold", Count: 3}, got)

	now = now.Add(2 * time.Minute)
	hit, err = cache.Get(ctx, "k", &got)
	require.NoError(t, err)
	assert.False(t, hit)
}

func TestMemoryCacheZeroTTLNeverExpires(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	cache := NewMemoryCache()
	cache.now = func() time.Time { return now }

	require.NoError(t, cache.Set(ctx, "k", 42, 0))
	now = now.Add(24 * time.Hour)

	var got int
	hit, err := cache.Get(ctx, "k", &got)
	require.NoError(t, err)
	assert.True(t, hit)
	assert.Equal(t, 42, got)
}

func TestMemoryCacheMiss(t *testing.T) {
	var got int
	hit, err := NewMemoryCache().Get(context.Background(), "missing", &got)
	require.NoError(t, err)
	assert.False(t, hit)
}

func unreachableRedis() *redis.Client {
	return redis.NewClient(&redis.Options{
		Addr:        "127.0.0.1:1",
		DialTimeout: 100 * time.Millisecond,
		MaxRetries:  -1,
	})
}

func TestRedisCacheFailureIsExternal(t *testing.T) {
	client := unreachableRedis()
	defer client.Close()
	cache := NewRedisCache(client)

	var got int
	_, err := cache.Get(context.Background(), "k", &got)
	assert.True(t, errors.Is(err, errors.ErrorTypeExternal))

	err = cache.Set(context.Background(), "k", 1, time.Minute)
	assert.True(t, errors.Is(err, errors.ErrorTypeExternal))
}

func TestCacheFailureStillServesSummary(t *testing.T) {
	client := unreachableRedis()
	defer client.Close()

	s := NewService(NewRedisCache(client), time.Minute, quietLogger())
	s.Replace(fixture())

	r, err := s.Revenue(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 600.0, r.TotalRevenue)
}
