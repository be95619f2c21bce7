package analytics

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"airline-warehouse/internal/shared/errors"

	"github.com/redis/go-redis/v9"
)

// Cache stores computed summaries as JSON. Get reports false on a miss.
type Cache interface {
	Get(ctx context.Context, key string, dst any) (bool, error)
	Set(ctx context.Context, key string, value any, ttl time.Duration) error
}

type memoryEntry struct {
	payload   []byte
	expiresAt time.Time
}

type MemoryCache struct {
	entries map[string]memoryEntry
	mutex   sync.RWMutex
	now     func() time.Time
}

func NewMemoryCache() *MemoryCache {
	return &MemoryCache{
		entries: make(map[string]memoryEntry),
		now:     time.Now,
	}
}

func (c *MemoryCache) Get(_ context.Context, key string, dst any) (bool, error) {
	c.mutex.RLock()
	entry, ok := c.entries[key]
	c.mutex.RUnlock()

	if !ok {
		return false, nil
	}
	if !entry.expiresAt.IsZero() && c.now().After(entry.expiresAt) {
		c.mutex.Lock()
		delete(c.entries, key)
		c.mutex.Unlock()
		return false, nil
	}

	if err := json.Unmarshal(entry.payload, dst); err != nil {
		return false, errors.WrapInternal("failed to decode cached value", err)
	}
	return true, nil
}

// Set stores value under key. A zero ttl never expires.
func (c *MemoryCache) Set(_ context.Context, key string, value any, ttl time.Duration) error {
	payload, err := json.Marshal(value)
	if err != nil {
		return errors.WrapInternal("failed to encode cache value", err)
	}

	entry := memoryEntry{payload: payload}
	if ttl > 0 {
		entry.expiresAt = c.now().Add(ttl)
	}

	c.mutex.Lock()
	c.entries[key] = entry
	c.mutex.Unlock()
	return nil
}

// RedisCache keeps summaries in Redis so several server replicas share them.
type RedisCache struct {
	client redis.Cmdable
	prefix string
}

func NewRedisCache(client redis.Cmdable) *RedisCache {
	return &RedisCache{client: client, prefix: "airline-warehouse:"}
}

func (c *RedisCache) Get(ctx context.Context, key string, dst any) (bool, error) {
	payload, err := c.client.Get(ctx, c.prefix+key).Bytes()
	if err == redis.Nil {
		return false, nil
	}
	if err != nil {
		return false, errors.WrapExternal("failed to read from redis", err)
	}

	if err := json.Unmarshal(payload, dst); err != nil {
		return false, errors.WrapInternal("failed to decode cached value", err)
	}
	return true, nil
}

func (c *RedisCache) Set(ctx context.Context, key string, value any, ttl time.Duration) error {
	payload, err := json.Marshal(value)
	if err != nil {
		return errors.WrapInternal("failed to encode cache value", err)
	}

	if err := c.client.Set(ctx, c.prefix+key, payload, ttl).Err(); err != nil {
		return errors.WrapExternal("failed to write to redis", err)
	}
	return nil
}

// cached returns the value stored under key, computing and storing it on a
// miss. Cache failures are logged and never fail the request.
func cached[T any](ctx context.Context, s *Service, key string, compute func() T) T {
	logger := s.logger.With("operation", "cache", "key", key)

	var value T
	hit, err := s.cache.Get(ctx, key, &value)
	if err != nil {
		logger.Warn("Cache read failed, recomputing", "error", err)
	}
	if hit {
		logger.Debug("Cache hit")
		return value
	}

	value = compute()
	if err := s.cache.Set(ctx, key, value, s.ttl); err != nil {
		logger.Warn("Cache write failed", "error", err)
	}
	return value
}

var _ Cache = (*MemoryCache)(nil)
var _ Cache = (*RedisCache)(nil)
