package currency

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
)

// ErrCacheMiss is returned when the cache holds no currency list
var ErrCacheMiss = errors.New("currency cache miss")

// DefaultCacheTTL matches how long clients keep the directory before refetching
const DefaultCacheTTL = 5 * time.Minute

const cacheKey = "currency:directory"

// Cache stores the full currency list
type Cache interface {
	Get(ctx context.Context) ([]*Currency, error)
	Set(ctx context.Context, currencies []*Currency) error
	Invalidate(ctx context.Context) error
}

// RedisCache keeps the currency list as one JSON document in Redis
type RedisCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedisCache creates a Redis-backed cache. A non-positive ttl uses DefaultCacheTTL.
func NewRedisCache(client *redis.Client, ttl time.Duration) *RedisCache {
	if ttl <= 0 {
		ttl = DefaultCacheTTL
	}
	return &RedisCache{client: client, ttl: ttl}
}

// Get returns the cached list or ErrCacheMiss
func (c *RedisCache) Get(ctx context.Context) ([]*Currency, error) {
	data, err := c.client.Get(ctx, cacheKey).Bytes()
	if err == redis.Nil {
		return nil, ErrCacheMiss
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read currency cache: %w", err)
	}

	var currencies []*Currency
	if err := json.Unmarshal(data, &currencies); err != nil {
		return nil, fmt.Errorf("failed to decode currency cache: %w", err)
	}
	return currencies, nil
}

// Set replaces the cached list
func (c *RedisCache) Set(ctx context.Context, currencies []*Currency) error {
	data, err := json.Marshal(currencies)
	if err != nil {
		return fmt.Errorf("failed to encode currency cache: %w", err)
	}
	if err := c.client.Set(ctx, cacheKey, data, c.ttl).Err(); err != nil {
		return fmt.Errorf("failed to write currency cache: %w", err)
	}
	return nil
}

// Invalidate drops the cached list
func (c *RedisCache) Invalidate(ctx context.Context) error {
	if err := c.client.Del(ctx, cacheKey).Err(); err != nil {
		return fmt.Errorf("failed to invalidate currency cache: %w", err)
	}
	return nil
}

// NopCache never holds anything; used when Redis is not configured
type NopCache struct{}

func (NopCache) Get(context.Context) ([]*Currency, error) { return nil, ErrCacheMiss }
func (NopCache) Set(context.Context, []*Currency) error   { return nil }
func (NopCache) Invalidate(context.Context) error         { return nil }
