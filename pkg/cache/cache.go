package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// Cache TTLs
const (
	TTLStats   = 1 * time.Minute // dashboard counts, cheap to refresh
	TTLDefault = 5 * time.Minute
)

// Cache key prefixes
const (
	PrefixStats = "dashboard:stats:"
)

// Service is the Redis-backed JSON cache. All operations are no-ops
// when Redis is unavailable so the app degrades gracefully without it.
type Service interface {
	Get(ctx context.Context, key string, dest interface{}) error
	Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error
	Delete(ctx context.Context, keys ...string) error

	GetStats(ctx context.Context, userID string, dest interface{}) error
	SetStats(ctx context.Context, userID string, data interface{}) error
	InvalidateStats(ctx context.Context, userID string) error

	IsAvailable() bool
	Ping(ctx context.Context) error
}

type redisCache struct {
	client *redis.Client
}

// NewService creates a cache service over the given client.
func NewService(client *redis.Client) Service {
	return &redisCache{client: client}
}

func (c *redisCache) IsAvailable() bool {
	return c.client != nil
}

func (c *redisCache) Ping(ctx context.Context) error {
	if c.client == nil {
		return fmt.Errorf("redis client is nil")
	}
	return c.client.Ping(ctx).Err()
}

func (c *redisCache) Get(ctx context.Context, key string, dest interface{}) error {
	if c.client == nil {
		return fmt.Errorf("redis not available")
	}

	data, err := c.client.Get(ctx, key).Bytes()
	if err != nil {
		return err
	}

	return json.Unmarshal(data, dest)
}

func (c *redisCache) Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error {
	if c.client == nil {
		return nil
	}

	data, err := json.Marshal(value)
	if err != nil {
		return err
	}

	return c.client.Set(ctx, key, data, ttl).Err()
}

func (c *redisCache) Delete(ctx context.Context, keys ...string) error {
	if c.client == nil {
		return nil
	}
	return c.client.Del(ctx, keys...).Err()
}

func (c *redisCache) statsKey(userID string) string {
	return PrefixStats + userID
}

func (c *redisCache) GetStats(ctx context.Context, userID string, dest interface{}) error {
	return c.Get(ctx, c.statsKey(userID), dest)
}

func (c *redisCache) SetStats(ctx context.Context, userID string, data interface{}) error {
	return c.Set(ctx, c.statsKey(userID), data, TTLStats)
}

func (c *redisCache) InvalidateStats(ctx context.Context, userID string) error {
	return c.Delete(ctx, c.statsKey(userID))
}
