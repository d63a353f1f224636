package service

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"
)

// RedisViewCache caches denormalized list views between writes. Failures are
// treated as misses; the cache is never load-bearing.
type RedisViewCache struct {
	rdb *redis.Client
	ttl time.Duration
}

func NewRedisViewCache(rdb *redis.Client) *RedisViewCache {
	return &RedisViewCache{rdb: rdb, ttl: 5 * time.Minute}
}

func (c *RedisViewCache) Get(ctx context.Context, key string, dst any) bool {
	data, err := c.rdb.Get(ctx, key).Bytes()
	if err != nil {
		return false
	}
	return json.Unmarshal(data, dst) == nil
}

func (c *RedisViewCache) Set(ctx context.Context, key string, v any) {
	data, err := json.Marshal(v)
	if err != nil {
		return
	}
	c.rdb.Set(ctx, key, data, c.ttl)
}

func (c *RedisViewCache) Invalidate(ctx context.Context, key string) {
	c.rdb.Del(ctx, key)
}

// NoopViewCache is used when no redis address is configured.
type NoopViewCache struct{}

func (NoopViewCache) Get(ctx context.Context, key string, dst any) bool { return false }
func (NoopViewCache) Set(ctx context.Context, key string, v any)        {}
func (NoopViewCache) Invalidate(ctx context.Context, key string)        {}
