package cache

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/oggyb/matching-service/internal/config"
)

// CounterTTL is refreshed on every read and write of a counter.
const CounterTTL = time.Hour

type RedisCache struct {
	Client *redis.Client
}

// NewRedisCache initializes Redis client from config.
// Only Addr is mandatory, Password/DB are optional.
func NewRedisCache(cfg *config.Config) *RedisCache {
	opts := &redis.Options{
		Addr: cfg.Redis.Addr,
	}
	if cfg.Redis.Password != "" {
		opts.Password = cfg.Redis.Password
	}
	if cfg.Redis.DB != 0 {
		opts.DB = cfg.Redis.DB
	}
	return &RedisCache{Client: redis.NewClient(opts)}
}

func (c *RedisCache) Ping(ctx context.Context) error {
	return c.Client.Ping(ctx).Err()
}

func (c *RedisCache) Close() error {
	return c.Client.Close()
}

// KeyForVisitorCount generates Redis key for a user's visitor count.
func (c *RedisCache) KeyForVisitorCount(userID string) string {
	return fmt.Sprintf("visits:count:%s", userID)
}

func (c *RedisCache) SetVisitorCount(ctx context.Context, userID string, count int64) error {
	return c.Client.Set(ctx, c.KeyForVisitorCount(userID), count, CounterTTL).Err()
}

// GetVisitorCount returns the cached count; ok is false on a cache miss.
func (c *RedisCache) GetVisitorCount(ctx context.Context, userID string) (count int64, ok bool, err error) {
	key := c.KeyForVisitorCount(userID)
	val, err := c.Client.Get(ctx, key).Result()
	if errors.Is(err, redis.Nil) {
		return 0, false, nil
	} else if err != nil {
		return 0, false, err
	}

	n, err := strconv.ParseInt(val, 10, 64)
	if err != nil {
		// corrupt entry, treat as miss
		_ = c.Client.Del(ctx, key).Err()
		return 0, false, nil
	}
	// refresh TTL on access
	_ = c.Client.Expire(ctx, key, CounterTTL).Err()
	return n, true, nil
}

// InvalidateVisitorCount drops the cached count so the next read recounts.
func (c *RedisCache) InvalidateVisitorCount(ctx context.Context, userID string) error {
	return c.Client.Del(ctx, c.KeyForVisitorCount(userID)).Err()
}
