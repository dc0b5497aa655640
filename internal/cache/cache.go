package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/go-redis/redis/v8"
)

// Cache stores JSON snapshots of catalog reads. Bump invalidates every
// entry at once by moving to a new key version.
type Cache interface {
	Get(ctx context.Context, key string, dst any) (bool, error)
	Set(ctx context.Context, key string, value any) error
	Bump(ctx context.Context) error
	Ping(ctx context.Context) error
}

type RedisCache struct {
	client *redis.Client
	prefix string
	ttl    time.Duration
}

func NewRedis(url, prefix string, ttl time.Duration) (*RedisCache, error) {
	opts, err := redis.ParseURL(url)
	if err != nil {
		return nil, fmt.Errorf("parse redis url: %w", err)
	}
	return NewRedisWithClient(redis.NewClient(opts), prefix, ttl), nil
}

func NewRedisWithClient(client *redis.Client, prefix string, ttl time.Duration) *RedisCache {
	return &RedisCache{client: client, prefix: prefix, ttl: ttl}
}

func (c *RedisCache) versionKey() string {
	return c.prefix + ":version"
}

func (c *RedisCache) version(ctx context.Context) (int64, error) {
	v, err := c.client.Get(ctx, c.versionKey()).Result()
	if errors.Is(err, redis.Nil) {
		return 0, nil
	}
	if err != nil {
		return 0, err
	}
	return strconv.ParseInt(v, 10, 64)
}

func dataKey(prefix string, version int64, key string) string {
	return fmt.Sprintf("%s:v%d:%s", prefix, version, key)
}

func (c *RedisCache) Get(ctx context.Context, key string, dst any) (bool, error) {
	ver, err := c.version(ctx)
	if err != nil {
		return false, err
	}

	raw, err := c.client.Get(ctx, dataKey(c.prefix, ver, key)).Bytes()
	if errors.Is(err, redis.Nil) {
		return false, nil
	}
	if err != nil {
		return false, err
	}

	if err := json.Unmarshal(raw, dst); err != nil {
		return false, fmt.Errorf("decode cached %s: %w", key, err)
	}
	return true, nil
}

func (c *RedisCache) Set(ctx context.Context, key string, value any) error {
	ver, err := c.version(ctx)
	if err != nil {
		return err
	}

	raw, err := json.Marshal(value)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, dataKey(c.prefix, ver, key), raw, c.ttl).Err()
}

// Bump moves readers to a fresh version; old entries expire by TTL.
func (c *RedisCache) Bump(ctx context.Context) error {
	return c.client.Incr(ctx, c.versionKey()).Err()
}

func (c *RedisCache) Ping(ctx context.Context) error {
	return c.client.Ping(ctx).Err()
}

func (c *RedisCache) Close() error {
	return c.client.Close()
}

// Nop always misses.
type Nop struct{}

func (Nop) Get(context.Context, string, any) (bool, error) { return false, nil }
func (Nop) Set(context.Context, string, any) error         { return nil }
func (Nop) Bump(context.Context) error                     { return nil }
func (Nop) Ping(context.Context) error                     { return nil }

var (
	_ Cache = (*RedisCache)(nil)
	_ Cache = Nop{}
)
