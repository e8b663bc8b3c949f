package cache

import (
	"context"
	"fmt"
	"time"

	apperrors "evently/pkg/app_errors"

	"github.com/redis/go-redis/v9"
)

// PageCache stores rendered output for logical page paths so writes can
// invalidate stale renderings.
type PageCache interface {
	Get(ctx context.Context, path string) (string, error)
	Set(ctx context.Context, path string, rendered string, ttl time.Duration) error
	// Invalidate drops the cached rendering for path. Invalidating a path
	// that was never cached is a no-op.
	Invalidate(ctx context.Context, path string) error
}

type RedisPageCacheImpl struct {
	client *redis.Client
}

func NewRedisPageCache(client *redis.Client) PageCache {
	return &RedisPageCacheImpl{
		client: client,
	}
}

func (c *RedisPageCacheImpl) getPageKey(path string) string {
	return fmt.Sprintf("page:%s", path)
}

func (c *RedisPageCacheImpl) Get(ctx context.Context, path string) (string, error) {
	val, err := c.client.Get(ctx, c.getPageKey(path)).Result()
	if err == redis.Nil {
		return "", apperrors.ErrPageNotCached
	}
	if err != nil {
		return "", err
	}
	return val, nil
}

func (c *RedisPageCacheImpl) Set(ctx context.Context, path string, rendered string, ttl time.Duration) error {
	return c.client.Set(ctx, c.getPageKey(path), rendered, ttl).Err()
}

func (c *RedisPageCacheImpl) Invalidate(ctx context.Context, path string) error {
	return c.client.Del(ctx, c.getPageKey(path)).Err()
}
