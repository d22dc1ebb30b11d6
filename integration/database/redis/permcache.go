package redis

import (
	"context"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/minhhieuit/PermissionAccessControl/core/permission"
)

// defaultPermissionKeyPrefix namespaces permission cache entries.
const defaultPermissionKeyPrefix = "perm:"

// PermissionCache stores packed permission strings in Redis, keyed by user
// identifier. It satisfies permission.Cache.
type PermissionCache struct {
	client *redis.Client
	prefix string
}

// PermissionCacheOption configures the cache.
type PermissionCacheOption func(*PermissionCache)

// WithKeyPrefix overrides the cache key prefix.
func WithKeyPrefix(prefix string) PermissionCacheOption {
	return func(c *PermissionCache) {
		if prefix != "" {
			c.prefix = prefix
		}
	}
}

// NewPermissionCache creates a permission cache over the given client.
func NewPermissionCache(client *redis.Client, opts ...PermissionCacheOption) *PermissionCache {
	if client == nil {
		panic("redis: client is required")
	}

	c := &PermissionCache{
		client: client,
		prefix: defaultPermissionKeyPrefix,
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

// Get returns the cached packed permissions for the key, or
// permission.ErrCacheMiss when no entry exists.
func (c *PermissionCache) Get(ctx context.Context, key string) (string, error) {
	value, err := c.client.Get(ctx, c.prefix+key).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return "", permission.ErrCacheMiss
		}
		return "", err
	}
	return value, nil
}

// Set stores the packed permissions under the key with the given TTL.
func (c *PermissionCache) Set(ctx context.Context, key, value string, ttl time.Duration) error {
	return c.client.Set(ctx, c.prefix+key, value, ttl).Err()
}
