package permission

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"time"

	"golang.org/x/sync/singleflight"

	"github.com/minhhieuit/PermissionAccessControl/core/claims"
	"github.com/minhhieuit/PermissionAccessControl/core/enrich"
	"github.com/minhhieuit/PermissionAccessControl/core/logger"
)

// ErrCacheMiss is returned by Cache implementations when no entry exists for
// the key.
var ErrCacheMiss = errors.New("permission cache miss")

// Cache stores packed permission strings keyed by user identifier.
// Implementations must be safe for concurrent use.
type Cache interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string, ttl time.Duration) error
}

// Cached wraps a permission calculator with a TTL cache. Concurrent
// computations for the same user are coalesced via singleflight, so a burst
// of first requests from one session triggers at most one role-store read.
//
// Cache write failures are logged and tolerated: the computed value is still
// returned, the next pass just recomputes.
type Cached struct {
	calc   enrich.PermissionCalculator
	cache  Cache
	ttl    time.Duration
	logger *slog.Logger

	sf singleflight.Group
}

// CachedOption configures the cached calculator.
type CachedOption func(*Cached)

// WithCachedLogger sets the structured logger. Default discards output.
func WithCachedLogger(logger *slog.Logger) CachedOption {
	return func(c *Cached) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// NewCached wraps calc with the given cache and entry TTL.
func NewCached(calc enrich.PermissionCalculator, cache Cache, ttl time.Duration, opts ...CachedOption) *Cached {
	if calc == nil {
		panic("permission: calculator is required")
	}
	if cache == nil {
		panic("permission: cache is required")
	}

	c := &Cached{
		calc:   calc,
		cache:  cache,
		ttl:    ttl,
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

// CalcPermissionsForUser returns the cached packed permissions for the user
// in the claim set, computing and caching them on miss.
func (c *Cached) CalcPermissionsForUser(ctx context.Context, p claims.Principal) (string, error) {
	userID, ok := p.ClaimValue(claims.TypeNameIdentifier)
	if !ok {
		return "", enrich.ErrMissingIdentityClaim
	}

	if packed, err := c.cache.Get(ctx, userID); err == nil {
		return packed, nil
	} else if !errors.Is(err, ErrCacheMiss) {
		c.logger.LogAttrs(ctx, slog.LevelWarn, "permission cache read failed", logger.UserID(userID), logger.Error(err))
	}

	result, err, _ := c.sf.Do(userID, func() (any, error) {
		packed, err := c.calc.CalcPermissionsForUser(ctx, p)
		if err != nil {
			return "", err
		}

		if err := c.cache.Set(ctx, userID, packed, c.ttl); err != nil {
			c.logger.LogAttrs(ctx, slog.LevelWarn, "permission cache write failed", logger.UserID(userID), logger.Error(err))
		}

		return packed, nil
	})
	if err != nil {
		return "", err
	}

	return result.(string), nil
}
