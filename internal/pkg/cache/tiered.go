package cache

import (
	"context"
	"errors"
	"time"

	"github.com/mtmgroup/dashboards-ui/logger"
	"go.uber.org/zap"
)

// tiered reads through the in-memory cache into redis. Redis failures are
// logged and degrade to the in-memory tier only.
type tiered struct {
	local  *inmemoryCache
	shared *redisCache
}

func (c *tiered) Get(ctx context.Context, key string) ([]byte, error) {
	if val, err := c.local.Get(ctx, key); err == nil {
		return val, nil
	}

	val, ttl, err := c.shared.getWithTTL(ctx, key)
	if err != nil {
		if !errors.Is(err, ErrNotFound) {
			logger.Error("redis cache get failed", zap.String("key", key), zap.Error(err))
		}
		return nil, ErrNotFound
	}

	if err := c.local.Set(ctx, key, val, ttl); err != nil {
		logger.Debug("redis value not promoted to inmemory cache", zap.String("key", key), zap.Error(err))
	}
	return val, nil
}

func (c *tiered) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	if err := c.shared.Set(ctx, key, value, ttl); err != nil {
		logger.Error("redis cache set failed", zap.String("key", key), zap.Error(err))
	}
	return c.local.Set(ctx, key, value, ttl)
}

func (c *tiered) Delete(ctx context.Context, key string) {
	c.shared.Delete(ctx, key)
	c.local.Delete(ctx, key)
}
