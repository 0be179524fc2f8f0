package cache

import (
	"context"
	"errors"
	"time"

	"github.com/mtmgroup/dashboards-ui/metric"
	"github.com/redis/go-redis/v9"
)

const redisKeyPrefix = "dashboards_ui:"

type redisCache struct {
	client redis.UniversalClient
}

func (c *redisCache) Get(ctx context.Context, key string) ([]byte, error) {
	val, err := c.client.Get(ctx, redisKeyPrefix+key).Bytes()
	switch {
	case err == nil:
		metric.CacheRedisHits.Inc()
		return val, nil
	case errors.Is(err, redis.Nil):
		metric.CacheRedisMisses.Inc()
		return nil, ErrNotFound
	default:
		return nil, err
	}
}

// getWithTTL returns the value together with its remaining lifetime.
func (c *redisCache) getWithTTL(ctx context.Context, key string) ([]byte, time.Duration, error) {
	var (
		getCmd *redis.StringCmd
		ttlCmd *redis.DurationCmd
	)
	_, err := c.client.Pipelined(ctx, func(p redis.Pipeliner) error {
		getCmd = p.Get(ctx, redisKeyPrefix+key)
		ttlCmd = p.PTTL(ctx, redisKeyPrefix+key)
		return nil
	})
	if err != nil && !errors.Is(err, redis.Nil) {
		return nil, 0, err
	}

	val, err := getCmd.Bytes()
	if errors.Is(err, redis.Nil) {
		metric.CacheRedisMisses.Inc()
		return nil, 0, ErrNotFound
	}
	if err != nil {
		return nil, 0, err
	}
	metric.CacheRedisHits.Inc()

	ttl := ttlCmd.Val()
	if ttl < 0 {
		ttl = 0
	}
	return val, ttl, nil
}

func (c *redisCache) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	return c.client.Set(ctx, redisKeyPrefix+key, value, ttl).Err()
}

func (c *redisCache) Delete(ctx context.Context, key string) {
	c.client.Del(ctx, redisKeyPrefix+key)
}
