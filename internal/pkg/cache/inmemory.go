package cache

import (
	"context"
	"errors"
	"time"

	"github.com/dgraph-io/ristretto"
	"github.com/mtmgroup/dashboards-ui/internal/app/config"
	"github.com/mtmgroup/dashboards-ui/metric"
)

const itemCost = 1

var errRejected = errors.New("cache: item rejected")

type inmemoryCache struct {
	store *ristretto.Cache[string, []byte]
}

func newInmemoryCache(cfg config.InmemoryCache) (*inmemoryCache, error) {
	store, err := ristretto.NewCache(&ristretto.Config[string, []byte]{
		NumCounters: cfg.NumCounters,
		MaxCost:     cfg.MaxCost,
		BufferItems: cfg.BufferItems,
	})
	if err != nil {
		return nil, err
	}
	return &inmemoryCache{store: store}, nil
}

func (c *inmemoryCache) Get(_ context.Context, key string) ([]byte, error) {
	val, ok := c.store.Get(key)
	if !ok {
		metric.CacheInmemoryMisses.Inc()
		return nil, ErrNotFound
	}
	metric.CacheInmemoryHits.Inc()
	return val, nil
}

// Set waits for the write buffers so the value is visible to the next Get.
func (c *inmemoryCache) Set(_ context.Context, key string, value []byte, ttl time.Duration) error {
	if !c.store.SetWithTTL(key, value, itemCost, ttl) {
		return errRejected
	}
	c.store.Wait()
	return nil
}

func (c *inmemoryCache) ttl(key string) (time.Duration, bool) {
	return c.store.GetTTL(key)
}

func (c *inmemoryCache) Delete(_ context.Context, key string) {
	c.store.Del(key)
}
