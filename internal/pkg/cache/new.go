package cache

import (
	"context"
	"fmt"

	"github.com/mtmgroup/dashboards-ui/internal/app/config"
	"github.com/mtmgroup/dashboards-ui/internal/pkg/redisclient"
	"github.com/mtmgroup/dashboards-ui/logger"
	"go.uber.org/zap"
)

// New returns an in-memory cache, backed by redis when it is configured
// and reachable.
func New(ctx context.Context, cfg config.Cache) (Cache, error) {
	local, err := newInmemoryCache(cfg.Inmemory)
	if err != nil {
		return nil, fmt.Errorf("init inmemory cache: %w", err)
	}

	if cfg.Redis == nil {
		return local, nil
	}

	client, err := redisclient.New(ctx, cfg.Redis)
	if err != nil {
		logger.Warn("redis is unavailable, using inmemory cache only", zap.Error(err))
		return local, nil
	}

	return &tiered{
		local:  local,
		shared: &redisCache{client: client},
	}, nil
}
