package service

import (
	"context"

	"github.com/mtmgroup/dashboards-ui/internal/app/types"
	"github.com/mtmgroup/dashboards-ui/logger"
	"go.uber.org/zap"
)

const optionsCacheKey = "options"

// GetOptions returns the suggestion lists, from the cache when possible.
func (s *service) GetOptions(ctx context.Context) (types.OptionSet, error) {
	if s.cache != nil {
		if raw, err := s.cache.Get(ctx, optionsCacheKey); err == nil {
			var opts types.OptionSet
			decodeErr := json.Unmarshal(raw, &opts)
			if decodeErr == nil {
				return opts, nil
			}
			logger.Warn("drop malformed cached options", zap.Error(decodeErr))
			s.cache.Delete(ctx, optionsCacheKey)
		}
	}

	opts, err := s.client.GetOptions(ctx)
	if err != nil {
		return types.OptionSet{}, err
	}

	if s.cache != nil {
		raw, err := json.Marshal(opts)
		if err == nil {
			err = s.cache.Set(ctx, optionsCacheKey, raw, s.optionsTTL)
		}
		if err != nil {
			logger.Warn("failed to cache options", zap.Error(err))
		}
	}
	return opts, nil
}

func (s *service) invalidateOptions(ctx context.Context) {
	if s.cache != nil {
		s.cache.Delete(ctx, optionsCacheKey)
	}
}
