package cache

import (
	"context"
	"errors"
	"time"
)

// Cache stores serialized values for a limited time.
// A zero ttl means the value never expires.
type Cache interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
	Delete(ctx context.Context, key string)
}

var ErrNotFound = errors.New("cache: key not found")
