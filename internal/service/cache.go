package service

import (
	"context"
	"time"

	"yourlog/internal/cache"
)

// Cache is the subset of the redis client the services depend on.
type Cache interface {
	GetJSON(ctx context.Context, key string, dest interface{}) bool
	SetJSON(ctx context.Context, key string, value interface{}, ttl time.Duration)
	Delete(ctx context.Context, key string)
}

// Ensure the redis-backed client satisfies Cache
var _ Cache = (*cache.Client)(nil)
