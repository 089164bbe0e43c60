package cache

import (
	"context"
	"time"
)

// Cache is the contract for the cache layer so the implementation can be
// swapped (Redis in production, in-memory in tests).
type Cache interface {
	// Get loads the value at key into dest. found=false means a cache
	// miss; dest is left untouched.
	Get(ctx context.Context, key string, dest interface{}) (bool, error)

	// Set stores a value with a TTL.
	Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error

	// Ping verifies the connection.
	Ping(ctx context.Context) error

	// Counter operations for per-client request accounting.
	Increment(ctx context.Context, key string) (int64, error)
	Expire(ctx context.Context, key string, ttl time.Duration) error
}
