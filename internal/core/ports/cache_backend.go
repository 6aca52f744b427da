package ports

import (
	"context"
	"time"
)

// CacheBackend is any key/value store with TTL support.
// Implementations must be safe for concurrent use; concurrent writes to the
// same key resolve as last write wins.
type CacheBackend interface {
	// Get returns the value stored under key. ok is false on a miss or
	// when the entry expired.
	Get(ctx context.Context, key string) (value []byte, ok bool, err error)

	// Set stores value under key for ttl, replacing any previous value.
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error

	// Delete removes key. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error
}

// CacheSweeper is implemented by backends that need expired entries removed
// explicitly.
type CacheSweeper interface {
	// Sweep deletes expired entries and returns how many were removed.
	Sweep(ctx context.Context) (int64, error)
}
