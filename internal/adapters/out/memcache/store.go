// Package memcache is an in-process cache backend for single instance deployments.
package memcache

import (
	"context"
	"slices"
	"sync"
	"time"

	"freight/internal/metrics"
)

type entry struct {
	value     []byte
	expiresAt time.Time
}

// Store implements ports.CacheBackend and ports.CacheSweeper in memory.
// Expired entries are invisible to Get and removed by Sweep.
type Store struct {
	mu      sync.RWMutex
	entries map[string]entry
	now     func() time.Time
}

// NewStore creates an empty in-memory cache.
func NewStore() *Store {
	return &Store{
		entries: make(map[string]entry),
		now:     time.Now,
	}
}

// Get returns a copy of the value stored under key.
func (s *Store) Get(_ context.Context, key string) ([]byte, bool, error) {
	s.mu.RLock()
	e, ok := s.entries[key]
	s.mu.RUnlock()

	if !ok || !e.expiresAt.After(s.now()) {
		return nil, false, nil
	}
	return slices.Clone(e.value), true, nil
}

// Set stores value under key, replacing any previous value.
func (s *Store) Set(_ context.Context, key string, value []byte, ttl time.Duration) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.entries[key] = entry{value: slices.Clone(value), expiresAt: s.now().Add(ttl)}
	metrics.CacheItems.Set(float64(len(s.entries)))
	return nil
}

// Delete removes key.
func (s *Store) Delete(_ context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.entries, key)
	metrics.CacheItems.Set(float64(len(s.entries)))
	return nil
}

// Sweep drops expired entries and reports how many were removed.
func (s *Store) Sweep(ctx context.Context) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	var removed int64
	for key, e := range s.entries {
		if err := ctx.Err(); err != nil {
			return removed, err
		}
		if !e.expiresAt.After(now) {
			delete(s.entries, key)
			removed++
		}
	}
	metrics.CacheItems.Set(float64(len(s.entries)))
	return removed, nil
}

// Len returns the number of stored entries, expired ones included.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.entries)
}
