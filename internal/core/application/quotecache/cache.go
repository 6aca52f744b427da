package quotecache

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"freight/internal/core/domain/model/kernel"
	"freight/internal/core/domain/model/quote"
	"freight/internal/core/ports"
	"freight/internal/metrics"
	"freight/internal/pkg/sl"
)

// DefaultTTL is used when Put is called without a positive ttl.
const DefaultTTL = 60 * time.Minute

const keyPrefix = "quotes:"

type entry struct {
	CarrierID   kernel.UUID      `json:"carrier_id"`
	Fingerprint string           `json:"fingerprint"`
	ExpiresAt   time.Time        `json:"expires_at"`
	Quotes      []quote.RawQuote `json:"quotes"`
}

// Cache stores carrier quote sets in a ports.CacheBackend keyed by
// (carrier, fingerprint). Backend failures are logged and behave as misses.
type Cache struct {
	backend ports.CacheBackend
	ttl     time.Duration
	logger  *slog.Logger
	now     func() time.Time
}

// New creates a Cache. A non-positive ttl falls back to DefaultTTL.
func New(backend ports.CacheBackend, ttl time.Duration, logger *slog.Logger) *Cache {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &Cache{
		backend: backend,
		ttl:     ttl,
		logger:  logger.With("component", "quote_cache"),
		now:     time.Now,
	}
}

// TTL returns the default time to live of entries.
func (c *Cache) TTL() time.Duration {
	return c.ttl
}

// Get returns the non-expired quote set stored for carrierID and fingerprint.
func (c *Cache) Get(ctx context.Context, carrierID kernel.UUID, fingerprint string) ([]quote.RawQuote, bool) {
	data, ok, err := c.backend.Get(ctx, Key(carrierID, fingerprint))
	if err != nil {
		metrics.CacheRequestsTotal.WithLabelValues("error").Inc()
		c.logger.WarnContext(ctx, "quote cache unavailable, treating as miss",
			"carrier_id", carrierID.String(), sl.Err(err), sl.Traced(ctx))
		return nil, false
	}
	if !ok {
		metrics.CacheRequestsTotal.WithLabelValues("miss").Inc()
		return nil, false
	}

	var e entry
	if err = json.Unmarshal(data, &e); err != nil {
		metrics.CacheRequestsTotal.WithLabelValues("error").Inc()
		c.logger.WarnContext(ctx, "dropping undecodable quote cache entry",
			"carrier_id", carrierID.String(), sl.Err(err))
		_ = c.backend.Delete(ctx, Key(carrierID, fingerprint))
		return nil, false
	}
	if !e.ExpiresAt.After(c.now()) {
		metrics.CacheRequestsTotal.WithLabelValues("miss").Inc()
		return nil, false
	}

	metrics.CacheRequestsTotal.WithLabelValues("hit").Inc()
	return e.Quotes, true
}

// Put stores quotes for carrierID and fingerprint, replacing any previous set.
func (c *Cache) Put(ctx context.Context, carrierID kernel.UUID, fingerprint string, quotes []quote.RawQuote, ttl time.Duration) {
	if ttl <= 0 {
		ttl = c.ttl
	}
	data, err := json.Marshal(entry{
		CarrierID:   carrierID,
		Fingerprint: fingerprint,
		ExpiresAt:   c.now().Add(ttl).UTC(),
		Quotes:      quotes,
	})
	if err != nil {
		c.logger.ErrorContext(ctx, "failed to encode quote cache entry", "carrier_id", carrierID.String(), sl.Err(err))
		return
	}
	if err = c.backend.Set(ctx, Key(carrierID, fingerprint), data, ttl); err != nil {
		c.logger.WarnContext(ctx, "failed to store quote cache entry",
			"carrier_id", carrierID.String(), sl.Err(err), sl.Traced(ctx))
	}
}

// Sweep removes expired entries when the backend supports it.
func (c *Cache) Sweep(ctx context.Context) (int64, error) {
	sweeper, ok := c.backend.(ports.CacheSweeper)
	if !ok {
		return 0, nil
	}
	removed, err := sweeper.Sweep(ctx)
	if err != nil {
		return 0, err
	}
	metrics.CacheEvictedTotal.Add(float64(removed))
	return removed, nil
}

// Key builds the backend key of a carrier quote set.
func Key(carrierID kernel.UUID, fingerprint string) string {
	return keyPrefix + carrierID.String() + ":" + fingerprint
}
