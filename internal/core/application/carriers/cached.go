package carriers

import (
	"context"
	"time"

	"freight/internal/core/application/quotecache"
	"freight/internal/core/domain/model/carrier"
	"freight/internal/core/domain/model/pricing"
	"freight/internal/core/domain/model/quote"
	"freight/internal/core/domain/model/shipment"
	"freight/internal/core/domain/services"
)

// carrierBound is implemented by strategies that serve a single carrier.
type carrierBound interface {
	Carrier() *carrier.Carrier
}

type cachedStrategy struct {
	Strategy
	carrier *carrier.Carrier
	cache   *quotecache.Cache
	ttl     time.Duration
}

// WithCache memoizes the non-empty quote sets of inner per request
// fingerprint. Errors of inner are returned as is and never cached.
func WithCache(inner Strategy, c *carrier.Carrier, cache *quotecache.Cache, ttl time.Duration) Strategy {
	if cache == nil {
		return inner
	}
	return &cachedStrategy{Strategy: inner, carrier: c, cache: cache, ttl: ttl}
}

func (s *cachedStrategy) Carrier() *carrier.Carrier {
	return s.carrier
}

func (s *cachedStrategy) BillableWeight(ctx context.Context, sh *shipment.Shipment) (float64, error) {
	return billableWeight(ctx, s.Strategy, sh)
}

func (s *cachedStrategy) GetQuotes(ctx context.Context, sh *shipment.Shipment) ([]quote.RawQuote, error) {
	if manual, ok := s.Strategy.(*ManualStrategy); ok {
		return s.manualQuotes(ctx, manual, sh)
	}

	weight, err := billableWeight(ctx, s.Strategy, sh)
	if err != nil {
		return s.Strategy.GetQuotes(ctx, sh)
	}

	fingerprint := quotecache.Fingerprint(quotecache.ParamsFor(sh, weight))
	if quotes, ok := s.cache.Get(ctx, s.carrier.ID(), fingerprint); ok {
		return quotes, nil
	}

	quotes, err := s.Strategy.GetQuotes(ctx, sh)
	if err != nil {
		return nil, err
	}
	if len(quotes) > 0 {
		s.cache.Put(ctx, s.carrier.ID(), fingerprint, quotes, s.ttl)
	}
	return quotes, nil
}

// manualQuotes loads the pricing rule once for both the fingerprint and the
// quotes of a miss.
func (s *cachedStrategy) manualQuotes(ctx context.Context, m *ManualStrategy, sh *shipment.Shipment) ([]quote.RawQuote, error) {
	if !m.supportsRoute(sh) {
		return []quote.RawQuote{}, nil
	}
	r, err := m.resolve(ctx, sh)
	if err != nil {
		return nil, err
	}

	fingerprint := quotecache.Fingerprint(quotecache.ParamsFor(sh, r.billableWeight))
	if quotes, ok := s.cache.Get(ctx, s.carrier.ID(), fingerprint); ok {
		return quotes, nil
	}

	quotes, err := m.quoteResolved(ctx, r)
	if err != nil {
		return nil, err
	}
	if len(quotes) > 0 {
		s.cache.Put(ctx, s.carrier.ID(), fingerprint, quotes, s.ttl)
	}
	return quotes, nil
}

func billableWeight(ctx context.Context, s Strategy, sh *shipment.Shipment) (float64, error) {
	if weigher, ok := s.(BillableWeigher); ok {
		return weigher.BillableWeight(ctx, sh)
	}
	return services.NewBillableWeightCalculator().Calculate(sh, pricing.DefaultDimFactor), nil
}
