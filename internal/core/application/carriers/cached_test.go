package carriers_test

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"freight/internal/core/application/carriers"
	"freight/internal/core/application/quotecache"
	"freight/internal/core/domain/model/carrier"
	"freight/internal/core/domain/model/kernel"
	"freight/internal/core/domain/model/quote"
	"freight/internal/core/domain/model/shipment"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type memoryBackend struct {
	mu      sync.Mutex
	entries map[string][]byte
}

func (b *memoryBackend) Get(_ context.Context, key string) ([]byte, bool, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	v, ok := b.entries[key]
	return v, ok, nil
}

func (b *memoryBackend) Set(_ context.Context, key string, value []byte, _ time.Duration) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.entries[key] = value
	return nil
}

func (b *memoryBackend) Delete(_ context.Context, key string) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	delete(b.entries, key)
	return nil
}

type StrategyMock struct{ mock.Mock }

func (m *StrategyMock) GetQuotes(ctx context.Context, s *shipment.Shipment) ([]quote.RawQuote, error) {
	args := m.Called(ctx, s)
	v, _ := args.Get(0).([]quote.RawQuote)
	return v, args.Error(1)
}

func (m *StrategyMock) CreateOrder(ctx context.Context, req carrier.OrderRequest) (carrier.OrderResult, error) {
	args := m.Called(ctx, req)
	return args.Get(0).(carrier.OrderResult), args.Error(1)
}

func (m *StrategyMock) GetTrackingStatus(ctx context.Context, n string) (carrier.TrackingStatus, error) {
	args := m.Called(ctx, n)
	return args.Get(0).(carrier.TrackingStatus), args.Error(1)
}

func (m *StrategyMock) CancelOrder(ctx context.Context, n string) (bool, error) {
	args := m.Called(ctx, n)
	return args.Bool(0), args.Error(1)
}

func (m *StrategyMock) GetShippingLabel(ctx context.Context, req carrier.OrderRequest) (string, error) {
	args := m.Called(ctx, req)
	return args.String(0), args.Error(1)
}

func newQuoteCache() *quotecache.Cache {
	return quotecache.New(&memoryBackend{entries: map[string][]byte{}}, time.Hour, discardLogger())
}

func TestWithCache(t *testing.T) {
	t.Run("second identical request is served from cache", func(t *testing.T) {
		c := newCarrier(t, carrier.KindManual, kernel.TransportModeRoad)
		inner := new(StrategyMock)
		inner.On("GetQuotes", mock.Anything, mock.Anything).
			Return([]quote.RawQuote{{CarrierID: c.ID(), Price: dec("28.75"), TransportMode: kernel.TransportModeRoad}}, nil).
			Once()

		s := carriers.WithCache(inner, c, newQuoteCache(), time.Minute)

		first, err := s.GetQuotes(t.Context(), newShipment(t, 50, kernel.TransportModeRoad))
		require.NoError(t, err)
		second, err := s.GetQuotes(t.Context(), newShipment(t, 50, kernel.TransportModeRoad))
		require.NoError(t, err)

		require.Len(t, second, 1)
		assert.True(t, first[0].Price.Equal(second[0].Price))
		inner.AssertNumberOfCalls(t, "GetQuotes", 1)
	})

	t.Run("different weight misses", func(t *testing.T) {
		c := newCarrier(t, carrier.KindManual, kernel.TransportModeRoad)
		inner := new(StrategyMock)
		inner.On("GetQuotes", mock.Anything, mock.Anything).
			Return([]quote.RawQuote{{CarrierID: c.ID(), Price: dec("1")}}, nil)

		s := carriers.WithCache(inner, c, newQuoteCache(), time.Minute)

		_, err := s.GetQuotes(t.Context(), newShipment(t, 50, kernel.TransportModeRoad))
		require.NoError(t, err)
		_, err = s.GetQuotes(t.Context(), newShipment(t, 51, kernel.TransportModeRoad))
		require.NoError(t, err)

		inner.AssertNumberOfCalls(t, "GetQuotes", 2)
	})

	t.Run("empty results and errors are not cached", func(t *testing.T) {
		c := newCarrier(t, carrier.KindManual, kernel.TransportModeRoad)
		inner := new(StrategyMock)
		inner.On("GetQuotes", mock.Anything, mock.Anything).Return([]quote.RawQuote{}, nil).Once()
		inner.On("GetQuotes", mock.Anything, mock.Anything).Return(nil, errors.New("boom")).Once()
		inner.On("GetQuotes", mock.Anything, mock.Anything).Return([]quote.RawQuote{}, nil).Once()

		s := carriers.WithCache(inner, c, newQuoteCache(), time.Minute)
		sh := newShipment(t, 50, kernel.TransportModeRoad)

		_, err := s.GetQuotes(t.Context(), sh)
		require.NoError(t, err)
		_, err = s.GetQuotes(t.Context(), sh)
		require.Error(t, err)
		_, err = s.GetQuotes(t.Context(), sh)
		require.NoError(t, err)

		inner.AssertNumberOfCalls(t, "GetQuotes", 3)
	})

	t.Run("manual miss loads pricing rules once", func(t *testing.T) {
		f := newManualFixture(t, kernel.TransportModeRoad)
		s := carriers.WithCache(f.strategy(), f.carrier, newQuoteCache(), time.Minute)

		first, err := s.GetQuotes(t.Context(), newShipment(t, 50, kernel.TransportModeRoad))
		require.NoError(t, err)
		require.Len(t, first, 1)
		f.store.AssertNumberOfCalls(t, "PricingRules", 1)
		f.store.AssertNumberOfCalls(t, "Zones", 1)

		second, err := s.GetQuotes(t.Context(), newShipment(t, 50, kernel.TransportModeRoad))
		require.NoError(t, err)
		require.Len(t, second, 1)
		assert.True(t, first[0].Price.Equal(second[0].Price))
		f.store.AssertNumberOfCalls(t, "PricingRules", 2)
		f.store.AssertNumberOfCalls(t, "Zones", 1)
	})

	t.Run("nil cache returns inner", func(t *testing.T) {
		inner := new(StrategyMock)
		assert.Same(t, inner, carriers.WithCache(inner, newCarrier(t, carrier.KindManual), nil, time.Minute))
	})

	t.Run("other operations pass through", func(t *testing.T) {
		c := newCarrier(t, carrier.KindManual)
		inner := new(StrategyMock)
		inner.On("CancelOrder", mock.Anything, "ORD-1").Return(true, nil)

		ok, err := carriers.WithCache(inner, c, newQuoteCache(), time.Minute).CancelOrder(t.Context(), "ORD-1")

		require.NoError(t, err)
		assert.True(t, ok)
	})
}
