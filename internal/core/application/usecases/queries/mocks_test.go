package queries_test

import (
	"context"
	"testing"
	"time"

	"freight/internal/core/application/carriers"
	"freight/internal/core/domain/model/carrier"
	"freight/internal/core/domain/model/kernel"
	"freight/internal/core/domain/model/pricing"
	"freight/internal/core/domain/model/quote"
	"freight/internal/core/domain/model/shipment"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockConfigurationStore struct{ mock.Mock }

func (m *MockConfigurationStore) ActiveCarriers(ctx context.Context) ([]*carrier.Carrier, error) {
	args := m.Called(ctx)
	carriers, _ := args.Get(0).([]*carrier.Carrier)
	return carriers, args.Error(1)
}

func (m *MockConfigurationStore) Carrier(ctx context.Context, id kernel.UUID) (*carrier.Carrier, error) {
	args := m.Called(ctx, id)
	c, _ := args.Get(0).(*carrier.Carrier)
	return c, args.Error(1)
}

func (m *MockConfigurationStore) Zones(context.Context, kernel.UUID) ([]pricing.Zone, error) {
	return nil, nil
}

func (m *MockConfigurationStore) RateCards(context.Context, kernel.UUID, time.Time) ([]pricing.RateCard, error) {
	return nil, nil
}

func (m *MockConfigurationStore) Surcharges(context.Context, kernel.UUID, time.Time) ([]pricing.Surcharge, error) {
	return nil, nil
}

func (m *MockConfigurationStore) PricingRules(context.Context, kernel.UUID, time.Time) ([]pricing.PricingRule, error) {
	return nil, nil
}

func (m *MockConfigurationStore) Terminals(ctx context.Context, carrierID kernel.UUID) ([]pricing.Terminal, error) {
	args := m.Called(ctx, carrierID)
	terminals, _ := args.Get(0).([]pricing.Terminal)
	return terminals, args.Error(1)
}

type MockStrategyFactory struct{ mock.Mock }

func (m *MockStrategyFactory) Make(c *carrier.Carrier) carriers.Strategy {
	args := m.Called(c)
	return args.Get(0).(carriers.Strategy)
}

type MockStrategy struct{ mock.Mock }

func (m *MockStrategy) GetQuotes(ctx context.Context, s *shipment.Shipment) ([]quote.RawQuote, error) {
	args := m.Called(ctx, s)
	quotes, _ := args.Get(0).([]quote.RawQuote)
	return quotes, args.Error(1)
}

func (m *MockStrategy) CreateOrder(ctx context.Context, req carrier.OrderRequest) (carrier.OrderResult, error) {
	args := m.Called(ctx, req)
	return args.Get(0).(carrier.OrderResult), args.Error(1)
}

func (m *MockStrategy) GetTrackingStatus(ctx context.Context, trackingNumber string) (carrier.TrackingStatus, error) {
	args := m.Called(ctx, trackingNumber)
	return args.Get(0).(carrier.TrackingStatus), args.Error(1)
}

func (m *MockStrategy) CancelOrder(ctx context.Context, orderNumber string) (bool, error) {
	args := m.Called(ctx, orderNumber)
	return args.Bool(0), args.Error(1)
}

func (m *MockStrategy) GetShippingLabel(ctx context.Context, req carrier.OrderRequest) (string, error) {
	args := m.Called(ctx, req)
	return args.String(0), args.Error(1)
}

func newCarrier(t *testing.T) *carrier.Carrier {
	t.Helper()
	c, err := carrier.NewCarrier(kernel.NewUUID(), kernel.NewUUID(), "Steppe Cargo", carrier.KindDHL)
	require.NoError(t, err)
	return c
}
