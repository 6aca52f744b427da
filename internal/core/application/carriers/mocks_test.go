package carriers_test

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"freight/internal/core/domain/model/carrier"
	"freight/internal/core/domain/model/kernel"
	"freight/internal/core/domain/model/pricing"
	"freight/internal/core/domain/model/shipment"
	"freight/internal/core/ports"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockConfigurationStore struct{ mock.Mock }

func (m *MockConfigurationStore) ActiveCarriers(ctx context.Context) ([]*carrier.Carrier, error) {
	args := m.Called(ctx)
	v, _ := args.Get(0).([]*carrier.Carrier)
	return v, args.Error(1)
}

func (m *MockConfigurationStore) Carrier(ctx context.Context, id kernel.UUID) (*carrier.Carrier, error) {
	args := m.Called(ctx, id)
	v, _ := args.Get(0).(*carrier.Carrier)
	return v, args.Error(1)
}

func (m *MockConfigurationStore) Zones(ctx context.Context, id kernel.UUID) ([]pricing.Zone, error) {
	args := m.Called(ctx, id)
	v, _ := args.Get(0).([]pricing.Zone)
	return v, args.Error(1)
}

func (m *MockConfigurationStore) RateCards(ctx context.Context, id kernel.UUID, now time.Time) ([]pricing.RateCard, error) {
	args := m.Called(ctx, id, now)
	v, _ := args.Get(0).([]pricing.RateCard)
	return v, args.Error(1)
}

func (m *MockConfigurationStore) Surcharges(ctx context.Context, id kernel.UUID, now time.Time) ([]pricing.Surcharge, error) {
	args := m.Called(ctx, id, now)
	v, _ := args.Get(0).([]pricing.Surcharge)
	return v, args.Error(1)
}

func (m *MockConfigurationStore) PricingRules(ctx context.Context, id kernel.UUID, now time.Time) ([]pricing.PricingRule, error) {
	args := m.Called(ctx, id, now)
	v, _ := args.Get(0).([]pricing.PricingRule)
	return v, args.Error(1)
}

func (m *MockConfigurationStore) Terminals(ctx context.Context, id kernel.UUID) ([]pricing.Terminal, error) {
	args := m.Called(ctx, id)
	v, _ := args.Get(0).([]pricing.Terminal)
	return v, args.Error(1)
}

type MockCarrierAPIClient struct{ mock.Mock }

func (m *MockCarrierAPIClient) FetchRates(ctx context.Context, s *shipment.Shipment) ([]ports.APIRate, error) {
	args := m.Called(ctx, s)
	v, _ := args.Get(0).([]ports.APIRate)
	return v, args.Error(1)
}

func (m *MockCarrierAPIClient) CreateShipment(ctx context.Context, req carrier.OrderRequest) (carrier.OrderResult, error) {
	args := m.Called(ctx, req)
	return args.Get(0).(carrier.OrderResult), args.Error(1)
}

func (m *MockCarrierAPIClient) Track(ctx context.Context, trackingNumber string) (carrier.TrackingStatus, error) {
	args := m.Called(ctx, trackingNumber)
	return args.Get(0).(carrier.TrackingStatus), args.Error(1)
}

func (m *MockCarrierAPIClient) Cancel(ctx context.Context, orderNumber string) error {
	return m.Called(ctx, orderNumber).Error(0)
}

func (m *MockCarrierAPIClient) Label(ctx context.Context, trackingNumber string) (string, error) {
	args := m.Called(ctx, trackingNumber)
	return args.String(0), args.Error(1)
}

type MockCarrierAPIClientFactory struct{ mock.Mock }

func (m *MockCarrierAPIClientFactory) Make(c *carrier.Carrier) (ports.CarrierAPIClient, error) {
	args := m.Called(c)
	v, _ := args.Get(0).(ports.CarrierAPIClient)
	return v, args.Error(1)
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newCarrier(t *testing.T, kind carrier.Kind, modes ...kernel.TransportMode) *carrier.Carrier {
	t.Helper()
	c, err := carrier.NewCarrier(kernel.NewUUID(), kernel.NewUUID(), "Steppe Cargo", kind)
	require.NoError(t, err)
	c.Activate()
	c.VerifyCompany()
	require.NoError(t, c.SupportTransportModes(modes...))
	return c
}

func newShipment(t *testing.T, weight float64, mode kernel.TransportMode) *shipment.Shipment {
	t.Helper()
	origin, err := shipment.NewAddress("KZ", "Almaty", "050000")
	require.NoError(t, err)
	destination, err := shipment.NewAddress("KZ", "Astana", "010000")
	require.NoError(t, err)
	s, err := shipment.NewShipment(kernel.NewUUID(), origin, destination, weight, nil)
	require.NoError(t, err)
	if mode != "" {
		require.NoError(t, s.RequestTransportMode(mode))
	}
	return s
}

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func floatPtr(f float64) *float64 {
	return &f
}
