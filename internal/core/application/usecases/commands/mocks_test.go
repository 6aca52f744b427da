package commands_test

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"freight/internal/core/application/carriers"
	"freight/internal/core/application/usecases/commands"
	"freight/internal/core/domain/model/carrier"
	"freight/internal/core/domain/model/kernel"
	"freight/internal/core/domain/model/pricing"
	"freight/internal/core/domain/model/quote"
	"freight/internal/core/domain/model/shipment"
	"freight/internal/core/ports"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockQuoteRepository struct{ mock.Mock }

func (m *MockQuoteRepository) Add(ctx context.Context, quotes ...*quote.Quote) error {
	args := m.Called(ctx, quotes)
	return args.Error(0)
}

func (m *MockQuoteRepository) Get(ctx context.Context, id kernel.UUID) (*quote.Quote, error) {
	args := m.Called(ctx, id)
	q, _ := args.Get(0).(*quote.Quote)
	return q, args.Error(1)
}

func (m *MockQuoteRepository) ListByShipment(ctx context.Context, shipmentID kernel.UUID) ([]*quote.Quote, error) {
	args := m.Called(ctx, shipmentID)
	quotes, _ := args.Get(0).([]*quote.Quote)
	return quotes, args.Error(1)
}

func (m *MockQuoteRepository) Update(ctx context.Context, quotes ...*quote.Quote) error {
	args := m.Called(ctx, quotes)
	return args.Error(0)
}

type MockQuoteUoW struct{ mock.Mock }

func (m *MockQuoteUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockQuoteUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockQuoteUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockQuoteUoW) QuoteRepository() ports.QuoteRepository {
	args := m.Called()
	return args.Get(0).(ports.QuoteRepository)
}

type MockQuoteUoWFactory struct{ mock.Mock }

func (m *MockQuoteUoWFactory) Create() commands.QuoteUoW {
	args := m.Called()
	return args.Get(0).(commands.QuoteUoW)
}

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

func (m *MockConfigurationStore) Terminals(context.Context, kernel.UUID) ([]pricing.Terminal, error) {
	return nil, nil
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

type MockEventPublisher struct{ mock.Mock }

func (m *MockEventPublisher) Publish(ctx context.Context, key string, value any) error {
	args := m.Called(ctx, key, value)
	return args.Error(0)
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newCarrier(t *testing.T, name string) *carrier.Carrier {
	t.Helper()
	c, err := carrier.NewCarrier(kernel.NewUUID(), kernel.NewUUID(), name, carrier.KindManual)
	require.NoError(t, err)
	c.Activate()
	c.VerifyCompany()
	require.NoError(t, c.SupportTransportModes(kernel.TransportModeRoad))
	return c
}

func newShipment(t *testing.T) *shipment.Shipment {
	t.Helper()
	origin, err := shipment.NewAddress("KZ", "Almaty", "050000")
	require.NoError(t, err)
	destination, err := shipment.NewAddress("KZ", "Astana", "010000")
	require.NoError(t, err)
	s, err := shipment.NewShipment(kernel.NewUUID(), origin, destination, 50, nil)
	require.NoError(t, err)
	return s
}

func rawQuote(c *carrier.Carrier, price string) quote.RawQuote {
	now := time.Now()
	return quote.RawQuote{
		CarrierID:        c.ID(),
		Price:            decimal.RequireFromString(price),
		Currency:         "USD",
		BaseRate:         decimal.RequireFromString(price),
		TransitDaysMin:   3,
		TransitDaysMax:   7,
		TransportMode:    kernel.TransportModeRoad,
		ServicesIncluded: []string{},
		ValidUntil:       now.AddDate(0, 0, 7),
	}
}
