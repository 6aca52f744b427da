package carriers

import (
	"context"
	"strings"
	"time"

	"freight/internal/core/domain/model/carrier"
	"freight/internal/core/domain/model/kernel"
	"freight/internal/core/domain/model/pricing"
	"freight/internal/core/domain/model/quote"
	"freight/internal/core/domain/model/shipment"
	"freight/internal/core/domain/services"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/shopspring/decimal"
)

// Illustrative per kilogram rates of the mock carrier.
var mockRatesPerKg = map[kernel.TransportMode]decimal.Decimal{
	kernel.TransportModeAir:  decimal.NewFromInt(15),
	kernel.TransportModeSea:  decimal.NewFromInt(3),
	kernel.TransportModeRail: decimal.NewFromInt(5),
	kernel.TransportModeRoad: decimal.NewFromInt(8),
}

var (
	mockFallbackRatePerKg = decimal.NewFromInt(10)
	mockInsuranceShare    = decimal.RequireFromString("0.01")
	mockCustomsFee        = decimal.NewFromInt(150)
	mockDoorToDoorFee     = decimal.NewFromInt(50)
)

type dayRange struct{ min, max int }

var mockDeliveryDays = map[kernel.TransportMode]dayRange{
	kernel.TransportModeAir:  {3, 7},
	kernel.TransportModeSea:  {25, 40},
	kernel.TransportModeRail: {15, 25},
	kernel.TransportModeRoad: {7, 14},
}

var mockFallbackDeliveryDays = dayRange{10, 20}

// MockStrategy produces illustrative pricing without any carrier data. It
// serves carriers with no integration configured and is the fallback of
// external integrations.
type MockStrategy struct {
	carrier  *carrier.Carrier
	weights  services.BillableWeightCalculator
	validity time.Duration
	now      func() time.Time
}

// NewMockStrategy creates a MockStrategy for c.
func NewMockStrategy(c *carrier.Carrier, settings Settings) *MockStrategy {
	settings = settings.withDefaults()
	return &MockStrategy{
		carrier:  c,
		weights:  services.NewBillableWeightCalculator(),
		validity: settings.QuoteValidity,
		now:      time.Now,
	}
}

// GetQuotes returns one quote for every transport mode of the carrier, road when it lists none.
func (m *MockStrategy) GetQuotes(_ context.Context, s *shipment.Shipment) ([]quote.RawQuote, error) {
	now := m.now()
	weight := m.weights.Calculate(s, pricing.DefaultDimFactor)
	currency := s.Currency()
	if currency == "" {
		currency = pricing.DefaultCurrency
	}

	modes := m.carrier.TransportModes()
	if len(modes) == 0 {
		modes = []kernel.TransportMode{kernel.TransportModeRoad}
	}

	quotes := make([]quote.RawQuote, 0, len(modes))
	for _, mode := range modes {
		rate, ok := mockRatesPerKg[mode]
		if !ok {
			rate = mockFallbackRatePerKg
		}
		base := decimal.NewFromFloat(weight).Mul(rate)

		price := base
		insurance := decimal.Zero
		if s.InsuranceRequired() {
			insurance = s.DeclaredValue().Mul(mockInsuranceShare).Round(2)
			price = price.Add(insurance)
		}
		if s.CustomsClearance() {
			price = price.Add(mockCustomsFee)
		}
		if s.DoorToDoor() {
			price = price.Add(mockDoorToDoorFee)
		}

		days := mockDays(mode)
		quotes = append(quotes, quote.RawQuote{
			CarrierID:         m.carrier.ID(),
			Price:             price.Round(2),
			Currency:          currency,
			BaseRate:          base.Round(2),
			Surcharges:        []quote.SurchargeLine{},
			SurchargeTotal:    decimal.Zero,
			InsuranceCost:     insurance,
			BillableWeight:    decimal.NewFromFloat(weight).Round(2).InexactFloat64(),
			TransitDaysMin:    days,
			TransitDaysMax:    days,
			EstimatedDelivery: now.AddDate(0, 0, days),
			TransportMode:     mode,
			ServicesIncluded:  includedServices(s),
			ValidUntil:        now.Add(m.validity),
		})
	}
	return quotes, nil
}

func mockDays(mode kernel.TransportMode) int {
	r, ok := mockDeliveryDays[mode]
	if !ok {
		r = mockFallbackDeliveryDays
	}
	return gofakeit.IntRange(r.min, r.max)
}

// CreateOrder simulates a successful booking.
func (m *MockStrategy) CreateOrder(context.Context, carrier.OrderRequest) (carrier.OrderResult, error) {
	return carrier.OrderResult{
		Success:        true,
		CarrierOrderID: "MOCK-" + strings.ToUpper(gofakeit.LetterN(13)),
		TrackingNumber: "TRK" + gofakeit.Numerify("#########"),
	}, nil
}

// GetTrackingStatus reports the shipment in transit with a pickup and a hub scan.
func (m *MockStrategy) GetTrackingStatus(_ context.Context, trackingNumber string) (carrier.TrackingStatus, error) {
	now := m.now()
	return carrier.TrackingStatus{
		TrackingNumber: trackingNumber,
		Status:         carrier.StatusInTransit,
		Location:       "Transit Hub",
		Description:    "Package is in transit",
		Timestamp:      &now,
		Events: []carrier.TrackingEvent{
			{Status: carrier.StatusPickedUp, Location: "Origin City", Timestamp: now.AddDate(0, 0, -2)},
			{Status: carrier.StatusInTransit, Location: "Transit Hub", Timestamp: now.AddDate(0, 0, -1)},
		},
	}, nil
}

// CancelOrder simulates a successful cancellation.
func (m *MockStrategy) CancelOrder(context.Context, string) (bool, error) {
	return true, nil
}

// GetShippingLabel returns a placeholder label URL.
func (m *MockStrategy) GetShippingLabel(_ context.Context, req carrier.OrderRequest) (string, error) {
	return "https://example.com/labels/" + req.TrackingNumber + ".pdf", nil
}

// Carrier returns the carrier served by the strategy.
func (m *MockStrategy) Carrier() *carrier.Carrier {
	return m.carrier
}
