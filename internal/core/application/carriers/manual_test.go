package carriers_test

import (
	"errors"
	"testing"
	"time"

	"freight/internal/core/application/carriers"
	"freight/internal/core/domain/model/carrier"
	"freight/internal/core/domain/model/kernel"
	"freight/internal/core/domain/model/pricing"
	"freight/internal/core/domain/model/quote"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type manualFixture struct {
	carrier    *carrier.Carrier
	store      *MockConfigurationStore
	zone       pricing.Zone
	cards      []pricing.RateCard
	surcharges []pricing.Surcharge
	rules      []pricing.PricingRule
}

func newManualFixture(t *testing.T, modes ...kernel.TransportMode) *manualFixture {
	t.Helper()
	c := newCarrier(t, carrier.KindManual, modes...)
	zone := pricing.Zone{
		ID:          kernel.NewUUID(),
		CarrierID:   c.ID(),
		Code:        "KZ-ALL",
		CountryCode: "KZ",
		PostalMatchers: []pricing.PostalMatcher{
			{Prefix: "01", IsRemoteArea: true},
		},
	}
	zoneID := zone.ID
	return &manualFixture{
		carrier: c,
		store:   new(MockConfigurationStore),
		zone:    zone,
		cards: []pricing.RateCard{{
			ID:                kernel.NewUUID(),
			CarrierID:         c.ID(),
			OriginZoneID:      &zoneID,
			DestinationZoneID: &zoneID,
			TransportMode:     kernel.TransportModeRoad,
			WeightMin:         20,
			WeightMax:         floatPtr(100),
			Rate:              dec("0.5"),
			Unit:              pricing.RateUnitPerKg,
		}},
	}
}

func (f *manualFixture) strategy() *carriers.ManualStrategy {
	id := f.carrier.ID()
	f.store.On("PricingRules", mock.Anything, id, mock.Anything).Return(f.rules, nil)
	f.store.On("Zones", mock.Anything, id).Return([]pricing.Zone{f.zone}, nil)
	f.store.On("RateCards", mock.Anything, id, mock.Anything).Return(f.cards, nil)
	f.store.On("Surcharges", mock.Anything, id, mock.Anything).Return(f.surcharges, nil)
	return carriers.NewManualStrategy(f.carrier, f.store, carriers.DefaultSettings(), discardLogger())
}

func fuel(carrierID kernel.UUID) pricing.Surcharge {
	return pricing.Surcharge{
		ID:          kernel.NewUUID(),
		CarrierID:   carrierID,
		Type:        pricing.SurchargeFuel,
		Name:        "Fuel",
		Calculation: pricing.CalculationPercentage,
		Value:       dec("15"),
		IsActive:    true,
	}
}

func TestManualStrategy_GetQuotes(t *testing.T) {
	t.Run("base rate and fuel surcharge", func(t *testing.T) {
		f := newManualFixture(t, kernel.TransportModeRoad)
		f.zone.PostalMatchers = nil
		f.surcharges = []pricing.Surcharge{fuel(f.carrier.ID())}
		validity := carriers.DefaultSettings().QuoteValidity

		before := time.Now()
		quotes, err := f.strategy().GetQuotes(t.Context(), newShipment(t, 50, kernel.TransportModeRoad))
		after := time.Now()

		require.NoError(t, err)
		require.Len(t, quotes, 1)
		q := quotes[0]
		assert.Equal(t, "25.00", q.BaseRate.StringFixed(2))
		assert.Equal(t, "3.75", q.SurchargeTotal.StringFixed(2))
		assert.Equal(t, "28.75", q.Price.StringFixed(2))
		assert.Equal(t, "USD", q.Currency)
		assert.Equal(t, kernel.TransportModeRoad, q.TransportMode)
		assert.Equal(t, 3, q.TransitDaysMin)
		assert.Equal(t, 7, q.TransitDaysMax)
		assert.InDelta(t, 50, q.BillableWeight, 1e-9)
		assert.WithinRange(t, q.ValidUntil, before.Add(validity), after.Add(validity))
		assert.WithinRange(t, q.EstimatedDelivery, before.AddDate(0, 0, 7), after.AddDate(0, 0, 7))
		assert.False(t, q.ValidUntil.Before(q.EstimatedDelivery))
		assert.Empty(t, q.ServicesIncluded)
		assert.Equal(t, f.carrier.ID().String(), q.CarrierID.String())
	})

	t.Run("minimum charge floors the base before surcharges", func(t *testing.T) {
		f := newManualFixture(t, kernel.TransportModeRoad)
		f.zone.PostalMatchers = nil
		f.surcharges = []pricing.Surcharge{fuel(f.carrier.ID())}
		f.rules = []pricing.PricingRule{{
			ID:            kernel.NewUUID(),
			CarrierID:     f.carrier.ID(),
			DimFactor:     5000,
			MinimumCharge: dec("30"),
			InsuranceRate: dec("0.5"),
			Currency:      "KZT",
		}}

		quotes, err := f.strategy().GetQuotes(t.Context(), newShipment(t, 50, kernel.TransportModeRoad))

		require.NoError(t, err)
		require.Len(t, quotes, 1)
		assert.Equal(t, "30.00", quotes[0].BaseRate.StringFixed(2))
		assert.Equal(t, "4.50", quotes[0].SurchargeTotal.StringFixed(2))
		assert.Equal(t, "34.50", quotes[0].Price.StringFixed(2))
		assert.Equal(t, "KZT", quotes[0].Currency)
	})

	t.Run("remote area surcharge without door to door", func(t *testing.T) {
		f := newManualFixture(t, kernel.TransportModeRoad)
		f.surcharges = []pricing.Surcharge{{
			ID:          kernel.NewUUID(),
			CarrierID:   f.carrier.ID(),
			Type:        pricing.SurchargeRemoteArea,
			Name:        "Remote area",
			Calculation: pricing.CalculationFlat,
			Value:       dec("25"),
			IsActive:    true,
		}, {
			ID:          kernel.NewUUID(),
			CarrierID:   f.carrier.ID(),
			Type:        pricing.SurchargeResidential,
			Name:        "Residential",
			Calculation: pricing.CalculationFlat,
			Value:       dec("10"),
			IsActive:    true,
		}}

		quotes, err := f.strategy().GetQuotes(t.Context(), newShipment(t, 50, kernel.TransportModeRoad))

		require.NoError(t, err)
		require.Len(t, quotes, 1)
		require.Len(t, quotes[0].Surcharges, 1)
		assert.Equal(t, string(pricing.SurchargeRemoteArea), quotes[0].Surcharges[0].Type)
		assert.Equal(t, "50.00", quotes[0].Price.StringFixed(2))
	})

	t.Run("services and insurance", func(t *testing.T) {
		f := newManualFixture(t, kernel.TransportModeRoad)
		f.zone.PostalMatchers = nil
		s := newShipment(t, 50, kernel.TransportModeRoad)
		s.RequestDoorToDoor()
		s.RequestCustomsClearance()
		require.NoError(t, s.RequestInsurance(decimal.NewFromInt(10000)))

		quotes, err := f.strategy().GetQuotes(t.Context(), s)

		require.NoError(t, err)
		require.Len(t, quotes, 1)
		assert.Equal(t, []string{
			quote.ServiceDoorPickup, quote.ServiceDoorDelivery, quote.ServiceCustomsClearance, quote.ServiceInsurance,
		}, quotes[0].ServicesIncluded)
		assert.Equal(t, "50.00", quotes[0].InsuranceCost.StringFixed(2))
		assert.Equal(t, "75.00", quotes[0].Price.StringFixed(2))
	})

	t.Run("any mode returns one quote per mode with a card", func(t *testing.T) {
		f := newManualFixture(t, kernel.TransportModeRoad, kernel.TransportModeAir, kernel.TransportModeRail)
		f.zone.PostalMatchers = nil
		air := f.cards[0]
		air.ID = kernel.NewUUID()
		air.TransportMode = kernel.TransportModeAir
		air.Rate = dec("2")
		f.cards = append(f.cards, air)

		quotes, err := f.strategy().GetQuotes(t.Context(), newShipment(t, 50, ""))

		require.NoError(t, err)
		require.Len(t, quotes, 2)
		assert.Equal(t, kernel.TransportModeRoad, quotes[0].TransportMode)
		assert.Equal(t, kernel.TransportModeAir, quotes[1].TransportMode)
		assert.Equal(t, "100.00", quotes[1].Price.StringFixed(2))
	})

	t.Run("no matching card is no coverage", func(t *testing.T) {
		f := newManualFixture(t, kernel.TransportModeRoad)

		quotes, err := f.strategy().GetQuotes(t.Context(), newShipment(t, 150, kernel.TransportModeRoad))

		require.NoError(t, err)
		assert.NotNil(t, quotes)
		assert.Empty(t, quotes)
	})

	t.Run("no rate cards at all", func(t *testing.T) {
		f := newManualFixture(t, kernel.TransportModeRoad)
		f.cards = nil

		quotes, err := f.strategy().GetQuotes(t.Context(), newShipment(t, 50, kernel.TransportModeRoad))

		require.NoError(t, err)
		assert.Empty(t, quotes)
		f.store.AssertNotCalled(t, "Surcharges", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("unsupported route skips the store", func(t *testing.T) {
		f := newManualFixture(t, kernel.TransportModeRoad)
		s := carriers.NewManualStrategy(f.carrier, f.store, carriers.DefaultSettings(), discardLogger())

		quotes, err := s.GetQuotes(t.Context(), newShipment(t, 50, kernel.TransportModeSea))

		require.NoError(t, err)
		assert.Empty(t, quotes)
		f.store.AssertExpectations(t)
	})

	t.Run("store failure is returned", func(t *testing.T) {
		f := newManualFixture(t, kernel.TransportModeRoad)
		f.store.On("PricingRules", mock.Anything, f.carrier.ID(), mock.Anything).
			Return(nil, errors.New("connection reset"))
		s := carriers.NewManualStrategy(f.carrier, f.store, carriers.DefaultSettings(), discardLogger())

		_, err := s.GetQuotes(t.Context(), newShipment(t, 50, kernel.TransportModeRoad))

		require.ErrorContains(t, err, "connection reset")
	})
}

func TestManualStrategy_BillableWeight(t *testing.T) {
	f := newManualFixture(t, kernel.TransportModeRoad)
	f.rules = []pricing.PricingRule{{ID: kernel.NewUUID(), CarrierID: f.carrier.ID(), DimFactor: 4000}}
	s := f.strategy()

	weight, err := s.BillableWeight(t.Context(), newShipment(t, 12, kernel.TransportModeRoad))

	require.NoError(t, err)
	assert.InDelta(t, 12, weight, 1e-9)
}

func TestManualStrategy_Logistics(t *testing.T) {
	f := newManualFixture(t, kernel.TransportModeRoad)
	s := carriers.NewManualStrategy(f.carrier, f.store, carriers.DefaultSettings(), discardLogger())
	ctx := t.Context()

	result, err := s.CreateOrder(ctx, carrier.OrderRequest{OrderNumber: "ORD-1"})
	require.NoError(t, err)
	assert.True(t, result.Success)
	assert.Regexp(t, `^VE-[A-Z]{10}$`, result.TrackingNumber)
	assert.Equal(t, result.TrackingNumber, result.CarrierOrderID)

	status, err := s.GetTrackingStatus(ctx, result.TrackingNumber)
	require.NoError(t, err)
	assert.Equal(t, carrier.StatusPending, status.Status)
	assert.Empty(t, status.Events)

	cancelled, err := s.CancelOrder(ctx, "ORD-1")
	require.NoError(t, err)
	assert.True(t, cancelled)

	label, err := s.GetShippingLabel(ctx, carrier.OrderRequest{TrackingNumber: result.TrackingNumber})
	require.NoError(t, err)
	assert.Empty(t, label)
}
