package carriers

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"freight/internal/core/domain/model/carrier"
	"freight/internal/core/domain/model/kernel"
	"freight/internal/core/domain/model/pricing"
	"freight/internal/core/domain/model/quote"
	"freight/internal/core/domain/model/shipment"
	"freight/internal/core/domain/services"
	"freight/internal/core/ports"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/shopspring/decimal"
)

// ManualStrategy prices shipments from the rate cards, surcharges and pricing
// rules stored for the carrier.
//
// For every candidate transport mode it resolves the origin and destination
// zones, picks a rate card for the billable weight, floors the base rate to
// the minimum charge and stacks surcharges and insurance on top.
type ManualStrategy struct {
	carrier *carrier.Carrier
	store   ports.ConfigurationStore
	rules   PricingRules

	zones      services.ZoneResolver
	weights    services.BillableWeightCalculator
	cards      services.RateCardSelector
	surcharges services.SurchargeEvaluator
	applier    services.PricingRuleApplier

	validity time.Duration
	logger   *slog.Logger
	now      func() time.Time
}

// NewManualStrategy creates a ManualStrategy for c.
func NewManualStrategy(
	c *carrier.Carrier,
	store ports.ConfigurationStore,
	settings Settings,
	logger *slog.Logger,
) *ManualStrategy {
	settings = settings.withDefaults()
	return &ManualStrategy{
		carrier:    c,
		store:      store,
		rules:      NewPricingRules(store),
		zones:      services.NewZoneResolver(),
		weights:    services.NewBillableWeightCalculator(),
		cards:      services.NewRateCardSelector(),
		surcharges: services.NewSurchargeEvaluator(),
		applier:    services.NewPricingRuleApplier(),
		validity:   settings.QuoteValidity,
		logger:     logger.With("component", "manual_strategy", "carrier_id", c.ID().String()),
		now:        time.Now,
	}
}

// ruledShipment is a shipment weighed under the pricing rule in effect at now.
type ruledShipment struct {
	shipment       *shipment.Shipment
	rule           pricing.PricingRule
	billableWeight float64
	now            time.Time
}

func (m *ManualStrategy) resolve(ctx context.Context, s *shipment.Shipment) (ruledShipment, error) {
	now := m.now()
	rule, err := m.rules.Current(ctx, m.carrier.ID(), now)
	if err != nil {
		return ruledShipment{}, fmt.Errorf("load pricing rules: %w", err)
	}
	return ruledShipment{
		shipment:       s,
		rule:           rule,
		billableWeight: m.weights.Calculate(s, rule.DimFactor),
		now:            now,
	}, nil
}

// BillableWeight computes the billable weight of s with the carrier's current DIM factor.
func (m *ManualStrategy) BillableWeight(ctx context.Context, s *shipment.Shipment) (float64, error) {
	r, err := m.resolve(ctx, s)
	if err != nil {
		return 0, err
	}
	return r.billableWeight, nil
}

// GetQuotes returns one quote per transport mode that resolved a rate card.
func (m *ManualStrategy) GetQuotes(ctx context.Context, s *shipment.Shipment) ([]quote.RawQuote, error) {
	if !m.supportsRoute(s) {
		return []quote.RawQuote{}, nil
	}
	r, err := m.resolve(ctx, s)
	if err != nil {
		return nil, err
	}
	return m.quoteResolved(ctx, r)
}

func (m *ManualStrategy) supportsRoute(s *shipment.Shipment) bool {
	return m.carrier.SupportsRoute(s.Origin().Country(), s.Destination().Country(), s.TransportMode())
}

// quoteResolved prices r without reloading its pricing rule.
func (m *ManualStrategy) quoteResolved(ctx context.Context, r ruledShipment) ([]quote.RawQuote, error) {
	quotes := []quote.RawQuote{}
	s := r.shipment
	now := r.now
	id := m.carrier.ID()

	zones, err := m.store.Zones(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("load zones: %w", err)
	}
	cards, err := m.store.RateCards(ctx, id, now)
	if err != nil {
		return nil, fmt.Errorf("load rate cards: %w", err)
	}
	if len(cards) == 0 {
		m.logger.WarnContext(ctx, "active carrier has no effective rate cards")
		return quotes, nil
	}
	surcharges, err := m.store.Surcharges(ctx, id, now)
	if err != nil {
		return nil, fmt.Errorf("load surcharges: %w", err)
	}

	origin := m.zones.Resolve(zones, s.Origin())
	destination := m.zones.Resolve(zones, s.Destination())
	if origin.Ambiguous || destination.Ambiguous {
		m.logger.WarnContext(ctx, "several zones match the country, using the first configured",
			"origin_country", s.Origin().Country(),
			"destination_country", s.Destination().Country())
	}

	lane := laneContext{
		shipment:       s,
		rule:           r.rule,
		billableWeight: r.billableWeight,
		origin:         origin.Zone,
		destination:    destination.Zone,
		remoteArea:     m.zones.IsRemoteArea(destination.Zone, s.Destination()),
		cards:          cards,
		surcharges:     surcharges,
		now:            now,
	}

	for _, mode := range m.candidateModes(s) {
		q, err := m.quoteMode(lane, mode)
		if errors.Is(err, ErrNoCoverage) {
			continue
		}
		quotes = append(quotes, q)
	}

	if len(quotes) == 0 {
		m.logger.DebugContext(ctx, "no rate card matches the shipment",
			"billable_weight", lane.billableWeight,
			"origin_zone_found", origin.Found(),
			"destination_zone_found", destination.Found())
	}
	return quotes, nil
}

type laneContext struct {
	shipment       *shipment.Shipment
	rule           pricing.PricingRule
	billableWeight float64
	origin         *pricing.Zone
	destination    *pricing.Zone
	remoteArea     bool
	cards          []pricing.RateCard
	surcharges     []pricing.Surcharge
	now            time.Time
}

func (m *ManualStrategy) quoteMode(lane laneContext, mode kernel.TransportMode) (quote.RawQuote, error) {
	card, ok := m.cards.Select(lane.cards, services.RateCardQuery{
		CarrierID:       m.carrier.ID(),
		OriginZone:      lane.origin,
		DestinationZone: lane.destination,
		BillableWeight:  lane.billableWeight,
		TransportMode:   mode,
		Now:             lane.now,
	})
	if !ok {
		return quote.RawQuote{}, ErrNoCoverage
	}

	s := lane.shipment
	rate := m.applier.ApplyMinimum(m.cards.BaseRate(card, lane.billableWeight), lane.rule)
	surcharges := m.surcharges.Evaluate(lane.surcharges, services.SurchargeContext{
		BaseRate:       rate,
		BillableWeight: lane.billableWeight,
		TransportMode:  mode,
		Residential:    s.DoorToDoor(),
		RemoteArea:     lane.remoteArea,
		Now:            lane.now,
	})

	insurance := decimal.Zero
	if s.InsuranceRequired() {
		insurance = m.applier.Insurance(s.DeclaredValue(), lane.rule)
	}

	minDays, maxDays := card.TransitDays()
	return quote.RawQuote{
		CarrierID:         m.carrier.ID(),
		Price:             m.applier.Total(rate, surcharges.Total, insurance),
		Currency:          lane.rule.Currency,
		BaseRate:          rate.Round(2),
		Surcharges:        surcharges.Lines,
		SurchargeTotal:    surcharges.Total,
		InsuranceCost:     insurance,
		BillableWeight:    decimal.NewFromFloat(lane.billableWeight).Round(2).InexactFloat64(),
		TransitDaysMin:    minDays,
		TransitDaysMax:    maxDays,
		EstimatedDelivery: lane.now.AddDate(0, 0, maxDays),
		TransportMode:     mode,
		ServicesIncluded:  includedServices(s),
		ValidUntil:        lane.now.Add(m.validity),
	}, nil
}

func (m *ManualStrategy) candidateModes(s *shipment.Shipment) []kernel.TransportMode {
	if s.HasTransportMode() {
		return []kernel.TransportMode{s.TransportMode()}
	}
	if modes := m.carrier.TransportModes(); len(modes) > 0 {
		return modes
	}
	return kernel.AllTransportModes()
}

// CreateOrder registers the order internally; the carrier is notified out of band.
func (m *ManualStrategy) CreateOrder(ctx context.Context, req carrier.OrderRequest) (carrier.OrderResult, error) {
	tracking := "VE-" + strings.ToUpper(gofakeit.LetterN(10))
	m.logger.InfoContext(ctx, "manual order registered", "order_number", req.OrderNumber, "tracking_number", tracking)
	return carrier.OrderResult{
		Success:        true,
		CarrierOrderID: tracking,
		TrackingNumber: tracking,
	}, nil
}

// GetTrackingStatus returns pending; manual carriers report progress through operators.
func (m *ManualStrategy) GetTrackingStatus(_ context.Context, trackingNumber string) (carrier.TrackingStatus, error) {
	return carrier.TrackingStatus{
		TrackingNumber: trackingNumber,
		Status:         carrier.StatusPending,
		Events:         []carrier.TrackingEvent{},
	}, nil
}

// CancelOrder always succeeds; the carrier is notified out of band.
func (m *ManualStrategy) CancelOrder(context.Context, string) (bool, error) {
	return true, nil
}

// GetShippingLabel returns an empty reference, manual carriers print their own labels.
func (m *ManualStrategy) GetShippingLabel(context.Context, carrier.OrderRequest) (string, error) {
	return "", nil
}

// Carrier returns the carrier served by the strategy.
func (m *ManualStrategy) Carrier() *carrier.Carrier {
	return m.carrier
}
