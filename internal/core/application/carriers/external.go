package carriers

import (
	"context"
	"fmt"
	"log/slog"
	"math"
	"time"

	"freight/internal/core/domain/model/carrier"
	"freight/internal/core/domain/model/kernel"
	"freight/internal/core/domain/model/pricing"
	"freight/internal/core/domain/model/quote"
	"freight/internal/core/domain/model/shipment"
	"freight/internal/core/domain/services"
	"freight/internal/core/ports"

	"github.com/shopspring/decimal"
)

// ExternalStrategy talks to a named carrier API. Every call is bounded by the
// configured timeout and every failure wraps ports.ErrIntegrationFailure;
// recovery is left to the WithFallback decorator.
type ExternalStrategy struct {
	carrier  *carrier.Carrier
	client   ports.CarrierAPIClient
	weights  services.BillableWeightCalculator
	timeout  time.Duration
	validity time.Duration
	logger   *slog.Logger
	now      func() time.Time
}

// NewExternalStrategy creates an ExternalStrategy for c using client.
func NewExternalStrategy(
	c *carrier.Carrier,
	client ports.CarrierAPIClient,
	settings Settings,
	logger *slog.Logger,
) *ExternalStrategy {
	settings = settings.withDefaults()
	return &ExternalStrategy{
		carrier:  c,
		client:   client,
		weights:  services.NewBillableWeightCalculator(),
		timeout:  settings.APITimeout,
		validity: settings.QuoteValidity,
		logger:   logger.With("component", "external_strategy", "carrier_id", c.ID().String(), "kind", c.Kind().String()),
		now:      time.Now,
	}
}

// GetQuotes fetches rates from the carrier API.
func (e *ExternalStrategy) GetQuotes(ctx context.Context, s *shipment.Shipment) ([]quote.RawQuote, error) {
	ctx, cancel := context.WithTimeout(ctx, e.timeout)
	defer cancel()

	rates, err := e.client.FetchRates(ctx, s)
	if err != nil {
		return nil, integrationError("fetch rates", err)
	}

	e.logger.DebugContext(ctx, "carrier api returned rates", "count", len(rates))

	now := e.now()
	weight := decimal.NewFromFloat(e.weights.Calculate(s, pricing.DefaultDimFactor)).Round(2).InexactFloat64()

	quotes := make([]quote.RawQuote, 0, len(rates))
	for _, rate := range rates {
		if !(rate.Price > 0) || math.IsInf(rate.Price, 0) {
			return nil, integrationError("fetch rates", fmt.Errorf("non-positive price %v", rate.Price))
		}
		mode, err := kernel.ParseTransportMode(rate.TransportMode)
		if err != nil {
			mode = kernel.TransportModeAir
		}
		if s.HasTransportMode() && mode != s.TransportMode() {
			continue
		}
		currency := rate.Currency
		if currency == "" {
			currency = pricing.DefaultCurrency
		}
		minDays, maxDays := transitDays(rate)
		servicesIncluded := rate.Services
		if len(servicesIncluded) == 0 {
			servicesIncluded = []string{quote.ServiceDoorPickup, quote.ServiceDoorDelivery}
		}

		price := decimal.NewFromFloat(rate.Price).Round(2)
		quotes = append(quotes, quote.RawQuote{
			CarrierID:         e.carrier.ID(),
			Price:             price,
			Currency:          currency,
			BaseRate:          price,
			Surcharges:        []quote.SurchargeLine{},
			SurchargeTotal:    decimal.Zero,
			InsuranceCost:     decimal.Zero,
			BillableWeight:    weight,
			TransitDaysMin:    minDays,
			TransitDaysMax:    maxDays,
			EstimatedDelivery: now.AddDate(0, 0, maxDays),
			TransportMode:     mode,
			ServicesIncluded:  servicesIncluded,
			ValidUntil:        now.Add(e.validity),
		})
	}
	return quotes, nil
}

func transitDays(rate ports.APIRate) (int, int) {
	minDays, maxDays := rate.TransitDaysMin, rate.TransitDaysMax
	if maxDays <= 0 {
		return pricing.RateCard{}.TransitDays()
	}
	if minDays <= 0 || minDays > maxDays {
		minDays = maxDays
	}
	return minDays, maxDays
}

// CreateOrder books the shipment through the carrier API.
func (e *ExternalStrategy) CreateOrder(ctx context.Context, req carrier.OrderRequest) (carrier.OrderResult, error) {
	ctx, cancel := context.WithTimeout(ctx, e.timeout)
	defer cancel()

	result, err := e.client.CreateShipment(ctx, req)
	if err != nil {
		return carrier.OrderResult{}, integrationError("create shipment", err)
	}
	return result, nil
}

// GetTrackingStatus queries the carrier API.
func (e *ExternalStrategy) GetTrackingStatus(ctx context.Context, trackingNumber string) (carrier.TrackingStatus, error) {
	ctx, cancel := context.WithTimeout(ctx, e.timeout)
	defer cancel()

	status, err := e.client.Track(ctx, trackingNumber)
	if err != nil {
		return carrier.TrackingStatus{}, integrationError("track", err)
	}
	if status.TrackingNumber == "" {
		status.TrackingNumber = trackingNumber
	}
	return status, nil
}

// CancelOrder asks the carrier API to cancel.
func (e *ExternalStrategy) CancelOrder(ctx context.Context, orderNumber string) (bool, error) {
	ctx, cancel := context.WithTimeout(ctx, e.timeout)
	defer cancel()

	if err := e.client.Cancel(ctx, orderNumber); err != nil {
		return false, integrationError("cancel", err)
	}
	return true, nil
}

// GetShippingLabel fetches the label reference from the carrier API.
func (e *ExternalStrategy) GetShippingLabel(ctx context.Context, req carrier.OrderRequest) (string, error) {
	if req.TrackingNumber == "" {
		return "", nil
	}
	ctx, cancel := context.WithTimeout(ctx, e.timeout)
	defer cancel()

	label, err := e.client.Label(ctx, req.TrackingNumber)
	if err != nil {
		return "", integrationError("label", err)
	}
	return label, nil
}

func integrationError(op string, err error) error {
	return fmt.Errorf("%w: %s: %w", ports.ErrIntegrationFailure, op, err)
}

// Carrier returns the carrier served by the strategy.
func (e *ExternalStrategy) Carrier() *carrier.Carrier {
	return e.carrier
}
