// Package carriers implements the per-carrier pricing and logistics
// strategies and the factory that picks one from stored carrier configuration.
package carriers

import (
	"context"
	"errors"
	"time"

	"freight/internal/core/domain/model/carrier"
	"freight/internal/core/domain/model/quote"
	"freight/internal/core/domain/model/shipment"
)

// ErrNoCoverage reports that a carrier has no zone or rate data for a lane.
// Strategies never return it from GetQuotes; they return an empty slice instead.
var ErrNoCoverage = errors.New("carrier has no coverage for the route")

// Strategy is the uniform contract of a carrier integration.
type Strategy interface {
	// GetQuotes prices s. A carrier without coverage returns an empty slice.
	GetQuotes(ctx context.Context, s *shipment.Shipment) ([]quote.RawQuote, error)

	// CreateOrder books an order with the carrier. Calls are not idempotent.
	CreateOrder(ctx context.Context, req carrier.OrderRequest) (carrier.OrderResult, error)

	// GetTrackingStatus returns the current status of a tracking number.
	GetTrackingStatus(ctx context.Context, trackingNumber string) (carrier.TrackingStatus, error)

	// CancelOrder asks the carrier to cancel an order.
	CancelOrder(ctx context.Context, orderNumber string) (bool, error)

	// GetShippingLabel returns a label reference for a booked order, possibly empty.
	GetShippingLabel(ctx context.Context, req carrier.OrderRequest) (string, error)
}

// BillableWeigher is implemented by strategies whose billable weight depends
// on carrier configuration.
type BillableWeigher interface {
	BillableWeight(ctx context.Context, s *shipment.Shipment) (float64, error)
}

// Settings are the tunables shared by all strategies.
type Settings struct {
	// QuoteValidity is how long a produced quote can be selected.
	QuoteValidity time.Duration
	// APITimeout bounds every call to an external carrier API.
	APITimeout time.Duration
	// CacheTTL is the lifetime of cached quote sets.
	CacheTTL time.Duration
}

// DefaultSettings returns the settings used when none are configured.
func DefaultSettings() Settings {
	return Settings{
		QuoteValidity: 7 * 24 * time.Hour,
		APITimeout:    10 * time.Second,
		CacheTTL:      60 * time.Minute,
	}
}

func (s Settings) withDefaults() Settings {
	d := DefaultSettings()
	if s.QuoteValidity <= 0 {
		s.QuoteValidity = d.QuoteValidity
	}
	if s.APITimeout <= 0 {
		s.APITimeout = d.APITimeout
	}
	if s.CacheTTL <= 0 {
		s.CacheTTL = d.CacheTTL
	}
	return s
}

func includedServices(s *shipment.Shipment) []string {
	services := []string{}
	if s.DoorToDoor() {
		services = append(services, quote.ServiceDoorPickup, quote.ServiceDoorDelivery)
	}
	if s.CustomsClearance() {
		services = append(services, quote.ServiceCustomsClearance)
	}
	if s.InsuranceRequired() {
		services = append(services, quote.ServiceInsurance)
	}
	return services
}
