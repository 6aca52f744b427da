package ports

import (
	"context"
	"errors"

	"freight/internal/core/domain/model/carrier"
	"freight/internal/core/domain/model/shipment"
)

// ErrIntegrationFailure wraps every failure of an external carrier API:
// transport errors, timeouts, authentication and malformed responses.
var ErrIntegrationFailure = errors.New("carrier integration failure")

// APIRate is one priced offer returned by an external carrier API.
type APIRate struct {
	TransportMode  string
	Price          float64
	Currency       string
	TransitDaysMin int
	TransitDaysMax int
	Services       []string
}

// CarrierAPIClient is the uniform client of a named external carrier API.
// All errors returned wrap ErrIntegrationFailure.
type CarrierAPIClient interface {
	FetchRates(ctx context.Context, s *shipment.Shipment) ([]APIRate, error)
	CreateShipment(ctx context.Context, req carrier.OrderRequest) (carrier.OrderResult, error)
	Track(ctx context.Context, trackingNumber string) (carrier.TrackingStatus, error)
	Cancel(ctx context.Context, orderNumber string) error
	Label(ctx context.Context, trackingNumber string) (string, error)
}

// CarrierAPIClientFactory builds a client for a named external carrier.
type CarrierAPIClientFactory interface {
	Make(c *carrier.Carrier) (CarrierAPIClient, error)
}
