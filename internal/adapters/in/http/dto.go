package http

import (
	"errors"
	"time"

	"freight/internal/core/application/usecases/queries"
	"freight/internal/core/domain/model/carrier"
	"freight/internal/core/domain/model/kernel"
	"freight/internal/core/domain/model/pricing"
	"freight/internal/core/domain/model/quote"
	"freight/internal/core/domain/model/shipment"

	"github.com/shopspring/decimal"
)

// Error is the body of every non-2xx response.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

type AddressRequest struct {
	Country    string `json:"country" validate:"required"`
	City       string `json:"city"`
	PostalCode string `json:"postal_code" validate:"max=16"`
}

// ItemRequest bounds mirror shipment.MaxDimension and shipment.MaxQuantity.
type ItemRequest struct {
	Length   float64 `json:"length" validate:"gte=0,lte=10000"`
	Width    float64 `json:"width" validate:"gte=0,lte=10000"`
	Height   float64 `json:"height" validate:"gte=0,lte=10000"`
	Quantity int     `json:"quantity" validate:"gte=1,lte=100000"`
}

// ShipmentRequest is the body of POST /api/v1/quotes.
type ShipmentRequest struct {
	ShipmentID        string           `json:"shipment_id" validate:"omitempty,uuid"`
	Origin            AddressRequest   `json:"origin"`
	Destination       AddressRequest   `json:"destination"`
	TotalWeight       float64          `json:"total_weight" validate:"gt=0,lte=1000000"`
	Items             []ItemRequest    `json:"items" validate:"dive"`
	TransportMode     string           `json:"transport_mode" validate:"omitempty,oneof=road rail air sea"`
	InsuranceRequired bool             `json:"insurance_required"`
	DeclaredValue     *decimal.Decimal `json:"declared_value"`
	CustomsClearance  bool             `json:"customs_clearance"`
	DoorToDoor        bool             `json:"door_to_door"`
	Currency          string           `json:"currency" validate:"omitempty,len=3,alpha"`
}

// ToShipment builds the domain shipment. A missing shipment id gets a fresh one.
func (r ShipmentRequest) ToShipment() (*shipment.Shipment, error) {
	id := kernel.NewUUID()
	if r.ShipmentID != "" {
		parsed, err := kernel.UUIDFromString(r.ShipmentID)
		if err != nil {
			return nil, err
		}
		id = parsed
	}

	origin, err := shipment.NewAddress(r.Origin.Country, r.Origin.City, r.Origin.PostalCode)
	if err != nil {
		return nil, err
	}
	destination, err := shipment.NewAddress(r.Destination.Country, r.Destination.City, r.Destination.PostalCode)
	if err != nil {
		return nil, err
	}

	items := make([]shipment.Item, 0, len(r.Items))
	for _, it := range r.Items {
		item, itemErr := shipment.NewItem(it.Length, it.Width, it.Height, it.Quantity)
		if itemErr != nil {
			return nil, itemErr
		}
		items = append(items, item)
	}

	s, err := shipment.NewShipment(id, origin, destination, r.TotalWeight, items)
	if err != nil {
		return nil, err
	}

	if r.TransportMode != "" {
		mode, modeErr := kernel.ParseTransportMode(r.TransportMode)
		if modeErr != nil {
			return nil, modeErr
		}
		if modeErr = s.RequestTransportMode(mode); modeErr != nil {
			return nil, modeErr
		}
	}
	if r.InsuranceRequired {
		if r.DeclaredValue == nil {
			return nil, shipment.ErrDeclaredValueIsRequired
		}
		if err = s.RequestInsurance(*r.DeclaredValue); err != nil {
			return nil, err
		}
	}
	if r.CustomsClearance {
		s.RequestCustomsClearance()
	}
	if r.DoorToDoor {
		s.RequestDoorToDoor()
	}
	s.SetCurrency(r.Currency)

	return s, nil
}

// QuoteResponse is a quote with its pricing breakdown.
type QuoteResponse struct {
	ID         kernel.UUID `json:"id"`
	ShipmentID kernel.UUID `json:"shipment_id"`
	IsSelected bool        `json:"is_selected"`
	quote.RawQuote
}

func toQuoteResponse(q *quote.Quote) QuoteResponse {
	return QuoteResponse{
		ID:         q.ID(),
		ShipmentID: q.ShipmentID(),
		IsSelected: q.IsSelected(),
		RawQuote:   q.Raw(),
	}
}

type ComputeQuotesResponse struct {
	ShipmentID kernel.UUID     `json:"shipment_id"`
	Quotes     []QuoteResponse `json:"quotes"`
}

type ShipmentQuoteResponse struct {
	ID                kernel.UUID          `json:"id"`
	CarrierID         kernel.UUID          `json:"carrier_id"`
	CarrierName       string               `json:"carrier_name"`
	Price             decimal.Decimal      `json:"price"`
	Currency          string               `json:"currency"`
	TransportMode     kernel.TransportMode `json:"transport_mode"`
	TransitDaysMin    int                  `json:"transit_days_min"`
	TransitDaysMax    int                  `json:"transit_days_max"`
	EstimatedDelivery time.Time            `json:"estimated_delivery"`
	ValidUntil        time.Time            `json:"valid_until"`
	IsSelected        bool                 `json:"is_selected"`
}

func toShipmentQuoteResponse(r queries.GetShipmentQuotesQueryResponse) ShipmentQuoteResponse {
	return ShipmentQuoteResponse(r)
}

// SelectQuoteRequest is the body of POST /api/v1/shipments/:id/quotes/select.
type SelectQuoteRequest struct {
	QuoteID string `json:"quote_id" validate:"required,uuid"`
}

type TrackingResponse struct {
	CarrierID kernel.UUID `json:"carrier_id"`
	carrier.TrackingStatus
}

type TerminalResponse struct {
	ID         kernel.UUID `json:"id"`
	Code       string      `json:"code"`
	Name       string      `json:"name"`
	Type       string      `json:"type"`
	Country    string      `json:"country_code"`
	City       string      `json:"city"`
	Address    string      `json:"address"`
	PostalCode string      `json:"postal_code"`
	Latitude   float64     `json:"latitude"`
	Longitude  float64     `json:"longitude"`
	Phone      string      `json:"phone,omitempty"`
	Email      string      `json:"email,omitempty"`
	DistanceKm float64     `json:"distance_km"`
}

func toTerminalResponse(t *pricing.Terminal, distance float64) TerminalResponse {
	return TerminalResponse{
		ID:         t.ID,
		Code:       t.Code,
		Name:       t.Name,
		Type:       t.Type,
		Country:    t.CountryCode,
		City:       t.City,
		Address:    t.Address,
		PostalCode: t.PostalCode,
		Latitude:   t.Latitude,
		Longitude:  t.Longitude,
		Phone:      t.Phone,
		Email:      t.Email,
		DistanceKm: distance,
	}
}

var (
	errInvalidID   = errors.New("invalid id")
	errInvalidBody = errors.New("Invalid request body")
)
