// Package carrierapi is the JSON REST client shared by the named carrier integrations.
//
// Every named kind speaks the same wire format: basic authentication with the
// api_key/api_secret pair from the carrier's integration config, rates posted
// to /rates, bookings to /shipments and tracking read from
// /shipments/{tracking}/tracking. Failures of any kind wrap
// ports.ErrIntegrationFailure.
package carrierapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"freight/internal/core/domain/model/carrier"
	"freight/internal/core/domain/model/kernel"
	"freight/internal/core/domain/model/shipment"
	"freight/internal/core/ports"
)

const (
	plannedDateLayout = "2006-01-02T15:04:05 GMT+00:00"
	maxErrorBody      = 512
)

// Client calls one carrier API.
type Client struct {
	baseURL       string
	apiKey        string
	apiSecret     string
	accountNumber string
	httpClient    *http.Client
	now           func() time.Time
}

// NewClient creates a client for cfg using httpClient for transport.
func NewClient(cfg Config, httpClient *http.Client) *Client {
	return &Client{
		baseURL:       strings.TrimRight(cfg.BaseURL, "/"),
		apiKey:        cfg.APIKey,
		apiSecret:     cfg.APISecret,
		accountNumber: cfg.AccountNumber,
		httpClient:    httpClient,
		now:           time.Now,
	}
}

// FetchRates posts the shipment to /rates and returns one rate per product.
func (c *Client) FetchRates(ctx context.Context, s *shipment.Shipment) ([]ports.APIRate, error) {
	var body rateRequest
	body.CustomerDetails.ShipperDetails = partyOf(s.Origin())
	body.CustomerDetails.ReceiverDetails = partyOf(s.Destination())
	body.PlannedShippingDateAndTime = c.now().UTC().Format(plannedDateLayout)
	body.UnitOfMeasurement = "metric"
	body.IsCustomsDeclarable = s.CustomsClearance()
	body.TotalWeight = s.TotalWeight()
	body.TransportMode = s.TransportMode().String()
	if s.InsuranceRequired() {
		body.DeclaredValue = s.DeclaredValue().StringFixed(2)
		body.DeclaredValueCurrency = s.Currency()
	}
	for _, item := range s.Items() {
		body.Packages = append(body.Packages, packageSpec{
			Quantity:   item.Quantity(),
			Dimensions: dimensions{Length: item.Length(), Width: item.Width(), Height: item.Height()},
		})
	}

	var resp rateResponse
	if err := c.do(ctx, http.MethodPost, "/rates", body, &resp); err != nil {
		return nil, err
	}

	rates := make([]ports.APIRate, 0, len(resp.Products))
	for _, p := range resp.Products {
		rate := ports.APIRate{
			TransportMode:  p.TransportMode,
			TransitDaysMin: p.DeliveryCapabilities.MinTransitDays,
			TransitDaysMax: p.DeliveryCapabilities.TotalTransitDays,
			Services:       p.Services,
		}
		if len(p.TotalPrice) == 0 || p.TotalPrice[0].Price <= 0 {
			return nil, integrationError(http.MethodPost+" /rates", fmt.Errorf("decode response: product %q has no total price", p.ProductCode))
		}
		rate.Price = p.TotalPrice[0].Price
		rate.Currency = p.TotalPrice[0].PriceCurrency
		if rate.TransitDaysMax == 0 {
			rate.TransitDaysMax = c.daysUntil(p.DeliveryCapabilities.EstimatedDeliveryDateAndTime)
		}
		rates = append(rates, rate)
	}
	return rates, nil
}

func (c *Client) daysUntil(estimated string) int {
	if estimated == "" {
		return 0
	}
	t, ok := trackingEvent{Date: estimated}.timestamp()
	if !ok {
		return 0
	}
	days := int(t.Sub(c.now()).Hours() / 24)
	return max(days, 0)
}

// CreateShipment books the shipment.
func (c *Client) CreateShipment(ctx context.Context, req carrier.OrderRequest) (carrier.OrderResult, error) {
	var body shipmentRequest
	pickupDate := req.PickupDate
	if pickupDate.IsZero() {
		pickupDate = c.now()
	}
	body.PlannedShippingDateAndTime = pickupDate.UTC().Format(plannedDateLayout)
	body.Pickup.IsRequested = true
	body.ProductCode = "P"
	body.Reference = req.OrderNumber
	body.Accounts = []account{{TypeCode: "shipper", Number: c.accountNumber}}
	body.CustomerDetails.ShipperDetails = shipmentPartyOf(req.Pickup, req.PickupContact)
	body.CustomerDetails.ReceiverDetails = shipmentPartyOf(req.Delivery, req.DeliveryContact)
	body.Content.Weight = req.WeightKg

	var resp shipmentResponse
	if err := c.do(ctx, http.MethodPost, "/shipments", body, &resp); err != nil {
		return carrier.OrderResult{}, err
	}
	if resp.ShipmentTrackingNumber == "" {
		return carrier.OrderResult{}, integrationError("create shipment", fmt.Errorf("response has no tracking number"))
	}

	orderID := resp.DispatchConfirmationNumber
	if orderID == "" {
		orderID = resp.ShipmentTrackingNumber
	}
	return carrier.OrderResult{
		Success:        true,
		CarrierOrderID: orderID,
		TrackingNumber: resp.ShipmentTrackingNumber,
	}, nil
}

// Track reads the tracking history. The first event is the latest one.
func (c *Client) Track(ctx context.Context, trackingNumber string) (carrier.TrackingStatus, error) {
	var resp trackingResponse
	path := "/shipments/" + url.PathEscape(trackingNumber) + "/tracking"
	if err := c.do(ctx, http.MethodGet, path, nil, &resp); err != nil {
		return carrier.TrackingStatus{}, err
	}

	status := carrier.TrackingStatus{
		TrackingNumber: trackingNumber,
		Status:         carrier.StatusInTransit,
		Events:         []carrier.TrackingEvent{},
	}
	if len(resp.Shipments) == 0 {
		return status, nil
	}

	for i, e := range resp.Shipments[0].Events {
		event := carrier.TrackingEvent{
			Status:      MapStatus(e.TypeCode),
			Location:    e.location(),
			Description: e.Description,
		}
		if ts, ok := e.timestamp(); ok {
			event.Timestamp = ts
		}
		if i == 0 {
			status.Status = event.Status
			status.Location = event.Location
			status.Description = event.Description
			if !event.Timestamp.IsZero() {
				ts := event.Timestamp
				status.Timestamp = &ts
			}
		}
		status.Events = append(status.Events, event)
	}
	return status, nil
}

// Cancel cancels a booked shipment.
func (c *Client) Cancel(ctx context.Context, orderNumber string) error {
	return c.do(ctx, http.MethodDelete, "/shipments/"+url.PathEscape(orderNumber), nil, nil)
}

// Label returns the label URL of a booked shipment.
func (c *Client) Label(ctx context.Context, trackingNumber string) (string, error) {
	var resp labelResponse
	path := "/shipments/" + url.PathEscape(trackingNumber) + "/label"
	if err := c.do(ctx, http.MethodGet, path, nil, &resp); err != nil {
		return "", err
	}
	return resp.URL, nil
}

func (c *Client) do(ctx context.Context, method, path string, in, out any) error {
	op := method + " " + path

	var body io.Reader
	if in != nil {
		payload, err := json.Marshal(in)
		if err != nil {
			return integrationError(op, fmt.Errorf("marshal request: %w", err))
		}
		body = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return integrationError(op, fmt.Errorf("create request: %w", err))
	}
	req.SetBasicAuth(c.apiKey, c.apiSecret)
	req.Header.Set("Accept", "application/json")
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return integrationError(op, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		return integrationError(op, fmt.Errorf("status %d: %s", resp.StatusCode, strings.TrimSpace(string(snippet))))
	}
	if out == nil {
		return nil
	}
	if err = json.NewDecoder(resp.Body).Decode(out); err != nil {
		return integrationError(op, fmt.Errorf("decode response: %w", err))
	}
	return nil
}

func integrationError(op string, err error) error {
	return fmt.Errorf("%w: %s: %w", ports.ErrIntegrationFailure, op, err)
}

func partyOf(a shipment.Address) party {
	return party{
		PostalCode:  postalCodeOrPlaceholder(a.PostalCode()),
		CityName:    a.City(),
		CountryCode: kernel.NormalizeCountry(a.Country()),
	}
}

func shipmentPartyOf(a shipment.Address, contact carrier.Contact) shipmentParty {
	return shipmentParty{
		PostalAddress: postalAddress{
			CityName:    a.City(),
			CountryCode: kernel.NormalizeCountry(a.Country()),
			PostalCode:  postalCodeOrPlaceholder(a.PostalCode()),
		},
		ContactInformation: contactInformation{FullName: contact.Name, Phone: contact.Phone},
	}
}

func postalCodeOrPlaceholder(code string) string {
	if strings.TrimSpace(code) == "" {
		return "00000"
	}
	return code
}
