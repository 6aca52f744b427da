package carrier

import (
	"time"

	"freight/internal/core/domain/model/kernel"
	"freight/internal/core/domain/model/shipment"
)

// Tracking statuses reported by carrier integrations.
const (
	StatusPending        = "pending"
	StatusPickedUp       = "picked_up"
	StatusInTransit      = "in_transit"
	StatusCustoms        = "customs"
	StatusOutForDelivery = "out_for_delivery"
	StatusDelivered      = "delivered"
)

// Contact is a person reachable at a pickup or delivery address.
type Contact struct {
	Name  string
	Phone string
}

// OrderRequest is what a carrier integration needs to book a shipment.
type OrderRequest struct {
	OrderNumber     string
	ShipmentID      kernel.UUID
	QuoteID         kernel.UUID
	Pickup          shipment.Address
	Delivery        shipment.Address
	PickupContact   Contact
	DeliveryContact Contact
	PickupDate      time.Time
	WeightKg        float64
	TrackingNumber  string
}

// OrderResult is the outcome of booking a shipment with a carrier.
type OrderResult struct {
	Success        bool
	CarrierOrderID string
	TrackingNumber string
	Error          string
}

// TrackingEvent is one checkpoint in a shipment's journey.
type TrackingEvent struct {
	Status      string    `json:"status"`
	Location    string    `json:"location"`
	Description string    `json:"description"`
	Timestamp   time.Time `json:"timestamp"`
}

// TrackingStatus is the latest known state of a shipment.
type TrackingStatus struct {
	TrackingNumber string          `json:"tracking_number"`
	Status         string          `json:"status"`
	Location       string          `json:"location,omitempty"`
	Description    string          `json:"description,omitempty"`
	Timestamp      *time.Time      `json:"timestamp,omitempty"`
	Events         []TrackingEvent `json:"events"`
}
