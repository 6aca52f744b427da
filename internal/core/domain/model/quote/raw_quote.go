package quote

import (
	"time"

	"freight/internal/core/domain/model/kernel"

	"github.com/shopspring/decimal"
)

// Included service codes.
const (
	ServiceDoorPickup       = "door_pickup"
	ServiceDoorDelivery     = "door_delivery"
	ServiceCustomsClearance = "customs_clearance"
	ServiceInsurance        = "insurance"
)

// SurchargeLine is one applied surcharge in a quote breakdown.
type SurchargeLine struct {
	Type   string          `json:"type"`
	Name   string          `json:"name"`
	Amount decimal.Decimal `json:"amount"`
}

// RawQuote is the price one carrier offers for one transport mode.
type RawQuote struct {
	CarrierID         kernel.UUID          `json:"carrier_id"`
	Price             decimal.Decimal      `json:"price"`
	Currency          string               `json:"currency"`
	BaseRate          decimal.Decimal      `json:"base_rate"`
	Surcharges        []SurchargeLine      `json:"surcharges"`
	SurchargeTotal    decimal.Decimal      `json:"surcharge_total"`
	InsuranceCost     decimal.Decimal      `json:"insurance_cost"`
	BillableWeight    float64              `json:"billable_weight"`
	TransitDaysMin    int                  `json:"transit_days_min"`
	TransitDaysMax    int                  `json:"transit_days_max"`
	EstimatedDelivery time.Time            `json:"estimated_delivery"`
	TransportMode     kernel.TransportMode `json:"transport_mode"`
	ServicesIncluded  []string             `json:"services_included"`
	ValidUntil        time.Time            `json:"valid_until"`
}
