package pricing

import (
	"freight/internal/core/domain/model/kernel"
	"freight/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

// RateUnit tells how a rate card value is converted into a base rate.
type RateUnit string

const (
	RateUnitFlat      RateUnit = "flat"
	RateUnitPerKg     RateUnit = "per_kg"
	RateUnitPerLb     RateUnit = "per_lb"
	RateUnitPer100Kg  RateUnit = "per_100kg"
	RateUnitPer100Lbs RateUnit = "per_100lbs"
)

const (
	defaultTransitDaysMin = 3
	defaultTransitDaysMax = 7
)

// ParseRateUnit validates a stored rate unit.
func ParseRateUnit(s string) (RateUnit, error) {
	switch u := RateUnit(s); u {
	case RateUnitFlat, RateUnitPerKg, RateUnitPerLb, RateUnitPer100Kg, RateUnitPer100Lbs:
		return u, nil
	default:
		return "", errs.NewValueIsInvalidError("rate unit " + s)
	}
}

// RateCard is a weight banded price for a zone pair and transport mode.
// A nil zone id is a wildcard, and an empty transport mode matches every mode.
// The weight band is WeightMin..WeightMax, where a nil WeightMax is open ended.
type RateCard struct {
	ID                kernel.UUID
	CarrierID         kernel.UUID
	OriginZoneID      *kernel.UUID
	DestinationZoneID *kernel.UUID
	TransportMode     kernel.TransportMode
	WeightMin         float64
	WeightMax         *float64
	Rate              decimal.Decimal
	Unit              RateUnit
	Currency          string
	TransitDaysMin    *int
	TransitDaysMax    *int
	Window            kernel.EffectiveWindow
}

// TransitDays returns the configured transit range, 3..7 days when unset.
func (c RateCard) TransitDays() (int, int) {
	low, high := defaultTransitDaysMin, defaultTransitDaysMax
	if c.TransitDaysMin != nil {
		low = *c.TransitDaysMin
	}
	if c.TransitDaysMax != nil {
		high = *c.TransitDaysMax
	}
	return low, high
}
