package pricing

import (
	"slices"

	"freight/internal/core/domain/model/kernel"

	"github.com/shopspring/decimal"
)

// SurchargeType tags the business reason of a surcharge. Unknown tags are allowed.
type SurchargeType string

const (
	SurchargeFuel           SurchargeType = "fuel"
	SurchargeResidential    SurchargeType = "residential"
	SurchargeRemoteArea     SurchargeType = "remote_area"
	SurchargePeakSeason     SurchargeType = "peak_season"
	SurchargeOversized      SurchargeType = "oversized"
	SurchargeDangerousGoods SurchargeType = "dangerous_goods"
)

// Calculation is how a surcharge amount is derived.
type Calculation string

const (
	CalculationPercentage Calculation = "percentage"
	CalculationFlat       Calculation = "flat"
	CalculationPerKg      Calculation = "per_kg"
)

// Surcharge is an additional charge layered on top of the base rate.
type Surcharge struct {
	ID             kernel.UUID
	CarrierID      kernel.UUID
	Type           SurchargeType
	Name           string
	Calculation    Calculation
	Value          decimal.Decimal
	MinValue       *decimal.Decimal
	MaxValue       *decimal.Decimal
	TransportModes []kernel.TransportMode
	IsActive       bool
	Window         kernel.EffectiveWindow
}

// AppliesToMode reports whether the surcharge covers mode. An empty list covers all modes.
func (s Surcharge) AppliesToMode(mode kernel.TransportMode) bool {
	return len(s.TransportModes) == 0 || slices.Contains(s.TransportModes, mode)
}
