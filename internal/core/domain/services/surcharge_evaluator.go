package services

import (
	"cmp"
	"slices"
	"time"

	"freight/internal/core/domain/model/kernel"
	"freight/internal/core/domain/model/pricing"
	"freight/internal/core/domain/model/quote"

	"github.com/shopspring/decimal"
)

// SurchargeContext carries the shipment facts that gate conditional surcharges.
type SurchargeContext struct {
	BaseRate       decimal.Decimal
	BillableWeight float64
	TransportMode  kernel.TransportMode
	Residential    bool
	RemoteArea     bool
	Now            time.Time
}

// SurchargeResult is the ordered breakdown of applied surcharges.
type SurchargeResult struct {
	Lines []quote.SurchargeLine
	Total decimal.Decimal
}

// SurchargeEvaluator stacks the carrier surcharges on top of a base rate.
//
// Surcharges are evaluated in a stable order by type. Each applicable
// amount is clamped into MinValue..MaxValue (min first, then max) and
// dropped when the result is not positive. Lines are rounded to cents,
// the total is the rounded sum of unrounded amounts.
type SurchargeEvaluator struct{}

// NewSurchargeEvaluator creates a SurchargeEvaluator.
func NewSurchargeEvaluator() SurchargeEvaluator {
	return SurchargeEvaluator{}
}

// Evaluate applies surcharges in context sc.
func (e SurchargeEvaluator) Evaluate(surcharges []pricing.Surcharge, sc SurchargeContext) SurchargeResult {
	ordered := slices.Clone(surcharges)
	slices.SortStableFunc(ordered, func(a, b pricing.Surcharge) int {
		return cmp.Compare(a.Type, b.Type)
	})

	result := SurchargeResult{Lines: []quote.SurchargeLine{}, Total: decimal.Zero}
	total := decimal.Zero
	for _, s := range ordered {
		if !e.applies(s, sc) {
			continue
		}
		amount := clamp(e.amount(s, sc), s.MinValue, s.MaxValue)
		if !amount.IsPositive() {
			continue
		}
		result.Lines = append(result.Lines, quote.SurchargeLine{
			Type:   string(s.Type),
			Name:   s.Name,
			Amount: amount.Round(2),
		})
		total = total.Add(amount)
	}
	result.Total = total.Round(2)
	return result
}

func (e SurchargeEvaluator) applies(s pricing.Surcharge, sc SurchargeContext) bool {
	if !s.IsActive || !s.Window.Contains(sc.Now) || !s.AppliesToMode(sc.TransportMode) {
		return false
	}
	switch s.Type {
	case pricing.SurchargeResidential:
		return sc.Residential
	case pricing.SurchargeRemoteArea:
		return sc.RemoteArea
	default:
		return true
	}
}

func (e SurchargeEvaluator) amount(s pricing.Surcharge, sc SurchargeContext) decimal.Decimal {
	switch s.Calculation {
	case pricing.CalculationPercentage:
		return sc.BaseRate.Mul(s.Value).Div(hundred)
	case pricing.CalculationFlat:
		return s.Value
	case pricing.CalculationPerKg:
		return decimal.NewFromFloat(sc.BillableWeight).Mul(s.Value)
	default:
		return decimal.Zero
	}
}

func clamp(amount decimal.Decimal, lower, upper *decimal.Decimal) decimal.Decimal {
	if lower != nil {
		amount = decimal.Max(amount, *lower)
	}
	if upper != nil {
		amount = decimal.Min(amount, *upper)
	}
	return amount
}
