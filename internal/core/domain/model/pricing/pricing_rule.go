package pricing

import (
	"time"

	"freight/internal/core/domain/model/kernel"

	"github.com/shopspring/decimal"
)

const (
	// DefaultDimFactor converts cm³ into kilograms when a carrier has no rule.
	DefaultDimFactor = 5000
	// DefaultCurrency is used when a carrier has no rule or the rule has no currency.
	DefaultCurrency = "USD"
)

// DefaultInsuranceRate is the percentage of the declared value charged for insurance.
var DefaultInsuranceRate = decimal.RequireFromString("0.5")

// PricingRule carries the carrier wide pricing parameters.
type PricingRule struct {
	ID            kernel.UUID
	CarrierID     kernel.UUID
	DimFactor     int
	MinimumCharge decimal.Decimal
	InsuranceRate decimal.Decimal
	Currency      string
	Window        kernel.EffectiveWindow
	CreatedAt     time.Time
}

// DefaultPricingRule is the rule of a carrier that configured none.
func DefaultPricingRule() PricingRule {
	return PricingRule{
		DimFactor:     DefaultDimFactor,
		MinimumCharge: decimal.Zero,
		InsuranceRate: DefaultInsuranceRate,
		Currency:      DefaultCurrency,
	}
}

// CurrentRule returns the most recently created rule whose window contains
// now, with missing fields filled from the defaults. When no rule is
// effective, DefaultPricingRule is returned and ok is false.
//
// This is the only place deciding which rule is current; the billable
// weight calculator and the pricing rule applier both receive its result.
func CurrentRule(rules []PricingRule, now time.Time) (rule PricingRule, ok bool) {
	for _, r := range rules {
		if !r.Window.Contains(now) {
			continue
		}
		if !ok || r.CreatedAt.After(rule.CreatedAt) {
			rule, ok = r, true
		}
	}
	if !ok {
		return DefaultPricingRule(), false
	}
	if rule.DimFactor <= 0 {
		rule.DimFactor = DefaultDimFactor
	}
	if rule.Currency == "" {
		rule.Currency = DefaultCurrency
	}
	return rule, true
}
