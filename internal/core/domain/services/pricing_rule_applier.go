package services

import (
	"freight/internal/core/domain/model/pricing"

	"github.com/shopspring/decimal"
)

// PricingRuleApplier applies the carrier pricing rule to a base rate.
// The rule passed in is the one returned by pricing.CurrentRule.
type PricingRuleApplier struct{}

// NewPricingRuleApplier creates a PricingRuleApplier.
func NewPricingRuleApplier() PricingRuleApplier {
	return PricingRuleApplier{}
}

// ApplyMinimum floors baseRate at the rule minimum charge.
func (a PricingRuleApplier) ApplyMinimum(baseRate decimal.Decimal, rule pricing.PricingRule) decimal.Decimal {
	return decimal.Max(baseRate, rule.MinimumCharge)
}

// Insurance prices insurance as a percentage of declaredValue, rounded to cents.
func (a PricingRuleApplier) Insurance(declaredValue decimal.Decimal, rule pricing.PricingRule) decimal.Decimal {
	if !declaredValue.IsPositive() {
		return decimal.Zero
	}
	return declaredValue.Mul(rule.InsuranceRate).Div(hundred).Round(2)
}

// Total sums the rate, the surcharge total, insurance and any extra fees.
func (a PricingRuleApplier) Total(rate, surchargeTotal, insurance decimal.Decimal, extras ...decimal.Decimal) decimal.Decimal {
	total := rate.Add(surchargeTotal).Add(insurance)
	for _, extra := range extras {
		total = total.Add(extra)
	}
	return total.Round(2)
}
