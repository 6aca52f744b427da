package carriers

import (
	"context"
	"time"

	"freight/internal/core/domain/model/kernel"
	"freight/internal/core/domain/model/pricing"
	"freight/internal/core/ports"
)

// PricingRules resolves the pricing rule in effect for a carrier. Both the
// billable weight and the final price are computed from the rule it returns.
type PricingRules struct {
	store ports.ConfigurationStore
}

// NewPricingRules creates a PricingRules backed by store.
func NewPricingRules(store ports.ConfigurationStore) PricingRules {
	return PricingRules{store: store}
}

// Current returns the most recent rule whose window contains now, or the
// default rule when the carrier has none.
func (r PricingRules) Current(ctx context.Context, carrierID kernel.UUID, now time.Time) (pricing.PricingRule, error) {
	rules, err := r.store.PricingRules(ctx, carrierID, now)
	if err != nil {
		return pricing.PricingRule{}, err
	}
	rule, _ := pricing.CurrentRule(rules, now)
	return rule, nil
}
