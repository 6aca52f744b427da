// Package services provides the stateless domain services of the quoting
// engine. Each service covers one pricing step and works on records already
// loaded from the carrier's pricing configuration:
//
//   - ZoneResolver maps an address to a carrier zone
//   - BillableWeightCalculator picks the greater of actual and dimensional weight
//   - RateCardSelector picks the weight band and converts it to a base rate
//   - SurchargeEvaluator stacks the applicable surcharges
//   - PricingRuleApplier enforces the minimum charge and prices insurance
//   - CarrierEligibilityFilter decides which carriers are asked for quotes
//
// The services never read the clock or perform I/O; callers pass "now" and
// the configuration explicitly so that identical inputs always give
// identical prices.
package services
