package services

import (
	"freight/internal/core/domain/model/carrier"
	"freight/internal/core/domain/model/shipment"
)

// CarrierEligibilityFilter decides which carriers are asked to quote a shipment.
// A carrier is eligible when it is active, its company is verified, it serves
// the requested transport mode (any mode when none was requested) and both
// the origin and destination countries.
type CarrierEligibilityFilter struct{}

// NewCarrierEligibilityFilter creates a CarrierEligibilityFilter.
func NewCarrierEligibilityFilter() CarrierEligibilityFilter {
	return CarrierEligibilityFilter{}
}

// IsEligible reports whether c may quote s.
func (f CarrierEligibilityFilter) IsEligible(c *carrier.Carrier, s *shipment.Shipment) bool {
	if c.Validate() != nil || s.Validate() != nil {
		return false
	}
	if !c.IsActive() || !c.IsCompanyVerified() {
		return false
	}
	return c.SupportsRoute(s.Origin().Country(), s.Destination().Country(), s.TransportMode())
}

// Filter keeps the eligible carriers in their original order.
func (f CarrierEligibilityFilter) Filter(carriers []*carrier.Carrier, s *shipment.Shipment) []*carrier.Carrier {
	eligible := make([]*carrier.Carrier, 0, len(carriers))
	for _, c := range carriers {
		if f.IsEligible(c, s) {
			eligible = append(eligible, c)
		}
	}
	return eligible
}
