package services

import (
	"freight/internal/core/domain/model/pricing"
	"freight/internal/core/domain/model/shipment"
)

// BillableWeightCalculator computes the weight a carrier charges for.
//
//	dimensional = Σ length × width × height / dimFactor × quantity
//	billable    = max(actual, dimensional)
type BillableWeightCalculator struct{}

// NewBillableWeightCalculator creates a BillableWeightCalculator.
func NewBillableWeightCalculator() BillableWeightCalculator {
	return BillableWeightCalculator{}
}

// DimensionalWeight returns the volumetric weight of items in kilograms.
// A non-positive dimFactor falls back to pricing.DefaultDimFactor.
func (c BillableWeightCalculator) DimensionalWeight(items []shipment.Item, dimFactor int) float64 {
	if dimFactor <= 0 {
		dimFactor = pricing.DefaultDimFactor
	}
	var total float64
	for _, item := range items {
		total += item.Length() * item.Width() * item.Height() / float64(dimFactor) * float64(item.Quantity())
	}
	return total
}

// Calculate returns the billable weight of s for dimFactor.
func (c BillableWeightCalculator) Calculate(s *shipment.Shipment, dimFactor int) float64 {
	return max(s.TotalWeight(), c.DimensionalWeight(s.Items(), dimFactor))
}
