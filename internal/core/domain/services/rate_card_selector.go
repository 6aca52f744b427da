package services

import (
	"time"

	"freight/internal/core/domain/model/kernel"
	"freight/internal/core/domain/model/pricing"

	"github.com/shopspring/decimal"
)

var (
	poundsPerKilogram = decimal.RequireFromString("2.20462")
	hundred           = decimal.NewFromInt(100)
)

// RateCardQuery describes the lane and weight a rate card is looked up for.
// A nil zone means the location has no zone data; only wildcard cards match it.
type RateCardQuery struct {
	CarrierID       kernel.UUID
	OriginZone      *pricing.Zone
	DestinationZone *pricing.Zone
	BillableWeight  float64
	TransportMode   kernel.TransportMode
	Now             time.Time
}

// RateCardSelector picks the applicable weight band for a lane.
//
// A card matches when it belongs to the carrier, its zones equal the resolved
// zones or are wildcards, its mode equals the requested mode or is empty, the
// billable weight is inside WeightMin..WeightMax (both inclusive, nil max is
// open) and its window contains now. Among matches, the card with the largest
// WeightMin wins; ties keep configuration order.
type RateCardSelector struct{}

// NewRateCardSelector creates a RateCardSelector.
func NewRateCardSelector() RateCardSelector {
	return RateCardSelector{}
}

// Select returns the tightest matching card, or false when none matches.
func (s RateCardSelector) Select(cards []pricing.RateCard, q RateCardQuery) (pricing.RateCard, bool) {
	var (
		best  pricing.RateCard
		found bool
	)
	for _, card := range cards {
		if !s.matches(card, q) {
			continue
		}
		if !found || card.WeightMin > best.WeightMin {
			best, found = card, true
		}
	}
	return best, found
}

// BaseRate converts the card rate into a monetary amount for billableWeight.
// Unknown units are priced per kilogram.
func (s RateCardSelector) BaseRate(card pricing.RateCard, billableWeight float64) decimal.Decimal {
	weight := decimal.NewFromFloat(billableWeight)
	switch card.Unit {
	case pricing.RateUnitFlat:
		return card.Rate
	case pricing.RateUnitPerLb:
		return weight.Mul(poundsPerKilogram).Mul(card.Rate)
	case pricing.RateUnitPer100Kg:
		return weight.Div(hundred).Mul(card.Rate)
	case pricing.RateUnitPer100Lbs:
		return weight.Mul(poundsPerKilogram).Div(hundred).Mul(card.Rate)
	default:
		return weight.Mul(card.Rate)
	}
}

func (s RateCardSelector) matches(card pricing.RateCard, q RateCardQuery) bool {
	if !card.CarrierID.IsEqual(q.CarrierID) {
		return false
	}
	if !zoneMatches(card.OriginZoneID, q.OriginZone) || !zoneMatches(card.DestinationZoneID, q.DestinationZone) {
		return false
	}
	if card.TransportMode != "" && card.TransportMode != q.TransportMode {
		return false
	}
	if card.WeightMin > q.BillableWeight {
		return false
	}
	if card.WeightMax != nil && *card.WeightMax < q.BillableWeight {
		return false
	}
	return card.Window.Contains(q.Now)
}

func zoneMatches(cardZoneID *kernel.UUID, resolved *pricing.Zone) bool {
	if cardZoneID == nil {
		return true
	}
	return resolved != nil && cardZoneID.IsEqual(resolved.ID)
}
