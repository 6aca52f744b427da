package services

import (
	"strings"

	"freight/internal/core/domain/model/kernel"
	"freight/internal/core/domain/model/pricing"
	"freight/internal/core/domain/model/shipment"
)

// ZoneMatch is the outcome of resolving an address against carrier zones.
// Zone is nil when the carrier has no zone data for the location.
type ZoneMatch struct {
	Zone         *pricing.Zone
	ByPostalCode bool
	// Ambiguous is set when several zones matched at the country level and
	// the first one in configuration order was taken.
	Ambiguous bool
}

// Found reports whether a zone was resolved.
func (m ZoneMatch) Found() bool {
	return m.Zone != nil
}

// ZoneResolver maps shipment addresses to carrier specific zones.
//
// Resolution order:
//   - a postal code matcher (prefix or inclusive range) of any zone, for the address country
//   - the first zone whose country code equals the address country
//   - the first zone whose code equals the address country
//
// Example:
//
//	match := services.NewZoneResolver().Resolve(zones, shipment.Destination())
//	if !match.Found() {
//	    // carrier has no zone data for the destination
//	}
type ZoneResolver struct{}

// NewZoneResolver creates a ZoneResolver.
func NewZoneResolver() ZoneResolver {
	return ZoneResolver{}
}

// Resolve returns the best matching zone for address among zones.
func (r ZoneResolver) Resolve(zones []pricing.Zone, address shipment.Address) ZoneMatch {
	country := kernel.NormalizeCountry(address.Country())

	if address.PostalCode() != "" {
		for i := range zones {
			if _, ok := zones[i].MatchPostalCode(country, address.PostalCode()); ok {
				return ZoneMatch{Zone: &zones[i], ByPostalCode: true}
			}
		}
	}

	var match ZoneMatch
	for i := range zones {
		if kernel.NormalizeCountry(zones[i].CountryCode) != country {
			continue
		}
		if match.Zone != nil {
			match.Ambiguous = true
			break
		}
		match.Zone = &zones[i]
	}
	if match.Zone != nil {
		return match
	}

	for i := range zones {
		if strings.EqualFold(strings.TrimSpace(zones[i].Code), country) {
			return ZoneMatch{Zone: &zones[i]}
		}
	}

	return ZoneMatch{}
}

// IsRemoteArea reports whether the address postal code hits a remote area
// matcher of zone.
func (r ZoneResolver) IsRemoteArea(zone *pricing.Zone, address shipment.Address) bool {
	if zone == nil || address.PostalCode() == "" {
		return false
	}
	for _, m := range zone.PostalMatchers {
		if m.IsRemoteArea &&
			m.AppliesToCountry(zone.CountryCode, address.Country()) &&
			m.Matches(address.PostalCode()) {
			return true
		}
	}
	return false
}
