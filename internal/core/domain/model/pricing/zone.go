package pricing

import (
	"strconv"
	"strings"

	"freight/internal/core/domain/model/kernel"
)

// Zone is a carrier defined geographic grouping used to address rate cards.
// Codes are unique per carrier.
type Zone struct {
	ID             kernel.UUID
	CarrierID      kernel.UUID
	Code           string
	Name           string
	CountryCode    string
	Description    string
	PostalMatchers []PostalMatcher
}

// PostalMatcher attaches postal codes to a zone, either by prefix or by an
// inclusive From..To range.
type PostalMatcher struct {
	Prefix       string
	From         string
	To           string
	CountryCode  string
	City         string
	IsRemoteArea bool
}

// Matches reports whether postalCode falls under the matcher. Ranges of
// purely numeric codes are compared numerically, anything else lexically.
func (m PostalMatcher) Matches(postalCode string) bool {
	code := normalizePostalCode(postalCode)
	if code == "" {
		return false
	}
	if prefix := normalizePostalCode(m.Prefix); prefix != "" && strings.HasPrefix(code, prefix) {
		return true
	}
	from, to := normalizePostalCode(m.From), normalizePostalCode(m.To)
	if from == "" || to == "" {
		return false
	}
	return comparePostalCodes(code, from) >= 0 && comparePostalCodes(code, to) <= 0
}

// AppliesToCountry reports whether the matcher may be used for country.
// A matcher without its own country inherits the zone's country.
func (m PostalMatcher) AppliesToCountry(zoneCountry, country string) bool {
	own := m.CountryCode
	if own == "" {
		own = zoneCountry
	}
	if own == "" {
		return true
	}
	return kernel.NormalizeCountry(own) == kernel.NormalizeCountry(country)
}

// MatchPostalCode returns the first matcher of the zone that covers postalCode
// in country.
func (z Zone) MatchPostalCode(country, postalCode string) (PostalMatcher, bool) {
	for _, m := range z.PostalMatchers {
		if m.AppliesToCountry(z.CountryCode, country) && m.Matches(postalCode) {
			return m, true
		}
	}
	return PostalMatcher{}, false
}

func normalizePostalCode(s string) string {
	return strings.ToUpper(strings.ReplaceAll(strings.TrimSpace(s), " ", ""))
}

func comparePostalCodes(a, b string) int {
	an, aErr := strconv.ParseUint(a, 10, 64)
	bn, bErr := strconv.ParseUint(b, 10, 64)
	if aErr == nil && bErr == nil {
		switch {
		case an < bn:
			return -1
		case an > bn:
			return 1
		default:
			return 0
		}
	}
	return strings.Compare(a, b)
}
