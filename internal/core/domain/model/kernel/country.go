package kernel

import "strings"

// AnyCountry in a supported countries list means worldwide coverage.
const AnyCountry = "*"

// countryAliases maps the country names used by shippers and carriers
// in their profiles to ISO 3166-1 alpha-2 codes.
var countryAliases = map[string]string{
	"казахстан":     "KZ",
	"kazakhstan":    "KZ",
	"россия":        "RU",
	"russia":        "RU",
	"китай":         "CN",
	"china":         "CN",
	"узбекистан":    "UZ",
	"uzbekistan":    "UZ",
	"кыргызстан":    "KG",
	"kyrgyzstan":    "KG",
	"таджикистан":   "TJ",
	"tajikistan":    "TJ",
	"беларусь":      "BY",
	"belarus":       "BY",
	"туркменистан":  "TM",
	"turkmenistan":  "TM",
	"сша":           "US",
	"usa":           "US",
	"united states": "US",
	"германия":      "DE",
	"germany":       "DE",
	"турция":        "TR",
	"turkey":        "TR",
	"оаэ":           "AE",
	"uae":           "AE",
}

// NormalizeCountry converts a country name or code to its upper-case ISO code.
// Unknown names are returned trimmed and upper-cased so that they still compare
// consistently.
//
// Example:
//
//	kernel.NormalizeCountry("Казахстан") // "KZ"
//	kernel.NormalizeCountry(" kz ")      // "KZ"
func NormalizeCountry(country string) string {
	trimmed := strings.TrimSpace(country)
	if code, ok := countryAliases[strings.ToLower(trimmed)]; ok {
		return code
	}
	return strings.ToUpper(trimmed)
}
