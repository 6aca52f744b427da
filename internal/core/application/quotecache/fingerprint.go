// Package quotecache memoizes the quote set a carrier computed for a
// normalized shipment request.
package quotecache

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"freight/internal/core/domain/model/kernel"
	"freight/internal/core/domain/model/shipment"

	"github.com/shopspring/decimal"
)

// Params are the normalized request attributes a carrier price depends on.
type Params struct {
	OriginCountry         string
	OriginCity            string
	DestinationCountry    string
	DestinationCity       string
	DestinationPostalCode string
	TransportMode         kernel.TransportMode
	BillableWeight        float64
	Volume                float64
	DoorToDoor            bool
	CustomsClearance      bool
	InsuranceRequired     bool
	DeclaredValue         decimal.Decimal
}

// ParamsFor extracts the cache parameters of s priced at billableWeight.
func ParamsFor(s *shipment.Shipment, billableWeight float64) Params {
	return Params{
		OriginCountry:         s.Origin().Country(),
		OriginCity:            s.Origin().City(),
		DestinationCountry:    s.Destination().Country(),
		DestinationCity:       s.Destination().City(),
		DestinationPostalCode: s.Destination().PostalCode(),
		TransportMode:         s.TransportMode(),
		BillableWeight:        billableWeight,
		Volume:                s.Volume(),
		DoorToDoor:            s.DoorToDoor(),
		CustomsClearance:      s.CustomsClearance(),
		InsuranceRequired:     s.InsuranceRequired(),
		DeclaredValue:         s.DeclaredValue(),
	}
}

// Fingerprint returns a stable hex encoded SHA-256 of p. Text is trimmed and
// lower-cased, weight is rounded to 0.01 kg and volume to 0.0001 m³; keys
// are sorted before hashing.
func Fingerprint(p Params) string {
	normalized := map[string]string{
		"origin_country":          kernel.NormalizeCountry(p.OriginCountry),
		"origin_city":             normalizeText(p.OriginCity),
		"destination_country":     kernel.NormalizeCountry(p.DestinationCountry),
		"destination_city":        normalizeText(p.DestinationCity),
		"destination_postal_code": normalizeText(p.DestinationPostalCode),
		"transport_mode":          p.TransportMode.String(),
		"weight":                  fmt.Sprintf("%.2f", p.BillableWeight),
		"volume":                  fmt.Sprintf("%.4f", p.Volume),
		"door_to_door":            strconv.FormatBool(p.DoorToDoor),
		"customs_clearance":       strconv.FormatBool(p.CustomsClearance),
		"insurance_required":      strconv.FormatBool(p.InsuranceRequired),
		"declared_value":          p.DeclaredValue.StringFixed(2),
	}

	// encoding/json writes map keys in sorted order.
	payload, _ := json.Marshal(normalized)
	sum := sha256.Sum256(payload)
	return hex.EncodeToString(sum[:])
}

func normalizeText(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
