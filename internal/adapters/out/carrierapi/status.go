package carrierapi

import (
	"strings"

	"freight/internal/core/domain/model/carrier"
)

var statusCodes = map[string]string{
	"PU": carrier.StatusPickedUp,
	"PL": carrier.StatusInTransit,
	"AR": carrier.StatusInTransit,
	"DF": carrier.StatusInTransit,
	"CC": carrier.StatusCustoms,
	"OH": carrier.StatusOutForDelivery,
	"OK": carrier.StatusDelivered,
}

// MapStatus converts a carrier event code into the tracking vocabulary.
// Unknown codes are reported as in transit.
func MapStatus(code string) string {
	if status, ok := statusCodes[strings.ToUpper(strings.TrimSpace(code))]; ok {
		return status
	}
	return carrier.StatusInTransit
}
