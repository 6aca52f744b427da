package kernel

import (
	"strings"

	"freight/internal/pkg/errs"
)

// TransportMode is the way cargo travels between origin and destination.
type TransportMode string

const (
	TransportModeRoad TransportMode = "road"
	TransportModeRail TransportMode = "rail"
	TransportModeAir  TransportMode = "air"
	TransportModeSea  TransportMode = "sea"
)

// AllTransportModes lists every known mode in a stable order.
func AllTransportModes() []TransportMode {
	return []TransportMode{TransportModeRoad, TransportModeRail, TransportModeAir, TransportModeSea}
}

// ParseTransportMode accepts any known mode regardless of case and surrounding spaces.
func ParseTransportMode(s string) (TransportMode, error) {
	mode := TransportMode(strings.ToLower(strings.TrimSpace(s)))
	if !mode.IsValid() {
		return "", errs.NewValueIsInvalidError("transport mode " + s)
	}
	return mode, nil
}

// IsValid reports whether m is one of the known modes.
func (m TransportMode) IsValid() bool {
	switch m {
	case TransportModeRoad, TransportModeRail, TransportModeAir, TransportModeSea:
		return true
	default:
		return false
	}
}

func (m TransportMode) String() string {
	return string(m)
}
