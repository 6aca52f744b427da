package carrier

import (
	"strings"

	"freight/internal/pkg/errs"
)

// Kind selects the integration used to price and book a carrier.
type Kind string

const (
	KindManual      Kind = "manual"
	KindMock        Kind = "mock"
	KindDHL         Kind = "dhl"
	KindFedEx       Kind = "fedex"
	KindUPS         Kind = "ups"
	KindPonyExpress Kind = "ponyexpress"
)

// ParseKind accepts any known integration kind regardless of case.
func ParseKind(s string) (Kind, error) {
	k := Kind(strings.ToLower(strings.TrimSpace(s)))
	switch k {
	case KindManual, KindMock, KindDHL, KindFedEx, KindUPS, KindPonyExpress:
		return k, nil
	default:
		return "", errs.NewValueIsInvalidError("carrier kind " + s)
	}
}

// IsExternal reports whether k is served by a named external API.
func (k Kind) IsExternal() bool {
	switch k {
	case KindDHL, KindFedEx, KindUPS, KindPonyExpress:
		return true
	default:
		return false
	}
}

func (k Kind) String() string {
	return string(k)
}
