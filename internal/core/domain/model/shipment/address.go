package shipment

import (
	"strings"

	"freight/internal/core/domain/model/kernel"
	"freight/internal/pkg/errs"
	"freight/internal/pkg/guard"
)

// ErrAddressIsNotConstructed is returned when using a zero value Address.
var ErrAddressIsNotConstructed = errs.NewValueIsRequiredError("address must be created via NewAddress")

// Address is an origin or destination of a shipment. The country is always
// kept as an ISO alpha-2 code; city and postal code are optional.
type Address struct {
	country    string
	city       string
	postalCode string
	guard      guard.ConstructorGuard
}

// NewAddress normalizes country names such as "Казахстан" to their ISO code.
func NewAddress(country, city, postalCode string) (Address, error) {
	code := kernel.NormalizeCountry(country)
	if code == "" {
		return Address{}, errs.NewValueIsRequiredError("country")
	}
	return Address{
		country:    code,
		city:       strings.TrimSpace(city),
		postalCode: strings.TrimSpace(postalCode),
		guard:      guard.NewConstructorGuard(),
	}, nil
}

func (a Address) Country() string    { return a.country }
func (a Address) City() string       { return a.city }
func (a Address) PostalCode() string { return a.postalCode }

// Validate checks that the address was created via NewAddress.
func (a Address) Validate() error {
	return a.guard.Validate(ErrAddressIsNotConstructed)
}
