package carrier

import (
	"errors"
	"maps"
	"slices"
	"strings"

	"freight/internal/core/domain/model/kernel"
	"freight/internal/pkg/errs"
	"freight/internal/pkg/guard"
)

var (
	// ErrCarrierIsNotConstructed is returned when using an improperly initialized Carrier.
	ErrCarrierIsNotConstructed = errors.New("Carrier must be created via NewCarrier constructor")
	// ErrNameIsRequired is returned when creating a carrier without a name.
	ErrNameIsRequired = errs.NewValueIsRequiredError("name")
)

// Carrier is the aggregate root describing one freight carrier offering.
//
// The zero value is invalid; use NewCarrier and the mutators below to build
// an instance. A freshly created carrier is inactive, has an unverified owner,
// supports no transport modes and serves every country.
//
// Example:
//
//	c, err := carrier.NewCarrier(kernel.NewUUID(), companyID, "Steppe Cargo", carrier.KindManual)
//	if err != nil {
//	    return err
//	}
//	c.Activate()
//	c.VerifyCompany()
//	_ = c.SupportTransportModes(kernel.TransportModeRoad, kernel.TransportModeRail)
//	c.SupportCountries("Казахстан", "RU")
type Carrier struct {
	id                kernel.UUID
	companyID         kernel.UUID
	name              string
	kind              Kind
	isActive          bool
	companyVerified   bool
	transportModes    []kernel.TransportMode
	countries         []string
	integrationConfig map[string]string
	guard             guard.ConstructorGuard
}

// NewCarrier creates an inactive carrier of the given integration kind.
func NewCarrier(id, companyID kernel.UUID, name string, kind Kind) (*Carrier, error) {
	c := &Carrier{
		guard:             guard.NewConstructorGuard(),
		integrationConfig: map[string]string{},
	}

	if err := errors.Join(
		c.setID(id),
		c.setCompanyID(companyID),
		c.setName(name),
		c.setKind(kind),
	); err != nil {
		return nil, err
	}

	return c, nil
}

// Validate checks that the carrier was created via NewCarrier.
func (c *Carrier) Validate() error {
	if c == nil {
		return ErrCarrierIsNotConstructed
	}
	return c.guard.Validate(ErrCarrierIsNotConstructed)
}

func (c *Carrier) ID() kernel.UUID        { return c.id }
func (c *Carrier) CompanyID() kernel.UUID { return c.companyID }
func (c *Carrier) Name() string           { return c.name }
func (c *Carrier) Kind() Kind             { return c.kind }
func (c *Carrier) IsActive() bool         { return c.isActive }

// IsCompanyVerified reports whether the owning company passed verification.
func (c *Carrier) IsCompanyVerified() bool { return c.companyVerified }

// TransportModes returns a copy of the supported modes.
func (c *Carrier) TransportModes() []kernel.TransportMode {
	return slices.Clone(c.transportModes)
}

// Countries returns a copy of the supported countries as stored.
func (c *Carrier) Countries() []string {
	return slices.Clone(c.countries)
}

// IntegrationConfig returns a copy of the opaque integration settings.
func (c *Carrier) IntegrationConfig() map[string]string {
	return maps.Clone(c.integrationConfig)
}

// HasIntegrationConfig reports whether any integration setting is present.
func (c *Carrier) HasIntegrationConfig() bool {
	return len(c.integrationConfig) > 0
}

// Activate makes the carrier available for quoting.
func (c *Carrier) Activate() { c.isActive = true }

// Deactivate withdraws the carrier from quoting.
func (c *Carrier) Deactivate() { c.isActive = false }

// VerifyCompany records that the owning company passed verification.
func (c *Carrier) VerifyCompany() { c.companyVerified = true }

// SupportTransportModes replaces the set of supported modes. Duplicates are dropped.
func (c *Carrier) SupportTransportModes(modes ...kernel.TransportMode) error {
	unique := make([]kernel.TransportMode, 0, len(modes))
	for _, m := range modes {
		if !m.IsValid() {
			return errs.NewValueIsInvalidError("transport mode " + m.String())
		}
		if !slices.Contains(unique, m) {
			unique = append(unique, m)
		}
	}
	c.transportModes = unique
	return nil
}

// SupportCountries replaces the set of served countries. Blank entries are ignored.
func (c *Carrier) SupportCountries(countries ...string) {
	kept := make([]string, 0, len(countries))
	for _, country := range countries {
		if strings.TrimSpace(country) != "" {
			kept = append(kept, country)
		}
	}
	c.countries = kept
}

// Configure replaces the opaque integration settings.
func (c *Carrier) Configure(config map[string]string) {
	c.integrationConfig = maps.Clone(config)
	if c.integrationConfig == nil {
		c.integrationConfig = map[string]string{}
	}
}

// SupportsTransportMode reports whether the carrier serves mode.
func (c *Carrier) SupportsTransportMode(mode kernel.TransportMode) bool {
	return slices.Contains(c.transportModes, mode)
}

// SupportsCountry reports whether the carrier serves country. Both the
// stored entries and the argument are normalized to ISO codes first.
func (c *Carrier) SupportsCountry(country string) bool {
	if len(c.countries) == 0 {
		return true
	}
	want := kernel.NormalizeCountry(country)
	for _, supported := range c.countries {
		if strings.TrimSpace(supported) == kernel.AnyCountry {
			return true
		}
		if kernel.NormalizeCountry(supported) == want {
			return true
		}
	}
	return false
}

// SupportsRoute reports whether the carrier serves both countries and,
// when mode is not empty, the transport mode.
func (c *Carrier) SupportsRoute(origin, destination string, mode kernel.TransportMode) bool {
	if mode != "" && !c.SupportsTransportMode(mode) {
		return false
	}
	return c.SupportsCountry(origin) && c.SupportsCountry(destination)
}

func (c *Carrier) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("id", err)
	}
	c.id = id
	return nil
}

func (c *Carrier) setCompanyID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("company id", err)
	}
	c.companyID = id
	return nil
}

func (c *Carrier) setName(name string) error {
	if strings.TrimSpace(name) == "" {
		return ErrNameIsRequired
	}
	c.name = name
	return nil
}

func (c *Carrier) setKind(kind Kind) error {
	parsed, err := ParseKind(string(kind))
	if err != nil {
		return err
	}
	c.kind = parsed
	return nil
}
