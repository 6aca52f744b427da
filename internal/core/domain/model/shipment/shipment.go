package shipment

import (
	"errors"
	"slices"
	"strings"

	"freight/internal/core/domain/model/kernel"
	"freight/internal/pkg/errs"
	"freight/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

const cubicCentimetersPerCubicMeter = 1_000_000

// MaxTotalWeight is the heaviest accepted shipment in kilograms.
const MaxTotalWeight = 1_000_000

var (
	// ErrShipmentIsNotConstructed is returned when using an improperly initialized Shipment.
	ErrShipmentIsNotConstructed = errors.New("Shipment must be created via NewShipment constructor")
	// ErrDeclaredValueIsRequired is returned when insurance is requested without a positive declared value.
	ErrDeclaredValueIsRequired = errs.NewValueIsRequiredError("declared value")
)

// Shipment is a request to move cargo between two addresses.
//
// Business rules:
//   - Origin and destination must be constructed addresses
//   - Total weight is in kilograms and must be within (0, MaxTotalWeight]
//   - An empty transport mode means "any mode the carrier supports"
//   - Insurance can only be requested together with a positive declared value
//
// Example:
//
//	origin, _ := shipment.NewAddress("KZ", "Almaty", "050000")
//	destination, _ := shipment.NewAddress("Россия", "Moscow", "")
//	item, _ := shipment.NewItem(120, 80, 100, 2)
//	s, err := shipment.NewShipment(kernel.NewUUID(), origin, destination, 350, []shipment.Item{item})
//	if err != nil {
//	    return err
//	}
//	_ = s.RequestTransportMode(kernel.TransportModeRoad)
//	_ = s.RequestInsurance(decimal.NewFromInt(12000))
type Shipment struct {
	id                kernel.UUID
	origin            Address
	destination       Address
	totalWeight       float64
	items             []Item
	transportMode     kernel.TransportMode
	insuranceRequired bool
	declaredValue     decimal.Decimal
	customsClearance  bool
	doorToDoor        bool
	currency          string
	guard             guard.ConstructorGuard
}

// NewShipment creates a shipment without optional services or a mode preference.
func NewShipment(
	id kernel.UUID,
	origin, destination Address,
	totalWeight float64,
	items []Item,
) (*Shipment, error) {
	s := &Shipment{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		s.setID(id),
		s.setOrigin(origin),
		s.setDestination(destination),
		s.setTotalWeight(totalWeight),
		s.setItems(items),
	); err != nil {
		return nil, err
	}

	return s, nil
}

// Validate checks that the shipment was created via NewShipment.
func (s *Shipment) Validate() error {
	if s == nil {
		return ErrShipmentIsNotConstructed
	}
	return s.guard.Validate(ErrShipmentIsNotConstructed)
}

func (s *Shipment) ID() kernel.UUID      { return s.id }
func (s *Shipment) Origin() Address      { return s.origin }
func (s *Shipment) Destination() Address { return s.destination }

// TotalWeight returns the actual weight in kilograms.
func (s *Shipment) TotalWeight() float64 { return s.totalWeight }

// Items returns a copy of the shipment items.
func (s *Shipment) Items() []Item { return slices.Clone(s.items) }

// TransportMode returns the requested mode, or "" when any mode is acceptable.
func (s *Shipment) TransportMode() kernel.TransportMode { return s.transportMode }

// HasTransportMode reports whether the shipper asked for a specific mode.
func (s *Shipment) HasTransportMode() bool { return s.transportMode != "" }

func (s *Shipment) InsuranceRequired() bool        { return s.insuranceRequired }
func (s *Shipment) DeclaredValue() decimal.Decimal { return s.declaredValue }
func (s *Shipment) CustomsClearance() bool         { return s.customsClearance }
func (s *Shipment) DoorToDoor() bool               { return s.doorToDoor }

// Currency returns the preferred currency of the shipper, possibly empty.
func (s *Shipment) Currency() string { return s.currency }

// Volume returns the total volume of all items in m³.
func (s *Shipment) Volume() float64 {
	var total float64
	for _, item := range s.items {
		total += item.Volume()
	}
	return total / cubicCentimetersPerCubicMeter
}

// RequestTransportMode restricts quoting to one mode.
func (s *Shipment) RequestTransportMode(mode kernel.TransportMode) error {
	if !mode.IsValid() {
		return errs.NewValueIsInvalidError("transport mode " + mode.String())
	}
	s.transportMode = mode
	return nil
}

// RequestInsurance asks carriers to insure the cargo for declaredValue.
func (s *Shipment) RequestInsurance(declaredValue decimal.Decimal) error {
	if !declaredValue.IsPositive() {
		return ErrDeclaredValueIsRequired
	}
	s.insuranceRequired = true
	s.declaredValue = declaredValue
	return nil
}

// RequestCustomsClearance asks carriers to handle customs formalities.
func (s *Shipment) RequestCustomsClearance() { s.customsClearance = true }

// RequestDoorToDoor asks for pickup at and delivery to the door.
func (s *Shipment) RequestDoorToDoor() { s.doorToDoor = true }

// SetCurrency records the preferred currency, upper-cased.
func (s *Shipment) SetCurrency(currency string) {
	s.currency = strings.ToUpper(strings.TrimSpace(currency))
}

func (s *Shipment) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("id", err)
	}
	s.id = id
	return nil
}

func (s *Shipment) setOrigin(origin Address) error {
	if err := origin.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("origin", err)
	}
	s.origin = origin
	return nil
}

func (s *Shipment) setDestination(destination Address) error {
	if err := destination.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("destination", err)
	}
	s.destination = destination
	return nil
}

func (s *Shipment) setTotalWeight(weight float64) error {
	if !(weight > 0 && weight <= MaxTotalWeight) {
		return errs.NewValueIsOutOfRangeError("total weight", weight, "0 (exclusive)", MaxTotalWeight)
	}
	s.totalWeight = weight
	return nil
}

func (s *Shipment) setItems(items []Item) error {
	for _, item := range items {
		if err := item.Validate(); err != nil {
			return err
		}
	}
	s.items = slices.Clone(items)
	return nil
}
