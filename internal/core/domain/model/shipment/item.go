package shipment

import (
	"errors"

	"freight/internal/pkg/errs"
	"freight/internal/pkg/guard"
)

// Upper bounds of a single item. They keep volumetric weight and price
// arithmetic finite.
const (
	MaxDimension = 10_000
	MaxQuantity  = 100_000
)

// ErrItemIsNotConstructed is returned when using a zero value Item.
var ErrItemIsNotConstructed = errs.NewValueIsRequiredError("item must be created via NewItem")

// Item is one kind of package inside a shipment, measured in centimeters.
type Item struct {
	length   float64
	width    float64
	height   float64
	quantity int
	guard    guard.ConstructorGuard
}

// NewItem validates that all dimensions are within [0, MaxDimension] and
// quantity is within [1, MaxQuantity].
func NewItem(length, width, height float64, quantity int) (Item, error) {
	if err := errors.Join(
		dimensionInRange("length", length),
		dimensionInRange("width", width),
		dimensionInRange("height", height),
	); err != nil {
		return Item{}, err
	}
	if quantity <= 0 || quantity > MaxQuantity {
		return Item{}, errs.NewValueIsOutOfRangeError("quantity", quantity, 1, MaxQuantity)
	}
	return Item{
		length:   length,
		width:    width,
		height:   height,
		quantity: quantity,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

func (i Item) Length() float64 { return i.length }
func (i Item) Width() float64  { return i.width }
func (i Item) Height() float64 { return i.height }
func (i Item) Quantity() int   { return i.quantity }

// Volume returns the total volume of all units in cm³.
func (i Item) Volume() float64 {
	return i.length * i.width * i.height * float64(i.quantity)
}

// Validate checks that the item was created via NewItem.
func (i Item) Validate() error {
	return i.guard.Validate(ErrItemIsNotConstructed)
}

func dimensionInRange(param string, v float64) error {
	// NaN fails both comparisons.
	if !(v >= 0 && v <= MaxDimension) {
		return errs.NewValueIsOutOfRangeError(param, v, 0, MaxDimension)
	}
	return nil
}
