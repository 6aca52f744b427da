package quote

import (
	"errors"
	"slices"
	"time"

	"freight/internal/core/domain/model/kernel"
	"freight/internal/pkg/errs"
	"freight/internal/pkg/guard"
)

var (
	// ErrQuoteIsNotConstructed is returned when using an improperly initialized Quote.
	ErrQuoteIsNotConstructed = errors.New("Quote must be created via NewQuote or RestoreQuote")
	// ErrQuoteIsExpired is returned when selecting a quote past its validity deadline.
	ErrQuoteIsExpired = errors.New("quote is expired")
)

// Quote is the persisted offer of a carrier for a shipment.
//
// Business rules:
//   - A quote belongs to exactly one shipment and one carrier
//   - The priced content never changes after creation
//   - An expired quote cannot be selected
//
// Example:
//
//	q, err := quote.NewQuote(kernel.NewUUID(), shipmentID, raw)
//	if err != nil {
//	    return err
//	}
//	err = q.Select(time.Now())
type Quote struct {
	id         kernel.UUID
	shipmentID kernel.UUID
	raw        RawQuote
	isSelected bool
	createdAt  time.Time
	guard      guard.ConstructorGuard
}

// NewQuote attaches a raw carrier quote to a shipment.
func NewQuote(id, shipmentID kernel.UUID, raw RawQuote) (*Quote, error) {
	return RestoreQuote(id, shipmentID, raw, false, time.Now().UTC())
}

// RestoreQuote reconstructs a Quote from persistent storage.
func RestoreQuote(id, shipmentID kernel.UUID, raw RawQuote, isSelected bool, createdAt time.Time) (*Quote, error) {
	q := &Quote{
		isSelected: isSelected,
		createdAt:  createdAt,
		guard:      guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		q.setID(id),
		q.setShipmentID(shipmentID),
		q.setRaw(raw),
	); err != nil {
		return nil, err
	}

	return q, nil
}

// Validate checks that the quote was created via NewQuote or RestoreQuote.
func (q *Quote) Validate() error {
	if q == nil {
		return ErrQuoteIsNotConstructed
	}
	return q.guard.Validate(ErrQuoteIsNotConstructed)
}

func (q *Quote) ID() kernel.UUID         { return q.id }
func (q *Quote) ShipmentID() kernel.UUID { return q.shipmentID }
func (q *Quote) CarrierID() kernel.UUID  { return q.raw.CarrierID }
func (q *Quote) IsSelected() bool        { return q.isSelected }
func (q *Quote) CreatedAt() time.Time    { return q.createdAt }

// Raw returns a copy of the priced content.
func (q *Quote) Raw() RawQuote {
	raw := q.raw
	raw.Surcharges = slices.Clone(q.raw.Surcharges)
	raw.ServicesIncluded = slices.Clone(q.raw.ServicesIncluded)
	return raw
}

// IsExpired reports whether the validity deadline passed at now.
func (q *Quote) IsExpired(now time.Time) bool {
	return now.After(q.raw.ValidUntil)
}

// Select marks the quote as chosen by the shipper.
func (q *Quote) Select(now time.Time) error {
	if q.IsExpired(now) {
		return ErrQuoteIsExpired
	}
	q.isSelected = true
	return nil
}

// Deselect clears the selection, used when a sibling quote gets selected.
func (q *Quote) Deselect() {
	q.isSelected = false
}

func (q *Quote) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("id", err)
	}
	q.id = id
	return nil
}

func (q *Quote) setShipmentID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("shipment id", err)
	}
	q.shipmentID = id
	return nil
}

func (q *Quote) setRaw(raw RawQuote) error {
	if err := raw.CarrierID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("carrier id", err)
	}
	if raw.Price.IsNegative() {
		return errs.NewValueIsOutOfRangeError("price", raw.Price.String(), 0, "unbounded")
	}
	q.raw = raw
	q.raw.Surcharges = slices.Clone(raw.Surcharges)
	q.raw.ServicesIncluded = slices.Clone(raw.ServicesIncluded)
	return nil
}
