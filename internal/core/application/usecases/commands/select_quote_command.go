package commands

import (
	"errors"

	"freight/internal/core/domain/model/kernel"
	"freight/internal/pkg/guard"
)

var ErrSelectQuoteCommandIsNotConstructed = errors.New(
	"SelectQuoteCommand must be created via NewSelectQuoteCommand constructor",
)

// SelectQuoteCommand records the quote a shipper accepted for a shipment.
// Any other quote of the same shipment loses its selection.
type SelectQuoteCommand struct { //nolint:recvcheck //using for validation
	shipmentID kernel.UUID
	quoteID    kernel.UUID

	guard guard.ConstructorGuard
}

// NewSelectQuoteCommand creates a selection command.
func NewSelectQuoteCommand(shipmentID, quoteID kernel.UUID) (SelectQuoteCommand, error) {
	cmd := SelectQuoteCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setShipmentID(shipmentID),
		cmd.setQuoteID(quoteID),
	); err != nil {
		return SelectQuoteCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c SelectQuoteCommand) Validate() error {
	return c.guard.Validate(ErrSelectQuoteCommandIsNotConstructed)
}

func (c SelectQuoteCommand) ShipmentID() kernel.UUID { return c.shipmentID }
func (c SelectQuoteCommand) QuoteID() kernel.UUID    { return c.quoteID }

func (c *SelectQuoteCommand) setShipmentID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.shipmentID = id
	return nil
}

func (c *SelectQuoteCommand) setQuoteID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.quoteID = id
	return nil
}
