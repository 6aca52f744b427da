package commands

import (
	"errors"

	"freight/internal/core/domain/model/shipment"
	"freight/internal/pkg/guard"
)

var ErrComputeQuotesCommandIsNotConstructed = errors.New(
	"ComputeQuotesCommand must be created via NewComputeQuotesCommand constructor",
)

// ComputeQuotesCommand asks every eligible carrier to price a shipment.
//
// Example:
//
//	cmd, err := NewComputeQuotesCommand(s)
//	if err != nil {
//	    return fmt.Errorf("invalid shipment: %w", err)
//	}
//
//	quotes, err := handler.Handle(ctx, cmd)
//	if errors.Is(err, ErrNoQuotesAvailable) {
//	    // no carrier serves the route
//	}
type ComputeQuotesCommand struct { //nolint:recvcheck //using for validation
	shipment *shipment.Shipment

	guard guard.ConstructorGuard
}

// NewComputeQuotesCommand creates a command for a constructed shipment.
func NewComputeQuotesCommand(s *shipment.Shipment) (ComputeQuotesCommand, error) {
	if err := s.Validate(); err != nil {
		return ComputeQuotesCommand{}, err
	}

	return ComputeQuotesCommand{
		shipment: s,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c ComputeQuotesCommand) Validate() error {
	return c.guard.Validate(ErrComputeQuotesCommandIsNotConstructed)
}

// Shipment returns the shipment to price.
func (c ComputeQuotesCommand) Shipment() *shipment.Shipment {
	return c.shipment
}
