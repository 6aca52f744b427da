package ports

import (
	"context"

	"freight/internal/core/domain/model/kernel"
	"freight/internal/core/domain/model/quote"
)

// QuoteRepository defines the persistence contract for quote aggregates.
type QuoteRepository interface {
	// Add persists new quotes. Quotes must be valid and not stored yet.
	Add(ctx context.Context, quotes ...*quote.Quote) error

	// Get retrieves a quote by its identifier.
	Get(ctx context.Context, id kernel.UUID) (*quote.Quote, error)

	// ListByShipment returns all quotes of a shipment, cheapest first.
	ListByShipment(ctx context.Context, shipmentID kernel.UUID) ([]*quote.Quote, error)

	// Update stores the selection state of existing quotes.
	Update(ctx context.Context, quotes ...*quote.Quote) error
}
