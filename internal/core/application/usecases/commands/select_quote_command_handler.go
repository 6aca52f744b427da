package commands

import (
	"context"
	"time"

	"freight/internal/core/domain/model/quote"
	"freight/internal/pkg/errs"
)

// SelectQuoteCommandHandler marks one quote of a shipment as selected and
// clears the others in one transaction.
type SelectQuoteCommandHandler struct {
	uowFactory QuoteUoWFactory
	now        func() time.Time
}

// NewSelectQuoteCommandHandler creates a handler for quote selection.
func NewSelectQuoteCommandHandler(uowFactory QuoteUoWFactory) SelectQuoteCommandHandler {
	return SelectQuoteCommandHandler{
		uowFactory: uowFactory,
		now:        time.Now,
	}
}

// Handle selects the quote. An expired quote returns quote.ErrQuoteIsExpired
// and a quote of another shipment is reported as not found.
func (h *SelectQuoteCommandHandler) Handle(ctx context.Context, cmd SelectQuoteCommand) (*quote.Quote, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	repo := uow.QuoteRepository()
	quotes, err := repo.ListByShipment(ctx, cmd.ShipmentID())
	if err != nil {
		return nil, err
	}

	var selected *quote.Quote
	for _, q := range quotes {
		if q.ID().IsEqual(cmd.QuoteID()) {
			selected = q
			continue
		}
		q.Deselect()
	}
	if selected == nil {
		return nil, errs.NewObjectNotFoundError("quote", cmd.QuoteID().String())
	}
	if err = selected.Select(h.now()); err != nil {
		return nil, err
	}

	if err = repo.Update(ctx, quotes...); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return selected, nil
}
