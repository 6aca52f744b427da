package queries

import (
	"context"

	"freight/internal/core/domain/model/pricing"
	"freight/internal/core/ports"
	"freight/internal/pkg/errs"
)

// GetNearestTerminalQueryHandler picks the closest active terminal by great-circle distance.
type GetNearestTerminalQueryHandler struct {
	store ports.ConfigurationStore
}

// NewGetNearestTerminalQueryHandler creates a terminal lookup handler.
func NewGetNearestTerminalQueryHandler(store ports.ConfigurationStore) GetNearestTerminalQueryHandler {
	return GetNearestTerminalQueryHandler{store: store}
}

// Handle returns the nearest terminal and its distance in kilometers.
// A carrier without active terminals yields errs.ObjectNotFoundError.
func (h GetNearestTerminalQueryHandler) Handle(
	ctx context.Context,
	query GetNearestTerminalQuery,
) (*pricing.Terminal, float64, error) {
	if err := query.Validate(); err != nil {
		return nil, 0, err
	}

	terminals, err := h.store.Terminals(ctx, query.CarrierID())
	if err != nil {
		return nil, 0, err
	}

	nearest, distance, ok := pricing.Nearest(terminals, query.Latitude(), query.Longitude())
	if !ok {
		return nil, 0, errs.NewObjectNotFoundError("terminal", query.CarrierID().String())
	}
	return &nearest, distance, nil
}
