package queries

import (
	"context"

	"freight/internal/core/application/carriers"
	"freight/internal/core/domain/model/carrier"
	"freight/internal/core/ports"
)

// StrategyFactory picks the pricing strategy of a carrier.
type StrategyFactory interface {
	Make(c *carrier.Carrier) carriers.Strategy
}

// GetTrackingStatusQueryHandler resolves the carrier and asks its strategy
// for the tracking status. Named carriers whose API fails answer with
// illustrative tracking data through their fallback.
type GetTrackingStatusQueryHandler struct {
	store      ports.ConfigurationStore
	strategies StrategyFactory
}

// NewGetTrackingStatusQueryHandler creates a tracking handler.
func NewGetTrackingStatusQueryHandler(store ports.ConfigurationStore, strategies StrategyFactory) GetTrackingStatusQueryHandler {
	return GetTrackingStatusQueryHandler{store: store, strategies: strategies}
}

// Handle returns the tracking status. An unknown carrier yields errs.ObjectNotFoundError.
func (h GetTrackingStatusQueryHandler) Handle(ctx context.Context, query GetTrackingStatusQuery) (carrier.TrackingStatus, error) {
	if err := query.Validate(); err != nil {
		return carrier.TrackingStatus{}, err
	}

	c, err := h.store.Carrier(ctx, query.CarrierID())
	if err != nil {
		return carrier.TrackingStatus{}, err
	}

	return h.strategies.Make(c).GetTrackingStatus(ctx, query.TrackingNumber())
}
