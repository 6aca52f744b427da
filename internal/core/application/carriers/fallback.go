package carriers

import (
	"context"
	"log/slog"

	"freight/internal/core/domain/model/carrier"
	"freight/internal/core/domain/model/quote"
	"freight/internal/core/domain/model/shipment"
	"freight/internal/metrics"
	"freight/internal/pkg/sl"
)

type fallbackStrategy struct {
	primary  Strategy
	fallback Strategy
	kind     string
	logger   *slog.Logger
}

// WithFallback answers every failed call of primary with fallback, so that
// integration failures reach the caller as illustrative data instead of errors.
//
// Example:
//
//	s := carriers.WithFallback(external, carriers.NewMockStrategy(c, settings), logger)
func WithFallback(primary, fallback Strategy, logger *slog.Logger) Strategy {
	kind := "unknown"
	if bound, ok := primary.(carrierBound); ok {
		kind = bound.Carrier().Kind().String()
	}
	return &fallbackStrategy{
		primary:  primary,
		fallback: fallback,
		kind:     kind,
		logger:   logger.With("component", "carrier_fallback", "kind", kind),
	}
}

func (f *fallbackStrategy) Carrier() *carrier.Carrier {
	if bound, ok := f.primary.(carrierBound); ok {
		return bound.Carrier()
	}
	return nil
}

func (f *fallbackStrategy) BillableWeight(ctx context.Context, s *shipment.Shipment) (float64, error) {
	return billableWeight(ctx, f.primary, s)
}

func (f *fallbackStrategy) GetQuotes(ctx context.Context, s *shipment.Shipment) ([]quote.RawQuote, error) {
	quotes, err := f.primary.GetQuotes(ctx, s)
	if err == nil {
		return quotes, nil
	}
	f.recovered(ctx, "get quotes", err)
	return f.fallback.GetQuotes(ctx, s)
}

func (f *fallbackStrategy) CreateOrder(ctx context.Context, req carrier.OrderRequest) (carrier.OrderResult, error) {
	result, err := f.primary.CreateOrder(ctx, req)
	if err == nil {
		return result, nil
	}
	f.recovered(ctx, "create order", err)
	return f.fallback.CreateOrder(ctx, req)
}

func (f *fallbackStrategy) GetTrackingStatus(ctx context.Context, trackingNumber string) (carrier.TrackingStatus, error) {
	status, err := f.primary.GetTrackingStatus(ctx, trackingNumber)
	if err == nil {
		return status, nil
	}
	f.recovered(ctx, "get tracking status", err)
	return f.fallback.GetTrackingStatus(ctx, trackingNumber)
}

func (f *fallbackStrategy) CancelOrder(ctx context.Context, orderNumber string) (bool, error) {
	ok, err := f.primary.CancelOrder(ctx, orderNumber)
	if err == nil {
		return ok, nil
	}
	f.recovered(ctx, "cancel order", err)
	return f.fallback.CancelOrder(ctx, orderNumber)
}

func (f *fallbackStrategy) GetShippingLabel(ctx context.Context, req carrier.OrderRequest) (string, error) {
	label, err := f.primary.GetShippingLabel(ctx, req)
	if err == nil {
		return label, nil
	}
	f.recovered(ctx, "get shipping label", err)
	return f.fallback.GetShippingLabel(ctx, req)
}

func (f *fallbackStrategy) recovered(ctx context.Context, op string, err error) {
	metrics.CarrierFallbacksTotal.WithLabelValues(f.kind).Inc()
	f.logger.WarnContext(ctx, "carrier integration failed, using illustrative pricing",
		"operation", op, sl.Err(err), sl.Traced(ctx))
}
