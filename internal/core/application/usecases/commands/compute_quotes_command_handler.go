package commands

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"slices"
	"time"

	"freight/internal/core/domain/model/carrier"
	"freight/internal/core/domain/model/kernel"
	"freight/internal/core/domain/model/quote"
	"freight/internal/core/domain/model/shipment"
	"freight/internal/core/domain/services"
	"freight/internal/core/ports"
	"freight/internal/metrics"
	"freight/internal/pkg/sl"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"golang.org/x/sync/errgroup"
)

// DefaultQuoteConcurrency bounds parallel carrier calls when none is configured.
const DefaultQuoteConcurrency = 8

// ErrNoQuotesAvailable is returned when no carrier is eligible for the shipment.
var ErrNoQuotesAvailable = errors.New("no quotes available")

// QuotesComputedEvent is published once the quotes of a shipment are persisted.
type QuotesComputedEvent struct {
	ShipmentID string    `json:"shipment_id"`
	QuoteCount int       `json:"quote_count"`
	CarrierIDs []string  `json:"carrier_ids"`
	ComputedAt time.Time `json:"computed_at"`
}

// EventName names the event on the wire.
func (QuotesComputedEvent) EventName() string { return "quotes.computed" }

// ComputeQuotesCommandHandler prices a shipment with every eligible carrier.
//
// Carriers are quoted in parallel and independently: an error or panic in one
// carrier is logged and skipped, so a partial result is a normal outcome. The
// only failure surfaced for pricing reasons is ErrNoQuotesAvailable, returned
// when no carrier is eligible at all. Persistence failures are returned as is.
//
// Example:
//
//	handler := NewComputeQuotesCommandHandler(store, factory, uowFactory, publisher, 8, logger)
//	cmd, _ := NewComputeQuotesCommand(s)
//
//	quotes, err := handler.Handle(ctx, cmd)
//	if err != nil {
//	    return fmt.Errorf("quoting failed: %w", err)
//	}
type ComputeQuotesCommandHandler struct {
	store       ports.ConfigurationStore
	strategies  StrategyFactory
	uowFactory  QuoteUoWFactory
	publisher   ports.EventPublisher
	eligibility services.CarrierEligibilityFilter
	concurrency int
	logger      *slog.Logger
	now         func() time.Time
}

// NewComputeQuotesCommandHandler creates the quote orchestrator. A
// concurrency below one uses DefaultQuoteConcurrency.
func NewComputeQuotesCommandHandler(
	store ports.ConfigurationStore,
	strategies StrategyFactory,
	uowFactory QuoteUoWFactory,
	publisher ports.EventPublisher,
	concurrency int,
	logger *slog.Logger,
) ComputeQuotesCommandHandler {
	if concurrency < 1 {
		concurrency = DefaultQuoteConcurrency
	}
	return ComputeQuotesCommandHandler{
		store:       store,
		strategies:  strategies,
		uowFactory:  uowFactory,
		publisher:   publisher,
		eligibility: services.NewCarrierEligibilityFilter(),
		concurrency: concurrency,
		logger:      logger.With("component", "compute_quotes"),
		now:         time.Now,
	}
}

// Handle computes, persists and returns the quotes of the shipment, cheapest first.
func (h *ComputeQuotesCommandHandler) Handle(ctx context.Context, cmd ComputeQuotesCommand) ([]*quote.Quote, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}
	s := cmd.Shipment()

	ctx, span := otel.Tracer("commands").Start(ctx, "ComputeQuotes")
	defer span.End()
	span.SetAttributes(attribute.String("shipment_id", s.ID().String()))

	active, err := h.store.ActiveCarriers(ctx)
	if err != nil {
		span.RecordError(err)
		return nil, fmt.Errorf("load carriers: %w", err)
	}

	eligible := h.eligibility.Filter(active, s)
	span.SetAttributes(attribute.Int("carriers.eligible", len(eligible)))
	if len(eligible) == 0 {
		h.logger.InfoContext(ctx, "no eligible carrier", "shipment_id", s.ID().String(), "active", len(active))
		span.SetStatus(codes.Error, ErrNoQuotesAvailable.Error())
		return nil, ErrNoQuotesAvailable
	}

	perCarrier := make([][]quote.RawQuote, len(eligible))
	var g errgroup.Group
	g.SetLimit(h.concurrency)
	for i, c := range eligible {
		g.Go(func() error {
			perCarrier[i] = h.quoteCarrier(ctx, c, s)
			return nil
		})
	}
	_ = g.Wait()

	quotes := make([]*quote.Quote, 0, len(eligible))
	for _, raws := range perCarrier {
		for _, raw := range raws {
			q, qErr := quote.NewQuote(kernel.NewUUID(), s.ID(), raw)
			if qErr != nil {
				h.logger.WarnContext(ctx, "carrier returned an invalid quote",
					"carrier_id", raw.CarrierID.String(), sl.Err(qErr))
				continue
			}
			quotes = append(quotes, q)
		}
	}
	slices.SortStableFunc(quotes, func(a, b *quote.Quote) int {
		return a.Raw().Price.Cmp(b.Raw().Price)
	})

	if err = h.persist(ctx, quotes); err != nil {
		span.RecordError(err)
		return nil, fmt.Errorf("persist quotes: %w", err)
	}

	metrics.QuotesComputedTotal.Add(float64(len(quotes)))
	span.SetAttributes(attribute.Int("quotes", len(quotes)))
	h.logger.InfoContext(ctx, "quotes computed",
		"shipment_id", s.ID().String(), "carriers", len(eligible), "quotes", len(quotes), sl.Traced(ctx))

	h.publish(ctx, s, quotes)
	return quotes, nil
}

// quoteCarrier never fails: errors and panics are logged and yield no quotes.
func (h *ComputeQuotesCommandHandler) quoteCarrier(
	ctx context.Context,
	c *carrier.Carrier,
	s *shipment.Shipment,
) (quotes []quote.RawQuote) {
	kind := c.Kind().String()
	logger := h.logger.With("carrier_id", c.ID().String(), "kind", kind)

	ctx, span := otel.Tracer("commands").Start(ctx, "QuoteCarrier")
	defer span.End()
	span.SetAttributes(attribute.String("carrier_id", c.ID().String()), attribute.String("kind", kind))

	start := time.Now()
	defer func() {
		metrics.CarrierQuoteDuration.WithLabelValues(kind).Observe(time.Since(start).Seconds())
	}()

	defer func() {
		if r := recover(); r != nil {
			metrics.CarrierFailuresTotal.WithLabelValues(kind).Inc()
			span.SetStatus(codes.Error, "panic")
			logger.ErrorContext(ctx, "carrier quoting panicked", "panic", fmt.Sprint(r))
			quotes = nil
		}
	}()

	strategy := h.strategies.Make(c)
	result, err := strategy.GetQuotes(ctx, s)
	if err != nil {
		metrics.CarrierFailuresTotal.WithLabelValues(kind).Inc()
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		logger.WarnContext(ctx, "carrier quoting failed, skipping carrier", sl.Err(err))
		return nil
	}

	span.SetAttributes(attribute.Int("quotes", len(result)))
	logger.DebugContext(ctx, "carrier quoted", "quotes", len(result))
	return result
}

func (h *ComputeQuotesCommandHandler) persist(ctx context.Context, quotes []*quote.Quote) error {
	if len(quotes) == 0 {
		return nil
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err := uow.QuoteRepository().Add(ctx, quotes...); err != nil {
		return err
	}

	return uow.Commit(ctx)
}

func (h *ComputeQuotesCommandHandler) publish(ctx context.Context, s *shipment.Shipment, quotes []*quote.Quote) {
	if len(quotes) == 0 || h.publisher == nil {
		return
	}

	carrierIDs := make([]string, 0, len(quotes))
	for _, q := range quotes {
		carrierIDs = append(carrierIDs, q.CarrierID().String())
	}
	slices.Sort(carrierIDs)

	event := QuotesComputedEvent{
		ShipmentID: s.ID().String(),
		QuoteCount: len(quotes),
		CarrierIDs: slices.Compact(carrierIDs),
		ComputedAt: h.now().UTC(),
	}
	if err := h.publisher.Publish(ctx, event.ShipmentID, event); err != nil {
		h.logger.WarnContext(ctx, "failed to publish quotes event", "shipment_id", event.ShipmentID, sl.Err(err))
	}
}
