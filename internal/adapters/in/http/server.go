package http

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"

	"freight/internal/core/application/usecases/commands"
	"freight/internal/core/application/usecases/queries"
	"freight/internal/core/domain/model/carrier"
	"freight/internal/core/domain/model/kernel"
	"freight/internal/core/domain/model/pricing"
	"freight/internal/core/domain/model/quote"
	"freight/internal/pkg/errs"
	"freight/internal/pkg/sl"

	"github.com/labstack/echo/v4"
)

type QuoteComputer interface {
	Handle(ctx context.Context, cmd commands.ComputeQuotesCommand) ([]*quote.Quote, error)
}

type QuoteSelector interface {
	Handle(ctx context.Context, cmd commands.SelectQuoteCommand) (*quote.Quote, error)
}

type ShipmentQuotesReader interface {
	Handle(ctx context.Context, query queries.GetShipmentQuotesQuery) ([]queries.GetShipmentQuotesQueryResponse, error)
}

type TrackingReader interface {
	Handle(ctx context.Context, query queries.GetTrackingStatusQuery) (carrier.TrackingStatus, error)
}

type TerminalLocator interface {
	Handle(ctx context.Context, query queries.GetNearestTerminalQuery) (*pricing.Terminal, float64, error)
}

// Server handles HTTP requests by delegating to application use cases.
type Server struct {
	// Command handlers
	computeQuotesHandler QuoteComputer
	selectQuoteHandler   QuoteSelector

	// Query handlers
	shipmentQuotesHandler  ShipmentQuotesReader
	trackingStatusHandler  TrackingReader
	nearestTerminalHandler TerminalLocator

	logger *slog.Logger
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(
	computeQuotesHandler QuoteComputer,
	selectQuoteHandler QuoteSelector,
	shipmentQuotesHandler ShipmentQuotesReader,
	trackingStatusHandler TrackingReader,
	nearestTerminalHandler TerminalLocator,
	logger *slog.Logger,
) *Server {
	return &Server{
		computeQuotesHandler:   computeQuotesHandler,
		selectQuoteHandler:     selectQuoteHandler,
		shipmentQuotesHandler:  shipmentQuotesHandler,
		trackingStatusHandler:  trackingStatusHandler,
		nearestTerminalHandler: nearestTerminalHandler,
		logger:                 logger.With("component", "http_server"),
	}
}

// ComputeQuotes handles POST /api/v1/quotes - prices a shipment with every eligible carrier.
func (s *Server) ComputeQuotes(ctx echo.Context) error {
	var req ShipmentRequest
	if err := bindAndValidate(ctx, &req); err != nil {
		return badRequest(ctx, err.Error())
	}

	sh, err := req.ToShipment()
	if err != nil {
		return badRequest(ctx, "Invalid shipment: "+err.Error())
	}

	cmd, err := commands.NewComputeQuotesCommand(sh)
	if err != nil {
		return badRequest(ctx, "Invalid shipment: "+err.Error())
	}

	result, err := s.computeQuotesHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		if errors.Is(err, commands.ErrNoQuotesAvailable) {
			return ctx.JSON(http.StatusNotFound, Error{
				Code:    http.StatusNotFound,
				Message: "No carrier can quote this shipment",
			})
		}
		return s.internalError(ctx, "Failed to compute quotes", err)
	}

	response := ComputeQuotesResponse{
		ShipmentID: sh.ID(),
		Quotes:     make([]QuoteResponse, len(result)),
	}
	for i, q := range result {
		response.Quotes[i] = toQuoteResponse(q)
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetShipmentQuotes handles GET /api/v1/shipments/:id/quotes - lists stored quotes cheapest first.
func (s *Server) GetShipmentQuotes(ctx echo.Context) error {
	shipmentID, err := pathID(ctx, "id")
	if err != nil {
		return badRequest(ctx, "Invalid shipment id")
	}

	query, err := queries.NewGetShipmentQuotesQuery(shipmentID)
	if err != nil {
		return badRequest(ctx, "Invalid shipment id")
	}

	rows, err := s.shipmentQuotesHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.internalError(ctx, "Failed to retrieve quotes", err)
	}

	response := make([]ShipmentQuoteResponse, len(rows))
	for i, row := range rows {
		response[i] = toShipmentQuoteResponse(row)
	}

	return ctx.JSON(http.StatusOK, response)
}

// SelectQuote handles POST /api/v1/shipments/:id/quotes/select - marks one quote as chosen.
func (s *Server) SelectQuote(ctx echo.Context) error {
	shipmentID, err := pathID(ctx, "id")
	if err != nil {
		return badRequest(ctx, "Invalid shipment id")
	}

	var req SelectQuoteRequest
	if err = bindAndValidate(ctx, &req); err != nil {
		return badRequest(ctx, err.Error())
	}

	quoteID, err := kernel.UUIDFromString(req.QuoteID)
	if err != nil {
		return badRequest(ctx, "Invalid quote id")
	}

	cmd, err := commands.NewSelectQuoteCommand(shipmentID, quoteID)
	if err != nil {
		return badRequest(ctx, "Invalid selection: "+err.Error())
	}

	selected, err := s.selectQuoteHandler.Handle(ctx.Request().Context(), cmd)
	switch {
	case err == nil:
		return ctx.JSON(http.StatusOK, toQuoteResponse(selected))
	case errors.Is(err, errs.ErrObjectNotFound):
		return ctx.JSON(http.StatusNotFound, Error{Code: http.StatusNotFound, Message: "Quote not found"})
	case errors.Is(err, quote.ErrQuoteIsExpired):
		return badRequest(ctx, "Quote has expired")
	default:
		return s.internalError(ctx, "Failed to select quote", err)
	}
}

// GetTrackingStatus handles GET /api/v1/carriers/:id/tracking/:number.
func (s *Server) GetTrackingStatus(ctx echo.Context) error {
	carrierID, err := pathID(ctx, "id")
	if err != nil {
		return badRequest(ctx, "Invalid carrier id")
	}

	query, err := queries.NewGetTrackingStatusQuery(carrierID, ctx.Param("number"))
	if err != nil {
		return badRequest(ctx, "Invalid tracking request: "+err.Error())
	}

	status, err := s.trackingStatusHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		if errors.Is(err, errs.ErrObjectNotFound) {
			return ctx.JSON(http.StatusNotFound, Error{Code: http.StatusNotFound, Message: "Carrier not found"})
		}
		s.logger.WarnContext(ctx.Request().Context(), "tracking lookup failed",
			"carrier_id", carrierID.String(), sl.Err(err))
		return ctx.JSON(http.StatusBadGateway, Error{
			Code:    http.StatusBadGateway,
			Message: "Carrier tracking is unavailable",
		})
	}

	return ctx.JSON(http.StatusOK, TrackingResponse{CarrierID: carrierID, TrackingStatus: status})
}

// GetNearestTerminal handles GET /api/v1/carriers/:id/terminals/nearest?lat=..&lng=..
func (s *Server) GetNearestTerminal(ctx echo.Context) error {
	carrierID, err := pathID(ctx, "id")
	if err != nil {
		return badRequest(ctx, "Invalid carrier id")
	}

	lat, latErr := strconv.ParseFloat(ctx.QueryParam("lat"), 64)
	lng, lngErr := strconv.ParseFloat(ctx.QueryParam("lng"), 64)
	if latErr != nil || lngErr != nil {
		return badRequest(ctx, "lat and lng query parameters are required")
	}

	query, err := queries.NewGetNearestTerminalQuery(carrierID, lat, lng)
	if err != nil {
		return badRequest(ctx, "Invalid coordinates: "+err.Error())
	}

	terminal, distance, err := s.nearestTerminalHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		if errors.Is(err, errs.ErrObjectNotFound) {
			return ctx.JSON(http.StatusNotFound, Error{Code: http.StatusNotFound, Message: "No active terminal"})
		}
		return s.internalError(ctx, "Failed to find terminal", err)
	}

	return ctx.JSON(http.StatusOK, toTerminalResponse(terminal, distance))
}

func (s *Server) internalError(ctx echo.Context, message string, err error) error {
	s.logger.ErrorContext(ctx.Request().Context(), message,
		sl.Err(err), sl.Traced(ctx.Request().Context()))
	return ctx.JSON(http.StatusInternalServerError, Error{
		Code:    http.StatusInternalServerError,
		Message: message,
	})
}

// bindAndValidate returns an error whose message is safe to show to the client.
func bindAndValidate(ctx echo.Context, target any) error {
	if err := ctx.Bind(target); err != nil {
		return errInvalidBody
	}
	if err := ctx.Validate(target); err != nil {
		return fmt.Errorf("Invalid request: %w", err)
	}
	return nil
}

func badRequest(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusBadRequest, Error{Code: http.StatusBadRequest, Message: message})
}

func pathID(ctx echo.Context, name string) (kernel.UUID, error) {
	id, err := kernel.UUIDFromString(ctx.Param(name))
	if err != nil {
		return kernel.UUID{}, errors.Join(errInvalidID, err)
	}
	return id, nil
}
