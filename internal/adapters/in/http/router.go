package http

import (
	"net/http"
	"time"

	"freight/internal/metrics"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// RequestValidator plugs go-playground/validator into echo's Context.Validate.
type RequestValidator struct {
	validate *validator.Validate
}

func NewRequestValidator() *RequestValidator {
	return &RequestValidator{validate: validator.New(validator.WithRequiredStructEnabled())}
}

func (v *RequestValidator) Validate(i any) error {
	return v.validate.Struct(i)
}

// NewRouter registers the API, health and metrics routes.
func NewRouter(s *Server) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = NewRequestValidator()

	e.Use(middleware.Recover())
	e.Use(observeRequests)

	e.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "Healthy")
	})
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	api := e.Group("/api/v1")
	api.POST("/quotes", s.ComputeQuotes)
	api.GET("/shipments/:id/quotes", s.GetShipmentQuotes)
	api.POST("/shipments/:id/quotes/select", s.SelectQuote)
	api.GET("/carriers/:id/tracking/:number", s.GetTrackingStatus)
	api.GET("/carriers/:id/terminals/nearest", s.GetNearestTerminal)

	return e
}

func observeRequests(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		start := time.Now()
		err := next(c)
		status := c.Response().Status
		if he, ok := err.(*echo.HTTPError); ok {
			status = he.Code
		}
		metrics.ObserveRequest(time.Since(start), status)
		return err
	}
}
