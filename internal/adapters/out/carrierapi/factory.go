package carrierapi

import (
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"freight/internal/core/domain/model/carrier"
	"freight/internal/core/ports"

	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

// Integration config keys.
const (
	KeyBaseURL       = "base_url"
	KeyAPIKey        = "api_key"
	KeyAPISecret     = "api_secret"
	KeyAccountNumber = "account_number"
)

var defaultBaseURLs = map[carrier.Kind]string{
	carrier.KindDHL: "https://api-mock.dhl.com/mydhlapi",
}

// Config is the parsed integration config of one carrier.
type Config struct {
	BaseURL       string
	APIKey        string
	APISecret     string
	AccountNumber string
}

// ParseConfig reads the integration config of c. A kind without a default
// endpoint needs an explicit base_url, and every kind needs an api_key.
func ParseConfig(c *carrier.Carrier) (Config, error) {
	raw := c.IntegrationConfig()
	cfg := Config{
		BaseURL:       strings.TrimSpace(raw[KeyBaseURL]),
		APIKey:        raw[KeyAPIKey],
		APISecret:     raw[KeyAPISecret],
		AccountNumber: raw[KeyAccountNumber],
	}
	if cfg.BaseURL == "" {
		cfg.BaseURL = defaultBaseURLs[c.Kind()]
	}

	var errs []error
	if cfg.BaseURL == "" {
		errs = append(errs, fmt.Errorf("%s is required for %s", KeyBaseURL, c.Kind()))
	} else if u, err := url.Parse(cfg.BaseURL); err != nil || u.Scheme == "" || u.Host == "" {
		errs = append(errs, fmt.Errorf("%s %q is not an absolute url", KeyBaseURL, cfg.BaseURL))
	}
	if cfg.APIKey == "" {
		errs = append(errs, fmt.Errorf("%s is required", KeyAPIKey))
	}
	return cfg, errors.Join(errs...)
}

// Factory implements ports.CarrierAPIClientFactory. All clients share one
// traced HTTP transport.
type Factory struct {
	httpClient *http.Client
}

// NewFactory creates a Factory whose clients give up after timeout.
func NewFactory(timeout time.Duration) *Factory {
	return &Factory{
		httpClient: &http.Client{
			Timeout:   timeout,
			Transport: otelhttp.NewTransport(http.DefaultTransport),
		},
	}
}

// Make builds the client of a named carrier.
func (f *Factory) Make(c *carrier.Carrier) (ports.CarrierAPIClient, error) {
	if !c.Kind().IsExternal() {
		return nil, fmt.Errorf("%w: kind %s has no api client", ports.ErrIntegrationFailure, c.Kind())
	}
	cfg, err := ParseConfig(c)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ports.ErrIntegrationFailure, err)
	}
	return NewClient(cfg, f.httpClient), nil
}
