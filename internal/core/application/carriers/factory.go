package carriers

import (
	"log/slog"

	"freight/internal/core/application/quotecache"
	"freight/internal/core/domain/model/carrier"
	"freight/internal/core/ports"
	"freight/internal/pkg/sl"
)

// Factory selects the Strategy of a carrier from its stored configuration.
//
// Rules:
//   - manual carriers are priced from their rate cards, behind the quote cache
//   - mock carriers and named carriers without integration config use MockStrategy
//   - named carriers with config call their API behind the quote cache and fall back to MockStrategy
type Factory struct {
	store    ports.ConfigurationStore
	clients  ports.CarrierAPIClientFactory
	cache    *quotecache.Cache
	settings Settings
	logger   *slog.Logger
}

// NewFactory creates a Factory. cache may be nil to disable caching.
func NewFactory(
	store ports.ConfigurationStore,
	clients ports.CarrierAPIClientFactory,
	cache *quotecache.Cache,
	settings Settings,
	logger *slog.Logger,
) *Factory {
	return &Factory{
		store:    store,
		clients:  clients,
		cache:    cache,
		settings: settings.withDefaults(),
		logger:   logger,
	}
}

// Make returns the Strategy serving c.
func (f *Factory) Make(c *carrier.Carrier) Strategy {
	mock := NewMockStrategy(c, f.settings)

	if c.Kind() == carrier.KindManual {
		return WithCache(NewManualStrategy(c, f.store, f.settings, f.logger), c, f.cache, f.settings.CacheTTL)
	}
	if !c.Kind().IsExternal() || !c.HasIntegrationConfig() {
		return mock
	}

	client, err := f.clients.Make(c)
	if err != nil {
		f.logger.Warn("carrier api client unavailable, using illustrative pricing",
			"carrier_id", c.ID().String(), "kind", c.Kind().String(), sl.Err(err))
		return mock
	}

	external := NewExternalStrategy(c, client, f.settings, f.logger)
	return WithFallback(WithCache(external, c, f.cache, f.settings.CacheTTL), mock, f.logger)
}
