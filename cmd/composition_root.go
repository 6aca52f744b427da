package cmd

import (
	"log/slog"

	httpadapter "freight/internal/adapters/in/http"
	"freight/internal/adapters/out/carrierapi"
	"freight/internal/adapters/out/kafka"
	"freight/internal/adapters/out/memcache"
	"freight/internal/adapters/out/postgres"
	"freight/internal/adapters/out/postgres/cacherepo"
	"freight/internal/adapters/out/postgres/configstore"
	"freight/internal/core/application/carriers"
	"freight/internal/core/application/quotecache"
	"freight/internal/core/application/usecases/commands"
	"freight/internal/core/application/usecases/queries"
	"freight/internal/core/ports"
	"freight/internal/jobs"

	"gorm.io/gorm"
)

type CompositionRoot struct {
	config     Config
	gormDB     *gorm.DB
	uowFactory *postgres.GormUnitOfWorkFactory
	store      *configstore.GormConfigurationStore
	cache      *quotecache.Cache
	strategies *carriers.Factory
	publisher  ports.EventPublisher
	producer   *kafka.Producer
	logger     *slog.Logger
}

func NewCompositionRoot(config Config, gormDB *gorm.DB, logger *slog.Logger) CompositionRoot {
	store := configstore.NewGormConfigurationStore(gormDB)
	cache := quotecache.New(newCacheBackend(config, gormDB), config.QuoteCacheTTL, logger)

	root := CompositionRoot{
		config:     config,
		gormDB:     gormDB,
		uowFactory: postgres.NewGormUnitOfWorkFactory(gormDB),
		store:      store,
		cache:      cache,
		strategies: carriers.NewFactory(
			store,
			carrierapi.NewFactory(config.CarrierAPITimeout),
			cache,
			config.CarrierSettings(),
			logger,
		),
		publisher: kafka.NopPublisher{},
		logger:    logger,
	}

	if config.KafkaQuotesTopic != "" {
		root.producer = kafka.NewProducer(config.KafkaBroker, config.KafkaQuotesTopic, logger)
		root.publisher = root.producer
	}

	return root
}

func newCacheBackend(config Config, gormDB *gorm.DB) ports.CacheBackend {
	if config.CacheBackend == CacheBackendMemory {
		return memcache.NewStore()
	}
	return cacherepo.NewGormCacheRepository(gormDB)
}

func (c *CompositionRoot) quoteUoWFactory() commands.QuoteUoWFactory {
	return FuncQuoteUoWFactory(func() commands.QuoteUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) CreateComputeQuotesCommandHandler() *commands.ComputeQuotesCommandHandler {
	h := commands.NewComputeQuotesCommandHandler(
		c.store,
		c.strategies,
		c.quoteUoWFactory(),
		c.publisher,
		c.config.QuoteConcurrency,
		c.logger,
	)
	return &h
}

func (c *CompositionRoot) CreateSelectQuoteCommandHandler() *commands.SelectQuoteCommandHandler {
	h := commands.NewSelectQuoteCommandHandler(c.quoteUoWFactory())
	return &h
}

func (c *CompositionRoot) CreateEvictExpiredQuotesCommandHandler() commands.EvictExpiredQuotesCommandHandler {
	return commands.NewEvictExpiredQuotesCommandHandler(c.cache, c.logger)
}

func (c *CompositionRoot) CreateGetShipmentQuotesQueryHandler() queries.GetShipmentQuotesQueryHandler {
	return queries.NewGetShipmentQuotesQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetTrackingStatusQueryHandler() queries.GetTrackingStatusQueryHandler {
	return queries.NewGetTrackingStatusQueryHandler(c.store, c.strategies)
}

func (c *CompositionRoot) CreateGetNearestTerminalQueryHandler() queries.GetNearestTerminalQueryHandler {
	return queries.NewGetNearestTerminalQueryHandler(c.store)
}

func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	return jobs.NewJobManager(c.CreateEvictExpiredQuotesCommandHandler(), c.config.CacheEvictionSchedule, c.logger)
}

func (c *CompositionRoot) CreateHTTPServer() *httpadapter.Server {
	return httpadapter.NewServer(
		c.CreateComputeQuotesCommandHandler(),
		c.CreateSelectQuoteCommandHandler(),
		c.CreateGetShipmentQuotesQueryHandler(),
		c.CreateGetTrackingStatusQueryHandler(),
		c.CreateGetNearestTerminalQueryHandler(),
		c.logger,
	)
}

// Close releases resources that outlive a request.
func (c *CompositionRoot) Close() error {
	if c.producer != nil {
		return c.producer.Close()
	}
	return nil
}

type FuncQuoteUoWFactory func() commands.QuoteUoW

func (f FuncQuoteUoWFactory) Create() commands.QuoteUoW {
	return f()
}
