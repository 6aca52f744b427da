package cmd

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"freight/internal/core/application/carriers"
	"freight/internal/core/application/usecases/commands"
	"freight/internal/jobs"
)

const (
	CacheBackendMemory   = "memory"
	CacheBackendPostgres = "postgres"
)

type Config struct {
	HTTPPort              string
	DBHost                string
	DBPort                string
	DBUser                string
	DBPassword            string
	DBName                string
	DBSslMode             string
	CacheBackend          string
	QuoteCacheTTL         time.Duration
	CacheEvictionSchedule string
	CarrierAPITimeout     time.Duration
	QuoteConcurrency      int
	QuoteValidity         time.Duration
	KafkaBroker           string
	KafkaQuotesTopic      string
	OtelEnabled           bool
}

// LoadConfig reads the configuration through getenv, applying defaults for
// every unset value.
func LoadConfig(getenv func(string) string) (Config, error) {
	defaults := carriers.DefaultSettings()
	env := func(key, fallback string) string {
		if v := strings.TrimSpace(getenv(key)); v != "" {
			return v
		}
		return fallback
	}

	cfg := Config{
		HTTPPort:              env("HTTP_PORT", "8080"),
		DBHost:                env("DB_HOST", "localhost"),
		DBPort:                env("DB_PORT", "5432"),
		DBUser:                env("DB_USER", "postgres"),
		DBPassword:            env("DB_PASSWORD", ""),
		DBName:                env("DB_NAME", "freight"),
		DBSslMode:             env("DB_SSLMODE", "disable"),
		CacheBackend:          strings.ToLower(env("CACHE_BACKEND", CacheBackendPostgres)),
		CacheEvictionSchedule: env("CACHE_EVICTION_SCHEDULE", jobs.DefaultEvictionSchedule),
		KafkaBroker:           env("KAFKA_BROKER", ""),
		KafkaQuotesTopic:      env("KAFKA_QUOTES_TOPIC", ""),
	}

	var errs []error
	var err error
	if cfg.QuoteCacheTTL, err = parseDuration("QUOTE_CACHE_TTL", env("QUOTE_CACHE_TTL", ""), defaults.CacheTTL); err != nil {
		errs = append(errs, err)
	}
	if cfg.CarrierAPITimeout, err = parseDuration("CARRIER_API_TIMEOUT", env("CARRIER_API_TIMEOUT", ""), defaults.APITimeout); err != nil {
		errs = append(errs, err)
	}
	if cfg.QuoteValidity, err = parseDuration("QUOTE_VALIDITY", env("QUOTE_VALIDITY", ""), defaults.QuoteValidity); err != nil {
		errs = append(errs, err)
	}
	if cfg.QuoteConcurrency, err = strconv.Atoi(env("QUOTE_CONCURRENCY", strconv.Itoa(commands.DefaultQuoteConcurrency))); err != nil || cfg.QuoteConcurrency < 1 {
		errs = append(errs, errors.New("QUOTE_CONCURRENCY must be a positive integer"))
	}
	if cfg.OtelEnabled, err = strconv.ParseBool(env("OTEL_ENABLED", "false")); err != nil {
		errs = append(errs, fmt.Errorf("OTEL_ENABLED: %w", err))
	}
	if cfg.CacheBackend != CacheBackendMemory && cfg.CacheBackend != CacheBackendPostgres {
		errs = append(errs, fmt.Errorf("CACHE_BACKEND must be %q or %q", CacheBackendMemory, CacheBackendPostgres))
	}
	if cfg.KafkaQuotesTopic != "" && cfg.KafkaBroker == "" {
		errs = append(errs, errors.New("KAFKA_BROKER is required when KAFKA_QUOTES_TOPIC is set"))
	}

	return cfg, errors.Join(errs...)
}

// DSN is the postgres connection string of the configured database.
func (c Config) DSN() string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.DBHost, c.DBPort, c.DBUser, c.DBPassword, c.DBName, c.DBSslMode)
}

// CarrierSettings maps the configuration onto strategy settings.
func (c Config) CarrierSettings() carriers.Settings {
	return carriers.Settings{
		QuoteValidity: c.QuoteValidity,
		APITimeout:    c.CarrierAPITimeout,
		CacheTTL:      c.QuoteCacheTTL,
	}
}

func parseDuration(key, value string, fallback time.Duration) (time.Duration, error) {
	if value == "" {
		return fallback, nil
	}
	d, err := time.ParseDuration(value)
	if err != nil || d <= 0 {
		return 0, fmt.Errorf("%s must be a positive duration, got %q", key, value)
	}
	return d, nil
}
