package cmd_test

import (
	"testing"
	"time"

	"freight/cmd"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func envOf(values map[string]string) func(string) string {
	return func(key string) string { return values[key] }
}

func TestLoadConfig_Defaults(t *testing.T) {
	cfg, err := cmd.LoadConfig(envOf(nil))

	require.NoError(t, err)
	assert.Equal(t, "8080", cfg.HTTPPort)
	assert.Equal(t, cmd.CacheBackendPostgres, cfg.CacheBackend)
	assert.Equal(t, time.Hour, cfg.QuoteCacheTTL)
	assert.Equal(t, 10*time.Second, cfg.CarrierAPITimeout)
	assert.Equal(t, 168*time.Hour, cfg.QuoteValidity)
	assert.Equal(t, 8, cfg.QuoteConcurrency)
	assert.Equal(t, "0 */5 * * * *", cfg.CacheEvictionSchedule)
	assert.Empty(t, cfg.KafkaQuotesTopic)
	assert.False(t, cfg.OtelEnabled)
}

func TestLoadConfig_Overrides(t *testing.T) {
	cfg, err := cmd.LoadConfig(envOf(map[string]string{
		"HTTP_PORT":           "9000",
		"DB_HOST":             "db",
		"DB_PASSWORD":         "secret",
		"CACHE_BACKEND":       "Memory",
		"QUOTE_CACHE_TTL":     "15m",
		"CARRIER_API_TIMEOUT": "3s",
		"QUOTE_VALIDITY":      "48h",
		"QUOTE_CONCURRENCY":   "2",
		"KAFKA_BROKER":        "kafka:9092",
		"KAFKA_QUOTES_TOPIC":  "freight.quotes",
		"OTEL_ENABLED":        "true",
	}))

	require.NoError(t, err)
	assert.Equal(t, "9000", cfg.HTTPPort)
	assert.Equal(t, cmd.CacheBackendMemory, cfg.CacheBackend)
	assert.Equal(t, 2, cfg.QuoteConcurrency)
	assert.True(t, cfg.OtelEnabled)
	assert.Equal(t, "host=db port=5432 user=postgres password=secret dbname=freight sslmode=disable", cfg.DSN())

	settings := cfg.CarrierSettings()
	assert.Equal(t, 15*time.Minute, settings.CacheTTL)
	assert.Equal(t, 3*time.Second, settings.APITimeout)
	assert.Equal(t, 48*time.Hour, settings.QuoteValidity)
}

func TestLoadConfig_InvalidValuesAreJoined(t *testing.T) {
	_, err := cmd.LoadConfig(envOf(map[string]string{
		"CACHE_BACKEND":      "redis",
		"QUOTE_CACHE_TTL":    "forever",
		"QUOTE_CONCURRENCY":  "0",
		"KAFKA_QUOTES_TOPIC": "freight.quotes",
	}))

	require.Error(t, err)
	assert.Contains(t, err.Error(), "CACHE_BACKEND")
	assert.Contains(t, err.Error(), "QUOTE_CACHE_TTL")
	assert.Contains(t, err.Error(), "QUOTE_CONCURRENCY")
	assert.Contains(t, err.Error(), "KAFKA_BROKER")
}
