package config

import (
	"os"
	"strconv"
)

type Config struct {
	LogLevel string

	MetricsPort string

	CatalogFile string

	FetchTimeoutSeconds int
	FetchMaxBodyBytes   int
	FetchRateLimitRPS   float64
	FetchRateBurst      int

	RetryMaxAttempts       int
	RetryInitialBackoffMS  int
	RetryMaxBackoffMS      int
	BreakerEnabled         bool
	BreakerMinRequests     int
	BreakerOpenTimeoutSecs int
}

func Load() Config {
	return Config{
		LogLevel: mustEnv("LOG_LEVEL", "info"),

		// Empty disables the metrics endpoint; the MCP channel itself
		// runs over stdio, not a port.
		MetricsPort: mustEnv("METRICS_PORT", ""),

		CatalogFile: mustEnv("CATALOG_FILE", ""),

		FetchTimeoutSeconds: mustEnvInt("FETCH_TIMEOUT_SECONDS", 30),
		FetchMaxBodyBytes:   mustEnvInt("FETCH_MAX_BODY_BYTES", 2<<20),
		FetchRateLimitRPS:   mustEnvFloat("FETCH_RATE_LIMIT_RPS", 2),
		FetchRateBurst:      mustEnvInt("FETCH_RATE_BURST", 4),

		RetryMaxAttempts:       mustEnvInt("RETRY_MAX_ATTEMPTS", 3),
		RetryInitialBackoffMS:  mustEnvInt("RETRY_INITIAL_BACKOFF_MS", 200),
		RetryMaxBackoffMS:      mustEnvInt("RETRY_MAX_BACKOFF_MS", 2000),
		BreakerEnabled:         mustEnvBool("BREAKER_ENABLED", true),
		BreakerMinRequests:     mustEnvInt("BREAKER_MIN_REQUESTS", 5),
		BreakerOpenTimeoutSecs: mustEnvInt("BREAKER_OPEN_TIMEOUT_SECONDS", 30),
	}
}

func mustEnv(key, fallback string) string {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	return v
}

func mustEnvInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return n
}

func mustEnvFloat(key string, fallback float64) float64 {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return fallback
	}
	return f
}

func mustEnvBool(key string, fallback bool) bool {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	parsed, err := strconv.ParseBool(v)
	if err != nil {
		return fallback
	}
	return parsed
}
