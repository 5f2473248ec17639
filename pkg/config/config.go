package config

import (
	"os"
	"time"
)

type RateLimitConfig struct {
	Requests int
	Window   time.Duration
}

type AppConfig struct {
	Environment string

	DatabasePath string
	DatabaseURL  string
	RedisURL     string

	RateLimitEnabled bool
	RateLimitConfigs map[string]RateLimitConfig

	CacheEnabled bool
	CacheTTL     time.Duration

	MetricsPort  string
	OTLPEndpoint string
}

func GetDefaultConfig() *AppConfig {
	return &AppConfig{
		Environment: "development",

		DatabasePath: os.Getenv("DATABASE_PATH"),
		DatabaseURL:  os.Getenv("DATABASE_URL"),
		RedisURL:     os.Getenv("REDIS_URL"),

		RateLimitEnabled: true,
		RateLimitConfigs: map[string]RateLimitConfig{
			"POST /users": {
				Requests: 20,
				Window:   time.Minute,
			},
			"POST /todos": {
				Requests: 60,
				Window:   time.Minute,
			},
			"default": {
				Requests: 100,
				Window:   time.Minute,
			},
		},

		CacheEnabled: true,
		CacheTTL:     3 * time.Second,

		MetricsPort:  getenv("METRICS_PORT", "9091"),
		OTLPEndpoint: getenv("OTLP_ENDPOINT", "localhost:4317"),
	}
}

func getenv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}

	return fallback
}
