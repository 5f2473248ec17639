package http

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/uptrace/opentelemetry-go-extra/otelzap"

	"taskboard/internal/adapter/cache"
	"taskboard/internal/adapter/database/postgres"
	"taskboard/internal/adapter/database/sqlite"
	"taskboard/internal/adapter/http/routes"
	"taskboard/internal/core/port"
	"taskboard/pkg"
	"taskboard/pkg/config"
	"taskboard/pkg/telemetry"
)

// StartServer serves the transient backend at the root and, when a durable
// backend is configured, the same routes under /db.
func StartServer(metrics *telemetry.AppMetrics, logger *otelzap.Logger) {
	StartServerWithConfig(metrics, logger, config.GetDefaultConfig())
}

func StartServerWithConfig(metrics *telemetry.AppMetrics, logger *otelzap.Logger, cfg *config.AppConfig) {
	primary := NewMemoryContainer(logger)

	var durable *routes.HandlersConfig

	switch {
	case cfg.DatabaseURL != "":
		db, err := postgres.NewDB()

		if err != nil {
			slog.Error("Failed to open postgres database", "error", err)
		} else {
			handlers := NewPostgresContainer(db, logger).Handlers()
			durable = &handlers

			defer db.Close()
		}
	case cfg.DatabasePath != "":
		db, err := sqlite.NewDB()

		if err != nil {
			slog.Error("Failed to open sqlite database", "error", err)
		} else {
			handlers := NewSQLiteContainer(db, logger).Handlers()
			durable = &handlers

			defer db.Close()
		}
	}

	responseCache := newCacheRepository(cfg)
	defer responseCache.Close()

	router := routes.SetupRouter(primary.Handlers(), durable, metrics, logger, responseCache, cfg)

	port := pkg.GetServerPort()

	slog.Info("Server starting",
		"port", port,
		"environment", cfg.Environment,
		"durable_backend", durable != nil,
		"rate_limit_enabled", cfg.RateLimitEnabled)

	srv := &http.Server{
		Addr:         ":" + port,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
	}

	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		slog.Error("Server failed to start", "error", err)
	}
}

func newCacheRepository(cfg *config.AppConfig) port.CacheRepository {
	if cfg.RedisURL != "" {
		repo, err := cache.NewRedisRepository(context.Background(), cfg.RedisURL)

		if err == nil {
			return repo
		}

		slog.Error("Failed to connect to redis, falling back to in-process cache", "error", err)
	}

	return cache.NewMemoryRepository()
}
