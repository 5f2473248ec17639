package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	api "taskboard/internal/adapter/http"
	"taskboard/pkg/config"
	"taskboard/pkg/logging"
	"taskboard/pkg/telemetry"
)

func main() {
	ctx := context.Background()

	logger, err := logging.NewLogger()

	if err != nil {
		log.Fatal("Failed to initialize logger:", err)
	}

	defer logger.Sync()

	cfg := config.GetDefaultConfig()

	if os.Getenv("GIN_MODE") == "release" {
		cfg.Environment = "production"
	}

	tel, err := telemetry.Init(telemetry.Config{
		ServiceName:    "taskboard",
		ServiceVersion: "1.0.0",
		MetricsPort:    cfg.MetricsPort,
		OTLPEndpoint:   cfg.OTLPEndpoint,
	})

	if err != nil {
		log.Fatal("Failed to initialize telemetry:", err)
	}

	defer tel.Shutdown(ctx)

	metrics := telemetry.NewAppMetrics(tel.PrometheusRegistry)

	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	go api.StartServerWithConfig(metrics, logger, cfg)

	<-c
	logger.Info("Shutting down gracefully...")
}
