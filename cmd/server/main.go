// Taxi Trips - Zone-to-Zone Ride Analytics API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/taxitrips

// Package main is the entry point for the Taxi Trips API server.
//
// The server answers "how many rides went from zone A to zone B in each
// month" over the NYC yellow taxi trip records stored as Parquet files.
//
// # Application Architecture
//
// The server initializes components in the following order:
//
//  1. Configuration: environment variables over config.yaml over defaults (Koanf v2)
//  2. Logging: zerolog with the configured level and format
//  3. Trip data Provider: created closed; DuckDB opens on the first ride query
//  4. HTTP API: chi router with /health, /config and /rides/by-month
//  5. Metrics listener (optional): Prometheus /metrics on a separate port
//  6. Supervisor tree: runs both listeners until SIGINT or SIGTERM
//
// # Data Directory
//
// DATA_DIR points at the directory holding yellow_tripdata_*.parquet. When
// unset it defaults to a "data" directory next to the executable. A missing
// or empty directory does not stop the server: /health keeps answering and
// /rides/by-month returns 500 naming the problem until the files appear.
// Set DUCKDB_EAGER_INIT=true to validate the data at startup instead.
//
// # Example Usage
//
//	export DATA_DIR=/srv/nyc-taxi
//	export HTTP_PORT=8000
//	./taxitrips
//	curl 'http://localhost:8000/rides/by-month?zone_src=132&zone_dst=236'
//
// # Signal Handling
//
// SIGINT and SIGTERM stop accepting connections, drain in-flight requests
// within SHUTDOWN_TIMEOUT, and then close the DuckDB connection.
package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/tomtom215/taxitrips/internal/api"
	"github.com/tomtom215/taxitrips/internal/config"
	"github.com/tomtom215/taxitrips/internal/database"
	"github.com/tomtom215/taxitrips/internal/logging"
	"github.com/tomtom215/taxitrips/internal/metrics"
	"github.com/tomtom215/taxitrips/internal/supervisor"
	"github.com/tomtom215/taxitrips/internal/supervisor/services"
)

const (
	apiServiceName     = "api-server"
	metricsServiceName = "metrics-server"
	metricsPath        = "/metrics"
	idleTimeout        = 60 * time.Second
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to load configuration")
	}

	logging.Init(loggingConfig(cfg))

	logging.Info().
		Str("data_directory", cfg.DataDirectory()).
		Str("addr", cfg.Server.Addr()).
		Bool("metrics_enabled", cfg.Metrics.Enabled).
		Msg("Configuration loaded")

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	provider := database.NewProvider(&cfg.Database, cfg.DataDirectory())

	if cfg.Database.EagerInit {
		if _, err := provider.Get(ctx); err != nil {
			logging.Fatal().Err(err).Msg("Trip data is not usable")
		}
	}

	if err := run(ctx, cfg, provider); err != nil {
		logging.Error().Err(err).Msg("Supervisor tree error")
	}

	if err := provider.Close(); err != nil {
		logging.Error().Err(err).Msg("Error closing trip data provider")
	}

	logging.Info().Msg("Application stopped gracefully")
}

// run serves the API (and the metrics listener when enabled) under a
// supervisor tree until ctx is canceled.
func run(ctx context.Context, cfg *config.Config, provider *database.Provider) error {
	tree, err := supervisor.NewSupervisorTree(logging.NewSlogLogger(), supervisor.TreeConfig{
		ShutdownTimeout: cfg.Server.ShutdownTimeout,
	})
	if err != nil {
		return err
	}

	handler := api.NewHandler(provider)
	apiServer := newAPIServer(cfg, api.NewRouter(handler, cfg).Setup())
	tree.AddAPIService(services.NewHTTPServerService(apiServiceName, apiServer, cfg.Server.ShutdownTimeout))
	logging.Info().Str("addr", apiServer.Addr).Msg("HTTP server service added")

	if cfg.Metrics.Enabled {
		metricsServer := newMetricsServer(cfg)
		tree.AddOpsService(services.NewHTTPServerService(metricsServiceName, metricsServer, cfg.Server.ShutdownTimeout))
		logging.Info().Str("addr", metricsServer.Addr).Str("path", metricsPath).Msg("Metrics server service added")
	}

	logging.Info().Msg("Starting supervisor tree...")
	errCh := tree.ServeBackground(ctx)

	// ServeBackground delivers exactly one value and never closes the channel.
	var serveErr error
	if err := <-errCh; err != nil && !errors.Is(err, context.Canceled) {
		serveErr = err
	}

	unstopped, _ := tree.UnstoppedServiceReport()
	for _, svc := range unstopped {
		logging.Warn().Str("service", svc.Name).Msg("Service failed to stop within timeout")
	}

	return serveErr
}

// loggingConfig maps the logging section onto logging.Config. Every line
// carries a timestamp.
func loggingConfig(cfg *config.Config) logging.Config {
	return logging.Config{
		Level:     cfg.Logging.Level,
		Format:    cfg.Logging.Format,
		Caller:    cfg.Logging.Caller,
		Timestamp: true,
	}
}

func newAPIServer(cfg *config.Config, handler http.Handler) *http.Server {
	return &http.Server{
		Addr:              cfg.Server.Addr(),
		Handler:           handler,
		ReadHeaderTimeout: cfg.Server.Timeout,
		ReadTimeout:       cfg.Server.Timeout,
		WriteTimeout:      cfg.Server.Timeout,
		IdleTimeout:       idleTimeout,
	}
}

func newMetricsServer(cfg *config.Config) *http.Server {
	mux := http.NewServeMux()
	mux.Handle(metricsPath, metrics.Handler())
	return &http.Server{
		Addr:              cfg.Metrics.Addr(),
		Handler:           mux,
		ReadHeaderTimeout: cfg.Server.Timeout,
		IdleTimeout:       idleTimeout,
	}
}
