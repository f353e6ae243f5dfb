// Taxi Trips - Zone-to-Zone Ride Analytics API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/taxitrips

// Package config loads the taxi trips API configuration.
//
// Configuration Loading Order (Koanf v2):
//  1. Defaults: Built-in defaults for every setting
//  2. Config File: Optional YAML file (CONFIG_PATH, config.yaml, /etc/taxitrips/config.yaml)
//  3. Environment Variables: Override any setting
//
// Example:
//
//	cfg, err := config.Load()
//	if err != nil {
//	    logging.Fatal().Err(err).Msg("Failed to load configuration")
//	}
//	provider := database.NewProvider(&cfg.Database, cfg.DataDirectory())
//
// Config is immutable after Load() and safe for concurrent reads.
package config

import (
	"fmt"
	"time"
)

// Config holds all application configuration.
type Config struct {
	Data     DataConfig     `koanf:"data"`
	Database DatabaseConfig `koanf:"database"`
	Server   ServerConfig   `koanf:"server"`
	Security SecurityConfig `koanf:"security"`
	Metrics  MetricsConfig  `koanf:"metrics"`
	Logging  LoggingConfig  `koanf:"logging"`
}

// DataConfig locates the trip files.
//
// Environment Variables:
//   - DATA_DIR: directory holding yellow_tripdata_*.parquet files.
//     Empty means "data" next to the installed executable.
type DataConfig struct {
	Directory string `koanf:"directory"`
}

// DatabaseConfig holds DuckDB settings
type DatabaseConfig struct {
	MaxMemory    string `koanf:"max_memory"`
	Threads      int    `koanf:"threads"`        // 0 = runtime.NumCPU()
	MaxOpenConns int    `koanf:"max_open_conns"` // 0 = runtime.NumCPU()
	EagerInit    bool   `koanf:"eager_init"`     // Register the trip view at startup instead of on first request
}

// ServerConfig holds HTTP server settings
type ServerConfig struct {
	Port            int           `koanf:"port"`
	Host            string        `koanf:"host"`
	Timeout         time.Duration `koanf:"timeout"`
	ShutdownTimeout time.Duration `koanf:"shutdown_timeout"`
}

// Addr returns the listen address of the API server.
func (s ServerConfig) Addr() string {
	return fmt.Sprintf("%s:%d", s.Host, s.Port)
}

// SecurityConfig holds optional edge protections. Both are disabled by
// default: CORS needs explicit origins and rate limiting needs a positive
// request budget.
type SecurityConfig struct {
	CORSOrigins     []string      `koanf:"cors_origins"`
	RateLimitReqs   int           `koanf:"rate_limit_reqs"`
	RateLimitWindow time.Duration `koanf:"rate_limit_window"`
}

// CORSEnabled reports whether any CORS origin is configured.
func (s SecurityConfig) CORSEnabled() bool {
	return len(s.CORSOrigins) > 0
}

// RateLimitEnabled reports whether per-IP rate limiting is configured.
func (s SecurityConfig) RateLimitEnabled() bool {
	return s.RateLimitReqs > 0
}

// MetricsConfig controls the Prometheus ops listener. It is separate from
// the API listener so the API surface stays fixed.
type MetricsConfig struct {
	Enabled bool   `koanf:"enabled"`
	Host    string `koanf:"host"`
	Port    int    `koanf:"port"`
}

// Addr returns the listen address of the metrics server.
func (m MetricsConfig) Addr() string {
	return fmt.Sprintf("%s:%d", m.Host, m.Port)
}

// LoggingConfig holds logging settings for zerolog.
//
// Environment Variables:
//   - LOG_LEVEL: trace, debug, info, warn, error (default: info)
//   - LOG_FORMAT: json, console (default: json)
//   - LOG_CALLER: true/false - include caller file:line (default: false)
type LoggingConfig struct {
	Level  string `koanf:"level"`
	Format string `koanf:"format"`
	Caller bool   `koanf:"caller"`
}

// DataDirectory returns the absolute trip data directory. Load resolves it,
// so this never touches the filesystem.
func (c *Config) DataDirectory() string {
	return c.Data.Directory
}

// Load reads configuration from defaults, an optional YAML file and the
// environment, resolves the data directory and validates the result.
func Load() (*Config, error) {
	return LoadWithKoanf()
}
