// Taxi Trips - Zone-to-Zone Ride Analytics API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/taxitrips

package database

import (
	"fmt"
	"net/url"
	"runtime"
	"time"

	"github.com/tomtom215/taxitrips/internal/config"
)

// connectionString builds the DuckDB DSN for an in-memory database.
//
// Auto-install and auto-load are disabled: read_parquet is built in and the
// server must never reach out to the extension repository at request time.
func connectionString(cfg *config.DatabaseConfig) string {
	threads := cfg.Threads
	if threads <= 0 {
		threads = runtime.NumCPU()
	}

	params := url.Values{}
	params.Set("threads", fmt.Sprintf("%d", threads))
	params.Set("max_memory", cfg.MaxMemory)
	params.Set("autoinstall_known_extensions", "false")
	params.Set("autoload_known_extensions", "false")

	return ":memory:?" + params.Encode()
}

// configureConnectionPool sets connection pool parameters
//   - max_open: DUCKDB_MAX_OPEN_CONNS, or NumCPU() for parallelism
//   - max_idle: 2 for connection reuse
//   - max_lifetime: 1h to prevent stale connections
//   - max_idle_time: 5m for idle connection cleanup
//
// Closing every pooled connection does not drop the view: the connector owns
// the database, not the connections.
func (db *DB) configureConnectionPool() {
	maxOpen := db.cfg.MaxOpenConns
	if maxOpen <= 0 {
		maxOpen = runtime.NumCPU()
	}

	db.conn.SetMaxOpenConns(maxOpen)
	db.conn.SetMaxIdleConns(2)
	db.conn.SetConnMaxLifetime(time.Hour)
	db.conn.SetConnMaxIdleTime(5 * time.Minute)
}
