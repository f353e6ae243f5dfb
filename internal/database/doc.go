// Taxi Trips - Zone-to-Zone Ride Analytics API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/taxitrips

// Package database provides read-only access to NYC yellow taxi trip files
// through an embedded DuckDB engine.
//
// # Overview
//
// Trip data lives in a directory of Parquet files named
// yellow_tripdata_*.parquet. Nothing is imported: DuckDB reads the files in
// place through a view, taxi_trips, defined over a glob of that directory.
//
// # Architecture
//
//   - database.go: DB lifecycle (open, trip view registration, close)
//   - database_connection.go: connection string and pool configuration
//   - provider.go: Provider, the process-wide get-or-create handle
//   - rides.go: the zone-to-zone monthly ride count query
//   - errors.go: DataSourceError and close helpers
//
// # Lazy Initialization
//
// The engine is not touched until the first call to Provider.Get. That call
// checks the data directory, opens DuckDB and registers the view. Concurrent
// first callers wait on a mutex so exactly one registration runs. A success
// is kept for the life of the process; a failure is returned to the caller
// and the next call tries again, so dropping files into the directory fixes
// a misconfigured deployment without a restart.
//
// The view reflects the files present when it was registered. Files added
// later are only picked up by a new process.
//
// # Error Handling
//
// A missing directory or an empty glob yields *DataSourceError, which matches
// ErrDataUnavailable (and ErrDataDirectoryNotFound or ErrNoTripFiles) with
// errors.Is. Its message is safe to show to API clients. Any other error is
// an engine failure.
//
// # Example
//
//	provider := database.NewProvider(&cfg.Database, cfg.DataDirectory())
//	defer provider.Close()
//
//	db, err := provider.Get(ctx)
//	if errors.Is(err, database.ErrDataUnavailable) {
//	    // tell the client which path or pattern is wrong
//	}
//	counts, err := db.ZoneToZoneMonthlyCounts(ctx, 10, 20)
//
// # Thread Safety
//
// Provider and DB are safe for concurrent use. DuckDB connections opened from
// one connector share a single in-memory catalog, so every pooled connection
// sees the trip view and queries run in parallel.
package database
