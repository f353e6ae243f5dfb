// Taxi Trips - Zone-to-Zone Ride Analytics API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/taxitrips

package database

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"time"

	_ "github.com/duckdb/duckdb-go/v2"

	"github.com/tomtom215/taxitrips/internal/config"
	"github.com/tomtom215/taxitrips/internal/metrics"
)

const (
	// TripViewName is the view every query reads from.
	TripViewName = "taxi_trips"

	// TripFilePattern selects the trip files inside the data directory.
	TripFilePattern = "yellow_tripdata_*.parquet"
)

// DB wraps the DuckDB connection and provides data access methods
type DB struct {
	conn      *sql.DB
	cfg       *config.DatabaseConfig
	dataDir   string
	tripFiles []string

	// Prepared statement caching
	stmtCache   map[string]*sql.Stmt
	stmtCacheMu sync.RWMutex
}

// Open checks dataDir, opens an in-memory DuckDB database and registers the
// taxi_trips view over every file in dataDir matching TripFilePattern.
//
// dataDir must already be absolute; config.Load resolves it. A missing
// directory or an empty glob returns *DataSourceError before DuckDB is
// opened.
func Open(ctx context.Context, cfg *config.DatabaseConfig, dataDir string) (*DB, error) {
	files, err := discoverTripFiles(dataDir)
	if err != nil {
		return nil, err
	}

	conn, err := sql.Open("duckdb", connectionString(cfg))
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	db := &DB{
		conn:      conn,
		cfg:       cfg,
		dataDir:   dataDir,
		tripFiles: files,
		stmtCache: make(map[string]*sql.Stmt),
	}

	db.configureConnectionPool()

	if err := db.Ping(ctx); err != nil {
		closeQuietly(conn)
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	if err := db.createTripView(ctx); err != nil {
		closeQuietly(conn)
		return nil, fmt.Errorf("failed to register %s view: %w", TripViewName, err)
	}

	return db, nil
}

// discoverTripFiles returns the sorted trip files in dataDir.
func discoverTripFiles(dataDir string) ([]string, error) {
	info, err := os.Stat(dataDir)
	if err != nil || !info.IsDir() {
		return nil, &DataSourceError{Kind: ErrDataDirectoryNotFound, Dir: dataDir}
	}

	files, err := filepath.Glob(tripGlob(dataDir))
	if err != nil {
		return nil, fmt.Errorf("invalid trip file pattern: %w", err)
	}
	if len(files) == 0 {
		return nil, &DataSourceError{Kind: ErrNoTripFiles, Dir: dataDir}
	}

	sort.Strings(files)
	return files, nil
}

func tripGlob(dataDir string) string {
	return filepath.Join(dataDir, TripFilePattern)
}

// createTripView registers taxi_trips over the files found by
// discoverTripFiles. Listing them explicitly freezes the file set: DuckDB
// would expand a glob again on every query. DDL cannot bind parameters, so
// each path is embedded as a SQL string literal with quotes doubled.
func (db *DB) createTripView(ctx context.Context) error {
	literals := make([]string, len(db.tripFiles))
	for i, f := range db.tripFiles {
		literals[i] = "'" + strings.ReplaceAll(f, "'", "''") + "'"
	}
	query := fmt.Sprintf(
		"CREATE OR REPLACE VIEW %s AS SELECT * FROM read_parquet([%s])",
		TripViewName, strings.Join(literals, ", "),
	)

	start := time.Now()
	_, err := db.conn.ExecContext(ctx, query)
	metrics.RecordDBQuery("create_view", TripViewName, time.Since(start), err)
	return err
}

// TripFiles returns the files the view was registered over, sorted.
func (db *DB) TripFiles() []string {
	files := make([]string, len(db.tripFiles))
	copy(files, db.tripFiles)
	return files
}

// DataDirectory returns the directory the view reads from.
func (db *DB) DataDirectory() string {
	return db.dataDir
}

// Close closes the database connection and all prepared statements.
func (db *DB) Close() error {
	db.stmtCacheMu.Lock()
	for _, stmt := range db.stmtCache {
		closeWithLog(stmt, "prepared statement")
	}
	db.stmtCache = make(map[string]*sql.Stmt)
	db.stmtCacheMu.Unlock()

	if db.conn != nil {
		return db.conn.Close()
	}
	return nil
}

// Ping checks if the database connection is alive
func (db *DB) Ping(ctx context.Context) error {
	if db.conn == nil {
		return fmt.Errorf("database connection is nil")
	}
	return db.conn.PingContext(ctx)
}

// prepared returns a cached prepared statement for query, preparing it on
// first use.
func (db *DB) prepared(ctx context.Context, query string) (*sql.Stmt, error) {
	db.stmtCacheMu.RLock()
	stmt, ok := db.stmtCache[query]
	db.stmtCacheMu.RUnlock()
	if ok {
		return stmt, nil
	}

	db.stmtCacheMu.Lock()
	defer db.stmtCacheMu.Unlock()

	if stmt, ok := db.stmtCache[query]; ok {
		return stmt, nil
	}

	stmt, err := db.conn.PrepareContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to prepare statement: %w", err)
	}
	db.stmtCache[query] = stmt
	return stmt, nil
}
