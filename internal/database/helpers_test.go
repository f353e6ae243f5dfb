// Taxi Trips - Zone-to-Zone Ride Analytics API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/taxitrips

package database

import (
	"context"
	"database/sql"
	"fmt"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/tomtom215/taxitrips/internal/config"
)

// tripRow is one trip record written to a Parquet fixture.
type tripRow struct {
	pickup string // "2006-01-02 15:04:05"
	pu     int
	do     int
}

// testDatabaseConfig returns a small DuckDB configuration for tests.
func testDatabaseConfig() *config.DatabaseConfig {
	return &config.DatabaseConfig{
		MaxMemory:    "512MB",
		Threads:      2,
		MaxOpenConns: 4,
	}
}

// writeTripFile writes rows to dir/name as Parquet using a scratch DuckDB
// database, with the same column names and types as the published trip files.
func writeTripFile(t *testing.T, dir, name string, rows []tripRow) string {
	t.Helper()

	if len(rows) == 0 {
		t.Fatal("writeTripFile needs at least one row")
	}

	values := make([]string, len(rows))
	for i, r := range rows {
		values[i] = fmt.Sprintf("(TIMESTAMP '%s', %d, %d)", r.pickup, r.pu, r.do)
	}

	path := filepath.Join(dir, name)
	query := fmt.Sprintf(`COPY (
		SELECT
			tpep_pickup_datetime,
			CAST(PULocationID AS INTEGER) AS PULocationID,
			CAST(DOLocationID AS INTEGER) AS DOLocationID
		FROM (VALUES %s) AS t(tpep_pickup_datetime, PULocationID, DOLocationID)
	) TO '%s' (FORMAT PARQUET)`, strings.Join(values, ", "), strings.ReplaceAll(path, "'", "''"))

	scratch, err := sql.Open("duckdb", "")
	if err != nil {
		t.Fatalf("failed to open scratch database: %v", err)
	}
	defer closeQuietly(scratch)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if _, err := scratch.ExecContext(ctx, query); err != nil {
		t.Fatalf("failed to write parquet fixture %s: %v", path, err)
	}
	return path
}

// scenarioRows are three trips from zone 10 to zone 20 across two months.
var scenarioRows = []tripRow{
	{"2024-01-05 08:15:00", 10, 20},
	{"2024-01-20 17:40:00", 10, 20},
	{"2024-02-01 00:05:00", 10, 20},
}

// setupTestDB opens a DB over a temp directory holding the given files.
func setupTestDB(t *testing.T, files map[string][]tripRow) *DB {
	t.Helper()

	dir := t.TempDir()
	for name, rows := range files {
		writeTripFile(t, dir, name, rows)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel()

	db, err := Open(ctx, testDatabaseConfig(), dir)
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	t.Cleanup(func() {
		if err := db.Close(); err != nil {
			t.Errorf("Close() error = %v", err)
		}
	})
	return db
}
