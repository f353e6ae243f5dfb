// Taxi Trips - Zone-to-Zone Ride Analytics API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/taxitrips

package api

import (
	"context"
	"database/sql"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/tomtom215/taxitrips/internal/config"
	"github.com/tomtom215/taxitrips/internal/database"
)

// fakeCounter is a RideCounter returning canned results.
type fakeCounter struct {
	counts []database.MonthlyCount
	err    error
}

func (f *fakeCounter) ZoneToZoneMonthlyCounts(ctx context.Context, zoneSrc, zoneDst int) ([]database.MonthlyCount, error) {
	return f.counts, f.err
}

// newFakeHandler returns a handler whose data access is counted and served
// by counter, or fails with initErr.
func newFakeHandler(dataDir string, counter RideCounter, initErr error) (*Handler, *atomic.Int32) {
	var calls atomic.Int32
	h := &Handler{
		rides: func(ctx context.Context) (RideCounter, error) {
			calls.Add(1)
			if initErr != nil {
				return nil, initErr
			}
			return counter, nil
		},
		dataDir: dataDir,
	}
	return h, &calls
}

func testConfig() *config.Config {
	return &config.Config{
		Security: config.SecurityConfig{
			CORSOrigins:     []string{},
			RateLimitWindow: time.Minute,
		},
	}
}

// newProviderHandler wires a real Provider over dataDir.
func newProviderHandler(t *testing.T, dataDir string) *Handler {
	t.Helper()
	provider := database.NewProvider(&config.DatabaseConfig{MaxMemory: "512MB", Threads: 2}, dataDir)
	t.Cleanup(func() { _ = provider.Close() })
	return NewHandler(provider)
}

func newTestRouter(h *Handler, cfg *config.Config) http.Handler {
	return NewRouter(h, cfg).Setup()
}

// doGet performs a GET against handler and returns status and body.
func doGet(t *testing.T, handler http.Handler, target string) (*httptest.ResponseRecorder, string) {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, target, nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	body, err := io.ReadAll(rec.Body)
	if err != nil {
		t.Fatal(err)
	}
	return rec, string(body)
}

// writeTripFile writes trips (pickup, PULocationID, DOLocationID) as a
// Parquet file using a scratch DuckDB database.
func writeTripFile(t *testing.T, dir, name string, trips ...string) {
	t.Helper()

	path := filepath.Join(dir, name)
	query := fmt.Sprintf(`COPY (
		SELECT
			tpep_pickup_datetime,
			CAST(PULocationID AS INTEGER) AS PULocationID,
			CAST(DOLocationID AS INTEGER) AS DOLocationID
		FROM (VALUES %s) AS t(tpep_pickup_datetime, PULocationID, DOLocationID)
	) TO '%s' (FORMAT PARQUET)`, strings.Join(trips, ", "), strings.ReplaceAll(path, "'", "''"))

	scratch, err := sql.Open("duckdb", "")
	if err != nil {
		t.Fatalf("failed to open scratch database: %v", err)
	}
	defer scratch.Close()

	if _, err := scratch.ExecContext(context.Background(), query); err != nil {
		t.Fatalf("failed to write parquet fixture: %v", err)
	}
}

// writeScenarioFile writes three 10->20 trips: two in January 2024, one in February.
func writeScenarioFile(t *testing.T, dir string) {
	t.Helper()
	writeTripFile(t, dir, "yellow_tripdata_2024-01.parquet",
		"(TIMESTAMP '2024-01-05 08:15:00', 10, 20)",
		"(TIMESTAMP '2024-01-20 17:40:00', 10, 20)",
		"(TIMESTAMP '2024-02-01 00:05:00', 10, 20)",
		"(TIMESTAMP '2024-01-07 12:00:00', 20, 10)",
	)
}
