// Taxi Trips - Zone-to-Zone Ride Analytics API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/taxitrips

package database

import (
	"bytes"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/tomtom215/taxitrips/internal/logging"
)

// mockCloser implements io.Closer for testing
type mockCloser struct {
	closed bool
	err    error
}

func (m *mockCloser) Close() error {
	m.closed = true
	return m.err
}

// captureLogs redirects the global logger into a buffer for one test.
func captureLogs(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	prev := logging.Logger()
	logging.SetLogger(logging.NewTestLogger(&buf))
	t.Cleanup(func() { logging.SetLogger(prev) })
	return &buf
}

func TestDataSourceError_Matching(t *testing.T) {
	tests := []struct {
		name      string
		err       error
		matches   []error
		unmatches []error
	}{
		{
			name:      "directory not found",
			err:       &DataSourceError{Kind: ErrDataDirectoryNotFound, Dir: "/srv/data"},
			matches:   []error{ErrDataDirectoryNotFound, ErrDataUnavailable},
			unmatches: []error{ErrNoTripFiles, ErrProviderClosed},
		},
		{
			name:      "no trip files, wrapped",
			err:       fmt.Errorf("init: %w", &DataSourceError{Kind: ErrNoTripFiles, Dir: "/srv/data"}),
			matches:   []error{ErrNoTripFiles, ErrDataUnavailable},
			unmatches: []error{ErrDataDirectoryNotFound},
		},
		{
			name:    "no kind",
			err:     &DataSourceError{Dir: "/srv/data"},
			matches: []error{ErrDataUnavailable},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for _, target := range tt.matches {
				if !errors.Is(tt.err, target) {
					t.Errorf("errors.Is(%v, %v) = false, want true", tt.err, target)
				}
			}
			for _, target := range tt.unmatches {
				if errors.Is(tt.err, target) {
					t.Errorf("errors.Is(%v, %v) = true, want false", tt.err, target)
				}
			}
		})
	}
}

func TestDataSourceError_Messages(t *testing.T) {
	tests := []struct {
		kind error
		want string
	}{
		{ErrDataDirectoryNotFound, "Expected data directory at /srv/data"},
		{ErrNoTripFiles, "No Parquet trip files found matching 'yellow_tripdata_*.parquet' in /srv/data"},
		{nil, "trip data unavailable in /srv/data"},
	}

	for _, tt := range tests {
		e := &DataSourceError{Kind: tt.kind, Dir: "/srv/data"}
		if e.Error() != tt.want {
			t.Errorf("Error() = %q, want %q", e.Error(), tt.want)
		}
	}
}

func TestCloseWithLog(t *testing.T) {
	t.Run("nil closer does not panic", func(t *testing.T) {
		buf := captureLogs(t)
		closeWithLog(nil, "test")
		if buf.Len() > 0 {
			t.Errorf("Expected no log output for nil closer, got: %s", buf.String())
		}
	})

	t.Run("successful close does not log", func(t *testing.T) {
		buf := captureLogs(t)
		closer := &mockCloser{}
		closeWithLog(closer, "test resource")

		if !closer.closed {
			t.Error("Expected closer to be closed")
		}
		if buf.Len() > 0 {
			t.Errorf("Expected no log output for successful close, got: %s", buf.String())
		}
	})

	t.Run("error during close is logged", func(t *testing.T) {
		buf := captureLogs(t)
		closer := &mockCloser{err: errors.New("close failed: connection reset")}
		closeWithLog(closer, "prepared statement")

		logOutput := buf.String()
		for _, want := range []string{"Failed to close resource", "prepared statement", "close failed: connection reset"} {
			if !strings.Contains(logOutput, want) {
				t.Errorf("Expected log to contain %q, got: %s", want, logOutput)
			}
		}
	})
}

func TestCloseQuietly(t *testing.T) {
	closeQuietly(nil)

	closer := &mockCloser{err: errors.New("close failed")}
	closeQuietly(closer)
	if !closer.closed {
		t.Error("Expected closer to be closed even with error")
	}
}
