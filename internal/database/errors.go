// Taxi Trips - Zone-to-Zone Ride Analytics API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/taxitrips

package database

import (
	"errors"
	"fmt"
	"io"

	"github.com/tomtom215/taxitrips/internal/logging"
)

var (
	// ErrDataUnavailable matches every error caused by the trip data itself
	// rather than the engine. Messages of such errors are client-safe.
	ErrDataUnavailable = errors.New("trip data unavailable")

	// ErrDataDirectoryNotFound means the data directory is missing or is not a directory.
	ErrDataDirectoryNotFound = errors.New("data directory not found")

	// ErrNoTripFiles means the data directory holds no file matching TripFilePattern.
	ErrNoTripFiles = errors.New("no trip files")

	// ErrProviderClosed is returned by Provider.Get after Close.
	ErrProviderClosed = errors.New("database provider closed")
)

// DataSourceError reports a data directory that cannot back the trip view.
type DataSourceError struct {
	// Kind is ErrDataDirectoryNotFound or ErrNoTripFiles.
	Kind error
	// Dir is the absolute data directory that was checked.
	Dir string
}

func (e *DataSourceError) Error() string {
	switch e.Kind {
	case ErrDataDirectoryNotFound:
		return fmt.Sprintf("Expected data directory at %s", e.Dir)
	case ErrNoTripFiles:
		return fmt.Sprintf("No Parquet trip files found matching '%s' in %s", TripFilePattern, e.Dir)
	default:
		return fmt.Sprintf("trip data unavailable in %s", e.Dir)
	}
}

// Unwrap lets errors.Is match both the specific kind and ErrDataUnavailable.
func (e *DataSourceError) Unwrap() []error {
	if e.Kind == nil {
		return []error{ErrDataUnavailable}
	}
	return []error{e.Kind, ErrDataUnavailable}
}

// closeWithLog closes a resource and logs any error
// Use this for cleanup operations where errors should be acknowledged but not fail the operation
func closeWithLog(closer io.Closer, resourceType string) {
	if closer == nil {
		return
	}
	if err := closer.Close(); err != nil {
		logging.Warn().Str("type", resourceType).Err(err).Msg("Failed to close resource")
	}
}

// closeQuietly closes a resource and explicitly ignores any error
// Use this for cleanup operations in error paths where Close() errors are not actionable
func closeQuietly(closer io.Closer) {
	if closer != nil {
		_ = closer.Close()
	}
}
