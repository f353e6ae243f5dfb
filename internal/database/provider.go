// Taxi Trips - Zone-to-Zone Ride Analytics API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/taxitrips

package database

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"time"

	"github.com/tomtom215/taxitrips/internal/config"
	"github.com/tomtom215/taxitrips/internal/logging"
	"github.com/tomtom215/taxitrips/internal/metrics"
)

// openFunc matches Open. Tests substitute a counting wrapper.
type openFunc func(ctx context.Context, cfg *config.DatabaseConfig, dataDir string) (*DB, error)

// Provider hands out the process-wide DB, opening it on first use.
//
// Successful initialization is kept until Close. Failed initialization is
// not: every Get after a failure runs the full sequence again.
type Provider struct {
	cfg     *config.DatabaseConfig
	dataDir string
	open    openFunc

	db atomic.Pointer[DB]

	mu     sync.Mutex // serializes initialization and Close
	closed bool
}

// NewProvider creates a Provider for dataDir. Nothing is opened until Get.
func NewProvider(cfg *config.DatabaseConfig, dataDir string) *Provider {
	return &Provider{
		cfg:     cfg,
		dataDir: dataDir,
		open:    Open,
	}
}

// DataDirectory returns the configured data directory without touching it.
func (p *Provider) DataDirectory() string {
	return p.dataDir
}

// Get returns the shared DB, initializing it if no earlier call succeeded.
// Concurrent callers during the first initialization block until it
// finishes; exactly one of them runs it.
func (p *Provider) Get(ctx context.Context) (*DB, error) {
	if db := p.db.Load(); db != nil {
		return db, nil
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	if p.closed {
		return nil, ErrProviderClosed
	}
	if db := p.db.Load(); db != nil {
		return db, nil
	}

	logger := logging.WithComponent("database")

	start := time.Now()
	db, err := p.open(ctx, p.cfg, p.dataDir)
	if err != nil {
		if errors.Is(err, ErrDataUnavailable) {
			metrics.RecordTripViewInit(metrics.InitResultDataUnavailable)
			logger.Warn().Str("data_dir", p.dataDir).Err(err).Msg("Trip data unavailable")
		} else {
			metrics.RecordTripViewInit(metrics.InitResultError)
			logger.Error().Str("data_dir", p.dataDir).Err(err).Msg("Failed to initialize trip view")
		}
		return nil, err
	}

	metrics.RecordTripViewInit(metrics.InitResultSuccess)
	metrics.SetTripFilesRegistered(len(db.TripFiles()))
	logger.Info().
		Str("data_dir", p.dataDir).
		Str("view", TripViewName).
		Int("files", len(db.TripFiles())).
		Dur("duration", time.Since(start)).
		Msg("Trip view registered")

	p.db.Store(db)
	return db, nil
}

// Close releases the DB if one was opened. Later calls to Get fail with
// ErrProviderClosed. Close is idempotent.
func (p *Provider) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.closed {
		return nil
	}
	p.closed = true

	db := p.db.Swap(nil)
	if db == nil {
		return nil
	}
	return db.Close()
}
