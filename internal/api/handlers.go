// Taxi Trips - Zone-to-Zone Ride Analytics API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/taxitrips

package api

import (
	"context"

	"github.com/tomtom215/taxitrips/internal/database"
)

// RideCounter runs the zone-to-zone monthly ride count.
type RideCounter interface {
	ZoneToZoneMonthlyCounts(ctx context.Context, zoneSrc, zoneDst int) ([]database.MonthlyCount, error)
}

// Handler contains dependencies for API handlers
//
// Handler methods are split across files:
//   - handlers_health.go: /health and /config
//   - handlers_rides.go: /rides/by-month
type Handler struct {
	// rides returns the initialized query engine. It is only called by
	// RidesByMonth.
	rides   func(ctx context.Context) (RideCounter, error)
	dataDir string
}

// NewHandler creates a handler backed by provider. Nothing is opened here;
// the first /rides/by-month request initializes the provider.
func NewHandler(provider *database.Provider) *Handler {
	return &Handler{
		rides: func(ctx context.Context) (RideCounter, error) {
			db, err := provider.Get(ctx)
			if err != nil {
				return nil, err
			}
			return db, nil
		},
		dataDir: provider.DataDirectory(),
	}
}
