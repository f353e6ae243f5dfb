// Taxi Trips - Zone-to-Zone Ride Analytics API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/taxitrips

/*
Package models defines the JSON shapes returned by the taxi trips API.

Key Components:

  - Date: calendar date serialized as "YYYY-MM-DD"
  - MonthlyRideCount: number of rides for one calendar month
  - ZoneToZoneRideResponse: monthly counts for a pickup/drop-off zone pair
  - HealthResponse, ConfigResponse: bodies of /health and /config
  - ErrorResponse, ValidationErrorResponse: 500 and 422 bodies

Validation:

Constructors validate their result with the shared go-playground validator
(see internal/validation). A model that fails validation is never returned, so
handlers can serialize whatever a constructor hands back.

Example:

	month := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	mc, err := models.NewMonthlyRideCount(month, 2)
	resp, err := models.NewZoneToZoneRideResponse(10, 20, []models.MonthlyRideCount{mc})
	// {"zone_src":10,"zone_dst":20,"results":[{"month":"2024-01-01","ride_count":2}]}

Thread Safety:

Models are plain values with no internal synchronization. They are built per
request and never shared.
*/
package models
