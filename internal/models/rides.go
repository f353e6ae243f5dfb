// Taxi Trips - Zone-to-Zone Ride Analytics API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/taxitrips

package models

import (
	"fmt"
	"time"

	"github.com/tomtom215/taxitrips/internal/validation"
)

// MonthlyRideCount is the number of rides whose pickup fell in one calendar
// month. Month is always the first day of that month.
type MonthlyRideCount struct {
	Month     Date  `json:"month"`
	RideCount int64 `json:"ride_count" validate:"gte=0"`
}

// NewMonthlyRideCount builds a validated MonthlyRideCount. month is reduced
// to its calendar date; the engine already truncates it to the first of the
// month.
func NewMonthlyRideCount(month time.Time, count int64) (MonthlyRideCount, error) {
	mc := MonthlyRideCount{Month: NewDate(month), RideCount: count}
	if verr := validation.ValidateStruct(&mc); verr != nil {
		return MonthlyRideCount{}, fmt.Errorf("invalid monthly ride count for %s: %w", mc.Month, verr)
	}
	return mc, nil
}

// ZoneToZoneRideResponse is the body of GET /rides/by-month.
//
// Example:
//
//	{
//	  "zone_src": 10,
//	  "zone_dst": 20,
//	  "results": [
//	    {"month": "2024-01-01", "ride_count": 2},
//	    {"month": "2024-02-01", "ride_count": 1}
//	  ]
//	}
type ZoneToZoneRideResponse struct {
	ZoneSrc int                `json:"zone_src" validate:"gte=1"`
	ZoneDst int                `json:"zone_dst" validate:"gte=1"`
	Results []MonthlyRideCount `json:"results" validate:"dive"`
}

// NewZoneToZoneRideResponse builds a validated response. Nil results become
// an empty list so the body always carries "results": [].
func NewZoneToZoneRideResponse(zoneSrc, zoneDst int, results []MonthlyRideCount) (*ZoneToZoneRideResponse, error) {
	if results == nil {
		results = []MonthlyRideCount{}
	}

	resp := &ZoneToZoneRideResponse{
		ZoneSrc: zoneSrc,
		ZoneDst: zoneDst,
		Results: results,
	}
	if verr := validation.ValidateStruct(resp); verr != nil {
		return nil, fmt.Errorf("invalid ride response for zones %d->%d: %w", zoneSrc, zoneDst, verr)
	}
	return resp, nil
}
