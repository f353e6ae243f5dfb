// Taxi Trips - Zone-to-Zone Ride Analytics API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/taxitrips

package database

import (
	"context"
	"fmt"
	"time"

	"github.com/tomtom215/taxitrips/internal/metrics"
)

// MonthlyCount is one row of ZoneToZoneMonthlyCounts.
type MonthlyCount struct {
	// Month is the first day of the calendar month, midnight UTC.
	Month time.Time
	Count int64
}

// zoneToZoneMonthlyQuery counts rides per pickup month for one zone pair.
// date_trunc keeps the month boundary in the timestamp's own (naive) clock.
const zoneToZoneMonthlyQuery = `
	SELECT
		date_trunc('month', tpep_pickup_datetime)::DATE AS month,
		COUNT(*) AS ride_count
	FROM ` + TripViewName + `
	WHERE PULocationID = ? AND DOLocationID = ?
	GROUP BY month
	ORDER BY month`

// ZoneToZoneMonthlyCounts returns the number of rides from zoneSrc to zoneDst
// in each calendar month, ascending by month. Months without rides are
// absent. No matching rides gives an empty, non-nil slice.
//
// Zone values are bound as parameters; callers validate the range.
func (db *DB) ZoneToZoneMonthlyCounts(ctx context.Context, zoneSrc, zoneDst int) ([]MonthlyCount, error) {
	start := time.Now()
	counts, err := db.zoneToZoneMonthlyCounts(ctx, zoneSrc, zoneDst)
	metrics.RecordDBQuery("select", TripViewName, time.Since(start), err)
	metrics.UpdateDBConnectionsInUse(db.conn.Stats().InUse)
	return counts, err
}

func (db *DB) zoneToZoneMonthlyCounts(ctx context.Context, zoneSrc, zoneDst int) ([]MonthlyCount, error) {
	stmt, err := db.prepared(ctx, zoneToZoneMonthlyQuery)
	if err != nil {
		return nil, err
	}

	rows, err := stmt.QueryContext(ctx, zoneSrc, zoneDst)
	if err != nil {
		return nil, fmt.Errorf("failed to query monthly ride counts: %w", err)
	}
	defer closeWithLog(rows, "rows")

	counts := make([]MonthlyCount, 0)
	for rows.Next() {
		var mc MonthlyCount
		if err := rows.Scan(&mc.Month, &mc.Count); err != nil {
			return nil, fmt.Errorf("failed to scan monthly ride count: %w", err)
		}
		counts = append(counts, mc)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating monthly ride counts: %w", err)
	}

	return counts, nil
}
