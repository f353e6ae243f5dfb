// Taxi Trips - Zone-to-Zone Ride Analytics API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/taxitrips

package models

// HealthStatusOK is the only status /health reports.
const HealthStatusOK = "ok"

// HealthResponse is the body of GET /health.
type HealthResponse struct {
	Status string `json:"status"`
}

// ConfigResponse is the body of GET /config.
type ConfigResponse struct {
	DataDirectory string `json:"data_directory"`
}

// ErrorResponse is the body of every non-validation error.
//
//	{"detail": "No Parquet trip files found matching 'yellow_tripdata_*.parquet' in /srv/data"}
type ErrorResponse struct {
	Detail string `json:"detail"`
}

// ValidationDetail describes one invalid request parameter.
//
// Fields:
//   - Type: missing, int_parsing or greater_than_equal
//   - Loc: where the value came from, e.g. ["query", "zone_src"]
//   - Msg: human-readable message
//   - Input: the raw value received, null when missing
//   - Ctx: constraint parameters, e.g. {"ge": 1}
type ValidationDetail struct {
	Type  string                 `json:"type"`
	Loc   []string               `json:"loc"`
	Msg   string                 `json:"msg"`
	Input interface{}            `json:"input"`
	Ctx   map[string]interface{} `json:"ctx,omitempty"`
}

// ValidationErrorResponse is the 422 body. Every invalid parameter is listed.
type ValidationErrorResponse struct {
	Detail []ValidationDetail `json:"detail"`
}
