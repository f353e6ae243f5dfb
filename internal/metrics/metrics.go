// Taxi Trips - Zone-to-Zone Ride Analytics API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/taxitrips

package metrics

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Trip view initialization results.
const (
	InitResultSuccess         = "success"
	InitResultDataUnavailable = "data_unavailable"
	InitResultError           = "error"
)

var (
	// Database Metrics
	DBQueryDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "duckdb_query_duration_seconds",
			Help:    "Duration of DuckDB queries in seconds",
			Buckets: prometheus.DefBuckets, // 0.005s, 0.01s, 0.025s, 0.05s, 0.1s, 0.25s, 0.5s, 1s, 2.5s, 5s, 10s
		},
		[]string{"operation", "table"},
	)

	DBQueryErrors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "duckdb_query_errors_total",
			Help: "Total number of DuckDB query errors",
		},
		[]string{"operation", "table", "error_type"},
	)

	DBConnectionsInUse = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "duckdb_connections_in_use",
			Help: "Current number of database connections in use",
		},
	)

	// API Metrics
	APIRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "api_requests_total",
			Help: "Total number of API requests",
		},
		[]string{"method", "endpoint", "status_code"},
	)

	APIRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "api_request_duration_seconds",
			Help:    "API request duration in seconds",
			Buckets: []float64{0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10}, // Optimized for API latency
		},
		[]string{"method", "endpoint"},
	)

	APIActiveRequests = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "api_active_requests",
			Help: "Number of active API requests",
		},
	)

	APIRateLimitHits = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "api_rate_limit_hits_total",
			Help: "Total number of requests rejected by the rate limiter",
		},
		[]string{"endpoint"},
	)

	// Trip Data Metrics
	TripViewInitializations = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "trip_view_initializations_total",
			Help: "Total number of trip view registration attempts by result",
		},
		[]string{"result"}, // "success", "data_unavailable", "error"
	)

	TripFilesRegistered = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "trip_files_registered",
			Help: "Number of Parquet trip files behind the trip view",
		},
	)
)

// Values of the error_type label on duckdb_query_errors_total besides the
// DuckDB error types themselves.
const (
	ErrorClassCanceled = "canceled"
	ErrorClassTimeout  = "timeout"
	ErrorClassOther    = "other"
)

// maxErrorClassLength bounds the DuckDB error type accepted as a label.
const maxErrorClassLength = 32

// RecordDBQuery records a database query metric
func RecordDBQuery(operation, table string, duration time.Duration, err error) {
	DBQueryDuration.WithLabelValues(operation, table).Observe(duration.Seconds())
	if err != nil {
		DBQueryErrors.WithLabelValues(operation, table, errorClass(err)).Inc()
	}
}

// errorClass reduces err to a bounded label value. DuckDB prefixes its
// messages with the error type ("IO Error: ...", "Binder Error: ..."), and
// that prefix is used when found anywhere in the wrap chain's text. The rest
// of the message carries paths and values and is never used.
func errorClass(err error) string {
	switch {
	case errors.Is(err, context.Canceled):
		return ErrorClassCanceled
	case errors.Is(err, context.DeadlineExceeded):
		return ErrorClassTimeout
	}

	for _, segment := range strings.Split(err.Error(), ": ") {
		if isDuckDBErrorType(segment) {
			return segment
		}
	}
	return ErrorClassOther
}

func isDuckDBErrorType(s string) bool {
	if len(s) > maxErrorClassLength || !strings.HasSuffix(s, " Error") {
		return false
	}
	for _, r := range s {
		if r != ' ' && (r < 'A' || r > 'Z') && (r < 'a' || r > 'z') {
			return false
		}
	}
	return true
}

// UpdateDBConnectionsInUse sets the number of pool connections in use.
func UpdateDBConnectionsInUse(inUse int) {
	DBConnectionsInUse.Set(float64(inUse))
}

// RecordAPIRequest records an API request metric
func RecordAPIRequest(method, endpoint, statusCode string, duration time.Duration) {
	APIRequestsTotal.WithLabelValues(method, endpoint, statusCode).Inc()
	APIRequestDuration.WithLabelValues(method, endpoint).Observe(duration.Seconds())
}

// TrackActiveRequest tracks active API requests
func TrackActiveRequest(inc bool) {
	if inc {
		APIActiveRequests.Inc()
	} else {
		APIActiveRequests.Dec()
	}
}

// RecordRateLimitHit records a request rejected by the rate limiter.
func RecordRateLimitHit(endpoint string) {
	APIRateLimitHits.WithLabelValues(endpoint).Inc()
}

// RecordTripViewInit records the outcome of one trip view registration.
// result is one of InitResultSuccess, InitResultDataUnavailable or InitResultError.
func RecordTripViewInit(result string) {
	TripViewInitializations.WithLabelValues(result).Inc()
}

// SetTripFilesRegistered records how many files the trip view reads.
func SetTripFilesRegistered(n int) {
	TripFilesRegistered.Set(float64(n))
}

// Handler returns the Prometheus exposition handler for the ops listener.
func Handler() http.Handler {
	return promhttp.Handler()
}
