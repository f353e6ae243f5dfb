// Taxi Trips - Zone-to-Zone Ride Analytics API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/taxitrips

/*
Package metrics provides Prometheus metrics collection and export for observability.

# Overview

The package provides metrics for:
  - HTTP request latency and throughput
  - DuckDB query performance
  - Trip view registration outcomes

# Metrics Endpoint

Metrics are served by a separate ops listener, not the API listener, and only
when METRICS_ENABLED=true:

	curl http://localhost:9090/metrics

# Available Metrics

Database:
  - duckdb_query_duration_seconds{operation,table}: query latency histogram
  - duckdb_query_errors_total{operation,table,error_type}: failed queries
  - duckdb_connections_in_use: connections checked out of the pool

API:
  - api_requests_total{method,endpoint,status_code}: request count
  - api_request_duration_seconds{method,endpoint}: request latency histogram
  - api_active_requests: in-flight requests
  - api_rate_limit_hits_total{endpoint}: requests rejected by the rate limiter

Trip data:
  - trip_view_initializations_total{result}: view registrations by outcome
  - trip_files_registered: Parquet files behind the trip view

The endpoint label is the chi route pattern, so path values never create new
series.

# Thread Safety

All collectors are registered with promauto and are safe for concurrent use.
*/
package metrics
