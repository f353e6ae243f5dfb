// Taxi Trips - Zone-to-Zone Ride Analytics API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/taxitrips

/*
Package middleware provides HTTP middleware components for the API server.

Key Components:

  - Request ID: UUID-based request tracking, echoed in X-Request-ID
  - Access Log: one structured zerolog line per request
  - Prometheus Metrics: request count, latency and in-flight gauge

All middleware has the func(http.Handler) http.Handler shape and plugs
straight into chi's r.Use.

Middleware Stack:

	r.Use(middleware.RequestID)         // Layer 1: request/correlation ids
	r.Use(chimiddleware.RealIP)         // Layer 2: client address
	r.Use(middleware.AccessLog)         // Layer 3: access log
	r.Use(chimiddleware.Recoverer)      // Layer 4: panic -> 500
	r.Use(middleware.PrometheusMetrics) // Layer 5: metrics

PrometheusMetrics labels requests by chi route pattern ("/rides/by-month"),
read after the handler has run so the router has resolved it. Requests that
match no route share the "unmatched" label.
*/
package middleware
