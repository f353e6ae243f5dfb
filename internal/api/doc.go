// Taxi Trips - Zone-to-Zone Ride Analytics API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/taxitrips

/*
Package api provides the HTTP layer of the taxi trips service.

Routes:

	GET /health                              -> {"status":"ok"}
	GET /rides/by-month?zone_src=N&zone_dst=M -> monthly ride counts for a zone pair
	GET /config                              -> {"data_directory":"/abs/path"}

Every response body is JSON. Errors use a single "detail" member, a string
for 404/405/429/500 and a list of per-parameter entries for 422:

	{"detail":[{"type":"greater_than_equal","loc":["query","zone_src"],
	            "msg":"Input should be greater than or equal to 1","input":"0","ctx":{"ge":1}}]}

Query parameters are checked before the trip data is touched, so a bad
request gets 422 even when the data directory is unusable.

Lazy Data Access:

/health and /config never touch the connection provider. The first
/rides/by-month request registers the trip view. Missing data is reported as
500 with a message naming the directory or file pattern; other failures are
logged with the request ID and reported as a generic 500.

Middleware Stack (chi):

	middleware.RequestID         -> X-Request-ID and logging context
	chimiddleware.RealIP         -> client address behind proxies
	middleware.AccessLog         -> one zerolog line per request
	chimiddleware.Recoverer      -> panics become 500
	middleware.PrometheusMetrics -> request metrics by route pattern
	APISecurityHeaders           -> nosniff, frame and referrer policy
	CORS (optional)              -> go-chi/cors, only when CORS_ORIGINS is set

/rides/by-month is additionally wrapped by go-chi/httprate when
RATE_LIMIT_REQUESTS is positive.
*/
package api
