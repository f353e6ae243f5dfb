// Taxi Trips - Zone-to-Zone Ride Analytics API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/taxitrips

package api

import (
	"net/http"
	"runtime/debug"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/go-chi/httprate"

	"github.com/tomtom215/taxitrips/internal/config"
	"github.com/tomtom215/taxitrips/internal/logging"
	"github.com/tomtom215/taxitrips/internal/metrics"
	"github.com/tomtom215/taxitrips/internal/middleware"
)

// ChiMiddlewareConfig holds configuration for Chi middleware factories.
type ChiMiddlewareConfig struct {
	// CORS configuration. No origins disables CORS.
	CORSAllowedOrigins []string
	CORSAllowedMethods []string
	CORSAllowedHeaders []string
	CORSExposedHeaders []string
	CORSMaxAge         int // seconds

	// Rate limiting configuration. Zero requests disables rate limiting.
	RateLimitRequests int
	RateLimitWindow   time.Duration
	RateLimitKeyFunc  httprate.KeyFunc
}

// DefaultChiMiddlewareConfig returns a configuration with CORS and rate
// limiting both disabled.
func DefaultChiMiddlewareConfig() *ChiMiddlewareConfig {
	return &ChiMiddlewareConfig{
		CORSAllowedOrigins: []string{},
		CORSAllowedMethods: []string{http.MethodGet, http.MethodOptions},
		CORSAllowedHeaders: []string{"Accept", "Content-Type", middleware.RequestIDHeader},
		CORSExposedHeaders: []string{middleware.RequestIDHeader},
		CORSMaxAge:         86400, // 24 hours

		RateLimitRequests: 0,
		RateLimitWindow:   time.Minute,
	}
}

// ChiMiddlewareConfigFromSecurity maps SecurityConfig onto the defaults.
func ChiMiddlewareConfigFromSecurity(sec config.SecurityConfig) *ChiMiddlewareConfig {
	cfg := DefaultChiMiddlewareConfig()
	cfg.CORSAllowedOrigins = sec.CORSOrigins
	cfg.RateLimitRequests = sec.RateLimitReqs
	cfg.RateLimitWindow = sec.RateLimitWindow
	return cfg
}

// ChiMiddleware provides Chi-compatible middleware factories.
type ChiMiddleware struct {
	config *ChiMiddlewareConfig
}

// NewChiMiddleware creates a new Chi middleware factory with the given configuration.
func NewChiMiddleware(config *ChiMiddlewareConfig) *ChiMiddleware {
	if config == nil {
		config = DefaultChiMiddlewareConfig()
	}
	return &ChiMiddleware{config: config}
}

// CORSEnabled reports whether any origin is allowed.
func (m *ChiMiddleware) CORSEnabled() bool {
	return len(m.config.CORSAllowedOrigins) > 0
}

// RateLimitEnabled reports whether rate limiting is configured.
func (m *ChiMiddleware) RateLimitEnabled() bool {
	return m.config.RateLimitRequests > 0
}

// CORS returns a Chi-compatible CORS middleware using go-chi/cors, or a
// pass-through when no origins are configured.
func (m *ChiMiddleware) CORS() func(http.Handler) http.Handler {
	if !m.CORSEnabled() {
		return passThrough
	}

	return cors.Handler(cors.Options{
		AllowedOrigins:   m.config.CORSAllowedOrigins,
		AllowedMethods:   m.config.CORSAllowedMethods,
		AllowedHeaders:   m.config.CORSAllowedHeaders,
		ExposedHeaders:   m.config.CORSExposedHeaders,
		AllowCredentials: false,
		MaxAge:           m.config.CORSMaxAge,
	})
}

// RateLimit returns a per-client rate limiter using go-chi/httprate, or a
// pass-through when disabled. Rejected requests get 429 with a JSON detail
// and are counted by route pattern.
func (m *ChiMiddleware) RateLimit() func(http.Handler) http.Handler {
	if !m.RateLimitEnabled() {
		return passThrough
	}

	keyFunc := m.config.RateLimitKeyFunc
	if keyFunc == nil {
		keyFunc = httprate.KeyByIP
	}

	return httprate.Limit(
		m.config.RateLimitRequests,
		m.config.RateLimitWindow,
		httprate.WithKeyFuncs(keyFunc),
		httprate.WithLimitHandler(rateLimitExceeded),
	)
}

func rateLimitExceeded(w http.ResponseWriter, r *http.Request) {
	endpoint := middleware.UnmatchedRoute
	if rctx := chi.RouteContext(r.Context()); rctx != nil && rctx.RoutePattern() != "" {
		endpoint = rctx.RoutePattern()
	}
	metrics.RecordRateLimitHit(endpoint)
	respondError(w, http.StatusTooManyRequests, detailTooManyRequests)
}

// Recoverer turns a handler panic into a logged 500 with a JSON detail.
// http.ErrAbortHandler is re-raised so net/http can abort the connection.
func Recoverer(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			rvr := recover()
			if rvr == nil {
				return
			}
			if rvr == http.ErrAbortHandler { //nolint:errorlint // sentinel compared by identity
				panic(rvr)
			}

			logging.Ctx(r.Context()).Error().
				Interface("panic", rvr).
				Str("method", r.Method).
				Str("path", r.URL.Path).
				Bytes("stack", debug.Stack()).
				Msg("Recovered from handler panic")

			respondError(w, http.StatusInternalServerError, detailInternalServerError)
		}()

		next.ServeHTTP(w, r)
	})
}

func passThrough(next http.Handler) http.Handler {
	return next
}

// APISecurityHeaders adds security headers to API responses.
func APISecurityHeaders() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			// Prevent MIME type sniffing
			w.Header().Set("X-Content-Type-Options", "nosniff")

			// Prevent embedding in frames (clickjacking protection)
			w.Header().Set("X-Frame-Options", "DENY")

			// Control referrer information
			w.Header().Set("Referrer-Policy", "strict-origin-when-cross-origin")

			next.ServeHTTP(w, r)
		})
	}
}
