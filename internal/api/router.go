// Taxi Trips - Zone-to-Zone Ride Analytics API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/taxitrips

package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"

	"github.com/tomtom215/taxitrips/internal/config"
	"github.com/tomtom215/taxitrips/internal/middleware"
)

// Route paths.
const (
	RouteHealth       = "/health"
	RouteRidesByMonth = "/rides/by-month"
	RouteConfig       = "/config"
)

// Router sets up HTTP routes using Chi router.
type Router struct {
	handler       *Handler
	chiMiddleware *ChiMiddleware
}

// NewRouter creates a router for handler. cfg supplies the optional CORS and
// rate limit settings.
func NewRouter(handler *Handler, cfg *config.Config) *Router {
	return &Router{
		handler:       handler,
		chiMiddleware: NewChiMiddleware(ChiMiddlewareConfigFromSecurity(cfg.Security)),
	}
}

// Setup configures all HTTP routes and returns the root handler.
func (router *Router) Setup() http.Handler {
	r := chi.NewRouter()

	// ========================
	// Global Middleware Stack
	// ========================
	// Applied to ALL routes in order
	r.Use(middleware.RequestID)         // X-Request-ID header with logging context
	r.Use(chimiddleware.RealIP)         // Extract real IP from X-Forwarded-For
	r.Use(middleware.AccessLog)         // Structured access log
	r.Use(Recoverer)                    // Recover from panics with a JSON 500
	r.Use(middleware.PrometheusMetrics) // Request metrics by route pattern
	r.Use(APISecurityHeaders())
	r.Use(router.chiMiddleware.CORS()) // CORS must be global to handle OPTIONS preflight

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		respondError(w, http.StatusNotFound, detailNotFound)
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		respondError(w, http.StatusMethodNotAllowed, detailMethodNotAllowed)
	})

	r.Get(RouteHealth, router.handler.Health)
	r.Get(RouteConfig, router.handler.Config)
	r.With(router.chiMiddleware.RateLimit()).Get(RouteRidesByMonth, router.handler.RidesByMonth)

	return r
}
