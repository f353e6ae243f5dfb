// Taxi Trips - Zone-to-Zone Ride Analytics API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/taxitrips

package api

import (
	"net/http"

	"github.com/tomtom215/taxitrips/internal/models"
)

// Health reports that the process is serving requests. It does not check the
// trip data, so it stays 200 while the data directory is unusable.
//
// @Summary Liveness probe
// @Tags Health
// @Produce json
// @Success 200 {object} models.HealthResponse
// @Router /health [get]
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, &models.HealthResponse{Status: models.HealthStatusOK})
}

// Config reports the absolute data directory the service reads trip files
// from. The directory is not checked for existence.
//
// @Summary Effective data directory
// @Tags Health
// @Produce json
// @Success 200 {object} models.ConfigResponse
// @Router /config [get]
func (h *Handler) Config(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, &models.ConfigResponse{DataDirectory: h.dataDir})
}
