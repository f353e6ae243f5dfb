// Taxi Trips - Zone-to-Zone Ride Analytics API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/taxitrips

package api

import (
	"errors"
	"net/http"

	"github.com/tomtom215/taxitrips/internal/database"
	"github.com/tomtom215/taxitrips/internal/logging"
	"github.com/tomtom215/taxitrips/internal/models"
)

// RidesByMonth returns the number of rides from zone_src to zone_dst in each
// calendar month, ascending. A pair with no rides returns an empty list.
//
// @Summary Monthly ride counts for a zone pair
// @Tags Rides
// @Produce json
// @Param zone_src query int true "Pickup zone ID (>= 1)"
// @Param zone_dst query int true "Drop-off zone ID (>= 1)"
// @Success 200 {object} models.ZoneToZoneRideResponse
// @Failure 422 {object} models.ValidationErrorResponse
// @Failure 500 {object} models.ErrorResponse
// @Router /rides/by-month [get]
func (h *Handler) RidesByMonth(w http.ResponseWriter, r *http.Request) {
	req, details := parseRidesByMonthRequest(r.URL.Query())
	if len(details) > 0 {
		respondValidationError(w, details)
		return
	}

	ctx := r.Context()
	logger := logging.Ctx(ctx)

	counter, err := h.rides(ctx)
	if err != nil {
		var dsErr *database.DataSourceError
		if errors.As(err, &dsErr) {
			respondError(w, http.StatusInternalServerError, dsErr.Error())
			return
		}
		logger.Error().Str("error", sanitizeLogValue(err.Error())).Msg("Trip data initialization failed")
		respondError(w, http.StatusInternalServerError, detailInternalServerError)
		return
	}

	counts, err := counter.ZoneToZoneMonthlyCounts(ctx, req.ZoneSrc, req.ZoneDst)
	if err != nil {
		logger.Error().
			Int("zone_src", req.ZoneSrc).
			Int("zone_dst", req.ZoneDst).
			Str("error", sanitizeLogValue(err.Error())).
			Msg("Monthly ride count query failed")
		respondError(w, http.StatusInternalServerError, detailInternalServerError)
		return
	}

	results := make([]models.MonthlyRideCount, 0, len(counts))
	for _, c := range counts {
		mc, err := models.NewMonthlyRideCount(c.Month, c.Count)
		if err != nil {
			logger.Error().Err(err).Msg("Query returned an invalid monthly count")
			respondError(w, http.StatusInternalServerError, detailInternalServerError)
			return
		}
		results = append(results, mc)
	}

	resp, err := models.NewZoneToZoneRideResponse(req.ZoneSrc, req.ZoneDst, results)
	if err != nil {
		logger.Error().Err(err).Msg("Failed to build ride response")
		respondError(w, http.StatusInternalServerError, detailInternalServerError)
		return
	}

	respondJSON(w, http.StatusOK, resp)
}
