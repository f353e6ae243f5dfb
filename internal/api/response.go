// Taxi Trips - Zone-to-Zone Ride Analytics API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/taxitrips

package api

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/goccy/go-json"

	"github.com/tomtom215/taxitrips/internal/logging"
	"github.com/tomtom215/taxitrips/internal/models"
)

// Error details for responses that carry no specific message.
const (
	detailInternalServerError = "Internal Server Error"
	detailNotFound            = "Not Found"
	detailMethodNotAllowed    = "Method Not Allowed"
	detailTooManyRequests     = "Too Many Requests"
)

// sanitizeLogValue removes control characters that could be used for log injection.
func sanitizeLogValue(s string) string {
	var result strings.Builder
	result.Grow(len(s))
	for _, r := range s {
		if r < 0x20 || r == 0x7F {
			result.WriteString(fmt.Sprintf("\\x%02x", r))
		} else {
			result.WriteRune(r)
		}
	}
	return result.String()
}

// respondJSON sends a JSON response with proper headers
func respondJSON(w http.ResponseWriter, status int, body interface{}) {
	data, err := json.Marshal(body)
	if err != nil {
		logging.Error().Err(err).Msg("Failed to marshal JSON response")
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(`{"detail":"` + detailInternalServerError + `"}`))
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("ETag", generateETag(data))
	w.WriteHeader(status)
	if _, err := w.Write(data); err != nil {
		logging.Error().Err(err).Msg("Failed to write JSON response")
	}
}

// generateETag creates a simple ETag from data using FNV-1a hash
func generateETag(data []byte) string {
	hash := uint32(2166136261)
	for _, b := range data {
		hash ^= uint32(b)
		hash *= 16777619
	}
	return `"` + strconv.FormatUint(uint64(hash), 16) + `"`
}

// respondError sends {"detail": detail} with the given status.
func respondError(w http.ResponseWriter, status int, detail string) {
	respondJSON(w, status, &models.ErrorResponse{Detail: detail})
}

// respondValidationError sends the 422 body listing every invalid parameter.
func respondValidationError(w http.ResponseWriter, details []models.ValidationDetail) {
	respondJSON(w, http.StatusUnprocessableEntity, &models.ValidationErrorResponse{Detail: details})
}
