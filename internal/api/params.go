// Taxi Trips - Zone-to-Zone Ride Analytics API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/taxitrips

package api

import (
	"net/url"
	"strconv"

	"github.com/tomtom215/taxitrips/internal/models"
	"github.com/tomtom215/taxitrips/internal/validation"
)

// RidesByMonthRequest holds the parsed query of GET /rides/by-month.
type RidesByMonthRequest struct {
	ZoneSrc int `query:"zone_src" validate:"gte=1"`
	ZoneDst int `query:"zone_dst" validate:"gte=1"`
}

const (
	locQuery = "query"

	msgMissing    = "Field required"
	msgIntParsing = "Input should be a valid integer, unable to parse string as an integer"
)

// parseRidesByMonthRequest converts the query string into a request. It
// returns every problem found, in parameter order, rather than stopping at
// the first one.
func parseRidesByMonthRequest(query url.Values) (RidesByMonthRequest, []models.ValidationDetail) {
	var (
		req     RidesByMonthRequest
		details []models.ValidationDetail
		raw     = map[string]string{}
		failed  = map[string]bool{}
	)

	fields := []struct {
		name string
		dst  *int
	}{
		{"zone_src", &req.ZoneSrc},
		{"zone_dst", &req.ZoneDst},
	}

	for _, f := range fields {
		value, ok := lastValue(query, f.name)
		if !ok {
			details = append(details, models.ValidationDetail{
				Type: "missing",
				Loc:  []string{locQuery, f.name},
				Msg:  msgMissing,
			})
			failed[f.name] = true
			continue
		}
		raw[f.name] = value

		n, err := strconv.Atoi(value)
		if err != nil {
			details = append(details, models.ValidationDetail{
				Type:  "int_parsing",
				Loc:   []string{locQuery, f.name},
				Msg:   msgIntParsing,
				Input: value,
			})
			failed[f.name] = true
			continue
		}
		*f.dst = n
	}

	if verr := validation.ValidateStruct(&req); verr != nil {
		for _, fe := range verr.Errors() {
			if failed[fe.Field()] {
				continue
			}
			details = append(details, models.ValidationDetail{
				Type:  fe.Type(),
				Loc:   []string{locQuery, fe.Field()},
				Msg:   fe.InputMessage(),
				Input: raw[fe.Field()],
				Ctx:   constraintContext(fe),
			})
		}
	}

	if len(details) > 0 {
		return RidesByMonthRequest{}, sortByField(details, fields[0].name, fields[1].name)
	}
	return req, nil
}

// lastValue returns the last occurrence of a repeated parameter.
func lastValue(query url.Values, name string) (string, bool) {
	values, ok := query[name]
	if !ok || len(values) == 0 {
		return "", false
	}
	return values[len(values)-1], true
}

// constraintShortNames maps validator tags to the ctx keys clients expect.
var constraintShortNames = map[string]string{
	"gte": "ge",
	"gt":  "gt",
	"lte": "le",
	"lt":  "lt",
}

func constraintContext(fe validation.ValidationError) map[string]interface{} {
	key, ok := constraintShortNames[fe.Tag()]
	if !ok {
		return nil
	}
	if n, err := strconv.Atoi(fe.Param()); err == nil {
		return map[string]interface{}{key: n}
	}
	return map[string]interface{}{key: fe.Param()}
}

// sortByField orders details by parameter declaration order, keeping the
// relative order of details for the same parameter.
func sortByField(details []models.ValidationDetail, order ...string) []models.ValidationDetail {
	sorted := make([]models.ValidationDetail, 0, len(details))
	for _, name := range order {
		for _, d := range details {
			if d.Loc[len(d.Loc)-1] == name {
				sorted = append(sorted, d)
			}
		}
	}
	return sorted
}
