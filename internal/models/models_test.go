// Taxi Trips - Zone-to-Zone Ride Analytics API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/taxitrips

package models

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/goccy/go-json"

	"github.com/tomtom215/taxitrips/internal/validation"
)

func TestNewDate_DropsTimeOfDay(t *testing.T) {
	in := time.Date(2024, 1, 5, 17, 45, 12, 99, time.UTC)
	d := NewDate(in)

	if d.String() != "2024-01-05" {
		t.Errorf("String() = %q, want 2024-01-05", d.String())
	}
	if !d.Time().Equal(time.Date(2024, 1, 5, 0, 0, 0, 0, time.UTC)) {
		t.Errorf("Time() = %v, want midnight UTC", d.Time())
	}
}

func TestDate_JSON(t *testing.T) {
	d := NewDate(time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC))

	data, err := json.Marshal(d)
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}
	if string(data) != `"2024-02-01"` {
		t.Errorf("Marshal() = %s, want \"2024-02-01\"", data)
	}

	var decoded Date
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("Unmarshal() error = %v", err)
	}
	if !decoded.Time().Equal(d.Time()) {
		t.Errorf("Unmarshal() = %v, want %v", decoded, d)
	}
}

func TestDate_UnmarshalInvalid(t *testing.T) {
	tests := []string{`"2024-13-01"`, `"01/02/2024"`, `20240101`}

	for _, input := range tests {
		t.Run(input, func(t *testing.T) {
			var d Date
			if err := json.Unmarshal([]byte(input), &d); err == nil {
				t.Errorf("Unmarshal(%s) expected error, got %v", input, d)
			}
		})
	}
}

func TestNewMonthlyRideCount(t *testing.T) {
	tests := []struct {
		name    string
		count   int64
		wantErr bool
	}{
		{"zero", 0, false},
		{"positive", 2, false},
		{"negative", -1, true},
	}

	month := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mc, err := NewMonthlyRideCount(month, tt.count)
			if tt.wantErr {
				if err == nil {
					t.Fatal("expected validation error")
				}
				var verr *validation.RequestValidationError
				if !errors.As(err, &verr) {
					t.Errorf("error %v should wrap *validation.RequestValidationError", err)
				}
				if !strings.Contains(err.Error(), "ride_count") {
					t.Errorf("error %q should name ride_count", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if mc.RideCount != tt.count || mc.Month.String() != "2024-01-01" {
				t.Errorf("got %+v", mc)
			}
		})
	}
}

func TestNewZoneToZoneRideResponse(t *testing.T) {
	jan, err := NewMonthlyRideCount(time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), 2)
	if err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name     string
		src, dst int
		results  []MonthlyRideCount
		wantErr  string
	}{
		{name: "valid", src: 10, dst: 20, results: []MonthlyRideCount{jan}},
		{name: "nil results", src: 1, dst: 1},
		{name: "zone_src zero", src: 0, dst: 20, wantErr: "zone_src"},
		{name: "zone_dst zero", src: 10, dst: 0, wantErr: "zone_dst"},
		{
			name:    "negative count in results",
			src:     10,
			dst:     20,
			results: []MonthlyRideCount{{Month: jan.Month, RideCount: -5}},
			wantErr: "ride_count",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, err := NewZoneToZoneRideResponse(tt.src, tt.dst, tt.results)
			if tt.wantErr != "" {
				if err == nil {
					t.Fatalf("expected error containing %q", tt.wantErr)
				}
				if !strings.Contains(err.Error(), tt.wantErr) {
					t.Errorf("error = %v, want it to contain %q", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if resp.Results == nil {
				t.Error("Results should never be nil")
			}
			if resp.ZoneSrc != tt.src || resp.ZoneDst != tt.dst {
				t.Errorf("zones = %d->%d, want %d->%d", resp.ZoneSrc, resp.ZoneDst, tt.src, tt.dst)
			}
		})
	}
}

func TestZoneToZoneRideResponse_JSON(t *testing.T) {
	jan, _ := NewMonthlyRideCount(time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), 2)
	feb, _ := NewMonthlyRideCount(time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC), 1)

	resp, err := NewZoneToZoneRideResponse(10, 20, []MonthlyRideCount{jan, feb})
	if err != nil {
		t.Fatal(err)
	}

	data, err := json.Marshal(resp)
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}

	want := `{"zone_src":10,"zone_dst":20,"results":[{"month":"2024-01-01","ride_count":2},{"month":"2024-02-01","ride_count":1}]}`
	if string(data) != want {
		t.Errorf("Marshal() =\n%s\nwant\n%s", data, want)
	}
}

func TestZoneToZoneRideResponse_EmptyResultsJSON(t *testing.T) {
	resp, err := NewZoneToZoneRideResponse(5, 6, nil)
	if err != nil {
		t.Fatal(err)
	}

	data, err := json.Marshal(resp)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), `"results":[]`) {
		t.Errorf("Marshal() = %s, want empty results array", data)
	}
}

func TestValidationErrorResponse_JSON(t *testing.T) {
	body := ValidationErrorResponse{Detail: []ValidationDetail{
		{Type: "missing", Loc: []string{"query", "zone_src"}, Msg: "Field required"},
		{
			Type:  "greater_than_equal",
			Loc:   []string{"query", "zone_dst"},
			Msg:   "Input should be greater than or equal to 1",
			Input: "0",
			Ctx:   map[string]interface{}{"ge": 1},
		},
	}}

	data, err := json.Marshal(body)
	if err != nil {
		t.Fatal(err)
	}

	got := string(data)
	for _, want := range []string{
		`"type":"missing"`,
		`"loc":["query","zone_src"]`,
		`"input":null`,
		`"input":"0"`,
		`"ctx":{"ge":1}`,
	} {
		if !strings.Contains(got, want) {
			t.Errorf("Marshal() = %s, missing %s", got, want)
		}
	}
}
