// Taxi Trips - Zone-to-Zone Ride Analytics API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/taxitrips

// @title Taxi Trips API
// @version 1.0
// @description Monthly ride counts between NYC taxi zones, computed on demand
// @description from the yellow taxi trip record Parquet files.
//
// @license.name AGPL-3.0-or-later
// @license.url https://www.gnu.org/licenses/agpl-3.0.html
//
// @BasePath /
// @schemes http https

package main
