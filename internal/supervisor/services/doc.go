// Taxi Trips - Zone-to-Zone Ride Analytics API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/taxitrips

/*
Package services provides suture.Service wrappers for the server's
listeners.

HTTPServerService adapts the blocking ListenAndServe/Shutdown lifecycle of
*http.Server to suture's context-aware Serve:

	server := &http.Server{Addr: cfg.Server.Addr(), Handler: router}
	tree.AddAPIService(services.NewHTTPServerService("api-server", server, 10*time.Second))

On context cancellation the server is shut down gracefully. A listener
failure (for example, the port is already in use) is returned to the
supervisor, which restarts the service with backoff.
*/
package services
