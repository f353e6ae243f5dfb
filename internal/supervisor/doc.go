// Taxi Trips - Zone-to-Zone Ride Analytics API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/taxitrips

/*
Package supervisor runs the long-lived parts of the server under a suture v4
supervisor tree.

# Overview

Services are grouped into two layers so that a failure in one does not take
down the other:

	RootSupervisor ("taxitrips")
	├── APISupervisor ("api-layer")
	│   └── HTTPServerService ("api-server")
	└── OpsSupervisor ("ops-layer")
	    └── HTTPServerService ("metrics-server", if METRICS_ENABLED)

A crashed service is restarted with backoff once FailureThreshold failures
accumulate. Canceling the context passed to Serve stops every service; each
HTTP server drains in-flight requests within its shutdown timeout.

Supervisor events are written through sutureslog into the zerolog logger:

	tree, err := supervisor.NewSupervisorTree(logging.NewSlogLogger(), supervisor.TreeConfig{
	    ShutdownTimeout: cfg.Server.ShutdownTimeout,
	})
	tree.AddAPIService(services.NewHTTPServerService("api-server", apiServer, cfg.Server.ShutdownTimeout))
	err = tree.Serve(ctx)

The trip data Provider is not a service. It has no background work and is
closed by main after the tree stops.
*/
package supervisor
