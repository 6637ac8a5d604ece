// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package server

import "context"

// Server defines the lifecycle contract of the application server.
type Server interface {
	// RunServer starts every enabled transport and blocks until ctx is
	// cancelled, a termination signal arrives, or a transport fails. All
	// transports are shut down before it returns.
	RunServer(ctx context.Context) error
}

// transport is one listener managed by the server.
type transport interface {
	// name identifies the transport in logs.
	name() string

	// listen binds the address so that a busy port fails startup before
	// anything is served.
	listen() error

	// release closes a bound listener that was never served.
	release()

	// serve blocks until the transport stops. A stop caused by shutdown is
	// not an error.
	serve() error

	// shutdown stops the transport, waiting for in-flight requests until
	// ctx is done.
	shutdown(ctx context.Context) error
}
