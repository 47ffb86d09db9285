// Package server wires and runs the application's transport servers.
//
// It owns the HTTP server lifecycle: startup, signal handling, per-request
// timeouts and graceful shutdown.
package server
