// Package server runs the catalog HTTP server.
//
// It owns the listener lifecycle: startup, termination signal handling and
// graceful shutdown.
package server
