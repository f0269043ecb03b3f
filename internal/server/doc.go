// Package server runs the development metering API.
//
// It owns the HTTP server lifecycle: startup, signal handling and graceful
// shutdown.
package server
