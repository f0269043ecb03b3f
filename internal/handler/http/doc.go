// Package http implements the development server's REST API: the metering
// endpoints the console talks to.
//
// It exposes route wiring, request handlers, and middleware. Cross-cutting
// concerns such as authentication, permission checks, request tracing and
// access logging are handled in this package before requests are delegated
// to the service layer.
package http
