package adapter

import "errors"

// Transport errors mapped from HTTP status codes by mapHTTPError.
var (
	ErrBadRequest          = errors.New("bad request")
	ErrUnauthorized        = errors.New("client unauthorized")
	ErrForbidden           = errors.New("forbidden")
	ErrNotFound            = errors.New("not found")
	ErrConflict            = errors.New("conflict")
	ErrInternalServerError = errors.New("internal server error")
	ErrBadGateway          = errors.New("bad gateway")
	ErrServiceUnavailable  = errors.New("service unavailable")
)

var (
	// ErrTransport wraps failures that happened before a response was
	// received (connection refused, timeout, cancelled context).
	ErrTransport = errors.New("transport failure")
	// ErrDecodeResponse indicates a 2xx response whose body did not match
	// the expected shape.
	ErrDecodeResponse = errors.New("decode response")
)

// UnauthorizedError is passed to the [UnauthorizedHandler]. Token is the
// bearer token the rejected request was sent with, empty when none was
// sent. It matches [ErrUnauthorized] with errors.Is.
type UnauthorizedError struct {
	Token string
	Err   error
}

func (e *UnauthorizedError) Error() string { return e.Err.Error() }

func (e *UnauthorizedError) Unwrap() error { return e.Err }
