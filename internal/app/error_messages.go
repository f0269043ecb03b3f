// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains shared application-layer constants used across the
// development API handlers and middleware.
//
// All Msg* constants are human-readable message strings that are written into
// the "error" field of HTTP response bodies.
package app

const (
	// MsgInvalidJSON is returned when the request body cannot be decoded.
	MsgInvalidJSON = "invalid JSON was passed"

	// MsgInvalidLinkID is returned when the role-permission link ID in the
	// path is not a positive integer.
	MsgInvalidLinkID = "invalid link id"

	// MsgInvalidYear is returned when the yearly report is asked for a year
	// that is not a number.
	MsgInvalidYear = "invalid year"

	// MsgTokenIsExpiredOrInvalid is returned when a bearer token is expired
	// or cannot be verified.
	MsgTokenIsExpiredOrInvalid = "token is expired or invalid"

	// MsgUnauthorized is returned when the token is valid but its user can
	// no longer be resolved.
	MsgUnauthorized = "unauthorized"

	// MsgAccessDenied is returned when the user lacks the permission the
	// route requires.
	MsgAccessDenied = "access denied"

	// MsgInternalServerError replaces the message of every 5xx response.
	MsgInternalServerError = "internal server error"
)
