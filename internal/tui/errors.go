// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"errors"
	"strings"

	"github.com/MKhiriev/meter-console/internal/adapter"
	"github.com/MKhiriev/meter-console/internal/service"
)

// humanizeError turns a service error into a line for the status bar.
func humanizeError(err error) string {
	if err == nil {
		return ""
	}

	switch {
	case errors.Is(err, service.ErrPermissionDenied):
		return "You do not have permission for this action"
	case errors.Is(err, service.ErrSessionExpired):
		return "Session expired"
	case errors.Is(err, service.ErrAssignmentExists):
		return "Permission is already assigned to the role"
	case errors.Is(err, service.ErrAssignmentNotFound):
		return "Permission is not assigned to the role"
	case errors.Is(err, adapter.ErrUnauthorized) && errors.Is(err, service.ErrAuthenticationFailed):
		return "Wrong username or password"
	}

	s := strings.ToLower(err.Error())
	if errors.Is(err, adapter.ErrTransport) ||
		strings.Contains(s, "connection refused") ||
		strings.Contains(s, "dial tcp") ||
		strings.Contains(s, "no such host") ||
		strings.Contains(s, "network is unreachable") ||
		strings.Contains(s, "i/o timeout") ||
		strings.Contains(s, "context deadline exceeded") {
		return "Network is down or the server is unavailable"
	}

	return err.Error()
}
