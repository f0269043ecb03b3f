// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides the transport layer between the console and the
// metering admin API.
//
// [HTTPGateway] issues JSON requests over resty, attaches the bearer token
// and a trace id, maps HTTP status codes to the sentinel errors in errors.go
// and raises a single unauthorized notification for every 401 received
// outside the public authentication endpoints. The typed API in api.go
// ([AuthAPI], [RolePermissionAPI], [ReportAPI]) is built on top of it.
package adapter

import (
	"context"

	"github.com/MKhiriev/meter-console/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/adapter_mock.go -package=mock

// AuthAPI covers the authentication endpoints and bearer token handling.
type AuthAPI interface {
	// SignIn exchanges credentials for a session. A 401 from this endpoint
	// never raises the unauthorized notification.
	SignIn(ctx context.Context, credentials models.Credentials) (models.Session, error)

	// Refresh exchanges a refresh token for a new session. A 401 from this
	// endpoint never raises the unauthorized notification.
	Refresh(ctx context.Context, refreshToken string) (models.Session, error)

	// Me returns the profile of the user owning the current token.
	Me(ctx context.Context) (models.User, error)

	// SetToken stores the bearer token attached to authenticated requests.
	// An empty token removes the header.
	SetToken(token string)
}

// RolePermissionAPI covers the coarse role/permission endpoints. The backend
// has no filtered query and no delete-by-pair, so callers reconcile
// client-side.
type RolePermissionAPI interface {
	ListPermissions(ctx context.Context) ([]models.Permission, error)
	ListRoles(ctx context.Context) ([]models.Role, error)
	ListRolePermissions(ctx context.Context) ([]models.RolePermissionLink, error)
	CreateRolePermission(ctx context.Context, rolID, permissionID models.ID) (models.RolePermissionLink, error)
	DeleteRolePermission(ctx context.Context, linkID models.ID) error
}

// ReportAPI covers the dashboard report endpoints. period is "YYYY-MM".
type ReportAPI interface {
	GetConsumption(ctx context.Context, period string) ([]models.ConsumptionRow, error)
	GetReadingStats(ctx context.Context, period string) (models.ReadingStats, error)
	GetAlarms(ctx context.Context, period string) ([]models.AlarmRow, error)
	GetYearlyStats(ctx context.Context, year int) (models.YearlyStats, error)
}

// Gateway is the full typed API of the metering backend plus the
// unauthorized notification hook. [HTTPGateway] implements it.
type Gateway interface {
	AuthAPI
	RolePermissionAPI
	ReportAPI

	// OnUnauthorized replaces the single unauthorized handler. A nil handler
	// disables notifications.
	OnUnauthorized(handler UnauthorizedHandler)
}
