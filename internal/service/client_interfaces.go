package service

import (
	"context"
	"time"

	"github.com/MKhiriev/meter-console/models"
)

// SessionManager is the session lifecycle consumed by the presentation
// layer. [SessionStore] implements it.
type SessionManager interface {
	// Restore loads the persisted session once at startup.
	Restore(ctx context.Context) error

	// Login signs in and persists the new session. On failure the previous
	// session and state are kept.
	Login(ctx context.Context, credentials models.Credentials) (models.Session, error)

	// Logout drops the session from memory and disk and notifies the
	// logout handler.
	Logout(ctx context.Context) error

	// Refresh exchanges the refresh token for a new session. Any failure
	// ends the session.
	Refresh(ctx context.Context) (models.Session, error)

	// UpdateUserSession replaces the user of the current session.
	UpdateUserSession(ctx context.Context, user models.User) error

	// ReloadUser fetches the current user profile and stores it.
	ReloadUser(ctx context.Context) (models.User, error)

	// Snapshot returns the current view of the session.
	Snapshot() SessionView

	// OnSessionExpired replaces the handler called when the session moves
	// to [StateSessionExpired].
	OnSessionExpired(handler func(err error))

	// OnLogout replaces the handler called after every logout.
	OnLogout(handler func())
}

// Authorizer computes effective permissions. [AuthorizationResolver]
// implements it.
type Authorizer interface {
	EffectivePermissions(user models.User) models.PermissionSet
	Can(user models.User, permission string) bool
}

// RolePermissionManager edits the role/permission relation. It is
// implemented by [RolePermissionReconciler].
type RolePermissionManager interface {
	ListRoles(ctx context.Context) ([]models.Role, error)
	GetAssignedAndAvailable(ctx context.Context, rolID models.ID) (models.RolePermissions, error)
	Assign(ctx context.Context, rolID, permissionID models.ID) (models.RolePermissionLink, error)
	Unassign(ctx context.Context, rolID, permissionID models.ID) error
}

// ReportSource drives the dashboard reports. It is implemented by
// [ReportOrchestrator].
type ReportSource interface {
	SetPeriod(period string)
	Reload()
	State() ReportState
	OnChange(listener func())
}

// DateService formats dates in the reporting timezone.
type DateService interface {
	CurrentMonthString() string
	ToISODateString(t time.Time) string
	ShiftPeriod(period string, months int) (string, error)
	PeriodYear(period string) (int, error)
}
