package service

import (
	"context"

	"github.com/MKhiriev/meter-console/models"
)

// AuthService issues and validates the development server's tokens.
type AuthService interface {
	SignIn(ctx context.Context, credentials models.Credentials) (models.Session, error)
	Refresh(ctx context.Context, refreshToken string) (models.Session, error)
	ParseAccessToken(ctx context.Context, tokenString string) (models.Token, error)
	Me(ctx context.Context, userID models.ID) (models.User, error)
}

// DirectoryService exposes the permission catalog, the role catalog and the
// role/permission join table.
type DirectoryService interface {
	ListPermissions(ctx context.Context) ([]models.Permission, error)
	ListRoles(ctx context.Context) ([]models.Role, error)
	ListLinks(ctx context.Context) ([]models.RolePermissionLink, error)
	CreateLink(ctx context.Context, request models.CreateRolePermissionRequest) (models.RolePermissionLink, error)
	DeleteLink(ctx context.Context, linkID models.ID) error
}

// ReportService produces the dashboard reports. period is "YYYY-MM".
type ReportService interface {
	Consumption(ctx context.Context, period string) ([]models.ConsumptionRow, error)
	ReadingStats(ctx context.Context, period string) (models.ReadingStats, error)
	Alarms(ctx context.Context, period string) ([]models.AlarmRow, error)
	YearlyStats(ctx context.Context, year int) (models.YearlyStats, error)
}

type AppInfoService interface {
	GetAppVersion(ctx context.Context) models.VersionResponse
}
