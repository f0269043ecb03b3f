package adapter

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strconv"

	"github.com/MKhiriev/meter-console/models"
)

const (
	mePath              = "/api/auth/me"
	permissionsPath     = "/api/permissions"
	rolesPath           = "/api/roles"
	rolePermissionsPath = "/api/role-permissions"

	consumptionPath  = "/api/reports/consumption"
	readingStatsPath = "/api/reports/reading-stats"
	alarmsPath       = "/api/reports/alarms"
	yearlyStatsPath  = "/api/reports/yearly-stats"
)

var (
	_ AuthAPI           = (*HTTPGateway)(nil)
	_ RolePermissionAPI = (*HTTPGateway)(nil)
	_ ReportAPI         = (*HTTPGateway)(nil)
	_ Gateway           = (*HTTPGateway)(nil)
)

// SignIn implements [AuthAPI]. POST /api/auth/signin.
func (g *HTTPGateway) SignIn(ctx context.Context, credentials models.Credentials) (models.Session, error) {
	var session models.Session
	if err := g.Post(ctx, signInPath, credentials, &session); err != nil {
		return models.Session{}, fmt.Errorf("sign in: %w", err)
	}
	return session, nil
}

// Refresh implements [AuthAPI]. POST /api/auth/refresh.
func (g *HTTPGateway) Refresh(ctx context.Context, refreshToken string) (models.Session, error) {
	var session models.Session
	if err := g.Post(ctx, refreshPath, models.RefreshRequest{RefreshToken: refreshToken}, &session); err != nil {
		return models.Session{}, fmt.Errorf("refresh: %w", err)
	}
	return session, nil
}

// Me implements [AuthAPI]. GET /api/auth/me.
func (g *HTTPGateway) Me(ctx context.Context) (models.User, error) {
	var user models.User
	if err := g.Get(ctx, mePath, nil, &user); err != nil {
		return models.User{}, fmt.Errorf("get profile: %w", err)
	}
	return user, nil
}

// ListPermissions implements [RolePermissionAPI]. GET /api/permissions.
func (g *HTTPGateway) ListPermissions(ctx context.Context) ([]models.Permission, error) {
	var permissions []models.Permission
	if err := g.Get(ctx, permissionsPath, nil, &permissions); err != nil {
		return nil, fmt.Errorf("list permissions: %w", err)
	}
	return permissions, nil
}

// ListRoles implements [RolePermissionAPI]. GET /api/roles.
func (g *HTTPGateway) ListRoles(ctx context.Context) ([]models.Role, error) {
	var roles []models.Role
	if err := g.Get(ctx, rolesPath, nil, &roles); err != nil {
		return nil, fmt.Errorf("list roles: %w", err)
	}
	return roles, nil
}

// ListRolePermissions implements [RolePermissionAPI]. GET
// /api/role-permissions returns the whole join table.
func (g *HTTPGateway) ListRolePermissions(ctx context.Context) ([]models.RolePermissionLink, error) {
	var links []models.RolePermissionLink
	if err := g.Get(ctx, rolePermissionsPath, nil, &links); err != nil {
		return nil, fmt.Errorf("list role permissions: %w", err)
	}
	return links, nil
}

// CreateRolePermission implements [RolePermissionAPI]. POST
// /api/role-permissions.
func (g *HTTPGateway) CreateRolePermission(ctx context.Context, rolID, permissionID models.ID) (models.RolePermissionLink, error) {
	var link models.RolePermissionLink
	body := models.CreateRolePermissionRequest{RolID: rolID, PermissionID: permissionID}
	if err := g.Post(ctx, rolePermissionsPath, body, &link); err != nil {
		return models.RolePermissionLink{}, fmt.Errorf("create role permission: %w", err)
	}
	return link, nil
}

// DeleteRolePermission implements [RolePermissionAPI]. DELETE
// /api/role-permissions/{id}.
func (g *HTTPGateway) DeleteRolePermission(ctx context.Context, linkID models.ID) error {
	if err := g.Delete(ctx, rolePermissionsPath+"/"+linkID.String(), nil); err != nil {
		return fmt.Errorf("delete role permission %s: %w", linkID, err)
	}
	return nil
}

// GetConsumption implements [ReportAPI].
func (g *HTTPGateway) GetConsumption(ctx context.Context, period string) ([]models.ConsumptionRow, error) {
	var rows []models.ConsumptionRow
	if err := g.Get(ctx, consumptionPath, periodQuery(period), &rows); err != nil {
		return nil, fmt.Errorf("get consumption: %w", err)
	}
	return rows, nil
}

// GetReadingStats implements [ReportAPI]. The endpoint answers with either
// an object or a one-element array.
func (g *HTTPGateway) GetReadingStats(ctx context.Context, period string) (models.ReadingStats, error) {
	var raw json.RawMessage
	if err := g.Get(ctx, readingStatsPath, periodQuery(period), &raw); err != nil {
		return models.ReadingStats{}, fmt.Errorf("get reading stats: %w", err)
	}
	return decodeOneOrMany[models.ReadingStats](raw)
}

// GetAlarms implements [ReportAPI].
func (g *HTTPGateway) GetAlarms(ctx context.Context, period string) ([]models.AlarmRow, error) {
	var rows []models.AlarmRow
	if err := g.Get(ctx, alarmsPath, periodQuery(period), &rows); err != nil {
		return nil, fmt.Errorf("get alarms: %w", err)
	}
	return rows, nil
}

// GetYearlyStats implements [ReportAPI]. The endpoint answers with either
// an object or a one-element array.
func (g *HTTPGateway) GetYearlyStats(ctx context.Context, year int) (models.YearlyStats, error) {
	var raw json.RawMessage
	query := url.Values{"year": []string{strconv.Itoa(year)}}
	if err := g.Get(ctx, yearlyStatsPath, query, &raw); err != nil {
		return models.YearlyStats{}, fmt.Errorf("get yearly stats: %w", err)
	}
	return decodeOneOrMany[models.YearlyStats](raw)
}

func periodQuery(period string) url.Values {
	return url.Values{"period": []string{period}}
}

// decodeOneOrMany decodes raw as T, or as []T keeping the first element.
// An empty array or empty body yields the zero T.
func decodeOneOrMany[T any](raw []byte) (T, error) {
	var zero T

	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		return zero, nil
	}

	if raw[0] == '[' {
		var many []T
		if err := json.Unmarshal(raw, &many); err != nil {
			return zero, fmt.Errorf("%w: %w", ErrDecodeResponse, err)
		}
		if len(many) == 0 {
			return zero, nil
		}
		return many[0], nil
	}

	var one T
	if err := json.Unmarshal(raw, &one); err != nil {
		return zero, fmt.Errorf("%w: %w", ErrDecodeResponse, err)
	}
	return one, nil
}
