package http

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/MKhiriev/meter-console/internal/config"
	"github.com/MKhiriev/meter-console/internal/logger"
	"github.com/MKhiriev/meter-console/internal/service"
	"github.com/MKhiriev/meter-console/internal/store"
	"github.com/MKhiriev/meter-console/models"
)

// newTestServer serves the full route table over the seeded in-memory
// directory.
func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()

	seed, err := store.NewDirectorySeed(store.DefaultSeedUsers(), bcrypt.MinCost)
	require.NoError(t, err)

	services := service.NewServices(
		store.NewMemoryDirectory(seed, logger.Nop()),
		config.Auth{TokenSignKey: "routes-test", TokenIssuer: "meter-api", AccessTokenDuration: time.Minute, RefreshTokenDuration: time.Hour},
		models.NewAppBuildInfo("1.2.3", "", ""),
		logger.Nop(),
	)

	srv := httptest.NewServer(NewHandler(services, logger.Nop()).Init())
	t.Cleanup(srv.Close)
	return srv
}

func call(t *testing.T, srv *httptest.Server, method, path, token, body string) (*http.Response, []byte) {
	t.Helper()

	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req, err := http.NewRequest(method, srv.URL+path, reader)
	require.NoError(t, err)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := srv.Client().Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	b, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp, b
}

func signIn(t *testing.T, srv *httptest.Server, username string) models.Session {
	t.Helper()

	resp, body := call(t, srv, http.MethodPost, "/api/auth/signin", "", `{"username":"`+username+`","password":"`+username+`"}`)
	require.Equal(t, http.StatusOK, resp.StatusCode, string(body))

	var session models.Session
	require.NoError(t, json.Unmarshal(body, &session))
	return session
}

func TestRoutes_SignIn(t *testing.T) {
	srv := newTestServer(t)

	session := signIn(t, srv, "operator")

	assert.NotEmpty(t, session.AccessToken)
	assert.NotEmpty(t, session.RefreshToken)
	assert.Equal(t, "operator", session.User.Username)
}

func TestRoutes_SignIn_Rejections(t *testing.T) {
	srv := newTestServer(t)

	tests := []struct {
		name string
		body string
		want int
	}{
		{name: "wrong password", body: `{"username":"operator","password":"x"}`, want: http.StatusUnauthorized},
		{name: "inactive", body: `{"username":"retired","password":"retired"}`, want: http.StatusUnauthorized},
		{name: "empty", body: `{}`, want: http.StatusBadRequest},
		{name: "bad json", body: `{`, want: http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, body := call(t, srv, http.MethodPost, "/api/auth/signin", "", tt.body)
			assert.Equal(t, tt.want, resp.StatusCode)
			assert.Contains(t, string(body), `"error"`)
		})
	}
}

func TestRoutes_Refresh(t *testing.T) {
	srv := newTestServer(t)
	session := signIn(t, srv, "analyst")

	resp, body := call(t, srv, http.MethodPost, "/api/auth/refresh", "", `{"refreshToken":"`+session.RefreshToken+`"}`)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var refreshed models.Session
	require.NoError(t, json.Unmarshal(body, &refreshed))
	assert.NotEmpty(t, refreshed.AccessToken)
	assert.Empty(t, refreshed.RefreshToken)

	resp, _ = call(t, srv, http.MethodGet, "/api/reports/consumption?period=2026-01", refreshed.AccessToken, "")
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	resp, _ = call(t, srv, http.MethodPost, "/api/auth/refresh", "", `{"refreshToken":"`+session.AccessToken+`"}`)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestRoutes_Me(t *testing.T) {
	srv := newTestServer(t)
	session := signIn(t, srv, "admin")

	resp, body := call(t, srv, http.MethodGet, "/api/auth/me", session.AccessToken, "")
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var user models.User
	require.NoError(t, json.Unmarshal(body, &user))
	assert.Equal(t, "admin", user.Username)
	require.Len(t, user.Roles, 1)
	assert.Len(t, user.Roles[0].Permissions, 4)

	resp, _ = call(t, srv, http.MethodGet, "/api/auth/me", "", "")
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestRoutes_ReportPermissions(t *testing.T) {
	srv := newTestServer(t)
	analyst := signIn(t, srv, "analyst").AccessToken
	operator := signIn(t, srv, "operator").AccessToken

	tests := []struct {
		name  string
		token string
		path  string
		want  int
	}{
		{name: "analyst consumption", token: analyst, path: "/api/reports/consumption?period=2026-02", want: http.StatusOK},
		{name: "analyst reading stats", token: analyst, path: "/api/reports/reading-stats?period=2026-02", want: http.StatusOK},
		{name: "analyst yearly", token: analyst, path: "/api/reports/yearly-stats?year=2026", want: http.StatusOK},
		{name: "analyst alarms", token: analyst, path: "/api/reports/alarms?period=2026-02", want: http.StatusForbidden},
		{name: "operator alarms", token: operator, path: "/api/reports/alarms?period=2026-02", want: http.StatusOK},
		{name: "operator roles", token: operator, path: "/api/roles", want: http.StatusForbidden},
		{name: "invalid period", token: operator, path: "/api/reports/consumption?period=feb", want: http.StatusBadRequest},
		{name: "invalid year", token: operator, path: "/api/reports/yearly-stats?year=x", want: http.StatusBadRequest},
		{name: "no token", token: "", path: "/api/reports/consumption?period=2026-02", want: http.StatusUnauthorized},
		{name: "garbage token", token: "garbage", path: "/api/reports/consumption?period=2026-02", want: http.StatusUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, _ := call(t, srv, http.MethodGet, tt.path, tt.token, "")
			assert.Equal(t, tt.want, resp.StatusCode)
		})
	}
}

func TestRoutes_RolePermissionLinks(t *testing.T) {
	srv := newTestServer(t)
	root := signIn(t, srv, models.SuperuserUsername).AccessToken

	resp, body := call(t, srv, http.MethodGet, "/api/role-permissions", root, "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var links []models.RolePermissionLink
	require.NoError(t, json.Unmarshal(body, &links))
	before := len(links)

	// analyst gains alarms.view
	resp, body = call(t, srv, http.MethodPost, "/api/role-permissions", root, `{"rolId":3,"permissionId":2}`)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	var link models.RolePermissionLink
	require.NoError(t, json.Unmarshal(body, &link))
	assert.Equal(t, models.ID(3), link.RolID)

	analyst := signIn(t, srv, "analyst").AccessToken
	resp, _ = call(t, srv, http.MethodGet, "/api/reports/alarms?period=2026-02", analyst, "")
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	resp, _ = call(t, srv, http.MethodDelete, "/api/role-permissions/"+link.ID.String(), root, "")
	assert.Equal(t, http.StatusNoContent, resp.StatusCode)

	// the same token loses the permission on the next request
	resp, _ = call(t, srv, http.MethodGet, "/api/reports/alarms?period=2026-02", analyst, "")
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)

	resp, _ = call(t, srv, http.MethodDelete, "/api/role-permissions/"+link.ID.String(), root, "")
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	resp, _ = call(t, srv, http.MethodDelete, "/api/role-permissions/abc", root, "")
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	resp, _ = call(t, srv, http.MethodPost, "/api/role-permissions", root, `{"rolId":99,"permissionId":2}`)
	assert.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)

	resp, body = call(t, srv, http.MethodGet, "/api/role-permissions", root, "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.NoError(t, json.Unmarshal(body, &links))
	assert.Len(t, links, before)
}

func TestRoutes_Catalogs(t *testing.T) {
	srv := newTestServer(t)
	admin := signIn(t, srv, "admin").AccessToken

	resp, body := call(t, srv, http.MethodGet, "/api/permissions", admin, "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var permissions []models.Permission
	require.NoError(t, json.Unmarshal(body, &permissions))
	assert.Len(t, permissions, 4)

	resp, body = call(t, srv, http.MethodGet, "/api/roles", admin, "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var roles []models.Role
	require.NoError(t, json.Unmarshal(body, &roles))
	assert.Len(t, roles, 3)
	for _, r := range roles {
		assert.Empty(t, r.Permissions)
	}
}

func TestRoutes_Version(t *testing.T) {
	srv := newTestServer(t)

	resp, body := call(t, srv, http.MethodGet, "/api/version", "", "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.NotEmpty(t, resp.Header.Get(traceIDHeader))

	var version models.VersionResponse
	require.NoError(t, json.Unmarshal(body, &version))
	assert.Equal(t, "1.2.3", version.Version)
	assert.Equal(t, "N/A", version.Commit)
}

func TestRoutes_UnknownMethodIsNotFound(t *testing.T) {
	srv := newTestServer(t)

	resp, _ := call(t, srv, http.MethodPut, "/api/auth/signin", "", "")
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}
