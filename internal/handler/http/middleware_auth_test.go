package http

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/meter-console/internal/logger"
	"github.com/MKhiriev/meter-console/internal/service"
	"github.com/MKhiriev/meter-console/internal/store"
	"github.com/MKhiriev/meter-console/internal/utils"
	"github.com/MKhiriev/meter-console/models"
)

// ---- Mock AuthService ----

// mockAuthService implements service.AuthService for unit tests.
// Each method field can be overridden per test case.
type mockAuthService struct {
	signInFn     func(ctx context.Context, credentials models.Credentials) (models.Session, error)
	refreshFn    func(ctx context.Context, refreshToken string) (models.Session, error)
	parseTokenFn func(ctx context.Context, tokenString string) (models.Token, error)
	meFn         func(ctx context.Context, userID models.ID) (models.User, error)
}

func (m *mockAuthService) SignIn(ctx context.Context, credentials models.Credentials) (models.Session, error) {
	return m.signInFn(ctx, credentials)
}

func (m *mockAuthService) Refresh(ctx context.Context, refreshToken string) (models.Session, error) {
	return m.refreshFn(ctx, refreshToken)
}

func (m *mockAuthService) ParseAccessToken(ctx context.Context, tokenString string) (models.Token, error) {
	return m.parseTokenFn(ctx, tokenString)
}

func (m *mockAuthService) Me(ctx context.Context, userID models.ID) (models.User, error) {
	return m.meFn(ctx, userID)
}

// ---- Helpers ----

func newHandlerWithAuthService(authSvc service.AuthService) *Handler {
	return &Handler{
		logger: logger.Nop(),
		services: &service.Services{
			AuthService:   authSvc,
			Authorization: service.NewAuthorizationResolver(),
		},
	}
}

func acceptingAuth(user models.User) *mockAuthService {
	return &mockAuthService{
		parseTokenFn: func(_ context.Context, tokenString string) (models.Token, error) {
			if tokenString != "good" {
				return models.Token{}, service.ErrTokenIsExpiredOrInvalid
			}
			return models.Token{UserID: user.UserID}, nil
		},
		meFn: func(_ context.Context, userID models.ID) (models.User, error) {
			if userID != user.UserID {
				return models.User{}, store.ErrUserNotFound
			}
			return user, nil
		},
	}
}

func executeAuth(h *Handler, authHeader string, next http.Handler) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/test", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	rr := httptest.NewRecorder()
	h.auth(next).ServeHTTP(rr, req)
	return rr
}

// ---- getTokenFromAuthHeader ----

func TestGetTokenFromAuthHeader_TableTest(t *testing.T) {
	tests := []struct {
		name      string
		header    string
		wantToken string
		wantErr   error
	}{
		{name: "valid Bearer token", header: "Bearer my-jwt-token", wantToken: "my-jwt-token"},
		{name: "lowercase scheme", header: "bearer my-jwt-token", wantToken: "my-jwt-token"},
		{name: "no token part", header: "Bearer", wantErr: ErrInvalidAuthorizationHeader},
		{name: "empty token", header: "Bearer ", wantErr: ErrEmptyToken},
		{name: "basic scheme", header: "Basic dXNlcjpwYXNz", wantErr: ErrInvalidAuthorizationHeader},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			token, err := getTokenFromAuthHeader(tt.header)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantToken, token)
		})
	}
}

// ---- auth ----

func TestAuth_TableTest(t *testing.T) {
	operator := models.User{UserID: 3, Username: "operator"}

	tests := []struct {
		name       string
		header     string
		auth       *mockAuthService
		wantStatus int
		wantNext   bool
	}{
		{name: "missing header", header: "", auth: acceptingAuth(operator), wantStatus: http.StatusUnauthorized},
		{name: "malformed header", header: "Token abc", auth: acceptingAuth(operator), wantStatus: http.StatusUnauthorized},
		{name: "invalid token", header: "Bearer bad", auth: acceptingAuth(operator), wantStatus: http.StatusUnauthorized},
		{
			name:   "user gone",
			header: "Bearer good",
			auth: &mockAuthService{
				parseTokenFn: func(context.Context, string) (models.Token, error) { return models.Token{UserID: 9}, nil },
				meFn: func(context.Context, models.ID) (models.User, error) {
					return models.User{}, errors.New("not found")
				},
			},
			wantStatus: http.StatusUnauthorized,
		},
		{name: "valid token", header: "Bearer good", auth: acceptingAuth(operator), wantStatus: http.StatusOK, wantNext: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			called := false
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				called = true

				userID, ok := utils.GetUserIDFromContext(r.Context())
				assert.True(t, ok)
				assert.Equal(t, operator.UserID, userID)
				user, ok := userFromContext(r)
				assert.True(t, ok)
				assert.Equal(t, operator, user)

				w.WriteHeader(http.StatusOK)
			})

			rr := executeAuth(newHandlerWithAuthService(tt.auth), tt.header, next)

			assert.Equal(t, tt.wantStatus, rr.Code)
			assert.Equal(t, tt.wantNext, called)
		})
	}
}

// ---- requirePermission ----

func TestRequirePermission(t *testing.T) {
	reportsView := models.Permission{PermissionID: 1, PermissionName: models.PermissionViewReports}

	tests := []struct {
		name       string
		user       models.User
		wantStatus int
	}{
		{name: "granted through role", user: models.User{UserID: 4, Username: "analyst", Roles: []models.Role{{RolID: 3, Permissions: []models.Permission{reportsView}}}}, wantStatus: http.StatusOK},
		{name: "granted directly", user: models.User{UserID: 6, Username: "guest", Permissions: []models.Permission{reportsView}}, wantStatus: http.StatusOK},
		{name: "superuser", user: models.User{UserID: 1, Username: models.SuperuserUsername}, wantStatus: http.StatusOK},
		{name: "missing", user: models.User{UserID: 3, Username: "operator", Roles: []models.Role{{RolID: 2}}}, wantStatus: http.StatusForbidden},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newHandlerWithAuthService(acceptingAuth(tt.user))
			next := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) { w.WriteHeader(http.StatusOK) })

			rr := executeAuth(h, "Bearer good", h.requirePermission(models.PermissionViewReports)(next))

			assert.Equal(t, tt.wantStatus, rr.Code)
		})
	}
}

func TestRequirePermission_WithoutAuth(t *testing.T) {
	h := newHandlerWithAuthService(&mockAuthService{})
	next := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) { w.WriteHeader(http.StatusOK) })

	rr := httptest.NewRecorder()
	h.requirePermission(models.PermissionViewReports)(next).ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusForbidden, rr.Code)
}
