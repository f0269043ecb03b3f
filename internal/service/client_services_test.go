package service

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/meter-console/internal/adapter"
	"github.com/MKhiriev/meter-console/internal/config"
	"github.com/MKhiriev/meter-console/internal/logger"
	"github.com/MKhiriev/meter-console/internal/mock"
	"github.com/MKhiriev/meter-console/models"
)

const signInBody = `{
	"accessToken": "access-1",
	"refreshToken": "refresh-1",
	"user": {"userId": 7, "username": "operator", "isActive": true}
}`

func writeJSON(w http.ResponseWriter, status int, body string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write([]byte(body))
}

func newWiredServices(t *testing.T, routes func(r chi.Router)) (*ClientServices, *mock.MockSessionRepository) {
	t.Helper()

	r := chi.NewRouter()
	routes(r)
	srv := httptest.NewServer(r)
	t.Cleanup(srv.Close)

	gateway, err := adapter.NewHTTPGateway(config.ClientAdapter{HTTPAddress: srv.URL, RequestTimeout: 5 * time.Second}, logger.Nop())
	require.NoError(t, err)

	ctrl := gomock.NewController(t)
	repo := mock.NewMockSessionRepository(ctrl)

	services := NewClientServices(gateway, repo, fixedDates{}, config.ClientWorkers{PollInterval: time.Hour, DebounceDelay: testDebounce}, logger.Nop())
	return services, repo
}

func TestClientServices_SignInRejectionIsNotSessionExpiry(t *testing.T) {
	services, _ := newWiredServices(t, func(r chi.Router) {
		r.Post("/api/auth/signin", func(w http.ResponseWriter, _ *http.Request) {
			writeJSON(w, http.StatusUnauthorized, `{"message": "wrong password"}`)
		})
	})

	var expired atomic.Int32
	services.Session.OnSessionExpired(func(error) { expired.Add(1) })

	_, err := services.Session.Login(context.Background(), models.Credentials{Username: "operator", Password: "nope"})

	require.ErrorIs(t, err, ErrAuthenticationFailed)
	assert.Zero(t, expired.Load())
	assert.Equal(t, StateAnonymous, services.Session.Snapshot().State)
}

func TestClientServices_ProtectedRejectionExpiresSessionOnce(t *testing.T) {
	var seenToken atomic.Value
	services, repo := newWiredServices(t, func(r chi.Router) {
		r.Post("/api/auth/signin", func(w http.ResponseWriter, _ *http.Request) {
			writeJSON(w, http.StatusOK, signInBody)
		})
		r.Get("/api/roles", func(w http.ResponseWriter, r *http.Request) {
			seenToken.Store(r.Header.Get("Authorization"))
			writeJSON(w, http.StatusUnauthorized, `{"message": "token expired"}`)
		})
	})
	repo.EXPECT().Save(gomock.Any(), gomock.Any()).Return(nil)

	var (
		expired    atomic.Int32
		expiredErr atomic.Value
	)
	services.Session.OnSessionExpired(func(err error) {
		expired.Add(1)
		expiredErr.Store(err)
	})

	ctx := context.Background()
	_, err := services.Session.Login(ctx, models.Credentials{Username: "operator", Password: "secret"})
	require.NoError(t, err)

	_, err = services.RolePermissions.ListRoles(ctx)
	require.ErrorIs(t, err, ErrSessionExpired)
	_, err = services.RolePermissions.ListRoles(ctx)
	require.ErrorIs(t, err, ErrSessionExpired)

	assert.Equal(t, "Bearer access-1", seenToken.Load())
	assert.Equal(t, int32(1), expired.Load())
	assert.True(t, errors.Is(expiredErr.Load().(error), ErrSessionExpired))

	view := services.Session.Snapshot()
	assert.Equal(t, StateSessionExpired, view.State)
	assert.Equal(t, "operator", view.User.Username)
}

func TestClientServices_RefreshAfterExpiryRestoresAccess(t *testing.T) {
	var rolesCalls atomic.Int32
	services, repo := newWiredServices(t, func(r chi.Router) {
		r.Post("/api/auth/signin", func(w http.ResponseWriter, _ *http.Request) {
			writeJSON(w, http.StatusOK, signInBody)
		})
		r.Post("/api/auth/refresh", func(w http.ResponseWriter, _ *http.Request) {
			writeJSON(w, http.StatusOK, `{"accessToken": "access-2"}`)
		})
		r.Get("/api/roles", func(w http.ResponseWriter, r *http.Request) {
			rolesCalls.Add(1)
			if r.Header.Get("Authorization") != "Bearer access-2" {
				writeJSON(w, http.StatusUnauthorized, `{}`)
				return
			}
			writeJSON(w, http.StatusOK, `[{"rolId": 1, "name": "admin"}]`)
		})
	})
	repo.EXPECT().Save(gomock.Any(), gomock.Any()).Return(nil).Times(2)

	ctx := context.Background()
	_, err := services.Session.Login(ctx, models.Credentials{Username: "operator", Password: "secret"})
	require.NoError(t, err)

	_, err = services.RolePermissions.ListRoles(ctx)
	require.ErrorIs(t, err, ErrSessionExpired)

	session, err := services.Session.Refresh(ctx)
	require.NoError(t, err)
	assert.Equal(t, "access-2", session.AccessToken)
	assert.Equal(t, "refresh-1", session.RefreshToken)
	assert.Equal(t, StateAuthenticated, services.Session.Snapshot().State)

	roles, err := services.RolePermissions.ListRoles(ctx)
	require.NoError(t, err)
	require.Len(t, roles, 1)
	assert.Equal(t, "admin", roles[0].Name)
	assert.Equal(t, int32(2), rolesCalls.Load())
}

func TestClientServices_LogoutDropsToken(t *testing.T) {
	var lastAuth atomic.Value
	services, repo := newWiredServices(t, func(r chi.Router) {
		r.Post("/api/auth/signin", func(w http.ResponseWriter, _ *http.Request) {
			writeJSON(w, http.StatusOK, signInBody)
		})
		r.Get("/api/roles", func(w http.ResponseWriter, r *http.Request) {
			lastAuth.Store(r.Header.Get("Authorization"))
			writeJSON(w, http.StatusOK, `[]`)
		})
	})
	repo.EXPECT().Save(gomock.Any(), gomock.Any()).Return(nil)
	repo.EXPECT().Clear(gomock.Any()).Return(nil)

	ctx := context.Background()
	_, err := services.Session.Login(ctx, models.Credentials{Username: "operator", Password: "secret"})
	require.NoError(t, err)
	require.NoError(t, services.Session.Logout(ctx))

	_, err = services.RolePermissions.ListRoles(ctx)
	require.NoError(t, err)
	assert.Equal(t, "", lastAuth.Load())
}

func TestClientServices_ReportsStartForCurrentMonth(t *testing.T) {
	services, _ := newWiredServices(t, func(r chi.Router) {
		r.Get("/api/reports/consumption", func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "2026-02", r.URL.Query().Get("period"))
			writeJSON(w, http.StatusOK, `[{"meterId": "M-1", "consumedKwh": 12.5}]`)
		})
		r.Get("/api/reports/reading-stats", func(w http.ResponseWriter, _ *http.Request) {
			writeJSON(w, http.StatusOK, `{"period": "2026-02", "expected": 4, "received": 3}`)
		})
		r.Get("/api/reports/alarms", func(w http.ResponseWriter, _ *http.Request) {
			writeJSON(w, http.StatusOK, `[]`)
		})
		r.Get("/api/reports/yearly-stats", func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "2026", r.URL.Query().Get("year"))
			writeJSON(w, http.StatusOK, `{"year": 2026, "totalKwh": 100}`)
		})
	})

	reports := services.NewReports(services.Dates.CurrentMonthString(), models.User{Username: models.SuperuserUsername})
	t.Cleanup(reports.Stop)
	assert.Equal(t, "2026-02", reports.State().CurrentPeriod)

	reports.Start(context.Background())
	waitForSnapshot(t, reports, "2026-02")

	_, ok := models.SnapshotReport[[]models.AlarmRow](reports.State().Snapshot, models.ReportAlarms)
	assert.True(t, ok)
	rows, ok := models.SnapshotReport[[]models.ConsumptionRow](reports.State().Snapshot, models.ReportConsumption)
	require.True(t, ok)
	require.Len(t, rows, 1)
	assert.InDelta(t, 12.5, rows[0].ConsumedKWh, 1e-9)
}

func TestClientServices_NewReportsSkipsAlarmsWithoutPermission(t *testing.T) {
	var alarmCalls atomic.Int32
	services, _ := newWiredServices(t, func(r chi.Router) {
		r.Get("/api/reports/consumption", func(w http.ResponseWriter, _ *http.Request) {
			writeJSON(w, http.StatusOK, `[]`)
		})
		r.Get("/api/reports/reading-stats", func(w http.ResponseWriter, _ *http.Request) {
			writeJSON(w, http.StatusOK, `{"period": "2026-02"}`)
		})
		r.Get("/api/reports/alarms", func(w http.ResponseWriter, _ *http.Request) {
			alarmCalls.Add(1)
			writeJSON(w, http.StatusForbidden, `{"message": "forbidden"}`)
		})
		r.Get("/api/reports/yearly-stats", func(w http.ResponseWriter, _ *http.Request) {
			writeJSON(w, http.StatusOK, `{"year": 2026}`)
		})
	})

	analyst := models.User{
		UserID:   4,
		Username: "analyst",
		Roles: []models.Role{{RolID: 3, Permissions: []models.Permission{
			{PermissionID: 1, PermissionName: models.PermissionViewReports},
		}}},
	}

	reports := services.NewReports("2026-02", analyst)
	t.Cleanup(reports.Stop)
	reports.Start(context.Background())
	waitForSnapshot(t, reports, "2026-02")

	state := reports.State()
	assert.NoError(t, state.LastError)
	_, ok := models.SnapshotReport[[]models.AlarmRow](state.Snapshot, models.ReportAlarms)
	assert.False(t, ok)
	assert.Zero(t, alarmCalls.Load())
}

func TestClientServices_NewReportsIsIndependent(t *testing.T) {
	services, _ := newWiredServices(t, func(chi.Router) {})
	root := models.User{Username: models.SuperuserUsername}

	first := services.NewReports("2026-02", root)
	first.Stop()
	next := services.NewReports("2025-12", root)
	t.Cleanup(next.Stop)

	assert.NotSame(t, first, next)
	assert.Equal(t, "2025-12", next.State().CurrentPeriod)

	next.SetPeriod("2026-01")
	assert.Equal(t, "2026-01", next.State().CurrentPeriod)
	assert.Equal(t, "2026-02", first.State().CurrentPeriod)
}
