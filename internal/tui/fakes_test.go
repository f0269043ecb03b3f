package tui

import (
	"context"
	"sync"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/meter-console/internal/dates"
	"github.com/MKhiriev/meter-console/internal/service"
	"github.com/MKhiriev/meter-console/models"
)

// ---- users ----

var (
	reportsView = models.Permission{PermissionID: 1, PermissionName: models.PermissionViewReports}
	alarmsView  = models.Permission{PermissionID: 2, PermissionName: models.PermissionViewAlarms}
	rolesManage = models.Permission{PermissionID: 3, PermissionName: models.PermissionManageRoles}
	profileView = models.Permission{PermissionID: 4, PermissionName: models.PermissionViewProfile}

	analystUser = models.User{UserID: 4, Username: "analyst", IsActive: true, Roles: []models.Role{
		{RolID: 3, Name: "analyst", Permissions: []models.Permission{reportsView}},
	}}
	adminUser = models.User{UserID: 2, Username: "admin", IsActive: true, Roles: []models.Role{
		{RolID: 1, Name: "administrator", Permissions: []models.Permission{reportsView, alarmsView, rolesManage, profileView}},
	}}
)

// ---- session ----

type fakeSession struct {
	mu          sync.Mutex
	view        service.SessionView
	credentials []models.Credentials
	loginErr    error
	refreshErr  error
	refreshes   int
	logouts     int
}

func newFakeSession(user models.User) *fakeSession {
	s := &fakeSession{}
	if user.Username != "" {
		s.view = service.SessionView{User: user, Token: "token", State: service.StateAuthenticated}
	} else {
		s.view = service.SessionView{State: service.StateAnonymous}
	}
	return s
}

func (s *fakeSession) Restore(context.Context) error { return nil }

func (s *fakeSession) Login(_ context.Context, credentials models.Credentials) (models.Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.credentials = append(s.credentials, credentials)
	if s.loginErr != nil {
		return models.Session{}, s.loginErr
	}
	return models.Session{AccessToken: "token", User: models.User{Username: credentials.Username}}, nil
}

func (s *fakeSession) Logout(context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.logouts++
	s.view = service.SessionView{State: service.StateAnonymous}
	return nil
}

func (s *fakeSession) Refresh(context.Context) (models.Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.refreshes++
	return models.Session{}, s.refreshErr
}

func (s *fakeSession) UpdateUserSession(context.Context, models.User) error { return nil }

func (s *fakeSession) ReloadUser(context.Context) (models.User, error) {
	return s.Snapshot().User, nil
}

func (s *fakeSession) Snapshot() service.SessionView {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.view
}

func (s *fakeSession) OnSessionExpired(func(err error)) {}
func (s *fakeSession) OnLogout(func())                  {}

// ---- reports ----

type fakeReports struct {
	mu       sync.Mutex
	state    service.ReportState
	periods  []string
	reloads  int
	started  bool
	stopped  bool
	listener func()
}

func (r *fakeReports) SetPeriod(period string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.periods = append(r.periods, period)
	r.state.CurrentPeriod = period
}

func (r *fakeReports) Reload() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.reloads++
}

func (r *fakeReports) State() service.ReportState {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.state
}

func (r *fakeReports) OnChange(listener func()) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.listener = listener
}

func (r *fakeReports) Start(context.Context) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.started = true
}

func (r *fakeReports) Stop() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.stopped = true
}

func (r *fakeReports) setSnapshot(snapshot *models.ReportSnapshot) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.state.Snapshot = snapshot
}

// ---- roles ----

type fakeRoles struct {
	mu        sync.Mutex
	roles     []models.Role
	catalog   []models.Permission
	assigned  map[models.ID][]models.ID
	assignErr error
}

func newFakeRoles() *fakeRoles {
	return &fakeRoles{
		roles: []models.Role{
			{RolID: 1, Name: "administrator", IsActive: true},
			{RolID: 3, Name: "analyst", IsActive: true},
		},
		catalog: []models.Permission{reportsView, alarmsView, rolesManage, profileView},
		assigned: map[models.ID][]models.ID{
			1: {1, 2, 3, 4},
			3: {1},
		},
	}
}

func (f *fakeRoles) ListRoles(context.Context) ([]models.Role, error) {
	return f.roles, nil
}

func (f *fakeRoles) GetAssignedAndAvailable(_ context.Context, rolID models.ID) (models.RolePermissions, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	view := models.RolePermissions{RolID: rolID, All: f.catalog}
	for _, id := range f.assigned[rolID] {
		for _, p := range f.catalog {
			if p.PermissionID == id {
				view.Assigned = append(view.Assigned, p)
			}
		}
	}
	return view, nil
}

func (f *fakeRoles) Assign(_ context.Context, rolID, permissionID models.ID) (models.RolePermissionLink, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.assignErr != nil {
		return models.RolePermissionLink{}, f.assignErr
	}
	f.assigned[rolID] = append(f.assigned[rolID], permissionID)
	return models.RolePermissionLink{ID: 99, RolID: rolID, PermissionID: permissionID}, nil
}

func (f *fakeRoles) Unassign(_ context.Context, rolID, permissionID models.ID) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.assignErr != nil {
		return f.assignErr
	}
	ids := f.assigned[rolID]
	for i, id := range ids {
		if id == permissionID {
			f.assigned[rolID] = append(ids[:i:i], ids[i+1:]...)
			return nil
		}
	}
	return service.ErrAssignmentNotFound
}

// ---- dates ----

type fixedDates struct {
	*dates.Service
}

func (fixedDates) CurrentMonthString() string { return "2026-02" }

// ---- harness ----

type harness struct {
	session  *fakeSession
	roles    *fakeRoles
	reports  []*fakeReports
	services consoleServices
}

func newHarness(t *testing.T, user models.User) *harness {
	t.Helper()

	d, err := dates.NewService("America/Lima")
	require.NoError(t, err)

	h := &harness{session: newFakeSession(user), roles: newFakeRoles()}
	h.services = consoleServices{
		session:       h.session,
		authorization: service.NewAuthorizationResolver(),
		roles:         h.roles,
		dates:         fixedDates{Service: d},
		newReports: func(period string, _ models.User) reportSource {
			r := &fakeReports{state: service.ReportState{CurrentPeriod: period}}
			h.reports = append(h.reports, r)
			return r
		},
	}
	return h
}

func (h *harness) lastReports(t *testing.T) *fakeReports {
	t.Helper()
	require.NotEmpty(t, h.reports)
	return h.reports[len(h.reports)-1]
}

// collect runs cmd and flattens batches. Commands that wait, such as
// tea.Tick, must not be passed in.
func collect(cmd tea.Cmd) []tea.Msg {
	if cmd == nil {
		return nil
	}
	msg := cmd()
	if batch, ok := msg.(tea.BatchMsg); ok {
		var out []tea.Msg
		for _, c := range batch {
			out = append(out, collect(c)...)
		}
		return out
	}
	return []tea.Msg{msg}
}

// findMsg returns the first message of type T produced by cmd.
func findMsg[T tea.Msg](t *testing.T, cmd tea.Cmd) T {
	t.Helper()
	for _, msg := range collect(cmd) {
		if m, ok := msg.(T); ok {
			return m
		}
	}
	var zero T
	require.Failf(t, "message not produced", "%T", zero)
	return zero
}

func keyRunes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}
