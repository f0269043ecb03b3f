package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/meter-console/models"
)

// Page names registered in [RootModel].
const (
	pageLogin     = "login"
	pageMenu      = "menu"
	pageDashboard = "dashboard"
	pageRoles     = "roles"
	pageProfile   = "profile"
)

// NavigateTo switches the active page. Payload, if set, is delivered to the
// new page instead of calling its Init.
type NavigateTo struct {
	Page    string
	Payload tea.Msg
}

// LoginResult is produced by the login form once the sign-in call returns.
type LoginResult struct {
	Session models.Session
	Err     error
}

type sessionExpiredMsg struct {
	err error
}

type loggedOutMsg struct{}

type refreshDoneMsg struct {
	err error
}

type reportsChangedMsg struct{}

type rolesLoadedMsg struct {
	roles []models.Role
	err   error
}

type rolePermissionsLoadedMsg struct {
	view models.RolePermissions
	err  error
}

type assignmentDoneMsg struct {
	permission string
	assigned   bool
	err        error
}

type userReloadedMsg struct {
	user models.User
	err  error
}

type copiedMsg struct {
	err error
}

type clearStatusMsg struct{}

// sessionRestoredMsg is delivered to the active page after an expired
// session was extended, so it can reload what failed.
type sessionRestoredMsg struct{}

// loginNotice is shown above the login form.
type loginNotice struct {
	text string
}

var refreshFailedNotice = loginNotice{text: "Session could not be extended, sign in again"}
