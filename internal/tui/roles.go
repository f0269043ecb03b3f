package tui

import (
	"context"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/meter-console/internal/service"
	"github.com/MKhiriev/meter-console/models"
)

type rolesFocus int

const (
	focusRoles rolesFocus = iota
	focusAssigned
	focusAvailable
)

// RolesModel edits which permissions each role carries. Enter on an
// available permission assigns it, enter on an assigned one removes it.
type RolesModel struct {
	ctx   context.Context
	roles service.RolePermissionManager

	list      []models.Role
	roleIdx   int
	view      models.RolePermissions
	available []models.Permission

	focus        rolesFocus
	assignedIdx  int
	availableIdx int

	busy    bool
	spinner spinner.Model
	status  string
	errMsg  string
}

func NewRolesModel(ctx context.Context, roles service.RolePermissionManager) *RolesModel {
	s := spinner.New()
	s.Spinner = spinner.MiniDot
	return &RolesModel{ctx: ctx, roles: roles, spinner: s}
}

func (m *RolesModel) Init() tea.Cmd {
	m.focus = focusRoles
	m.status = ""
	m.errMsg = ""
	m.busy = true
	return tea.Batch(m.spinner.Tick, m.cmdLoadRoles())
}

func (m *RolesModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case rolesLoadedMsg:
		if msg.err != nil {
			m.busy = false
			m.errMsg = humanizeError(msg.err)
			return m, nil
		}
		m.list = msg.roles
		m.roleIdx = clampIndex(m.roleIdx, len(m.list))
		if len(m.list) == 0 {
			m.busy = false
			m.view = models.RolePermissions{}
			m.available = nil
			return m, nil
		}
		return m, m.cmdLoadRole(m.list[m.roleIdx].RolID)

	case rolePermissionsLoadedMsg:
		m.busy = false
		if msg.err != nil {
			m.errMsg = humanizeError(msg.err)
			return m, nil
		}
		if role, ok := m.selectedRole(); !ok || role.RolID != msg.view.RolID {
			return m, nil
		}
		m.view = msg.view
		m.available = msg.view.Available()
		m.assignedIdx = clampIndex(m.assignedIdx, len(m.view.Assigned))
		m.availableIdx = clampIndex(m.availableIdx, len(m.available))
		return m, nil

	case assignmentDoneMsg:
		if msg.err != nil {
			m.busy = false
			m.errMsg = humanizeError(msg.err)
		} else {
			m.errMsg = ""
			if msg.assigned {
				m.status = msg.permission + " assigned"
			} else {
				m.status = msg.permission + " removed"
			}
		}
		// reload after every attempt, failed ones included
		if role, ok := m.selectedRole(); ok {
			m.busy = true
			return m, m.cmdLoadRole(role.RolID)
		}
		return m, nil

	case sessionRestoredMsg:
		m.busy = true
		return m, tea.Batch(m.spinner.Tick, m.cmdLoadRoles())

	case spinner.TickMsg:
		if !m.busy {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case tea.KeyMsg:
		return m.updateKeys(msg)
	}

	return m, nil
}

func (m *RolesModel) updateKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.esc):
		return m, func() tea.Msg { return NavigateTo{Page: pageMenu} }
	case key.Matches(msg, keys.tab):
		m.focus = (m.focus + 1) % 3
		return m, nil
	case key.Matches(msg, keys.backtab):
		m.focus = (m.focus + 2) % 3
		return m, nil
	case key.Matches(msg, keys.reload):
		if m.busy {
			return m, nil
		}
		m.busy = true
		m.status = ""
		m.errMsg = ""
		return m, tea.Batch(m.spinner.Tick, m.cmdLoadRoles())
	case key.Matches(msg, keys.up):
		return m.move(-1)
	case key.Matches(msg, keys.down):
		return m.move(1)
	case key.Matches(msg, keys.enter):
		return m.toggle()
	}
	return m, nil
}

func (m *RolesModel) move(delta int) (tea.Model, tea.Cmd) {
	switch m.focus {
	case focusRoles:
		next := clampIndex(m.roleIdx+delta, len(m.list))
		if next == m.roleIdx {
			return m, nil
		}
		m.roleIdx = next
		m.assignedIdx, m.availableIdx = 0, 0
		m.status = ""
		m.busy = true
		return m, tea.Batch(m.spinner.Tick, m.cmdLoadRole(m.list[next].RolID))
	case focusAssigned:
		m.assignedIdx = clampIndex(m.assignedIdx+delta, len(m.view.Assigned))
	case focusAvailable:
		m.availableIdx = clampIndex(m.availableIdx+delta, len(m.available))
	}
	return m, nil
}

func (m *RolesModel) toggle() (tea.Model, tea.Cmd) {
	role, ok := m.selectedRole()
	if !ok || m.busy {
		return m, nil
	}

	switch m.focus {
	case focusAssigned:
		if len(m.view.Assigned) == 0 {
			return m, nil
		}
		p := m.view.Assigned[m.assignedIdx]
		m.busy = true
		return m, tea.Batch(m.spinner.Tick, m.cmdUnassign(role.RolID, p))
	case focusAvailable:
		if len(m.available) == 0 {
			return m, nil
		}
		p := m.available[m.availableIdx]
		m.busy = true
		return m, tea.Batch(m.spinner.Tick, m.cmdAssign(role.RolID, p))
	}
	return m, nil
}

func (m *RolesModel) selectedRole() (models.Role, bool) {
	if m.roleIdx < 0 || m.roleIdx >= len(m.list) {
		return models.Role{}, false
	}
	return m.list[m.roleIdx], true
}

func (m *RolesModel) View() string {
	var b strings.Builder

	if m.busy {
		b.WriteString(m.spinner.View() + " Loading...\n\n")
	}
	if m.errMsg != "" {
		b.WriteString(errorStyle.Render("Error: "+m.errMsg) + "\n\n")
	}
	if m.status != "" {
		b.WriteString(statusStyle.Render(m.status) + "\n\n")
	}

	roleRows := make([][]string, len(m.list))
	for i, r := range m.list {
		active := "yes"
		if !r.IsActive {
			active = "no"
		}
		roleRows[i] = []string{r.RolID.String(), r.Name, r.Description, active}
	}
	b.WriteString(sectionTitle("Roles", m.focus == focusRoles))
	b.WriteString(renderTable([]column{
		{title: "ID", width: 4, right: true},
		{title: "Name", width: 16},
		{title: "Description", width: 28},
		{title: "Active", width: 6},
	}, roleRows, m.roleIdx))
	b.WriteString("\n\n")

	b.WriteString(sectionTitle("Assigned", m.focus == focusAssigned))
	b.WriteString(renderPermissions(m.view.Assigned, m.selection(focusAssigned, m.assignedIdx)))
	b.WriteString("\n\n")

	b.WriteString(sectionTitle("Available", m.focus == focusAvailable))
	b.WriteString(renderPermissions(m.available, m.selection(focusAvailable, m.availableIdx)))

	return renderPage("ROLES AND PERMISSIONS", b.String(), "tab: next list │ ↑/↓: navigate │ enter: assign/remove │ r: reload │ esc: back")
}

func (m *RolesModel) selection(focus rolesFocus, idx int) int {
	if m.focus != focus {
		return -1
	}
	return idx
}

func sectionTitle(title string, focused bool) string {
	if focused {
		return selectedStyle.Render("[" + title + "]") + "\n"
	}
	return " " + title + "\n"
}

func renderPermissions(perms []models.Permission, selected int) string {
	if len(perms) == 0 {
		return "  none"
	}
	rows := make([][]string, len(perms))
	for i, p := range perms {
		rows[i] = []string{p.PermissionID.String(), p.PermissionName, p.PermissionDescription}
	}
	return renderTable([]column{
		{title: "ID", width: 4, right: true},
		{title: "Permission", width: 16},
		{title: "Description", width: 34},
	}, rows, selected)
}

func (m *RolesModel) cmdLoadRoles() tea.Cmd {
	ctx := m.ctx
	roles := m.roles

	return func() tea.Msg {
		list, err := roles.ListRoles(ctx)
		return rolesLoadedMsg{roles: list, err: err}
	}
}

func (m *RolesModel) cmdLoadRole(rolID models.ID) tea.Cmd {
	ctx := m.ctx
	roles := m.roles

	return func() tea.Msg {
		view, err := roles.GetAssignedAndAvailable(ctx, rolID)
		if err == nil {
			view.RolID = rolID
		}
		return rolePermissionsLoadedMsg{view: view, err: err}
	}
}

func (m *RolesModel) cmdAssign(rolID models.ID, p models.Permission) tea.Cmd {
	ctx := m.ctx
	roles := m.roles

	return func() tea.Msg {
		_, err := roles.Assign(ctx, rolID, p.PermissionID)
		return assignmentDoneMsg{permission: p.PermissionName, assigned: true, err: err}
	}
}

func (m *RolesModel) cmdUnassign(rolID models.ID, p models.Permission) tea.Cmd {
	ctx := m.ctx
	roles := m.roles

	return func() tea.Msg {
		err := roles.Unassign(ctx, rolID, p.PermissionID)
		return assignmentDoneMsg{permission: p.PermissionName, err: err}
	}
}

func clampIndex(idx, n int) int {
	if n == 0 || idx < 0 {
		return 0
	}
	if idx >= n {
		return n - 1
	}
	return idx
}
