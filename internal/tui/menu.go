package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/MKhiriev/meter-console/models"
)

// menuItem opens page, or signs out when page is empty. permission, if set,
// hides the item from users without it.
type menuItem struct {
	title      string
	page       string
	permission string
}

var menuItems = []menuItem{
	{title: "Dashboard", page: pageDashboard, permission: models.PermissionViewReports},
	{title: "Roles and permissions", page: pageRoles, permission: models.PermissionManageRoles},
	{title: "Profile", page: pageProfile, permission: models.PermissionViewProfile},
	{title: "Sign out"},
}

type MenuModel struct {
	ctx      context.Context
	services consoleServices

	user  models.User
	items []menuItem
	idx   int
}

func NewMenuModel(ctx context.Context, services consoleServices) *MenuModel {
	return &MenuModel{ctx: ctx, services: services}
}

// Init rebuilds the items for the current user, so permission changes made
// on the roles screen show up on return.
func (m *MenuModel) Init() tea.Cmd {
	m.user = m.services.session.Snapshot().User
	m.items = m.visibleItems(m.user)
	if m.idx >= len(m.items) {
		m.idx = len(m.items) - 1
	}
	return nil
}

func (m *MenuModel) visibleItems(user models.User) []menuItem {
	out := make([]menuItem, 0, len(menuItems))
	for _, item := range menuItems {
		if item.permission != "" && !m.services.authorization.Can(user, item.permission) {
			continue
		}
		out = append(out, item)
	}
	return out
}

func (m *MenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, keys.up):
		if m.idx > 0 {
			m.idx--
		}
	case key.Matches(keyMsg, keys.down):
		if m.idx < len(m.items)-1 {
			m.idx++
		}
	case key.Matches(keyMsg, keys.enter):
		if m.idx < 0 || m.idx >= len(m.items) {
			return m, nil
		}
		item := m.items[m.idx]
		if item.page == "" {
			return m, cmdLogout(m.ctx, m.services.session)
		}
		return m, func() tea.Msg { return NavigateTo{Page: item.page} }
	}

	return m, nil
}

func (m *MenuModel) View() string {
	var b strings.Builder

	b.WriteString("Signed in as ")
	b.WriteString(selectedStyle.Render(valueOrDash(m.user.Username)))
	if roles := roleNames(m.user); roles != "" {
		b.WriteString(" (" + roles + ")")
	}
	b.WriteString("\n\n")

	idColWidth := lipgloss.Width("ID")
	itemsCountWidth := lipgloss.Width(fmt.Sprintf("%d", len(m.items)))
	if itemsCountWidth > idColWidth {
		idColWidth = itemsCountWidth
	}
	idColWidth += 2 // reserve space for selection marker and space ("<marker> <id>")

	actionColWidth := lipgloss.Width("Action")
	for _, item := range m.items {
		if w := lipgloss.Width(item.title); w > actionColWidth {
			actionColWidth = w
		}
	}

	b.WriteString(fmt.Sprintf("%-*s │ %-*s\n", idColWidth, "ID", actionColWidth, "Action"))
	b.WriteString(strings.Repeat("─", idColWidth))
	b.WriteString("─┼─")
	b.WriteString(strings.Repeat("─", actionColWidth))
	b.WriteString("\n")

	for i, item := range m.items {
		cursor := " "
		if i == m.idx {
			cursor = ">"
		}
		idCell := fmt.Sprintf("%s %d", cursor, i+1)
		b.WriteString(fmt.Sprintf("%-*s │ %-*s\n", idColWidth, idCell, actionColWidth, item.title))
	}

	return renderPage("MAIN MENU", strings.TrimRight(b.String(), "\n"), "enter: select │ ↑/↓: navigate │ v: version")
}

func roleNames(user models.User) string {
	names := make([]string, 0, len(user.Roles))
	for _, r := range user.Roles {
		if r.Name != "" {
			names = append(names, r.Name)
		}
	}
	return strings.Join(names, ", ")
}
