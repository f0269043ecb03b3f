package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/meter-console/models"
)

// ProfileModel shows the signed-in user and the effective permissions the
// console computes for them.
type ProfileModel struct {
	ctx      context.Context
	services consoleServices

	user      models.User
	expiresAt string
	loading   bool
	errMsg    string
}

func NewProfileModel(ctx context.Context, services consoleServices) *ProfileModel {
	return &ProfileModel{ctx: ctx, services: services}
}

func (m *ProfileModel) Init() tea.Cmd {
	m.errMsg = ""
	m.load()
	return nil
}

func (m *ProfileModel) load() {
	view := m.services.session.Snapshot()
	m.user = view.User
	m.expiresAt = ""
	if !view.ExpiresAt.IsZero() {
		left := "expired"
		if d := time.Until(view.ExpiresAt).Round(time.Minute); d > 0 {
			left = "in " + d.String()
		}
		m.expiresAt = m.services.dates.ToISODateString(view.ExpiresAt) + " (" + left + ")"
	}
}

func (m *ProfileModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case userReloadedMsg:
		m.loading = false
		if msg.err != nil {
			m.errMsg = humanizeError(msg.err)
			return m, nil
		}
		m.errMsg = ""
		m.load()
		return m, nil
	case sessionRestoredMsg:
		m.load()
		return m, nil
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.esc):
			return m, func() tea.Msg { return NavigateTo{Page: pageMenu} }
		case key.Matches(msg, keys.reload):
			if m.loading {
				return m, nil
			}
			m.loading = true
			return m, m.cmdReload()
		}
	}
	return m, nil
}

func (m *ProfileModel) View() string {
	var b strings.Builder

	status := "active"
	if !m.user.IsActive {
		status = "inactive"
	}
	twoFactor := "off"
	if m.user.TwoFactorEnabled {
		twoFactor = "on"
	}

	rows := [][]string{
		{"User ID", m.user.UserID.String()},
		{"Username", valueOrDash(m.user.Username)},
		{"Email", valueOrDash(m.user.Email)},
		{"Status", status},
		{"Two-factor", twoFactor},
		{"Roles", valueOrDash(roleNames(m.user))},
		{"Session until", valueOrDash(m.expiresAt)},
	}
	if !m.user.CreatedAt.IsZero() {
		rows = append(rows, []string{"Created", m.services.dates.ToISODateString(m.user.CreatedAt)})
	}
	b.WriteString(renderTable([]column{{title: "Field", width: 14}, {title: "Value", width: 40}}, rows, -1))
	b.WriteString("\n\n")

	b.WriteString("Effective permissions: ")
	perms := m.services.authorization.EffectivePermissions(m.user)
	switch {
	case perms.IsUniversal():
		b.WriteString("all (superuser)")
	case perms.Len() == 0:
		b.WriteString("none")
	default:
		b.WriteString(fmt.Sprintf("%d\n", perms.Len()))
		for _, name := range perms.Names() {
			b.WriteString("  - " + name + "\n")
		}
	}

	if m.loading {
		b.WriteString("\nReloading profile...")
	}
	if m.errMsg != "" {
		b.WriteString("\n" + errorStyle.Render("Error: "+m.errMsg))
	}

	return renderPage("PROFILE", strings.TrimRight(b.String(), "\n"), "r: reload │ esc: back")
}

func (m *ProfileModel) cmdReload() tea.Cmd {
	ctx := m.ctx
	session := m.services.session

	return func() tea.Msg {
		user, err := session.ReloadUser(ctx)
		return userReloadedMsg{user: user, err: err}
	}
}
