package tui

import (
	"context"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/MKhiriev/meter-console/internal/service"
	"github.com/MKhiriev/meter-console/models"
)

// pageCloser is implemented by pages that hold resources while active.
type pageCloser interface {
	Close()
}

// RootModel is a TUI router:
// 1) keeps active page
// 2) handles global Ctrl+C quit
// 3) handles NavigateTo messages
// 4) shows the session-expired overlay above any page
// 5) delegates all other messages to the active page
type RootModel struct {
	ctx       context.Context
	services  consoleServices
	pages     map[string]tea.Model
	current   string
	buildInfo models.AppBuildInfo

	showBuildInfo bool
	expired       *expiredOverlay
}

// NewRootModel registers all pages. An authenticated session starts on the
// menu, anything else on the login form.
func NewRootModel(ctx context.Context, services consoleServices, out *sender, buildInfo models.AppBuildInfo) RootModel {
	pages := map[string]tea.Model{
		pageLogin:     NewLoginModel(ctx, services.session),
		pageMenu:      NewMenuModel(ctx, services),
		pageDashboard: NewDashboardModel(ctx, services, out),
		pageRoles:     NewRolesModel(ctx, services.roles),
		pageProfile:   NewProfileModel(ctx, services),
	}

	start := pageLogin
	if services.session.Snapshot().State == service.StateAuthenticated {
		start = pageMenu
	}

	return RootModel{
		ctx:       ctx,
		services:  services,
		pages:     pages,
		current:   start,
		buildInfo: buildInfo,
	}
}

func (r RootModel) Init() tea.Cmd {
	return r.pages[r.current].Init()
}

func (r RootModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		// Global hotkey for every page.
		if msg.String() == "ctrl+c" {
			r.Close()
			return r, tea.Quit
		}
		if r.expired != nil {
			return r.updateExpired(msg)
		}
		switch {
		case msg.String() == "v" && r.current == pageMenu:
			r.showBuildInfo = !r.showBuildInfo
			return r, nil
		case key.Matches(msg, keys.esc) && r.showBuildInfo:
			r.showBuildInfo = false
			return r, nil
		}
		if r.showBuildInfo {
			return r, nil
		}

	case NavigateTo:
		return r.navigate(msg)

	case LoginResult:
		if msg.Err == nil {
			return r.navigate(NavigateTo{Page: pageMenu})
		}

	case sessionExpiredMsg:
		if r.current == pageLogin {
			return r, nil
		}
		r.expired = &expiredOverlay{err: msg.err}
		return r, nil

	case refreshDoneMsg:
		// a failed refresh signs out, and its loggedOutMsg may arrive first
		if msg.err != nil && r.current == pageLogin {
			r.expired = nil
			return r.delegate(refreshFailedNotice)
		}
		if r.expired == nil {
			return r, nil
		}
		r.expired = nil
		if msg.err != nil {
			return r.navigate(NavigateTo{Page: pageLogin, Payload: refreshFailedNotice})
		}
		return r.delegate(sessionRestoredMsg{})

	case loggedOutMsg:
		r.expired = nil
		if r.current == pageLogin {
			return r, nil
		}
		return r.navigate(NavigateTo{Page: pageLogin})
	}

	return r.delegate(msg)
}

func (r RootModel) View() string {
	if r.showBuildInfo {
		return renderBuildInfoWindow(r.buildInfo)
	}

	view := r.pages[r.current].View()
	if r.expired != nil {
		return lipgloss.JoinVertical(lipgloss.Left, view, r.expired.View())
	}
	return view
}

// Close releases the resources of every page.
func (r RootModel) Close() {
	for _, p := range r.pages {
		if c, ok := p.(pageCloser); ok {
			c.Close()
		}
	}
}

// navigate closes the active page, opens nav.Page and delivers the payload
// after the page's Init.
func (r RootModel) navigate(nav NavigateTo) (tea.Model, tea.Cmd) {
	next, exists := r.pages[nav.Page]
	if !exists {
		return r, nil
	}

	if c, ok := r.pages[r.current].(pageCloser); ok && nav.Page != r.current {
		c.Close()
	}
	r.showBuildInfo = false
	r.current = nav.Page

	cmd := next.Init()
	if nav.Payload != nil {
		payload := nav.Payload
		cmd = tea.Sequence(cmd, func() tea.Msg { return payload })
	}
	return r, cmd
}

func (r RootModel) delegate(msg tea.Msg) (tea.Model, tea.Cmd) {
	updated, cmd := r.pages[r.current].Update(msg)
	r.pages[r.current] = updated
	return r, cmd
}

func (r RootModel) updateExpired(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if r.expired.busy {
		return r, nil
	}

	switch {
	case key.Matches(msg, keys.yes), key.Matches(msg, keys.enter):
		r.expired = &expiredOverlay{err: r.expired.err, busy: true}
		return r, cmdRefresh(r.ctx, r.services.session)
	case key.Matches(msg, keys.no), key.Matches(msg, keys.esc):
		r.expired = &expiredOverlay{err: r.expired.err, busy: true}
		return r, cmdLogout(r.ctx, r.services.session)
	}
	return r, nil
}
