package tui

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/meter-console/internal/service"
)

// expiredOverlay asks whether to extend a session the backend rejected.
type expiredOverlay struct {
	err  error
	busy bool
}

func (o expiredOverlay) View() string {
	content := "Session expired\n\n"
	content += "The server no longer accepts your session.\n"
	content += "Extend it to continue where you left off.\n\n"
	if o.busy {
		content += "Please wait..."
	} else {
		content += "y extend    n sign out"
	}
	return overlayBoxStyle.Render(content)
}

func cmdRefresh(ctx context.Context, session service.SessionManager) tea.Cmd {
	return func() tea.Msg {
		_, err := session.Refresh(ctx)
		return refreshDoneMsg{err: err}
	}
}

// cmdLogout ends the session. Logout drops the in-memory session even when
// clearing the persisted copy fails.
func cmdLogout(ctx context.Context, session service.SessionManager) tea.Cmd {
	return func() tea.Msg {
		_ = session.Logout(ctx)
		return loggedOutMsg{}
	}
}
