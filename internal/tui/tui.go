package tui

import (
	"context"
	"errors"
	"fmt"
	"sync/atomic"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/meter-console/internal/logger"
	"github.com/MKhiriev/meter-console/internal/service"
	"github.com/MKhiriev/meter-console/internal/workers"
	"github.com/MKhiriev/meter-console/models"
)

var errNoServices = errors.New("no console services provided")

// reportSource is a dashboard orchestrator owned by one dashboard visit.
type reportSource interface {
	service.ReportSource
	workers.Worker
}

// consoleServices is the part of the client services the screens use.
type consoleServices struct {
	session       service.SessionManager
	authorization service.Authorizer
	roles         service.RolePermissionManager
	dates         service.DateService
	newReports    func(period string, user models.User) reportSource
}

// sender delivers messages produced outside of the Bubble Tea loop, such as
// orchestrator listeners and session handlers. Send never blocks the
// caller, which may be running inside Update.
type sender struct {
	program atomic.Pointer[tea.Program]
}

func (s *sender) Send(msg tea.Msg) {
	p := s.program.Load()
	if p == nil {
		return
	}
	go p.Send(msg)
}

// TUI runs the interactive console.
type TUI struct {
	services  consoleServices
	buildInfo models.AppBuildInfo
	logger    *logger.Logger
}

// New returns a TUI over services.
func New(services *service.ClientServices, buildInfo models.AppBuildInfo, logger *logger.Logger) (*TUI, error) {
	if services == nil {
		return nil, errNoServices
	}

	return &TUI{
		services: consoleServices{
			session:       services.Session,
			authorization: services.Authorization,
			roles:         services.RolePermissions,
			dates:         services.Dates,
			newReports: func(period string, user models.User) reportSource {
				return services.NewReports(period, user)
			},
		},
		buildInfo: buildInfo,
		logger:    logger,
	}, nil
}

// Run shows the console until the user quits or ctx is done. A restored
// session opens the main menu directly.
func (t *TUI) Run(ctx context.Context) error {
	out := &sender{}
	root := NewRootModel(ctx, t.services, out, t.buildInfo)

	p := tea.NewProgram(root, tea.WithAltScreen(), tea.WithContext(ctx))
	out.program.Store(p)

	t.services.session.OnSessionExpired(func(err error) {
		out.Send(sessionExpiredMsg{err: err})
	})
	t.services.session.OnLogout(func() {
		out.Send(loggedOutMsg{})
	})
	defer func() {
		t.services.session.OnSessionExpired(nil)
		t.services.session.OnLogout(nil)
	}()

	finalModel, err := p.Run()
	out.program.Store(nil)

	if result, ok := finalModel.(RootModel); ok {
		result.Close()
	}
	if err != nil && (!errors.Is(err, tea.ErrProgramKilled) || ctx.Err() == nil) {
		return fmt.Errorf("run console: %w", err)
	}

	t.logger.Debug().Str("func", "*TUI.Run").Msg("console closed")
	return nil
}
