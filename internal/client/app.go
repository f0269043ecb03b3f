package client

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/meter-console/internal/adapter"
	"github.com/MKhiriev/meter-console/internal/config"
	"github.com/MKhiriev/meter-console/internal/crypto"
	"github.com/MKhiriev/meter-console/internal/dates"
	"github.com/MKhiriev/meter-console/internal/logger"
	"github.com/MKhiriev/meter-console/internal/service"
	"github.com/MKhiriev/meter-console/internal/store"
	"github.com/MKhiriev/meter-console/internal/tui"
	"github.com/MKhiriev/meter-console/internal/workers"
	"github.com/MKhiriev/meter-console/models"
)

// profileRefreshInterval is how often the signed-in user is re-read from the
// backend so role changes reach the menu without a new login.
const profileRefreshInterval = time.Minute

// App is the console process: local storage, the API gateway, the client
// services and the terminal UI.
type App struct {
	storages *store.ClientStorages
	services *service.ClientServices
	ui       *tui.TUI
	workers  *workers.Workers
	logger   *logger.Logger
}

var _ Client = (*App)(nil)

// NewApp wires the console from cfg. The returned App owns the local
// database until Run returns.
func NewApp(ctx context.Context, cfg *config.ClientConfig, buildInfo models.AppBuildInfo, log *logger.Logger) (*App, error) {
	dateService, err := dates.NewService(cfg.App.ReportTimezone)
	if err != nil {
		return nil, fmt.Errorf("create date service: %w", err)
	}

	gateway, err := adapter.NewHTTPGateway(cfg.Adapter, log)
	if err != nil {
		return nil, fmt.Errorf("create api gateway: %w", err)
	}

	storages, err := store.NewClientStorages(ctx, cfg.Storage, crypto.NewSealer(cfg.App.SessionSealKey), log)
	if err != nil {
		return nil, fmt.Errorf("create local storage: %w", err)
	}

	services := service.NewClientServices(gateway, storages.SessionRepository, dateService, cfg.Workers, log)

	ui, err := tui.New(services, buildInfo, log)
	if err != nil {
		_ = storages.Close()
		return nil, fmt.Errorf("create ui: %w", err)
	}

	return &App{
		storages: storages,
		services: services,
		ui:       ui,
		workers:  workers.NewWorkers(workers.NewTicker(profileRefreshInterval, refreshProfileJob(services.Session, log))),
		logger:   log,
	}, nil
}

// Run restores the persisted session, if any, and shows the console until
// the user quits or ctx is done.
func (a *App) Run(ctx context.Context) error {
	defer func() {
		if err := a.storages.Close(); err != nil {
			a.logger.Err(err).Str("func", "*App.Run").Msg("close local storage")
		}
	}()

	if err := a.services.Session.Restore(ctx); err != nil {
		a.logger.Warn().Err(err).Str("func", "*App.Run").Msg("saved session was not restored")
	}

	a.workers.Start(ctx)
	defer a.workers.Stop()

	return a.ui.Run(ctx)
}

// refreshProfileJob reloads the signed-in user. Any other session state is
// skipped. A rejected token surfaces through the session-expired flow.
func refreshProfileJob(session service.SessionManager, log *logger.Logger) workers.Job {
	return func(ctx context.Context) {
		if session.Snapshot().State != service.StateAuthenticated {
			return
		}
		if _, err := session.ReloadUser(ctx); err != nil && !errors.Is(err, context.Canceled) {
			log.Warn().Err(err).Str("func", "refreshProfileJob").Msg("profile refresh failed")
		}
	}
}
