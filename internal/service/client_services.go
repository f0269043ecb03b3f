package service

import (
	"slices"

	"github.com/MKhiriev/meter-console/internal/adapter"
	"github.com/MKhiriev/meter-console/internal/config"
	"github.com/MKhiriev/meter-console/internal/logger"
	"github.com/MKhiriev/meter-console/internal/store"
	"github.com/MKhiriev/meter-console/models"
)

// ClientServices groups the console services around one gateway.
type ClientServices struct {
	Session         *SessionStore
	Authorization   AuthorizationResolver
	RolePermissions *RolePermissionReconciler
	Dates           DateService

	queries []ReportQuery
	workers config.ClientWorkers
	logger  *logger.Logger
}

// NewClientServices wires the console services. The session store becomes
// the gateway's single unauthorized handler.
func NewClientServices(gateway adapter.Gateway, sessions store.SessionRepository, dates DateService, cfg config.ClientWorkers, logger *logger.Logger) *ClientServices {
	session := NewSessionStore(gateway, sessions, logger)
	gateway.OnUnauthorized(session.HandleUnauthorized)

	return &ClientServices{
		Session:         session,
		Authorization:   NewAuthorizationResolver(),
		RolePermissions: NewRolePermissionReconciler(gateway, nil, logger),
		Dates:           dates,
		queries:         NewDashboardQueries(gateway, dates),
		workers:         cfg,
		logger:          logger,
	}
}

// NewReports returns an idle orchestrator over the dashboard queries user
// may run. The alarms report is left out without
// [models.PermissionViewAlarms]. A stopped orchestrator cannot be restarted,
// so every dashboard visit takes a new one.
func (s *ClientServices) NewReports(period string, user models.User) *ReportOrchestrator {
	queries := s.queries
	if !s.Authorization.Can(user, models.PermissionViewAlarms) {
		queries = slices.DeleteFunc(slices.Clone(queries), func(q ReportQuery) bool {
			return q.Name == models.ReportAlarms
		})
	}
	return NewReportOrchestrator(queries, period, s.workers, s.logger)
}
