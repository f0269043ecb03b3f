package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/MKhiriev/meter-console/models"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID, h.withLogging)

	// routes without authorization
	router.Group(func(r chi.Router) {
		r.Post("/api/auth/signin", h.signIn)
		r.Post("/api/auth/refresh", h.refresh)
		r.Get("/api/version", h.getServerVersion)
	})

	router.Group(func(r chi.Router) {
		r.Use(h.auth)

		r.Get("/api/auth/me", h.me)

		r.With(h.requirePermission(models.PermissionViewReports)).Route("/api/reports", func(r chi.Router) {
			r.Get("/consumption", h.consumption)
			r.Get("/reading-stats", h.readingStats)
			r.Get("/yearly-stats", h.yearlyStats)
			r.With(h.requirePermission(models.PermissionViewAlarms)).Get("/alarms", h.alarms)
		})

		r.Group(func(r chi.Router) {
			r.Use(h.requirePermission(models.PermissionManageRoles))

			r.Get("/api/permissions", h.listPermissions)
			r.Get("/api/roles", h.listRoles)
			r.Get("/api/role-permissions", h.listRolePermissions)
			r.Post("/api/role-permissions", h.createRolePermission)
			r.Delete("/api/role-permissions/{linkID}", h.deleteRolePermission)
		})
	})

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
