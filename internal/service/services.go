package service

import (
	"github.com/MKhiriev/meter-console/internal/config"
	"github.com/MKhiriev/meter-console/internal/logger"
	"github.com/MKhiriev/meter-console/internal/store"
	"github.com/MKhiriev/meter-console/models"
)

// Services groups the development server services.
type Services struct {
	AuthService      AuthService
	DirectoryService DirectoryService
	ReportService    ReportService
	AppInfoService   AppInfoService
	Authorization    AuthorizationResolver
}

func NewServices(directory store.DirectoryRepository, cfg config.Auth, buildInfo models.AppBuildInfo, logger *logger.Logger) *Services {
	return &Services{
		AuthService:      NewAuthService(directory, cfg, logger),
		DirectoryService: NewDirectoryService(directory, logger),
		ReportService:    NewReportService(logger),
		AppInfoService:   NewAppInfoService(buildInfo, logger),
		Authorization:    NewAuthorizationResolver(),
	}
}
