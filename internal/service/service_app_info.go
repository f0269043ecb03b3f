package service

import (
	"context"

	"github.com/MKhiriev/meter-console/internal/logger"
	"github.com/MKhiriev/meter-console/models"
)

type appInfoService struct {
	buildInfo models.AppBuildInfo

	logger *logger.Logger
}

func NewAppInfoService(buildInfo models.AppBuildInfo, logger *logger.Logger) AppInfoService {
	return &appInfoService{
		buildInfo: buildInfo,
		logger:    logger,
	}
}

func (s *appInfoService) GetAppVersion(ctx context.Context) models.VersionResponse {
	return s.buildInfo.Response()
}
