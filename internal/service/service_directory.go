package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/meter-console/internal/logger"
	"github.com/MKhiriev/meter-console/internal/store"
	"github.com/MKhiriev/meter-console/internal/validators"
	"github.com/MKhiriev/meter-console/models"
)

type directoryService struct {
	directory store.DirectoryRepository
	validator validators.Validator
	logger    *logger.Logger
}

// NewDirectoryService returns a DirectoryService over directory.
func NewDirectoryService(directory store.DirectoryRepository, logger *logger.Logger) DirectoryService {
	return &directoryService{directory: directory, validator: validators.NewRequestValidator(), logger: logger}
}

func (s *directoryService) ListPermissions(ctx context.Context) ([]models.Permission, error) {
	permissions, err := s.directory.ListPermissions(ctx)
	if err != nil {
		return nil, fmt.Errorf("list permissions: %w", err)
	}
	return permissions, nil
}

func (s *directoryService) ListRoles(ctx context.Context) ([]models.Role, error) {
	roles, err := s.directory.ListRoles(ctx)
	if err != nil {
		return nil, fmt.Errorf("list roles: %w", err)
	}
	return roles, nil
}

func (s *directoryService) ListLinks(ctx context.Context) ([]models.RolePermissionLink, error) {
	links, err := s.directory.ListLinks(ctx)
	if err != nil {
		return nil, fmt.Errorf("list role permissions: %w", err)
	}
	return links, nil
}

// CreateLink validates request and stores a new link. Duplicate pairs are
// stored as new rows.
func (s *directoryService) CreateLink(ctx context.Context, request models.CreateRolePermissionRequest) (models.RolePermissionLink, error) {
	log := logger.FromContext(ctx)

	if err := s.validator.Validate(ctx, request); err != nil {
		log.Error().Err(err).Any("request", request).Msg("invalid link data provided")
		return models.RolePermissionLink{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	link, err := s.directory.CreateLink(ctx, request.RolID, request.PermissionID)
	if err != nil {
		log.Err(err).Any("request", request).Msg("link creation ended with error")
		return models.RolePermissionLink{}, fmt.Errorf("link creation ended with error: %w", err)
	}

	log.Info().
		Int64("link_id", int64(link.ID)).
		Int64("rol_id", int64(link.RolID)).
		Int64("permission_id", int64(link.PermissionID)).
		Msg("link created")
	return link, nil
}

func (s *directoryService) DeleteLink(ctx context.Context, linkID models.ID) error {
	log := logger.FromContext(ctx)

	if linkID <= 0 {
		return ErrInvalidDataProvided
	}
	if err := s.directory.DeleteLink(ctx, linkID); err != nil {
		log.Err(err).Int64("link_id", int64(linkID)).Msg("link deletion ended with error")
		return fmt.Errorf("link deletion ended with error: %w", err)
	}

	log.Info().Int64("link_id", int64(linkID)).Msg("link deleted")
	return nil
}
