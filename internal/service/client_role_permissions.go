package service

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/MKhiriev/meter-console/internal/adapter"
	"github.com/MKhiriev/meter-console/internal/logger"
	"github.com/MKhiriev/meter-console/models"
)

// RoleLinkSource returns the role/permission links of one role. The
// backend has no filtered query, so the default source reads the whole link
// table and filters it in memory; a source backed by a server-side filter
// can replace it without touching the reconciler.
type RoleLinkSource interface {
	RoleLinks(ctx context.Context, rolID models.ID) ([]models.RolePermissionLink, error)
}

// LinkTableSource is the [RoleLinkSource] that scans the full link table.
type LinkTableSource struct {
	api adapter.RolePermissionAPI
}

func NewLinkTableSource(api adapter.RolePermissionAPI) LinkTableSource {
	return LinkTableSource{api: api}
}

// RoleLinks implements [RoleLinkSource].
func (s LinkTableSource) RoleLinks(ctx context.Context, rolID models.ID) ([]models.RolePermissionLink, error) {
	links, err := s.api.ListRolePermissions(ctx)
	if err != nil {
		return nil, fmt.Errorf("list role permissions: %w", mapAdapterError(err))
	}

	filtered := make([]models.RolePermissionLink, 0)
	for _, l := range links {
		if l.RolID == rolID {
			filtered = append(filtered, l)
		}
	}
	return filtered, nil
}

// RolePermissionReconciler maintains the role/permission relation against
// a backend that only offers list-all, create-link and delete-link-by-id.
// It never caches: every call re-reads the link table so that it does not
// act on stale assignments. Concurrent edits from other consoles are not
// detected; the last writer wins.
type RolePermissionReconciler struct {
	api    adapter.RolePermissionAPI
	links  RoleLinkSource
	logger *logger.Logger
}

var _ RolePermissionManager = (*RolePermissionReconciler)(nil)

// NewRolePermissionReconciler returns a reconciler reading links through
// links. A nil links source scans the full table through api.
func NewRolePermissionReconciler(api adapter.RolePermissionAPI, links RoleLinkSource, logger *logger.Logger) *RolePermissionReconciler {
	if links == nil {
		links = NewLinkTableSource(api)
	}
	return &RolePermissionReconciler{api: api, links: links, logger: logger}
}

// ListRoles returns the role catalog.
func (r *RolePermissionReconciler) ListRoles(ctx context.Context) ([]models.Role, error) {
	roles, err := r.api.ListRoles(ctx)
	if err != nil {
		return nil, fmt.Errorf("list roles: %w", mapAdapterError(err))
	}
	return roles, nil
}

// GetAssignedAndAvailable fetches the permission catalog and the role's
// links concurrently and hydrates each link against the catalog. A link
// whose permission is missing from the catalog is kept with only its
// permission id set.
func (r *RolePermissionReconciler) GetAssignedAndAvailable(ctx context.Context, rolID models.ID) (models.RolePermissions, error) {
	var (
		catalog []models.Permission
		links   []models.RolePermissionLink
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		catalog, err = r.api.ListPermissions(gctx)
		if err != nil {
			return fmt.Errorf("list permissions: %w", mapAdapterError(err))
		}
		return nil
	})
	g.Go(func() error {
		var err error
		links, err = r.links.RoleLinks(gctx, rolID)
		return err
	})
	if err := g.Wait(); err != nil {
		r.logger.Err(err).
			Str("func", "*RolePermissionReconciler.GetAssignedAndAvailable").
			Int64("rol_id", int64(rolID)).
			Msg("error reading role permissions")
		return models.RolePermissions{}, err
	}

	return models.RolePermissions{
		RolID:    rolID,
		Assigned: hydrate(links, catalog),
		All:      catalog,
	}, nil
}

// hydrate joins links to catalog on permission id. Duplicate links of the
// same pair yield one entry.
func hydrate(links []models.RolePermissionLink, catalog []models.Permission) []models.Permission {
	byID := make(map[models.ID]models.Permission, len(catalog))
	for _, p := range catalog {
		byID[p.PermissionID] = p
	}

	assigned := make([]models.Permission, 0, len(links))
	seen := make(map[models.ID]struct{}, len(links))
	for _, l := range links {
		if _, ok := seen[l.PermissionID]; ok {
			continue
		}
		seen[l.PermissionID] = struct{}{}

		p, ok := byID[l.PermissionID]
		if !ok {
			p = models.Permission{PermissionID: l.PermissionID}
		}
		assigned = append(assigned, p)
	}
	return assigned
}

// Assign links permissionID to rolID. The backend accepts duplicates, so
// the current links are re-read first and [ErrAssignmentExists] is
// returned without a create call if the pair is already linked.
func (r *RolePermissionReconciler) Assign(ctx context.Context, rolID, permissionID models.ID) (models.RolePermissionLink, error) {
	log := r.logger.GetChildLogger()

	links, err := r.links.RoleLinks(ctx, rolID)
	if err != nil {
		return models.RolePermissionLink{}, err
	}
	for _, l := range links {
		if l.Matches(rolID, permissionID) {
			return models.RolePermissionLink{}, fmt.Errorf("%w: role %s, permission %s", ErrAssignmentExists, rolID, permissionID)
		}
	}

	link, err := r.api.CreateRolePermission(ctx, rolID, permissionID)
	if err != nil {
		log.Err(err).Str("func", "*RolePermissionReconciler.Assign").Msg("error creating link")
		return models.RolePermissionLink{}, fmt.Errorf("create role permission: %w", mapAdapterError(err))
	}

	log.Info().
		Str("func", "*RolePermissionReconciler.Assign").
		Int64("rol_id", int64(rolID)).
		Int64("permission_id", int64(permissionID)).
		Int64("link_id", int64(link.ID)).
		Msg("permission assigned")
	return link, nil
}

// Unassign resolves the link ids of the exact (rolID, permissionID) pair
// from the full link table and deletes them by id. It returns
// [ErrAssignmentNotFound] without any delete call if the pair is not
// linked.
func (r *RolePermissionReconciler) Unassign(ctx context.Context, rolID, permissionID models.ID) error {
	log := r.logger.GetChildLogger()

	links, err := r.links.RoleLinks(ctx, rolID)
	if err != nil {
		return err
	}

	var matched []models.ID
	for _, l := range links {
		if l.Matches(rolID, permissionID) {
			matched = append(matched, l.ID)
		}
	}
	if len(matched) == 0 {
		return fmt.Errorf("%w: role %s, permission %s", ErrAssignmentNotFound, rolID, permissionID)
	}

	for _, linkID := range matched {
		if err = r.api.DeleteRolePermission(ctx, linkID); err != nil {
			log.Err(err).
				Str("func", "*RolePermissionReconciler.Unassign").
				Int64("link_id", int64(linkID)).
				Msg("error deleting link")
			return fmt.Errorf("delete role permission %s: %w", linkID, mapAdapterError(err))
		}
	}

	log.Info().
		Str("func", "*RolePermissionReconciler.Unassign").
		Int64("rol_id", int64(rolID)).
		Int64("permission_id", int64(permissionID)).
		Int("links", len(matched)).
		Msg("permission unassigned")
	return nil
}
