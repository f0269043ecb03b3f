package store

import (
	"context"
	"slices"
	"sync"

	"github.com/MKhiriev/meter-console/internal/logger"
	"github.com/MKhiriev/meter-console/models"
)

// DirectoryUser is a directory entry: the public user record, its role ids
// and the bcrypt password hash.
type DirectoryUser struct {
	User         models.User
	RoleIDs      []models.ID
	PasswordHash []byte
}

// DirectorySeed is the initial content of a [MemoryDirectory].
type DirectorySeed struct {
	Users       []DirectoryUser
	Roles       []models.Role
	Permissions []models.Permission
	Links       []models.RolePermissionLink
}

// MemoryDirectory is an in-memory [DirectoryRepository] used by the
// development server. Users returned from it carry their roles expanded with
// the permissions linked at read time, the way the metering API does on
// sign-in.
type MemoryDirectory struct {
	mu          sync.RWMutex
	users       []DirectoryUser
	roles       []models.Role
	permissions []models.Permission
	links       []models.RolePermissionLink
	nextLinkID  models.ID

	logger *logger.Logger
}

var _ DirectoryRepository = (*MemoryDirectory)(nil)

// NewMemoryDirectory constructs a [MemoryDirectory] holding a copy of seed.
func NewMemoryDirectory(seed DirectorySeed, logger *logger.Logger) *MemoryDirectory {
	d := &MemoryDirectory{
		users:       slices.Clone(seed.Users),
		roles:       slices.Clone(seed.Roles),
		permissions: slices.Clone(seed.Permissions),
		links:       slices.Clone(seed.Links),
		nextLinkID:  1,
		logger:      logger,
	}
	for _, l := range d.links {
		if l.ID >= d.nextLinkID {
			d.nextLinkID = l.ID + 1
		}
	}

	logger.Debug().
		Int("users", len(d.users)).
		Int("roles", len(d.roles)).
		Int("permissions", len(d.permissions)).
		Int("links", len(d.links)).
		Msg("memory directory created")
	return d
}

// FindUserByUsername implements [DirectoryRepository].
func (d *MemoryDirectory) FindUserByUsername(_ context.Context, username string) (DirectoryUser, error) {
	d.mu.RLock()
	defer d.mu.RUnlock()

	for _, u := range d.users {
		if u.User.Username == username {
			return d.expand(u), nil
		}
	}
	return DirectoryUser{}, ErrUserNotFound
}

// GetUser implements [DirectoryRepository].
func (d *MemoryDirectory) GetUser(_ context.Context, userID models.ID) (DirectoryUser, error) {
	d.mu.RLock()
	defer d.mu.RUnlock()

	for _, u := range d.users {
		if u.User.UserID == userID {
			return d.expand(u), nil
		}
	}
	return DirectoryUser{}, ErrUserNotFound
}

// ListPermissions implements [DirectoryRepository].
func (d *MemoryDirectory) ListPermissions(context.Context) ([]models.Permission, error) {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return slices.Clone(d.permissions), nil
}

// ListRoles implements [DirectoryRepository]. Roles are returned without
// their permission lists, matching the coarse list endpoint.
func (d *MemoryDirectory) ListRoles(context.Context) ([]models.Role, error) {
	d.mu.RLock()
	defer d.mu.RUnlock()

	roles := make([]models.Role, len(d.roles))
	for i, r := range d.roles {
		r.Permissions = nil
		roles[i] = r
	}
	return roles, nil
}

// ListLinks implements [DirectoryRepository]. Links are returned bare,
// without the embedded permission.
func (d *MemoryDirectory) ListLinks(context.Context) ([]models.RolePermissionLink, error) {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return slices.Clone(d.links), nil
}

// CreateLink implements [DirectoryRepository]. Duplicate pairs are accepted,
// as on the real backend.
func (d *MemoryDirectory) CreateLink(_ context.Context, rolID, permissionID models.ID) (models.RolePermissionLink, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.roleIndex(rolID) < 0 {
		return models.RolePermissionLink{}, ErrRoleNotFound
	}
	permission, ok := d.permission(permissionID)
	if !ok {
		return models.RolePermissionLink{}, ErrPermissionNotFound
	}

	link := models.RolePermissionLink{ID: d.nextLinkID, RolID: rolID, PermissionID: permissionID}
	d.nextLinkID++
	d.links = append(d.links, link)

	link.Permission = &permission
	return link, nil
}

// DeleteLink implements [DirectoryRepository].
func (d *MemoryDirectory) DeleteLink(_ context.Context, linkID models.ID) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	i := slices.IndexFunc(d.links, func(l models.RolePermissionLink) bool { return l.ID == linkID })
	if i < 0 {
		return ErrLinkNotFound
	}
	d.links = slices.Delete(d.links, i, i+1)
	return nil
}

// expand must be called with d.mu held.
func (d *MemoryDirectory) expand(u DirectoryUser) DirectoryUser {
	user := u.User
	user.Permissions = slices.Clone(user.Permissions)
	user.Roles = make([]models.Role, 0, len(u.RoleIDs))

	for _, rolID := range u.RoleIDs {
		i := d.roleIndex(rolID)
		if i < 0 {
			continue
		}
		role := d.roles[i]
		role.Permissions = nil
		for _, l := range d.links {
			if l.RolID != rolID {
				continue
			}
			if p, ok := d.permission(l.PermissionID); ok {
				role.Permissions = append(role.Permissions, p)
			}
		}
		user.Roles = append(user.Roles, role)
	}

	u.User = user
	u.RoleIDs = slices.Clone(u.RoleIDs)
	return u
}

func (d *MemoryDirectory) roleIndex(rolID models.ID) int {
	return slices.IndexFunc(d.roles, func(r models.Role) bool { return r.RolID == rolID })
}

func (d *MemoryDirectory) permission(permissionID models.ID) (models.Permission, bool) {
	i := slices.IndexFunc(d.permissions, func(p models.Permission) bool { return p.PermissionID == permissionID })
	if i < 0 {
		return models.Permission{}, false
	}
	return d.permissions[i], true
}
