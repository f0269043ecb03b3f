package service

import "github.com/MKhiriev/meter-console/models"

// AuthorizationResolver computes what a user may do from the user record
// alone. It performs no I/O and keeps no state between calls.
type AuthorizationResolver struct{}

var _ Authorizer = AuthorizationResolver{}

func NewAuthorizationResolver() AuthorizationResolver {
	return AuthorizationResolver{}
}

// EffectivePermissions returns the universal set for the superuser and
// otherwise the union of the user's direct permissions and the permissions
// of each role, deduplicated by permission id.
func (AuthorizationResolver) EffectivePermissions(user models.User) models.PermissionSet {
	if user.IsSuperuser() {
		return models.UniversalPermissionSet()
	}

	seen := make(map[models.ID]struct{})
	var names []string
	add := func(permissions []models.Permission) {
		for _, p := range permissions {
			if _, ok := seen[p.PermissionID]; ok {
				continue
			}
			seen[p.PermissionID] = struct{}{}
			names = append(names, p.PermissionName)
		}
	}

	add(user.Permissions)
	for _, role := range user.Roles {
		add(role.Permissions)
	}

	return models.NewPermissionSet(names...)
}

// Can reports whether user holds permission.
func (r AuthorizationResolver) Can(user models.User, permission string) bool {
	return r.EffectivePermissions(user).Has(permission)
}
