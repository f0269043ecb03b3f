package models

// Role groups permissions that can be granted to users.
type Role struct {
	RolID       ID           `json:"rolId"`
	Name        string       `json:"name"`
	Description string       `json:"description"`
	IsActive    bool         `json:"isActive"`
	Permissions []Permission `json:"permissions,omitempty"`
}

// Permission is a single named capability in the permission catalog.
type Permission struct {
	PermissionID          ID     `json:"permissionId"`
	PermissionName        string `json:"permissionName"`
	PermissionDescription string `json:"permissionDescription"`
	CategoryID            ID     `json:"categoryId"`
	IsActive              bool   `json:"isActive"`
}

// RolePermissionLink is a row of the role/permission join table. ID is the
// only handle the backend accepts to delete an assignment.
//
// Permission is populated by some endpoints and left empty by others; it
// must not be treated as a full catalog record.
type RolePermissionLink struct {
	ID           ID          `json:"id"`
	RolID        ID          `json:"rolId"`
	PermissionID ID          `json:"permissionId"`
	Permission   *Permission `json:"permission,omitempty"`
}

// Matches reports whether the link joins rolID and permissionID.
func (l RolePermissionLink) Matches(rolID, permissionID ID) bool {
	return l.RolID == rolID && l.PermissionID == permissionID
}

// RolePermissions is the reconciled view of a role used by the roles admin
// screen: the permissions assigned to the role and the full catalog.
type RolePermissions struct {
	RolID    ID           `json:"rolId"`
	Assigned []Permission `json:"assigned"`
	All      []Permission `json:"all"`
}

// IsAssigned reports whether permissionID is in the assigned list.
func (r RolePermissions) IsAssigned(permissionID ID) bool {
	for _, p := range r.Assigned {
		if p.PermissionID == permissionID {
			return true
		}
	}
	return false
}

// Available returns the catalog entries not yet assigned to the role, in
// catalog order.
func (r RolePermissions) Available() []Permission {
	out := make([]Permission, 0, len(r.All))
	for _, p := range r.All {
		if !r.IsAssigned(p.PermissionID) {
			out = append(out, p)
		}
	}
	return out
}

// CreateRolePermissionRequest is the body of the link creation call.
type CreateRolePermissionRequest struct {
	RolID        ID `json:"rolId"`
	PermissionID ID `json:"permissionId"`
}
