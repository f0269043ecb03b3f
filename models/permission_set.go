package models

import "sort"

// PermissionSet is the effective permission set of a user. A universal set
// contains every permission, including ones unknown to the client.
type PermissionSet struct {
	universal bool
	names     map[string]struct{}
}

// UniversalPermissionSet returns a set that contains every permission.
func UniversalPermissionSet() PermissionSet {
	return PermissionSet{universal: true}
}

// NewPermissionSet returns a set holding the given permission names.
func NewPermissionSet(names ...string) PermissionSet {
	set := PermissionSet{names: make(map[string]struct{}, len(names))}
	for _, n := range names {
		set.names[n] = struct{}{}
	}
	return set
}

// IsUniversal reports whether the set contains every permission.
func (s PermissionSet) IsUniversal() bool {
	return s.universal
}

// Has reports whether name is in the set.
func (s PermissionSet) Has(name string) bool {
	if s.universal {
		return true
	}
	_, ok := s.names[name]
	return ok
}

// Len returns the number of explicitly held names. It is zero for the
// universal set.
func (s PermissionSet) Len() int {
	return len(s.names)
}

// Names returns the explicitly held names in lexical order.
func (s PermissionSet) Names() []string {
	out := make([]string, 0, len(s.names))
	for n := range s.names {
		out = append(out, n)
	}
	sort.Strings(out)
	return out
}

// Equal reports whether s and other hold the same permissions.
func (s PermissionSet) Equal(other PermissionSet) bool {
	if s.universal || other.universal {
		return s.universal == other.universal
	}
	if len(s.names) != len(other.names) {
		return false
	}
	for n := range s.names {
		if _, ok := other.names[n]; !ok {
			return false
		}
	}
	return true
}

// Permission names checked by the console menu.
const (
	PermissionViewReports = "reports.view"
	PermissionViewAlarms  = "alarms.view"
	PermissionManageRoles = "roles.manage"
	PermissionViewProfile = "profile.view"
)
