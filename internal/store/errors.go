package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrSessionNotFound is returned by Load when no session is persisted.
	ErrSessionNotFound = errors.New("persisted session not found")

	// ErrCorruptSession is returned by Load when only one of the session keys
	// is present, or a value cannot be decoded. The caller is expected to
	// clear the record.
	ErrCorruptSession = errors.New("persisted session is corrupt")

	// ErrUserNotFound is returned when a directory lookup by username or id
	// matches no user.
	ErrUserNotFound = errors.New("user not found")

	// ErrLinkNotFound is returned when a role/permission link id does not
	// exist.
	ErrLinkNotFound = errors.New("role permission link not found")

	// ErrRoleNotFound and ErrPermissionNotFound are returned when a link
	// references an unknown role or permission.
	ErrRoleNotFound       = errors.New("role not found")
	ErrPermissionNotFound = errors.New("permission not found")
)
