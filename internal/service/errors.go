package service

import "errors"

// Console errors.
var (
	// ErrAuthenticationFailed is returned by Login when the backend rejects
	// the credentials or cannot be reached. The previous session is kept.
	ErrAuthenticationFailed = errors.New("authentication failed")

	// ErrSessionExpired marks a 401 received mid-session.
	ErrSessionExpired = errors.New("session expired")

	// ErrRefreshFailed is returned by Refresh after the session was dropped.
	ErrRefreshFailed = errors.New("session refresh failed")

	// ErrSessionCleared is returned when a logout happened while a login or
	// refresh was in flight. The late result is discarded.
	ErrSessionCleared = errors.New("session cleared while request was in flight")

	ErrNotAuthenticated = errors.New("not authenticated")
	ErrPermissionDenied = errors.New("permission denied")

	// ErrAssignmentNotFound is returned by Unassign when the role has no link
	// to the permission. It is a logic error and must not be retried.
	ErrAssignmentNotFound = errors.New("role permission assignment not found")

	// ErrAssignmentExists is returned by Assign when the pair is already
	// linked.
	ErrAssignmentExists = errors.New("role permission assignment already exists")

	// ErrFetchCycleFailed wraps the first failing report query of a cycle.
	ErrFetchCycleFailed = errors.New("report fetch cycle failed")
)

// Development server errors.
var (
	ErrInvalidDataProvided = errors.New("invalid data provided")
	ErrWrongPassword       = errors.New("wrong username or password")
	ErrUserIsInactive      = errors.New("user is inactive")

	ErrTokenCreationFailed     = errors.New("token creation failed")
	ErrTokenIsExpiredOrInvalid = errors.New("token is expired or invalid")

	ErrInvalidPeriod = errors.New("invalid report period")
)
