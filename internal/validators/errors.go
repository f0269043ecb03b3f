package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrEmptyUsername     = errors.New("username is required")
	ErrUsernameTooLong   = errors.New("username is too long")
	ErrEmptyPassword     = errors.New("password is required")
	ErrEmptyRefreshToken = errors.New("refresh token is required")
	ErrInvalidRolID      = errors.New("invalid role ID")
	ErrInvalidPermission = errors.New("invalid permission ID")
)
