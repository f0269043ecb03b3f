package validators

import (
	"context"
	"strings"

	"github.com/MKhiriev/meter-console/models"
)

const (
	FieldUsername     = "username"
	FieldPassword     = "password"
	FieldRefreshToken = "refresh_token"
	FieldRolID        = "rol_id"
	FieldPermissionID = "permission_id"
)

// MaxUsernameLength bounds the username of a sign-in request.
const MaxUsernameLength = 64

type RequestValidator struct {
}

// NewRequestValidator returns a Validator for the API request bodies:
// [models.Credentials], [models.RefreshRequest] and
// [models.CreateRolePermissionRequest], by value or by pointer.
func NewRequestValidator() Validator {
	return &RequestValidator{}
}

func (v *RequestValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.Credentials:
		return v.validateCredentials(ctx, value, fields...)
	case *models.Credentials:
		return v.validateCredentials(ctx, *value, fields...)

	case models.RefreshRequest:
		return v.validateRefreshRequest(ctx, value, fields...)
	case *models.RefreshRequest:
		return v.validateRefreshRequest(ctx, *value, fields...)

	case models.CreateRolePermissionRequest:
		return v.validateCreateRolePermission(ctx, value, fields...)
	case *models.CreateRolePermissionRequest:
		return v.validateCreateRolePermission(ctx, *value, fields...)

	default:
		return ErrUnsupportedType
	}
}

func (v *RequestValidator) validateCredentials(_ context.Context, credentials models.Credentials, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldUsername, FieldPassword}
	}

	for _, f := range fields {
		switch f {
		case FieldUsername:
			if strings.TrimSpace(credentials.Username) == "" {
				return ErrEmptyUsername
			}
			if len(credentials.Username) > MaxUsernameLength {
				return ErrUsernameTooLong
			}
		case FieldPassword:
			if credentials.Password == "" {
				return ErrEmptyPassword
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *RequestValidator) validateRefreshRequest(_ context.Context, request models.RefreshRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldRefreshToken}
	}

	for _, f := range fields {
		switch f {
		case FieldRefreshToken:
			if strings.TrimSpace(request.RefreshToken) == "" {
				return ErrEmptyRefreshToken
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *RequestValidator) validateCreateRolePermission(_ context.Context, request models.CreateRolePermissionRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldRolID, FieldPermissionID}
	}

	for _, f := range fields {
		switch f {
		case FieldRolID:
			if request.RolID <= 0 {
				return ErrInvalidRolID
			}
		case FieldPermissionID:
			if request.PermissionID <= 0 {
				return ErrInvalidPermission
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}
