package models

import "time"

// SuperuserUsername is the reserved username whose authorization bypasses
// role and permission computation.
const SuperuserUsername = "root"

// User is the authenticated operator of the console as returned by the
// metering API sign-in and refresh endpoints.
type User struct {
	// UserID is the backend identifier of the user.
	UserID ID `json:"userId"`

	// Username is the login name. The value [SuperuserUsername] is reserved.
	Username string `json:"username"`

	// Email is the contact address of the user.
	Email string `json:"email"`

	// Roles holds the roles assigned to the user. Each role may carry its own
	// populated permission list.
	Roles []Role `json:"roles,omitempty"`

	// Permissions holds permissions granted to the user directly, outside of
	// any role.
	Permissions []Permission `json:"permissions,omitempty"`

	// IsActive reports whether the account is enabled.
	IsActive bool `json:"isActive"`

	// FailedAttempts is the number of consecutive failed sign-in attempts.
	FailedAttempts int `json:"failedAttempts"`

	// TwoFactorEnabled reports whether a second factor is configured.
	TwoFactorEnabled bool `json:"twoFactorEnabled"`

	// CreatedAt is the account creation time.
	CreatedAt time.Time `json:"createdAt,omitzero"`
}

// IsSuperuser reports whether u is the superuser sentinel.
func (u User) IsSuperuser() bool {
	return u.Username == SuperuserUsername
}

// Credentials is the sign-in form payload.
type Credentials struct {
	Username string `json:"username"`
	Password string `json:"password"`
}
