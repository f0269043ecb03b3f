package models

import "time"

// Session is the authenticated state owned by the console's session store.
// AccessToken and User are always set or cleared together.
type Session struct {
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken"`
	User         User   `json:"user"`

	// ExpiresAt is read from the access token claims when available. It is
	// informational only; expiry is detected by the backend answering 401.
	ExpiresAt time.Time `json:"-"`
}

// IsZero reports whether the session carries no token.
func (s Session) IsZero() bool {
	return s.AccessToken == ""
}

// RefreshRequest is the body of the token refresh call.
type RefreshRequest struct {
	RefreshToken string `json:"refreshToken"`
}
