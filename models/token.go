package models

import (
	"fmt"

	"github.com/golang-jwt/jwt/v5"
)

// TokenKind distinguishes access tokens from refresh tokens issued by the
// metering API.
type TokenKind string

const (
	TokenKindAccess  TokenKind = "access"
	TokenKindRefresh TokenKind = "refresh"
)

// Token wraps a JWT token with the claims the metering API embeds.
//
// It embeds [jwt.Token] for low-level token operations (signing, parsing)
// and [jwt.RegisteredClaims] for standard claim access (subject, expiry, etc.).
type Token struct {
	// Token is the underlying JWT token used for signing and claim inspection.
	*jwt.Token `json:"-"`

	jwt.RegisteredClaims

	// Kind is the "kind" claim. A refresh token is never accepted where an
	// access token is expected and vice versa.
	Kind TokenKind `json:"kind"`

	// Username is the "username" claim, carried so logs can name the user
	// without a directory lookup.
	Username string `json:"username,omitempty"`

	// SignedString is the compact JWS representation of the token.
	SignedString string `json:"-"`

	// UserID is the owner identifier extracted from the "sub" claim.
	UserID ID `json:"-"`
}

// GetUserID parses the "sub" claim as an [ID].
func (t *Token) GetUserID() (ID, error) {
	sub, err := t.GetSubject()
	if err != nil {
		return 0, fmt.Errorf("error extracting UserID from token: %w", err)
	}

	userID, err := ParseID(sub)
	if err != nil {
		return 0, fmt.Errorf("error converting UserID from token: %w", err)
	}

	return userID, nil
}

// String returns the compact JWS serialization of the token.
func (t *Token) String() string {
	return t.SignedString
}
