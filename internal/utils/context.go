// Package utils provides general-purpose helpers shared by the console and
// the development server: context keys, JSON response writing, the resty
// HTTP client, JWT issuance and validation, and trace id generation.
package utils

import (
	"context"

	"github.com/MKhiriev/meter-console/models"
)

// contextKey is a private type for context keys.
// Using a dedicated type instead of a plain string prevents key collisions
// with other packages that may use string-based keys in the context.
type contextKey string

// String returns the string representation of the context key.
func (c contextKey) String() string {
	return string(c)
}

// UserIDCtxKey is the key used to store the authenticated user identifier in
// the request context.
var UserIDCtxKey = contextKey("userID")

// WithUserID returns a copy of ctx carrying userID.
func WithUserID(ctx context.Context, userID models.ID) context.Context {
	return context.WithValue(ctx, UserIDCtxKey, userID)
}

// GetUserIDFromContext retrieves the user identifier from the context.
// ok is false if the value is missing or has an unexpected type.
func GetUserIDFromContext(ctx context.Context) (models.ID, bool) {
	userID, ok := ctx.Value(UserIDCtxKey).(models.ID)
	return userID, ok
}
