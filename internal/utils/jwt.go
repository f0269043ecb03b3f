package utils

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/meter-console/models"
	"github.com/golang-jwt/jwt/v5"
)

// ErrWrongTokenKind is returned when a refresh token is presented where an
// access token is expected, or the other way round.
var ErrWrongTokenKind = errors.New("wrong token kind")

// TokenParams describes a token to be issued by GenerateJWTToken.
type TokenParams struct {
	Issuer   string
	UserID   models.ID
	Username string
	Kind     models.TokenKind
	Duration time.Duration
	SignKey  string
}

// GenerateJWTToken creates a signed HMAC-SHA256 JWT token.
//
// The token includes the standard claims iss, sub, iat and exp plus the
// "kind" and "username" claims of [models.Token]. Issuer, Kind, Duration
// and SignKey are required.
//
// Example usage:
//
//	token, err := utils.GenerateJWTToken(utils.TokenParams{
//	    Issuer: "meter-api", UserID: 42, Kind: models.TokenKindAccess,
//	    Duration: time.Minute, SignKey: "secret",
//	})
func GenerateJWTToken(p TokenParams) (models.Token, error) {
	if p.Issuer == "" || p.Duration <= 0 || p.SignKey == "" || p.Kind == "" {
		return models.Token{}, errors.New("invalid params for generating JWT Token")
	}

	now := time.Now()
	claims := &models.Token{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    p.Issuer,
			Subject:   p.UserID.String(),
			ExpiresAt: jwt.NewNumericDate(now.Add(p.Duration)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
		Kind:     p.Kind,
		Username: p.Username,
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString([]byte(p.SignKey))
	if err != nil {
		return models.Token{}, fmt.Errorf("error occurred during singing JWT token: %w", err)
	}

	return models.Token{
		Token:            token,
		RegisteredClaims: claims.RegisteredClaims,
		Kind:             p.Kind,
		Username:         p.Username,
		SignedString:     tokenString,
		UserID:           p.UserID,
	}, nil
}

// ValidateAndParseJWTToken validates tokenString and extracts its claims.
//
// Validation includes the signature, the issuer, the expiry, the presence
// of the subject and the expected kind.
func ValidateAndParseJWTToken(tokenString, tokenSignKey, tokenIssuer string, kind models.TokenKind) (models.Token, error) {
	claims := &models.Token{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (any, error) {
		return []byte(tokenSignKey), nil
	}, jwt.WithIssuer(tokenIssuer), jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		return models.Token{}, fmt.Errorf("error occurred validating and parsing token: %w", err)
	}

	if claims.Kind != kind {
		return models.Token{}, fmt.Errorf("%w: want %s, got %q", ErrWrongTokenKind, kind, claims.Kind)
	}

	if claims.Subject == "" {
		return models.Token{}, errors.New("empty subject error")
	}
	userID, err := claims.GetUserID()
	if err != nil {
		return models.Token{}, err
	}

	claims.Token = token
	claims.SignedString = tokenString
	claims.UserID = userID
	return *claims, nil
}

// ParseBearerToken extracts the token from an "Authorization: Bearer <t>"
// header value.
func ParseBearerToken(authorizationHeader string) (string, error) {
	parts := strings.Fields(authorizationHeader)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return "", errors.New("invalid authorization header")
	}
	return parts[1], nil
}

// TokenExpiry reads the exp claim of tokenString without verifying the
// signature. The console cannot verify tokens; it only uses the expiry for
// display. A zero time is returned for opaque or expiry-less tokens.
func TokenExpiry(tokenString string) time.Time {
	token, _, err := jwt.NewParser().ParseUnverified(tokenString, &jwt.RegisteredClaims{})
	if err != nil {
		return time.Time{}
	}

	exp, err := token.Claims.GetExpirationTime()
	if err != nil || exp == nil {
		return time.Time{}
	}
	return exp.Time
}
