package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/MKhiriev/meter-console/internal/config"
	"github.com/MKhiriev/meter-console/internal/logger"
	"github.com/MKhiriev/meter-console/internal/store"
	"github.com/MKhiriev/meter-console/internal/utils"
	"github.com/MKhiriev/meter-console/internal/validators"
	"github.com/MKhiriev/meter-console/models"
)

// authService is the development server implementation of AuthService.
// Passwords are checked against the bcrypt hashes of the directory; access
// and refresh tokens are HMAC-SHA256 JWTs told apart by their "kind" claim.
type authService struct {
	// directory is where users and their bcrypt hashes are looked up.
	directory store.DirectoryRepository

	// tokenSignKey is the HMAC secret used to sign and verify JWT tokens.
	tokenSignKey string

	// tokenIssuer is the "iss" claim embedded in every issued JWT.
	// Tokens whose issuer does not match this value are rejected during parsing.
	tokenIssuer string

	accessTokenDuration  time.Duration
	refreshTokenDuration time.Duration

	validator validators.Validator
	logger    *logger.Logger
}

// NewAuthService constructs an AuthService reading users from directory and
// token parameters from cfg.
//
// The returned service is safe for concurrent use; all state is read-only after
// construction.
func NewAuthService(directory store.DirectoryRepository, cfg config.Auth, logger *logger.Logger) AuthService {
	return &authService{
		directory:            directory,
		tokenSignKey:         cfg.TokenSignKey,
		tokenIssuer:          cfg.TokenIssuer,
		accessTokenDuration:  cfg.AccessTokenDuration,
		refreshTokenDuration: cfg.RefreshTokenDuration,
		validator:            validators.NewRequestValidator(),
		logger:               logger,
	}
}

// SignIn authenticates credentials and issues a new token pair.
//
// Returns:
//   - ErrInvalidDataProvided if the username or password is empty.
//   - ErrWrongPassword if the user does not exist or the password does not
//     match. Both cases look the same to the caller.
//   - ErrUserIsInactive if the account is disabled.
func (a *authService) SignIn(ctx context.Context, credentials models.Credentials) (models.Session, error) {
	log := logger.FromContext(ctx)

	if err := a.validator.Validate(ctx, credentials); err != nil {
		log.Error().Err(err).Str("username", credentials.Username).Msg("invalid credentials provided")
		return models.Session{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	found, err := a.directory.FindUserByUsername(ctx, credentials.Username)
	if err != nil {
		if errors.Is(err, store.ErrUserNotFound) {
			log.Warn().Str("username", credentials.Username).Msg("sign in for unknown user")
			return models.Session{}, ErrWrongPassword
		}
		log.Err(err).Str("username", credentials.Username).Msg("user search by username failed")
		return models.Session{}, fmt.Errorf("user search by username failed: %w", err)
	}

	if err = bcrypt.CompareHashAndPassword(found.PasswordHash, []byte(credentials.Password)); err != nil {
		log.Warn().
			Int64("id", int64(found.User.UserID)).
			Str("username", found.User.Username).
			Msg("wrong password")
		return models.Session{}, ErrWrongPassword
	}

	if !found.User.IsActive {
		log.Warn().Str("username", found.User.Username).Msg("sign in for inactive user")
		return models.Session{}, ErrUserIsInactive
	}

	access, err := a.createToken(found.User, models.TokenKindAccess, a.accessTokenDuration)
	if err != nil {
		return models.Session{}, err
	}
	refresh, err := a.createToken(found.User, models.TokenKindRefresh, a.refreshTokenDuration)
	if err != nil {
		return models.Session{}, err
	}

	log.Info().Str("username", found.User.Username).Msg("user signed in")
	return models.Session{
		AccessToken:  access.SignedString,
		RefreshToken: refresh.SignedString,
		User:         found.User,
		ExpiresAt:    access.ExpiresAt.Time,
	}, nil
}

// Refresh issues a new access token for a valid refresh token. The refresh
// token is not rotated and is left out of the response.
func (a *authService) Refresh(ctx context.Context, refreshToken string) (models.Session, error) {
	log := logger.FromContext(ctx)

	if err := a.validator.Validate(ctx, models.RefreshRequest{RefreshToken: refreshToken}); err != nil {
		log.Error().Err(err).Msg("invalid refresh request")
		return models.Session{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	token, err := utils.ValidateAndParseJWTToken(refreshToken, a.tokenSignKey, a.tokenIssuer, models.TokenKindRefresh)
	if err != nil {
		log.Warn().Err(err).Msg("invalid refresh token")
		return models.Session{}, ErrTokenIsExpiredOrInvalid
	}

	found, err := a.directory.GetUser(ctx, token.UserID)
	if err != nil {
		if errors.Is(err, store.ErrUserNotFound) {
			return models.Session{}, ErrTokenIsExpiredOrInvalid
		}
		return models.Session{}, fmt.Errorf("user search by id failed: %w", err)
	}
	if !found.User.IsActive {
		return models.Session{}, ErrUserIsInactive
	}

	access, err := a.createToken(found.User, models.TokenKindAccess, a.accessTokenDuration)
	if err != nil {
		return models.Session{}, err
	}

	log.Info().Str("username", found.User.Username).Msg("access token refreshed")
	return models.Session{
		AccessToken: access.SignedString,
		User:        found.User,
		ExpiresAt:   access.ExpiresAt.Time,
	}, nil
}

// ParseAccessToken validates a raw access token. Any validation failure
// (expired, wrong issuer, wrong kind, malformed) is normalised to
// ErrTokenIsExpiredOrInvalid.
func (a *authService) ParseAccessToken(_ context.Context, tokenString string) (models.Token, error) {
	token, err := utils.ValidateAndParseJWTToken(tokenString, a.tokenSignKey, a.tokenIssuer, models.TokenKindAccess)
	if err != nil {
		return models.Token{}, fmt.Errorf("%w: %w", ErrTokenIsExpiredOrInvalid, err)
	}

	return token, nil
}

// Me returns the user with its roles expanded.
func (a *authService) Me(ctx context.Context, userID models.ID) (models.User, error) {
	found, err := a.directory.GetUser(ctx, userID)
	if err != nil {
		return models.User{}, fmt.Errorf("user search by id failed: %w", err)
	}
	return found.User, nil
}

func (a *authService) createToken(user models.User, kind models.TokenKind, duration time.Duration) (models.Token, error) {
	token, err := utils.GenerateJWTToken(utils.TokenParams{
		Issuer:   a.tokenIssuer,
		UserID:   user.UserID,
		Username: user.Username,
		Kind:     kind,
		Duration: duration,
		SignKey:  a.tokenSignKey,
	})
	if err != nil {
		return models.Token{}, fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}

	return token, nil
}
