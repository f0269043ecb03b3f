package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"golang.org/x/sync/singleflight"

	"github.com/MKhiriev/meter-console/internal/adapter"
	"github.com/MKhiriev/meter-console/internal/logger"
	"github.com/MKhiriev/meter-console/internal/store"
	"github.com/MKhiriev/meter-console/internal/utils"
	"github.com/MKhiriev/meter-console/models"
)

// SessionState is a state of the session lifecycle:
//
//	anonymous -> authenticating -> authenticated -> session_expired -> authenticated | anonymous
//
// An explicit logout always ends in anonymous.
type SessionState string

const (
	StateAnonymous      SessionState = "anonymous"
	StateAuthenticating SessionState = "authenticating"
	StateAuthenticated  SessionState = "authenticated"
	StateSessionExpired SessionState = "session_expired"
)

// SessionView is a read-only copy of the session handed to the
// presentation layer.
type SessionView struct {
	User      models.User
	Token     string
	State     SessionState
	IsLoading bool
	ExpiresAt time.Time
}

// SessionStore owns the console session. The in-memory session, the
// persisted record and the gateway bearer token are always changed together
// under one lock; network calls run outside of it.
//
// Every logout bumps an epoch. A login or refresh that started in an older
// epoch is discarded on completion with [ErrSessionCleared], so a response
// racing a logout cannot bring the session back.
type SessionStore struct {
	auth   adapter.AuthAPI
	repo   store.SessionRepository
	logger *logger.Logger

	refreshGroup singleflight.Group

	mu         sync.Mutex
	session    models.Session
	state      SessionState
	epoch      uint64
	refreshing bool
	onExpired  func(err error)
	onLogout   func()
}

var _ SessionManager = (*SessionStore)(nil)

// NewSessionStore returns an anonymous SessionStore. Call Restore to load a
// persisted session.
func NewSessionStore(auth adapter.AuthAPI, repo store.SessionRepository, logger *logger.Logger) *SessionStore {
	return &SessionStore{
		auth:   auth,
		repo:   repo,
		logger: logger,
		state:  StateAnonymous,
	}
}

// OnSessionExpired implements [SessionManager].
func (s *SessionStore) OnSessionExpired(handler func(err error)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.onExpired = handler
}

// OnLogout implements [SessionManager].
func (s *SessionStore) OnLogout(handler func()) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.onLogout = handler
}

// Snapshot implements [SessionManager].
func (s *SessionStore) Snapshot() SessionView {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.viewLocked()
}

func (s *SessionStore) viewLocked() SessionView {
	return SessionView{
		User:      s.session.User,
		Token:     s.session.AccessToken,
		State:     s.state,
		IsLoading: s.state == StateAuthenticating || s.refreshing,
		ExpiresAt: s.session.ExpiresAt,
	}
}

// Restore implements [SessionManager]. A missing record leaves the store
// anonymous. A corrupt or partial record is cleared and also leaves it
// anonymous.
func (s *SessionStore) Restore(ctx context.Context) error {
	log := s.logger.GetChildLogger()

	session, err := s.repo.Load(ctx)
	switch {
	case errors.Is(err, store.ErrSessionNotFound):
		log.Debug().Str("func", "*SessionStore.Restore").Msg("no persisted session")
		return nil
	case errors.Is(err, store.ErrCorruptSession):
		log.Warn().Err(err).Str("func", "*SessionStore.Restore").Msg("dropping corrupt persisted session")
		if clearErr := s.repo.Clear(ctx); clearErr != nil {
			log.Err(clearErr).Str("func", "*SessionStore.Restore").Msg("error clearing corrupt session")
		}
		return nil
	case err != nil:
		log.Err(err).Str("func", "*SessionStore.Restore").Msg("error loading persisted session")
		return fmt.Errorf("restore session: %w", err)
	}

	session.ExpiresAt = utils.TokenExpiry(session.AccessToken)

	s.mu.Lock()
	defer s.mu.Unlock()

	s.session = session
	s.state = StateAuthenticated
	s.auth.SetToken(session.AccessToken)

	log.Info().
		Str("func", "*SessionStore.Restore").
		Str("username", session.User.Username).
		Msg("session restored")
	return nil
}

// Login implements [SessionManager].
func (s *SessionStore) Login(ctx context.Context, credentials models.Credentials) (models.Session, error) {
	log := s.logger.GetChildLogger()

	s.mu.Lock()
	prevState := s.state
	epoch := s.epoch
	s.state = StateAuthenticating
	s.mu.Unlock()

	session, err := s.auth.SignIn(ctx, credentials)
	switch {
	case err != nil:
	case session.AccessToken == "":
		err = errors.New("sign-in returned no access token")
	case session.User.Username == "":
		err = errors.New("sign-in returned no user")
	}
	if err != nil {
		s.restoreState(epoch, prevState)
		log.Warn().Err(err).
			Str("func", "*SessionStore.Login").
			Str("username", credentials.Username).
			Msg("sign-in failed")
		return models.Session{}, fmt.Errorf("%w: %w", ErrAuthenticationFailed, err)
	}

	session.ExpiresAt = utils.TokenExpiry(session.AccessToken)
	if err = s.commit(ctx, epoch, session); err != nil {
		s.restoreState(epoch, prevState)
		return models.Session{}, err
	}

	log.Info().Str("func", "*SessionStore.Login").Str("username", session.User.Username).Msg("signed in")
	return session, nil
}

// restoreState puts back prevState unless a logout happened meanwhile.
func (s *SessionStore) restoreState(epoch uint64, prevState SessionState) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.epoch == epoch && s.state == StateAuthenticating {
		s.state = prevState
	}
}

// commit persists session and makes it current, unless the epoch moved.
func (s *SessionStore) commit(ctx context.Context, epoch uint64, session models.Session) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.epoch != epoch {
		s.logger.Debug().Str("func", "*SessionStore.commit").Msg("discarding session from a cleared epoch")
		return ErrSessionCleared
	}

	if err := s.repo.Save(ctx, session); err != nil {
		s.logger.Err(err).Str("func", "*SessionStore.commit").Msg("error persisting session")
		return fmt.Errorf("persist session: %w", err)
	}

	s.session = session
	s.state = StateAuthenticated
	s.auth.SetToken(session.AccessToken)
	return nil
}

// Logout implements [SessionManager]. The in-memory session is dropped
// even if clearing the persisted record fails.
func (s *SessionStore) Logout(ctx context.Context) error {
	s.mu.Lock()
	s.epoch++
	username := s.session.User.Username
	s.session = models.Session{}
	s.state = StateAnonymous
	s.auth.SetToken("")
	err := s.repo.Clear(ctx)
	handler := s.onLogout
	s.mu.Unlock()

	if handler != nil {
		handler()
	}

	if err != nil {
		s.logger.Err(err).Str("func", "*SessionStore.Logout").Msg("error clearing persisted session")
		return fmt.Errorf("clear persisted session: %w", err)
	}

	s.logger.Info().Str("func", "*SessionStore.Logout").Str("username", username).Msg("signed out")
	return nil
}

// Refresh implements [SessionManager]. Concurrent calls share one backend
// request. A backend that does not rotate refresh tokens keeps the old one,
// and a response without a user keeps the current user.
func (s *SessionStore) Refresh(ctx context.Context) (models.Session, error) {
	v, err, _ := s.refreshGroup.Do("refresh", func() (any, error) {
		return s.refresh(ctx)
	})
	if err != nil {
		return models.Session{}, err
	}
	return v.(models.Session), nil
}

func (s *SessionStore) refresh(ctx context.Context) (models.Session, error) {
	log := s.logger.GetChildLogger()

	s.mu.Lock()
	current := s.session
	epoch := s.epoch
	s.refreshing = true
	s.mu.Unlock()

	defer func() {
		s.mu.Lock()
		s.refreshing = false
		s.mu.Unlock()
	}()

	if current.IsZero() {
		return models.Session{}, ErrNotAuthenticated
	}

	var (
		session models.Session
		err     error
	)
	if current.RefreshToken == "" {
		err = errors.New("no refresh token")
	} else {
		session, err = s.auth.Refresh(ctx, current.RefreshToken)
		if err == nil && session.AccessToken == "" {
			err = errors.New("refresh returned no access token")
		}
	}
	if err == nil {
		if session.RefreshToken == "" {
			session.RefreshToken = current.RefreshToken
		}
		if session.User.Username == "" {
			session.User = current.User
		}
		session.ExpiresAt = utils.TokenExpiry(session.AccessToken)
		err = s.commit(ctx, epoch, session)
	}

	if err != nil {
		if errors.Is(err, ErrSessionCleared) {
			return models.Session{}, err
		}
		log.Warn().Err(err).Str("func", "*SessionStore.Refresh").Msg("refresh failed, signing out")
		if s.currentEpoch() == epoch {
			_ = s.Logout(ctx)
		}
		return models.Session{}, fmt.Errorf("%w: %w", ErrRefreshFailed, err)
	}

	log.Info().Str("func", "*SessionStore.Refresh").Str("username", session.User.Username).Msg("session refreshed")
	return session, nil
}

func (s *SessionStore) currentEpoch() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.epoch
}

// UpdateUserSession implements [SessionManager]. The token is kept.
func (s *SessionStore) UpdateUserSession(ctx context.Context, user models.User) error {
	s.mu.Lock()
	epoch := s.epoch
	s.mu.Unlock()

	return s.updateUser(ctx, epoch, user)
}

func (s *SessionStore) updateUser(ctx context.Context, epoch uint64, user models.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.epoch != epoch {
		return ErrSessionCleared
	}
	if s.session.IsZero() {
		return ErrNotAuthenticated
	}

	session := s.session
	session.User = user
	if err := s.repo.Save(ctx, session); err != nil {
		s.logger.Err(err).Str("func", "*SessionStore.UpdateUserSession").Msg("error persisting user")
		return fmt.Errorf("persist user: %w", err)
	}
	s.session = session
	return nil
}

// ReloadUser implements [SessionManager].
func (s *SessionStore) ReloadUser(ctx context.Context) (models.User, error) {
	s.mu.Lock()
	epoch := s.epoch
	authenticated := !s.session.IsZero()
	s.mu.Unlock()

	if !authenticated {
		return models.User{}, ErrNotAuthenticated
	}

	user, err := s.auth.Me(ctx)
	if err != nil {
		return models.User{}, fmt.Errorf("reload user: %w", mapAdapterError(err))
	}
	if err = s.updateUser(ctx, epoch, user); err != nil {
		return models.User{}, err
	}
	return user, nil
}

// HandleUnauthorized is the gateway's unauthorized handler. The first 401
// of an authenticated session moves it to [StateSessionExpired] and calls
// the session-expired handler once; later notifications are ignored until
// the session is refreshed or ended. A 401 for a request sent with another
// token than the current one is ignored too.
func (s *SessionStore) HandleUnauthorized(err error) {
	s.mu.Lock()
	var unauthorized *adapter.UnauthorizedError
	if errors.As(err, &unauthorized) && unauthorized.Token != strings.TrimSpace(s.session.AccessToken) {
		s.mu.Unlock()
		s.logger.Debug().
			Str("func", "*SessionStore.HandleUnauthorized").
			Msg("ignoring unauthorized notification for a replaced token")
		return
	}
	if s.state != StateAuthenticated {
		state := s.state
		s.mu.Unlock()
		s.logger.Debug().
			Str("func", "*SessionStore.HandleUnauthorized").
			Str("state", string(state)).
			Msg("ignoring unauthorized notification")
		return
	}
	s.state = StateSessionExpired
	handler := s.onExpired
	s.mu.Unlock()

	s.logger.Info().Err(err).Str("func", "*SessionStore.HandleUnauthorized").Msg("session expired")
	if handler != nil {
		handler(fmt.Errorf("%w: %w", ErrSessionExpired, err))
	}
}
