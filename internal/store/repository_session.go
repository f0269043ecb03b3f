package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/meter-console/internal/crypto"
	"github.com/MKhiriev/meter-console/internal/logger"
	"github.com/MKhiriev/meter-console/models"
)

// sessionRepository is the SQLite-backed implementation of
// [SessionRepository]. The "token" value is the sealed JSON of the token
// pair; the "user" value is the plain JSON of the user.
type sessionRepository struct {
	db     *DB
	sealer crypto.Sealer
	now    func() time.Time
	logger *logger.Logger
}

type persistedTokens struct {
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken,omitempty"`
}

// NewSessionRepository constructs a [SessionRepository] on db. Tokens are
// sealed with sealer before they touch the disk.
func NewSessionRepository(db *DB, sealer crypto.Sealer, logger *logger.Logger) SessionRepository {
	logger.Debug().Msg("creating session repository")
	return &sessionRepository{db: db, sealer: sealer, now: time.Now, logger: logger}
}

// Save implements [SessionRepository].
func (r *sessionRepository) Save(ctx context.Context, session models.Session) error {
	log := r.logger.GetChildLogger()

	tokens, err := json.Marshal(persistedTokens{AccessToken: session.AccessToken, RefreshToken: session.RefreshToken})
	if err != nil {
		return fmt.Errorf("encode tokens: %w", err)
	}
	sealed, err := r.sealer.Seal(string(tokens))
	if err != nil {
		return fmt.Errorf("seal tokens: %w", err)
	}
	user, err := json.Marshal(session.User)
	if err != nil {
		return fmt.Errorf("encode user: %w", err)
	}

	query, args, err := buildUpsertSessionQuery(sealed, string(user), r.now().UTC())
	if err != nil {
		return fmt.Errorf("build upsert session query: %w", err)
	}

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		log.Err(err).Str("func", "*sessionRepository.Save").Msg("error beginning transaction")
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck

	if _, err = tx.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).Str("func", "*sessionRepository.Save").Msg("error saving session")
		return fmt.Errorf("save session: %w", err)
	}

	if err = tx.Commit(); err != nil {
		log.Err(err).Str("func", "*sessionRepository.Save").Msg("error committing session")
		return fmt.Errorf("commit session: %w", err)
	}

	log.Debug().Str("func", "*sessionRepository.Save").Str("username", session.User.Username).Msg("session saved")
	return nil
}

// Load implements [SessionRepository].
func (r *sessionRepository) Load(ctx context.Context) (models.Session, error) {
	query, args, err := buildSelectSessionQuery()
	if err != nil {
		return models.Session{}, fmt.Errorf("build select session query: %w", err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		r.logger.Err(err).Str("func", "*sessionRepository.Load").Msg("error reading session")
		return models.Session{}, fmt.Errorf("read session: %w", err)
	}
	defer rows.Close()

	values := make(map[string]string, len(sessionKeys))
	for rows.Next() {
		var key, value string
		if err = rows.Scan(&key, &value); err != nil {
			return models.Session{}, fmt.Errorf("scan session row: %w", err)
		}
		values[key] = value
	}
	if err = rows.Err(); err != nil {
		return models.Session{}, fmt.Errorf("iterate session rows: %w", err)
	}

	return r.decode(values)
}

func (r *sessionRepository) decode(values map[string]string) (models.Session, error) {
	sealed, hasToken := values[sessionKeyToken]
	rawUser, hasUser := values[sessionKeyUser]

	switch {
	case !hasToken && !hasUser:
		return models.Session{}, ErrSessionNotFound
	case !hasToken || !hasUser:
		return models.Session{}, fmt.Errorf("%w: token present=%t, user present=%t", ErrCorruptSession, hasToken, hasUser)
	}

	opened, err := r.sealer.Open(sealed)
	if err != nil {
		return models.Session{}, fmt.Errorf("%w: %w", ErrCorruptSession, err)
	}

	var tokens persistedTokens
	if err = json.Unmarshal([]byte(opened), &tokens); err != nil || tokens.AccessToken == "" {
		return models.Session{}, fmt.Errorf("%w: undecodable token", ErrCorruptSession)
	}

	var user models.User
	if err = json.Unmarshal([]byte(rawUser), &user); err != nil {
		return models.Session{}, fmt.Errorf("%w: %w", ErrCorruptSession, err)
	}
	if user.Username == "" {
		return models.Session{}, fmt.Errorf("%w: user without username", ErrCorruptSession)
	}

	return models.Session{AccessToken: tokens.AccessToken, RefreshToken: tokens.RefreshToken, User: user}, nil
}

// Clear implements [SessionRepository].
func (r *sessionRepository) Clear(ctx context.Context) error {
	query, args, err := buildDeleteSessionQuery()
	if err != nil {
		return fmt.Errorf("build delete session query: %w", err)
	}

	if _, err = r.db.ExecContext(ctx, query, args...); err != nil && !errors.Is(err, sql.ErrNoRows) {
		r.logger.Err(err).Str("func", "*sessionRepository.Clear").Msg("error clearing session")
		return fmt.Errorf("clear session: %w", err)
	}

	r.logger.Debug().Str("func", "*sessionRepository.Clear").Msg("session cleared")
	return nil
}
