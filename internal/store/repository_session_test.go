// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"errors"
	"path/filepath"
	"regexp"
	"strings"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/MKhiriev/meter-console/internal/config"
	"github.com/MKhiriev/meter-console/internal/logger"
	"github.com/MKhiriev/meter-console/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// prefixSealer marks sealed values with a prefix so tests can inspect what
// reaches the database.
type prefixSealer struct {
	sealErr error
}

const sealedPrefix = "sealed:"

func (s prefixSealer) Seal(plaintext string) (string, error) {
	if s.sealErr != nil {
		return "", s.sealErr
	}
	return sealedPrefix + plaintext, nil
}

func (s prefixSealer) Open(sealed string) (string, error) {
	if !strings.HasPrefix(sealed, sealedPrefix) {
		return "", errors.New("not sealed")
	}
	return strings.TrimPrefix(sealed, sealedPrefix), nil
}

var (
	upsertSessionSQL = regexp.QuoteMeta("INSERT INTO session_kv (key,value,updated_at) VALUES (?,?,?),(?,?,?)")
	selectSessionSQL = regexp.QuoteMeta("SELECT key, value FROM session_kv WHERE key IN (?,?)")
	deleteSessionSQL = regexp.QuoteMeta("DELETE FROM session_kv WHERE key IN (?,?)")
)

var fixedNow = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

func newMockSessionRepository(t *testing.T, sealer prefixSealer) (*sessionRepository, sqlmock.Sqlmock) {
	t.Helper()

	conn, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.Close() })

	log := logger.Nop()
	return &sessionRepository{
		db:     &DB{DB: conn, logger: log},
		sealer: sealer,
		now:    func() time.Time { return fixedNow },
		logger: log,
	}, mock
}

func testSession() models.Session {
	return models.Session{
		AccessToken:  "access-1",
		RefreshToken: "refresh-1",
		User:         models.User{UserID: 7, Username: "operator", Email: "op@meter.local", IsActive: true},
	}
}

func TestSessionRepository_Save(t *testing.T) {
	repo, mock := newMockSessionRepository(t, prefixSealer{})

	mock.ExpectBegin()
	mock.ExpectExec(upsertSessionSQL).
		WithArgs(
			"token", `sealed:{"accessToken":"access-1","refreshToken":"refresh-1"}`, fixedNow,
			"user", sqlmock.AnyArg(), fixedNow,
		).
		WillReturnResult(sqlmock.NewResult(0, 2))
	mock.ExpectCommit()

	err := repo.Save(context.Background(), testSession())

	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSessionRepository_Save_ExecErrorRollsBack(t *testing.T) {
	repo, mock := newMockSessionRepository(t, prefixSealer{})

	mock.ExpectBegin()
	mock.ExpectExec(upsertSessionSQL).WillReturnError(errors.New("disk I/O error"))
	mock.ExpectRollback()

	err := repo.Save(context.Background(), testSession())

	require.Error(t, err)
	assert.Contains(t, err.Error(), "save session")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSessionRepository_Save_SealError(t *testing.T) {
	sealErr := errors.New("no key")
	repo, mock := newMockSessionRepository(t, prefixSealer{sealErr: sealErr})

	err := repo.Save(context.Background(), testSession())

	require.ErrorIs(t, err, sealErr)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSessionRepository_Load(t *testing.T) {
	repo, mock := newMockSessionRepository(t, prefixSealer{})

	mock.ExpectQuery(selectSessionSQL).
		WithArgs("token", "user").
		WillReturnRows(sqlmock.NewRows([]string{"key", "value"}).
			AddRow("token", `sealed:{"accessToken":"access-1","refreshToken":"refresh-1"}`).
			AddRow("user", `{"userId":"7","username":"operator","email":"op@meter.local","isActive":true}`))

	session, err := repo.Load(context.Background())

	require.NoError(t, err)
	assert.Equal(t, "access-1", session.AccessToken)
	assert.Equal(t, "refresh-1", session.RefreshToken)
	assert.Equal(t, models.ID(7), session.User.UserID)
	assert.Equal(t, "operator", session.User.Username)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSessionRepository_Load_NotFound(t *testing.T) {
	repo, mock := newMockSessionRepository(t, prefixSealer{})

	mock.ExpectQuery(selectSessionSQL).
		WillReturnRows(sqlmock.NewRows([]string{"key", "value"}))

	_, err := repo.Load(context.Background())

	assert.ErrorIs(t, err, ErrSessionNotFound)
}

func TestSessionRepository_Load_Corrupt(t *testing.T) {
	tests := []struct {
		name string
		rows [][2]string
	}{
		{
			name: "token only",
			rows: [][2]string{{"token", `sealed:{"accessToken":"a"}`}},
		},
		{
			name: "user only",
			rows: [][2]string{{"user", `{"username":"operator"}`}},
		},
		{
			name: "token not sealed",
			rows: [][2]string{{"token", `{"accessToken":"a"}`}, {"user", `{"username":"operator"}`}},
		},
		{
			name: "token not json",
			rows: [][2]string{{"token", "sealed:garbage"}, {"user", `{"username":"operator"}`}},
		},
		{
			name: "empty access token",
			rows: [][2]string{{"token", `sealed:{"accessToken":""}`}, {"user", `{"username":"operator"}`}},
		},
		{
			name: "user without username",
			rows: [][2]string{{"token", `sealed:{"accessToken":"a"}`}, {"user", `{"userId":"7"}`}},
		},
		{
			name: "user not json",
			rows: [][2]string{{"token", `sealed:{"accessToken":"a"}`}, {"user", "{"}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, mock := newMockSessionRepository(t, prefixSealer{})

			rows := sqlmock.NewRows([]string{"key", "value"})
			for _, r := range tt.rows {
				rows.AddRow(r[0], r[1])
			}
			mock.ExpectQuery(selectSessionSQL).WillReturnRows(rows)

			_, err := repo.Load(context.Background())

			assert.ErrorIs(t, err, ErrCorruptSession)
		})
	}
}

func TestSessionRepository_Load_QueryError(t *testing.T) {
	repo, mock := newMockSessionRepository(t, prefixSealer{})

	mock.ExpectQuery(selectSessionSQL).WillReturnError(errors.New("database is locked"))

	_, err := repo.Load(context.Background())

	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrSessionNotFound)
	assert.Contains(t, err.Error(), "read session")
}

func TestSessionRepository_Clear(t *testing.T) {
	repo, mock := newMockSessionRepository(t, prefixSealer{})

	mock.ExpectExec(deleteSessionSQL).
		WithArgs("token", "user").
		WillReturnResult(sqlmock.NewResult(0, 2))

	require.NoError(t, repo.Clear(context.Background()))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSessionRepository_Clear_Error(t *testing.T) {
	repo, mock := newMockSessionRepository(t, prefixSealer{})

	mock.ExpectExec(deleteSessionSQL).WillReturnError(errors.New("readonly database"))

	err := repo.Clear(context.Background())

	require.Error(t, err)
	assert.Contains(t, err.Error(), "clear session")
}

func TestClientStorages_SQLiteRoundTrip(t *testing.T) {
	ctx := context.Background()
	dsn := filepath.Join(t.TempDir(), "nested", "console.db")

	storages, err := NewClientStorages(ctx, config.ClientStorage{DB: config.ClientDB{DSN: dsn}}, prefixSealer{}, logger.Nop())
	require.NoError(t, err)
	defer storages.Close()

	repo := storages.SessionRepository

	_, err = repo.Load(ctx)
	require.ErrorIs(t, err, ErrSessionNotFound)

	require.NoError(t, repo.Save(ctx, testSession()))

	second := testSession()
	second.AccessToken = "access-2"
	require.NoError(t, repo.Save(ctx, second))

	loaded, err := repo.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, "access-2", loaded.AccessToken)
	assert.Equal(t, "refresh-1", loaded.RefreshToken)
	assert.Equal(t, "operator", loaded.User.Username)

	require.NoError(t, repo.Clear(ctx))
	_, err = repo.Load(ctx)
	assert.ErrorIs(t, err, ErrSessionNotFound)
}
