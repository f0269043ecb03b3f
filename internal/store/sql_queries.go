package store

import (
	"time"

	sq "github.com/Masterminds/squirrel"
)

const (
	sessionTable = "session_kv"

	sessionKeyToken = "token"
	sessionKeyUser  = "user"
)

var sessionKeys = []string{sessionKeyToken, sessionKeyUser}

func buildUpsertSessionQuery(token, user string, now time.Time) (string, []any, error) {
	return sq.Insert(sessionTable).
		Columns("key", "value", "updated_at").
		Values(sessionKeyToken, token, now).
		Values(sessionKeyUser, user, now).
		Suffix("ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at").
		ToSql()
}

func buildSelectSessionQuery() (string, []any, error) {
	return sq.Select("key", "value").
		From(sessionTable).
		Where(sq.Eq{"key": sessionKeys}).
		ToSql()
}

func buildDeleteSessionQuery() (string, []any, error) {
	return sq.Delete(sessionTable).
		Where(sq.Eq{"key": sessionKeys}).
		ToSql()
}
