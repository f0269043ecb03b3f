// Package migrations embeds the console's SQLite schema and applies it with
// goose.
package migrations

import (
	"database/sql"
	"embed"
	"errors"
	"fmt"
	"strings"

	"github.com/MKhiriev/meter-console/internal/logger"
	"github.com/pressly/goose/v3"
)

//go:embed *.sql
var embedMigrations embed.FS

// Migrate applies all pending migrations to db. Goose output goes to log
// because the console owns the terminal.
func Migrate(db *sql.DB, log *logger.Logger) error {
	if db == nil {
		return errors.New("migration error: db is nil")
	}

	goose.SetBaseFS(embedMigrations)
	goose.SetLogger(gooseLogger{log: log})

	if err := goose.SetDialect("sqlite3"); err != nil {
		return fmt.Errorf("migration error setting dialect for db: %w", err)
	}

	if err := goose.Up(db, "."); err != nil {
		return fmt.Errorf("migration error: %w", err)
	}

	return nil
}

// gooseLogger adapts [logger.Logger] to goose.Logger.
type gooseLogger struct {
	log *logger.Logger
}

func (g gooseLogger) Printf(format string, v ...any) {
	g.log.Debug().Str("func", "goose").Msg(strings.TrimSpace(fmt.Sprintf(format, v...)))
}

// Fatalf logs at error level instead of exiting; goose returns the error
// to Migrate as well.
func (g gooseLogger) Fatalf(format string, v ...any) {
	g.log.Error().Str("func", "goose").Msg(strings.TrimSpace(fmt.Sprintf(format, v...)))
}
