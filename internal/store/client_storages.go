package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/meter-console/internal/config"
	"github.com/MKhiriev/meter-console/internal/crypto"
	"github.com/MKhiriev/meter-console/internal/logger"
)

// ClientStorages groups the console storage repositories.
type ClientStorages struct {
	// SessionRepository persists the session across restarts.
	SessionRepository SessionRepository

	db *DB
}

// NewClientStorages opens the local SQLite database at cfg.DB.DSN, applies
// the schema migrations and wires the repositories.
func NewClientStorages(ctx context.Context, cfg config.ClientStorage, sealer crypto.Sealer, logger *logger.Logger) (*ClientStorages, error) {
	logger.Info().Msg("creating new storages...")

	db, err := NewConnectSQLite(ctx, cfg.DB, logger)
	if err != nil {
		return nil, fmt.Errorf("sqlite connection error: %w", err)
	}

	if err = db.Migrate(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("migration failed: %w", err)
	}

	return &ClientStorages{
		SessionRepository: NewSessionRepository(db, sealer, logger),
		db:                db,
	}, nil
}

// Close releases the database handle.
func (s *ClientStorages) Close() error {
	return s.db.Close()
}
