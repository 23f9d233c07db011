package store

import (
	"context"

	"github.com/akarpushin/go-notes-api/internal/config"
	"github.com/akarpushin/go-notes-api/internal/logger"
)

// Storages aggregates every repository in the persistence layer behind a
// single shared connection pool.
type Storages struct {
	DB             *DB
	UserRepository UserRepository
	NoteRepository NoteRepository
}

// NewStorages connects to PostgreSQL, applies pending migrations and wires
// the repositories on top of the shared pool.
func NewStorages(ctx context.Context, cfg config.DB, log *logger.Logger) (*Storages, error) {
	db, err := NewConnectPostgres(ctx, cfg, log)
	if err != nil {
		log.Err(err).Msg("connection to database failed")
		return nil, err
	}

	if err := db.Migrate(); err != nil {
		log.Err(err).Msg("database migration failed")
		return nil, err
	}

	return &Storages{
		DB:             db,
		UserRepository: NewUserRepository(db, log),
		NoteRepository: NewNoteRepository(db, log),
	}, nil
}
