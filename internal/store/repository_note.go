// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Andrey Karpushin

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/akarpushin/go-notes-api/internal/logger"
	"github.com/akarpushin/go-notes-api/models"
)

// noteRepository is the PostgreSQL-backed implementation of [NoteRepository].
// Every query carries the owning user_id in its WHERE clause, so ownership
// checks happen in the database rather than in Go code.
type noteRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewNoteRepository constructs a [NoteRepository] backed by the provided
// database connection and logger.
func NewNoteRepository(db *DB, logger *logger.Logger) NoteRepository {
	logger.Debug().Msg("creating note repository")
	return &noteRepository{
		db:     db,
		logger: logger,
	}
}

func scanNote(row rowScanner) (models.Note, error) {
	var note models.Note
	err := row.Scan(
		&note.ID,
		&note.UserID,
		&note.Title,
		&note.Content,
		&note.CreatedAt,
		&note.UpdatedAt,
	)
	if err != nil {
		return models.Note{}, err
	}

	return note, nil
}

// CreateNote persists a new note and returns it with server-assigned
// fields (ID, CreatedAt, UpdatedAt) populated via the RETURNING clause.
func (r *noteRepository) CreateNote(ctx context.Context, note models.Note) (models.Note, error) {
	log := logger.FromContext(ctx)

	row := r.db.QueryRowContext(ctx, createNote, note.UserID, note.Title, note.Content)

	if err := row.Err(); err != nil {
		log.Err(err).Str("func", "*noteRepository.CreateNote").Msg("error: row is nil")
		if r.db.errorClassificator.Classify(err) == Retryable {
			log.Warn().Str("func", "*noteRepository.CreateNote").Msg("transient database error, the operation may be retried")
		}
		return models.Note{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	created, err := scanNote(row)
	if err != nil {
		log.Err(err).Str("func", "*noteRepository.CreateNote").Msg("error: scanning error")
		return models.Note{}, err
	}

	return created, nil
}

// ListNotes returns one page of the user's notes ordered by updated_at
// descending, together with the user's total note count. The page query
// and the count query are built with squirrel and executed back to back
// on the same connection pool.
func (r *noteRepository) ListNotes(ctx context.Context, userID string, offset, limit uint64) ([]models.Note, int64, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildListNotesQuery(userID, offset, limit)
	if err != nil {
		log.Err(err).Str("func", "*noteRepository.ListNotes").Msg("error building list query")
		return nil, 0, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*noteRepository.ListNotes").Msg("error executing list query")
		return nil, 0, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	notes := make([]models.Note, 0, limit)
	for rows.Next() {
		note, scanErr := scanNote(rows)
		if scanErr != nil {
			log.Err(scanErr).Str("func", "*noteRepository.ListNotes").Msg("error scanning note row")
			return nil, 0, fmt.Errorf("%w: %w", ErrScanningRows, scanErr)
		}
		notes = append(notes, note)
	}
	if err := rows.Err(); err != nil {
		log.Err(err).Str("func", "*noteRepository.ListNotes").Msg("error iterating note rows")
		return nil, 0, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	countQuery, countArgs, err := buildCountNotesQuery(userID)
	if err != nil {
		log.Err(err).Str("func", "*noteRepository.ListNotes").Msg("error building count query")
		return nil, 0, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var total int64
	if err := r.db.QueryRowContext(ctx, countQuery, countArgs...).Scan(&total); err != nil {
		log.Err(err).Str("func", "*noteRepository.ListNotes").Msg("error scanning note count")
		return nil, 0, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return notes, total, nil
}

// GetNote returns a single note owned by the user.
//
// Error handling:
//   - [sql.ErrNoRows] → [ErrNoteNotFound]. A note owned by another user
//     is indistinguishable from a missing one.
func (r *noteRepository) GetNote(ctx context.Context, userID string, noteID string) (models.Note, error) {
	log := logger.FromContext(ctx)

	row := r.db.QueryRowContext(ctx, getNote, noteID, userID)

	if err := row.Err(); err != nil {
		log.Err(err).Str("func", "*noteRepository.GetNote").Msg("error: row is nil")
		return models.Note{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	note, err := scanNote(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Note{}, ErrNoteNotFound
		}
		log.Err(err).Str("func", "*noteRepository.GetNote").Msg("error: scanning error")
		return models.Note{}, err
	}

	return note, nil
}

// UpdateNote applies the non-nil fields of update and returns the
// refreshed note. The UPDATE is built dynamically so untouched columns
// keep their current values.
//
// Error handling:
//   - no fields to change → [ErrNothingToUpdate].
//   - [sql.ErrNoRows] on RETURNING → [ErrNoteNotFound].
func (r *noteRepository) UpdateNote(ctx context.Context, update models.NoteUpdate) (models.Note, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildUpdateNoteQuery(update)
	if err != nil {
		if !errors.Is(err, ErrNothingToUpdate) {
			log.Err(err).Str("func", "*noteRepository.UpdateNote").Msg("error building update query")
			err = fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
		}
		return models.Note{}, err
	}

	row := r.db.QueryRowContext(ctx, query, args...)
	if err := row.Err(); err != nil {
		log.Err(err).Str("func", "*noteRepository.UpdateNote").Msg("error: row is nil")
		return models.Note{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	updated, err := scanNote(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Note{}, ErrNoteNotFound
		}
		log.Err(err).Str("func", "*noteRepository.UpdateNote").Msg("error: scanning error")
		return models.Note{}, err
	}

	return updated, nil
}

// DeleteNote removes a single note owned by the user. A zero affected-row
// count maps to [ErrNoteNotFound].
func (r *noteRepository) DeleteNote(ctx context.Context, userID string, noteID string) error {
	log := logger.FromContext(ctx)

	result, err := r.db.ExecContext(ctx, deleteNote, noteID, userID)
	if err != nil {
		log.Err(err).Str("func", "*noteRepository.DeleteNote").Msg("error executing delete")
		return fmt.Errorf("unexpected DB error: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		log.Err(err).Str("func", "*noteRepository.DeleteNote").Msg("error reading affected rows")
		return err
	}
	if rowsAffected == 0 {
		return ErrNoteNotFound
	}

	return nil
}
