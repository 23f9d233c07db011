// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Andrey Karpushin

package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/akarpushin/go-notes-api/internal/logger"
	"github.com/akarpushin/go-notes-api/internal/store"
	"github.com/akarpushin/go-notes-api/models"
)

const (
	defaultPageLimit = 10
	maxPageLimit     = 100
)

// noteService is the concrete implementation of NoteService. Ownership
// enforcement happens in the repository: every query is keyed on the
// user id, so this layer only normalises input and shapes pagination.
type noteService struct {
	noteRepository store.NoteRepository
	logger         *logger.Logger
}

// NewNoteService constructs a [NoteService] backed by the given repository.
func NewNoteService(noteRepository store.NoteRepository, logger *logger.Logger) NoteService {
	return &noteService{
		noteRepository: noteRepository,
		logger:         logger,
	}
}

// CreateNote persists a new note for the user.
//
// Returns ErrInvalidDataProvided if the title or content is blank.
func (n *noteService) CreateNote(ctx context.Context, userID, title, content string) (models.Note, error) {
	log := logger.FromContext(ctx)

	title = strings.TrimSpace(title)
	if userID == "" || title == "" || content == "" {
		return models.Note{}, ErrInvalidDataProvided
	}

	created, err := n.noteRepository.CreateNote(ctx, models.Note{
		UserID:  userID,
		Title:   title,
		Content: content,
	})
	if err != nil {
		log.Err(err).Str("userID", userID).Msg("note creation ended with error")
		return models.Note{}, fmt.Errorf("note creation ended with error: %w", err)
	}

	return created, nil
}

// ListNotes returns one page of the user's notes, newest first, with
// pagination metadata. Page defaults to 1, limit to 10 and is capped at
// 100; out-of-range values are clamped, not rejected.
func (n *noteService) ListNotes(ctx context.Context, userID string, page, limit int) ([]models.Note, models.Pagination, error) {
	log := logger.FromContext(ctx)

	if userID == "" {
		return nil, models.Pagination{}, ErrInvalidDataProvided
	}

	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = defaultPageLimit
	}
	if limit > maxPageLimit {
		limit = maxPageLimit
	}

	offset := uint64(page-1) * uint64(limit)
	notes, total, err := n.noteRepository.ListNotes(ctx, userID, offset, uint64(limit))
	if err != nil {
		log.Err(err).Str("userID", userID).Msg("note listing ended with error")
		return nil, models.Pagination{}, fmt.Errorf("note listing ended with error: %w", err)
	}

	pages := int((total + int64(limit) - 1) / int64(limit))

	return notes, models.Pagination{
		Page:  page,
		Limit: limit,
		Total: total,
		Pages: pages,
	}, nil
}

// GetNote returns a single note owned by the user. A note belonging to
// someone else surfaces as store.ErrNoteNotFound.
func (n *noteService) GetNote(ctx context.Context, userID, noteID string) (models.Note, error) {
	log := logger.FromContext(ctx)

	if userID == "" || noteID == "" {
		return models.Note{}, ErrInvalidDataProvided
	}

	note, err := n.noteRepository.GetNote(ctx, userID, noteID)
	if err != nil {
		log.Err(err).Str("userID", userID).Str("noteID", noteID).Msg("note lookup ended with error")
		return models.Note{}, fmt.Errorf("note lookup ended with error: %w", err)
	}

	return note, nil
}

// UpdateNote applies a partial update. An update carrying no changes is
// answered with the current note rather than an error.
func (n *noteService) UpdateNote(ctx context.Context, update models.NoteUpdate) (models.Note, error) {
	log := logger.FromContext(ctx)

	if update.ID == "" || update.UserID == "" {
		return models.Note{}, ErrInvalidDataProvided
	}
	if update.Title != nil {
		trimmed := strings.TrimSpace(*update.Title)
		if trimmed == "" {
			return models.Note{}, ErrInvalidDataProvided
		}
		update.Title = &trimmed
	}

	updated, err := n.noteRepository.UpdateNote(ctx, update)
	if err != nil {
		if errors.Is(err, store.ErrNothingToUpdate) {
			return n.GetNote(ctx, update.UserID, update.ID)
		}
		log.Err(err).Str("userID", update.UserID).Str("noteID", update.ID).Msg("note update ended with error")
		return models.Note{}, fmt.Errorf("note update ended with error: %w", err)
	}

	return updated, nil
}

// DeleteNote removes a note owned by the user.
func (n *noteService) DeleteNote(ctx context.Context, userID, noteID string) error {
	log := logger.FromContext(ctx)

	if userID == "" || noteID == "" {
		return ErrInvalidDataProvided
	}

	if err := n.noteRepository.DeleteNote(ctx, userID, noteID); err != nil {
		log.Err(err).Str("userID", userID).Str("noteID", noteID).Msg("note deletion ended with error")
		return fmt.Errorf("note deletion ended with error: %w", err)
	}

	return nil
}
