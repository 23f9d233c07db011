// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Andrey Karpushin

package store

import (
	sq "github.com/Masterminds/squirrel"
	"github.com/akarpushin/go-notes-api/models"
)

const (
	userColumns = `user_id, email, name, password_hash, google_id, avatar, is_email_verified, otp_code, otp_expires_at, created_at, updated_at`

	noteColumns = `note_id, user_id, title, content, created_at, updated_at`

	createUser = `INSERT INTO users (email, name, password_hash, otp_code, otp_expires_at)
    VALUES ($1, $2, $3, $4, $5)
    RETURNING ` + userColumns + `;`

	createGoogleUser = `INSERT INTO users (email, name, google_id, avatar, is_email_verified)
    VALUES ($1, $2, $3, $4, TRUE)
    RETURNING ` + userColumns + `;`

	findUserByEmail = `SELECT ` + userColumns + `
    FROM users
    WHERE LOWER(email) = LOWER($1);`

	findUserByID = `SELECT ` + userColumns + `
    FROM users
    WHERE user_id = $1;`

	setUserOTP = `UPDATE users
    SET otp_code = $2, otp_expires_at = $3, updated_at = NOW()
    WHERE user_id = $1 AND is_email_verified = FALSE;`

	verifyUserEmail = `UPDATE users
    SET is_email_verified = TRUE, otp_code = NULL, otp_expires_at = NULL, updated_at = NOW()
    WHERE user_id = $1 AND otp_code = $2 AND is_email_verified = FALSE;`

	linkGoogleAccount = `UPDATE users
    SET google_id = $2, avatar = COALESCE(NULLIF($3, ''), avatar), is_email_verified = TRUE, otp_code = NULL, otp_expires_at = NULL, updated_at = NOW()
    WHERE user_id = $1 AND google_id IS NULL;`

	createNote = `INSERT INTO notes (user_id, title, content)
    VALUES ($1, $2, $3)
    RETURNING ` + noteColumns + `;`

	getNote = `SELECT ` + noteColumns + `
    FROM notes
    WHERE note_id = $1 AND user_id = $2;`

	deleteNote = `DELETE FROM notes
    WHERE note_id = $1 AND user_id = $2;`
)

// psql is the shared statement builder configured for PostgreSQL-style
// $N placeholders.
var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

// buildListNotesQuery builds the paginated SELECT over a user's notes,
// newest first.
func buildListNotesQuery(userID string, offset, limit uint64) (string, []any, error) {
	return psql.
		Select("note_id", "user_id", "title", "content", "created_at", "updated_at").
		From("notes").
		Where(sq.Eq{"user_id": userID}).
		OrderBy("updated_at DESC").
		Limit(limit).
		Offset(offset).
		ToSql()
}

// buildCountNotesQuery builds the total-count query paired with
// [buildListNotesQuery] for pagination metadata.
func buildCountNotesQuery(userID string) (string, []any, error) {
	return psql.
		Select("COUNT(*)").
		From("notes").
		Where(sq.Eq{"user_id": userID}).
		ToSql()
}

// buildUpdateNoteQuery builds a partial UPDATE touching only the non-nil
// fields of update. Returns [ErrNothingToUpdate] when there is nothing
// to change.
func buildUpdateNoteQuery(update models.NoteUpdate) (string, []any, error) {
	builder := psql.
		Update("notes").
		Set("updated_at", sq.Expr("NOW()"))

	touched := false
	if update.Title != nil {
		builder = builder.Set("title", *update.Title)
		touched = true
	}
	if update.Content != nil {
		builder = builder.Set("content", *update.Content)
		touched = true
	}
	if !touched {
		return "", nil, ErrNothingToUpdate
	}

	return builder.
		Where(sq.Eq{"note_id": update.ID, "user_id": update.UserID}).
		Suffix("RETURNING " + noteColumns).
		ToSql()
}

// buildUpdateProfileQuery builds a partial UPDATE over a user's mutable
// profile fields. Empty strings mean "leave untouched". Returns
// [ErrNothingToUpdate] when there is nothing to change.
func buildUpdateProfileQuery(userID string, name, avatar string) (string, []any, error) {
	builder := psql.
		Update("users").
		Set("updated_at", sq.Expr("NOW()"))

	touched := false
	if name != "" {
		builder = builder.Set("name", name)
		touched = true
	}
	if avatar != "" {
		builder = builder.Set("avatar", avatar)
		touched = true
	}
	if !touched {
		return "", nil, ErrNothingToUpdate
	}

	return builder.
		Where(sq.Eq{"user_id": userID}).
		Suffix("RETURNING " + userColumns).
		ToSql()
}
