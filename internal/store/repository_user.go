// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Andrey Karpushin

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/akarpushin/go-notes-api/internal/logger"
	"github.com/akarpushin/go-notes-api/models"
	"github.com/jackc/pgerrcode"
)

// userRepository is the PostgreSQL-backed implementation of [UserRepository].
// It handles account creation, lookup and the guarded state transitions of
// email verification against the "users" table.
//
// All methods obtain a context-scoped logger via [logger.FromContext] for
// structured, request-level tracing of database interactions.
type userRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewUserRepository constructs a [UserRepository] backed by the provided
// database connection and logger.
//
// A debug-level log message is emitted at construction time to aid
// application startup diagnostics.
func NewUserRepository(db *DB, logger *logger.Logger) UserRepository {
	logger.Debug().Msg("creating user repository")
	return &userRepository{
		db:     db,
		logger: logger,
	}
}

// rowScanner is satisfied by both *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

// scanUser reads one full users row. Nullable columns are mapped to the
// zero value of the corresponding struct field.
func scanUser(row rowScanner) (models.User, error) {
	var (
		user         models.User
		passwordHash sql.NullString
		googleID     sql.NullString
		avatar       sql.NullString
		otpCode      sql.NullString
		otpExpiresAt sql.NullTime
	)

	err := row.Scan(
		&user.ID,
		&user.Email,
		&user.Name,
		&passwordHash,
		&googleID,
		&avatar,
		&user.IsEmailVerified,
		&otpCode,
		&otpExpiresAt,
		&user.CreatedAt,
		&user.UpdatedAt,
	)
	if err != nil {
		return models.User{}, err
	}

	user.PasswordHash = passwordHash.String
	user.GoogleID = googleID.String
	user.Avatar = avatar.String
	user.OTPCode = otpCode.String
	user.OTPExpiresAt = otpExpiresAt.Time

	return user, nil
}

// nullable converts an empty string to SQL NULL.
func nullable(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}

// nullableTime converts a zero time to SQL NULL, keeping the otp_code and
// otp_expires_at columns NULL together as the schema requires.
func nullableTime(t time.Time) sql.NullTime {
	return sql.NullTime{Time: t, Valid: !t.IsZero()}
}

// CreateUser persists a new password-based account and returns the fully
// populated [models.User] with server-assigned fields (ID, CreatedAt,
// UpdatedAt).
//
// The INSERT uses the [createUser] query which returns all columns via a
// RETURNING clause, so the caller receives the canonical database
// representation of the newly created account.
//
// Error handling:
//   - PostgreSQL unique_violation (23505) → [ErrEmailAlreadyExists].
//   - Any other driver-level error → wrapped as "unexpected DB error".
//   - Scan failure → returned directly.
func (r *userRepository) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	log := logger.FromContext(ctx)

	row := r.db.QueryRowContext(ctx, createUser,
		user.Email, user.Name, nullable(user.PasswordHash), nullable(user.OTPCode), nullableTime(user.OTPExpiresAt))

	// create user in db
	if err := row.Err(); err != nil {
		log.Err(err).Str("func", "*userRepository.CreateUser").Msg("error: row is nil")

		switch postgresError(err) {
		case pgerrcode.UniqueViolation:
			return models.User{}, ErrEmailAlreadyExists
		default:
			return models.User{}, fmt.Errorf("unexpected DB error: %w", err)
		}
	}

	// scan saved user from db
	created, err := scanUser(row)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.CreateUser").Msg("error: scanning error")
		return models.User{}, err
	}

	return created, nil
}

// CreateGoogleUser persists an account provisioned from a Google profile.
// The row is inserted with is_email_verified already TRUE because the
// address was confirmed by Google.
//
// Error handling mirrors [userRepository.CreateUser]: a unique_violation
// on the email index maps to [ErrEmailAlreadyExists].
func (r *userRepository) CreateGoogleUser(ctx context.Context, user models.User) (models.User, error) {
	log := logger.FromContext(ctx)

	row := r.db.QueryRowContext(ctx, createGoogleUser,
		user.Email, user.Name, user.GoogleID, nullable(user.Avatar))

	if err := row.Err(); err != nil {
		log.Err(err).Str("func", "*userRepository.CreateGoogleUser").Msg("error: row is nil")

		switch postgresError(err) {
		case pgerrcode.UniqueViolation:
			return models.User{}, ErrEmailAlreadyExists
		default:
			return models.User{}, fmt.Errorf("unexpected DB error: %w", err)
		}
	}

	created, err := scanUser(row)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.CreateGoogleUser").Msg("error: scanning error")
		return models.User{}, err
	}

	return created, nil
}

// FindUserByEmail retrieves the account whose email matches the one
// provided, compared case-insensitively.
//
// Error handling:
//   - [sql.ErrNoRows] → [ErrUserNotFound].
//   - Any other driver-level error → wrapped as "unexpected DB error".
func (r *userRepository) FindUserByEmail(ctx context.Context, email string) (models.User, error) {
	log := logger.FromContext(ctx)

	row := r.db.QueryRowContext(ctx, findUserByEmail, email)

	if err := row.Err(); err != nil {
		log.Err(err).Str("func", "*userRepository.FindUserByEmail").Msg("error: row is nil")
		return models.User{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	found, err := scanUser(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.User{}, ErrUserNotFound
		}
		log.Err(err).Str("func", "*userRepository.FindUserByEmail").Msg("error: scanning error")
		return models.User{}, err
	}

	return found, nil
}

// FindUserByID retrieves the account with the given identifier.
//
// Error handling mirrors [userRepository.FindUserByEmail].
func (r *userRepository) FindUserByID(ctx context.Context, userID string) (models.User, error) {
	log := logger.FromContext(ctx)

	row := r.db.QueryRowContext(ctx, findUserByID, userID)

	if err := row.Err(); err != nil {
		log.Err(err).Str("func", "*userRepository.FindUserByID").Msg("error: row is nil")
		return models.User{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	found, err := scanUser(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.User{}, ErrUserNotFound
		}
		log.Err(err).Str("func", "*userRepository.FindUserByID").Msg("error: scanning error")
		return models.User{}, err
	}

	return found, nil
}

// SetOTP stores a fresh verification code together with its expiry on an
// account that is still unverified. The WHERE clause guards the write so a
// concurrent verification cannot be overwritten by a late resend.
//
// A zero affected-row count means the account either does not exist or has
// already been verified; both map to [ErrUserAlreadyVerified] since the
// caller is expected to have loaded the account beforehand.
func (r *userRepository) SetOTP(ctx context.Context, userID string, code string, expiresAt time.Time) error {
	log := logger.FromContext(ctx)

	result, err := r.db.ExecContext(ctx, setUserOTP, userID, code, expiresAt)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.SetOTP").Msg("error executing otp update")
		if r.db.errorClassificator.Classify(err) == Retryable {
			log.Warn().Str("func", "*userRepository.SetOTP").Msg("transient database error, the operation may be retried")
		}
		return fmt.Errorf("unexpected DB error: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		log.Err(err).Str("func", "*userRepository.SetOTP").Msg("error reading affected rows")
		return err
	}
	if rowsAffected == 0 {
		return ErrUserAlreadyVerified
	}

	return nil
}

// VerifyEmail flips the account to verified and clears the stored code in
// one statement. The update only matches while the account is unverified
// and the stored code equals the supplied one, so two concurrent
// verification attempts cannot both succeed.
//
// A zero affected-row count maps to [ErrVerificationConflict]; the caller
// distinguishes "already verified" from "code mismatch" by re-reading the
// account.
func (r *userRepository) VerifyEmail(ctx context.Context, userID string, code string) error {
	log := logger.FromContext(ctx)

	result, err := r.db.ExecContext(ctx, verifyUserEmail, userID, code)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.VerifyEmail").Msg("error executing verification update")
		if r.db.errorClassificator.Classify(err) == Retryable {
			log.Warn().Str("func", "*userRepository.VerifyEmail").Msg("transient database error, the operation may be retried")
		}
		return fmt.Errorf("unexpected DB error: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		log.Err(err).Str("func", "*userRepository.VerifyEmail").Msg("error reading affected rows")
		return err
	}
	if rowsAffected == 0 {
		return ErrVerificationConflict
	}

	return nil
}

// LinkGoogleAccount attaches a Google identity to an existing account.
// The guard on google_id IS NULL makes the link idempotent under races:
// only the first of two concurrent link attempts succeeds.
//
// The avatar is only copied over when the account has none yet.
func (r *userRepository) LinkGoogleAccount(ctx context.Context, userID string, googleID string, avatar string) error {
	log := logger.FromContext(ctx)

	result, err := r.db.ExecContext(ctx, linkGoogleAccount, userID, googleID, avatar)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.LinkGoogleAccount").Msg("error executing link update")

		switch postgresError(err) {
		case pgerrcode.UniqueViolation:
			return ErrGoogleAccountConflict
		default:
			return fmt.Errorf("unexpected DB error: %w", err)
		}
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		log.Err(err).Str("func", "*userRepository.LinkGoogleAccount").Msg("error reading affected rows")
		return err
	}
	if rowsAffected == 0 {
		return ErrGoogleAccountConflict
	}

	return nil
}

// UpdateProfile applies the non-empty fields (name, avatar) to the account
// and returns the refreshed record. The UPDATE is built dynamically so
// untouched columns keep their current values.
//
// Error handling:
//   - no fields to change → [ErrNothingToUpdate].
//   - [sql.ErrNoRows] on RETURNING → [ErrUserNotFound].
func (r *userRepository) UpdateProfile(ctx context.Context, userID string, name string, avatar string) (models.User, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildUpdateProfileQuery(userID, name, avatar)
	if err != nil {
		if !errors.Is(err, ErrNothingToUpdate) {
			log.Err(err).Str("func", "*userRepository.UpdateProfile").Msg("error building profile update query")
			err = fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
		}
		return models.User{}, err
	}

	row := r.db.QueryRowContext(ctx, query, args...)
	if err := row.Err(); err != nil {
		log.Err(err).Str("func", "*userRepository.UpdateProfile").Msg("error: row is nil")
		return models.User{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	updated, err := scanUser(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.User{}, ErrUserNotFound
		}
		log.Err(err).Str("func", "*userRepository.UpdateProfile").Msg("error: scanning error")
		return models.User{}, err
	}

	return updated, nil
}
