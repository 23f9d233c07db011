package store

import (
	"context"
	"time"

	"github.com/akarpushin/go-notes-api/models"
)

// UserRepository persists and retrieves user accounts. Implementations
// translate driver-level failures into the sentinel errors declared in
// this package so the service layer can branch with [errors.Is].
type UserRepository interface {
	// CreateUser inserts a password-based account and returns it with
	// server-assigned fields populated (ID, CreatedAt, UpdatedAt).
	CreateUser(ctx context.Context, user models.User) (models.User, error)

	// CreateGoogleUser inserts an account provisioned from a Google
	// profile. The account is created already verified.
	CreateGoogleUser(ctx context.Context, user models.User) (models.User, error)

	// FindUserByEmail looks an account up by its lowercased email.
	FindUserByEmail(ctx context.Context, email string) (models.User, error)

	// FindUserByID looks an account up by its identifier.
	FindUserByID(ctx context.Context, userID string) (models.User, error)

	// SetOTP stores a fresh verification code on an unverified account.
	// Returns [ErrUserAlreadyVerified] if the account has been verified
	// in the meantime.
	SetOTP(ctx context.Context, userID string, code string, expiresAt time.Time) error

	// VerifyEmail marks the account verified and clears the stored code.
	// The update only succeeds while the account is unverified and the
	// stored code still equals the one supplied; otherwise
	// [ErrVerificationConflict] is returned.
	VerifyEmail(ctx context.Context, userID string, code string) error

	// LinkGoogleAccount attaches a Google identity to an account that
	// does not have one yet. Returns [ErrGoogleAccountConflict] if the
	// account is already linked.
	LinkGoogleAccount(ctx context.Context, userID string, googleID string, avatar string) error

	// UpdateProfile applies the non-empty fields of update to the account
	// and returns the refreshed record.
	UpdateProfile(ctx context.Context, userID string, name string, avatar string) (models.User, error)
}

// NoteRepository persists and retrieves notes. Every operation is scoped
// by the owning user; a note belonging to someone else behaves exactly
// like a note that does not exist.
type NoteRepository interface {
	// CreateNote inserts a note and returns it with server-assigned
	// fields populated.
	CreateNote(ctx context.Context, note models.Note) (models.Note, error)

	// ListNotes returns one page of the user's notes ordered by
	// UpdatedAt descending, plus the total number of notes owned by
	// the user.
	ListNotes(ctx context.Context, userID string, offset, limit uint64) ([]models.Note, int64, error)

	// GetNote returns a single note owned by the user.
	GetNote(ctx context.Context, userID string, noteID string) (models.Note, error)

	// UpdateNote applies the non-nil fields of update and returns the
	// refreshed note.
	UpdateNote(ctx context.Context, update models.NoteUpdate) (models.Note, error)

	// DeleteNote removes a single note owned by the user.
	DeleteNote(ctx context.Context, userID string, noteID string) error
}

// ErrorClassificator decides whether a failed database operation is worth
// retrying. See [PostgresErrorClassifier] for the PostgreSQL rules.
type ErrorClassificator interface {
	Classify(err error) ErrorClassification
}
