package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrEmailAlreadyExists is returned when an attempt to register a new
	// account fails because a user with the same email (case-insensitive)
	// already exists in the database.
	ErrEmailAlreadyExists = errors.New("email already exists")

	// ErrUserNotFound is returned when a query expected to match at least
	// one user record produces an empty result set.
	ErrUserNotFound = errors.New("no user was found")

	// ErrUserAlreadyVerified is returned when an OTP write targets an
	// account that has already completed email verification.
	ErrUserAlreadyVerified = errors.New("user email is already verified")

	// ErrVerificationConflict is returned when the guarded verification
	// UPDATE affects zero rows: the stored code no longer matches the one
	// supplied, or a concurrent request verified the account first.
	ErrVerificationConflict = errors.New("email verification conflict occurred")

	// ErrGoogleAccountConflict is returned when linking a Google identity
	// to an account that already carries one.
	ErrGoogleAccountConflict = errors.New("account is already linked to a google identity")

	// ErrNoteNotFound is returned when an operation targets a note
	// (identified by note_id and user_id) that does not exist in the
	// database.
	ErrNoteNotFound = errors.New("note was not found")

	// ErrNothingToUpdate is returned when a partial UPDATE request carries
	// no fields to change.
	ErrNothingToUpdate = errors.New("no fields to update")
)

// Low-level database operation errors. These are returned (or wrapped) by
// repository methods when a SQL-level operation fails before any domain logic
// can be applied.
var (
	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails (e.g. invalid argument count or unsupported type).
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a SELECT or similar
	// read-only query against the database fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrScanningRow is returned when scanning column values from a single
	// result row into a destination struct fails.
	ErrScanningRow = errors.New("failed to scan row")

	// ErrScanningRows is returned when scanning column values during
	// multi-row iteration fails, typically mid-result-set.
	ErrScanningRows = errors.New("failed to scan rows")
)
