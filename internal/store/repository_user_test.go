package store

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/akarpushin/go-notes-api/internal/logger"
	"github.com/akarpushin/go-notes-api/models"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
)

var userRows = []string{
	"user_id", "email", "name", "password_hash", "google_id", "avatar",
	"is_email_verified", "otp_code", "otp_expires_at", "created_at", "updated_at",
}

func newTestUserRepo(t *testing.T) (*userRepository, sqlmock.Sqlmock, *sql.DB) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}
	l := logger.NewLogger("test")
	repo := &userRepository{
		db:     &DB{DB: db, logger: l, errorClassificator: NewPostgresErrorClassifier()},
		logger: l,
	}
	return repo, mock, db
}

func pgError(code string) error {
	return &pgconn.PgError{Code: code}
}

func TestCreateUser_Success(t *testing.T) {
	repo, mock, db := newTestUserRepo(t)
	defer db.Close()

	ctx := context.Background()
	now := time.Now()
	user := models.User{
		Email:        "john@example.com",
		Name:         "John",
		PasswordHash: "$2a$12$hash",
		OTPCode:      "123456",
		OTPExpiresAt: now.Add(10 * time.Minute),
	}

	rows := sqlmock.
		NewRows(userRows).
		AddRow("8e2b1a4e-3f7d-4f2a-9f10-1b2c3d4e5f60", user.Email, user.Name, user.PasswordHash,
			nil, nil, false, user.OTPCode, user.OTPExpiresAt, now, now)

	mock.ExpectQuery("INSERT INTO users").
		WithArgs(user.Email, user.Name, nullable(user.PasswordHash), nullable(user.OTPCode), nullableTime(user.OTPExpiresAt)).
		WillReturnRows(rows)

	created, err := repo.CreateUser(ctx, user)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if created.ID == "" {
		t.Error("expected server-assigned ID, got empty string")
	}
	if created.Email != user.Email {
		t.Errorf("expected email %s, got %s", user.Email, created.Email)
	}
	if created.GoogleID != "" {
		t.Errorf("expected empty GoogleID for NULL column, got %q", created.GoogleID)
	}
}

func TestCreateUser_UniqueViolation(t *testing.T) {
	repo, mock, db := newTestUserRepo(t)
	defer db.Close()

	ctx := context.Background()
	user := models.User{Email: "john@example.com"}

	mock.ExpectQuery("INSERT INTO users").
		WillReturnError(pgError(pgerrcode.UniqueViolation))

	_, err := repo.CreateUser(ctx, user)
	if !errors.Is(err, ErrEmailAlreadyExists) {
		t.Fatalf("expected ErrEmailAlreadyExists, got %v", err)
	}
}

func TestCreateUser_UnexpectedDBError(t *testing.T) {
	repo, mock, db := newTestUserRepo(t)
	defer db.Close()

	ctx := context.Background()
	user := models.User{Email: "john@example.com"}

	mock.ExpectQuery("INSERT INTO users").
		WillReturnError(errors.New("db network error"))

	_, err := repo.CreateUser(ctx, user)
	if err == nil || !strings.Contains(err.Error(), "unexpected DB error") {
		t.Fatalf("expected wrapped unexpected DB error, got %v", err)
	}
}

func TestCreateUser_ScanError(t *testing.T) {
	repo, mock, db := newTestUserRepo(t)
	defer db.Close()

	ctx := context.Background()
	user := models.User{Email: "john@example.com"}

	rows := sqlmock.
		NewRows([]string{"user_id"}). // intentionally wrong shape → scan error
		AddRow("id-1")

	mock.ExpectQuery("INSERT INTO users").
		WillReturnRows(rows)

	_, err := repo.CreateUser(ctx, user)
	if err == nil {
		t.Fatal("expected scan error, got nil")
	}
}

func TestCreateGoogleUser_Success(t *testing.T) {
	repo, mock, db := newTestUserRepo(t)
	defer db.Close()

	ctx := context.Background()
	now := time.Now()
	user := models.User{
		Email:    "jane@example.com",
		Name:     "Jane",
		GoogleID: "google-sub-1",
		Avatar:   "https://lh3.googleusercontent.com/a/pic",
	}

	rows := sqlmock.
		NewRows(userRows).
		AddRow("11f4fc16-2b6c-4d0f-a7bc-9e0d6f3a2c18", user.Email, user.Name, nil,
			user.GoogleID, user.Avatar, true, nil, nil, now, now)

	mock.ExpectQuery("INSERT INTO users").
		WithArgs(user.Email, user.Name, user.GoogleID, nullable(user.Avatar)).
		WillReturnRows(rows)

	created, err := repo.CreateGoogleUser(ctx, user)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !created.IsEmailVerified {
		t.Error("expected google-provisioned account to be verified")
	}
	if created.PasswordHash != "" {
		t.Errorf("expected empty PasswordHash for NULL column, got %q", created.PasswordHash)
	}
}

func TestCreateGoogleUser_UniqueViolation(t *testing.T) {
	repo, mock, db := newTestUserRepo(t)
	defer db.Close()

	mock.ExpectQuery("INSERT INTO users").
		WillReturnError(pgError(pgerrcode.UniqueViolation))

	_, err := repo.CreateGoogleUser(context.Background(), models.User{Email: "jane@example.com"})
	if !errors.Is(err, ErrEmailAlreadyExists) {
		t.Fatalf("expected ErrEmailAlreadyExists, got %v", err)
	}
}

func TestFindUserByEmail_Success(t *testing.T) {
	repo, mock, db := newTestUserRepo(t)
	defer db.Close()

	ctx := context.Background()
	now := time.Now()

	rows := sqlmock.
		NewRows(userRows).
		AddRow("8e2b1a4e-3f7d-4f2a-9f10-1b2c3d4e5f60", "john@example.com", "John", "$2a$12$hash",
			nil, nil, true, nil, nil, now, now)

	mock.ExpectQuery("SELECT (.+) FROM users").
		WithArgs("John@Example.com").
		WillReturnRows(rows)

	found, err := repo.FindUserByEmail(ctx, "John@Example.com")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if found.Email != "john@example.com" {
		t.Errorf("expected stored email, got %s", found.Email)
	}
	if found.OTPCode != "" {
		t.Errorf("expected empty OTPCode for NULL column, got %q", found.OTPCode)
	}
}

func TestFindUserByEmail_NotFound(t *testing.T) {
	repo, mock, db := newTestUserRepo(t)
	defer db.Close()

	mock.ExpectQuery("SELECT (.+) FROM users").
		WithArgs("ghost@example.com").
		WillReturnError(sql.ErrNoRows)

	_, err := repo.FindUserByEmail(context.Background(), "ghost@example.com")
	if !errors.Is(err, ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}

func TestFindUserByID_NotFound(t *testing.T) {
	repo, mock, db := newTestUserRepo(t)
	defer db.Close()

	mock.ExpectQuery("SELECT (.+) FROM users").
		WithArgs("missing-id").
		WillReturnError(sql.ErrNoRows)

	_, err := repo.FindUserByID(context.Background(), "missing-id")
	if !errors.Is(err, ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}

func TestSetOTP_Success(t *testing.T) {
	repo, mock, db := newTestUserRepo(t)
	defer db.Close()

	expiresAt := time.Now().Add(10 * time.Minute)

	mock.ExpectExec("UPDATE users").
		WithArgs("user-1", "654321", expiresAt).
		WillReturnResult(sqlmock.NewResult(0, 1))

	if err := repo.SetOTP(context.Background(), "user-1", "654321", expiresAt); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestSetOTP_AlreadyVerified(t *testing.T) {
	repo, mock, db := newTestUserRepo(t)
	defer db.Close()

	mock.ExpectExec("UPDATE users").
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.SetOTP(context.Background(), "user-1", "654321", time.Now().Add(10*time.Minute))
	if !errors.Is(err, ErrUserAlreadyVerified) {
		t.Fatalf("expected ErrUserAlreadyVerified, got %v", err)
	}
}

func TestVerifyEmail_Success(t *testing.T) {
	repo, mock, db := newTestUserRepo(t)
	defer db.Close()

	mock.ExpectExec("UPDATE users").
		WithArgs("user-1", "123456").
		WillReturnResult(sqlmock.NewResult(0, 1))

	if err := repo.VerifyEmail(context.Background(), "user-1", "123456"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestVerifyEmail_Conflict(t *testing.T) {
	repo, mock, db := newTestUserRepo(t)
	defer db.Close()

	// concurrent verification already flipped the row, guard matches nothing
	mock.ExpectExec("UPDATE users").
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.VerifyEmail(context.Background(), "user-1", "123456")
	if !errors.Is(err, ErrVerificationConflict) {
		t.Fatalf("expected ErrVerificationConflict, got %v", err)
	}
}

func TestVerifyEmail_TransientDBError(t *testing.T) {
	repo, mock, db := newTestUserRepo(t)
	defer db.Close()

	mock.ExpectExec("UPDATE users").
		WillReturnError(pgError(pgerrcode.DeadlockDetected))

	err := repo.VerifyEmail(context.Background(), "user-1", "123456")
	if err == nil || !strings.Contains(err.Error(), "unexpected DB error") {
		t.Fatalf("expected wrapped unexpected DB error, got %v", err)
	}
}

func TestLinkGoogleAccount_Success(t *testing.T) {
	repo, mock, db := newTestUserRepo(t)
	defer db.Close()

	mock.ExpectExec("UPDATE users").
		WithArgs("user-1", "google-sub-1", "https://avatar").
		WillReturnResult(sqlmock.NewResult(0, 1))

	if err := repo.LinkGoogleAccount(context.Background(), "user-1", "google-sub-1", "https://avatar"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestLinkGoogleAccount_AlreadyLinked(t *testing.T) {
	repo, mock, db := newTestUserRepo(t)
	defer db.Close()

	mock.ExpectExec("UPDATE users").
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.LinkGoogleAccount(context.Background(), "user-1", "google-sub-2", "")
	if !errors.Is(err, ErrGoogleAccountConflict) {
		t.Fatalf("expected ErrGoogleAccountConflict, got %v", err)
	}
}

func TestLinkGoogleAccount_UniqueViolation(t *testing.T) {
	repo, mock, db := newTestUserRepo(t)
	defer db.Close()

	// the google identity is already attached to another account
	mock.ExpectExec("UPDATE users").
		WillReturnError(pgError(pgerrcode.UniqueViolation))

	err := repo.LinkGoogleAccount(context.Background(), "user-1", "google-sub-3", "")
	if !errors.Is(err, ErrGoogleAccountConflict) {
		t.Fatalf("expected ErrGoogleAccountConflict, got %v", err)
	}
}

func TestUpdateProfile_Success(t *testing.T) {
	repo, mock, db := newTestUserRepo(t)
	defer db.Close()

	now := time.Now()
	rows := sqlmock.
		NewRows(userRows).
		AddRow("user-1", "john@example.com", "Johnny", "$2a$12$hash",
			nil, "https://avatar", true, nil, nil, now, now)

	mock.ExpectQuery("UPDATE users").
		WillReturnRows(rows)

	updated, err := repo.UpdateProfile(context.Background(), "user-1", "Johnny", "https://avatar")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if updated.Name != "Johnny" {
		t.Errorf("expected updated name, got %s", updated.Name)
	}
}

func TestUpdateProfile_NothingToUpdate(t *testing.T) {
	repo, _, db := newTestUserRepo(t)
	defer db.Close()

	_, err := repo.UpdateProfile(context.Background(), "user-1", "", "")
	if !errors.Is(err, ErrNothingToUpdate) {
		t.Fatalf("expected ErrNothingToUpdate, got %v", err)
	}
}

func TestUpdateProfile_NotFound(t *testing.T) {
	repo, mock, db := newTestUserRepo(t)
	defer db.Close()

	mock.ExpectQuery("UPDATE users").
		WillReturnError(sql.ErrNoRows)

	_, err := repo.UpdateProfile(context.Background(), "missing", "Johnny", "")
	if !errors.Is(err, ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}
