package service

import (
	"context"

	"github.com/akarpushin/go-notes-api/models"
)

// AuthService drives the password-based account lifecycle: signup with
// email verification, login, OTP reissue and profile access. All methods
// return sentinel errors from this package or from store; handlers branch
// on them with errors.Is.
type AuthService interface {
	SignUp(ctx context.Context, email, name, password string) (models.User, error)
	VerifyOTP(ctx context.Context, email, code string) (models.User, models.Token, error)
	Login(ctx context.Context, email, password string) (models.User, models.Token, error)
	ResendOTP(ctx context.Context, email string) error
	GoogleLogin(ctx context.Context, user models.User) (models.Token, error)
	GetProfile(ctx context.Context, userID string) (models.User, error)
	UpdateProfile(ctx context.Context, userID, name, avatar string) (models.User, error)
	InitiatePasswordReset(ctx context.Context, email string) error
	CreateToken(ctx context.Context, user models.User) (models.Token, error)
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)
}

// GoogleAuthService bridges Google identities onto local accounts.
type GoogleAuthService interface {
	// AuthURL returns the consent-screen URL for the given state nonce.
	AuthURL(state string) string

	// HandleCallback resolves the authorization code into a local account
	// (creating or linking one as needed) and issues a session token.
	HandleCallback(ctx context.Context, code string) (models.User, models.Token, error)

	// ResolveGoogleProfile maps a verified Google profile onto a local
	// account without ever rejecting on password state.
	ResolveGoogleProfile(ctx context.Context, profile models.GoogleProfile) (models.User, error)
}

// NoteService owns the note CRUD rules: ownership scoping and pagination.
type NoteService interface {
	CreateNote(ctx context.Context, userID, title, content string) (models.Note, error)
	ListNotes(ctx context.Context, userID string, page, limit int) ([]models.Note, models.Pagination, error)
	GetNote(ctx context.Context, userID, noteID string) (models.Note, error)
	UpdateNote(ctx context.Context, update models.NoteUpdate) (models.Note, error)
	DeleteNote(ctx context.Context, userID, noteID string) error
}
