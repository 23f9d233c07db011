package models

import "time"

// User represents an account entity used for authentication and authorization.
// It contains identity attributes and credential-related data.
// Sensitive fields must never be exposed outside trusted boundaries.
type User struct {
	// ID is the unique identifier of the user, assigned at creation time
	// and immutable afterwards.
	ID string `json:"id"`

	// Email is the unique user email, stored lowercased. It is the lookup
	// key for every authentication flow.
	Email string `json:"email"`

	// Name is the display name of the user, trimmed of surrounding
	// whitespace. It is non-sensitive and may be shown in UI.
	Name string `json:"name"`

	// PasswordHash stores the bcrypt hash of the user's password.
	// Empty for accounts created via Google sign-in only.
	// Never exposed via JSON.
	PasswordHash string `json:"-"`

	// GoogleID is the external Google account identifier. A non-empty
	// value means the account is linked to a Google identity.
	GoogleID string `json:"-"`

	// Avatar is an optional profile picture URL.
	Avatar string `json:"avatar,omitempty"`

	// IsEmailVerified gates password logins. Accounts created through
	// Google sign-in are verified implicitly.
	IsEmailVerified bool `json:"is_email_verified"`

	// OTPCode is the current one-time verification code. Always set and
	// cleared together with OTPExpiresAt. Never exposed via JSON.
	OTPCode string `json:"-"`

	// OTPExpiresAt is the expiry timestamp paired with OTPCode.
	OTPExpiresAt time.Time `json:"-"`

	// CreatedAt is the timestamp when the user account was created.
	CreatedAt time.Time `json:"created_at"`

	// UpdatedAt is bumped on every mutation of the record.
	UpdatedAt time.Time `json:"updated_at"`
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}

// HasOTP reports whether a one-time code is currently on record.
// OTPCode and OTPExpiresAt are persisted together, so checking the
// code alone is sufficient.
func (u User) HasOTP() bool {
	return u.OTPCode != ""
}

// Summary returns the redacted projection of the user that is safe to
// return to API clients: it carries neither the password hash nor the
// OTP fields.
func (u User) Summary() UserSummary {
	return UserSummary{
		ID:              u.ID,
		Email:           u.Email,
		Name:            u.Name,
		Avatar:          u.Avatar,
		IsEmailVerified: u.IsEmailVerified,
		CreatedAt:       u.CreatedAt,
		UpdatedAt:       u.UpdatedAt,
	}
}

// UserSummary is the public projection of a User record.
type UserSummary struct {
	ID              string    `json:"id"`
	Email           string    `json:"email"`
	Name            string    `json:"name"`
	Avatar          string    `json:"avatar,omitempty"`
	IsEmailVerified bool      `json:"is_email_verified"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}
