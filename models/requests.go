package models

// Request payloads accepted by the HTTP layer. Validation tags mirror the
// rules enforced at the API boundary: they are checked by the handlers
// before any request reaches the service layer.

// SignUpRequest is the body of POST /api/auth/signup.
type SignUpRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Name     string `json:"name" validate:"required,min=2,max=50"`
	Password string `json:"password" validate:"required,min=6"`
}

// VerifyOTPRequest is the body of POST /api/auth/verify-otp.
type VerifyOTPRequest struct {
	Email string `json:"email" validate:"required,email"`
	OTP   string `json:"otp" validate:"required,len=6"`
}

// LoginRequest is the body of POST /api/auth/login.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// ResendOTPRequest is the body of POST /api/auth/resend-otp.
type ResendOTPRequest struct {
	Email string `json:"email" validate:"required,email"`
}

// PasswordResetRequest is the body of POST /api/auth/password-reset.
type PasswordResetRequest struct {
	Email string `json:"email" validate:"required,email"`
}

// UpdateProfileRequest is the body of PUT /api/auth/profile.
// Both fields are optional; empty values leave the stored field untouched.
type UpdateProfileRequest struct {
	Name   string `json:"name" validate:"omitempty,min=2,max=50"`
	Avatar string `json:"avatar" validate:"omitempty,url"`
}

// CreateNoteRequest is the body of POST /api/notes.
type CreateNoteRequest struct {
	Title   string `json:"title" validate:"required,min=1,max=200"`
	Content string `json:"content" validate:"required,min=1"`
}

// UpdateNoteRequest is the body of PUT /api/notes/{id}. Nil fields are
// left untouched.
type UpdateNoteRequest struct {
	Title   *string `json:"title" validate:"omitempty,min=1,max=200"`
	Content *string `json:"content" validate:"omitempty,min=1"`
}
