package models

// Response envelopes returned by the HTTP layer. Every payload carries a
// Success flag so that clients can branch without inspecting status codes.

// ErrorResponse is the uniform failure payload. There are no partial
// success payloads: an error response never carries flow data.
type ErrorResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// SignUpResponse is returned by a successful signup. It exposes only the
// new user's ID — never the password hash or the OTP.
type SignUpResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	UserID  string `json:"userId"`
}

// AuthResponse is returned by the flows that end in an authenticated
// session: OTP verification, password login and Google login.
type AuthResponse struct {
	Success bool        `json:"success"`
	Message string      `json:"message"`
	Token   string      `json:"token"`
	User    UserSummary `json:"user"`
}

// MessageResponse is the bare acknowledgement payload (resend OTP,
// password-reset initiation, note deletion).
type MessageResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// ProfileResponse wraps a user summary.
type ProfileResponse struct {
	Success bool        `json:"success"`
	Message string      `json:"message,omitempty"`
	User    UserSummary `json:"user"`
}

// NoteResponse wraps a single note.
type NoteResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
	Note    Note   `json:"note"`
}

// NotesListResponse wraps a page of notes together with its pagination
// metadata.
type NotesListResponse struct {
	Success    bool       `json:"success"`
	Notes      []Note     `json:"notes"`
	Pagination Pagination `json:"pagination"`
}
