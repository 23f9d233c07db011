package models

import "time"

// Note is a single note owned by a user. All persistence operations are
// scoped by UserID: a note is only ever visible to its owner.
type Note struct {
	// ID is the unique identifier of the note.
	ID string `json:"id"`

	// UserID is the owner of the note. Not exposed via JSON.
	UserID string `json:"-"`

	// Title is the note title, 1-200 characters.
	Title string `json:"title"`

	// Content is the note body.
	Content string `json:"content"`

	// CreatedAt is the timestamp when the note was created.
	CreatedAt time.Time `json:"created_at"`

	// UpdatedAt is bumped on every mutation; listings are ordered by it.
	UpdatedAt time.Time `json:"updated_at"`
}

// TableName returns the name of the database table
// associated with the Note model.
func (n Note) TableName() string {
	return "notes"
}

// NoteUpdate describes a partial update of a note. Nil fields are left
// untouched by the generated UPDATE statement.
type NoteUpdate struct {
	ID      string
	UserID  string
	Title   *string
	Content *string
}

// Pagination describes the page window of a note listing.
type Pagination struct {
	Page  int   `json:"page"`
	Limit int   `json:"limit"`
	Total int64 `json:"total"`
	Pages int   `json:"pages"`
}
