package store

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/akarpushin/go-notes-api/internal/logger"
	"github.com/akarpushin/go-notes-api/models"
)

var noteRows = []string{"note_id", "user_id", "title", "content", "created_at", "updated_at"}

func newTestNoteRepo(t *testing.T) (*noteRepository, sqlmock.Sqlmock, *sql.DB) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}
	l := logger.NewLogger("test")
	repo := &noteRepository{
		db:     &DB{DB: db, logger: l, errorClassificator: NewPostgresErrorClassifier()},
		logger: l,
	}
	return repo, mock, db
}

func TestCreateNote_Success(t *testing.T) {
	repo, mock, db := newTestNoteRepo(t)
	defer db.Close()

	now := time.Now()
	note := models.Note{UserID: "user-1", Title: "groceries", Content: "milk, bread"}

	rows := sqlmock.
		NewRows(noteRows).
		AddRow("note-1", note.UserID, note.Title, note.Content, now, now)

	mock.ExpectQuery("INSERT INTO notes").
		WithArgs(note.UserID, note.Title, note.Content).
		WillReturnRows(rows)

	created, err := repo.CreateNote(context.Background(), note)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if created.ID != "note-1" {
		t.Errorf("expected server-assigned ID, got %q", created.ID)
	}
}

func TestCreateNote_DBError(t *testing.T) {
	repo, mock, db := newTestNoteRepo(t)
	defer db.Close()

	mock.ExpectQuery("INSERT INTO notes").
		WillReturnError(errors.New("db network error"))

	_, err := repo.CreateNote(context.Background(), models.Note{UserID: "user-1"})
	if err == nil {
		t.Fatal("expected error, got nil")
	}
}

func TestListNotes_Success(t *testing.T) {
	repo, mock, db := newTestNoteRepo(t)
	defer db.Close()

	now := time.Now()
	rows := sqlmock.
		NewRows(noteRows).
		AddRow("note-2", "user-1", "second", "body 2", now, now).
		AddRow("note-1", "user-1", "first", "body 1", now.Add(-time.Hour), now.Add(-time.Hour))

	mock.ExpectQuery("SELECT (.+) FROM notes").
		WithArgs("user-1").
		WillReturnRows(rows)
	mock.ExpectQuery("SELECT COUNT").
		WithArgs("user-1").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(12))

	notes, total, err := repo.ListNotes(context.Background(), "user-1", 0, 2)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(notes) != 2 {
		t.Fatalf("expected 2 notes, got %d", len(notes))
	}
	if total != 12 {
		t.Errorf("expected total=12, got %d", total)
	}
	if notes[0].ID != "note-2" {
		t.Errorf("expected newest note first, got %s", notes[0].ID)
	}
}

func TestListNotes_Empty(t *testing.T) {
	repo, mock, db := newTestNoteRepo(t)
	defer db.Close()

	mock.ExpectQuery("SELECT (.+) FROM notes").
		WillReturnRows(sqlmock.NewRows(noteRows))
	mock.ExpectQuery("SELECT COUNT").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))

	notes, total, err := repo.ListNotes(context.Background(), "user-1", 0, 10)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(notes) != 0 || total != 0 {
		t.Errorf("expected empty page and zero total, got %d notes total=%d", len(notes), total)
	}
}

func TestListNotes_QueryError(t *testing.T) {
	repo, mock, db := newTestNoteRepo(t)
	defer db.Close()

	mock.ExpectQuery("SELECT (.+) FROM notes").
		WillReturnError(errors.New("db network error"))

	_, _, err := repo.ListNotes(context.Background(), "user-1", 0, 10)
	if !errors.Is(err, ErrExecutingQuery) {
		t.Fatalf("expected ErrExecutingQuery, got %v", err)
	}
}

func TestGetNote_Success(t *testing.T) {
	repo, mock, db := newTestNoteRepo(t)
	defer db.Close()

	now := time.Now()
	rows := sqlmock.
		NewRows(noteRows).
		AddRow("note-1", "user-1", "groceries", "milk, bread", now, now)

	mock.ExpectQuery("SELECT (.+) FROM notes").
		WithArgs("note-1", "user-1").
		WillReturnRows(rows)

	note, err := repo.GetNote(context.Background(), "user-1", "note-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if note.Title != "groceries" {
		t.Errorf("expected title groceries, got %s", note.Title)
	}
}

func TestGetNote_NotFound(t *testing.T) {
	repo, mock, db := newTestNoteRepo(t)
	defer db.Close()

	// a note owned by another user produces the same empty result
	mock.ExpectQuery("SELECT (.+) FROM notes").
		WithArgs("note-1", "intruder").
		WillReturnError(sql.ErrNoRows)

	_, err := repo.GetNote(context.Background(), "intruder", "note-1")
	if !errors.Is(err, ErrNoteNotFound) {
		t.Fatalf("expected ErrNoteNotFound, got %v", err)
	}
}

func TestUpdateNote_Success(t *testing.T) {
	repo, mock, db := newTestNoteRepo(t)
	defer db.Close()

	now := time.Now()
	title := "renamed"
	rows := sqlmock.
		NewRows(noteRows).
		AddRow("note-1", "user-1", title, "milk, bread", now.Add(-time.Hour), now)

	mock.ExpectQuery("UPDATE notes").
		WillReturnRows(rows)

	updated, err := repo.UpdateNote(context.Background(), models.NoteUpdate{
		ID:     "note-1",
		UserID: "user-1",
		Title:  &title,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if updated.Title != title {
		t.Errorf("expected title %q, got %q", title, updated.Title)
	}
}

func TestUpdateNote_NothingToUpdate(t *testing.T) {
	repo, _, db := newTestNoteRepo(t)
	defer db.Close()

	_, err := repo.UpdateNote(context.Background(), models.NoteUpdate{ID: "note-1", UserID: "user-1"})
	if !errors.Is(err, ErrNothingToUpdate) {
		t.Fatalf("expected ErrNothingToUpdate, got %v", err)
	}
}

func TestUpdateNote_NotFound(t *testing.T) {
	repo, mock, db := newTestNoteRepo(t)
	defer db.Close()

	title := "renamed"
	mock.ExpectQuery("UPDATE notes").
		WillReturnError(sql.ErrNoRows)

	_, err := repo.UpdateNote(context.Background(), models.NoteUpdate{
		ID:     "missing",
		UserID: "user-1",
		Title:  &title,
	})
	if !errors.Is(err, ErrNoteNotFound) {
		t.Fatalf("expected ErrNoteNotFound, got %v", err)
	}
}

func TestDeleteNote_Success(t *testing.T) {
	repo, mock, db := newTestNoteRepo(t)
	defer db.Close()

	mock.ExpectExec("DELETE FROM notes").
		WithArgs("note-1", "user-1").
		WillReturnResult(sqlmock.NewResult(0, 1))

	if err := repo.DeleteNote(context.Background(), "user-1", "note-1"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestDeleteNote_NotFound(t *testing.T) {
	repo, mock, db := newTestNoteRepo(t)
	defer db.Close()

	mock.ExpectExec("DELETE FROM notes").
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.DeleteNote(context.Background(), "user-1", "missing")
	if !errors.Is(err, ErrNoteNotFound) {
		t.Fatalf("expected ErrNoteNotFound, got %v", err)
	}
}
