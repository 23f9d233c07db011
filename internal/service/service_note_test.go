package service

import (
	"context"
	"errors"
	"testing"

	"github.com/akarpushin/go-notes-api/internal/logger"
	"github.com/akarpushin/go-notes-api/internal/mock"
	"github.com/akarpushin/go-notes-api/internal/store"
	"github.com/akarpushin/go-notes-api/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newTestNoteService(t *testing.T, ctrl *gomock.Controller) (*noteService, *mock.MockNoteRepository) {
	t.Helper()
	mockRepo := mock.NewMockNoteRepository(ctrl)
	svc := NewNoteService(mockRepo, logger.NewLogger("test")).(*noteService)
	return svc, mockRepo
}

func TestNoteService_CreateNote_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockRepo := newTestNoteService(t, ctrl)
	ctx := context.Background()

	mockRepo.EXPECT().CreateNote(ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, n models.Note) (models.Note, error) {
			assert.Equal(t, "groceries", n.Title, "title must be trimmed")
			n.ID = "note-1"
			return n, nil
		},
	)

	note, err := svc.CreateNote(ctx, "user-1", "  groceries  ", "milk, bread")
	require.NoError(t, err)
	assert.Equal(t, "note-1", note.ID)
}

func TestNoteService_CreateNote_InvalidInput(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _ := newTestNoteService(t, ctrl)
	ctx := context.Background()

	_, err := svc.CreateNote(ctx, "user-1", "   ", "content")
	require.ErrorIs(t, err, ErrInvalidDataProvided)

	_, err = svc.CreateNote(ctx, "user-1", "title", "")
	require.ErrorIs(t, err, ErrInvalidDataProvided)
}

func TestNoteService_ListNotes_Pagination(t *testing.T) {
	tests := []struct {
		name       string
		page       int
		limit      int
		wantOffset uint64
		wantLimit  uint64
		total      int64
		wantPages  int
	}{
		{name: "defaults", page: 0, limit: 0, wantOffset: 0, wantLimit: 10, total: 25, wantPages: 3},
		{name: "second page", page: 2, limit: 10, wantOffset: 10, wantLimit: 10, total: 25, wantPages: 3},
		{name: "limit capped", page: 1, limit: 500, wantOffset: 0, wantLimit: 100, total: 25, wantPages: 1},
		{name: "exact fit", page: 1, limit: 5, wantOffset: 0, wantLimit: 5, total: 10, wantPages: 2},
		{name: "empty", page: 1, limit: 10, wantOffset: 0, wantLimit: 10, total: 0, wantPages: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			svc, mockRepo := newTestNoteService(t, ctrl)
			ctx := context.Background()

			mockRepo.EXPECT().ListNotes(ctx, "user-1", tt.wantOffset, tt.wantLimit).Return([]models.Note{}, tt.total, nil)

			_, pagination, err := svc.ListNotes(ctx, "user-1", tt.page, tt.limit)
			require.NoError(t, err)
			assert.Equal(t, tt.total, pagination.Total)
			assert.Equal(t, tt.wantPages, pagination.Pages)
			assert.Equal(t, int(tt.wantLimit), pagination.Limit)
		})
	}
}

func TestNoteService_ListNotes_RepoError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockRepo := newTestNoteService(t, ctrl)
	ctx := context.Background()

	mockRepo.EXPECT().ListNotes(ctx, "user-1", uint64(0), uint64(10)).Return(nil, int64(0), errors.New("db down"))

	_, _, err := svc.ListNotes(ctx, "user-1", 1, 10)
	require.Error(t, err)
}

func TestNoteService_GetNote_NotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockRepo := newTestNoteService(t, ctrl)
	ctx := context.Background()

	mockRepo.EXPECT().GetNote(ctx, "user-1", "missing").Return(models.Note{}, store.ErrNoteNotFound)

	_, err := svc.GetNote(ctx, "user-1", "missing")
	require.ErrorIs(t, err, store.ErrNoteNotFound)
}

func TestNoteService_UpdateNote_EmptyUpdateReturnsCurrent(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockRepo := newTestNoteService(t, ctrl)
	ctx := context.Background()

	current := models.Note{ID: "note-1", UserID: "user-1", Title: "groceries"}

	gomock.InOrder(
		mockRepo.EXPECT().UpdateNote(ctx, gomock.Any()).Return(models.Note{}, store.ErrNothingToUpdate),
		mockRepo.EXPECT().GetNote(ctx, "user-1", "note-1").Return(current, nil),
	)

	note, err := svc.UpdateNote(ctx, models.NoteUpdate{ID: "note-1", UserID: "user-1"})
	require.NoError(t, err)
	assert.Equal(t, current, note)
}

func TestNoteService_UpdateNote_BlankTitleRejected(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _ := newTestNoteService(t, ctrl)

	blank := "   "
	_, err := svc.UpdateNote(context.Background(), models.NoteUpdate{ID: "note-1", UserID: "user-1", Title: &blank})
	require.ErrorIs(t, err, ErrInvalidDataProvided)
}

func TestNoteService_DeleteNote_NotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockRepo := newTestNoteService(t, ctrl)
	ctx := context.Background()

	mockRepo.EXPECT().DeleteNote(ctx, "user-1", "missing").Return(store.ErrNoteNotFound)

	err := svc.DeleteNote(ctx, "user-1", "missing")
	require.ErrorIs(t, err, store.ErrNoteNotFound)
}
