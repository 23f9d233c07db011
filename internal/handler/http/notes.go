// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Andrey Karpushin

package http

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/akarpushin/go-notes-api/internal/logger"
	"github.com/akarpushin/go-notes-api/internal/utils"
	"github.com/akarpushin/go-notes-api/models"
)

func (h *Handler) createNote(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, ok := requireUserID(w, r)
	if !ok {
		return
	}

	var req models.CreateNoteRequest
	if !h.bindJSON(w, r, &req) {
		return
	}

	note, err := h.services.NoteService.CreateNote(ctx, userID, req.Title, req.Content)
	if err != nil {
		log.Err(err).Msg("error creating note")
		writeError(w, r, errorMessage(err), statusFromError(err))
		return
	}

	response := models.NoteResponse{
		Success: true,
		Message: "note created",
		Note:    note,
	}
	if _, err := utils.WriteJSON(w, response, http.StatusCreated); err != nil {
		log.Err(err).Msg("error writing note response")
	}
}

func (h *Handler) listNotes(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, ok := requireUserID(w, r)
	if !ok {
		return
	}

	page, _ := strconv.Atoi(r.URL.Query().Get("page"))
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))

	notes, pagination, err := h.services.NoteService.ListNotes(ctx, userID, page, limit)
	if err != nil {
		log.Err(err).Msg("error listing notes")
		writeError(w, r, errorMessage(err), statusFromError(err))
		return
	}

	response := models.NotesListResponse{
		Success:    true,
		Notes:      notes,
		Pagination: pagination,
	}
	if _, err := utils.WriteJSON(w, response, http.StatusOK); err != nil {
		log.Err(err).Msg("error writing notes list response")
	}
}

func (h *Handler) getNote(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, ok := requireUserID(w, r)
	if !ok {
		return
	}

	note, err := h.services.NoteService.GetNote(ctx, userID, chi.URLParam(r, "id"))
	if err != nil {
		log.Err(err).Msg("error getting note")
		writeError(w, r, errorMessage(err), statusFromError(err))
		return
	}

	response := models.NoteResponse{
		Success: true,
		Note:    note,
	}
	if _, err := utils.WriteJSON(w, response, http.StatusOK); err != nil {
		log.Err(err).Msg("error writing note response")
	}
}

func (h *Handler) updateNote(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, ok := requireUserID(w, r)
	if !ok {
		return
	}

	var req models.UpdateNoteRequest
	if !h.bindJSON(w, r, &req) {
		return
	}

	update := models.NoteUpdate{
		ID:      chi.URLParam(r, "id"),
		UserID:  userID,
		Title:   req.Title,
		Content: req.Content,
	}

	note, err := h.services.NoteService.UpdateNote(ctx, update)
	if err != nil {
		log.Err(err).Msg("error updating note")
		writeError(w, r, errorMessage(err), statusFromError(err))
		return
	}

	response := models.NoteResponse{
		Success: true,
		Message: "note updated",
		Note:    note,
	}
	if _, err := utils.WriteJSON(w, response, http.StatusOK); err != nil {
		log.Err(err).Msg("error writing note response")
	}
}

func (h *Handler) deleteNote(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, ok := requireUserID(w, r)
	if !ok {
		return
	}

	if err := h.services.NoteService.DeleteNote(ctx, userID, chi.URLParam(r, "id")); err != nil {
		log.Err(err).Msg("error deleting note")
		writeError(w, r, errorMessage(err), statusFromError(err))
		return
	}

	response := models.MessageResponse{
		Success: true,
		Message: "note deleted",
	}
	if _, err := utils.WriteJSON(w, response, http.StatusOK); err != nil {
		log.Err(err).Msg("error writing delete response")
	}
}
