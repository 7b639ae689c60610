package handlers

import (
	"errors"
	"net/http"
	"time"

	"notekeeper/internal/apperrors"
	"notekeeper/internal/handlers/render"
	"notekeeper/internal/handlers/userctx"
	"notekeeper/internal/logger"
	"notekeeper/internal/models"
)

type NoteRequest struct {
	Body string `json:"body" validate:"required,notblank"`
}

type NoteResponse struct {
	ID        string    `json:"id"`
	Owner     string    `json:"owner"`
	Body      string    `json:"body"`
	CreatedAt time.Time `json:"created_at"`
}

func noteToResponse(n models.Note) NoteResponse {
	return NoteResponse{
		ID:        n.ID,
		Owner:     n.OwnerUsername,
		Body:      n.Body,
		CreatedAt: n.CreatedAt,
	}
}

// renderNoteError maps note service errors to responses.
// Validation failures are reported as 404 like the rest of this API.
func renderNoteError(w http.ResponseWriter, l logger.Logger, err error) {
	switch {
	case errors.Is(err, apperrors.ErrNoteNotFound):
		render.Error(w, render.CodeNotFound, "Note not found", http.StatusNotFound)
	case errors.Is(err, apperrors.ErrValidationFailed):
		render.Error(w, render.CodeValidationFailed, "Note body must not be empty", http.StatusNotFound)
	default:
		l.Error("note operation failed", "error", err.Error())
		render.Error(w, render.CodeInternal, "Internal server error", http.StatusInternalServerError)
	}
}

func handleListNotes(ns noteService, l logger.Logger) http.Handler {
	type ListNotesResponse struct {
		Notes []NoteResponse `json:"notes"`
	}

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		username, _ := userctx.FromContext(r.Context())

		notes, err := ns.List(r.Context(), username)
		if err != nil {
			renderNoteError(w, l, err)
			return
		}

		response := ListNotesResponse{Notes: make([]NoteResponse, 0, len(notes))}
		for _, n := range notes {
			response.Notes = append(response.Notes, noteToResponse(n))
		}

		render.JSON(w, response)
	})
}

func handleGetNote(ns noteService, l logger.Logger) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		username, _ := userctx.FromContext(r.Context())

		note, err := ns.Get(r.Context(), username, r.PathValue("id"))
		if err != nil {
			renderNoteError(w, l, err)
			return
		}

		render.JSON(w, noteToResponse(note))
	})
}

func handleCreateNote(ns noteService, l logger.Logger) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		username, _ := userctx.FromContext(r.Context())

		data, err := render.BindAndValidate[NoteRequest](w, r)
		if err != nil {
			return
		}

		note, err := ns.Create(r.Context(), username, data.Body)
		if err != nil {
			renderNoteError(w, l, err)
			return
		}

		render.JSONWithStatus(w, noteToResponse(note), http.StatusCreated)
	})
}

func handleUpdateNote(ns noteService, l logger.Logger) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		username, _ := userctx.FromContext(r.Context())

		data, err := render.BindAndValidate[NoteRequest](w, r)
		if err != nil {
			return
		}

		note, err := ns.Update(r.Context(), username, r.PathValue("id"), data.Body)
		if err != nil {
			renderNoteError(w, l, err)
			return
		}

		render.JSON(w, noteToResponse(note))
	})
}

func handleDeleteNote(ns noteService, l logger.Logger) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		username, _ := userctx.FromContext(r.Context())

		if err := ns.Delete(r.Context(), username, r.PathValue("id")); err != nil {
			renderNoteError(w, l, err)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	})
}
