package note

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"notekeeper/internal/apperrors"
	"notekeeper/internal/models"
	"notekeeper/internal/repository"
)

// Note service: CRUD over notes scoped to the owning user.
// Every operation takes the authenticated username first and never
// returns or touches a note that belongs to someone else.
type NoteService struct {
	noteRepo repository.NoteRepo
}

func NewService(noteRepo repository.NoteRepo) *NoteService {
	return &NoteService{noteRepo: noteRepo}
}

// List returns the owner's notes in insertion order
func (s *NoteService) List(ctx context.Context, owner string) ([]models.Note, error) {
	notes, err := s.noteRepo.ListNotes(ctx, owner)
	if err != nil {
		return nil, fmt.Errorf("can't list notes. Err: %w", err)
	}

	return notes, nil
}

// Get returns the note only if it belongs to owner.
// A note owned by another user looks exactly like an absent one,
// so ids can't be probed for existence.
func (s *NoteService) Get(ctx context.Context, owner string, id string) (models.Note, error) {
	note, err := s.noteRepo.GetNote(ctx, id)
	if err != nil {
		return models.Note{}, err
	}

	if note.OwnerUsername != owner {
		return models.Note{}, apperrors.ErrNoteNotFound
	}

	return note, nil
}

// Create validates the body, generates a fresh id and persists the note
func (s *NoteService) Create(ctx context.Context, owner string, body string) (models.Note, error) {
	body = strings.TrimSpace(body)
	if body == "" {
		return models.Note{}, apperrors.ErrValidationFailed
	}

	note, err := s.noteRepo.CreateNote(ctx, models.Note{
		ID:            uuid.NewString(),
		OwnerUsername: owner,
		Body:          body,
	})
	if err != nil {
		return models.Note{}, fmt.Errorf("can't create note. Err: %w", err)
	}

	return note, nil
}

// Update replaces the note body, same ownership rule as Get
func (s *NoteService) Update(ctx context.Context, owner string, id string, body string) (models.Note, error) {
	body = strings.TrimSpace(body)
	if body == "" {
		return models.Note{}, apperrors.ErrValidationFailed
	}

	return s.noteRepo.UpdateNote(ctx, id, owner, body)
}

// Delete removes the owner's note.
// Deleting an id that does not exist at all succeeds (idempotent delete),
// deleting another user's note is rejected as not found.
func (s *NoteService) Delete(ctx context.Context, owner string, id string) error {
	note, err := s.noteRepo.GetNote(ctx, id)
	switch {
	case errors.Is(err, apperrors.ErrNoteNotFound):
		return nil
	case err != nil:
		return err
	}

	if note.OwnerUsername != owner {
		return apperrors.ErrNoteNotFound
	}

	return s.noteRepo.DeleteNote(ctx, id)
}
