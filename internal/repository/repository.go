package repository

import (
	"context"

	"notekeeper/internal/models"
)

// User repository interface
type UserRepo interface {
	// Create user
	// If user with username exists already has to return apperrors.ErrUsernameTaken
	CreateUser(ctx context.Context, username string, hashedPassword string) (models.User, error)

	// Get user by username
	// If user not found must return apperrors.ErrUserNotFound
	GetUserByUsername(ctx context.Context, username string) (models.User, error)
}

// Note repository interface
type NoteRepo interface {
	// Persist note as is (id and owner are set by the caller)
	CreateNote(ctx context.Context, note models.Note) (models.Note, error)

	// Get note by id regardless of its owner
	// If note not found must return apperrors.ErrNoteNotFound
	GetNote(ctx context.Context, id string) (models.Note, error)

	// List notes that belong to owner in insertion order
	ListNotes(ctx context.Context, owner string) ([]models.Note, error)

	// Update body of the note with given id that belongs to owner
	// If no such note exists must return apperrors.ErrNoteNotFound
	UpdateNote(ctx context.Context, id string, owner string, body string) (models.Note, error)

	// Delete note by id. Deleting an absent id is not an error
	DeleteNote(ctx context.Context, id string) error
}

// Storage aggregates all repositories over one connection source.
// One implementation is constructed at process start and injected everywhere.
type Storage interface {
	User() UserRepo
	Note() NoteRepo

	// Run fn within single db transaction
	InTx(ctx context.Context, fn func(Storage) error) error
}
