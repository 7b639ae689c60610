package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"notekeeper/internal/apperrors"
	"notekeeper/internal/models"
)

type NoteRepo struct {
	DB DBTX
}

const createNote = `-- name: CreateNote
INSERT INTO notes (id, owner_username, body)
VALUES ($1, $2, $3)
RETURNING id, owner_username, body, created_at
`

func (r *NoteRepo) CreateNote(ctx context.Context, note models.Note) (models.Note, error) {
	rows, _ := r.DB.Query(ctx, createNote, note.ID, note.OwnerUsername, note.Body)
	created, err := pgx.CollectOneRow(rows, rowToNote)
	if err != nil {
		return created, fmt.Errorf("db error: %w", err)
	}

	return created, nil
}

const getNote = `-- name: getNote
SELECT id, owner_username, body, created_at FROM notes
WHERE id = $1
`

func (r *NoteRepo) GetNote(ctx context.Context, id string) (models.Note, error) {
	rows, _ := r.DB.Query(ctx, getNote, id)
	note, err := pgx.CollectOneRow(rows, rowToNote)

	switch {
	case err == nil:
		return note, nil
	case errors.Is(err, pgx.ErrNoRows):
		return note, apperrors.ErrNoteNotFound
	default:
		return note, fmt.Errorf("db error: %w", err)
	}
}

const listNotes = `-- name: listNotes
SELECT id, owner_username, body, created_at FROM notes
WHERE owner_username = $1
ORDER BY seq
`

func (r *NoteRepo) ListNotes(ctx context.Context, owner string) ([]models.Note, error) {
	rows, _ := r.DB.Query(ctx, listNotes, owner)
	notes, err := pgx.CollectRows(rows, rowToNote)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return notes, nil
}

const updateNote = `-- name: updateNote
UPDATE notes SET body = $3
WHERE id = $1 AND owner_username = $2
RETURNING id, owner_username, body, created_at
`

func (r *NoteRepo) UpdateNote(ctx context.Context, id string, owner string, body string) (models.Note, error) {
	rows, _ := r.DB.Query(ctx, updateNote, id, owner, body)
	note, err := pgx.CollectOneRow(rows, rowToNote)

	switch {
	case err == nil:
		return note, nil
	case errors.Is(err, pgx.ErrNoRows):
		return note, apperrors.ErrNoteNotFound
	default:
		return note, fmt.Errorf("db error: %w", err)
	}
}

const deleteNote = `-- name: deleteNote
DELETE FROM notes
WHERE id = $1
`

func (r *NoteRepo) DeleteNote(ctx context.Context, id string) error {
	_, err := r.DB.Exec(ctx, deleteNote, id)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}

	return nil
}

func rowToNote(row pgx.CollectableRow) (models.Note, error) {
	var n models.Note
	err := row.Scan(&n.ID, &n.OwnerUsername, &n.Body, &n.CreatedAt)
	return n, err
}
