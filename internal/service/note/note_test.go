package note

import (
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"notekeeper/internal/apperrors"
	"notekeeper/internal/repository/postgres"
	"notekeeper/internal/testutil"
)

func Test_NoteService(t *testing.T) {
	t.Parallel()

	pg := testutil.StartPostgresContainer(t)
	t.Cleanup(pg.Terminate)

	// Begin new db transaction, create users 'alice' and 'bob' and a NoteService
	// Rollback transaction when test stops
	withTx := func(t *testing.T, fn func(s *NoteService)) {
		testutil.InTx(pg.Pool, t, func(tx pgx.Tx) {
			users := &postgres.UserRepo{DB: tx}
			for _, username := range []string{"alice", "bob"} {
				_, err := users.CreateUser(t.Context(), username, "hashed-password")
				require.NoError(t, err, "test users should be created")
			}

			fn(NewService(&postgres.NoteRepo{DB: tx}))
		})
	}

	t.Run("Create", func(t *testing.T) {
		t.Run("create note ok", func(t *testing.T) {
			withTx(t, func(s *NoteService) {
				note, err := s.Create(t.Context(), "alice", "hello")

				require.NoError(t, err)
				assert.NotEmpty(t, note.ID, "id should be generated")
				assert.Equal(t, "alice", note.OwnerUsername)
				assert.Equal(t, "hello", note.Body)
			})
		})

		t.Run("generate unique ids", func(t *testing.T) {
			withTx(t, func(s *NoteService) {
				note1, err := s.Create(t.Context(), "alice", "first")
				require.NoError(t, err)

				note2, err := s.Create(t.Context(), "alice", "second")
				require.NoError(t, err)

				assert.NotEqual(t, note1.ID, note2.ID)
			})
		})

		t.Run("trim body", func(t *testing.T) {
			withTx(t, func(s *NoteService) {
				note, err := s.Create(t.Context(), "alice", "  hello  ")

				require.NoError(t, err)
				assert.Equal(t, "hello", note.Body)
			})
		})

		t.Run("reject blank body", func(t *testing.T) {
			for _, body := range []string{"", "   ", "\n\t"} {
				withTx(t, func(s *NoteService) {
					_, err := s.Create(t.Context(), "alice", body)

					require.Error(t, err)
					require.ErrorIs(t, err, apperrors.ErrValidationFailed)
				})
			}
		})
	})

	t.Run("List", func(t *testing.T) {
		t.Run("only own notes in insertion order", func(t *testing.T) {
			withTx(t, func(s *NoteService) {
				first, err := s.Create(t.Context(), "alice", "first")
				require.NoError(t, err)
				second, err := s.Create(t.Context(), "alice", "second")
				require.NoError(t, err)
				_, err = s.Create(t.Context(), "bob", "bobs note")
				require.NoError(t, err)

				notes, err := s.List(t.Context(), "alice")

				require.NoError(t, err)
				require.Len(t, notes, 2, "only alice notes should be listed")
				assert.Equal(t, first.ID, notes[0].ID)
				assert.Equal(t, second.ID, notes[1].ID)
			})
		})

		t.Run("empty list for user without notes", func(t *testing.T) {
			withTx(t, func(s *NoteService) {
				notes, err := s.List(t.Context(), "alice")

				require.NoError(t, err)
				require.Empty(t, notes)
			})
		})
	})

	t.Run("Get", func(t *testing.T) {
		t.Run("own note ok", func(t *testing.T) {
			withTx(t, func(s *NoteService) {
				created, err := s.Create(t.Context(), "alice", "hello")
				require.NoError(t, err)

				note, err := s.Get(t.Context(), "alice", created.ID)

				require.NoError(t, err)
				assert.Equal(t, created.ID, note.ID)
				assert.Equal(t, "hello", note.Body)
			})
		})

		t.Run("absent note not found", func(t *testing.T) {
			withTx(t, func(s *NoteService) {
				_, err := s.Get(t.Context(), "alice", "no-such-id")

				require.Error(t, err)
				require.ErrorIs(t, err, apperrors.ErrNoteNotFound)
			})
		})

		t.Run("other users note looks absent", func(t *testing.T) {
			withTx(t, func(s *NoteService) {
				created, err := s.Create(t.Context(), "alice", "hello")
				require.NoError(t, err)

				_, err = s.Get(t.Context(), "bob", created.ID)

				require.Error(t, err)
				require.ErrorIs(t, err, apperrors.ErrNoteNotFound, "cross user read must look like not found")
			})
		})
	})

	t.Run("Update", func(t *testing.T) {
		t.Run("own note ok", func(t *testing.T) {
			withTx(t, func(s *NoteService) {
				created, err := s.Create(t.Context(), "alice", "hello")
				require.NoError(t, err)

				updated, err := s.Update(t.Context(), "alice", created.ID, "updated")

				require.NoError(t, err)
				assert.Equal(t, created.ID, updated.ID)
				assert.Equal(t, "updated", updated.Body)
			})
		})

		t.Run("reject blank body", func(t *testing.T) {
			withTx(t, func(s *NoteService) {
				created, err := s.Create(t.Context(), "alice", "hello")
				require.NoError(t, err)

				_, err = s.Update(t.Context(), "alice", created.ID, "   ")

				require.Error(t, err)
				require.ErrorIs(t, err, apperrors.ErrValidationFailed)
			})
		})

		t.Run("absent note not found", func(t *testing.T) {
			withTx(t, func(s *NoteService) {
				_, err := s.Update(t.Context(), "alice", "no-such-id", "updated")

				require.Error(t, err)
				require.ErrorIs(t, err, apperrors.ErrNoteNotFound)
			})
		})

		t.Run("other users note stays untouched", func(t *testing.T) {
			withTx(t, func(s *NoteService) {
				created, err := s.Create(t.Context(), "alice", "hello")
				require.NoError(t, err)

				_, err = s.Update(t.Context(), "bob", created.ID, "bob was here")
				require.ErrorIs(t, err, apperrors.ErrNoteNotFound)

				note, err := s.Get(t.Context(), "alice", created.ID)
				require.NoError(t, err)
				assert.Equal(t, "hello", note.Body, "cross user update must not change the note")
			})
		})
	})

	t.Run("Delete", func(t *testing.T) {
		t.Run("own note ok and idempotent", func(t *testing.T) {
			withTx(t, func(s *NoteService) {
				created, err := s.Create(t.Context(), "alice", "hello")
				require.NoError(t, err)

				require.NoError(t, s.Delete(t.Context(), "alice", created.ID))

				_, err = s.Get(t.Context(), "alice", created.ID)
				require.ErrorIs(t, err, apperrors.ErrNoteNotFound, "note should be gone after delete")

				// Second delete of the same id succeeds as well
				require.NoError(t, s.Delete(t.Context(), "alice", created.ID))
			})
		})

		t.Run("absent note ok", func(t *testing.T) {
			withTx(t, func(s *NoteService) {
				require.NoError(t, s.Delete(t.Context(), "alice", "no-such-id"))
			})
		})

		t.Run("other users note not found", func(t *testing.T) {
			withTx(t, func(s *NoteService) {
				created, err := s.Create(t.Context(), "alice", "hello")
				require.NoError(t, err)

				err = s.Delete(t.Context(), "bob", created.ID)
				require.ErrorIs(t, err, apperrors.ErrNoteNotFound, "cross user delete must be rejected")

				_, err = s.Get(t.Context(), "alice", created.ID)
				require.NoError(t, err, "note should still exist")
			})
		})
	})
}
