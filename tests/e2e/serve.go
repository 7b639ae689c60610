package e2e

import (
	"net/http/httptest"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/stretchr/testify/require"

	"notekeeper/internal/handlers"
	"notekeeper/internal/logger"
	"notekeeper/internal/repository/postgres"
	"notekeeper/internal/service/auth"
	"notekeeper/internal/service/auth/tokenmanager"
	"notekeeper/internal/service/note"
	"notekeeper/internal/testutil"
)

type Services struct {
	AuthService *auth.AuthService
	NoteService *note.NoteService
}

// Create db transaction and run server with that connection (one connection cause one transaction)
// The created transaction passed to inner function: so, you can safely use testutil.InTx with it
func ServeWithTx(dbpool *pgxpool.Pool, t *testing.T, fn func(tx pgx.Tx, srvURL string, services Services)) {
	testutil.InTx(dbpool, t, func(tx pgx.Tx) {
		storage := postgres.NewStorage(tx)

		tokenManager, err := tokenmanager.New(tokenmanager.Config{SecretKey: "test-secret"})
		require.NoError(t, err, "token manager should be created without errors")

		as, err := auth.NewService(auth.Config{}, tokenManager, storage.User())
		require.NoError(t, err, "auth service starting error", err)

		ns := note.NewService(storage.Note())

		router := handlers.NewRouter(as, ns, logger.NewNoOp())

		// Run http server with the router in transaction
		srv := httptest.NewServer(router)
		defer srv.Close()

		fn(tx, srv.URL, Services{
			AuthService: as,
			NoteService: ns,
		})
	})
}
