package handlers

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/require"

	"notekeeper/internal/logger"
	"notekeeper/internal/repository/postgres"
	"notekeeper/internal/service/auth"
	"notekeeper/internal/service/auth/tokenmanager"
	"notekeeper/internal/service/note"
	"notekeeper/internal/testutil"
)

type testServices struct {
	Auth *auth.AuthService
	Note *note.NoteService
}

// Begin db transaction and run httptest server with the full router over it
// Rollback transaction when test stops
func serveWithTx(pg testutil.PostgresContainer, t *testing.T, fn func(srvURL string, s testServices)) {
	t.Helper()

	testutil.InTx(pg.Pool, t, func(tx pgx.Tx) {
		storage := postgres.NewStorage(tx)

		tokenManager, err := tokenmanager.New(tokenmanager.Config{SecretKey: "test-secret"})
		require.NoError(t, err, "token manager should be created without errors")

		as, err := auth.NewService(auth.Config{}, tokenManager, storage.User())
		require.NoError(t, err, "auth service starting error", err)

		ns := note.NewService(storage.Note())

		router := NewRouter(as, ns, logger.NewNoOp())

		srv := httptest.NewServer(router)
		defer srv.Close()

		fn(srv.URL, testServices{Auth: as, Note: ns})
	})
}

// doRequest sends the request and returns response with its body read
func doRequest(t *testing.T, method string, url string, token string, body string) (*http.Response, string) {
	t.Helper()

	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}

	req, err := http.NewRequest(method, url, reader)
	require.NoError(t, err)
	if token != "" {
		req.Header.Set("Authorization", "bearer "+token)
	}
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	respBody, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	defer resp.Body.Close() // nolint:errcheck

	return resp, string(respBody)
}

// signUpAndLogin creates the user and returns a valid bearer token for it
func signUpAndLogin(t *testing.T, s testServices, username string) string {
	t.Helper()

	_, err := s.Auth.SignUp(t.Context(), username, "longenough")
	require.NoError(t, err)

	token, err := s.Auth.Login(t.Context(), username, "longenough")
	require.NoError(t, err)

	return token.Value
}
