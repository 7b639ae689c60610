package handlers

import (
	"context"
	"net/http"

	"notekeeper/internal/handlers/middleware"
	"notekeeper/internal/handlers/render"
	"notekeeper/internal/logger"
	"notekeeper/internal/models"
)

// chain applies middlewares in the given order: m1(m2(...(h)))
func chain(h http.Handler, mds ...func(next http.Handler) http.Handler) http.Handler {
	for i := len(mds) - 1; i >= 0; i-- {
		h = mds[i](h)
	}
	return h
}

func NewRouter(
	authService authService,
	noteService noteService,
	logger logger.Logger,
) http.Handler {
	authMiddleware := middleware.Auth(authService)
	withAuth := func(h http.Handler) http.Handler {
		return authMiddleware(h)
	}

	root := http.NewServeMux()

	root.Handle("POST /auth/sign-up", handleSignUp(authService, logger))
	root.Handle("POST /auth/login", handleLogin(authService, logger))

	root.Handle("GET /notes", withAuth(handleListNotes(noteService, logger)))
	root.Handle("GET /notes/{id}", withAuth(handleGetNote(noteService, logger)))
	root.Handle("POST /notes", withAuth(handleCreateNote(noteService, logger)))
	root.Handle("PUT /notes/{id}", withAuth(handleUpdateNote(noteService, logger)))
	root.Handle("DELETE /notes/{id}", withAuth(handleDeleteNote(noteService, logger)))

	root.Handle("GET /info", handleInfo())

	// Everything that matched no route above
	root.Handle("/", handleUnknownEndpoint())

	handler := chain(root,
		middleware.CORS(),
		middleware.Logger(logger),
	)

	return handler
}

func handleUnknownEndpoint() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		render.Error(w, render.CodeUnknownEndpoint, "unknown endpoint: "+r.URL.Path, http.StatusNotFound)
	})
}

type authService interface {
	// Sign up user with username and password
	// Has to return apperrors.ErrUsernameTaken if username exists already
	SignUp(ctx context.Context, username string, password string) (models.User, error)

	// Login user with username and password
	// Has to return apperrors.ErrInvalidCredentials for unknown username
	// and for wrong password alike
	Login(ctx context.Context, username string, password string) (models.IssuedToken, error)

	// Verify the bearer token on the request and return its username
	Authenticate(r *http.Request) (username string, err error)
}

type noteService interface {
	List(ctx context.Context, owner string) ([]models.Note, error)
	Get(ctx context.Context, owner string, id string) (models.Note, error)
	Create(ctx context.Context, owner string, body string) (models.Note, error)
	Update(ctx context.Context, owner string, id string, body string) (models.Note, error)
	Delete(ctx context.Context, owner string, id string) error
}
