package middleware

import (
	"errors"
	"net/http"

	"notekeeper/internal/apperrors"
	"notekeeper/internal/handlers/render"
	"notekeeper/internal/handlers/userctx"
)

type authService interface {
	Authenticate(r *http.Request) (username string, err error)
}

// Auth gates protected routes: the request only reaches next
// with a verified username attached to its context.
func Auth(as authService) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			username, err := as.Authenticate(r)
			if err != nil {
				switch {
				case errors.Is(err, apperrors.ErrTokenMissingOrMalformed):
					render.Error(w, render.CodeTokenMissingOrMalformed, "Token missing or malformed", http.StatusUnauthorized)
				default:
					render.Error(w, render.CodeTokenInvalidOrExpired, "Token invalid or expired", http.StatusUnauthorized)
				}
				return
			}

			ctx := userctx.New(r.Context(), username)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
