package handlers

import (
	"errors"
	"net/http"
	"strings"

	"notekeeper/internal/apperrors"
	"notekeeper/internal/handlers/render"
	"notekeeper/internal/logger"
)

func handleSignUp(as authService, l logger.Logger) http.Handler {
	type SignUpRequest struct {
		Username string `json:"username" validate:"required,username"`
		Password string `json:"password" validate:"required,password"`
	}
	type SignUpUser struct {
		Username string `json:"username"`
	}
	type SignUpSuccessResponse struct {
		User SignUpUser `json:"user"`
	}

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		data, err := render.BindAndValidate[SignUpRequest](w, r)
		if err != nil {
			return
		}

		user, err := as.SignUp(r.Context(), strings.TrimSpace(data.Username), strings.TrimSpace(data.Password))
		if err != nil {
			switch {
			case errors.Is(err, apperrors.ErrUsernameTaken):
				render.Error(w, render.CodeUsernameTaken, "Username already exists", http.StatusNotFound)
			default:
				l.Error("sign up failed", "error", err.Error())
				render.Error(w, render.CodeInternal, "Internal server error", http.StatusInternalServerError)
			}
			return
		}

		render.JSONWithStatus(w, SignUpSuccessResponse{User: SignUpUser{Username: user.Username}}, http.StatusCreated)
	})
}

func handleLogin(as authService, l logger.Logger) http.Handler {
	type LoginRequest struct {
		Username string `json:"username" validate:"required"`
		Password string `json:"password" validate:"required"`
	}
	type LoginSuccessResponse struct {
		Username string `json:"username"`
		Token    string `json:"token"`
	}

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		data, err := render.BindAndValidate[LoginRequest](w, r)
		if err != nil {
			return
		}

		username := strings.TrimSpace(data.Username)

		token, err := as.Login(r.Context(), username, strings.TrimSpace(data.Password))
		if err != nil {
			switch {
			case errors.Is(err, apperrors.ErrInvalidCredentials):
				render.Error(w, render.CodeInvalidCredentials, "Username or password is incorrect", http.StatusNotFound)
			default:
				l.Error("login failed", "error", err.Error())
				render.Error(w, render.CodeInternal, "Internal server error", http.StatusInternalServerError)
			}
			return
		}

		render.JSON(w, LoginSuccessResponse{Username: username, Token: token.Value})
	})
}
