package apperrors

import (
	"errors"
)

var (
	ErrValidationFailed = errors.New("validation failed")

	ErrUsernameTaken      = errors.New("username already exists")
	ErrInvalidCredentials = errors.New("username or password is incorrect")
	ErrUserNotFound       = errors.New("user not found")

	ErrTokenMissingOrMalformed = errors.New("token missing or malformed")
	ErrTokenInvalidOrExpired   = errors.New("token invalid or expired")

	ErrNoteNotFound = errors.New("note not found")
)
