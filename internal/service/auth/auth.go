package auth

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"notekeeper/internal/apperrors"
	"notekeeper/internal/models"
	"notekeeper/internal/repository"
)

const (
	defaultAccessHeaderName = "Authorization"

	// The scheme prefix is matched case sensitively in lowercase.
	// Kept exactly as the service always behaved: 'Bearer <token>' is rejected.
	defaultAuthScheme = "bearer "
)

// Interface to create or compare user password hashes
type PasswordHasher interface {
	// Generate Hash from password
	Hash(password string) (string, error)

	// Compare known hashedPassword and user provided password
	// Must be protected against timing attacks
	Compare(hashedPassword string, password string) error
}

// Issues and verifies bearer tokens
type TokenManager interface {
	Issue(username string) (models.IssuedToken, error)
	Verify(token string) (username string, err error)
}

type Config struct {
	// Hasher to use during sign up and login
	// BcryptHasher is used if not set
	Hasher PasswordHasher
}

// Auth service: credential issuance and request authentication
type AuthService struct {
	tokens   TokenManager
	hasher   PasswordHasher
	userRepo repository.UserRepo

	accessHeaderName string
	authScheme       string
}

func NewService(cfg Config, tokens TokenManager, userRepo repository.UserRepo) (*AuthService, error) {
	hasher := cfg.Hasher
	if hasher == nil {
		hasher = DefaultHasher
	}

	if tokens == nil || userRepo == nil {
		return nil, errors.New("token manager and user repo must not be nil")
	}

	return &AuthService{
		tokens:   tokens,
		hasher:   hasher,
		userRepo: userRepo,

		accessHeaderName: defaultAccessHeaderName,
		authScheme:       defaultAuthScheme,
	}, nil
}

// SignUp creates a user with the hashed password.
// Returns apperrors.ErrUsernameTaken if the username exists already.
func (s *AuthService) SignUp(ctx context.Context, username string, password string) (models.User, error) {
	hash, err := s.hasher.Hash(password)
	if err != nil {
		return models.User{}, fmt.Errorf("can't use this as password, error=%w", err)
	}

	user, err := s.userRepo.CreateUser(ctx, username, hash)
	if err != nil {
		return models.User{}, err
	}

	return user, nil
}

// Login checks credentials and issues a bearer token.
// Unknown username and wrong password are both reported as
// apperrors.ErrInvalidCredentials so the two cases can't be told apart.
func (s *AuthService) Login(ctx context.Context, username string, password string) (models.IssuedToken, error) {
	user, err := s.userRepo.GetUserByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, apperrors.ErrUserNotFound) {
			return models.IssuedToken{}, apperrors.ErrInvalidCredentials
		}
		return models.IssuedToken{}, err
	}

	if err := s.hasher.Compare(user.HashedPassword, password); err != nil {
		return models.IssuedToken{}, apperrors.ErrInvalidCredentials
	}

	token, err := s.tokens.Issue(user.Username)
	if err != nil {
		return models.IssuedToken{}, fmt.Errorf("token could not generated, sorry. %w", err)
	}

	return token, nil
}

// Authenticate extracts and verifies the bearer token from the request.
// Returns the username the token was issued for.
// Missing header or wrong scheme: apperrors.ErrTokenMissingOrMalformed.
// Bad signature or expired:       apperrors.ErrTokenInvalidOrExpired.
func (s *AuthService) Authenticate(r *http.Request) (username string, err error) {
	header := r.Header.Get(s.accessHeaderName)
	if header == "" {
		return "", apperrors.ErrTokenMissingOrMalformed
	}

	token, ok := strings.CutPrefix(header, s.authScheme)
	if !ok || token == "" {
		return "", apperrors.ErrTokenMissingOrMalformed
	}

	return s.tokens.Verify(token)
}
