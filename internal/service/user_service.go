package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"Tasker/internal/auth"
	dom "Tasker/internal/domain"
	"Tasker/internal/repo"
	"Tasker/internal/utils"

	"github.com/jackc/pgx/v5"
)

var (
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrUsernameTaken      = errors.New("username already registered")
	ErrUsernameRequired   = errors.New("username is required")
	ErrPasswordTooShort   = errors.New("password too short")
	ErrUserNotFound       = errors.New("user not found")
)

// UserService handles registration and credential verification.
type UserService struct {
	repo           repo.UserRepo
	hasher         auth.Hasher
	tokens         *auth.TokenService
	minPasswordLen int
}

// NewUserService returns a new UserService.
func NewUserService(repo repo.UserRepo, hasher auth.Hasher, tokens *auth.TokenService, minPasswordLen int) *UserService {
	return &UserService{repo: repo, hasher: hasher, tokens: tokens, minPasswordLen: minPasswordLen}
}

// Register creates a new user with a hashed password. A duplicate
// username fails with ErrUsernameTaken and leaves no partial record.
func (s *UserService) Register(ctx context.Context, username, password, email, fullName string) (dom.User, error) {
	username = strings.TrimSpace(username)
	if username == "" {
		return dom.User{}, ErrUsernameRequired
	}
	if len(password) < s.minPasswordLen {
		return dom.User{}, fmt.Errorf("password must be at least %d characters: %w", s.minPasswordLen, ErrPasswordTooShort)
	}
	hash, err := s.hasher.Hash(password)
	if err != nil {
		return dom.User{}, err
	}
	u, err := s.repo.Create(ctx, username, hash, email, fullName)
	if err != nil {
		if utils.IsPGUniqueViolation(err) {
			return dom.User{}, ErrUsernameTaken
		}
		return dom.User{}, err
	}
	return u, nil
}

// GetByID returns the user with the given store ID.
func (s *UserService) GetByID(ctx context.Context, id int64) (dom.User, error) {
	u, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return dom.User{}, ErrUserNotFound
		}
		return dom.User{}, err
	}
	return u, nil
}

// ValidateCredentials checks username and password; returns the user if
// valid. Unknown user and wrong password are indistinguishable.
func (s *UserService) ValidateCredentials(ctx context.Context, username, password string) (dom.User, error) {
	username = strings.TrimSpace(username)
	if username == "" || password == "" {
		return dom.User{}, ErrInvalidCredentials
	}
	u, err := s.repo.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return dom.User{}, ErrInvalidCredentials
		}
		return dom.User{}, err
	}
	if !s.hasher.Verify(password, u.PasswordHash) {
		return dom.User{}, ErrInvalidCredentials
	}
	return u, nil
}

// Login verifies credentials and issues a bearer token for the user.
func (s *UserService) Login(ctx context.Context, username, password string) (dom.User, string, error) {
	u, err := s.ValidateCredentials(ctx, username, password)
	if err != nil {
		return dom.User{}, "", err
	}
	token, err := s.tokens.Issue(u.Username)
	if err != nil {
		return dom.User{}, "", err
	}
	return u, token, nil
}
