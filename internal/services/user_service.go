// Package services – UserService
//
// This file implements UserService, which handles account registration.
// Passwords are hashed with bcrypt before they reach the repository; the
// plaintext never leaves this method. There is no login or session handling:
// accounts exist only to reserve a unique username.
package services

import (
	"context"
	"errors"
	"strings"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/recipedeck/go-recipe-backend/internal/domain"
)

// UserRepo defines the repository contract required by UserService.
type UserRepo interface {
	// CreateUser inserts an account row with an already-hashed password.
	CreateUser(ctx context.Context, db *gorm.DB, username, passwordHash string) (*domain.User, error)

	// GetUserByUsername fetches an account by its unique username.
	GetUserByUsername(ctx context.Context, db *gorm.DB, username string) (*domain.User, error)
}

// UserService provides account registration.
type UserService struct {
	// DB is the GORM handle used for persistence.
	DB *gorm.DB
	// Repo is the user repository used by this service.
	Repo UserRepo
}

// NewUserService constructs a UserService.
func NewUserService(db *gorm.DB, r UserRepo) *UserService {
	return &UserService{DB: db, Repo: r}
}

// Register creates a new account. Username and password must be non-empty;
// a username collision is reported as ErrUsernameTaken. The pre-insert
// lookup keeps the common duplicate case driver-agnostic; a concurrent
// insert still trips the unique index and is mapped to the same error.
func (s *UserService) Register(ctx context.Context, username, password string) (*domain.User, error) {
	username = strings.TrimSpace(username)
	if username == "" || password == "" {
		return nil, ErrEmptyCredentials
	}

	if _, err := s.Repo.GetUserByUsername(ctx, s.DB, username); err == nil {
		return nil, ErrUsernameTaken
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	u, err := s.Repo.CreateUser(ctx, s.DB, username, string(hash))
	if err != nil {
		if isUniqueViolation(err) {
			return nil, ErrUsernameTaken
		}
		return nil, err
	}
	return u, nil
}

// isUniqueViolation reports whether err looks like a unique-constraint
// failure from the SQLite driver.
func isUniqueViolation(err error) bool {
	if err == nil {
		return false
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "unique") || strings.Contains(msg, "constraint")
}
