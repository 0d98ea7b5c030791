// Package services – DiscussionService
//
// This file implements DiscussionService, the append-only forum component.
// Identity is an explicit parameter supplied by the caller context; when the
// caller provides none, a fixed placeholder name is used so anonymous posts
// remain possible.
package services

import (
	"context"
	"strings"

	"gorm.io/gorm"

	"github.com/recipedeck/go-recipe-backend/internal/domain"
)

// DefaultPosterName is used when a post arrives without a username.
const DefaultPosterName = "User"

// DiscussionRepo defines the repository contract required by DiscussionService.
type DiscussionRepo interface {
	// CreateDiscussion inserts one post; imageURL may be nil.
	CreateDiscussion(ctx context.Context, db *gorm.DB, username, content string, imageURL *string) (*domain.Discussion, error)

	// ListDiscussions returns every post in insertion order.
	ListDiscussions(ctx context.Context, db *gorm.DB) ([]domain.Discussion, error)
}

// DiscussionService provides forum operations: post and list.
type DiscussionService struct {
	// DB is the GORM handle used for persistence.
	DB *gorm.DB
	// Repo is the discussion repository used by this service.
	Repo DiscussionRepo
}

// NewDiscussionService constructs a DiscussionService.
func NewDiscussionService(db *gorm.DB, r DiscussionRepo) *DiscussionService {
	return &DiscussionService{DB: db, Repo: r}
}

// Post appends one forum entry. content must be non-empty; username falls
// back to DefaultPosterName when blank; imageName (a stored upload file name)
// is optional and recorded verbatim when present.
func (s *DiscussionService) Post(ctx context.Context, username, content, imageName string) (*domain.Discussion, error) {
	content = strings.TrimSpace(content)
	if content == "" {
		return nil, ErrEmptyContent
	}

	username = strings.TrimSpace(username)
	if username == "" {
		username = DefaultPosterName
	}

	var imageURL *string
	if img := strings.TrimSpace(imageName); img != "" {
		imageURL = &img
	}

	return s.Repo.CreateDiscussion(ctx, s.DB, username, content, imageURL)
}

// List returns all posts in insertion order.
func (s *DiscussionService) List(ctx context.Context) ([]domain.Discussion, error) {
	return s.Repo.ListDiscussions(ctx, s.DB)
}
