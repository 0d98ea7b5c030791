// Package repo implements the data persistence layer for domain entities,
// backed by GORM. This file provides repository functions for the Discussion
// model. The collection is append-only: posts are inserted and listed, never
// updated or deleted.
package repo

import (
	"context"

	"gorm.io/gorm"

	"github.com/recipedeck/go-recipe-backend/internal/domain"
)

// CreateDiscussion inserts one forum post. imageURL may be nil when the post
// carries no attachment; only the stored file name is persisted, never the
// image bytes.
func CreateDiscussion(ctx context.Context, db *gorm.DB, username, content string, imageURL *string) (*domain.Discussion, error) {
	d := &domain.Discussion{
		Username: username,
		Content:  content,
		ImageURL: imageURL,
	}
	if err := db.WithContext(ctx).Create(d).Error; err != nil {
		return nil, err
	}
	return d, nil
}

// ListDiscussions returns every post in insertion order. Full scan, no
// pagination.
func ListDiscussions(ctx context.Context, db *gorm.DB) ([]domain.Discussion, error) {
	var out []domain.Discussion
	err := db.WithContext(ctx).Order("id asc").Find(&out).Error
	return out, err
}
