// Package repo implements the data persistence layer for domain entities,
// backed by GORM. This file provides small aggregate/statistics queries used
// primarily for conditional responses (ETag generation) in the HTTP layer.
package repo

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/recipedeck/go-recipe-backend/internal/domain"
)

// RecipesStats returns aggregate metadata for the recipe collection: the
// total number of rows and the maximum UpdatedAt timestamp among them.
//
// When the collection is empty, count is 0 and maxUpdatedAt is nil. The pair
// changes whenever a recipe is created, updated, or deleted, which makes it a
// cheap basis for a weak ETag on the list endpoint.
func RecipesStats(ctx context.Context, db *gorm.DB) (count int64, maxUpdatedAt *time.Time, err error) {
	q := db.WithContext(ctx).Model(&domain.Recipe{})

	if err = q.Count(&count).Error; err != nil {
		return 0, nil, err
	}
	if count == 0 {
		return 0, nil, nil
	}

	// Latest updated_at (avoid MAX() -> TEXT under SQLite)
	var row struct {
		UpdatedAt time.Time
	}
	if err = q.Select("updated_at").Order("updated_at DESC").Limit(1).Scan(&row).Error; err != nil {
		return 0, nil, err
	}
	return count, &row.UpdatedAt, nil
}
