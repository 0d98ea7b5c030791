// Package repo implements the data persistence layer for domain entities,
// backed by GORM. This file provides repository functions for the Recipe model.
//
// All functions are context-aware and accept a *gorm.DB handle, making them
// safe for use within transactions or connection-scoped operations.
// They follow the "thin repository" approach: no business logic, only CRUD
// persistence and query composition.
//
// Error semantics:
//   - When a recipe is not found, functions return gorm.ErrRecordNotFound
//     (also exported here as ErrNotFound for convenience). Update and delete
//     deliberately surface a missing id as ErrNotFound instead of silently
//     affecting zero rows, so callers can decide how to present it.
//   - On DB errors (constraint violations, connectivity issues, etc.),
//     the raw gorm error is propagated.
//
// Functions:
//
//   - CreateRecipe(ctx, db, title, ingredients, instructions, category)
//     Inserts a new Recipe row; the store assigns the integer id.
//
//   - ListRecipes(ctx, db) -> []domain.Recipe, error
//     Returns every recipe in store-native (insertion) order. Unbounded.
//
//   - GetRecipe(ctx, db, id) -> *domain.Recipe, error
//     Fetches a single recipe by id, or ErrNotFound if missing.
//
//   - UpdateRecipe(ctx, db, id, title, ingredients, instructions) -> error
//     Rewrites the mutable columns. Category is never touched.
//
//   - DeleteRecipe(ctx, db, id) -> error
//     Removes the row; ErrNotFound when the id does not exist.
//
//   - SearchRecipesByTitle(ctx, db, substring) -> []domain.Recipe, error
//     Substring match on title using SQL LIKE '%substring%'. Returns an
//     empty slice when nothing matches, never an error for that case.
//
// Each call is a single statement committed individually; no multi-statement
// transaction spans more than one call.
package repo

import (
	"context"

	"gorm.io/gorm"

	"github.com/recipedeck/go-recipe-backend/internal/domain"
)

// ErrNotFound is returned when a requested record does not exist.
// It aliases gorm.ErrRecordNotFound for convenience and consistency
// across the service layer and handlers.
var ErrNotFound = gorm.ErrRecordNotFound

// CreateRecipe inserts a new Recipe row. The id is assigned by the store
// (auto-increment). On success the persisted recipe, including its fresh id,
// is returned.
func CreateRecipe(ctx context.Context, db *gorm.DB, title, ingredients, instructions, category string) (*domain.Recipe, error) {
	r := &domain.Recipe{
		Title:        title,
		Ingredients:  ingredients,
		Instructions: instructions,
		Category:     category,
	}
	if err := db.WithContext(ctx).Create(r).Error; err != nil {
		return nil, err
	}
	return r, nil
}

// ListRecipes returns every recipe in insertion order (primary key ascending).
// There is no pagination; the collection is expected to stay small in a
// single-user deployment.
func ListRecipes(ctx context.Context, db *gorm.DB) ([]domain.Recipe, error) {
	var out []domain.Recipe
	err := db.WithContext(ctx).Order("id asc").Find(&out).Error
	return out, err
}

// GetRecipe fetches a single recipe by id. If the record does not exist, it
// returns ErrNotFound. On other DB errors, the raw error is returned.
func GetRecipe(ctx context.Context, db *gorm.DB, id uint) (*domain.Recipe, error) {
	var r domain.Recipe
	if err := db.WithContext(ctx).First(&r, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &r, nil
}

// UpdateRecipe rewrites title, ingredients, and instructions of the recipe
// identified by id. Category is intentionally excluded: it is immutable after
// creation. If no rows are affected (id missing), it returns ErrNotFound.
func UpdateRecipe(ctx context.Context, db *gorm.DB, id uint, title, ingredients, instructions string) error {
	res := db.WithContext(ctx).
		Model(&domain.Recipe{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"title":        title,
			"ingredients":  ingredients,
			"instructions": instructions,
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// DeleteRecipe removes the recipe identified by id. If no rows are affected
// (id missing), it returns ErrNotFound.
func DeleteRecipe(ctx context.Context, db *gorm.DB, id uint) error {
	res := db.WithContext(ctx).Delete(&domain.Recipe{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// SearchRecipesByTitle returns the recipes whose title contains substring,
// using the store's native LIKE '%substring%' semantics (case-insensitive for
// ASCII under SQLite's default collation). An empty result is not an error.
func SearchRecipesByTitle(ctx context.Context, db *gorm.DB, substring string) ([]domain.Recipe, error) {
	var out []domain.Recipe
	err := db.WithContext(ctx).
		Where("title LIKE ?", "%"+substring+"%").
		Order("id asc").
		Find(&out).Error
	return out, err
}
