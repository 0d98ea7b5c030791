// Package services – RecipeService
//
// This file implements RecipeService, which owns the lifecycle of stored
// recipes. It validates and normalizes input, enforces the category
// whitelist, and coordinates repository operations for creating, listing,
// updating, deleting, and searching recipes. Category is fixed at creation
// time; the update path never touches it.
//
// Service-level errors (e.g., ErrRecipeNotFound) are returned for predictable
// cases so handlers can map them to HTTP results consistently.
//
// Observability: mutating methods are OpenTelemetry-instrumented; spans
// include the recipe identifier where applicable.
package services

import (
	"context"
	"errors"
	"strings"

	"gorm.io/gorm"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/recipedeck/go-recipe-backend/internal/domain"
)

// RecipeRepo defines the repository contract required by RecipeService.
// Implementations are responsible for persistence of the recipe collection.
type RecipeRepo interface {
	// CreateRecipe inserts a new recipe row; the store assigns the id.
	CreateRecipe(ctx context.Context, db *gorm.DB, title, ingredients, instructions, category string) (*domain.Recipe, error)

	// ListRecipes returns every recipe in insertion order.
	ListRecipes(ctx context.Context, db *gorm.DB) ([]domain.Recipe, error)

	// GetRecipe fetches a recipe by id.
	GetRecipe(ctx context.Context, db *gorm.DB, id uint) (*domain.Recipe, error)

	// UpdateRecipe rewrites the mutable columns (category excluded).
	UpdateRecipe(ctx context.Context, db *gorm.DB, id uint, title, ingredients, instructions string) error

	// DeleteRecipe removes a recipe by id.
	DeleteRecipe(ctx context.Context, db *gorm.DB, id uint) error

	// SearchRecipesByTitle returns recipes whose title contains substring.
	SearchRecipesByTitle(ctx context.Context, db *gorm.DB, substring string) ([]domain.Recipe, error)
}

// RecipeService provides recipe-level operations: create, list, get, update,
// delete, and title search. It enforces non-empty fields and the category
// whitelist.
type RecipeService struct {
	// DB is the GORM handle used for persistence.
	DB *gorm.DB
	// Repo is the recipe repository used by this service.
	Repo RecipeRepo
}

// NewRecipeService constructs a RecipeService bound to the given handle and repo.
func NewRecipeService(db *gorm.DB, r RecipeRepo) *RecipeService {
	return &RecipeService{DB: db, Repo: r}
}

// categoryCaser normalizes user-supplied category casing ("non-vegetarian"
// -> "Non-Vegetarian") before whitelist comparison.
var categoryCaser = cases.Title(language.English)

// NormalizeCategory trims and title-cases a category value. The result is
// only meaningful when it matches one of the domain category constants.
func NormalizeCategory(category string) string {
	return categoryCaser.String(strings.ToLower(strings.TrimSpace(category)))
}

// Create validates the four fields, normalizes the category, and inserts a
// new recipe. All fields are required to be non-empty; the category must be
// one of the two allowed values after normalization.
func (s *RecipeService) Create(ctx context.Context, title, ingredients, instructions, category string) (*domain.Recipe, error) {
	tr := otel.Tracer("services/RecipeService")
	ctx, span := tr.Start(ctx, "Create")
	defer span.End()

	title = strings.TrimSpace(title)
	ingredients = strings.TrimSpace(ingredients)
	instructions = strings.TrimSpace(instructions)
	if title == "" || ingredients == "" || instructions == "" {
		return nil, ErrEmptyField
	}

	category = NormalizeCategory(category)
	if category != domain.CategoryVegetarian && category != domain.CategoryNonVegetarian {
		return nil, ErrInvalidCategory
	}

	return s.Repo.CreateRecipe(ctx, s.DB, title, ingredients, instructions, category)
}

// List returns the whole recipe collection in insertion order.
func (s *RecipeService) List(ctx context.Context) ([]domain.Recipe, error) {
	return s.Repo.ListRecipes(ctx, s.DB)
}

// Get fetches a single recipe, mapping a missing id to ErrRecipeNotFound.
func (s *RecipeService) Get(ctx context.Context, id uint) (*domain.Recipe, error) {
	r, err := s.Repo.GetRecipe(ctx, s.DB, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRecipeNotFound
		}
		return nil, err
	}
	return r, nil
}

// Update rewrites title, ingredients, and instructions of an existing recipe.
// The stored category is left untouched. A missing id surfaces as
// ErrRecipeNotFound rather than a silent no-op.
func (s *RecipeService) Update(ctx context.Context, id uint, title, ingredients, instructions string) error {
	tr := otel.Tracer("services/RecipeService")
	ctx, span := tr.Start(ctx, "Update",
		trace.WithAttributes(attribute.Int64("recipe.id", int64(id))),
	)
	defer span.End()

	title = strings.TrimSpace(title)
	ingredients = strings.TrimSpace(ingredients)
	instructions = strings.TrimSpace(instructions)
	if title == "" || ingredients == "" || instructions == "" {
		return ErrEmptyField
	}

	if err := s.Repo.UpdateRecipe(ctx, s.DB, id, title, ingredients, instructions); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrRecipeNotFound
		}
		return err
	}
	return nil
}

// Delete removes a recipe by id, mapping a missing id to ErrRecipeNotFound.
func (s *RecipeService) Delete(ctx context.Context, id uint) error {
	tr := otel.Tracer("services/RecipeService")
	ctx, span := tr.Start(ctx, "Delete",
		trace.WithAttributes(attribute.Int64("recipe.id", int64(id))),
	)
	defer span.End()

	if err := s.Repo.DeleteRecipe(ctx, s.DB, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrRecipeNotFound
		}
		return err
	}
	return nil
}

// Search returns recipes whose title contains substring. An empty query
// returns the empty slice without touching the store; an empty result set is
// not an error.
func (s *RecipeService) Search(ctx context.Context, substring string) ([]domain.Recipe, error) {
	substring = strings.TrimSpace(substring)
	if substring == "" {
		return []domain.Recipe{}, nil
	}
	return s.Repo.SearchRecipesByTitle(ctx, s.DB, substring)
}
