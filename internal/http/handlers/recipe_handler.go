// Recipe HTTP handlers.
//
// This file exposes REST endpoints for stored recipes:
//   - GET    /recipes            (list, ETag support)
//   - POST   /recipes            (create)
//   - GET    /recipes/{id}       (fetch one)
//   - PUT    /recipes/{id}       (update title/ingredients/instructions)
//   - DELETE /recipes/{id}       (delete)
//   - GET    /recipes/search     (title substring search)
//
// Handlers are transport-thin: they validate input, call application services,
// and translate results into HTTP responses (including conditional responses).
package handlers

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/recipedeck/go-recipe-backend/internal/domain"
	"github.com/recipedeck/go-recipe-backend/internal/repo"
	"github.com/recipedeck/go-recipe-backend/internal/services"
	"github.com/recipedeck/go-recipe-backend/internal/utils"
)

//
// Service contracts (context-aware)
//

// RecipeService defines recipe lifecycle operations consumed by HTTP handlers.
//
// Implementations should be safe for concurrent use and must honor the
// provided context for cancellation and timeouts.
type RecipeService interface {
	// Create inserts a validated recipe and returns it with its fresh id.
	Create(ctx context.Context, title, ingredients, instructions, category string) (*domain.Recipe, error)
	// List returns the whole collection in insertion order.
	List(ctx context.Context) ([]domain.Recipe, error)
	// Get fetches one recipe by id.
	Get(ctx context.Context, id uint) (*domain.Recipe, error)
	// Update rewrites the mutable columns; category is untouched.
	Update(ctx context.Context, id uint, title, ingredients, instructions string) error
	// Delete removes a recipe by id.
	Delete(ctx context.Context, id uint) error
	// Search returns recipes whose title contains the substring.
	Search(ctx context.Context, substring string) ([]domain.Recipe, error)
}

//
// DTOs
//

// CreateRecipeRequest is the JSON payload for creating a recipe.
type CreateRecipeRequest struct {
	Title        string `json:"title"        binding:"required" example:"Mushroom Risotto"`
	Ingredients  string `json:"ingredients"  binding:"required" example:"rice, mushrooms, stock"`
	Instructions string `json:"instructions" binding:"required" example:"Toast the rice, add stock…"`
	Category     string `json:"category"     binding:"required" example:"Vegetarian"`
}

// UpdateRecipeRequest is the JSON payload for updating a recipe. Category is
// deliberately absent: it is immutable after creation.
type UpdateRecipeRequest struct {
	Title        string `json:"title"        binding:"required" example:"Mushroom Risotto"`
	Ingredients  string `json:"ingredients"  binding:"required" example:"rice, mushrooms, stock, parmesan"`
	Instructions string `json:"instructions" binding:"required" example:"Toast the rice, add stock…"`
}

// ListRecipesResponse wraps the recipe collection.
type ListRecipesResponse struct {
	Recipes []domain.Recipe `json:"recipes"`
}

//
// Handlers
//

// CreateRecipe godoc
// @ID          createRecipe
// @Summary     Add a new recipe
// @Description Stores a recipe; all four fields are required and category must be Vegetarian or Non-Vegetarian.
// @Tags        Recipes
// @Accept      json
// @Produce     json
//
// @Param       body  body  handlers.CreateRecipeRequest  true  "Recipe payload"
//
// @Success     201  {object}  domain.Recipe
// @Failure     400  {object}  handlers.ErrorResponse  "Bad request"
// @Failure     500  {object}  handlers.ErrorResponse  "Internal error"
// @Router      /recipes [post]
func (h *Handlers) CreateRecipe(c *gin.Context) {
	var req CreateRecipeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, "title, ingredients, instructions, and category are required")
		return
	}

	rec, err := h.recipeSvc.Create(c.Request.Context(), req.Title, req.Ingredients, req.Instructions, req.Category)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrEmptyField), errors.Is(err, services.ErrInvalidCategory):
			fail(c, http.StatusBadRequest, ErrCodeBadRequest, err.Error())
		default:
			fail(c, http.StatusInternalServerError, ErrCodeCreateFailed, err.Error())
		}
		return
	}
	ok(c, http.StatusCreated, rec)
}

// ListRecipes godoc
// @ID          listRecipes
// @Summary     List all recipes
// @Description Returns every stored recipe in insertion order. Supports weak ETag via If-None-Match and may return 304.
// @Tags        Recipes
// @Produce     json
//
// @Param       If-None-Match  header  string  false "Return 304 if ETag matches"  example(W/\"abc123\")
//
// @Success     200  {object} handlers.ListRecipesResponse
// @Header      200  {string} ETag  "Weak ETag for current result"
// @Success     304  {string} string "Not Modified"
// @Failure     500  {object} handlers.ErrorResponse "Internal error"
// @Router      /recipes [get]
func (h *Handlers) ListRecipes(c *gin.Context) {
	ctx := c.Request.Context()

	// ETag pre-check (best effort).
	var db *gorm.DB
	if svc, okc := h.recipeSvc.(*services.RecipeService); okc {
		db = svc.DB
	}
	if db != nil {
		count, maxTS, err := repo.RecipesStats(ctx, db)
		if err == nil {
			var ts int64
			if maxTS != nil {
				ts = maxTS.Unix()
			}
			etag := fmt.Sprintf(`W/"recipes:%d:%d"`, count, ts)
			c.Header("ETag", etag)
			if inm := c.GetHeader("If-None-Match"); inm != "" && inm == etag {
				c.Status(http.StatusNotModified)
				return
			}
		}
	}

	items, err := h.recipeSvc.List(ctx)
	if err != nil {
		fail(c, http.StatusInternalServerError, ErrCodeListFailed, err.Error())
		return
	}
	ok(c, http.StatusOK, ListRecipesResponse{Recipes: items})
}

// GetRecipe godoc
// @ID          getRecipe
// @Summary     Fetch one recipe
// @Tags        Recipes
// @Produce     json
//
// @Param       id  path  int  true  "Recipe ID"  example(7)
//
// @Success     200  {object} domain.Recipe
// @Failure     400  {object} handlers.ErrorResponse "Bad request"
// @Failure     404  {object} handlers.ErrorResponse "Recipe not found"
// @Failure     500  {object} handlers.ErrorResponse "Internal error"
// @Router      /recipes/{id} [get]
func (h *Handlers) GetRecipe(c *gin.Context) {
	id, okID := utils.ParseID(c.Param("id"))
	if !okID {
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, "recipe id must be a positive integer")
		return
	}

	rec, err := h.recipeSvc.Get(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, services.ErrRecipeNotFound) {
			fail(c, http.StatusNotFound, ErrCodeNotFound, "recipe not found")
			return
		}
		fail(c, http.StatusInternalServerError, ErrCodeInternal, err.Error())
		return
	}
	ok(c, http.StatusOK, rec)
}

// UpdateRecipe godoc
// @ID          updateRecipe
// @Summary     Update a recipe
// @Description Rewrites title, ingredients, and instructions. The stored category is never modified.
// @Tags        Recipes
// @Accept      json
// @Produce     json
//
// @Param       id    path  int                            true  "Recipe ID"  example(7)
// @Param       body  body  handlers.UpdateRecipeRequest  true  "New field values"
//
// @Success     204  {string} string "No Content"
// @Failure     400  {object} handlers.ErrorResponse "Bad request"
// @Failure     404  {object} handlers.ErrorResponse "Recipe not found"
// @Failure     500  {object} handlers.ErrorResponse "Internal error"
// @Router      /recipes/{id} [put]
func (h *Handlers) UpdateRecipe(c *gin.Context) {
	id, okID := utils.ParseID(c.Param("id"))
	if !okID {
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, "recipe id must be a positive integer")
		return
	}

	var req UpdateRecipeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, "title, ingredients, and instructions are required")
		return
	}

	if err := h.recipeSvc.Update(c.Request.Context(), id, req.Title, req.Ingredients, req.Instructions); err != nil {
		switch {
		case errors.Is(err, services.ErrRecipeNotFound):
			fail(c, http.StatusNotFound, ErrCodeNotFound, "recipe not found")
		case errors.Is(err, services.ErrEmptyField):
			fail(c, http.StatusBadRequest, ErrCodeBadRequest, err.Error())
		default:
			fail(c, http.StatusInternalServerError, ErrCodeInternal, err.Error())
		}
		return
	}
	noContent(c)
}

// DeleteRecipe godoc
// @ID          deleteRecipe
// @Summary     Delete a recipe
// @Tags        Recipes
// @Produce     json
//
// @Param       id  path  int  true  "Recipe ID"  example(7)
//
// @Success     204  {string} string "No Content"
// @Failure     400  {object} handlers.ErrorResponse "Bad request"
// @Failure     404  {object} handlers.ErrorResponse "Recipe not found"
// @Failure     500  {object} handlers.ErrorResponse "Internal error"
// @Router      /recipes/{id} [delete]
func (h *Handlers) DeleteRecipe(c *gin.Context) {
	id, okID := utils.ParseID(c.Param("id"))
	if !okID {
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, "recipe id must be a positive integer")
		return
	}

	if err := h.recipeSvc.Delete(c.Request.Context(), id); err != nil {
		if errors.Is(err, services.ErrRecipeNotFound) {
			fail(c, http.StatusNotFound, ErrCodeNotFound, "recipe not found")
			return
		}
		fail(c, http.StatusInternalServerError, ErrCodeInternal, err.Error())
		return
	}
	noContent(c)
}

// SearchRecipes godoc
// @ID          searchRecipes
// @Summary     Search recipes by title
// @Description Substring match on the title column. An empty result set is a 200 with an empty list.
// @Tags        Recipes
// @Produce     json
//
// @Param       q  query  string  true  "Title substring"  example(risotto)
//
// @Success     200  {object} handlers.ListRecipesResponse
// @Failure     400  {object} handlers.ErrorResponse "Bad request"
// @Failure     500  {object} handlers.ErrorResponse "Internal error"
// @Router      /recipes/search [get]
func (h *Handlers) SearchRecipes(c *gin.Context) {
	q := strings.TrimSpace(c.Query("q"))
	if q == "" {
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, "query parameter q is required")
		return
	}

	items, err := h.recipeSvc.Search(c.Request.Context(), q)
	if err != nil {
		fail(c, http.StatusInternalServerError, ErrCodeListFailed, err.Error())
		return
	}
	ok(c, http.StatusOK, ListRecipesResponse{Recipes: items})
}
