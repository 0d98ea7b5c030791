// Recipe suggestion HTTP handler.
//
// This file exposes the ingredient-driven suggestion endpoint:
//   - GET /recipes/suggestions?ingredients=rice,mushroom
//
// The ingredient list is forwarded verbatim (comma-separated) to the
// suggestion client, which performs the two-step remote protocol.
package handlers

import (
	"context"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/recipedeck/go-recipe-backend/internal/clients/spoonacular"
)

// RecipeSuggester defines the outbound suggestion contract consumed by HTTP
// handlers.
type RecipeSuggester interface {
	// Suggest returns detail records for recipes using the given ingredients.
	Suggest(ctx context.Context, ingredients string) ([]spoonacular.RecipeDetail, error)
}

// SuggestionsResponse wraps the suggestion detail records.
type SuggestionsResponse struct {
	Suggestions []spoonacular.RecipeDetail `json:"suggestions"`
}

// SuggestRecipes godoc
// @ID          suggestRecipes
// @Summary     Get recipe ideas from ingredients
// @Description Passes the comma-separated ingredient list to the suggestion API and returns up to five detailed recipe ideas ranked by ingredient usage.
// @Tags        Recipes
// @Produce     json
//
// @Param       ingredients  query  string  true  "Comma-separated ingredients"  example(rice,mushroom,parmesan)
//
// @Success     200  {object} handlers.SuggestionsResponse
// @Failure     400  {object} handlers.ErrorResponse "Bad request"
// @Failure     502  {object} handlers.ErrorResponse "Upstream failure"
// @Failure     503  {object} handlers.ErrorResponse "API key not configured"
// @Router      /recipes/suggestions [get]
func (h *Handlers) SuggestRecipes(c *gin.Context) {
	ingredients := strings.TrimSpace(c.Query("ingredients"))
	if ingredients == "" {
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, "query parameter ingredients is required")
		return
	}

	details, err := h.suggestSvc.Suggest(c.Request.Context(), ingredients)
	if err != nil {
		failUpstream(c, "Spoonacular", err)
		return
	}
	ok(c, http.StatusOK, SuggestionsResponse{Suggestions: details})
}
