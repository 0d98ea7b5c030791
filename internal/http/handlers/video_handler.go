// Video search HTTP handlers.
//
// This file exposes the cooking-video lookup endpoints:
//   - GET /videos/search  (free-text search with local recipe fallback)
//   - GET /videos/top     (home-page "top cooking videos")
//
// When a search yields no videos, the response falls back to local recipes
// whose title matches the query, so the user still gets something to cook.
package handlers

import (
	"context"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/recipedeck/go-recipe-backend/internal/clients/youtube"
	"github.com/recipedeck/go-recipe-backend/internal/domain"
	"github.com/recipedeck/go-recipe-backend/internal/utils"
)

// VideoSearcher defines the outbound video-search contract consumed by HTTP
// handlers. The implementation appends its own domain bias to the query.
type VideoSearcher interface {
	// Search returns up to maxResults cooking videos for query.
	Search(ctx context.Context, query string, maxResults int) ([]youtube.VideoResult, error)
}

// maxVideoResults caps the caller-supplied max_results parameter.
const maxVideoResults = 25

// SearchVideosResponse carries the video hits and, when the video search
// comes back empty, locally stored recipes matching the query.
type SearchVideosResponse struct {
	Videos []youtube.VideoResult `json:"videos"`
	// Recipes is populated only when Videos is empty.
	Recipes []domain.Recipe `json:"recipes,omitempty"`
}

// SearchVideos godoc
// @ID          searchVideos
// @Summary     Search cooking videos
// @Description Searches the video API for the dish name (biased toward cooking content). When no videos match, locally stored recipes with a matching title are returned instead.
// @Tags        Videos
// @Produce     json
//
// @Param       q            query  string  true   "Dish name"       example(risotto)
// @Param       max_results  query  int     false  "Result cap"      minimum(1) maximum(25) default(5)
//
// @Success     200  {object} handlers.SearchVideosResponse
// @Failure     400  {object} handlers.ErrorResponse "Bad request"
// @Failure     502  {object} handlers.ErrorResponse "Upstream failure"
// @Failure     503  {object} handlers.ErrorResponse "API key not configured"
// @Router      /videos/search [get]
func (h *Handlers) SearchVideos(c *gin.Context) {
	q := strings.TrimSpace(c.Query("q"))
	if q == "" {
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, "query parameter q is required")
		return
	}

	maxResults := utils.AtoiDefault(c.Query("max_results"), youtube.DefaultMaxResults)
	if maxResults < 1 {
		maxResults = 1
	}
	if maxResults > maxVideoResults {
		maxResults = maxVideoResults
	}

	ctx := c.Request.Context()
	videos, err := h.videoSvc.Search(ctx, q, maxResults)
	if err != nil {
		failUpstream(c, "YouTube", err)
		return
	}

	resp := SearchVideosResponse{Videos: videos}
	if len(videos) == 0 {
		// Local fallback: recipes whose title contains the dish name.
		if recipes, rerr := h.recipeSvc.Search(ctx, q); rerr == nil {
			resp.Recipes = recipes
		}
	}
	ok(c, http.StatusOK, resp)
}

// TopVideos godoc
// @ID          topVideos
// @Summary     Top cooking videos
// @Description Returns the home-page selection of top cooking videos.
// @Tags        Videos
// @Produce     json
//
// @Success     200  {object} handlers.SearchVideosResponse
// @Failure     502  {object} handlers.ErrorResponse "Upstream failure"
// @Failure     503  {object} handlers.ErrorResponse "API key not configured"
// @Router      /videos/top [get]
func (h *Handlers) TopVideos(c *gin.Context) {
	videos, err := h.videoSvc.Search(c.Request.Context(), "top", youtube.DefaultMaxResults)
	if err != nil {
		failUpstream(c, "YouTube", err)
		return
	}
	ok(c, http.StatusOK, SearchVideosResponse{Videos: videos})
}
