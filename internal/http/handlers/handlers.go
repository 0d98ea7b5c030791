// Handler wiring.
//
// Handlers groups the HTTP endpoints for recipes, discussion posts, users,
// external lookups (videos, suggestions), the trivia quiz, and uploads. It
// depends on abstract service interfaces to keep transport concerns separate
// from business logic; the interfaces themselves are declared next to the
// handler files that consume them.
package handlers

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/recipedeck/go-recipe-backend/internal/clients"
)

// Handlers groups HTTP endpoints and their service dependencies.
type Handlers struct {
	recipeSvc  RecipeService
	discSvc    DiscussionService
	userSvc    UserService
	videoSvc   VideoSearcher
	suggestSvc RecipeSuggester
	uploads    UploadStore
}

// New constructs a Handlers instance bound to the given services.
func New(recipeSvc RecipeService, discSvc DiscussionService, userSvc UserService,
	videoSvc VideoSearcher, suggestSvc RecipeSuggester, uploads UploadStore) *Handlers {
	return &Handlers{
		recipeSvc:  recipeSvc,
		discSvc:    discSvc,
		userSvc:    userSvc,
		videoSvc:   videoSvc,
		suggestSvc: suggestSvc,
		uploads:    uploads,
	}
}

// failUpstream translates outbound-client errors into the error envelope.
//
// Mapping (mirrors the failure taxonomy of the external clients):
//   - missing credential -> 503 missing_api_key (configuration, not remote)
//   - remote non-success -> 502 upstream_error with remote status and body
//   - anything else      -> 502 upstream_error with the error text
func failUpstream(c *gin.Context, api string, err error) {
	if errors.Is(err, clients.ErrMissingAPIKey) {
		fail(c, http.StatusServiceUnavailable, ErrCodeMissingAPIKey,
			fmt.Sprintf("%s API key not configured", api))
		return
	}
	var se *clients.StatusError
	if errors.As(err, &se) {
		fail(c, http.StatusBadGateway, ErrCodeUpstream,
			fmt.Sprintf("error fetching data from %s API: %d - %s", se.API, se.Status, se.Body))
		return
	}
	fail(c, http.StatusBadGateway, ErrCodeUpstream, err.Error())
}
