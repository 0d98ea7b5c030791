// Package spoonacular implements the outbound recipe-suggestion client.
//
// The client follows the remote API's two-step protocol: one request to
// findByIngredients returns up to five candidate recipe ids ranked by the
// "maximize used ingredients" heuristic (pantry staples ignored), then one
// additional request per candidate id fetches the full detail record. The
// fan-out is sequential and blocking; at this scale (<= 5 detail calls) that
// keeps latency predictable and avoids hiding failures behind concurrency.
//
// Failure policy:
//   - missing credential       -> clients.ErrMissingAPIKey
//   - non-2xx on the first call -> *clients.StatusError (status + body)
//   - non-2xx on a detail call  -> that id is skipped and logged; the
//     remaining details are still returned in candidate order
//
// The ingredient list is passed through as a raw comma-separated string; no
// per-ingredient validation happens beyond URL encoding.
package spoonacular

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"

	"github.com/rs/zerolog/log"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/recipedeck/go-recipe-backend/internal/clients"
)

// DefaultBaseURL is the production API root.
const DefaultBaseURL = "https://api.spoonacular.com"

// suggestionCount caps how many candidate ids the first call requests.
const suggestionCount = 5

// Ingredient is one line of a suggested recipe's ingredient list. Original
// preserves the remote API's human-readable phrasing ("2 cups flour").
type Ingredient struct {
	Original string `json:"original"`
}

// RecipeDetail is the full detail record for one suggested recipe.
type RecipeDetail struct {
	ID                  int          `json:"id"`
	Title               string       `json:"title"`
	Servings            int          `json:"servings"`
	ReadyInMinutes      int          `json:"readyInMinutes"`
	ExtendedIngredients []Ingredient `json:"extendedIngredients"`
	Instructions        string       `json:"instructions"`
	SourceURL           string       `json:"sourceUrl"`
}

// Client issues recipe-suggestion requests. Build one with New.
type Client struct {
	// APIKey is the credential sent as the "apiKey" query parameter. May be
	// empty; Suggest then fails with clients.ErrMissingAPIKey.
	APIKey string
	// BaseURL is the API root; overridable for tests.
	BaseURL string
	// HTTPClient performs the requests.
	HTTPClient *http.Client
}

// New constructs a Client with the production endpoint and the given key.
func New(apiKey string, httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = clients.DefaultHTTPClient(0)
	}
	return &Client{APIKey: apiKey, BaseURL: DefaultBaseURL, HTTPClient: httpClient}
}

// candidate is the slim shape returned by findByIngredients.
type candidate struct {
	ID int `json:"id"`
}

// Suggest returns detail records for up to five recipes that use the given
// ingredients (raw comma-separated string). Results keep the remote ranking
// order. Detail calls that fail are skipped, not propagated, so one bad id
// cannot sink the whole suggestion set.
func (c *Client) Suggest(ctx context.Context, ingredients string) ([]RecipeDetail, error) {
	tr := otel.Tracer("clients/spoonacular")
	ctx, span := tr.Start(ctx, "Suggest",
		trace.WithAttributes(attribute.String("ingredients", ingredients)),
	)
	defer span.End()

	if c.APIKey == "" {
		return nil, clients.ErrMissingAPIKey
	}

	params := url.Values{}
	params.Set("ingredients", ingredients)
	params.Set("apiKey", c.APIKey)
	params.Set("number", fmt.Sprint(suggestionCount))
	params.Set("ranking", "2")
	params.Set("ignorePantry", "true")

	body, err := c.get(ctx, c.BaseURL+"/recipes/findByIngredients?"+params.Encode())
	if err != nil {
		return nil, err
	}

	var cands []candidate
	if err := json.Unmarshal(body, &cands); err != nil {
		return nil, err
	}

	out := make([]RecipeDetail, 0, len(cands))
	for _, cand := range cands {
		detail, err := c.information(ctx, cand.ID)
		if err != nil {
			// A failed detail call drops that candidate only.
			log.Warn().Err(err).Int("recipe_id", cand.ID).Msg("skipping suggestion detail")
			continue
		}
		out = append(out, *detail)
	}
	return out, nil
}

// information fetches the full detail record for one recipe id.
func (c *Client) information(ctx context.Context, id int) (*RecipeDetail, error) {
	body, err := c.get(ctx, fmt.Sprintf("%s/recipes/%d/information?apiKey=%s", c.BaseURL, id, url.QueryEscape(c.APIKey)))
	if err != nil {
		return nil, err
	}
	var d RecipeDetail
	if err := json.Unmarshal(body, &d); err != nil {
		return nil, err
	}
	return &d, nil
}

// get performs one GET and returns the body, mapping non-2xx statuses to
// *clients.StatusError.
func (c *Client) get(ctx context.Context, rawURL string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, err
	}
	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, clients.NewStatusError("spoonacular", resp.StatusCode, body)
	}
	return body, nil
}
