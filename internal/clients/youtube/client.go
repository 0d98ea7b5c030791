// Package youtube implements the outbound video-search client.
//
// The client wraps the YouTube Data API v3 search endpoint, restricted to the
// culinary domain: every query gets the literal suffix " cooking" appended
// before transmission, regardless of caller intent. A single request is
// issued per search; no pagination follow-up is performed even when more
// results exist upstream.
//
// Failure policy:
//   - missing credential  -> clients.ErrMissingAPIKey
//   - non-2xx status      -> *clients.StatusError carrying status and body
//
// Both are call-time, user-visible conditions; neither terminates the process.
package youtube

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"strconv"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/recipedeck/go-recipe-backend/internal/clients"
)

// DefaultBaseURL is the production search endpoint.
const DefaultBaseURL = "https://www.googleapis.com/youtube/v3/search"

// DefaultMaxResults is requested when the caller does not specify a limit.
const DefaultMaxResults = 5

// querySuffix biases every search toward cooking content.
const querySuffix = " cooking"

// VideoResult is one mapped search hit.
type VideoResult struct {
	Title        string `json:"title"`
	VideoID      string `json:"video_id"`
	WatchURL     string `json:"watch_url"`
	ThumbnailURL string `json:"thumbnail_url"`
}

// Client issues video-search requests. The zero value is not usable; build
// one with New.
type Client struct {
	// APIKey is the credential sent as the "key" query parameter. May be
	// empty; Search then fails with clients.ErrMissingAPIKey.
	APIKey string
	// BaseURL is the search endpoint; overridable for tests.
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

// searchResponse mirrors the subset of the API response we consume.
type searchResponse struct {
	Items []struct {
		ID struct {
			VideoID string `json:"videoId"`
		} `json:"id"`
		Snippet struct {
			Title      string `json:"title"`
			Thumbnails struct {
				Medium struct {
					URL string `json:"url"`
				} `json:"medium"`
			} `json:"thumbnails"`
		} `json:"snippet"`
	} `json:"items"`
}

// Search returns up to maxResults cooking videos for query. maxResults <= 0
// falls back to DefaultMaxResults. The " cooking" suffix is always appended
// to the transmitted query.
func (c *Client) Search(ctx context.Context, query string, maxResults int) ([]VideoResult, error) {
	tr := otel.Tracer("clients/youtube")
	ctx, span := tr.Start(ctx, "Search",
		trace.WithAttributes(attribute.String("query", query)),
	)
	defer span.End()

	if c.APIKey == "" {
		return nil, clients.ErrMissingAPIKey
	}
	if maxResults <= 0 {
		maxResults = DefaultMaxResults
	}

	params := url.Values{}
	params.Set("part", "snippet")
	params.Set("q", query+querySuffix)
	params.Set("type", "video")
	params.Set("key", c.APIKey)
	params.Set("maxResults", strconv.Itoa(maxResults))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.BaseURL+"?"+params.Encode(), nil)
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
	if resp.StatusCode != http.StatusOK {
		return nil, clients.NewStatusError("youtube", resp.StatusCode, body)
	}

	var sr searchResponse
	if err := json.Unmarshal(body, &sr); err != nil {
		return nil, err
	}

	out := make([]VideoResult, 0, len(sr.Items))
	for _, it := range sr.Items {
		out = append(out, VideoResult{
			Title:        it.Snippet.Title,
			VideoID:      it.ID.VideoID,
			WatchURL:     "https://www.youtube.com/watch?v=" + it.ID.VideoID,
			ThumbnailURL: it.Snippet.Thumbnails.Medium.URL,
		})
	}
	return out, nil
}
