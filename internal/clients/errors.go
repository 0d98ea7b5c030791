// Package clients holds shared plumbing for the outbound HTTP API clients
// (recipe suggestions, video search): the common error shapes and the default
// http.Client settings. The concrete clients live in subpackages.
package clients

import (
	"errors"
	"fmt"
	"net/http"
	"time"
)

// ErrMissingAPIKey is returned when a client is invoked without its
// credential configured. It is a call-time condition, not a startup failure:
// the rest of the application keeps working without the key.
var ErrMissingAPIKey = errors.New("api key not configured")

// StatusError reports a non-success response from a remote API. Status and a
// snippet of the response body are preserved so the failure can be surfaced
// verbatim to the user.
type StatusError struct {
	// API names the remote service (e.g. "youtube", "spoonacular").
	API string
	// Status is the HTTP status code of the failed response.
	Status int
	// Body is the (possibly truncated) response body text.
	Body string
}

// Error implements the error interface.
func (e *StatusError) Error() string {
	return fmt.Sprintf("%s: unexpected status %d: %s", e.API, e.Status, e.Body)
}

// maxErrBody caps how much of a failed response body is retained.
const maxErrBody = 2048

// NewStatusError builds a StatusError, truncating oversized bodies.
func NewStatusError(api string, status int, body []byte) *StatusError {
	b := string(body)
	if len(b) > maxErrBody {
		b = b[:maxErrBody]
	}
	return &StatusError{API: api, Status: status, Body: b}
}

// DefaultHTTPClient returns the http.Client used by the API clients when none
// is injected. The timeout bounds otherwise-unbounded remote latency; calls
// are still synchronous and blocking on the request goroutine.
func DefaultHTTPClient(timeout time.Duration) *http.Client {
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &http.Client{Timeout: timeout}
}
