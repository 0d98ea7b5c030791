package clients

import (
	"strings"
	"testing"
	"time"
)

func TestStatusError_Message(t *testing.T) {
	err := NewStatusError("youtube", 403, []byte(`{"error":"quota"}`))
	msg := err.Error()
	for _, want := range []string{"youtube", "403", "quota"} {
		if !strings.Contains(msg, want) {
			t.Errorf("error message missing %q: %s", want, msg)
		}
	}
}

func TestNewStatusError_TruncatesBody(t *testing.T) {
	huge := []byte(strings.Repeat("x", 10_000))
	err := NewStatusError("spoonacular", 500, huge)
	if len(err.Body) != maxErrBody {
		t.Fatalf("expected body capped at %d bytes, got %d", maxErrBody, len(err.Body))
	}
}

func TestDefaultHTTPClient_Timeouts(t *testing.T) {
	if c := DefaultHTTPClient(0); c.Timeout != 10*time.Second {
		t.Fatalf("expected 10s default, got %v", c.Timeout)
	}
	if c := DefaultHTTPClient(3 * time.Second); c.Timeout != 3*time.Second {
		t.Fatalf("expected 3s, got %v", c.Timeout)
	}
}
