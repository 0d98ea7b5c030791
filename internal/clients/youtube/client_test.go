package youtube

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/recipedeck/go-recipe-backend/internal/clients"
)

func TestSearch_MissingAPIKey(t *testing.T) {
	c := New("", nil)
	if _, err := c.Search(context.Background(), "risotto", 5); !errors.Is(err, clients.ErrMissingAPIKey) {
		t.Fatalf("expected ErrMissingAPIKey, got %v", err)
	}
}

func TestSearch_AppendsCookingSuffixAndMapsItems(t *testing.T) {
	var gotQuery, gotMax, gotType string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.Query().Get("q")
		gotMax = r.URL.Query().Get("maxResults")
		gotType = r.URL.Query().Get("type")
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"items": [
				{"id": {"videoId": "vid1"}, "snippet": {"title": "Perfect Risotto", "thumbnails": {"medium": {"url": "http://img/1.jpg"}}}},
				{"id": {"videoId": "vid2"}, "snippet": {"title": "Risotto in 20 min", "thumbnails": {"medium": {"url": "http://img/2.jpg"}}}}
			]
		}`))
	}))
	defer srv.Close()

	c := New("key", srv.Client())
	c.BaseURL = srv.URL

	got, err := c.Search(context.Background(), "risotto", 2)
	if err != nil {
		t.Fatalf("Search: %v", err)
	}

	if gotQuery != "risotto cooking" {
		t.Fatalf("expected query %q, got %q", "risotto cooking", gotQuery)
	}
	if gotMax != "2" || gotType != "video" {
		t.Fatalf("unexpected params: maxResults=%q type=%q", gotMax, gotType)
	}

	if len(got) != 2 {
		t.Fatalf("expected 2 results, got %d", len(got))
	}
	first := got[0]
	if first.Title != "Perfect Risotto" || first.VideoID != "vid1" {
		t.Fatalf("unexpected first result: %+v", first)
	}
	if first.WatchURL != "https://www.youtube.com/watch?v=vid1" {
		t.Fatalf("unexpected watch url: %q", first.WatchURL)
	}
	if first.ThumbnailURL != "http://img/1.jpg" {
		t.Fatalf("unexpected thumbnail url: %q", first.ThumbnailURL)
	}
}

func TestSearch_DefaultsMaxResults(t *testing.T) {
	var gotMax string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotMax = r.URL.Query().Get("maxResults")
		_, _ = w.Write([]byte(`{"items": []}`))
	}))
	defer srv.Close()

	c := New("key", srv.Client())
	c.BaseURL = srv.URL

	if _, err := c.Search(context.Background(), "soup", 0); err != nil {
		t.Fatalf("Search: %v", err)
	}
	if gotMax != "5" {
		t.Fatalf("expected default maxResults=5, got %q", gotMax)
	}
}

func TestSearch_NonOKStatusBecomesStatusError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error": "quotaExceeded"}`, http.StatusForbidden)
	}))
	defer srv.Close()

	c := New("key", srv.Client())
	c.BaseURL = srv.URL

	_, err := c.Search(context.Background(), "soup", 5)
	var se *clients.StatusError
	if !errors.As(err, &se) {
		t.Fatalf("expected *clients.StatusError, got %v", err)
	}
	if se.API != "youtube" || se.Status != http.StatusForbidden {
		t.Fatalf("unexpected status error: %+v", se)
	}
}
