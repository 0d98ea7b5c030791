package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/recipedeck/go-recipe-backend/internal/domain"
	"github.com/recipedeck/go-recipe-backend/internal/services"
)

// Flexible discussion service stub.
type stubDiscSvc struct {
	post func(context.Context, string, string, string) (*domain.Discussion, error)
	list func(context.Context) ([]domain.Discussion, error)
}

func (s stubDiscSvc) Post(ctx context.Context, username, content, imageName string) (*domain.Discussion, error) {
	if s.post != nil {
		return s.post(ctx, username, content, imageName)
	}
	return &domain.Discussion{ID: 1, Username: username, Content: content}, nil
}

func (s stubDiscSvc) List(ctx context.Context) ([]domain.Discussion, error) {
	if s.list != nil {
		return s.list(ctx)
	}
	return nil, nil
}

func newDiscussionRouter(t *testing.T, svc DiscussionService) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	h := New(nil, svc, nil, nil, nil, nil)
	r := gin.New()
	r.GET("/discussions", h.ListDiscussions)
	r.POST("/discussions", h.PostDiscussion)
	return r
}

func TestPostDiscussion_Created(t *testing.T) {
	var gotUsername, gotImage string
	r := newDiscussionRouter(t, stubDiscSvc{
		post: func(ctx context.Context, username, content, imageName string) (*domain.Discussion, error) {
			gotUsername, gotImage = username, imageName
			return &domain.Discussion{ID: 3, Username: username, Content: content}, nil
		},
	})

	w := doJSON(t, r, http.MethodPost, "/discussions", PostDiscussionRequest{
		Username: "marta", Content: "hello forum", ImageName: "img.jpg",
	})
	if w.Code != http.StatusCreated {
		t.Fatalf("status = %d, body = %s", w.Code, w.Body.String())
	}
	if gotUsername != "marta" || gotImage != "img.jpg" {
		t.Fatalf("service saw (%q, %q)", gotUsername, gotImage)
	}
}

func TestPostDiscussion_MissingContent(t *testing.T) {
	r := newDiscussionRouter(t, stubDiscSvc{})

	w := doJSON(t, r, http.MethodPost, "/discussions", map[string]string{"username": "marta"})
	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d", w.Code)
	}
}

func TestPostDiscussion_EmptyContentFromService(t *testing.T) {
	r := newDiscussionRouter(t, stubDiscSvc{
		post: func(ctx context.Context, _, _, _ string) (*domain.Discussion, error) {
			return nil, services.ErrEmptyContent
		},
	})

	// Whitespace-only content passes binding but fails service validation.
	w := doJSON(t, r, http.MethodPost, "/discussions", PostDiscussionRequest{Content: "   "})
	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d", w.Code)
	}
}

func TestListDiscussions_OK(t *testing.T) {
	img := "pic.jpg"
	r := newDiscussionRouter(t, stubDiscSvc{
		list: func(ctx context.Context) ([]domain.Discussion, error) {
			return []domain.Discussion{
				{ID: 1, Username: "a", Content: "first"},
				{ID: 2, Username: "b", Content: "second", ImageURL: &img},
			}, nil
		},
	})

	w := doJSON(t, r, http.MethodGet, "/discussions", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}
	var resp ListDiscussionsResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(resp.Discussions) != 2 || resp.Discussions[1].ImageURL == nil {
		t.Fatalf("unexpected posts: %+v", resp.Discussions)
	}
}
