// Discussion forum HTTP handlers.
//
// This file exposes the append-only forum endpoints:
//   - GET  /discussions  (full list)
//   - POST /discussions  (new post, optional image attachment name)
package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/recipedeck/go-recipe-backend/internal/domain"
	"github.com/recipedeck/go-recipe-backend/internal/services"
)

// DiscussionService defines forum operations consumed by HTTP handlers.
type DiscussionService interface {
	// Post appends one entry; username may be empty (a placeholder is used).
	Post(ctx context.Context, username, content, imageName string) (*domain.Discussion, error)
	// List returns all posts in insertion order.
	List(ctx context.Context) ([]domain.Discussion, error)
}

// PostDiscussionRequest is the JSON payload for a new forum post. ImageName
// carries the stored file name from a prior upload, not image bytes.
type PostDiscussionRequest struct {
	Username  string `json:"username"  example:"marta"`
	Content   string `json:"content"   binding:"required" example:"Anyone tried smoking paprika at home?"`
	ImageName string `json:"image_name,omitempty" example:"1f4c3a9e-....jpg"`
}

// ListDiscussionsResponse wraps the post collection.
type ListDiscussionsResponse struct {
	Discussions []domain.Discussion `json:"discussions"`
}

// ListDiscussions godoc
// @ID          listDiscussions
// @Summary     List forum posts
// @Tags        Discussions
// @Produce     json
//
// @Success     200  {object} handlers.ListDiscussionsResponse
// @Failure     500  {object} handlers.ErrorResponse "Internal error"
// @Router      /discussions [get]
func (h *Handlers) ListDiscussions(c *gin.Context) {
	items, err := h.discSvc.List(c.Request.Context())
	if err != nil {
		fail(c, http.StatusInternalServerError, ErrCodeListFailed, err.Error())
		return
	}
	ok(c, http.StatusOK, ListDiscussionsResponse{Discussions: items})
}

// PostDiscussion godoc
// @ID          postDiscussion
// @Summary     Post to the forum
// @Description Appends one post. Username defaults to a placeholder when omitted; the image name references a prior upload.
// @Tags        Discussions
// @Accept      json
// @Produce     json
//
// @Param       body  body  handlers.PostDiscussionRequest  true  "Post payload"
//
// @Success     201  {object} domain.Discussion
// @Failure     400  {object} handlers.ErrorResponse "Bad request"
// @Failure     500  {object} handlers.ErrorResponse "Internal error"
// @Router      /discussions [post]
func (h *Handlers) PostDiscussion(c *gin.Context) {
	var req PostDiscussionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, "content is required")
		return
	}

	d, err := h.discSvc.Post(c.Request.Context(), req.Username, req.Content, req.ImageName)
	if err != nil {
		if errors.Is(err, services.ErrEmptyContent) {
			fail(c, http.StatusBadRequest, ErrCodeBadRequest, err.Error())
			return
		}
		fail(c, http.StatusInternalServerError, ErrCodeCreateFailed, err.Error())
		return
	}
	ok(c, http.StatusCreated, d)
}
