// Image upload HTTP handler.
//
// This file exposes the multipart image upload endpoint:
//   - POST /uploads  (form field "image")
//
// The stored file name returned here is what a discussion post later records
// as its image reference; the database never sees the bytes.
package handlers

import (
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/recipedeck/go-recipe-backend/internal/upload"
)

// UploadStore defines the image storage contract consumed by HTTP handlers.
type UploadStore interface {
	// Save persists the image and its thumbnail, returning stored names.
	Save(r io.Reader) (*upload.Saved, error)
}

// UploadImage godoc
// @ID          uploadImage
// @Summary     Upload an image
// @Description Accepts a multipart image (field "image"), stores it with a generated name, and writes a 300px-wide thumbnail alongside.
// @Tags        Uploads
// @Accept      multipart/form-data
// @Produce     json
//
// @Param       image  formData  file  true  "Image file (jpg/png)"
//
// @Success     201  {object} upload.Saved
// @Failure     400  {object} handlers.ErrorResponse "Bad request"
// @Failure     500  {object} handlers.ErrorResponse "Upload failed"
// @Router      /uploads [post]
func (h *Handlers) UploadImage(c *gin.Context) {
	fh, err := c.FormFile("image")
	if err != nil {
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, "multipart field 'image' is required")
		return
	}

	f, err := fh.Open()
	if err != nil {
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, "cannot read uploaded file")
		return
	}
	defer f.Close()

	saved, err := h.uploads.Save(f)
	if err != nil {
		fail(c, http.StatusInternalServerError, ErrCodeUploadFailed, err.Error())
		return
	}
	ok(c, http.StatusCreated, saved)
}
