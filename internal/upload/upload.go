// Package upload stores user-submitted images on disk and produces
// fixed-width thumbnails for display.
//
// Uploaded bytes never enter the database: the store only ever records the
// file name returned here. Files are written under a configurable directory
// with UUID-derived names, the thumbnail alongside the original in a thumb/
// subdirectory.
package upload

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/disintegration/imaging"
	"github.com/google/uuid"
)

// ThumbnailWidth is the fixed display width; height scales proportionally.
const ThumbnailWidth = 300

// Store writes images and thumbnails below Dir.
type Store struct {
	// Dir is the root upload directory. Created on demand.
	Dir string
}

// NewStore constructs a Store rooted at dir.
func NewStore(dir string) *Store {
	return &Store{Dir: dir}
}

// Saved describes one stored image.
type Saved struct {
	// FileName is the stored name of the full-size image (e.g. "ab12….jpg").
	FileName string `json:"file_name"`
	// ThumbName is the stored name of the thumbnail, relative to Dir
	// (e.g. "thumb/ab12….jpg").
	ThumbName string `json:"thumb_name"`
}

// Save decodes the uploaded image, writes the original and a
// ThumbnailWidth-wide Lanczos thumbnail, and returns their stored names.
// Non-image payloads fail at decode time.
func (s *Store) Save(r io.Reader) (*Saved, error) {
	img, err := imaging.Decode(r)
	if err != nil {
		return nil, fmt.Errorf("decode image: %w", err)
	}

	name := uuid.NewString() + ".jpg"
	origPath := filepath.Join(s.Dir, name)
	thumbPath := filepath.Join(s.Dir, "thumb", name)

	if err := os.MkdirAll(filepath.Dir(thumbPath), 0o755); err != nil {
		return nil, err
	}

	if err := imaging.Save(img, origPath); err != nil {
		return nil, fmt.Errorf("save original: %w", err)
	}

	thumb := imaging.Resize(img, ThumbnailWidth, 0, imaging.Lanczos)
	if err := imaging.Save(thumb, thumbPath); err != nil {
		return nil, fmt.Errorf("save thumbnail: %w", err)
	}

	return &Saved{
		FileName:  name,
		ThumbName: filepath.ToSlash(filepath.Join("thumb", name)),
	}, nil
}
