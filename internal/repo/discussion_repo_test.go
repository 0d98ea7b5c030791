package repo

import (
	"context"
	"fmt"
	"path/filepath"
	"testing"
	"time"

	sqlite "github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/recipedeck/go-recipe-backend/internal/domain"
)

func newDiscussionRepoDB(t *testing.T, migrate ...any) *gorm.DB {
	t.Helper()

	dsn := filepath.Join(t.TempDir(), fmt.Sprintf("discussion_repo_test_%d.db", time.Now().UnixNano()))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})

	if len(migrate) > 0 {
		if err := db.AutoMigrate(migrate...); err != nil {
			t.Fatalf("automigrate: %v", err)
		}
	}
	return db
}

func TestCreateDiscussion_Error_NoTable(t *testing.T) {
	db := newDiscussionRepoDB(t /* no migrations */)
	d, err := CreateDiscussion(context.Background(), db, "ana", "hello", nil)
	if err == nil || d != nil {
		t.Fatalf("expected error creating without table, got post=%v err=%v", d, err)
	}
}

func TestCreateDiscussion_WithAndWithoutImage(t *testing.T) {
	db := newDiscussionRepoDB(t, &domain.Discussion{})

	plain, err := CreateDiscussion(context.Background(), db, "ana", "no picture here", nil)
	if err != nil {
		t.Fatalf("CreateDiscussion (plain): %v", err)
	}
	if plain.ID == 0 || plain.Username != "ana" || plain.ImageURL != nil {
		t.Fatalf("unexpected plain post: %+v", plain)
	}

	img := "abc123.jpg"
	withImg, err := CreateDiscussion(context.Background(), db, "bo", "look at this", &img)
	if err != nil {
		t.Fatalf("CreateDiscussion (image): %v", err)
	}
	if withImg.ImageURL == nil || *withImg.ImageURL != img {
		t.Fatalf("image name not persisted: %+v", withImg)
	}

	// round-trip the image reference
	var got domain.Discussion
	if err := db.First(&got, "id = ?", withImg.ID).Error; err != nil {
		t.Fatalf("load post: %v", err)
	}
	if got.ImageURL == nil || *got.ImageURL != img {
		t.Fatalf("round-trip mismatch: %+v", got)
	}
}

func TestListDiscussions_InsertionOrder(t *testing.T) {
	db := newDiscussionRepoDB(t, &domain.Discussion{})

	for i, content := range []string{"first", "second", "third"} {
		if _, err := CreateDiscussion(context.Background(), db, "u", content, nil); err != nil {
			t.Fatalf("seed %d: %v", i, err)
		}
	}

	list, err := ListDiscussions(context.Background(), db)
	if err != nil {
		t.Fatalf("ListDiscussions: %v", err)
	}
	if len(list) != 3 {
		t.Fatalf("expected 3 posts, got %d", len(list))
	}
	if list[0].Content != "first" || list[2].Content != "third" {
		t.Fatalf("unexpected order: %#v", list)
	}
}
