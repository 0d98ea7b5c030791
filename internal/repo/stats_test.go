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

func newStatsDB(t *testing.T, migrate ...any) *gorm.DB {
	t.Helper()

	dsn := filepath.Join(t.TempDir(), fmt.Sprintf("stats_test_%d.db", time.Now().UnixNano()))
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

func TestRecipesStats_EmptyCollection(t *testing.T) {
	db := newStatsDB(t, &domain.Recipe{})

	count, maxUpdated, err := RecipesStats(context.Background(), db)
	if err != nil {
		t.Fatalf("RecipesStats: %v", err)
	}
	if count != 0 || maxUpdated != nil {
		t.Fatalf("expected (0, nil) for empty table, got (%d, %v)", count, maxUpdated)
	}
}

func TestRecipesStats_Error_NoTable(t *testing.T) {
	db := newStatsDB(t /* no migrations */)
	if _, _, err := RecipesStats(context.Background(), db); err == nil {
		t.Fatalf("expected error when table missing")
	}
}

func TestRecipesStats_CountAndLatestTimestamp(t *testing.T) {
	db := newStatsDB(t, &domain.Recipe{})

	old := time.Date(2025, 3, 1, 8, 0, 0, 0, time.UTC)
	newer := old.Add(2 * time.Hour)
	rows := []domain.Recipe{
		{Title: "a", Ingredients: "i", Instructions: "s", Category: domain.CategoryVegetarian, UpdatedAt: old},
		{Title: "b", Ingredients: "i", Instructions: "s", Category: domain.CategoryVegetarian, UpdatedAt: newer},
	}
	for i := range rows {
		if err := db.Create(&rows[i]).Error; err != nil {
			t.Fatalf("seed %d: %v", i, err)
		}
	}

	count, maxUpdated, err := RecipesStats(context.Background(), db)
	if err != nil {
		t.Fatalf("RecipesStats: %v", err)
	}
	if count != 2 {
		t.Fatalf("expected count=2, got %d", count)
	}
	if maxUpdated == nil || !maxUpdated.Equal(newer) {
		t.Fatalf("expected max updated_at %v, got %v", newer, maxUpdated)
	}
}
