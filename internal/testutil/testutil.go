package testutil

import (
	"testing"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/GustavoFelipe17/projeto-livros-unisagrado/internal/config"
	"github.com/GustavoFelipe17/projeto-livros-unisagrado/internal/db"
	"github.com/GustavoFelipe17/projeto-livros-unisagrado/internal/model"
)

// NewTestDB returns a migrated in-memory sqlite database private to t.
func NewTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	gdb := NewEmptyDB(t)
	if err := db.Migrate(gdb); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}
	return gdb
}

// NewEmptyDB returns an in-memory sqlite database without the livros
// table, so every query against it fails.
func NewEmptyDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := "file:testdb_" + uuid.New().String() + "?mode=memory&cache=shared"

	gdb, err := db.Open(config.DriverSQLite, dsn)
	if err != nil {
		t.Fatalf("failed to connect to test database: %v", err)
	}

	sqlDB, err := gdb.DB()
	if err != nil {
		t.Fatalf("failed to get sql.DB from gorm: %v", err)
	}

	t.Cleanup(func() {
		_ = sqlDB.Close()
	})

	return gdb
}

func Ptr[T any](v T) *T {
	return &v
}

func SeedBook(t *testing.T, gdb *gorm.DB, googleID, title string, rating *int) model.Book {
	t.Helper()

	book := model.Book{
		GoogleAPIID:     googleID,
		Title:           title,
		Author:          Ptr("Autor " + title),
		PublicationYear: Ptr("2020"),
		Rating:          rating,
	}

	if err := gdb.Create(&book).Error; err != nil {
		t.Fatalf("failed to seed book %q: %v", title, err)
	}

	return book
}

func CountBooks(t *testing.T, gdb *gorm.DB) int64 {
	t.Helper()

	var n int64
	if err := gdb.Model(&model.Book{}).Count(&n).Error; err != nil {
		t.Fatalf("failed to count books: %v", err)
	}
	return n
}
