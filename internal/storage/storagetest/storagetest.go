// Package storagetest provides throwaway SQLite databases for tests.
package storagetest

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/jmoiron/sqlx"
	"github.com/rs/zerolog"

	"paralympics-api/internal/storage"
)

// NewDB opens an empty database with the schema in a temp dir.
// It is closed when the test ends.
func NewDB(t testing.TB) *sqlx.DB {
	t.Helper()

	path := filepath.Join(t.TempDir(), "paralympics_test.db")
	db, err := storage.Open(context.Background(), "sqlite://"+path)
	if err != nil {
		t.Fatalf("open test database: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return db
}

// NewSeededDB is NewDB with the bundled regions and events loaded
func NewSeededDB(t testing.TB) *sqlx.DB {
	t.Helper()

	db := NewDB(t)
	if _, err := storage.Seed(context.Background(), db, zerolog.Nop()); err != nil {
		t.Fatalf("seed test database: %v", err)
	}
	return db
}
