package database

import (
	"context"
	"path/filepath"
	"testing"
)

// ============================================================================
// DATABASE SETUP HELPERS
// ============================================================================

// setupTestRepo opens an in-memory database with migrations applied
func setupTestRepo(t *testing.T) *KVRepository {
	t.Helper()
	repo, err := OpenKV(context.Background(), ":memory:")
	if err != nil {
		t.Fatalf("Failed to create test database: %v", err)
	}
	t.Cleanup(func() { _ = repo.Close() })
	return repo
}

// setupTestDBFile returns a path for a file-based database inside t.TempDir,
// used to check persistence across reopen
func setupTestDBFile(t *testing.T) string {
	t.Helper()
	return filepath.Join(t.TempDir(), "nested", "kboard-test.db")
}
