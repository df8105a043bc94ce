package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/thenoetrevino/kboard/internal/storage"
)

// KVRepository stores key-value pairs in the kv table
type KVRepository struct {
	db *sql.DB
}

// NewKVRepository wraps an initialized database
func NewKVRepository(db *sql.DB) *KVRepository {
	return &KVRepository{db: db}
}

// OpenKV initializes the database at dbPath and returns a repository that
// owns the connection
func OpenKV(ctx context.Context, dbPath string) (*KVRepository, error) {
	db, err := InitDB(ctx, dbPath)
	if err != nil {
		return nil, err
	}
	return NewKVRepository(db), nil
}

// Get returns the value stored under key, or storage.ErrNotFound
func (r *KVRepository) Get(ctx context.Context, key string) ([]byte, error) {
	var value []byte
	err := r.db.QueryRowContext(ctx, "SELECT value FROM kv WHERE key = ?", key).Scan(&value)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, storage.ErrNotFound
		}
		return nil, fmt.Errorf("failed to read key %s: %w", key, err)
	}
	return value, nil
}

// Set inserts or replaces the value under key
func (r *KVRepository) Set(ctx context.Context, key string, value []byte) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO kv (key, value, updated_at) VALUES (?, ?, CURRENT_TIMESTAMP)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = CURRENT_TIMESTAMP
	`, key, value)
	if err != nil {
		return fmt.Errorf("failed to write key %s: %w", key, err)
	}
	return nil
}

// Close closes the underlying database
func (r *KVRepository) Close() error {
	return r.db.Close()
}

var _ storage.KV = (*KVRepository)(nil)
