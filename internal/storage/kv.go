// Package storage persists the board as a single versioned JSON blob in a
// key-value store.
package storage

import (
	"context"
	"errors"
)

// StorageKey is the key the board blob lives under
const StorageKey = "task-flow-storage"

var (
	// ErrNotFound is returned by KV.Get when the key has never been written
	ErrNotFound = errors.New("storage: key not found")

	// ErrUnsupportedVersion is returned when a blob was written by a newer release
	ErrUnsupportedVersion = errors.New("storage: unsupported envelope version")

	// ErrCorrupt is returned when a stored blob is not a valid envelope
	ErrCorrupt = errors.New("storage: corrupt board data")

	// ErrUnknownBackend is returned by Open for an unrecognised backend name
	ErrUnknownBackend = errors.New("storage: unknown backend")
)

// KV is a flat key-value store with no transactional guarantees.
// Concurrent writers to the same key are not coordinated: last write wins.
type KV interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Close() error
}
