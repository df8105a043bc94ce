package storage

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
)

// Store loads and saves the board envelope through a KV backend
type Store struct {
	kv  KV
	key string
}

// NewStore returns a Store writing under StorageKey
func NewStore(kv KV) *Store {
	return &Store{kv: kv, key: StorageKey}
}

// Load reads the board. found is false when nothing has been saved yet.
func (s *Store) Load(ctx context.Context) (state State, found bool, err error) {
	data, err := s.kv.Get(ctx, s.key)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return State{}, false, nil
		}
		return State{}, false, fmt.Errorf("failed to read %s: %w", s.key, err)
	}

	state, err = Decode(data)
	if err != nil {
		return State{}, false, err
	}

	slog.Debug("board loaded", "key", s.key, "columns", len(state.Columns), "tasks", len(state.Tasks))
	return state, true, nil
}

// Save replaces the stored board with state
func (s *Store) Save(ctx context.Context, state State) error {
	data, err := Encode(state)
	if err != nil {
		return err
	}
	if err := s.kv.Set(ctx, s.key, data); err != nil {
		return fmt.Errorf("failed to write %s: %w", s.key, err)
	}
	return nil
}

// Close releases the backend
func (s *Store) Close() error {
	return s.kv.Close()
}
