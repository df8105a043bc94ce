package board

import (
	"time"

	"github.com/google/uuid"
	"github.com/thenoetrevino/kboard/internal/events"
	"github.com/thenoetrevino/kboard/internal/storage"
	"github.com/thenoetrevino/kboard/internal/types"
)

// Option configures a Board
type Option func(*Board)

// WithStore persists every committed change through store
func WithStore(store *storage.Store) Option {
	return func(b *Board) {
		b.store = store
	}
}

// WithPublisher announces committed changes on publisher
func WithPublisher(publisher events.EventPublisher) Option {
	return func(b *Board) {
		b.publisher = publisher
	}
}

// WithEntryColumn sets the column AddTask uses when none is given
func WithEntryColumn(id types.ColumnID) Option {
	return func(b *Board) {
		if id != "" {
			b.entryColumn = id
		}
	}
}

// WithClock replaces time.Now, for tests
func WithClock(now func() time.Time) Option {
	return func(b *Board) {
		b.now = now
	}
}

// WithIDGenerator replaces the UUID generator, for tests
func WithIDGenerator(newID func() string) Option {
	return func(b *Board) {
		b.newID = newID
	}
}

func defaultID() string {
	return uuid.NewString()
}
