package events

import (
	"context"
	"log/slog"
	"sync"
	"time"
)

// DefaultBufferSize is used when NewBus is given a non-positive size
const DefaultBufferSize = 64

// Bus fans events out to in-process listeners.
//
// SendEvent never blocks: events go into a bounded queue drained by a single
// dispatcher goroutine. A listener that falls behind loses events rather than
// stalling the sender.
type Bus struct {
	mu        sync.Mutex
	queue     chan Event
	listeners map[int]chan Event
	nextID    int
	sequence  int64
	closed    bool

	bufferSize int
	done       chan struct{}
	now        func() time.Time
}

// NewBus creates a bus and starts its dispatcher
func NewBus(bufferSize int) *Bus {
	if bufferSize <= 0 {
		bufferSize = DefaultBufferSize
	}
	b := &Bus{
		queue:      make(chan Event, bufferSize),
		listeners:  make(map[int]chan Event),
		bufferSize: bufferSize,
		done:       make(chan struct{}),
		now:        time.Now,
	}
	go b.dispatch()
	return b
}

// SendEvent stamps the event with a sequence number and timestamp (unless
// already set) and queues it.
func (b *Bus) SendEvent(event Event) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.closed {
		return ErrClosed
	}

	b.sequence++
	event.SequenceID = b.sequence
	if event.Timestamp.IsZero() {
		event.Timestamp = b.now()
	}

	select {
	case b.queue <- event:
		return nil
	default:
		b.sequence--
		return ErrQueueFull
	}
}

// Listen registers a listener. Its channel is closed when ctx is done or the
// bus is closed.
func (b *Bus) Listen(ctx context.Context) (<-chan Event, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.closed {
		return nil, ErrClosed
	}

	id := b.nextID
	b.nextID++
	ch := make(chan Event, b.bufferSize)
	b.listeners[id] = ch

	go func() {
		select {
		case <-ctx.Done():
			b.removeListener(id)
		case <-b.done:
		}
	}()

	return ch, nil
}

// Close stops the dispatcher after it drains queued events, then closes
// every listener channel. Safe to call more than once.
func (b *Bus) Close() error {
	b.mu.Lock()
	if b.closed {
		b.mu.Unlock()
		return nil
	}
	b.closed = true
	close(b.queue)
	b.mu.Unlock()

	<-b.done
	return nil
}

func (b *Bus) dispatch() {
	defer func() {
		b.mu.Lock()
		for id, ch := range b.listeners {
			close(ch)
			delete(b.listeners, id)
		}
		b.mu.Unlock()
		close(b.done)
	}()

	for event := range b.queue {
		b.mu.Lock()
		for id, ch := range b.listeners {
			select {
			case ch <- event:
			default:
				slog.Warn("dropping event for slow listener",
					"listener", id,
					"event_type", event.Type,
					"sequence", event.SequenceID)
			}
		}
		b.mu.Unlock()
	}
}

func (b *Bus) removeListener(id int) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if ch, ok := b.listeners[id]; ok {
		close(ch)
		delete(b.listeners, id)
	}
}
