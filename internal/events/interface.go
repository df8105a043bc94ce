package events

import "context"

// EventPublisher defines the interface for sending and receiving events.
// The board depends on this rather than the concrete Bus so tests can record
// what was published.
type EventPublisher interface {
	// SendEvent queues an event without blocking
	SendEvent(event Event) error

	// Listen returns a channel that receives every event sent after the call.
	// The channel is closed when ctx is done or the publisher is closed.
	Listen(ctx context.Context) (<-chan Event, error)

	// Close stops delivery and closes all listener channels
	Close() error
}

// Compile-time verification that *Bus implements EventPublisher
var _ EventPublisher = (*Bus)(nil)
