package events

import "time"

// EventType indicates what kind of change occurred
type EventType string

const (
	EventBoardChanged EventType = "board_changed"
	EventNotice       EventType = "notice"
)

// Event is a board change notification
type Event struct {
	Type       EventType
	Message    string    // Notice text, empty for board changes
	Timestamp  time.Time // When the event occurred
	SequenceID int64     // Monotonically increasing sequence number for ordering
}
