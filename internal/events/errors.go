package events

import "errors"

var (
	ErrQueueFull = errors.New("event queue full")
	ErrClosed    = errors.New("event bus closed")
)
