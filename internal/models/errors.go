package models

import "errors"

// Domain-specific errors surfaced at the CLI edge
var (
	// ErrNonAdjacentMove indicates a task drag that skips a workflow stage
	ErrNonAdjacentMove = errors.New("move not allowed: only adjacent columns")

	// ErrTaskNotFound indicates that no task has the requested id
	ErrTaskNotFound = errors.New("task not found")

	// ErrColumnNotFound indicates that no column has the requested id
	ErrColumnNotFound = errors.New("column not found")

	// ErrInvalidPriority indicates an unknown priority name
	ErrInvalidPriority = errors.New("invalid priority")
)
