package models

import (
	"fmt"
	"strings"
)

// Priority is the urgency of a task
type Priority string

const (
	PriorityLow    Priority = "Low"
	PriorityMedium Priority = "Medium"
	PriorityHigh   Priority = "High"
)

// DefaultPriority is assigned to new tasks
const DefaultPriority = PriorityLow

// Priorities lists every priority in cycle order
var Priorities = []Priority{PriorityLow, PriorityMedium, PriorityHigh}

// Next returns the following priority, wrapping High back to Low.
// Unknown values restart the cycle at Low.
func (p Priority) Next() Priority {
	for i, candidate := range Priorities {
		if candidate == p {
			return Priorities[(i+1)%len(Priorities)]
		}
	}
	return PriorityLow
}

// Valid reports whether p is one of the known priorities
func (p Priority) Valid() bool {
	for _, candidate := range Priorities {
		if candidate == p {
			return true
		}
	}
	return false
}

// ParsePriority maps a case-insensitive name to its Priority
func ParsePriority(s string) (Priority, error) {
	for _, candidate := range Priorities {
		if strings.EqualFold(strings.TrimSpace(s), string(candidate)) {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("%w: %q (must be: low, medium, high)", ErrInvalidPriority, s)
}
