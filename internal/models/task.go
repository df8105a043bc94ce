package models

import (
	"time"

	"github.com/thenoetrevino/kboard/internal/types"
)

// Task represents a single card on the board
type Task struct {
	ID          types.TaskID   `json:"id"`
	ColumnID    types.ColumnID `json:"columnId"`
	Title       string         `json:"title"`
	Description string         `json:"description"`
	Priority    Priority       `json:"priority"`
	StartDate   *time.Time     `json:"startDate,omitempty"`
	EndDate     *time.Time     `json:"endDate,omitempty"`
}

// TaskPatch carries a partial update for a task.
// Fields with pointers are optional - nil means don't update.
type TaskPatch struct {
	Title       *string
	Description *string
	Priority    *Priority
	StartDate   *time.Time
	EndDate     *time.Time
}

// IsEmpty reports whether the patch changes nothing
func (p TaskPatch) IsEmpty() bool {
	return p.Title == nil && p.Description == nil && p.Priority == nil &&
		p.StartDate == nil && p.EndDate == nil
}

// Apply returns a copy of t with the patch merged in
func (p TaskPatch) Apply(t Task) Task {
	if p.Title != nil {
		t.Title = *p.Title
	}
	if p.Description != nil {
		t.Description = *p.Description
	}
	if p.Priority != nil {
		t.Priority = *p.Priority
	}
	if p.StartDate != nil {
		start := *p.StartDate
		t.StartDate = &start
	}
	if p.EndDate != nil {
		end := *p.EndDate
		t.EndDate = &end
	}
	return t
}

// TaskIndex returns the position of id within tasks, or -1
func TaskIndex(tasks []Task, id types.TaskID) int {
	for i, t := range tasks {
		if t.ID == id {
			return i
		}
	}
	return -1
}
