package cli

import (
	"time"

	"github.com/thenoetrevino/kboard/internal/models"
)

// TaskOutput is the JSON shape of a task in command output
type TaskOutput struct {
	ID          string     `json:"id"`
	ColumnID    string     `json:"columnId"`
	Column      string     `json:"column"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Priority    string     `json:"priority"`
	StartDate   *time.Time `json:"startDate,omitempty"`
	EndDate     *time.Time `json:"endDate,omitempty"`
}

// GetID implements the quiet-mode id lookup
func (t TaskOutput) GetID() string {
	return t.ID
}

// NewTaskOutput converts a task, resolving its column title from columns
func NewTaskOutput(task models.Task, columns []models.Column) TaskOutput {
	return TaskOutput{
		ID:          string(task.ID),
		ColumnID:    string(task.ColumnID),
		Column:      ColumnTitle(columns, task.ColumnID),
		Title:       task.Title,
		Description: task.Description,
		Priority:    string(task.Priority),
		StartDate:   task.StartDate,
		EndDate:     task.EndDate,
	}
}

// ColumnOutput is the JSON shape of a column in command output
type ColumnOutput struct {
	ID        string `json:"id"`
	Title     string `json:"title"`
	Position  int    `json:"position"`
	TaskCount int    `json:"taskCount"`
}

// GetID implements the quiet-mode id lookup
func (c ColumnOutput) GetID() string {
	return c.ID
}

// NewColumnOutputs converts columns, counting the tasks in each
func NewColumnOutputs(columns []models.Column, tasks []models.Task) []ColumnOutput {
	counts := make(map[string]int, len(columns))
	for _, t := range tasks {
		counts[string(t.ColumnID)]++
	}
	out := make([]ColumnOutput, len(columns))
	for i, col := range columns {
		out[i] = ColumnOutput{
			ID:        string(col.ID),
			Title:     col.Title,
			Position:  i,
			TaskCount: counts[string(col.ID)],
		}
	}
	return out
}
