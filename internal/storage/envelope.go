package storage

import (
	"fmt"
	"time"

	"github.com/bytedance/sonic"
	"github.com/thenoetrevino/kboard/internal/models"
	"github.com/thenoetrevino/kboard/internal/types"
)

// CurrentVersion is written into every envelope.
// Version 0 blobs stored each task's text in a single "content" field.
const CurrentVersion = 1

// State is the persisted part of the board
type State struct {
	Columns []models.Column `json:"columns"`
	Tasks   []models.Task   `json:"tasks"`
}

type envelope struct {
	State   State `json:"state"`
	Version int   `json:"version"`
}

// rawEnvelope accepts both the current and the legacy task shape
type rawEnvelope struct {
	State struct {
		Columns []models.Column `json:"columns"`
		Tasks   []rawTask       `json:"tasks"`
	} `json:"state"`
	Version int `json:"version"`
}

type rawTask struct {
	ID          types.TaskID    `json:"id"`
	ColumnID    types.ColumnID  `json:"columnId"`
	Title       string          `json:"title"`
	Description string          `json:"description"`
	Content     string          `json:"content"`
	Priority    models.Priority `json:"priority"`
	StartDate   *time.Time      `json:"startDate"`
	EndDate     *time.Time      `json:"endDate"`
}

// Encode serializes state into the versioned envelope
func Encode(state State) ([]byte, error) {
	if state.Columns == nil {
		state.Columns = []models.Column{}
	}
	if state.Tasks == nil {
		state.Tasks = []models.Task{}
	}
	data, err := sonic.Marshal(envelope{State: state, Version: CurrentVersion})
	if err != nil {
		return nil, fmt.Errorf("failed to encode board: %w", err)
	}
	return data, nil
}

// Decode parses an envelope, migrating legacy versions on the way
func Decode(data []byte) (State, error) {
	var raw rawEnvelope
	if err := sonic.Unmarshal(data, &raw); err != nil {
		return State{}, fmt.Errorf("%w: %v", ErrCorrupt, err)
	}
	if raw.Version > CurrentVersion || raw.Version < 0 {
		return State{}, fmt.Errorf("%w: %d", ErrUnsupportedVersion, raw.Version)
	}

	state := State{
		Columns: raw.State.Columns,
		Tasks:   make([]models.Task, 0, len(raw.State.Tasks)),
	}
	if state.Columns == nil {
		state.Columns = []models.Column{}
	}

	for _, rt := range raw.State.Tasks {
		task := models.Task{
			ID:          rt.ID,
			ColumnID:    rt.ColumnID,
			Title:       rt.Title,
			Description: rt.Description,
			Priority:    rt.Priority,
			StartDate:   rt.StartDate,
			EndDate:     rt.EndDate,
		}
		if raw.Version == 0 && task.Title == "" {
			task.Title = rt.Content
		}
		if !task.Priority.Valid() {
			task.Priority = models.DefaultPriority
		}
		state.Tasks = append(state.Tasks, task)
	}

	return state, nil
}
