// Package board holds the kanban state: the ordered columns and tasks, and
// every operation that changes them.
package board

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/thenoetrevino/kboard/internal/events"
	"github.com/thenoetrevino/kboard/internal/models"
	"github.com/thenoetrevino/kboard/internal/reorder"
	"github.com/thenoetrevino/kboard/internal/storage"
	"github.com/thenoetrevino/kboard/internal/types"
)

const publishRetries = 3

// Board owns the columns and tasks.
//
// Every mutation builds fresh slices and swaps them in; a slice handed out
// by a read accessor is never modified afterwards. Committed changes are
// saved to the store (when one is configured) and announced on the publisher.
type Board struct {
	mu      sync.Mutex
	columns []models.Column
	tasks   []models.Task

	store       *storage.Store
	publisher   events.EventPublisher
	entryColumn types.ColumnID
	now         func() time.Time
	newID       func() string
}

// New returns a board with the default columns and no tasks
func New(opts ...Option) *Board {
	b := &Board{
		columns:     models.DefaultColumns(),
		tasks:       []models.Task{},
		entryColumn: models.DefaultEntryColumn,
		now:         time.Now,
		newID:       defaultID,
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// Load rehydrates a board from store, falling back to defaults when nothing
// has been saved yet.
func Load(ctx context.Context, store *storage.Store, opts ...Option) (*Board, error) {
	b := New(append([]Option{WithStore(store)}, opts...)...)

	state, found, err := store.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load board: %w", err)
	}
	if !found {
		slog.Info("no saved board, starting with defaults")
		return b, nil
	}

	if len(state.Columns) > 0 {
		b.columns = state.Columns
	}
	b.tasks = state.Tasks
	if b.tasks == nil {
		b.tasks = []models.Task{}
	}
	return b, nil
}

// ============================================================================
// Read access
// ============================================================================

// Columns returns a copy of the column sequence
func (b *Board) Columns() []models.Column {
	b.mu.Lock()
	defer b.mu.Unlock()
	return append([]models.Column(nil), b.columns...)
}

// Tasks returns a copy of the task sequence
func (b *Board) Tasks() []models.Task {
	b.mu.Lock()
	defer b.mu.Unlock()
	return append([]models.Task(nil), b.tasks...)
}

// Task looks up a task by id
func (b *Board) Task(id types.TaskID) (models.Task, bool) {
	b.mu.Lock()
	defer b.mu.Unlock()
	idx := models.TaskIndex(b.tasks, id)
	if idx < 0 {
		return models.Task{}, false
	}
	return b.tasks[idx], true
}

// Column looks up a column by id
func (b *Board) Column(id types.ColumnID) (models.Column, bool) {
	b.mu.Lock()
	defer b.mu.Unlock()
	idx := models.ColumnIndex(b.columns, id)
	if idx < 0 {
		return models.Column{}, false
	}
	return b.columns[idx], true
}

// TasksInColumn returns the tasks of one column in display order
func (b *Board) TasksInColumn(id types.ColumnID) []models.Task {
	b.mu.Lock()
	defer b.mu.Unlock()
	return tasksIn(b.tasks, id)
}

// EntryColumn is the column AddTask uses by default
func (b *Board) EntryColumn() types.ColumnID {
	return b.entryColumn
}

func tasksIn(tasks []models.Task, id types.ColumnID) []models.Task {
	out := []models.Task{}
	for _, t := range tasks {
		if t.ColumnID == id {
			out = append(out, t)
		}
	}
	return out
}

// ============================================================================
// Sequence replacement
// ============================================================================

// SetColumns replaces the column sequence wholesale
func (b *Board) SetColumns(ctx context.Context, columns []models.Column) error {
	next := append([]models.Column{}, columns...)
	return b.mutate(ctx, "set columns", func(_ []models.Column, tasks []models.Task) ([]models.Column, []models.Task, bool) {
		return next, tasks, true
	})
}

// SetTasks replaces the task sequence wholesale
func (b *Board) SetTasks(ctx context.Context, tasks []models.Task) error {
	next := append([]models.Task{}, tasks...)
	return b.mutate(ctx, "set tasks", func(columns []models.Column, _ []models.Task) ([]models.Column, []models.Task, bool) {
		return columns, next, true
	})
}

// Reset restores the default columns and drops every task
func (b *Board) Reset(ctx context.Context) error {
	return b.mutate(ctx, "reset", func(_ []models.Column, _ []models.Task) ([]models.Column, []models.Task, bool) {
		return models.DefaultColumns(), []models.Task{}, true
	})
}

// ============================================================================
// Tasks
// ============================================================================

// AddTask appends a new task to columnID (the entry column when empty).
// The task is titled after the task count and spans DefaultTaskDuration
// from now.
func (b *Board) AddTask(ctx context.Context, columnID types.ColumnID) (models.Task, error) {
	return b.AddTaskWith(ctx, columnID, models.TaskPatch{})
}

// AddTaskWith is AddTask with patch applied over the defaults before the
// task is committed, so the board is saved once.
func (b *Board) AddTaskWith(ctx context.Context, columnID types.ColumnID, patch models.TaskPatch) (models.Task, error) {
	if columnID == "" {
		columnID = b.entryColumn
	}

	var created models.Task
	err := b.mutate(ctx, "add task", func(columns []models.Column, tasks []models.Task) ([]models.Column, []models.Task, bool) {
		if models.ColumnIndex(columns, columnID) < 0 {
			return nil, nil, false
		}

		start := b.now().UTC().Truncate(time.Second)
		end := start.Add(models.DefaultTaskDuration)
		created = models.Task{
			ID:        types.TaskID(b.newID()),
			ColumnID:  columnID,
			Title:     fmt.Sprintf(models.DefaultTaskTitleFormat, len(tasks)+1),
			Priority:  models.DefaultPriority,
			StartDate: &start,
			EndDate:   &end,
		}
		created = patch.Apply(created)
		if !created.Priority.Valid() {
			created.Priority = models.DefaultPriority
		}

		next := make([]models.Task, 0, len(tasks)+1)
		next = append(next, tasks...)
		next = append(next, created)
		return columns, next, true
	})
	if err != nil {
		return created, err
	}
	if created.ID == "" {
		return models.Task{}, fmt.Errorf("%w: %s", models.ErrColumnNotFound, columnID)
	}
	return created, nil
}

// DeleteTask removes a task. Unknown ids are ignored.
func (b *Board) DeleteTask(ctx context.Context, id types.TaskID) error {
	return b.mutate(ctx, "delete task", func(columns []models.Column, tasks []models.Task) ([]models.Column, []models.Task, bool) {
		idx := models.TaskIndex(tasks, id)
		if idx < 0 {
			return nil, nil, false
		}
		next := make([]models.Task, 0, len(tasks)-1)
		next = append(next, tasks[:idx]...)
		next = append(next, tasks[idx+1:]...)
		return columns, next, true
	})
}

// UpdateTask merges patch into a task. Unknown ids and empty patches are
// ignored.
func (b *Board) UpdateTask(ctx context.Context, id types.TaskID, patch models.TaskPatch) error {
	if patch.IsEmpty() {
		return nil
	}
	return b.mutate(ctx, "update task", func(columns []models.Column, tasks []models.Task) ([]models.Column, []models.Task, bool) {
		idx := models.TaskIndex(tasks, id)
		if idx < 0 {
			return nil, nil, false
		}
		next := append([]models.Task(nil), tasks...)
		next[idx] = patch.Apply(next[idx])
		return columns, next, true
	})
}

// UpdateTaskPriority sets a task's priority
func (b *Board) UpdateTaskPriority(ctx context.Context, id types.TaskID, priority models.Priority) error {
	return b.UpdateTask(ctx, id, models.TaskPatch{Priority: &priority})
}

// CyclePriority advances a task's priority Low -> Medium -> High -> Low and
// returns the new value. ok is false when the task does not exist.
func (b *Board) CyclePriority(ctx context.Context, id types.TaskID) (priority models.Priority, ok bool, err error) {
	err = b.mutate(ctx, "cycle priority", func(columns []models.Column, tasks []models.Task) ([]models.Column, []models.Task, bool) {
		idx := models.TaskIndex(tasks, id)
		if idx < 0 {
			return nil, nil, false
		}
		next := append([]models.Task(nil), tasks...)
		next[idx].Priority = next[idx].Priority.Next()
		priority, ok = next[idx].Priority, true
		return columns, next, true
	})
	return priority, ok, err
}

// ============================================================================
// Columns
// ============================================================================

// AddColumn appends a column. A blank title becomes "Column N".
func (b *Board) AddColumn(ctx context.Context, title string) (models.Column, error) {
	var created models.Column
	err := b.mutate(ctx, "add column", func(columns []models.Column, tasks []models.Task) ([]models.Column, []models.Task, bool) {
		name := strings.TrimSpace(title)
		if name == "" {
			name = fmt.Sprintf(models.DefaultColumnTitleFormat, len(columns)+1)
		}
		created = models.Column{ID: types.ColumnID(b.newID()), Title: name}

		next := make([]models.Column, 0, len(columns)+1)
		next = append(next, columns...)
		next = append(next, created)
		return next, tasks, true
	})
	return created, err
}

// UpdateColumn renames a column. Unknown ids are ignored.
func (b *Board) UpdateColumn(ctx context.Context, id types.ColumnID, title string) error {
	return b.mutate(ctx, "update column", func(columns []models.Column, tasks []models.Task) ([]models.Column, []models.Task, bool) {
		idx := models.ColumnIndex(columns, id)
		if idx < 0 {
			return nil, nil, false
		}
		next := append([]models.Column(nil), columns...)
		next[idx].Title = title
		return next, tasks, true
	})
}

// DeleteColumn removes a column together with its tasks. Unknown ids are
// ignored.
func (b *Board) DeleteColumn(ctx context.Context, id types.ColumnID) error {
	return b.mutate(ctx, "delete column", func(columns []models.Column, tasks []models.Task) ([]models.Column, []models.Task, bool) {
		idx := models.ColumnIndex(columns, id)
		if idx < 0 {
			return nil, nil, false
		}
		nextColumns := make([]models.Column, 0, len(columns)-1)
		nextColumns = append(nextColumns, columns[:idx]...)
		nextColumns = append(nextColumns, columns[idx+1:]...)

		nextTasks := make([]models.Task, 0, len(tasks))
		for _, t := range tasks {
			if t.ColumnID != id {
				nextTasks = append(nextTasks, t)
			}
		}
		return nextColumns, nextTasks, true
	})
}

// ============================================================================
// Drag gestures
// ============================================================================

// ApplyOutcome commits the result of a finished drag session. Cancelled or
// no-op outcomes are ignored. A notice on the outcome is published either
// way.
func (b *Board) ApplyOutcome(ctx context.Context, outcome reorder.Outcome) error {
	if outcome.Notice != nil {
		b.publish(events.Event{Type: events.EventNotice, Message: outcome.Notice.Message})
	}
	if !outcome.Committed {
		return nil
	}

	switch outcome.Kind {
	case reorder.KindColumn:
		return b.SetColumns(ctx, outcome.Columns)
	case reorder.KindTask:
		return b.SetTasks(ctx, outcome.Tasks)
	default:
		return nil
	}
}

// Drag runs a one-shot gesture against the current state: pick up item,
// drop it on target, commit the result.
func (b *Board) Drag(ctx context.Context, item, target reorder.Item) (reorder.Outcome, error) {
	b.mu.Lock()
	columns := append([]models.Column(nil), b.columns...)
	tasks := append([]models.Task(nil), b.tasks...)
	b.mu.Unlock()

	outcome := reorder.Drag(columns, tasks, item, target)
	if err := b.ApplyOutcome(ctx, outcome); err != nil {
		return outcome, err
	}
	return outcome, nil
}

// ============================================================================
// Commit
// ============================================================================

// mutate runs fn against the current sequences. fn must not modify its
// arguments; it returns replacement slices and whether anything changed.
func (b *Board) mutate(ctx context.Context, op string, fn func([]models.Column, []models.Task) ([]models.Column, []models.Task, bool)) error {
	b.mu.Lock()
	columns, tasks, changed := fn(b.columns, b.tasks)
	if !changed {
		b.mu.Unlock()
		return nil
	}
	b.columns, b.tasks = columns, normalizeTasks(tasks)
	err := b.saveLocked(ctx)
	b.mu.Unlock()

	b.publish(events.Event{Type: events.EventBoardChanged})

	if err != nil {
		slog.Error("failed to persist board", "op", op, "error", err)
		return fmt.Errorf("failed to save board after %s: %w", op, err)
	}
	return nil
}

// normalizeTasks gives tasks with an unknown priority the default one, the
// same way a saved board is decoded, so memory always matches storage.
// tasks is copied before any change.
func normalizeTasks(tasks []models.Task) []models.Task {
	var out []models.Task
	for i, t := range tasks {
		if t.Priority.Valid() {
			continue
		}
		if out == nil {
			out = append([]models.Task(nil), tasks...)
		}
		out[i].Priority = models.DefaultPriority
	}
	if out == nil {
		return tasks
	}
	return out
}

func (b *Board) saveLocked(ctx context.Context) error {
	if b.store == nil {
		return nil
	}
	return b.store.Save(ctx, storage.State{Columns: b.columns, Tasks: b.tasks})
}

func (b *Board) publish(event events.Event) {
	if b.publisher == nil {
		return
	}
	if err := events.PublishWithRetry(b.publisher, event, publishRetries); err != nil {
		slog.Debug("board event not delivered", "event_type", event.Type, "error", err)
	}
}
