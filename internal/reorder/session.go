package reorder

import (
	"github.com/thenoetrevino/kboard/internal/models"
	"github.com/thenoetrevino/kboard/internal/types"
)

// State is the phase of a drag gesture
type State int

const (
	StateIdle State = iota
	StateDraggingColumn
	StateDraggingTask
)

// Result describes what a single hover did to the preview
type Result struct {
	Changed bool
	Notice  *models.Notice // set when the hover was rejected
}

// Outcome is the final result of a gesture.
// Committed is false when the gesture was cancelled or changed nothing;
// in that case Columns and Tasks equal the pre-drag snapshot.
type Outcome struct {
	Kind      Kind
	Columns   []models.Column
	Tasks     []models.Task
	Committed bool
	Notice    *models.Notice
}

// Session tracks one drag gesture from pick-up to drop.
//
// Start snapshots the board. Hovering mutates only the session's working
// copy, so previews can be rendered without touching the board. End hands
// back the working copy for the caller to commit; Cancel throws it away.
type Session struct {
	state  State
	active Item

	// origin is the dragged task's column when the gesture started.
	// The adjacency rule is measured from here, so one gesture can move a
	// task at most one column away no matter how many hovers happen.
	origin types.ColumnID

	baseColumns []models.Column
	baseTasks   []models.Task

	columns []models.Column
	tasks   []models.Task

	lastOver *Item
	notice   *models.Notice
}

// NewSession returns an idle session
func NewSession() *Session {
	return &Session{state: StateIdle}
}

// State returns the current gesture phase
func (s *Session) State() State {
	return s.state
}

// Active returns the dragged item; ok is false while idle
func (s *Session) Active() (Item, bool) {
	if s.state == StateIdle {
		return Item{}, false
	}
	return s.active, true
}

// Origin returns the column the dragged task started in
func (s *Session) Origin() types.ColumnID {
	return s.origin
}

// Columns returns the preview column order
func (s *Session) Columns() []models.Column {
	return append([]models.Column(nil), s.columns...)
}

// Tasks returns the preview task sequence
func (s *Session) Tasks() []models.Task {
	return append([]models.Task(nil), s.tasks...)
}

// Start begins a gesture for item over the given board snapshot.
// It returns false (and stays idle) when a gesture is already running or
// the item does not exist.
func (s *Session) Start(item Item, columns []models.Column, tasks []models.Task) bool {
	if s.state != StateIdle {
		return false
	}

	switch item.Kind {
	case KindColumn:
		if models.ColumnIndex(columns, item.ColumnID()) < 0 {
			return false
		}
		s.state = StateDraggingColumn
		s.origin = ""
	case KindTask:
		idx := models.TaskIndex(tasks, item.TaskID())
		if idx < 0 {
			return false
		}
		s.state = StateDraggingTask
		s.origin = tasks[idx].ColumnID
	default:
		return false
	}

	s.active = item
	s.baseColumns = append([]models.Column(nil), columns...)
	s.baseTasks = append([]models.Task(nil), tasks...)
	s.columns = append([]models.Column(nil), columns...)
	s.tasks = append([]models.Task(nil), tasks...)
	s.lastOver = nil
	s.notice = nil
	return true
}

// Over is called whenever the element under the pointer changes.
// Only task drags react; column drags are resolved on End.
// Hovering the same target twice in a row is a no-op.
func (s *Session) Over(target Item) Result {
	if s.state != StateDraggingTask {
		return Result{}
	}
	if s.lastOver != nil && *s.lastOver == target {
		return Result{}
	}
	over := target
	s.lastOver = &over

	next, notice := moveTask(s.columns, s.tasks, s.active.TaskID(), s.origin, target)
	if notice != nil {
		s.notice = notice
		return Result{Notice: notice}
	}
	if next == nil {
		return Result{}
	}

	s.tasks = next
	return Result{Changed: true}
}

// Leave records that the pointer is over no target, so the next Over is
// never treated as a repeat. Keyboard drags call it before each step.
func (s *Session) Leave() {
	s.lastOver = nil
}

// End finishes the gesture. A nil target means the item was released
// outside any drop target, which cancels the gesture.
func (s *Session) End(target *Item) Outcome {
	defer s.reset()

	switch s.state {
	case StateDraggingColumn:
		if target == nil {
			return s.cancelled(KindColumn)
		}
		next := moveColumn(s.columns, s.tasks, s.active.ColumnID(), *target)
		if next == nil {
			return s.cancelled(KindColumn)
		}
		return Outcome{Kind: KindColumn, Columns: next, Tasks: s.baseTasks, Committed: true}

	case StateDraggingTask:
		if target == nil {
			return s.cancelled(KindTask)
		}
		if s.lastOver == nil || *s.lastOver != *target {
			s.Over(*target)
		}
		if tasksEqual(s.tasks, s.baseTasks) {
			return s.cancelled(KindTask)
		}
		return Outcome{Kind: KindTask, Columns: s.baseColumns, Tasks: s.tasks, Committed: true, Notice: s.notice}

	default:
		return Outcome{}
	}
}

// Cancel abandons the gesture and returns the untouched snapshot
func (s *Session) Cancel() Outcome {
	defer s.reset()

	switch s.state {
	case StateDraggingColumn:
		return s.cancelled(KindColumn)
	case StateDraggingTask:
		return s.cancelled(KindTask)
	default:
		return Outcome{}
	}
}

func (s *Session) cancelled(kind Kind) Outcome {
	return Outcome{Kind: kind, Columns: s.baseColumns, Tasks: s.baseTasks, Notice: s.notice}
}

func (s *Session) reset() {
	s.state = StateIdle
	s.active = Item{}
	s.origin = ""
	s.baseColumns = nil
	s.baseTasks = nil
	s.columns = nil
	s.tasks = nil
	s.lastOver = nil
	s.notice = nil
}

// Drag runs a complete gesture in one call: pick up item, hover target and
// drop it there. Used by the CLI where there is no live pointer.
func Drag(columns []models.Column, tasks []models.Task, item, target Item) Outcome {
	s := NewSession()
	if !s.Start(item, columns, tasks) {
		return Outcome{Kind: item.Kind, Columns: columns, Tasks: tasks}
	}
	return s.End(&target)
}

func tasksEqual(a, b []models.Task) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i].ID != b[i].ID || a[i].ColumnID != b[i].ColumnID {
			return false
		}
	}
	return true
}
