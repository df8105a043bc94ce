package board

import (
	"strings"

	"github.com/thenoetrevino/kboard/internal/models"
	"golang.org/x/text/cases"
)

// ColumnView is one column of a filtered board
type ColumnView struct {
	Column models.Column
	Tasks  []models.Task
}

// View is a read-only snapshot of the board grouped by column
type View struct {
	Query   string
	Columns []ColumnView
}

// Count returns the number of tasks in the view
func (v View) Count() int {
	n := 0
	for _, c := range v.Columns {
		n += len(c.Tasks)
	}
	return n
}

// Filter groups the tasks whose title or description contains query,
// ignoring case. An empty query matches every task. Column order and task
// order follow the board.
func (b *Board) Filter(query string) View {
	b.mu.Lock()
	columns := append([]models.Column(nil), b.columns...)
	tasks := append([]models.Task(nil), b.tasks...)
	b.mu.Unlock()

	return BuildView(columns, tasks, query)
}

// BuildView groups tasks under columns, keeping those that match query.
// Used for drag previews that are not on the board yet.
func BuildView(columns []models.Column, tasks []models.Task, query string) View {
	match := matcher(query)

	view := View{Query: query, Columns: make([]ColumnView, 0, len(columns))}
	for _, col := range columns {
		cv := ColumnView{Column: col, Tasks: []models.Task{}}
		for _, t := range tasks {
			if t.ColumnID == col.ID && match(t) {
				cv.Tasks = append(cv.Tasks, t)
			}
		}
		view.Columns = append(view.Columns, cv)
	}
	return view
}

// FilterTasks applies the same matching as Filter to an arbitrary task slice
func FilterTasks(tasks []models.Task, query string) []models.Task {
	match := matcher(query)
	out := []models.Task{}
	for _, t := range tasks {
		if match(t) {
			out = append(out, t)
		}
	}
	return out
}

func matcher(query string) func(models.Task) bool {
	query = strings.TrimSpace(query)
	if query == "" {
		return func(models.Task) bool { return true }
	}

	// A Caser keeps state between calls, so each filter gets its own.
	fold := cases.Fold()
	needle := fold.String(query)
	return func(t models.Task) bool {
		return strings.Contains(fold.String(t.Title), needle) ||
			strings.Contains(fold.String(t.Description), needle)
	}
}
