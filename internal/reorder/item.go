package reorder

import "github.com/thenoetrevino/kboard/internal/types"

// Kind tags what a drag item or hover target refers to
type Kind int

const (
	KindColumn Kind = iota + 1
	KindTask
)

// String returns the tag name used by the CLI and logs
func (k Kind) String() string {
	switch k {
	case KindColumn:
		return "column"
	case KindTask:
		return "task"
	default:
		return "unknown"
	}
}

// ParseKind maps "column" / "task" to a Kind
func ParseKind(s string) (Kind, bool) {
	switch s {
	case "column", "Column":
		return KindColumn, true
	case "task", "Task":
		return KindTask, true
	default:
		return 0, false
	}
}

// Item is either the dragged element or the element under the pointer.
// It is resolved once and carries its kind so no caller inspects raw ids.
type Item struct {
	Kind Kind
	ID   string
}

// ColumnItem builds an Item for a column
func ColumnItem(id types.ColumnID) Item {
	return Item{Kind: KindColumn, ID: string(id)}
}

// TaskItem builds an Item for a task
func TaskItem(id types.TaskID) Item {
	return Item{Kind: KindTask, ID: string(id)}
}

// ColumnID returns the id as a column id
func (i Item) ColumnID() types.ColumnID {
	return types.ColumnID(i.ID)
}

// TaskID returns the id as a task id
func (i Item) TaskID() types.TaskID {
	return types.TaskID(i.ID)
}
