package models

import "github.com/thenoetrevino/kboard/internal/types"

// Column represents a kanban board column (e.g., "Todo", "Doing", "Done").
// Columns are kept in an ordered slice; the order is the workflow pipeline
// and defines which columns are adjacent.
type Column struct {
	ID    types.ColumnID `json:"id"`
	Title string         `json:"title"`
}

// DefaultColumns returns the four fixed columns in pipeline order
func DefaultColumns() []Column {
	return []Column{
		{ID: types.ColumnUnvalidated, Title: "Unvalidated"},
		{ID: types.ColumnTodo, Title: "Todo"},
		{ID: types.ColumnDoing, Title: "Doing"},
		{ID: types.ColumnDone, Title: "Done"},
	}
}

// ColumnIndex returns the position of id within columns, or -1
func ColumnIndex(columns []Column, id types.ColumnID) int {
	for i, c := range columns {
		if c.ID == id {
			return i
		}
	}
	return -1
}
