package components

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"
	"github.com/thenoetrevino/kboard/internal/models"
	"github.com/thenoetrevino/kboard/internal/types"
	"github.com/thenoetrevino/kboard/internal/tui/theme"
)

// MinColumnWidth is the narrowest a column is drawn
const MinColumnWidth = 24

// ColumnOptions controls highlighting for RenderColumn
type ColumnOptions struct {
	Width  int
	Height int // 0 for auto

	// Selected marks the column holding the cursor
	Selected bool
	// SelectedTask is the cursor row, or -1
	SelectedTask int

	// Dragging is the task currently carried, if any
	Dragging types.TaskID
	// DraggingColumn marks a column that is picked up
	DraggingColumn bool
	// DropTarget marks the column a carried column would land on
	DropTarget bool
}

// RenderColumn renders a complete column with its title and tasks
//
// Layout:
//
//	{Column Name} ({count})
//	{Task 1}
//	{Task 2}
//	...
func RenderColumn(column models.Column, tasks []models.Task, opts ColumnOptions) string {
	width := max(opts.Width, MinColumnWidth)
	cardWidth := width - 4

	var sb strings.Builder
	sb.WriteString(TitleStyle.Render(fmt.Sprintf("%s (%d)", column.Title, len(tasks))))
	sb.WriteString("\n")

	if len(tasks) == 0 {
		sb.WriteString(SubtleStyle.Render("No tasks"))
	}
	for i, task := range tasks {
		state := CardNormal
		switch {
		case task.ID == opts.Dragging:
			state = CardDragging
		case opts.Selected && i == opts.SelectedTask:
			state = CardSelected
		}
		sb.WriteString(RenderTask(task, state, cardWidth))
		if i < len(tasks)-1 {
			sb.WriteString("\n")
		}
	}

	style := ColumnStyle.Width(width)
	switch {
	case opts.DraggingColumn:
		style = style.Border(lipgloss.DoubleBorder()).BorderForeground(lipgloss.Color(theme.DragBorder))
	case opts.DropTarget:
		style = style.Border(lipgloss.DoubleBorder()).BorderForeground(lipgloss.Color(theme.Accent))
	case opts.Selected:
		style = style.BorderForeground(lipgloss.Color(theme.SelectedBorder))
	}
	if opts.Height > 0 {
		style = style.Height(opts.Height - 2)
	}

	return style.Render(sb.String())
}
