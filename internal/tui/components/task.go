package components

import (
	"strings"

	"charm.land/lipgloss/v2"
	"github.com/muesli/reflow/truncate"
	"github.com/muesli/reflow/wordwrap"
	"github.com/thenoetrevino/kboard/internal/models"
	"github.com/thenoetrevino/kboard/internal/tui/theme"
)

// maxTitleLines caps how tall a card can grow
const maxTitleLines = 3

// CardState selects how a task card is highlighted
type CardState int

const (
	CardNormal CardState = iota
	CardSelected
	CardDragging
)

// RenderTask renders a single task as a card of the given outer width
//
//	┌──────────────────┐
//	│ {Task Title}     │
//	│ [Priority] dates │
//	└──────────────────┘
func RenderTask(task models.Task, state CardState, width int) string {
	inner := max(width-4, 4) // border + padding

	title := wrapTitle(task.Title, inner)
	meta := PriorityBadge(task.Priority) + " " + SubtleStyle.Render(dateRange(task))
	meta = truncate.StringWithTail(meta, uint(inner), "…")

	style := TaskStyle.Width(width)
	switch state {
	case CardSelected:
		style = style.BorderForeground(lipgloss.Color(theme.SelectedBorder))
	case CardDragging:
		style = style.
			Border(lipgloss.DoubleBorder()).
			BorderForeground(lipgloss.Color(theme.DragBorder))
	}

	return style.Render(lipgloss.NewStyle().Bold(true).Render(title) + "\n" + meta)
}

// wrapTitle word-wraps title to width and cuts it at maxTitleLines
func wrapTitle(title string, width int) string {
	if title == "" {
		return SubtleStyle.Render("untitled")
	}
	wrapped := wordwrap.String(title, width)

	lines := strings.Split(strings.TrimRight(wrapped, "\n"), "\n")
	if len(lines) > maxTitleLines {
		lines = lines[:maxTitleLines]
		lines[maxTitleLines-1] = truncate.StringWithTail(lines[maxTitleLines-1]+" …", uint(width), "…")
	}
	for i, l := range lines {
		lines[i] = truncate.String(l, uint(width))
	}
	return strings.Join(lines, "\n")
}

// PriorityBadge renders a priority in its theme color
func PriorityBadge(p models.Priority) string {
	color := theme.PriorityLow
	switch p {
	case models.PriorityMedium:
		color = theme.PriorityMedium
	case models.PriorityHigh:
		color = theme.PriorityHigh
	}
	return lipgloss.NewStyle().Foreground(lipgloss.Color(color)).Render(string(p))
}

func dateRange(task models.Task) string {
	const layout = "Jan 02"
	switch {
	case task.StartDate != nil && task.EndDate != nil:
		return task.StartDate.Format(layout) + " → " + task.EndDate.Format(layout)
	case task.EndDate != nil:
		return "due " + task.EndDate.Format(layout)
	case task.StartDate != nil:
		return "from " + task.StartDate.Format(layout)
	default:
		return ""
	}
}
