package tui

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"github.com/thenoetrevino/kboard/internal/tui/components"
	"github.com/thenoetrevino/kboard/internal/tui/notifications"
	"github.com/thenoetrevino/kboard/internal/tui/state"
	"github.com/thenoetrevino/kboard/internal/types"
)

const (
	modalWidth   = 50
	columnGap    = 1
	headerHeight = 2
)

// View renders the board with the active modal layered on top
func (m Model) View() tea.View {
	var view tea.View
	view.AltScreen = true

	if m.UIState.Width() == 0 {
		view.Content = "Loading..."
		return view
	}

	layers := []*lipgloss.Layer{lipgloss.NewLayer(m.renderBase())}
	if modal := m.renderModal(); modal != "" {
		layers = append(layers, centeredLayer(modal, m.UIState.Width(), m.UIState.Height()))
	}

	canvas := lipgloss.NewCanvas(layers...)
	view.Content = canvas.Render()
	return view
}

// centeredLayer positions content in the middle of the screen
func centeredLayer(content string, screenWidth, screenHeight int) *lipgloss.Layer {
	x := max((screenWidth-lipgloss.Width(content))/2, 0)
	y := max((screenHeight-lipgloss.Height(content))/2, 0)
	return lipgloss.NewLayer(content).X(x).Y(y)
}

// renderBase draws header, columns and status bar, clipped to the terminal
func (m Model) renderBase() string {
	header := components.TitleStyle.Render("kboard")
	if line := m.searchLine(); line != "" {
		header += "  " + line
	}

	content := lipgloss.JoinVertical(lipgloss.Left, header, "", m.renderColumns())

	lines := strings.Split(content, "\n")
	maxLines := max(m.UIState.Height()-1, 1)
	if len(lines) > maxLines {
		lines = lines[:maxLines]
	}

	return strings.Join(lines, "\n") + "\n" + m.renderStatusBar()
}

func (m Model) searchLine() string {
	switch {
	case m.UIState.Mode() == state.SearchMode:
		return "/" + m.Search.Query + "_"
	case m.Search.IsActive:
		return components.SubtleStyle.Render("filter: " + m.Search.Query + "  (esc to clear)")
	default:
		return ""
	}
}

// renderColumns lays the visible columns out side by side
func (m Model) renderColumns() string {
	view := m.visible()
	if len(view.Columns) == 0 {
		return components.SubtleStyle.Render("No columns. Press " + m.config.KeyMappings.CreateColumn + " to add one.")
	}

	n := len(view.Columns)
	width := max((m.UIState.Width()-columnGap*(n-1))/n, components.MinColumnWidth)
	height := max(m.UIState.Height()-headerHeight-1, 0)

	mode := m.UIState.Mode()
	var dragging types.TaskID
	var draggingColumn types.ColumnID
	if active, ok := m.drag.session.Active(); ok {
		if mode == state.DragTaskMode {
			dragging = active.TaskID()
		} else {
			draggingColumn = active.ColumnID()
		}
	}

	rendered := make([]string, 0, n*2)
	for i, cv := range view.Columns {
		opts := components.ColumnOptions{
			Width:          width,
			Height:         height,
			Selected:       i == m.UIState.SelectedColumn(),
			SelectedTask:   m.UIState.SelectedTask(),
			Dragging:       dragging,
			DraggingColumn: mode == state.DragColumnMode && cv.Column.ID == draggingColumn,
			DropTarget:     mode == state.DragColumnMode && i == m.drag.dropColumn && cv.Column.ID != draggingColumn,
		}
		if i > 0 {
			rendered = append(rendered, strings.Repeat(" ", columnGap))
		}
		rendered = append(rendered, components.RenderColumn(cv.Column, cv.Tasks, opts))
	}

	return lipgloss.JoinHorizontal(lipgloss.Top, rendered...)
}

// renderStatusBar shows the mode, a key hint and the newest notification
func (m Model) renderStatusBar() string {
	km := m.config.KeyMappings

	var hint string
	switch m.UIState.Mode() {
	case state.DragTaskMode:
		hint = fmt.Sprintf("%s/%s column  %s/%s position  %s drop  %s cancel",
			km.PrevColumn, km.NextColumn, km.PrevTask, km.NextTask, km.PickUpTask, km.Cancel)
	case state.DragColumnMode:
		hint = fmt.Sprintf("%s/%s move  %s drop  %s cancel", km.PrevColumn, km.NextColumn, km.PickUpColumn, km.Cancel)
	case state.SearchMode:
		hint = "enter apply  esc clear"
	default:
		hint = fmt.Sprintf("%s help  %s quit", km.ShowHelp, km.Quit)
	}

	bar := components.StatusBarStyle.Render(m.UIState.Mode().String() + "  " + hint)

	all := m.Notifications.All()
	if len(all) == 0 {
		return bar
	}
	return bar + "  " + notifications.RenderInlineFromState(all[len(all)-1])
}

// renderModal returns the overlay for the current mode, or ""
func (m Model) renderModal() string {
	switch m.UIState.Mode() {
	case state.AddColumnMode, state.EditColumnMode, state.EditTaskMode:
		return components.InputBoxStyle.
			Width(modalWidth).
			Render(m.Input.Prompt + "\n\n" + m.Input.Input.View() + "\n\n" +
				components.SubtleStyle.Render("enter save  esc cancel"))

	case state.DeleteTaskConfirmMode:
		title := string(m.Input.TargetTask)
		if task, ok := m.board.Task(m.Input.TargetTask); ok {
			title = task.Title
		}
		return components.DeleteConfirmBoxStyle.
			Width(modalWidth).
			Render(fmt.Sprintf("Delete '%s'?\n\n[y]es  [n]o", title))

	case state.DeleteColumnConfirmMode:
		column, ok := m.board.Column(m.Input.TargetColumn)
		if !ok {
			return ""
		}
		content := fmt.Sprintf("Delete column '%s'?\n\n[y]es  [n]o", column.Title)
		if count := len(m.board.TasksInColumn(column.ID)); count > 0 {
			content = fmt.Sprintf("Delete column '%s'?\nThis will also delete %d task(s).\n\n[y]es  [n]o", column.Title, count)
		}
		return components.DeleteConfirmBoxStyle.Width(modalWidth).Render(content)

	case state.HelpMode:
		return components.RenderHelp(m.config.KeyMappings)
	}

	return ""
}
