package tui

import (
	"strings"

	tea "charm.land/bubbletea/v2"
	"github.com/thenoetrevino/kboard/internal/models"
	"github.com/thenoetrevino/kboard/internal/reorder"
	"github.com/thenoetrevino/kboard/internal/tui/state"
)

// handleNormalMode handles keyboard input in normal navigation mode
func (m Model) handleNormalMode(msg tea.KeyPressMsg) tea.Cmd {
	m.Notifications.Clear()
	km := m.config.KeyMappings

	switch msg.String() {
	case km.Quit:
		return tea.Quit

	case km.PrevColumn, "left":
		m.moveColumnCursor(-1)
	case km.NextColumn, "right":
		m.moveColumnCursor(1)
	case km.PrevTask, "up":
		m.UIState.SetSelectedTask(m.UIState.SelectedTask() - 1)
	case km.NextTask, "down":
		m.UIState.SetSelectedTask(m.UIState.SelectedTask() + 1)
		m.clampSelection()

	case km.AddTask:
		m.addTask()
	case km.EditTask:
		return m.startEditTask()
	case km.DeleteTask:
		if task, ok := m.currentTask(); ok {
			m.Input.TargetTask = task.ID
			m.UIState.SetMode(state.DeleteTaskConfirmMode)
		}
	case km.CyclePriority:
		m.cyclePriority()

	case km.PickUpTask:
		m.pickUpTask()
	case km.PickUpColumn:
		m.pickUpColumn()

	case km.CreateColumn:
		m.UIState.SetMode(state.AddColumnMode)
		return m.Input.Start("New column", "")
	case km.RenameColumn:
		return m.startRenameColumn()
	case km.DeleteColumn:
		if column, ok := m.currentColumn(); ok {
			m.Input.TargetColumn = column.ID
			m.UIState.SetMode(state.DeleteColumnConfirmMode)
		}

	case km.Search:
		m.UIState.SetMode(state.SearchMode)
	case "esc":
		m.Search.Clear()
		m.clampSelection()
	case km.ShowHelp:
		m.UIState.SetMode(state.HelpMode)
	}

	return nil
}

func (m Model) moveColumnCursor(delta int) {
	n := len(m.visible().Columns)
	next := m.UIState.SelectedColumn() + delta
	if next < 0 || next >= n {
		return
	}
	m.UIState.SetSelectedColumn(next)
	m.clampSelection()
}

// addTask creates a task in the selected column and moves the cursor onto it
func (m Model) addTask() {
	column, ok := m.currentColumn()
	if !ok {
		return
	}
	task, err := m.board.AddTask(m.ctx, column.ID)
	if err != nil {
		m.notifyError("Add task", err)
		return
	}
	m.followTask(string(task.ID))
}

func (m Model) cyclePriority() {
	task, ok := m.currentTask()
	if !ok {
		return
	}
	if _, _, err := m.board.CyclePriority(m.ctx, task.ID); err != nil {
		m.notifyError("Change priority", err)
	}
}

func (m Model) startEditTask() tea.Cmd {
	task, ok := m.currentTask()
	if !ok {
		return nil
	}
	m.UIState.SetMode(state.EditTaskMode)
	cmd := m.Input.Start("Task title", task.Title)
	m.Input.TargetTask = task.ID
	return cmd
}

func (m Model) startRenameColumn() tea.Cmd {
	column, ok := m.currentColumn()
	if !ok {
		return nil
	}
	m.UIState.SetMode(state.EditColumnMode)
	cmd := m.Input.Start("Column title", column.Title)
	m.Input.TargetColumn = column.ID
	return cmd
}

// ============================================================================
// Input, confirm and help modes
// ============================================================================

// handleInputMode edits the prompt text; enter commits, esc abandons
func (m Model) handleInputMode(msg tea.KeyPressMsg) tea.Cmd {
	switch msg.String() {
	case "esc":
		m.closeInput()
		return nil
	case "enter":
		m.commitInput()
		m.closeInput()
		return nil
	}
	return m.Input.Update(msg)
}

func (m Model) commitInput() {
	value := strings.TrimSpace(m.Input.Value())

	switch m.UIState.Mode() {
	case state.AddColumnMode:
		column, err := m.board.AddColumn(m.ctx, value)
		if err != nil {
			m.notifyError("Add column", err)
			return
		}
		if i := models.ColumnIndex(m.board.Columns(), column.ID); i >= 0 {
			m.UIState.SetSelectedColumn(i)
			m.UIState.SetSelectedTask(0)
		}
	case state.EditColumnMode:
		if value == "" {
			return
		}
		if err := m.board.UpdateColumn(m.ctx, m.Input.TargetColumn, value); err != nil {
			m.notifyError("Rename column", err)
		}
	case state.EditTaskMode:
		if value == "" {
			return
		}
		patch := models.TaskPatch{Title: &value}
		if err := m.board.UpdateTask(m.ctx, m.Input.TargetTask, patch); err != nil {
			m.notifyError("Edit task", err)
		}
	}
}

func (m Model) closeInput() {
	m.Input.Reset()
	m.UIState.SetMode(state.NormalMode)
	m.clampSelection()
}

// handleConfirmMode answers a delete prompt
func (m Model) handleConfirmMode(msg tea.KeyPressMsg) tea.Cmd {
	switch msg.String() {
	case "y", "Y", "enter":
		var err error
		if m.UIState.Mode() == state.DeleteTaskConfirmMode {
			if err = m.board.DeleteTask(m.ctx, m.Input.TargetTask); err != nil {
				m.notifyError("Delete task", err)
			}
		} else {
			if err = m.board.DeleteColumn(m.ctx, m.Input.TargetColumn); err != nil {
				m.notifyError("Delete column", err)
			}
		}
		m.closeInput()
	case "n", "N", "esc":
		m.closeInput()
	}
	return nil
}

// handleHelpMode closes the help overlay
func (m Model) handleHelpMode(msg tea.KeyPressMsg) tea.Cmd {
	switch msg.String() {
	case m.config.KeyMappings.ShowHelp, m.config.KeyMappings.Quit, "esc":
		m.UIState.SetMode(state.NormalMode)
	}
	return nil
}

// ============================================================================
// Pick up
// ============================================================================

// pickUpTask starts carrying the task under the cursor
func (m Model) pickUpTask() {
	task, ok := m.currentTask()
	if !ok {
		return
	}
	if !m.drag.session.Start(reorder.TaskItem(task.ID), m.board.Columns(), m.board.Tasks()) {
		return
	}
	m.drag.over = nil
	m.UIState.SetMode(state.DragTaskMode)
}

// pickUpColumn starts carrying the column under the cursor
func (m Model) pickUpColumn() {
	column, ok := m.currentColumn()
	if !ok {
		return
	}
	if !m.drag.session.Start(reorder.ColumnItem(column.ID), m.board.Columns(), m.board.Tasks()) {
		return
	}
	m.drag.dropColumn = m.UIState.SelectedColumn()
	m.UIState.SetMode(state.DragColumnMode)
}
