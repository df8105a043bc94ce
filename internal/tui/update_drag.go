package tui

import (
	"log/slog"

	tea "charm.land/bubbletea/v2"
	"github.com/thenoetrevino/kboard/internal/models"
	"github.com/thenoetrevino/kboard/internal/reorder"
	"github.com/thenoetrevino/kboard/internal/tui/state"
)

// ============================================================================
// Task drag
// ============================================================================

// handleDragTaskMode steers a carried task. Column keys hover the
// neighbouring column, task keys hover the neighbouring card.
func (m Model) handleDragTaskMode(msg tea.KeyPressMsg) tea.Cmd {
	km := m.config.KeyMappings

	switch msg.String() {
	case km.PrevColumn, "left":
		m.hoverColumn(-1)
	case km.NextColumn, "right":
		m.hoverColumn(1)
	case km.PrevTask, "up":
		m.hoverTask(-1)
	case km.NextTask, "down":
		m.hoverTask(1)
	case km.PickUpTask, "enter":
		m.dropTask()
	case km.Cancel, "esc":
		m.cancelDrag()
	}
	return nil
}

// draggedTask locates the carried task in the preview
func (m Model) draggedTask() (models.Task, int, bool) {
	active, ok := m.drag.session.Active()
	if !ok {
		return models.Task{}, -1, false
	}
	tasks := m.drag.session.Tasks()
	idx := models.TaskIndex(tasks, active.TaskID())
	if idx < 0 {
		return models.Task{}, -1, false
	}
	task := tasks[idx]
	return task, models.ColumnIndex(m.drag.session.Columns(), task.ColumnID), true
}

// hoverColumn hovers the column delta steps from the task's preview column
func (m Model) hoverColumn(delta int) {
	task, ci, ok := m.draggedTask()
	if !ok {
		return
	}
	columns := m.drag.session.Columns()
	target := ci + delta
	if target < 0 || target >= len(columns) {
		return
	}
	m.hover(task, reorder.ColumnItem(columns[target].ID))
}

// hoverTask hovers the card delta rows away in the displayed column
func (m Model) hoverTask(delta int) {
	task, ci, ok := m.draggedTask()
	if !ok {
		return
	}
	view := m.visible()
	if ci < 0 || ci >= len(view.Columns) {
		return
	}
	cards := view.Columns[ci].Tasks
	row := models.TaskIndex(cards, task.ID)
	if row < 0 {
		return
	}
	target := row + delta
	if target < 0 || target >= len(cards) {
		return
	}
	m.hover(task, reorder.TaskItem(cards[target].ID))
}

func (m Model) hover(task models.Task, target reorder.Item) {
	m.drag.session.Leave()
	result := m.drag.session.Over(target)
	m.drag.over = &target

	if result.Notice != nil {
		slog.Debug("hover rejected", "task", task.ID, "target", target.ID)
		m.Notifications.Add(state.LevelError, result.Notice.Message)
	}
	m.followTask(string(task.ID))
}

// dropTask releases the carried task over the last hovered target
func (m Model) dropTask() {
	active, _ := m.drag.session.Active()

	var outcome reorder.Outcome
	if m.drag.over == nil {
		outcome = m.drag.session.Cancel()
	} else {
		outcome = m.drag.session.End(m.drag.over)
	}
	m.finishDrag(outcome)
	m.followTask(active.ID)
}

// cancelDrag abandons any gesture and restores the board view
func (m Model) cancelDrag() {
	active, _ := m.drag.session.Active()
	m.finishDrag(m.drag.session.Cancel())
	if active.Kind == reorder.KindTask {
		m.followTask(active.ID)
	}
}

func (m Model) finishDrag(outcome reorder.Outcome) {
	m.drag.over = nil
	m.UIState.SetMode(state.NormalMode)

	if err := m.board.ApplyOutcome(m.ctx, outcome); err != nil {
		m.notifyError("Move", err)
	}
}

// ============================================================================
// Column drag
// ============================================================================

// handleDragColumnMode moves the drop marker for a carried column
func (m Model) handleDragColumnMode(msg tea.KeyPressMsg) tea.Cmd {
	km := m.config.KeyMappings
	columns := m.drag.session.Columns()

	switch msg.String() {
	case km.PrevColumn, "left":
		if m.drag.dropColumn > 0 {
			m.drag.dropColumn--
		}
	case km.NextColumn, "right":
		if m.drag.dropColumn < len(columns)-1 {
			m.drag.dropColumn++
		}
	case km.PickUpColumn, km.PickUpTask, "enter":
		if m.drag.dropColumn < 0 || m.drag.dropColumn >= len(columns) {
			m.cancelDrag()
			return nil
		}
		target := reorder.ColumnItem(columns[m.drag.dropColumn].ID)
		m.finishDrag(m.drag.session.End(&target))
		m.UIState.SetSelectedColumn(m.drag.dropColumn)
		m.clampSelection()
	case km.Cancel, "esc":
		m.cancelDrag()
	}
	return nil
}
