package tui

import (
	tea "charm.land/bubbletea/v2"
	"github.com/thenoetrevino/kboard/internal/events"
	"github.com/thenoetrevino/kboard/internal/tui/state"
)

// Update handles all messages and updates the model accordingly
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.UIState.SetWidth(msg.Width)
		m.UIState.SetHeight(msg.Height)
		return m, nil

	case BoardEventMsg:
		m.handleEvent(msg.Event)
		return m, m.subscribe()

	case tea.KeyPressMsg:
		return m, m.handleKey(msg)
	}

	return m, nil
}

// handleEvent reacts to a published board event. Board changes need no
// work beyond the redraw every message triggers.
func (m Model) handleEvent(event events.Event) {
	switch event.Type {
	case events.EventNotice:
		m.Notifications.Add(state.LevelError, event.Message)
	case events.EventBoardChanged:
		if m.UIState.Mode() != state.DragTaskMode && m.UIState.Mode() != state.DragColumnMode {
			m.clampSelection()
		}
	}
}

// handleKey dispatches a key press to the handler for the current mode
func (m Model) handleKey(msg tea.KeyPressMsg) tea.Cmd {
	if msg.String() == "ctrl+c" {
		return tea.Quit
	}

	switch m.UIState.Mode() {
	case state.DragTaskMode:
		return m.handleDragTaskMode(msg)
	case state.DragColumnMode:
		return m.handleDragColumnMode(msg)
	case state.SearchMode:
		return m.handleSearchMode(msg)
	case state.AddColumnMode, state.EditColumnMode, state.EditTaskMode:
		return m.handleInputMode(msg)
	case state.DeleteTaskConfirmMode, state.DeleteColumnConfirmMode:
		return m.handleConfirmMode(msg)
	case state.HelpMode:
		return m.handleHelpMode(msg)
	default:
		return m.handleNormalMode(msg)
	}
}
