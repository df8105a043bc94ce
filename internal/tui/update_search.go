package tui

import (
	tea "charm.land/bubbletea/v2"
	"github.com/thenoetrevino/kboard/internal/tui/state"
)

// handleSearchMode edits the query; the board filters as you type
func (m Model) handleSearchMode(msg tea.KeyPressMsg) tea.Cmd {
	switch msg.String() {
	case "esc":
		m.Search.Clear()
		m.UIState.SetMode(state.NormalMode)
	case "enter":
		if m.Search.Query == "" {
			m.Search.Clear()
		} else {
			m.Search.Activate()
		}
		m.UIState.SetMode(state.NormalMode)
	case "backspace":
		m.Search.Backspace()
	default:
		if msg.Text != "" {
			m.Search.AppendText(msg.Text)
		}
	}

	m.clampSelection()
	return nil
}
