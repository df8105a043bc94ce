package state

import (
	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"
	"github.com/thenoetrevino/kboard/internal/types"
)

const inputCharLimit = 200

// InputState holds the single-line prompt used to name columns and retitle
// tasks, plus which element the text is for.
type InputState struct {
	Prompt string
	Input  textinput.Model

	TargetTask   types.TaskID
	TargetColumn types.ColumnID
}

// NewInputState creates an idle InputState.
func NewInputState() *InputState {
	ti := textinput.New()
	ti.CharLimit = inputCharLimit
	return &InputState{Input: ti}
}

// Start resets the input to value and focuses it.
func (s *InputState) Start(prompt, value string) tea.Cmd {
	s.Prompt = prompt
	s.Input.SetValue(value)
	s.Input.CursorEnd()
	return s.Input.Focus()
}

// Update forwards a message to the text input.
func (s *InputState) Update(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	s.Input, cmd = s.Input.Update(msg)
	return cmd
}

// Value returns the current text.
func (s *InputState) Value() string {
	return s.Input.Value()
}

// Reset blurs the input and forgets its target.
func (s *InputState) Reset() {
	s.Prompt = ""
	s.Input.SetValue("")
	s.Input.Blur()
	s.TargetTask = ""
	s.TargetColumn = ""
}
