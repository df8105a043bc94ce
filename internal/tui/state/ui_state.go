package state

// Mode represents the current interaction mode of the TUI.
// Each mode determines which keyboard shortcuts are active and what UI is displayed.
type Mode int

const (
	NormalMode              Mode = iota // Default navigation mode
	DragTaskMode                        // Carrying a task; navigation keys hover targets
	DragColumnMode                      // Carrying a column
	SearchMode                          // Typing a filter query (/)
	AddColumnMode                       // Naming a new column
	EditColumnMode                      // Renaming an existing column
	EditTaskMode                        // Editing the selected task's title
	DeleteTaskConfirmMode               // Confirming task deletion
	DeleteColumnConfirmMode             // Confirming column deletion
	HelpMode                            // Displaying help screen
)

// String returns a short label for the status bar
func (m Mode) String() string {
	switch m {
	case NormalMode:
		return "NORMAL"
	case DragTaskMode, DragColumnMode:
		return "DRAG"
	case SearchMode:
		return "SEARCH"
	case AddColumnMode, EditColumnMode, EditTaskMode:
		return "INPUT"
	case DeleteTaskConfirmMode, DeleteColumnConfirmMode:
		return "CONFIRM"
	case HelpMode:
		return "HELP"
	default:
		return "?"
	}
}

// UIState manages the user interface state: the cursor position, terminal
// dimensions and the current interaction mode.
type UIState struct {
	// selectedColumn is the index of the currently selected column
	selectedColumn int

	// selectedTask is the index of the selected task within the selected column
	selectedTask int

	width  int
	height int

	mode Mode
}

// NewUIState creates a new UIState with default values.
func NewUIState() *UIState {
	return &UIState{mode: NormalMode}
}

func (s *UIState) SelectedColumn() int { return s.selectedColumn }
func (s *UIState) SelectedTask() int   { return s.selectedTask }
func (s *UIState) Width() int          { return s.width }
func (s *UIState) Height() int         { return s.height }
func (s *UIState) Mode() Mode          { return s.mode }

func (s *UIState) SetSelectedColumn(i int) { s.selectedColumn = max(i, 0) }
func (s *UIState) SetSelectedTask(i int)   { s.selectedTask = max(i, 0) }
func (s *UIState) SetWidth(w int)          { s.width = w }
func (s *UIState) SetHeight(h int)         { s.height = h }
func (s *UIState) SetMode(m Mode)          { s.mode = m }

// Clamp pulls the cursor back inside a board with columnCount columns, where
// taskCount reports how many tasks column i shows.
func (s *UIState) Clamp(columnCount int, taskCount func(i int) int) {
	if columnCount == 0 {
		s.selectedColumn, s.selectedTask = 0, 0
		return
	}
	s.selectedColumn = min(s.selectedColumn, columnCount-1)

	n := taskCount(s.selectedColumn)
	if n == 0 {
		s.selectedTask = 0
		return
	}
	s.selectedTask = min(s.selectedTask, n-1)
}
