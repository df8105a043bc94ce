package tui

import (
	"context"
	"log/slog"

	tea "charm.land/bubbletea/v2"
	"github.com/thenoetrevino/kboard/internal/board"
	"github.com/thenoetrevino/kboard/internal/config"
	"github.com/thenoetrevino/kboard/internal/events"
	"github.com/thenoetrevino/kboard/internal/models"
	"github.com/thenoetrevino/kboard/internal/reorder"
	"github.com/thenoetrevino/kboard/internal/tui/components"
	"github.com/thenoetrevino/kboard/internal/tui/state"
	"github.com/thenoetrevino/kboard/internal/tui/theme"
)

// Model represents the application state for the TUI
type Model struct {
	ctx    context.Context
	board  *board.Board
	config *config.Config

	// EventChan delivers board changes and notices; nil when running without
	// a publisher
	EventChan <-chan events.Event

	UIState       *state.UIState
	Notifications *state.NotificationState
	Search        *state.SearchState
	Input         *state.InputState

	drag *dragState
}

// dragState is the keyboard drag in progress
type dragState struct {
	session *reorder.Session
	// over is the last hover target of a task drag
	over *reorder.Item
	// dropColumn is where a carried column would land
	dropColumn int
}

// New builds the model. When publisher is non-nil the model listens to it
// until ctx is done.
func New(ctx context.Context, b *board.Board, cfg *config.Config, publisher events.EventPublisher) Model {
	if cfg == nil {
		cfg = config.Default()
	}
	theme.Init(cfg.Theme)
	components.InitStyles()

	m := Model{
		ctx:           ctx,
		board:         b,
		config:        cfg,
		UIState:       state.NewUIState(),
		Notifications: state.NewNotificationState(),
		Search:        state.NewSearchState(),
		Input:         state.NewInputState(),
		drag:          &dragState{session: reorder.NewSession()},
	}

	if publisher != nil {
		ch, err := publisher.Listen(ctx)
		if err != nil {
			slog.Warn("continuing without live updates", "error", err)
		} else {
			m.EventChan = ch
		}
	}

	return m
}

// Init starts the event subscription
func (m Model) Init() tea.Cmd {
	return m.subscribe()
}

// BoardEventMsg carries one event from the board's publisher
type BoardEventMsg struct {
	Event events.Event
}

// subscribe waits for the next event. Returns nil without a channel.
func (m Model) subscribe() tea.Cmd {
	if m.EventChan == nil {
		return nil
	}
	ch, ctx := m.EventChan, m.ctx

	return func() tea.Msg {
		select {
		case event, ok := <-ch:
			if !ok {
				return nil
			}
			return BoardEventMsg{Event: event}
		case <-ctx.Done():
			return nil
		}
	}
}

// ============================================================================
// Board access
// ============================================================================

// visible returns what the board shows right now: the drag preview while a
// task is carried, filtered by the search query when one is applied.
func (m Model) visible() board.View {
	var columns []models.Column
	var tasks []models.Task
	if m.UIState.Mode() == state.DragTaskMode {
		columns, tasks = m.drag.session.Columns(), m.drag.session.Tasks()
	} else {
		columns, tasks = m.board.Columns(), m.board.Tasks()
	}

	query := ""
	if m.Search.Filtering(m.UIState.Mode()) {
		query = m.Search.Query
	}
	return board.BuildView(columns, tasks, query)
}

// currentColumn returns the column under the cursor
func (m Model) currentColumn() (models.Column, bool) {
	view := m.visible()
	i := m.UIState.SelectedColumn()
	if i < 0 || i >= len(view.Columns) {
		return models.Column{}, false
	}
	return view.Columns[i].Column, true
}

// currentTask returns the task under the cursor
func (m Model) currentTask() (models.Task, bool) {
	view := m.visible()
	i := m.UIState.SelectedColumn()
	if i < 0 || i >= len(view.Columns) {
		return models.Task{}, false
	}
	tasks := view.Columns[i].Tasks
	j := m.UIState.SelectedTask()
	if j < 0 || j >= len(tasks) {
		return models.Task{}, false
	}
	return tasks[j], true
}

// clampSelection keeps the cursor on an existing cell
func (m Model) clampSelection() {
	view := m.visible()
	m.UIState.Clamp(len(view.Columns), func(i int) int {
		return len(view.Columns[i].Tasks)
	})
}

// followTask moves the cursor onto the task with id, if it is visible
func (m Model) followTask(id string) {
	for i, cv := range m.visible().Columns {
		for j, t := range cv.Tasks {
			if string(t.ID) == id {
				m.UIState.SetSelectedColumn(i)
				m.UIState.SetSelectedTask(j)
				return
			}
		}
	}
	m.clampSelection()
}

// notifyError shows err as an error banner and logs it
func (m Model) notifyError(action string, err error) {
	slog.Error(action, "error", err)
	m.Notifications.Add(state.LevelError, action+": "+err.Error())
}
