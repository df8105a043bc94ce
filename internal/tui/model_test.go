package tui

import (
	"context"
	"testing"

	tea "charm.land/bubbletea/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thenoetrevino/kboard/internal/board"
	"github.com/thenoetrevino/kboard/internal/config"
	"github.com/thenoetrevino/kboard/internal/events"
	"github.com/thenoetrevino/kboard/internal/models"
	"github.com/thenoetrevino/kboard/internal/storage"
	"github.com/thenoetrevino/kboard/internal/tui/state"
	"github.com/thenoetrevino/kboard/internal/types"
)

// ============================================================================
// Helpers
// ============================================================================

func setupTestModel(t *testing.T, tasks ...models.Task) (Model, *storage.MemoryKV) {
	t.Helper()
	kv := storage.NewMemoryKV()
	b := board.New(board.WithStore(storage.NewStore(kv)))
	if len(tasks) > 0 {
		require.NoError(t, b.SetTasks(context.Background(), tasks))
	}

	m := New(context.Background(), b, config.Default(), nil)
	m.UIState.SetWidth(160)
	m.UIState.SetHeight(40)
	return m, kv
}

func task(id string, column types.ColumnID) models.Task {
	return models.Task{ID: types.TaskID(id), ColumnID: column, Title: "Task " + id, Priority: models.PriorityLow}
}

func key(s string) tea.KeyPressMsg {
	switch s {
	case "space":
		return tea.KeyPressMsg(tea.Key{Code: tea.KeySpace, Text: " "})
	case "enter":
		return tea.KeyPressMsg(tea.Key{Code: tea.KeyEnter})
	case "esc":
		return tea.KeyPressMsg(tea.Key{Code: tea.KeyEscape})
	case "backspace":
		return tea.KeyPressMsg(tea.Key{Code: tea.KeyBackspace})
	case "right":
		return tea.KeyPressMsg(tea.Key{Code: tea.KeyRight})
	}
	r := []rune(s)[0]
	return tea.KeyPressMsg(tea.Key{Code: r, Text: s})
}

func press(t *testing.T, m Model, keys ...string) Model {
	t.Helper()
	for _, k := range keys {
		next, _ := m.Update(key(k))
		m = next.(Model)
	}
	return m
}

func taskIDs(tasks []models.Task) []string {
	out := make([]string, 0, len(tasks))
	for _, t := range tasks {
		out = append(out, string(t.ID))
	}
	return out
}

func savedState(t *testing.T, kv *storage.MemoryKV) storage.State {
	t.Helper()
	st, found, err := storage.NewStore(kv).Load(context.Background())
	require.NoError(t, err)
	require.True(t, found, "expected board to be saved")
	return st
}

// ============================================================================
// Navigation
// ============================================================================

func TestNormalMode_Navigation(t *testing.T) {
	m, _ := setupTestModel(t, task("a", types.ColumnTodo), task("b", types.ColumnTodo))

	m = press(t, m, "right")
	assert.Equal(t, 1, m.UIState.SelectedColumn())

	m = press(t, m, "j", "j", "j")
	assert.Equal(t, 1, m.UIState.SelectedTask(), "cursor stops at the last task")

	m = press(t, m, "l")
	assert.Equal(t, 2, m.UIState.SelectedColumn())
	assert.Equal(t, 0, m.UIState.SelectedTask(), "empty column resets the row")

	m = press(t, m, "h", "h", "h", "h")
	assert.Equal(t, 0, m.UIState.SelectedColumn())
}

func TestWindowSize(t *testing.T) {
	m, _ := setupTestModel(t)

	next, cmd := m.Update(tea.WindowSizeMsg{Width: 90, Height: 20})
	m = next.(Model)

	assert.Nil(t, cmd)
	assert.Equal(t, 90, m.UIState.Width())
	assert.Equal(t, 20, m.UIState.Height())
}

// ============================================================================
// Task editing
// ============================================================================

func TestAddTask_SelectsNewTask(t *testing.T) {
	m, kv := setupTestModel(t, task("a", types.ColumnTodo))

	m = press(t, m, "l", "a")

	tasks := m.board.TasksInColumn(types.ColumnTodo)
	require.Len(t, tasks, 2)
	assert.Equal(t, "New task 2", tasks[1].Title)
	assert.Equal(t, 1, m.UIState.SelectedTask())
	assert.Len(t, savedState(t, kv).Tasks, 2)
}

func TestCyclePriority(t *testing.T) {
	m, _ := setupTestModel(t, task("a", types.ColumnUnvalidated))

	m = press(t, m, "p")
	got, ok := m.board.Task("a")
	require.True(t, ok)
	assert.Equal(t, models.PriorityMedium, got.Priority)
}

func TestDeleteTask_Confirm(t *testing.T) {
	m, _ := setupTestModel(t, task("a", types.ColumnUnvalidated), task("b", types.ColumnUnvalidated))

	m = press(t, m, "d")
	assert.Equal(t, state.DeleteTaskConfirmMode, m.UIState.Mode())

	m = press(t, m, "n")
	assert.Equal(t, state.NormalMode, m.UIState.Mode())
	assert.Len(t, m.board.Tasks(), 2)

	m = press(t, m, "d", "y")
	assert.Equal(t, state.NormalMode, m.UIState.Mode())
	assert.Equal(t, []string{"b"}, taskIDs(m.board.Tasks()))
}

func TestEditTask_Title(t *testing.T) {
	m, _ := setupTestModel(t, task("a", types.ColumnUnvalidated))

	m = press(t, m, "e")
	require.Equal(t, state.EditTaskMode, m.UIState.Mode())
	assert.Equal(t, "Task a", m.Input.Value())

	m.Input.Input.SetValue("  Write report ")
	m = press(t, m, "enter")

	got, _ := m.board.Task("a")
	assert.Equal(t, "Write report", got.Title)
	assert.Equal(t, state.NormalMode, m.UIState.Mode())
}

func TestEditTask_EscapeKeepsTitle(t *testing.T) {
	m, _ := setupTestModel(t, task("a", types.ColumnUnvalidated))

	m = press(t, m, "e")
	m.Input.Input.SetValue("changed")
	m = press(t, m, "esc")

	got, _ := m.board.Task("a")
	assert.Equal(t, "Task a", got.Title)
}

// ============================================================================
// Columns
// ============================================================================

func TestAddColumn(t *testing.T) {
	m, _ := setupTestModel(t)

	m = press(t, m, "N")
	require.Equal(t, state.AddColumnMode, m.UIState.Mode())

	m.Input.Input.SetValue("Review")
	m = press(t, m, "enter")

	columns := m.board.Columns()
	require.Len(t, columns, 5)
	assert.Equal(t, "Review", columns[4].Title)
	assert.Equal(t, 4, m.UIState.SelectedColumn())
}

func TestAddColumn_BlankGetsDefaultName(t *testing.T) {
	m, _ := setupTestModel(t)

	m = press(t, m, "N", "enter")

	columns := m.board.Columns()
	require.Len(t, columns, 5)
	assert.Equal(t, "Column 5", columns[4].Title)
}

func TestRenameColumn(t *testing.T) {
	m, _ := setupTestModel(t)

	m = press(t, m, "l", "R")
	assert.Equal(t, "Todo", m.Input.Value())

	m.Input.Input.SetValue("Backlog")
	m = press(t, m, "enter")

	col, ok := m.board.Column(types.ColumnTodo)
	require.True(t, ok)
	assert.Equal(t, "Backlog", col.Title)
}

func TestDeleteColumn_RemovesTasks(t *testing.T) {
	m, _ := setupTestModel(t, task("a", types.ColumnTodo), task("b", types.ColumnDoing))

	m = press(t, m, "l", "X", "y")

	assert.Len(t, m.board.Columns(), 3)
	assert.Equal(t, []string{"b"}, taskIDs(m.board.Tasks()))
}

// ============================================================================
// Search
// ============================================================================

func TestSearch_FiltersAsYouType(t *testing.T) {
	m, _ := setupTestModel(t,
		models.Task{ID: "a", ColumnID: types.ColumnTodo, Title: "Fix login"},
		models.Task{ID: "b", ColumnID: types.ColumnTodo, Title: "Write docs"},
	)

	m = press(t, m, "/", "l", "o", "g")
	assert.Equal(t, state.SearchMode, m.UIState.Mode())
	assert.Equal(t, "log", m.Search.Query)
	assert.Equal(t, 1, m.visible().Count())

	m = press(t, m, "backspace")
	assert.Equal(t, "lo", m.Search.Query)

	m = press(t, m, "enter")
	assert.Equal(t, state.NormalMode, m.UIState.Mode())
	assert.True(t, m.Search.IsActive)
	assert.Equal(t, 1, m.visible().Count(), "filter stays applied after enter")

	m = press(t, m, "esc")
	assert.False(t, m.Search.IsActive)
	assert.Equal(t, 2, m.visible().Count())
}

func TestSearch_EscapeClears(t *testing.T) {
	m, _ := setupTestModel(t, task("a", types.ColumnTodo))

	m = press(t, m, "/", "z", "esc")

	assert.Equal(t, state.NormalMode, m.UIState.Mode())
	assert.Empty(t, m.Search.Query)
	assert.Equal(t, 1, m.visible().Count())
}

// ============================================================================
// Help, events and view
// ============================================================================

func TestHelpMode_Toggles(t *testing.T) {
	m, _ := setupTestModel(t)

	m = press(t, m, "?")
	assert.Equal(t, state.HelpMode, m.UIState.Mode())
	assert.Contains(t, m.View().Content, "Navigation")

	m = press(t, m, "q")
	assert.Equal(t, state.NormalMode, m.UIState.Mode())
}

func TestBoardEvent_NoticeBecomesNotification(t *testing.T) {
	m, _ := setupTestModel(t)

	next, _ := m.Update(BoardEventMsg{Event: events.Event{Type: events.EventNotice, Message: "Move not allowed"}})
	m = next.(Model)

	all := m.Notifications.All()
	require.Len(t, all, 1)
	assert.Equal(t, state.LevelError, all[0].Level)
	assert.Equal(t, "Move not allowed", all[0].Message)
}

func TestSubscribe_DeliversPublishedEvents(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	bus := events.NewBus(4)
	defer func() { _ = bus.Close() }()

	b := board.New(board.WithStore(storage.NewStore(storage.NewMemoryKV())), board.WithPublisher(bus))
	m := New(ctx, b, nil, bus)
	require.NotNil(t, m.EventChan)

	cmd := m.Init()
	require.NotNil(t, cmd)

	_, err := b.AddColumn(ctx, "Review")
	require.NoError(t, err)

	msg := cmd()
	evt, ok := msg.(BoardEventMsg)
	require.True(t, ok, "expected BoardEventMsg, got %T", msg)
	assert.Equal(t, events.EventBoardChanged, evt.Event.Type)
}

func TestView_RendersColumnsAndStatus(t *testing.T) {
	m, _ := setupTestModel(t, task("a", types.ColumnTodo))

	view := m.View()

	assert.True(t, view.AltScreen)
	assert.Contains(t, view.Content, "Unvalidated")
	assert.Contains(t, view.Content, "Task a")
	assert.Contains(t, view.Content, "NORMAL")
}

func TestView_LoadingBeforeSize(t *testing.T) {
	m, _ := setupTestModel(t)
	m.UIState.SetWidth(0)

	assert.Equal(t, "Loading...", m.View().Content)
}
