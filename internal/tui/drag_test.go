package tui

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thenoetrevino/kboard/internal/models"
	"github.com/thenoetrevino/kboard/internal/tui/state"
	"github.com/thenoetrevino/kboard/internal/types"
)

// ============================================================================
// Task drag
// ============================================================================

func TestDragTask_ToAdjacentColumn(t *testing.T) {
	m, kv := setupTestModel(t, task("a", types.ColumnUnvalidated))

	m = press(t, m, "space")
	require.Equal(t, state.DragTaskMode, m.UIState.Mode())

	m = press(t, m, "l")
	assert.Equal(t, 1, m.UIState.SelectedColumn(), "cursor follows the carried task")
	got, _ := m.board.Task("a")
	assert.Equal(t, types.ColumnUnvalidated, got.ColumnID, "board untouched while dragging")

	m = press(t, m, "space")
	assert.Equal(t, state.NormalMode, m.UIState.Mode())

	got, _ = m.board.Task("a")
	assert.Equal(t, types.ColumnTodo, got.ColumnID)
	assert.Equal(t, types.ColumnTodo, savedState(t, kv).Tasks[0].ColumnID)
	assert.False(t, m.Notifications.HasAny())
}

func TestDragTask_SkippingAColumnIsRejected(t *testing.T) {
	m, _ := setupTestModel(t, task("a", types.ColumnUnvalidated))

	m = press(t, m, "space", "l", "l")

	all := m.Notifications.All()
	require.Len(t, all, 1)
	assert.Equal(t, state.LevelError, all[0].Level)
	assert.Equal(t, models.InvalidMoveNotice().Message, all[0].Message)
	assert.Equal(t, 1, m.UIState.SelectedColumn(), "task stays in the last accepted column")

	m = press(t, m, "enter")

	got, _ := m.board.Task("a")
	assert.Equal(t, types.ColumnTodo, got.ColumnID)
	assert.Len(t, m.Notifications.All(), 1, "notice is not repeated on drop")
}

func TestDragTask_EscapeCancels(t *testing.T) {
	m, kv := setupTestModel(t, task("a", types.ColumnUnvalidated))
	before := savedState(t, kv)

	m = press(t, m, "space", "l", "esc")

	assert.Equal(t, state.NormalMode, m.UIState.Mode())
	got, _ := m.board.Task("a")
	assert.Equal(t, types.ColumnUnvalidated, got.ColumnID)
	assert.Equal(t, 0, m.UIState.SelectedColumn())
	assert.Equal(t, before, savedState(t, kv))
}

func TestDragTask_DropWithoutMovingCancels(t *testing.T) {
	m, _ := setupTestModel(t, task("a", types.ColumnUnvalidated))

	m = press(t, m, "space", "space")

	assert.Equal(t, state.NormalMode, m.UIState.Mode())
	got, _ := m.board.Task("a")
	assert.Equal(t, types.ColumnUnvalidated, got.ColumnID)
}

func TestDragTask_ReorderWithinColumn(t *testing.T) {
	m, kv := setupTestModel(t,
		task("a", types.ColumnTodo),
		task("b", types.ColumnTodo),
		task("c", types.ColumnTodo),
	)

	m = press(t, m, "l", "space", "j")
	assert.Equal(t, []string{"b", "a", "c"}, taskIDs(m.visible().Columns[1].Tasks))
	assert.Equal(t, 1, m.UIState.SelectedTask())

	m = press(t, m, "j")
	assert.Equal(t, []string{"b", "c", "a"}, taskIDs(m.visible().Columns[1].Tasks))

	m = press(t, m, "k")
	assert.Equal(t, []string{"b", "a", "c"}, taskIDs(m.visible().Columns[1].Tasks), "hovering the same card again still moves")

	m = press(t, m, "enter")
	assert.Equal(t, []string{"b", "a", "c"}, taskIDs(m.board.Tasks()))
	assert.Equal(t, []string{"b", "a", "c"}, taskIDs(savedState(t, kv).Tasks))
}

func TestDragTask_BackAndForth(t *testing.T) {
	m, _ := setupTestModel(t, task("a", types.ColumnTodo))

	m = press(t, m, "l", "space", "h", "l", "l")
	assert.Equal(t, 2, m.UIState.SelectedColumn())
	assert.False(t, m.Notifications.HasAny())

	m = press(t, m, "space")
	got, _ := m.board.Task("a")
	assert.Equal(t, types.ColumnDoing, got.ColumnID)
}

func TestDragTask_EmptyColumnDoesNothing(t *testing.T) {
	m, _ := setupTestModel(t)

	m = press(t, m, "space")
	assert.Equal(t, state.NormalMode, m.UIState.Mode())
}

// ============================================================================
// Column drag
// ============================================================================

func TestDragColumn_Reorder(t *testing.T) {
	m, kv := setupTestModel(t)

	m = press(t, m, "C")
	require.Equal(t, state.DragColumnMode, m.UIState.Mode())

	m = press(t, m, "l", "l", "C")

	want := []types.ColumnID{types.ColumnTodo, types.ColumnDoing, types.ColumnUnvalidated, types.ColumnDone}
	var got []types.ColumnID
	for _, c := range m.board.Columns() {
		got = append(got, c.ID)
	}
	assert.Equal(t, want, got)
	assert.Equal(t, 2, m.UIState.SelectedColumn())
	assert.Equal(t, types.ColumnUnvalidated, savedState(t, kv).Columns[2].ID)
}

func TestDragColumn_EscapeCancels(t *testing.T) {
	m, _ := setupTestModel(t)

	m = press(t, m, "C", "l", "esc")

	assert.Equal(t, state.NormalMode, m.UIState.Mode())
	assert.Equal(t, types.ColumnUnvalidated, m.board.Columns()[0].ID)
}

func TestDragColumn_ViewMarksDropTarget(t *testing.T) {
	m, _ := setupTestModel(t)

	m = press(t, m, "C", "l")

	assert.Equal(t, 1, m.drag.dropColumn)
	assert.Contains(t, m.View().Content, "DRAG")
}
