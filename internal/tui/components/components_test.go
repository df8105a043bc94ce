package components

import (
	"strings"
	"testing"
	"time"

	"charm.land/lipgloss/v2"
	"github.com/stretchr/testify/assert"
	"github.com/thenoetrevino/kboard/internal/config"
	"github.com/thenoetrevino/kboard/internal/models"
	"github.com/thenoetrevino/kboard/internal/types"
)

func TestWrapTitle_CapsLines(t *testing.T) {
	got := wrapTitle(strings.Repeat("word ", 40), 12)

	lines := strings.Split(got, "\n")
	assert.Len(t, lines, maxTitleLines)
	for _, l := range lines {
		assert.LessOrEqual(t, lipgloss.Width(l), 12)
	}
}

func TestRenderTask_WidthAndContent(t *testing.T) {
	start := time.Date(2026, 5, 4, 0, 0, 0, 0, time.UTC)
	end := start.Add(models.DefaultTaskDuration)
	task := models.Task{ID: "t1", Title: "Ship it", Priority: models.PriorityHigh, StartDate: &start, EndDate: &end}

	for _, state := range []CardState{CardNormal, CardSelected, CardDragging} {
		out := RenderTask(task, state, 30)
		assert.Contains(t, out, "Ship it")
		assert.Contains(t, out, "High")
		assert.NotEmpty(t, out)
	}
}

func TestDateRange(t *testing.T) {
	end := time.Date(2026, 5, 7, 0, 0, 0, 0, time.UTC)

	assert.Equal(t, "due May 07", dateRange(models.Task{EndDate: &end}))
	assert.Empty(t, dateRange(models.Task{}))
}

func TestRenderColumn_EmptyAndCount(t *testing.T) {
	col := models.Column{ID: types.ColumnTodo, Title: "Todo"}

	empty := RenderColumn(col, nil, ColumnOptions{Width: 30, SelectedTask: -1})
	assert.Contains(t, empty, "Todo (0)")
	assert.Contains(t, empty, "No tasks")

	tasks := []models.Task{{ID: "a", ColumnID: types.ColumnTodo, Title: "A"}, {ID: "b", ColumnID: types.ColumnTodo, Title: "B"}}
	full := RenderColumn(col, tasks, ColumnOptions{Width: 30, Selected: true, SelectedTask: 1, Dragging: "a"})
	assert.Contains(t, full, "Todo (2)")
}

func TestRenderHelp_UsesKeyMappings(t *testing.T) {
	km := config.DefaultKeyMappings()
	km.Search = "ctrl+f"

	out := RenderHelp(km)
	assert.Contains(t, out, "ctrl+f")
	assert.Contains(t, out, "Drag")
}
