package column

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	kcli "github.com/thenoetrevino/kboard/internal/cli"
	"github.com/thenoetrevino/kboard/internal/models"
	"github.com/thenoetrevino/kboard/internal/testutil"
	"github.com/thenoetrevino/kboard/internal/testutil/cli"
	"github.com/thenoetrevino/kboard/internal/types"
)

func columnIDs(columns []models.Column) []types.ColumnID {
	ids := make([]types.ColumnID, len(columns))
	for i, c := range columns {
		ids[i] = c.ID
	}
	return ids
}

// ============================================================================
// list
// ============================================================================

func TestListColumns(t *testing.T) {
	_, app := cli.SetupCLITest(t)
	cli.CreateTestTask(t, app, types.ColumnTodo, "One")
	cli.CreateTestTask(t, app, types.ColumnTodo, "Two")

	t.Run("Quiet prints ids in order", func(t *testing.T) {
		output, err := cli.ExecuteCLICommand(t, app, ListCmd(), []string{"--quiet"})
		require.NoError(t, err)
		assert.Equal(t, []string{"UNVALIDATED", "TODO", "DOING", "DONE"}, strings.Fields(output))
	})

	t.Run("JSON carries task counts", func(t *testing.T) {
		output, err := cli.ExecuteCLICommand(t, app, ListCmd(), []string{"--json"})
		require.NoError(t, err)

		columns := testutil.ParseJSON(t, output)["columns"].([]any)
		require.Len(t, columns, 4)
		todo := columns[1].(map[string]any)
		assert.Equal(t, "Todo", todo["title"])
		assert.Equal(t, float64(1), todo["position"])
		assert.Equal(t, float64(2), todo["taskCount"])
	})

	t.Run("Human output", func(t *testing.T) {
		output, err := cli.ExecuteCLICommand(t, app, ListCmd(), nil)
		require.NoError(t, err)
		assert.Contains(t, output, "2. Todo")
	})
}

// ============================================================================
// add / rename
// ============================================================================

func TestAddColumn(t *testing.T) {
	_, app := cli.SetupCLITest(t)

	output, err := cli.ExecuteCLICommand(t, app, AddCmd(), []string{"--title", "Review", "--quiet"})
	require.NoError(t, err)

	columns := app.Board.Columns()
	require.Len(t, columns, 5)
	assert.Equal(t, strings.TrimSpace(output), string(columns[4].ID))
	assert.Equal(t, "Review", columns[4].Title)

	_, err = cli.ExecuteCLICommand(t, app, AddCmd(), nil)
	require.NoError(t, err)
	assert.Equal(t, "Column 6", app.Board.Columns()[5].Title)
}

func TestRenameColumn(t *testing.T) {
	_, app := cli.SetupCLITest(t)

	output, err := cli.ExecuteCLICommand(t, app, RenameCmd(), []string{"Doing", "--title", "In Progress"})
	require.NoError(t, err)
	assert.Contains(t, output, "Renamed column Doing to In Progress")

	col, ok := app.Board.Column(types.ColumnDoing)
	require.True(t, ok)
	assert.Equal(t, "In Progress", col.Title)

	t.Run("Blank title", func(t *testing.T) {
		_, err := cli.ExecuteCLICommand(t, app, RenameCmd(), []string{"DOING", "--title", "  "})
		require.Error(t, err)
		assert.Equal(t, kcli.ExitUsage, kcli.ExitCode(err))
	})

	t.Run("Unknown column", func(t *testing.T) {
		_, err := cli.ExecuteCLICommand(t, app, RenameCmd(), []string{"--id", "Backlog", "--title", "x"})
		require.Error(t, err)
		assert.ErrorIs(t, err, models.ErrColumnNotFound)
		assert.Equal(t, kcli.ExitNotFound, kcli.ExitCode(err))
	})
}

// ============================================================================
// delete
// ============================================================================

func TestDeleteColumn(t *testing.T) {
	t.Run("Empty column", func(t *testing.T) {
		_, app := cli.SetupCLITest(t)

		_, err := cli.ExecuteCLICommand(t, app, DeleteCmd(), []string{"Done"})
		require.NoError(t, err)
		assert.Equal(t, []types.ColumnID{types.ColumnUnvalidated, types.ColumnTodo, types.ColumnDoing}, columnIDs(app.Board.Columns()))
	})

	t.Run("Non-empty column needs force", func(t *testing.T) {
		_, app := cli.SetupCLITest(t)
		cli.CreateTestTask(t, app, types.ColumnDoing, "Busy")
		keep := cli.CreateTestTask(t, app, types.ColumnTodo, "Keep")

		_, err := cli.ExecuteCLICommand(t, app, DeleteCmd(), []string{"DOING"})
		require.Error(t, err)
		assert.Equal(t, kcli.ExitValidation, kcli.ExitCode(err))
		assert.Len(t, app.Board.Columns(), 4)

		output, err := cli.ExecuteCLICommand(t, app, DeleteCmd(), []string{"DOING", "--force", "--json"})
		require.NoError(t, err)
		assert.Equal(t, float64(1), testutil.ParseJSON(t, output)["tasksRemoved"])

		tasks := app.Board.Tasks()
		require.Len(t, tasks, 1)
		assert.Equal(t, keep, tasks[0].ID)
	})

	t.Run("Missing column reference", func(t *testing.T) {
		_, app := cli.SetupCLITest(t)

		_, err := cli.ExecuteCLICommand(t, app, DeleteCmd(), nil)
		require.Error(t, err)
		assert.Equal(t, kcli.ExitUsage, kcli.ExitCode(err))
	})
}

// ============================================================================
// move
// ============================================================================

func TestMoveColumn(t *testing.T) {
	_, app := cli.SetupCLITest(t)
	task := cli.CreateTestTask(t, app, types.ColumnDone, "Shipped")

	output, err := cli.ExecuteCLICommand(t, app, MoveCmd(), []string{"Done", "--over", "Todo"})
	require.NoError(t, err)
	assert.Contains(t, output, "2. Done")

	assert.Equal(t,
		[]types.ColumnID{types.ColumnUnvalidated, types.ColumnDone, types.ColumnTodo, types.ColumnDoing},
		columnIDs(app.Board.Columns()))

	moved, _ := app.Board.Task(task)
	assert.Equal(t, types.ColumnDone, moved.ColumnID, "column moves keep task membership")

	t.Run("Onto itself", func(t *testing.T) {
		output, err := cli.ExecuteCLICommand(t, app, MoveCmd(), []string{"Done", "--over", "DONE"})
		require.NoError(t, err)
		assert.Contains(t, output, "Nothing to move")
	})

	t.Run("Unknown target", func(t *testing.T) {
		_, err := cli.ExecuteCLICommand(t, app, MoveCmd(), []string{"Done", "--over", "Backlog"})
		require.Error(t, err)
		assert.Equal(t, kcli.ExitNotFound, kcli.ExitCode(err))
	})
}
