package task

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	kcli "github.com/thenoetrevino/kboard/internal/cli"
	"github.com/thenoetrevino/kboard/internal/testutil/cli"
	"github.com/thenoetrevino/kboard/internal/types"
)

func TestEditTask(t *testing.T) {
	_, app := cli.SetupCLITest(t)

	id := cli.CreateTestTask(t, app, types.ColumnTodo, "Draft")

	t.Run("Title only leaves other fields", func(t *testing.T) {
		before, _ := app.Board.Task(id)

		_, err := cli.ExecuteCLICommand(t, app, EditCmd(), []string{string(id), "--title", "Final"})
		require.NoError(t, err)

		after, _ := app.Board.Task(id)
		assert.Equal(t, "Final", after.Title)
		assert.Equal(t, before.Description, after.Description)
		assert.Equal(t, before.Priority, after.Priority)
		assert.Equal(t, before.ColumnID, after.ColumnID)
	})

	t.Run("Dates", func(t *testing.T) {
		_, err := cli.ExecuteCLICommand(t, app, EditCmd(), []string{
			"--id", string(id), "--start", "2026-06-01", "--end", "2026-06-05",
		})
		require.NoError(t, err)

		task, _ := app.Board.Task(id)
		require.NotNil(t, task.StartDate)
		require.NotNil(t, task.EndDate)
		assert.Equal(t, time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC), *task.StartDate)
		assert.Equal(t, time.Date(2026, 6, 5, 0, 0, 0, 0, time.UTC), *task.EndDate)
	})

	t.Run("Clear description with empty value", func(t *testing.T) {
		cmd := EditCmd()
		cmd.SetIn(strings.NewReader("some notes"))
		_, err := cli.ExecuteCLICommand(t, app, cmd, []string{string(id), "--description", "-"})
		require.NoError(t, err)
		task, _ := app.Board.Task(id)
		assert.Equal(t, "some notes", task.Description)

		_, err = cli.ExecuteCLICommand(t, app, EditCmd(), []string{string(id), "--description", ""})
		require.NoError(t, err)
		task, _ = app.Board.Task(id)
		assert.Empty(t, task.Description)
	})

	t.Run("No flags", func(t *testing.T) {
		_, err := cli.ExecuteCLICommand(t, app, EditCmd(), []string{string(id)})
		require.Error(t, err)
		assert.Equal(t, kcli.ExitUsage, kcli.ExitCode(err))
	})

	t.Run("Bad date", func(t *testing.T) {
		_, err := cli.ExecuteCLICommand(t, app, EditCmd(), []string{string(id), "--start", "next week"})
		require.Error(t, err)
		assert.Equal(t, kcli.ExitDataErr, kcli.ExitCode(err))
	})

	t.Run("Unknown task", func(t *testing.T) {
		_, err := cli.ExecuteCLICommand(t, app, EditCmd(), []string{"missing", "--title", "x"})
		require.Error(t, err)
		assert.Equal(t, kcli.ExitNotFound, kcli.ExitCode(err))
	})
}
