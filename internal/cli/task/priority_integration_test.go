package task

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	kcli "github.com/thenoetrevino/kboard/internal/cli"
	"github.com/thenoetrevino/kboard/internal/models"
	"github.com/thenoetrevino/kboard/internal/testutil/cli"
	"github.com/thenoetrevino/kboard/internal/types"
)

func TestPriority_Cycles(t *testing.T) {
	_, app := cli.SetupCLITest(t)

	id := cli.CreateTestTask(t, app, types.ColumnTodo, "Cycle me")

	want := []models.Priority{models.PriorityMedium, models.PriorityHigh, models.PriorityLow}
	for _, p := range want {
		_, err := cli.ExecuteCLICommand(t, app, PriorityCmd(), []string{string(id), "--quiet"})
		require.NoError(t, err)

		task, _ := app.Board.Task(id)
		assert.Equal(t, p, task.Priority)
	}
}

func TestPriority_Set(t *testing.T) {
	_, app := cli.SetupCLITest(t)

	id := cli.CreateTestTask(t, app, types.ColumnTodo, "Set me")

	output, err := cli.ExecuteCLICommand(t, app, PriorityCmd(), []string{string(id), "--set", "HIGH"})
	require.NoError(t, err)
	assert.Contains(t, output, "Set me is now")

	task, _ := app.Board.Task(id)
	assert.Equal(t, models.PriorityHigh, task.Priority)

	_, err = cli.ExecuteCLICommand(t, app, PriorityCmd(), []string{string(id), "--set", "urgent"})
	require.Error(t, err)
	assert.Equal(t, kcli.ExitValidation, kcli.ExitCode(err))

	task, _ = app.Board.Task(id)
	assert.Equal(t, models.PriorityHigh, task.Priority)
}
