package task

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	kcli "github.com/thenoetrevino/kboard/internal/cli"
	"github.com/thenoetrevino/kboard/internal/testutil"
	"github.com/thenoetrevino/kboard/internal/testutil/cli"
	"github.com/thenoetrevino/kboard/internal/types"
)

func TestDeleteTask(t *testing.T) {
	_, app := cli.SetupCLITest(t)

	keep := cli.CreateTestTask(t, app, types.ColumnTodo, "Keep")
	drop := cli.CreateTestTask(t, app, types.ColumnTodo, "Drop")

	output, err := cli.ExecuteCLICommand(t, app, DeleteCmd(), []string{string(drop), "--json"})
	require.NoError(t, err)
	assert.Equal(t, string(drop), testutil.ParseJSON(t, output)["deleted"])

	tasks := app.Board.Tasks()
	require.Len(t, tasks, 1)
	assert.Equal(t, keep, tasks[0].ID)

	_, err = cli.ExecuteCLICommand(t, app, DeleteCmd(), []string{string(drop)})
	require.Error(t, err)
	assert.Equal(t, kcli.ExitNotFound, kcli.ExitCode(err))
}
