package task

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/kboard/internal/cli"
	"github.com/thenoetrevino/kboard/internal/models"
	"github.com/thenoetrevino/kboard/internal/types"
)

// TaskCmd returns the task parent command
func TaskCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "task",
		Short: "Manage tasks",
	}

	cmd.AddCommand(AddCmd())
	cmd.AddCommand(ListCmd())
	cmd.AddCommand(ShowCmd())
	cmd.AddCommand(EditCmd())
	cmd.AddCommand(PriorityCmd())
	cmd.AddCommand(DeleteCmd())
	cmd.AddCommand(DragCmd())

	return cmd
}

// addIDFlag registers --id for commands that also accept a positional id
func addIDFlag(cmd *cobra.Command) {
	cmd.Flags().String("id", "", "Task ID")
}

// taskIDArg reads the task id from the first positional argument or --id
func taskIDArg(cmd *cobra.Command, args []string) types.TaskID {
	if len(args) > 0 {
		return types.TaskID(args[0])
	}
	id, _ := cmd.Flags().GetString("id")
	return types.TaskID(id)
}

// lookupTask fetches a task or returns the matching exit error
func lookupTask(c *cli.CLI, formatter *cli.OutputFormatter, id types.TaskID) (models.Task, error) {
	if id == "" {
		return models.Task{}, formatter.FailWithSuggestion(cli.ExitUsage, "INVALID_TASK_ID",
			fmt.Errorf("task id is required"),
			"Pass the id as an argument or with --id")
	}
	task, ok := c.App.Board.Task(id)
	if !ok {
		return models.Task{}, formatter.FailWithSuggestion(cli.ExitNotFound, "TASK_NOT_FOUND",
			fmt.Errorf("%w: %s", models.ErrTaskNotFound, id),
			"Use 'kboard task list' to see available tasks")
	}
	return task, nil
}

// columnNotFound reports an unresolvable column reference
func columnNotFound(formatter *cli.OutputFormatter, ref string, columns []models.Column) error {
	return formatter.FailWithSuggestion(cli.ExitNotFound, "COLUMN_NOT_FOUND",
		fmt.Errorf("%w: %s", models.ErrColumnNotFound, ref),
		"Available columns: "+cli.FormatAvailableColumns(columns))
}
