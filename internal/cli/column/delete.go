package column

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/kboard/internal/cli"
)

// DeleteCmd returns the column delete subcommand
func DeleteCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "delete [column]",
		Short: "Delete a column and every task in it",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runDelete,
	}

	cmd.Flags().String("id", "", "Column id or title")
	cmd.Flags().Bool("force", false, "Delete even when the column still holds tasks")
	cli.AddOutputFlags(cmd)

	return cmd
}

func runDelete(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	formatter := cli.FormatterFromCmd(cmd)

	force, _ := cmd.Flags().GetBool("force")

	cliInstance, err := cli.GetCLIFromContext(ctx)
	if err != nil {
		return cli.InitFailure(formatter, err)
	}
	defer cli.CloseCLI(cliInstance)

	col, err := resolveColumn(cmd, args, cliInstance, formatter)
	if err != nil {
		return err
	}

	b := cliInstance.App.Board
	taskCount := len(b.TasksInColumn(col.ID))
	if taskCount > 0 && !force {
		return formatter.FailWithSuggestion(cli.ExitValidation, "COLUMN_NOT_EMPTY",
			fmt.Errorf("column %s holds %d task(s)", col.Title, taskCount),
			"Pass --force to delete the column together with its tasks")
	}

	if err := b.DeleteColumn(ctx, col.ID); err != nil {
		return formatter.Fail(cli.ExitError, "COLUMN_DELETE_ERROR", err)
	}

	slog.Info("column deleted", "column_id", col.ID, "tasks_removed", taskCount)

	if formatter.Quiet {
		return nil
	}
	if formatter.JSON {
		return cli.WriteJSON(map[string]any{
			"success":      true,
			"deleted":      string(col.ID),
			"tasksRemoved": taskCount,
		})
	}

	fmt.Printf("Deleted column %s (%d task(s) removed)\n", col.Title, taskCount)
	return nil
}
