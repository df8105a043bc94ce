package task

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/kboard/internal/cli"
)

// DeleteCmd returns the task delete subcommand
func DeleteCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "delete [task-id]",
		Short: "Delete a task",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runDelete,
	}

	addIDFlag(cmd)
	cli.AddOutputFlags(cmd)

	return cmd
}

func runDelete(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	formatter := cli.FormatterFromCmd(cmd)

	cliInstance, err := cli.GetCLIFromContext(ctx)
	if err != nil {
		return cli.InitFailure(formatter, err)
	}
	defer cli.CloseCLI(cliInstance)

	task, err := lookupTask(cliInstance, formatter, taskIDArg(cmd, args))
	if err != nil {
		return err
	}

	if err := cliInstance.App.Board.DeleteTask(ctx, task.ID); err != nil {
		return formatter.Fail(cli.ExitError, "TASK_DELETE_ERROR", err)
	}

	slog.Info("task deleted", "task_id", task.ID)

	if formatter.Quiet {
		return nil
	}
	if formatter.JSON {
		return cli.WriteJSON(map[string]any{
			"success": true,
			"deleted": string(task.ID),
		})
	}

	fmt.Printf("Deleted task %s: %s\n", task.ID, task.Title)
	return nil
}
