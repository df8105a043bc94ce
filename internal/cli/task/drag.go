package task

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/kboard/internal/cli"
	"github.com/thenoetrevino/kboard/internal/models"
	"github.com/thenoetrevino/kboard/internal/reorder"
	"github.com/thenoetrevino/kboard/internal/types"
)

// DragCmd returns the task drag subcommand
func DragCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "drag [task-id]",
		Short: "Drag a task onto another task or column",
		Long: `Drop a task onto a target the same way the board does with a pointer.

Dropping onto a task in the same column reorders; dropping onto a task in
a neighbouring column moves the task in front of it; dropping onto a
column moves the task into that column. Tasks may only move to an
adjacent column.

Examples:
  # Move into the next column
  kboard task drag 2f1c... --over Todo --kind column

  # Reorder within a column
  kboard task drag 2f1c... --over 9ab0...
`,
		Args: cobra.MaximumNArgs(1),
		RunE: runDrag,
	}

	addIDFlag(cmd)
	cmd.Flags().String("over", "", "Target task id, or column id/title with --kind column (required)")
	cmd.Flags().String("kind", "task", "Target kind: task or column")
	_ = cmd.MarkFlagRequired("over")
	cli.AddOutputFlags(cmd)

	return cmd
}

func runDrag(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	formatter := cli.FormatterFromCmd(cmd)

	overRef, _ := cmd.Flags().GetString("over")
	kindFlag, _ := cmd.Flags().GetString("kind")

	kind, ok := reorder.ParseKind(kindFlag)
	if !ok {
		return formatter.FailWithSuggestion(cli.ExitUsage, "INVALID_KIND",
			fmt.Errorf("invalid target kind %q", kindFlag),
			"Use --kind task or --kind column")
	}

	cliInstance, err := cli.GetCLIFromContext(ctx)
	if err != nil {
		return cli.InitFailure(formatter, err)
	}
	defer cli.CloseCLI(cliInstance)

	task, err := lookupTask(cliInstance, formatter, taskIDArg(cmd, args))
	if err != nil {
		return err
	}

	b := cliInstance.App.Board
	columns := b.Columns()

	var target reorder.Item
	switch kind {
	case reorder.KindColumn:
		col, ok := cli.FindColumn(columns, overRef)
		if !ok {
			return columnNotFound(formatter, overRef, columns)
		}
		target = reorder.ColumnItem(col.ID)
	default:
		if _, ok := b.Task(types.TaskID(overRef)); !ok {
			return formatter.Fail(cli.ExitNotFound, "TASK_NOT_FOUND",
				fmt.Errorf("%w: %s", models.ErrTaskNotFound, overRef))
		}
		target = reorder.TaskItem(types.TaskID(overRef))
	}

	outcome, err := b.Drag(ctx, reorder.TaskItem(task.ID), target)
	if err != nil {
		return formatter.Fail(cli.ExitError, "TASK_MOVE_ERROR", err)
	}
	if outcome.Notice != nil {
		return formatter.FailWithSuggestion(cli.ExitValidation, "INVALID_MOVE",
			models.ErrNonAdjacentMove,
			"Move the task one column at a time")
	}

	moved, _ := b.Task(task.ID)
	slog.Info("task dragged", "task_id", task.ID, "from", task.ColumnID, "to", moved.ColumnID, "committed", outcome.Committed)

	out := cli.NewTaskOutput(moved, b.Columns())
	if formatter.Quiet || formatter.JSON {
		return formatter.Success(out)
	}

	if !outcome.Committed {
		fmt.Println("Nothing to move")
		return nil
	}
	fmt.Printf("Moved %s to %s\n", out.Title, out.Column)
	return nil
}
