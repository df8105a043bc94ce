package task

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/kboard/internal/cli"
	"github.com/thenoetrevino/kboard/internal/cli/styles"
	"github.com/thenoetrevino/kboard/internal/models"
)

// PriorityCmd returns the task priority subcommand
func PriorityCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "priority [task-id]",
		Short: "Cycle or set a task's priority",
		Long: `Without --set the priority advances Low -> Medium -> High -> Low.

Examples:
  kboard task priority 2f1c...
  kboard task priority 2f1c... --set high
`,
		Args: cobra.MaximumNArgs(1),
		RunE: runPriority,
	}

	addIDFlag(cmd)
	cmd.Flags().String("set", "", "Set priority explicitly: low, medium, high")
	cli.AddOutputFlags(cmd)

	return cmd
}

func runPriority(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	formatter := cli.FormatterFromCmd(cmd)

	setFlag, _ := cmd.Flags().GetString("set")
	var explicit *models.Priority
	if setFlag != "" {
		p, err := models.ParsePriority(setFlag)
		if err != nil {
			return formatter.FailWithSuggestion(cli.ExitValidation, "INVALID_PRIORITY", err,
				"Valid priorities: Low, Medium, High")
		}
		explicit = &p
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
	if explicit != nil {
		if err := b.UpdateTaskPriority(ctx, task.ID, *explicit); err != nil {
			return formatter.Fail(cli.ExitError, "TASK_UPDATE_ERROR", err)
		}
		task.Priority = *explicit
	} else {
		next, ok, err := b.CyclePriority(ctx, task.ID)
		if err != nil {
			return formatter.Fail(cli.ExitError, "TASK_UPDATE_ERROR", err)
		}
		if !ok {
			return formatter.Fail(cli.ExitNotFound, "TASK_NOT_FOUND",
				fmt.Errorf("%w: %s", models.ErrTaskNotFound, task.ID))
		}
		task.Priority = next
	}

	slog.Info("task priority changed", "task_id", task.ID, "priority", task.Priority)

	out := cli.NewTaskOutput(task, b.Columns())
	if formatter.Quiet || formatter.JSON {
		return formatter.Success(out)
	}

	fmt.Printf("%s is now %s\n", out.Title, styles.RenderPriority(task.Priority))
	return nil
}
