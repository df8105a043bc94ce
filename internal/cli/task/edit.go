package task

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/kboard/internal/cli"
	"github.com/thenoetrevino/kboard/internal/models"
)

// EditCmd returns the task edit subcommand
func EditCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "edit [task-id]",
		Short: "Edit task fields",
		Long: `Change a task's title, description or dates. Only the flags you pass
are changed.

Examples:
  kboard task edit 2f1c... --title "Ship it"
  kboard task edit 2f1c... --start 2026-05-01 --end 2026-05-10
  cat notes.md | kboard task edit 2f1c... --description -
`,
		Args: cobra.MaximumNArgs(1),
		RunE: runEdit,
	}

	addIDFlag(cmd)
	cmd.Flags().String("title", "", "New title")
	cmd.Flags().String("description", "", "New description (use - for stdin)")
	cmd.Flags().String("start", "", "Start date (YYYY-MM-DD)")
	cmd.Flags().String("end", "", "End date (YYYY-MM-DD)")
	cli.AddOutputFlags(cmd)

	return cmd
}

func runEdit(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	formatter := cli.FormatterFromCmd(cmd)

	patch := models.TaskPatch{}
	if cmd.Flags().Changed("title") {
		title, _ := cmd.Flags().GetString("title")
		patch.Title = &title
	}
	if cmd.Flags().Changed("description") {
		raw, _ := cmd.Flags().GetString("description")
		description, err := cli.ReadText(raw, cmd.InOrStdin())
		if err != nil {
			return formatter.Fail(cli.ExitError, "STDIN_READ_ERROR", err)
		}
		patch.Description = &description
	}
	for _, f := range []struct {
		name string
		dst  **time.Time
	}{
		{"start", &patch.StartDate},
		{"end", &patch.EndDate},
	} {
		if !cmd.Flags().Changed(f.name) {
			continue
		}
		raw, _ := cmd.Flags().GetString(f.name)
		d, err := cli.ParseDate(raw)
		if err != nil {
			return formatter.Fail(cli.ExitDataErr, "INVALID_DATE", err)
		}
		d = d.Truncate(time.Second)
		*f.dst = &d
	}

	if patch.IsEmpty() {
		return formatter.FailWithSuggestion(cli.ExitUsage, "NO_CHANGES",
			fmt.Errorf("nothing to change"),
			"Pass at least one of --title, --description, --start, --end")
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
	if err := b.UpdateTask(ctx, task.ID, patch); err != nil {
		return formatter.Fail(cli.ExitError, "TASK_UPDATE_ERROR", err)
	}
	task = patch.Apply(task)

	slog.Info("task edited", "task_id", task.ID)

	out := cli.NewTaskOutput(task, b.Columns())
	if formatter.Quiet || formatter.JSON {
		return formatter.Success(out)
	}

	fmt.Printf("Updated task %s: %s\n", out.ID, out.Title)
	return nil
}
