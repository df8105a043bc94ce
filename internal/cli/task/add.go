package task

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/kboard/internal/cli"
	"github.com/thenoetrevino/kboard/internal/models"
	"github.com/thenoetrevino/kboard/internal/types"
)

// AddCmd returns the task add subcommand
func AddCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a new task",
		Long: `Add a new task at the end of a column. Without --column the task goes
into the entry column.

Examples:
  # Default title in the entry column
  kboard task add

  # Named task in Todo
  kboard task add --column Todo --title "Write release notes"

  # Quiet mode for bash capture
  TASK_ID=$(kboard task add --title "Fix bug" --quiet)

  # Description from stdin
  echo "Steps to reproduce..." | kboard task add --title "Crash" --description -
`,
		Args: cobra.NoArgs,
		RunE: runAdd,
	}

	cmd.Flags().String("column", "", "Column id or title (defaults to the entry column)")
	cmd.Flags().String("title", "", "Task title (defaults to \"New task N\")")
	cmd.Flags().String("description", "", "Task description (use - for stdin)")
	cmd.Flags().String("priority", "", "Priority: low, medium, high")
	cli.AddOutputFlags(cmd)

	return cmd
}

func runAdd(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	columnRef, _ := cmd.Flags().GetString("column")
	title, _ := cmd.Flags().GetString("title")
	description, _ := cmd.Flags().GetString("description")
	priorityFlag, _ := cmd.Flags().GetString("priority")

	formatter := cli.FormatterFromCmd(cmd)

	var priority *models.Priority
	if priorityFlag != "" {
		p, err := models.ParsePriority(priorityFlag)
		if err != nil {
			return formatter.FailWithSuggestion(cli.ExitValidation, "INVALID_PRIORITY", err,
				"Valid priorities: Low, Medium, High")
		}
		priority = &p
	}

	description, err := cli.ReadText(description, cmd.InOrStdin())
	if err != nil {
		return formatter.Fail(cli.ExitError, "STDIN_READ_ERROR", err)
	}

	cliInstance, err := cli.GetCLIFromContext(ctx)
	if err != nil {
		return cli.InitFailure(formatter, err)
	}
	defer cli.CloseCLI(cliInstance)

	b := cliInstance.App.Board
	columns := b.Columns()

	var columnID types.ColumnID
	if columnRef != "" {
		col, ok := cli.FindColumn(columns, columnRef)
		if !ok {
			return columnNotFound(formatter, columnRef, columns)
		}
		columnID = col.ID
	}

	patch := models.TaskPatch{Priority: priority}
	if title != "" {
		patch.Title = &title
	}
	if description != "" {
		patch.Description = &description
	}

	task, err := b.AddTaskWith(ctx, columnID, patch)
	if err != nil {
		if columnID == "" {
			return formatter.FailWithSuggestion(cli.ExitNotFound, "COLUMN_NOT_FOUND", err,
				"The entry column no longer exists; pass --column")
		}
		return formatter.Fail(cli.ExitError, "TASK_CREATE_ERROR", err)
	}

	slog.Info("task added", "task_id", task.ID, "column", task.ColumnID)

	out := cli.NewTaskOutput(task, columns)
	if formatter.Quiet || formatter.JSON {
		return formatter.Success(out)
	}

	fmt.Printf("Created task %s: %s (in %s)\n", out.ID, out.Title, out.Column)
	return nil
}
