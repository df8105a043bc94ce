package task

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/kboard/internal/board"
	"github.com/thenoetrevino/kboard/internal/cli"
	"github.com/thenoetrevino/kboard/internal/cli/styles"
	"github.com/thenoetrevino/kboard/internal/models"
)

// ListCmd returns the task list subcommand
func ListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List tasks",
		Long: `List tasks in board order, optionally restricted to one column or to
tasks whose title or description contains a search term.

Examples:
  kboard task list
  kboard task list --column Doing
  kboard task list --filter urgent --json
`,
		Args: cobra.NoArgs,
		RunE: runList,
	}

	cmd.Flags().String("column", "", "Only tasks in this column (id or title)")
	cmd.Flags().String("filter", "", "Case-insensitive search on title and description")
	cli.AddOutputFlags(cmd)

	return cmd
}

func runList(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	columnRef, _ := cmd.Flags().GetString("column")
	query, _ := cmd.Flags().GetString("filter")

	formatter := cli.FormatterFromCmd(cmd)

	cliInstance, err := cli.GetCLIFromContext(ctx)
	if err != nil {
		return cli.InitFailure(formatter, err)
	}
	defer cli.CloseCLI(cliInstance)

	b := cliInstance.App.Board
	columns := b.Columns()

	var tasks []models.Task
	if columnRef != "" {
		col, ok := cli.FindColumn(columns, columnRef)
		if !ok {
			return columnNotFound(formatter, columnRef, columns)
		}
		tasks = b.TasksInColumn(col.ID)
	} else {
		tasks = b.Tasks()
	}
	tasks = board.FilterTasks(tasks, query)

	out := make([]cli.TaskOutput, len(tasks))
	for i, t := range tasks {
		out[i] = cli.NewTaskOutput(t, columns)
	}

	if formatter.Quiet {
		for _, t := range out {
			fmt.Println(t.ID)
		}
		return nil
	}

	if formatter.JSON {
		return cli.WriteJSON(map[string]any{
			"success": true,
			"tasks":   out,
		})
	}

	if len(out) == 0 {
		fmt.Println("No tasks found")
		return nil
	}

	fmt.Printf("Found %d task(s):\n\n", len(out))
	for _, t := range out {
		fmt.Printf("  %s %s %s\n    %s\n",
			styles.RenderPriority(models.Priority(t.Priority)),
			t.Title,
			styles.SubtitleStyle.Render("("+t.Column+")"),
			styles.SubtitleStyle.Render(t.ID))
	}
	return nil
}
