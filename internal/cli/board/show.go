package board

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/kboard/internal/cli"
	"github.com/thenoetrevino/kboard/internal/cli/styles"
	"github.com/thenoetrevino/kboard/internal/models"
)

// columnView is the JSON shape of one column in board show
type columnView struct {
	ID    string           `json:"id"`
	Title string           `json:"title"`
	Tasks []cli.TaskOutput `json:"tasks"`
}

// ShowCmd returns the board show subcommand
func ShowCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "show",
		Short: "Print every column and its tasks",
		Long: `Print the board column by column. With --filter only tasks whose title
or description contains the term are shown; columns are always listed.

Examples:
  kboard board show
  kboard board show --filter login --json
`,
		Args: cobra.NoArgs,
		RunE: runShow,
	}

	cmd.Flags().String("filter", "", "Case-insensitive search on title and description")
	cli.AddOutputFlags(cmd)

	return cmd
}

func runShow(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	formatter := cli.FormatterFromCmd(cmd)

	query, _ := cmd.Flags().GetString("filter")

	cliInstance, err := cli.GetCLIFromContext(ctx)
	if err != nil {
		return cli.InitFailure(formatter, err)
	}
	defer cli.CloseCLI(cliInstance)

	b := cliInstance.App.Board
	view := b.Filter(query)
	columns := b.Columns()

	out := make([]columnView, len(view.Columns))
	for i, cv := range view.Columns {
		tasks := make([]cli.TaskOutput, len(cv.Tasks))
		for j, t := range cv.Tasks {
			tasks[j] = cli.NewTaskOutput(t, columns)
		}
		out[i] = columnView{ID: string(cv.Column.ID), Title: cv.Column.Title, Tasks: tasks}
	}

	if formatter.Quiet {
		for _, col := range out {
			for _, t := range col.Tasks {
				fmt.Println(t.ID)
			}
		}
		return nil
	}

	if formatter.JSON {
		return cli.WriteJSON(map[string]any{
			"success": true,
			"query":   view.Query,
			"count":   view.Count(),
			"columns": out,
		})
	}

	var sb strings.Builder
	if view.Query != "" {
		sb.WriteString(styles.SubtitleStyle.Render(fmt.Sprintf("Filter %q: %d task(s)", view.Query, view.Count())))
		sb.WriteString("\n\n")
	}
	for i, col := range out {
		if i > 0 {
			sb.WriteString("\n")
		}
		sb.WriteString(styles.SectionStyle.Render(fmt.Sprintf("%s (%d)", col.Title, len(col.Tasks))))
		sb.WriteString("\n")
		if len(col.Tasks) == 0 {
			sb.WriteString(styles.SubtitleStyle.Render("  (empty)"))
			sb.WriteString("\n")
			continue
		}
		for _, t := range col.Tasks {
			fmt.Fprintf(&sb, "  %s %s %s\n",
				styles.RenderPriority(models.Priority(t.Priority)),
				t.Title,
				styles.SubtitleStyle.Render(t.ID))
		}
	}
	fmt.Print(sb.String())
	return nil
}
