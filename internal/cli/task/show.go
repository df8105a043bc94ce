package task

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/kboard/internal/cli"
	"github.com/thenoetrevino/kboard/internal/cli/styles"
	"github.com/thenoetrevino/kboard/internal/markdown"
	"github.com/thenoetrevino/kboard/internal/models"
)

// ShowCmd returns the task show subcommand
func ShowCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "show [task-id]",
		Short: "Show task details",
		Long: `Show one task with its column, priority, dates and rendered description.

Examples:
  kboard task show 2f1c...
  kboard task show --id=2f1c... --json
`,
		Args: cobra.MaximumNArgs(1),
		RunE: runShow,
	}

	addIDFlag(cmd)
	cli.AddOutputFlags(cmd)

	return cmd
}

func runShow(cmd *cobra.Command, args []string) error {
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

	out := cli.NewTaskOutput(task, cliInstance.App.Board.Columns())
	if formatter.Quiet || formatter.JSON {
		return formatter.Success(out)
	}

	fmt.Println(styles.RenderCard(renderTaskCard(out)))
	return nil
}

// renderTaskCard lays out a task as labelled fields followed by its
// description rendered as markdown
func renderTaskCard(t cli.TaskOutput) string {
	var sb strings.Builder

	sb.WriteString(styles.TitleStyle.Render(t.Title))
	sb.WriteString("\n\n")

	field := func(label, value string) {
		sb.WriteString(styles.LabelStyle.Render(label))
		sb.WriteString(" ")
		sb.WriteString(styles.ValueStyle.Render(value))
		sb.WriteString("\n")
	}

	field("ID:", t.ID)
	field("Column:", t.Column)
	sb.WriteString(styles.LabelStyle.Render("Priority:"))
	sb.WriteString(" ")
	sb.WriteString(styles.RenderPriority(models.Priority(t.Priority)))
	sb.WriteString("\n")
	if t.StartDate != nil {
		field("Start:", t.StartDate.Format("2006-01-02"))
	}
	if t.EndDate != nil {
		field("End:", t.EndDate.Format("2006-01-02"))
	}

	if rendered := markdown.Render(t.Description, styles.CardWidth-6); rendered != "" {
		sb.WriteString("\n")
		sb.WriteString(styles.SectionStyle.Render("Description"))
		sb.WriteString("\n")
		sb.WriteString(strings.TrimRight(rendered, "\n"))
	}

	return sb.String()
}
