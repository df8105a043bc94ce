package column

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/kboard/internal/cli"
)

// AddCmd returns the column add subcommand
func AddCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "add",
		Short: "Append a column to the board",
		Long: `Append a column at the end of the pipeline. Without --title the column
is named "Column N".

Examples:
  kboard column add --title Review
  COL_ID=$(kboard column add --title QA --quiet)
`,
		Args: cobra.NoArgs,
		RunE: runAdd,
	}

	cmd.Flags().String("title", "", "Column title")
	cli.AddOutputFlags(cmd)

	return cmd
}

func runAdd(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	formatter := cli.FormatterFromCmd(cmd)

	title, _ := cmd.Flags().GetString("title")

	cliInstance, err := cli.GetCLIFromContext(ctx)
	if err != nil {
		return cli.InitFailure(formatter, err)
	}
	defer cli.CloseCLI(cliInstance)

	b := cliInstance.App.Board
	col, err := b.AddColumn(ctx, title)
	if err != nil {
		return formatter.Fail(cli.ExitError, "COLUMN_CREATE_ERROR", err)
	}

	slog.Info("column added", "column_id", col.ID, "title", col.Title)

	outputs := cli.NewColumnOutputs(b.Columns(), b.Tasks())
	out := outputs[len(outputs)-1]
	if formatter.Quiet || formatter.JSON {
		return formatter.Success(out)
	}

	fmt.Printf("Created column %s (%s)\n", out.Title, out.ID)
	return nil
}
