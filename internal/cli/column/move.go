package column

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/kboard/internal/cli"
	"github.com/thenoetrevino/kboard/internal/models"
	"github.com/thenoetrevino/kboard/internal/reorder"
)

// MoveCmd returns the column move subcommand
func MoveCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "move [column]",
		Short: "Drag a column onto another column",
		Long: `Drop a column onto another column. The dragged column takes the target's
position and the columns in between shift over.

Examples:
  kboard column move Done --over Todo
`,
		Args: cobra.MaximumNArgs(1),
		RunE: runMove,
	}

	cmd.Flags().String("id", "", "Column id or title")
	cmd.Flags().String("over", "", "Target column id or title (required)")
	_ = cmd.MarkFlagRequired("over")
	cli.AddOutputFlags(cmd)

	return cmd
}

func runMove(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	formatter := cli.FormatterFromCmd(cmd)

	overRef, _ := cmd.Flags().GetString("over")

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
	columns := b.Columns()
	over, ok := cli.FindColumn(columns, overRef)
	if !ok {
		return formatter.FailWithSuggestion(cli.ExitNotFound, "COLUMN_NOT_FOUND",
			fmt.Errorf("%w: %s", models.ErrColumnNotFound, overRef),
			"Available columns: "+cli.FormatAvailableColumns(columns))
	}

	outcome, err := b.Drag(ctx, reorder.ColumnItem(col.ID), reorder.ColumnItem(over.ID))
	if err != nil {
		return formatter.Fail(cli.ExitError, "COLUMN_MOVE_ERROR", err)
	}

	slog.Info("column moved", "column_id", col.ID, "over", over.ID, "committed", outcome.Committed)

	outputs := cli.NewColumnOutputs(b.Columns(), b.Tasks())
	if formatter.Quiet {
		return nil
	}
	if formatter.JSON {
		return formatter.Success(outputs)
	}

	if !outcome.Committed {
		fmt.Println("Nothing to move")
		return nil
	}
	for _, out := range outputs {
		fmt.Printf("  %d. %s\n", out.Position+1, out.Title)
	}
	return nil
}
