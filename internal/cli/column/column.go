package column

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/kboard/internal/cli"
	"github.com/thenoetrevino/kboard/internal/models"
)

// ColumnCmd returns the column parent command
func ColumnCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "column",
		Short: "Manage columns",
	}

	cmd.AddCommand(ListCmd())
	cmd.AddCommand(AddCmd())
	cmd.AddCommand(RenameCmd())
	cmd.AddCommand(DeleteCmd())
	cmd.AddCommand(MoveCmd())

	return cmd
}

// resolveColumn finds a column by id or title from the first argument or --id
func resolveColumn(cmd *cobra.Command, args []string, c *cli.CLI, formatter *cli.OutputFormatter) (models.Column, error) {
	ref, _ := cmd.Flags().GetString("id")
	if len(args) > 0 {
		ref = args[0]
	}
	if ref == "" {
		return models.Column{}, formatter.FailWithSuggestion(cli.ExitUsage, "INVALID_COLUMN_ID",
			fmt.Errorf("column id or title is required"),
			"Pass the column as an argument or with --id")
	}

	columns := c.App.Board.Columns()
	col, ok := cli.FindColumn(columns, ref)
	if !ok {
		return models.Column{}, formatter.FailWithSuggestion(cli.ExitNotFound, "COLUMN_NOT_FOUND",
			fmt.Errorf("%w: %s", models.ErrColumnNotFound, ref),
			"Available columns: "+cli.FormatAvailableColumns(columns))
	}
	return col, nil
}
