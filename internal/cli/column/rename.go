package column

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/kboard/internal/cli"
)

// RenameCmd returns the column rename subcommand
func RenameCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "rename [column]",
		Short: "Rename a column",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runRename,
	}

	cmd.Flags().String("id", "", "Column id or title")
	cmd.Flags().String("title", "", "New title (required)")
	_ = cmd.MarkFlagRequired("title")
	cli.AddOutputFlags(cmd)

	return cmd
}

func runRename(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	formatter := cli.FormatterFromCmd(cmd)

	title, _ := cmd.Flags().GetString("title")
	title = strings.TrimSpace(title)
	if title == "" {
		return formatter.Fail(cli.ExitUsage, "INVALID_TITLE", fmt.Errorf("title cannot be blank"))
	}

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
	if err := b.UpdateColumn(ctx, col.ID, title); err != nil {
		return formatter.Fail(cli.ExitError, "COLUMN_UPDATE_ERROR", err)
	}

	slog.Info("column renamed", "column_id", col.ID, "from", col.Title, "to", title)

	if formatter.Quiet || formatter.JSON {
		for _, out := range cli.NewColumnOutputs(b.Columns(), b.Tasks()) {
			if out.ID == string(col.ID) {
				return formatter.Success(out)
			}
		}
	}

	fmt.Printf("Renamed column %s to %s\n", col.Title, title)
	return nil
}
