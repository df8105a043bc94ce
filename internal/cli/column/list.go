package column

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/kboard/internal/cli"
	"github.com/thenoetrevino/kboard/internal/cli/styles"
)

// ListCmd returns the column list subcommand
func ListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List columns in pipeline order",
		Args:  cobra.NoArgs,
		RunE:  runList,
	}

	cli.AddOutputFlags(cmd)

	return cmd
}

func runList(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	formatter := cli.FormatterFromCmd(cmd)

	cliInstance, err := cli.GetCLIFromContext(ctx)
	if err != nil {
		return cli.InitFailure(formatter, err)
	}
	defer cli.CloseCLI(cliInstance)

	b := cliInstance.App.Board
	out := cli.NewColumnOutputs(b.Columns(), b.Tasks())

	if formatter.Quiet {
		for _, col := range out {
			fmt.Println(col.ID)
		}
		return nil
	}

	if formatter.JSON {
		return cli.WriteJSON(map[string]any{
			"success": true,
			"columns": out,
		})
	}

	if len(out) == 0 {
		fmt.Println("No columns")
		return nil
	}

	for _, col := range out {
		fmt.Printf("  %d. %s %s\n", col.Position+1, col.Title,
			styles.SubtitleStyle.Render(fmt.Sprintf("(%s, %d task(s))", col.ID, col.TaskCount)))
	}
	return nil
}
