package board

import (
	"github.com/spf13/cobra"
)

// BoardCmd returns the board parent command
func BoardCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "board",
		Short: "Show or reset the whole board",
	}

	cmd.AddCommand(ShowCmd())
	cmd.AddCommand(ResetCmd())

	return cmd
}
