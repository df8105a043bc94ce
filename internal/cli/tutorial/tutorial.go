package tutorial

import (
	_ "embed"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/kboard/internal/markdown"
)

//go:embed tutorial.md
var tutorialContent string

// TutorialCmd returns the tutorial command
func TutorialCmd() *cobra.Command {
	var raw bool
	var width int

	cmd := &cobra.Command{
		Use:   "tutorial",
		Short: "Explain the board workflow",
		Long: `Print a short guide to columns, the one-step move rule and the most
common commands. Use --raw for plain markdown.`,
		Args: cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Print(render(raw, width))
		},
	}

	cmd.Flags().BoolVar(&raw, "raw", false, "Print the markdown source")
	cmd.Flags().IntVar(&width, "width", 80, "Wrap width for rendered output")

	return cmd
}

func render(raw bool, width int) string {
	if raw {
		return tutorialContent
	}
	return markdown.Render(tutorialContent, width)
}
