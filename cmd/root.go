// Package cmd holds the kboard command tree.
package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/kboard/internal/cli"
	"github.com/thenoetrevino/kboard/internal/cli/board"
	"github.com/thenoetrevino/kboard/internal/cli/column"
	"github.com/thenoetrevino/kboard/internal/cli/setup"
	"github.com/thenoetrevino/kboard/internal/cli/task"
	"github.com/thenoetrevino/kboard/internal/cli/tutorial"
	"github.com/thenoetrevino/kboard/internal/launcher"
	"github.com/thenoetrevino/kboard/internal/logging"
)

var (
	configPath string
	logFile    *os.File
)

var rootCmd = &cobra.Command{
	Use:   "kboard",
	Short: "kboard - A terminal-based kanban board",
	Long: `kboard is a single-user kanban board for the terminal.

Run it without arguments to open the board, or use the subcommands to
script it. Tasks move one column at a time.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		setupLogging()
		if configPath != "" {
			cmd.SetContext(cli.WithConfigPath(cmd.Context(), configPath))
		}
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		return launcher.Launch(cmd.Context())
	},
}

var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Open the interactive board",
	RunE: func(cmd *cobra.Command, args []string) error {
		return launcher.Launch(cmd.Context())
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "config file (default ~/.config/kboard/config.yaml)")

	rootCmd.AddCommand(tuiCmd)
	rootCmd.AddCommand(task.TaskCmd())
	rootCmd.AddCommand(column.ColumnCmd())
	rootCmd.AddCommand(board.BoardCmd())
	rootCmd.AddCommand(setup.ConfigCmd())
	rootCmd.AddCommand(tutorial.TutorialCmd())
}

// setupLogging sends slog output to ~/.kboard/logs/kboard.log so stdout and
// stderr carry only command output. Logs are dropped if the file can't be
// opened.
func setupLogging() {
	if logFile != nil {
		return
	}
	file, err := logging.Init()
	if err != nil {
		logging.Discard()
		return
	}
	logFile = file
}

func closeLogging() {
	if logFile != nil {
		_ = logFile.Close()
		logFile = nil
	}
}

// Execute runs the command tree and exits with the command's exit code
func Execute() {
	err := rootCmd.Execute()
	closeLogging()
	if err == nil {
		return
	}

	// CommandErrors have already been reported by the formatter
	var exitErr *cli.CommandError
	if !errors.As(err, &exitErr) {
		fmt.Fprintln(os.Stderr, "Error:", err)
	}
	os.Exit(cli.ExitCode(err))
}
