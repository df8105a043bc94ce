package board

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/kboard/internal/app"
	"github.com/thenoetrevino/kboard/internal/cli"
	"github.com/thenoetrevino/kboard/internal/models"
	"github.com/thenoetrevino/kboard/internal/storage"
)

// ResetCmd returns the board reset subcommand
func ResetCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "reset",
		Short: "Restore the default columns and delete every task",
		Long: `Restore the four default columns and delete every task. Also recovers a
board whose stored data can no longer be read.

Examples:
  kboard board reset --force
`,
		Args: cobra.NoArgs,
		RunE: runReset,
	}

	cmd.Flags().Bool("force", false, "Confirm the reset")
	cli.AddOutputFlags(cmd)

	return cmd
}

func runReset(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	formatter := cli.FormatterFromCmd(cmd)

	force, _ := cmd.Flags().GetBool("force")
	if !force {
		return formatter.FailWithSuggestion(cli.ExitUsage, "CONFIRMATION_REQUIRED",
			fmt.Errorf("reset deletes every task"),
			"Re-run with --force to confirm")
	}

	cliInstance, err := cli.GetCLIFromContext(ctx)
	switch {
	case err == nil:
		defer cli.CloseCLI(cliInstance)
		if err := cliInstance.App.Board.Reset(ctx); err != nil {
			return formatter.Fail(cli.ExitError, "RESET_ERROR", err)
		}
	case errors.Is(err, storage.ErrCorrupt), errors.Is(err, storage.ErrUnsupportedVersion):
		slog.Warn("overwriting unreadable board", "error", err)
		if err := overwrite(ctx); err != nil {
			return formatter.Fail(cli.ExitError, "RESET_ERROR", err)
		}
	default:
		return cli.InitFailure(formatter, err)
	}

	slog.Info("board reset")

	if formatter.Quiet {
		return nil
	}
	if formatter.JSON {
		return cli.WriteJSON(map[string]any{"success": true})
	}

	fmt.Println("Board reset to the default columns")
	return nil
}

// overwrite writes a default board straight to the configured backend,
// skipping the load that failed
func overwrite(ctx context.Context) error {
	cfg, err := cli.LoadConfig(ctx)
	if err != nil {
		return err
	}

	kv, err := app.OpenKV(ctx, cfg.Storage)
	if err != nil {
		return err
	}
	store := storage.NewStore(kv)
	defer func() {
		if err := store.Close(); err != nil {
			slog.Error("failed to close store", "error", err)
		}
	}()

	return store.Save(ctx, storage.State{Columns: models.DefaultColumns()})
}
