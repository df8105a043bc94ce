package setup

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/kboard/internal/cli"
	"github.com/thenoetrevino/kboard/internal/config"
	"gopkg.in/yaml.v3"
)

// ConfigCmd returns the config parent command
func ConfigCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Create or inspect the config file",
	}

	cmd.AddCommand(InitCmd())
	cmd.AddCommand(ShowCmd())
	cmd.AddCommand(PathCmd())

	return cmd
}

// configPath honours the root --config flag before the default location
func configPath(ctx context.Context) (string, error) {
	if path := cli.ConfigPath(ctx); path != "" {
		return path, nil
	}
	return config.Path()
}

// InitCmd returns the config init subcommand
func InitCmd() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Write a config file with every default filled in",
		Long: `Write the default configuration to the config file so it can be edited.

Examples:
  # Create ~/.config/kboard/config.yaml
  kboard config init

  # Overwrite an existing file
  kboard config init --force
`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			formatter := cli.FormatterFromCmd(cmd)

			path, err := configPath(cmd.Context())
			if err != nil {
				return formatter.Fail(cli.ExitError, "CONFIG_PATH_ERROR", err)
			}

			if _, err := os.Stat(path); err == nil && !force {
				return formatter.FailWithSuggestion(cli.ExitUsage, "CONFIG_EXISTS",
					fmt.Errorf("config already exists at %s", path),
					"Pass --force to overwrite it")
			}

			if err := config.Default().SaveTo(path); err != nil {
				return formatter.Fail(cli.ExitError, "CONFIG_WRITE_ERROR", err)
			}

			if formatter.Quiet {
				return nil
			}
			if formatter.JSON {
				return cli.WriteJSON(map[string]any{"success": true, "path": path})
			}
			fmt.Printf("Wrote %s\n", path)
			return nil
		},
	}

	cmd.Flags().BoolVar(&force, "force", false, "Overwrite an existing config file")
	cli.AddOutputFlags(cmd)

	return cmd
}

// ShowCmd returns the config show subcommand
func ShowCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "show",
		Short: "Print the effective configuration",
		Long: `Print the configuration after defaults and KBOARD_* environment
overrides have been applied.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			formatter := cli.FormatterFromCmd(cmd)

			path, err := configPath(cmd.Context())
			if err != nil {
				return formatter.Fail(cli.ExitError, "CONFIG_PATH_ERROR", err)
			}
			cfg, err := config.LoadFile(path)
			if err != nil {
				return cli.InitFailure(formatter, err)
			}

			if formatter.JSON {
				return formatter.Success(cfg)
			}

			data, err := yaml.Marshal(cfg)
			if err != nil {
				return formatter.Fail(cli.ExitError, "CONFIG_ENCODE_ERROR", err)
			}
			fmt.Print(string(data))
			return nil
		},
	}

	cli.AddOutputFlags(cmd)

	return cmd
}

// PathCmd returns the config path subcommand
func PathCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "path",
		Short: "Print where the config file is read from",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := configPath(cmd.Context())
			if err != nil {
				return cli.Exit(cli.ExitError, err)
			}
			fmt.Println(path)
			return nil
		},
	}
}
