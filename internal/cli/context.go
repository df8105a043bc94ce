package cli

import (
	"context"
	"fmt"

	"github.com/thenoetrevino/kboard/internal/app"
	"github.com/thenoetrevino/kboard/internal/cli/styles"
	"github.com/thenoetrevino/kboard/internal/config"
)

type contextKey string

const (
	appContextKey    contextKey = "kboard-app"
	configContextKey contextKey = "kboard-config-path"
)

// CLI represents the CLI application context
type CLI struct {
	App   *app.App
	owned bool
}

// WithApp stores an already opened App in ctx. Commands run against it
// instead of opening storage themselves, and leave closing it to the caller.
func WithApp(ctx context.Context, a *app.App) context.Context {
	return context.WithValue(ctx, appContextKey, a)
}

// WithConfigPath records the --config flag value for GetCLIFromContext
func WithConfigPath(ctx context.Context, path string) context.Context {
	return context.WithValue(ctx, configContextKey, path)
}

// GetCLIFromContext returns the CLI for a command invocation. An App placed
// in ctx with WithApp is reused; otherwise config is loaded and a new App
// opened, owned by the returned CLI.
func GetCLIFromContext(ctx context.Context) (*CLI, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	if a, ok := ctx.Value(appContextKey).(*app.App); ok && a != nil {
		return &CLI{App: a}, nil
	}

	cfg, err := LoadConfig(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	styles.Init(cfg.Theme)

	a, err := app.New(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize board: %w", err)
	}
	return &CLI{App: a, owned: true}, nil
}

// LoadConfig loads the file named by WithConfigPath, or the default config
func LoadConfig(ctx context.Context) (*config.Config, error) {
	if path := ConfigPath(ctx); path != "" {
		return config.LoadFile(path)
	}
	return config.Load()
}

// ConfigPath returns the path recorded by WithConfigPath, or ""
func ConfigPath(ctx context.Context) string {
	if ctx == nil {
		return ""
	}
	path, _ := ctx.Value(configContextKey).(string)
	return path
}

// Close cleans up CLI resources
func (c *CLI) Close() error {
	if c.owned {
		return c.App.Close()
	}
	return nil
}
