package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/thenoetrevino/kboard/internal/board"
	"github.com/thenoetrevino/kboard/internal/config"
	"github.com/thenoetrevino/kboard/internal/database"
	"github.com/thenoetrevino/kboard/internal/events"
	"github.com/thenoetrevino/kboard/internal/storage"
	"github.com/thenoetrevino/kboard/internal/types"
)

// App holds the board and everything it depends on.
// This is the main application container that manages resource lifecycles.
type App struct {
	Config *config.Config
	Board  *board.Board

	store       *storage.Store
	eventClient events.EventPublisher
	ownsEvents  bool
	logger      *slog.Logger
}

// New opens the configured storage backend, loads the board and wires the
// event publisher. Close releases everything New opened.
func New(ctx context.Context, cfg *config.Config, opts ...Option) (*App, error) {
	if cfg == nil {
		cfg = config.Default()
	}

	options := &appConfig{}
	for _, opt := range opts {
		opt(options)
	}
	if options.logger == nil {
		options.logger = slog.Default()
	}

	kv := options.kv
	if kv == nil {
		opened, err := OpenKV(ctx, cfg.Storage)
		if err != nil {
			return nil, err
		}
		kv = opened
	}
	store := storage.NewStore(kv)

	a := &App{
		Config:      cfg,
		store:       store,
		eventClient: options.eventClient,
		logger:      options.logger,
	}
	if a.eventClient == nil {
		a.eventClient = events.NewBus(cfg.Events.BufferSize)
		a.ownsEvents = true
	}

	boardOpts := []board.Option{
		board.WithPublisher(a.eventClient),
		board.WithEntryColumn(types.ColumnID(cfg.Board.EntryColumn)),
	}
	if options.clock != nil {
		boardOpts = append(boardOpts, board.WithClock(options.clock))
	}

	b, err := board.Load(ctx, store, boardOpts...)
	if err != nil {
		_ = a.Close()
		return nil, err
	}
	a.Board = b

	a.logger.Info("board ready",
		"backend", cfg.Storage.Backend,
		"columns", len(b.Columns()),
		"tasks", len(b.Tasks()))

	return a, nil
}

// OpenKV opens the storage backend named in cfg
func OpenKV(ctx context.Context, cfg config.StorageConfig) (storage.KV, error) {
	switch cfg.Backend {
	case config.BackendSQLite, "":
		path := cfg.DBPath
		if path == "" {
			p, err := database.DefaultPath()
			if err != nil {
				return nil, err
			}
			path = p
		}
		repo, err := database.OpenKV(ctx, path)
		if err != nil {
			return nil, fmt.Errorf("failed to open sqlite store: %w", err)
		}
		return repo, nil

	case config.BackendRedis:
		kv, err := storage.DialRedis(ctx, cfg.Redis.Addr, cfg.Redis.DB, cfg.Redis.Prefix)
		if err != nil {
			return nil, fmt.Errorf("failed to open redis store: %w", err)
		}
		return kv, nil

	case config.BackendMemory:
		return storage.NewMemoryKV(), nil

	default:
		return nil, fmt.Errorf("%w: %q", storage.ErrUnknownBackend, cfg.Backend)
	}
}

// Events returns the publisher board changes are announced on
func (a *App) Events() events.EventPublisher {
	return a.eventClient
}

// Logger returns the application logger
func (a *App) Logger() *slog.Logger {
	return a.logger
}

// Close releases the storage backend and, if the App created it, the event bus
func (a *App) Close() error {
	var errs []error
	if a.ownsEvents && a.eventClient != nil {
		if err := a.eventClient.Close(); err != nil {
			errs = append(errs, fmt.Errorf("failed to close events: %w", err))
		}
	}
	if a.store != nil {
		if err := a.store.Close(); err != nil {
			errs = append(errs, fmt.Errorf("failed to close storage: %w", err))
		}
	}
	return errors.Join(errs...)
}
