package app

import (
	"log/slog"
	"time"

	"github.com/thenoetrevino/kboard/internal/events"
	"github.com/thenoetrevino/kboard/internal/storage"
)

// Option is a functional option for configuring App initialization
type Option func(*appConfig)

// appConfig holds the configuration for App initialization
type appConfig struct {
	eventClient events.EventPublisher
	logger      *slog.Logger
	kv          storage.KV
	clock       func() time.Time
}

// WithEventPublisher sets the event publisher for the application.
// Without it the App creates its own in-process bus.
func WithEventPublisher(ec events.EventPublisher) Option {
	return func(cfg *appConfig) {
		cfg.eventClient = ec
	}
}

// WithLogger sets the logger for the application
func WithLogger(logger *slog.Logger) Option {
	return func(cfg *appConfig) {
		cfg.logger = logger
	}
}

// WithKV bypasses backend selection and stores the board in kv
func WithKV(kv storage.KV) Option {
	return func(cfg *appConfig) {
		cfg.kv = kv
	}
}

// WithClock sets the clock used for new task dates
func WithClock(now func() time.Time) Option {
	return func(cfg *appConfig) {
		cfg.clock = now
	}
}
