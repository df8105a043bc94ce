package logging

import (
	"io"
	"log"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
)

// Logger is the global slog instance for the application
var Logger *slog.Logger

// LogFileName is the file written inside the log directory
const LogFileName = "kboard.log"

// DefaultDir returns ~/.kboard/logs
func DefaultDir() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(homeDir, ".kboard", "logs"), nil
}

// Init initializes the logging system, writing logs to ~/.kboard/logs/kboard.log.
// The terminal stays clean for the TUI.
func Init() (*os.File, error) {
	dir, err := DefaultDir()
	if err != nil {
		return nil, err
	}
	return InitAt(dir, os.Getenv("KBOARD_LOG_LEVEL"))
}

// InitAt writes logs to dir/kboard.log at the given level ("debug", "info",
// "warn", "error"; anything else means debug). The caller closes the file.
func InitAt(dir, level string) (*os.File, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}

	// Open log file in append mode
	file, err := os.OpenFile(filepath.Join(dir, LogFileName), os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, err
	}

	// Create text handler (human readable)
	handler := slog.NewTextHandler(file, &slog.HandlerOptions{
		Level: ParseLevel(level),
	})

	Logger = slog.New(handler)
	slog.SetDefault(Logger)

	// Redirect standard log package output to the same file
	log.SetOutput(file)
	log.SetFlags(log.LstdFlags)

	return file, nil
}

// Discard drops all log output. Used when the log file cannot be opened, so
// nothing falls back to stderr.
func Discard() {
	Logger = slog.New(slog.DiscardHandler)
	slog.SetDefault(Logger)
	log.SetOutput(io.Discard)
}

// ParseLevel maps a level name to a slog.Level, defaulting to debug
func ParseLevel(level string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "info":
		return slog.LevelInfo
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelDebug
	}
}
