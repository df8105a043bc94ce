package cli

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/thenoetrevino/kboard/internal/config"
	"github.com/thenoetrevino/kboard/internal/models"
	"github.com/thenoetrevino/kboard/internal/storage"
	"github.com/thenoetrevino/kboard/internal/types"
)

// FindColumn resolves a column by id, then by case-insensitive title
func FindColumn(columns []models.Column, ref string) (models.Column, bool) {
	for _, col := range columns {
		if string(col.ID) == ref {
			return col, true
		}
	}
	for _, col := range columns {
		if strings.EqualFold(col.Title, ref) {
			return col, true
		}
	}
	return models.Column{}, false
}

// FormatAvailableColumns lists columns as "Title (ID)" for suggestions
func FormatAvailableColumns(columns []models.Column) string {
	names := make([]string, len(columns))
	for i, col := range columns {
		names[i] = fmt.Sprintf("%s (%s)", col.Title, col.ID)
	}
	return strings.Join(names, ", ")
}

// ColumnTitle returns the title of id, or the id itself when unknown
func ColumnTitle(columns []models.Column, id types.ColumnID) string {
	if idx := models.ColumnIndex(columns, id); idx >= 0 {
		return columns[idx].Title
	}
	return string(id)
}

// ParseDate accepts YYYY-MM-DD or RFC 3339 and returns a UTC time
func ParseDate(value string) (time.Time, error) {
	value = strings.TrimSpace(value)
	if t, err := time.Parse(time.DateOnly, value); err == nil {
		return t.UTC(), nil
	}
	t, err := time.Parse(time.RFC3339, value)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q (use YYYY-MM-DD or RFC 3339)", value)
	}
	return t.UTC(), nil
}

// ReadText returns value, or all of stdin when value is "-"
func ReadText(value string, stdin io.Reader) (string, error) {
	if value != "-" {
		return value, nil
	}
	if stdin == nil {
		stdin = os.Stdin
	}
	data, err := io.ReadAll(stdin)
	if err != nil {
		return "", fmt.Errorf("failed to read stdin: %w", err)
	}
	return strings.TrimRight(string(data), "\n"), nil
}

// InitFailure reports a failure to open the board and picks the exit code
func InitFailure(formatter *OutputFormatter, err error) error {
	switch {
	case errors.Is(err, storage.ErrCorrupt), errors.Is(err, storage.ErrUnsupportedVersion):
		return formatter.FailWithSuggestion(ExitDataErr, "DATA_ERROR", err,
			"Run 'kboard board reset --force' to start over with an empty board")
	case errors.Is(err, config.ErrInvalidConfig), errors.Is(err, storage.ErrUnknownBackend):
		return formatter.Fail(ExitUsage, "CONFIG_ERROR", err)
	default:
		return formatter.Fail(ExitError, "INITIALIZATION_ERROR", err)
	}
}

// CloseCLI closes c, logging any error
func CloseCLI(c *CLI) {
	if err := c.Close(); err != nil {
		slog.Error("failed to close CLI", "error", err)
	}
}
