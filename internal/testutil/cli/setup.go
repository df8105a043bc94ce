package cli

import (
	"context"
	"testing"
	"time"

	"github.com/thenoetrevino/kboard/internal/app"
	"github.com/thenoetrevino/kboard/internal/config"
	"github.com/thenoetrevino/kboard/internal/models"
	"github.com/thenoetrevino/kboard/internal/storage"
	"github.com/thenoetrevino/kboard/internal/types"
)

// FixedNow is the clock every CLI test app runs on
var FixedNow = time.Date(2026, 5, 4, 9, 30, 0, 0, time.UTC)

// SetupCLITest opens an App over an in-memory KV and returns both.
// The App is closed when the test ends.
func SetupCLITest(t *testing.T) (*storage.MemoryKV, *app.App) {
	t.Helper()
	return SetupCLITestWithKV(t, storage.NewMemoryKV())
}

// SetupCLITestWithKV opens an App over kv, which may already hold a board
func SetupCLITestWithKV(t *testing.T, kv *storage.MemoryKV) (*storage.MemoryKV, *app.App) {
	t.Helper()

	cfg := config.Default()
	cfg.Storage.Backend = config.BackendMemory

	appInstance, err := app.New(context.Background(), cfg,
		app.WithKV(kv),
		app.WithClock(func() time.Time { return FixedNow }),
	)
	if err != nil {
		t.Fatalf("Failed to create test app: %v", err)
	}
	t.Cleanup(func() {
		_ = appInstance.Close()
	})

	return kv, appInstance
}

// CreateTestTask adds a task with the given title to a column and returns its id
func CreateTestTask(t *testing.T, a *app.App, columnID types.ColumnID, title string) types.TaskID {
	t.Helper()

	ctx := context.Background()
	task, err := a.Board.AddTaskWith(ctx, columnID, models.TaskPatch{Title: &title})
	if err != nil {
		t.Fatalf("Failed to create test task: %v", err)
	}
	return task.ID
}

// CreateTestColumn appends a column and returns its id
func CreateTestColumn(t *testing.T, a *app.App, title string) types.ColumnID {
	t.Helper()

	col, err := a.Board.AddColumn(context.Background(), title)
	if err != nil {
		t.Fatalf("Failed to create test column: %v", err)
	}
	return col.ID
}
