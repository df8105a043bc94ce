package models

import (
	"time"

	"github.com/thenoetrevino/kboard/internal/types"
)

// ============================================================================
// TASK DEFAULTS
// ============================================================================

// DefaultTaskDuration is the span between a new task's start and end date
const DefaultTaskDuration = 3 * 24 * time.Hour

// DefaultTaskTitleFormat names new tasks; the argument is the task count + 1
const DefaultTaskTitleFormat = "New task %d"

// DefaultColumnTitleFormat names new columns; the argument is the column count + 1
const DefaultColumnTitleFormat = "Column %d"

// DefaultEntryColumn is where new tasks are created
const DefaultEntryColumn = types.ColumnUnvalidated

// ============================================================================
// NOTICE IDS
// ============================================================================

// NoticeInvalidMove identifies the advisory for a rejected drag
const NoticeInvalidMove = "invalid-move"
