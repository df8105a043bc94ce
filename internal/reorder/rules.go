package reorder

import (
	"github.com/thenoetrevino/kboard/internal/models"
	"github.com/thenoetrevino/kboard/internal/types"
)

// Adjacent reports whether a task may travel from the column at index
// origin to the column at index target: same column or one step away.
func Adjacent(origin, target int) bool {
	d := origin - target
	return d >= -1 && d <= 1
}

// moveTask applies one hover of a dragged task. It returns the new task
// sequence, or nil when nothing changes. A rejected hover returns a notice
// and leaves the sequence alone.
func moveTask(columns []models.Column, tasks []models.Task, active types.TaskID, origin types.ColumnID, target Item) ([]models.Task, *models.Notice) {
	if target.Kind == KindTask && target.TaskID() == active {
		return nil, nil
	}

	activeIdx := models.TaskIndex(tasks, active)
	if activeIdx < 0 {
		return nil, nil
	}

	overIdx := -1
	var targetColumn types.ColumnID
	switch target.Kind {
	case KindTask:
		overIdx = models.TaskIndex(tasks, target.TaskID())
		if overIdx < 0 {
			return nil, nil
		}
		targetColumn = tasks[overIdx].ColumnID
	case KindColumn:
		targetColumn = target.ColumnID()
	default:
		return nil, nil
	}

	originIdx := models.ColumnIndex(columns, origin)
	targetIdx := models.ColumnIndex(columns, targetColumn)
	if originIdx < 0 || targetIdx < 0 {
		return nil, nil
	}
	if !Adjacent(originIdx, targetIdx) {
		return nil, models.InvalidMoveNotice()
	}

	current := tasks[activeIdx].ColumnID

	if target.Kind == KindTask {
		if current == targetColumn {
			return MoveElement(tasks, activeIdx, overIdx), nil
		}
		next := append([]models.Task(nil), tasks...)
		next[activeIdx].ColumnID = targetColumn
		return MoveElement(next, activeIdx, beforeIndex(activeIdx, overIdx)), nil
	}

	if current == targetColumn {
		return nil, nil
	}
	next := append([]models.Task(nil), tasks...)
	next[activeIdx].ColumnID = targetColumn
	return next, nil
}

// beforeIndex is the destination that lands the element at from directly in
// front of the element currently at over. Removing from shifts every later
// element down by one, so targets after the source need compensating.
func beforeIndex(from, over int) int {
	if from < over {
		return over - 1
	}
	return over
}

// moveColumn reorders columns for a column drag released over target.
// Hovering a task counts as hovering the column that holds it.
// Returns nil when the order would not change.
func moveColumn(columns []models.Column, tasks []models.Task, active types.ColumnID, target Item) []models.Column {
	var targetColumn types.ColumnID
	switch target.Kind {
	case KindColumn:
		targetColumn = target.ColumnID()
	case KindTask:
		idx := models.TaskIndex(tasks, target.TaskID())
		if idx < 0 {
			return nil
		}
		targetColumn = tasks[idx].ColumnID
	default:
		return nil
	}

	if targetColumn == active {
		return nil
	}

	from := models.ColumnIndex(columns, active)
	to := models.ColumnIndex(columns, targetColumn)
	if from < 0 || to < 0 {
		return nil
	}

	return MoveElement(columns, from, to)
}
