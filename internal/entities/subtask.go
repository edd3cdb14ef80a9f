// Package entities contains core business entities.
package entities

import "time"

// Subtask is a checklist item owned by a task. Completion toggling is
// idempotent in pairs: toggling twice restores both fields.
type Subtask struct {
	ID          string
	TaskID      string
	Title       string
	IsCompleted bool
	CompletedAt *time.Time
}
