package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/Vedant634/flowdesk-project/internal/entities"

	"github.com/jackc/pgx/v5"
)

const (
	insertSubtaskQuery = `
INSERT INTO subtasks (id, task_id, title)
VALUES ($1, $2, $3)`

	selectTaskSubtasksQuery = `
SELECT id, task_id, title, is_completed, completed_at
FROM subtasks
WHERE task_id=$1
ORDER BY created_at`

	toggleSubtaskQuery = `
UPDATE subtasks
SET is_completed = NOT is_completed,
    completed_at = CASE WHEN is_completed THEN NULL ELSE NOW() END
WHERE id=$1
RETURNING id, task_id, title, is_completed, completed_at`

	deleteSubtaskQuery = `DELETE FROM subtasks WHERE id=$1`
)

// CreateSubtask inserts a checklist item under an existing task.
func (p *Postgres) CreateSubtask(ctx context.Context, subtask entities.Subtask) (*entities.Subtask, error) {
	tx, err := p.db.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return nil, err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	var exists bool
	if err := tx.QueryRow(ctx, `SELECT true FROM tasks WHERE id=$1`, subtask.TaskID).Scan(&exists); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, entities.ErrTaskNotFound
		}
		return nil, fmt.Errorf("task lookup: %w", err)
	}

	if _, err := tx.Exec(ctx, insertSubtaskQuery, subtask.ID, subtask.TaskID, subtask.Title); err != nil {
		return nil, fmt.Errorf("insert subtask: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, err
	}

	subtask.IsCompleted = false
	subtask.CompletedAt = nil
	return &subtask, nil
}

// GetTaskSubtasks lists a task's subtasks in creation order.
func (p *Postgres) GetTaskSubtasks(ctx context.Context, taskID string) ([]entities.Subtask, error) {
	var exists bool
	if err := p.db.QueryRow(ctx, `SELECT true FROM tasks WHERE id=$1`, taskID).Scan(&exists); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, entities.ErrTaskNotFound
		}
		return nil, fmt.Errorf("task lookup: %w", err)
	}

	rows, err := p.db.Query(ctx, selectTaskSubtasksQuery, taskID)
	if err != nil {
		return nil, fmt.Errorf("select subtasks: %w", err)
	}
	defer rows.Close()

	subtasks := make([]entities.Subtask, 0)
	for rows.Next() {
		var s entities.Subtask
		if err := rows.Scan(&s.ID, &s.TaskID, &s.Title, &s.IsCompleted, &s.CompletedAt); err != nil {
			return nil, fmt.Errorf("scan subtask: %w", err)
		}
		subtasks = append(subtasks, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate subtasks: %w", err)
	}
	return subtasks, nil
}

// ToggleSubtask flips completion. Completing sets the timestamp, reopening
// clears it.
func (p *Postgres) ToggleSubtask(ctx context.Context, subtaskID string) (*entities.Subtask, error) {
	var s entities.Subtask
	err := p.db.QueryRow(ctx, toggleSubtaskQuery, subtaskID).
		Scan(&s.ID, &s.TaskID, &s.Title, &s.IsCompleted, &s.CompletedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, entities.ErrSubtaskNotFound
		}
		return nil, fmt.Errorf("toggle subtask: %w", err)
	}
	return &s, nil
}

// DeleteSubtask removes a subtask.
func (p *Postgres) DeleteSubtask(ctx context.Context, subtaskID string) error {
	tag, err := p.db.Exec(ctx, deleteSubtaskQuery, subtaskID)
	if err != nil {
		return fmt.Errorf("delete subtask: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return entities.ErrSubtaskNotFound
	}
	return nil
}
