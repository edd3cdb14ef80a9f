// Package domain contains application usecases orchestrating the core
// business logic by subtask.
package domain

import (
	"context"
	"fmt"

	"github.com/Vedant634/flowdesk-project/internal/entities"

	"github.com/google/uuid"
)

// AddSubtask creates a checklist item under a task.
func (u *Usecase) AddSubtask(ctx context.Context, taskID, title string) (*entities.Subtask, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	if taskID == "" || title == "" {
		return nil, fmt.Errorf("%w: task_id and title are required", entities.ErrInvalidArgument)
	}

	return u.repo.CreateSubtask(ctx, entities.Subtask{
		ID:     uuid.NewString(),
		TaskID: taskID,
		Title:  title,
	})
}

// Subtasks lists a task's checklist items.
func (u *Usecase) Subtasks(ctx context.Context, taskID string) ([]entities.Subtask, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	if taskID == "" {
		return nil, fmt.Errorf("%w: task_id is required", entities.ErrInvalidArgument)
	}
	return u.repo.GetTaskSubtasks(ctx, taskID)
}

// ToggleSubtask flips a subtask's completion state.
func (u *Usecase) ToggleSubtask(ctx context.Context, subtaskID string) (*entities.Subtask, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	if subtaskID == "" {
		return nil, fmt.Errorf("%w: subtask_id is required", entities.ErrInvalidArgument)
	}
	return u.repo.ToggleSubtask(ctx, subtaskID)
}

// DeleteSubtask removes a subtask.
func (u *Usecase) DeleteSubtask(ctx context.Context, subtaskID string) error {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	if subtaskID == "" {
		return fmt.Errorf("%w: subtask_id is required", entities.ErrInvalidArgument)
	}
	return u.repo.DeleteSubtask(ctx, subtaskID)
}
