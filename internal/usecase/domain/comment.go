// Package domain contains application usecases orchestrating the core
// business logic by comment.
package domain

import (
	"context"
	"fmt"

	"github.com/Vedant634/flowdesk-project/internal/entities"

	"github.com/google/uuid"
)

// AddComment records a comment on a task by the given author.
func (u *Usecase) AddComment(ctx context.Context, taskID, authorID, content string) (*entities.Comment, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	if taskID == "" || authorID == "" {
		return nil, fmt.Errorf("%w: task_id and author_id are required", entities.ErrInvalidArgument)
	}
	if content == "" {
		return nil, fmt.Errorf("%w: content is required", entities.ErrInvalidArgument)
	}

	return u.repo.CreateComment(ctx, entities.Comment{
		ID:       uuid.NewString(),
		TaskID:   taskID,
		AuthorID: authorID,
		Content:  content,
	})
}

// TaskComments lists a task's comments oldest first.
func (u *Usecase) TaskComments(ctx context.Context, taskID string) ([]entities.Comment, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	if taskID == "" {
		return nil, fmt.Errorf("%w: task_id is required", entities.ErrInvalidArgument)
	}
	return u.repo.GetTaskComments(ctx, taskID)
}

// UpdateComment replaces a comment's content.
func (u *Usecase) UpdateComment(ctx context.Context, commentID, content string) (*entities.Comment, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	if commentID == "" {
		return nil, fmt.Errorf("%w: comment_id is required", entities.ErrInvalidArgument)
	}
	if content == "" {
		return nil, fmt.Errorf("%w: content is required", entities.ErrInvalidArgument)
	}
	return u.repo.UpdateComment(ctx, commentID, content)
}

// DeleteComment removes a comment.
func (u *Usecase) DeleteComment(ctx context.Context, commentID string) error {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	if commentID == "" {
		return fmt.Errorf("%w: comment_id is required", entities.ErrInvalidArgument)
	}
	return u.repo.DeleteComment(ctx, commentID)
}
