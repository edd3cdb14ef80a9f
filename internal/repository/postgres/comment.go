package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/Vedant634/flowdesk-project/internal/entities"

	"github.com/jackc/pgx/v5"
)

const (
	insertCommentQuery = `
INSERT INTO comments (id, task_id, author_id, content)
VALUES ($1, $2, $3, $4)
RETURNING created_at`

	selectTaskCommentsQuery = `
SELECT id, task_id, author_id, content, created_at
FROM comments
WHERE task_id=$1
ORDER BY created_at`

	updateCommentQuery = `
UPDATE comments
SET content=$2
WHERE id=$1
RETURNING id, task_id, author_id, content, created_at`

	deleteCommentQuery = `DELETE FROM comments WHERE id=$1`
)

// CreateComment inserts a comment under an existing task.
func (p *Postgres) CreateComment(ctx context.Context, comment entities.Comment) (*entities.Comment, error) {
	tx, err := p.db.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return nil, err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	var exists bool
	if err := tx.QueryRow(ctx, `SELECT true FROM tasks WHERE id=$1`, comment.TaskID).Scan(&exists); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, entities.ErrTaskNotFound
		}
		return nil, fmt.Errorf("task lookup: %w", err)
	}
	if err := tx.QueryRow(ctx, userExistsQuery, comment.AuthorID).Scan(&exists); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, entities.ErrUserNotFound
		}
		return nil, fmt.Errorf("author lookup: %w", err)
	}

	err = tx.QueryRow(ctx, insertCommentQuery,
		comment.ID, comment.TaskID, comment.AuthorID, comment.Content).
		Scan(&comment.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("insert comment: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, err
	}
	return &comment, nil
}

// GetTaskComments lists a task's comments oldest first.
func (p *Postgres) GetTaskComments(ctx context.Context, taskID string) ([]entities.Comment, error) {
	var exists bool
	if err := p.db.QueryRow(ctx, `SELECT true FROM tasks WHERE id=$1`, taskID).Scan(&exists); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, entities.ErrTaskNotFound
		}
		return nil, fmt.Errorf("task lookup: %w", err)
	}

	rows, err := p.db.Query(ctx, selectTaskCommentsQuery, taskID)
	if err != nil {
		return nil, fmt.Errorf("select comments: %w", err)
	}
	defer rows.Close()

	comments := make([]entities.Comment, 0)
	for rows.Next() {
		var c entities.Comment
		if err := rows.Scan(&c.ID, &c.TaskID, &c.AuthorID, &c.Content, &c.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan comment: %w", err)
		}
		comments = append(comments, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate comments: %w", err)
	}
	return comments, nil
}

// UpdateComment replaces a comment's content.
func (p *Postgres) UpdateComment(ctx context.Context, commentID, content string) (*entities.Comment, error) {
	var c entities.Comment
	err := p.db.QueryRow(ctx, updateCommentQuery, commentID, content).
		Scan(&c.ID, &c.TaskID, &c.AuthorID, &c.Content, &c.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, entities.ErrCommentNotFound
		}
		return nil, fmt.Errorf("update comment: %w", err)
	}
	return &c, nil
}

// DeleteComment removes a comment.
func (p *Postgres) DeleteComment(ctx context.Context, commentID string) error {
	tag, err := p.db.Exec(ctx, deleteCommentQuery, commentID)
	if err != nil {
		return fmt.Errorf("delete comment: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return entities.ErrCommentNotFound
	}
	return nil
}
