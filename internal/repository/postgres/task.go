package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Vedant634/flowdesk-project/internal/entities"

	"github.com/jackc/pgx/v5"
)

const (
	taskColumns = `id, project_id, title, description, status, priority, story_points, assigned_to_user_id,
estimated_hours, actual_hours_logged, start_date, due_date, completed_at, submitted_at,
COALESCE(pull_request_url, ''), risk_score, risk_level, created_by_user_id, created_at`

	selectTaskQuery          = `SELECT ` + taskColumns + ` FROM tasks WHERE id=$1`
	selectTaskForUpdateQuery = selectTaskQuery + ` FOR UPDATE`

	userExistsQuery = `SELECT true FROM users WHERE id=$1`

	insertTaskQuery = `
INSERT INTO tasks (id, project_id, title, description, status, priority, story_points,
                   assigned_to_user_id, estimated_hours, start_date, due_date, created_by_user_id)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
RETURNING created_at`

	updateTaskDetailsQuery = `
UPDATE tasks
SET title=$2, description=$3, priority=$4, story_points=$5, estimated_hours=$6, due_date=$7, updated_at=NOW()
WHERE id=$1`

	updateTaskAssigneeQuery = `UPDATE tasks SET assigned_to_user_id=$2, start_date=CURRENT_DATE, updated_at=NOW() WHERE id=$1`

	updateTaskStatusQuery = `UPDATE tasks SET status=$2, completed_at=COALESCE($3, completed_at), updated_at=NOW() WHERE id=$1`

	submitForReviewQuery = `
UPDATE tasks
SET status=$2, submitted_at=NOW(), pull_request_url=$3, actual_hours_logged=$4, updated_at=NOW()
WHERE id=$1
RETURNING ` + taskColumns

	setTaskRiskQuery = `
UPDATE tasks SET risk_score=$2, risk_level=$3, updated_at=NOW()
WHERE id=$1
RETURNING ` + taskColumns
)

func scanTask(row pgx.Row) (*entities.Task, error) {
	var t entities.Task
	var riskLevel *string
	err := row.Scan(
		&t.ID, &t.ProjectID, &t.Title, &t.Description, &t.Status, &t.Priority, &t.StoryPoints,
		&t.AssignedToUserID, &t.EstimatedHours, &t.ActualHoursLogged, &t.StartDate, &t.DueDate,
		&t.CompletedAt, &t.SubmittedAt, &t.PullRequestURL, &t.RiskScore, &riskLevel,
		&t.CreatedByUserID, &t.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	if riskLevel != nil {
		t.RiskLevel = entities.RiskLevel(*riskLevel)
	}
	return &t, nil
}

func collectTasks(rows pgx.Rows) ([]entities.Task, error) {
	tasks := make([]entities.Task, 0)
	for rows.Next() {
		t, err := scanTask(rows)
		if err != nil {
			return nil, fmt.Errorf("scan task: %w", err)
		}
		tasks = append(tasks, *t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate tasks: %w", err)
	}
	return tasks, nil
}

// CreateTask inserts a task and applies the creation accounting in one
// transaction: project total credit plus, when an assignee is supplied,
// the assign-on-create workload credit.
func (p *Postgres) CreateTask(ctx context.Context, task entities.Task) (*entities.Task, error) {
	tx, err := p.db.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return nil, err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	var exists bool
	if err := tx.QueryRow(ctx, userExistsQuery, task.CreatedByUserID).Scan(&exists); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, entities.ErrUserNotFound
		}
		return nil, fmt.Errorf("creator lookup: %w", err)
	}

	if err := p.addProjectPoints(ctx, tx, task.ProjectID, task.StoryPoints, 0); err != nil {
		return nil, err
	}

	if task.Assigned() {
		if err := p.adjustWorkload(ctx, tx, *task.AssignedToUserID, task.StoryPoints); err != nil {
			return nil, err
		}
		now := time.Now()
		task.StartDate = &now
	}

	if err := tx.QueryRow(ctx, insertTaskQuery,
		task.ID, task.ProjectID, task.Title, task.Description, task.Status, task.Priority,
		task.StoryPoints, task.AssignedToUserID, task.EstimatedHours, task.StartDate,
		task.DueDate, task.CreatedByUserID,
	).Scan(&task.CreatedAt); err != nil {
		return nil, fmt.Errorf("insert task: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, err
	}

	p.log.Infow("task created", "task_id", task.ID, "project_id", task.ProjectID, "story_points", task.StoryPoints)
	return &task, nil
}

// GetTask fetches a task by id.
func (p *Postgres) GetTask(ctx context.Context, taskID string) (*entities.Task, error) {
	t, err := scanTask(p.db.QueryRow(ctx, selectTaskQuery, taskID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, entities.ErrTaskNotFound
		}
		return nil, fmt.Errorf("get task: %w", err)
	}
	return t, nil
}

// UpdateTaskDetails updates mutable attributes; a story point change
// applies the delta to the project total and, when assigned, to the
// assignee's workload within the same transaction.
func (p *Postgres) UpdateTaskDetails(ctx context.Context, taskID string, upd entities.TaskUpdate) (*entities.Task, error) {
	tx, err := p.db.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return nil, err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	task, err := scanTask(tx.QueryRow(ctx, selectTaskForUpdateQuery, taskID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, entities.ErrTaskNotFound
		}
		return nil, fmt.Errorf("lock task: %w", err)
	}

	if delta := upd.StoryPoints - task.StoryPoints; delta != 0 {
		if err := p.addProjectPoints(ctx, tx, task.ProjectID, delta, 0); err != nil {
			return nil, err
		}
		if task.Assigned() {
			if err := p.adjustWorkload(ctx, tx, *task.AssignedToUserID, delta); err != nil {
				return nil, err
			}
		}
	}

	if _, err := tx.Exec(ctx, updateTaskDetailsQuery,
		taskID, upd.Title, upd.Description, upd.Priority, upd.StoryPoints, upd.EstimatedHours, upd.DueDate,
	); err != nil {
		return nil, fmt.Errorf("update task: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, err
	}

	task.Title = upd.Title
	task.Description = upd.Description
	task.Priority = upd.Priority
	task.StoryPoints = upd.StoryPoints
	task.EstimatedHours = upd.EstimatedHours
	task.DueDate = upd.DueDate

	p.log.Infow("task updated", "task_id", taskID)
	return task, nil
}

// AssignTask moves the task to a new assignee. The old assignee's debit
// and the new assignee's credit commit together or not at all.
func (p *Postgres) AssignTask(ctx context.Context, taskID, userID string) (*entities.Task, error) {
	tx, err := p.db.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return nil, err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	task, err := scanTask(tx.QueryRow(ctx, selectTaskForUpdateQuery, taskID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, entities.ErrTaskNotFound
		}
		return nil, fmt.Errorf("lock task: %w", err)
	}

	switch {
	case task.Assigned() && *task.AssignedToUserID != userID:
		if err := p.transferWorkload(ctx, tx, *task.AssignedToUserID, userID, task.StoryPoints); err != nil {
			return nil, err
		}
	case !task.Assigned():
		if err := p.adjustWorkload(ctx, tx, userID, task.StoryPoints); err != nil {
			return nil, err
		}
	default:
		// Reassignment to the current assignee only refreshes the start date.
		var exists bool
		if err := tx.QueryRow(ctx, userExistsQuery, userID).Scan(&exists); err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return nil, entities.ErrUserNotFound
			}
			return nil, fmt.Errorf("assignee lookup: %w", err)
		}
	}

	if _, err := tx.Exec(ctx, updateTaskAssigneeQuery, taskID, userID); err != nil {
		return nil, fmt.Errorf("update assignee: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, err
	}

	now := time.Now()
	task.AssignedToUserID = &userID
	task.StartDate = &now

	p.log.Infow("task assigned", "task_id", taskID, "user_id", userID)
	return task, nil
}

// SetTaskStatus applies a status transition and its accounting effects in
// one transaction, returning the previous status.
func (p *Postgres) SetTaskStatus(ctx context.Context, taskID string, status entities.TaskStatus) (*entities.Task, entities.TaskStatus, error) {
	tx, err := p.db.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return nil, "", err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	task, err := scanTask(tx.QueryRow(ctx, selectTaskForUpdateQuery, taskID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, "", entities.ErrTaskNotFound
		}
		return nil, "", fmt.Errorf("lock task: %w", err)
	}

	oldStatus := task.Status
	eff := entities.Transition(oldStatus, status, task.StoryPoints)

	var completedAt *time.Time
	if eff.Completed {
		now := time.Now()
		completedAt = &now
		if err := p.addProjectPoints(ctx, tx, task.ProjectID, 0, eff.CompletedPointsDelta); err != nil {
			return nil, "", err
		}
		if task.Assigned() {
			if err := p.adjustWorkload(ctx, tx, *task.AssignedToUserID, eff.AssigneeWorkloadDelta); err != nil {
				return nil, "", err
			}
		}
	}

	if _, err := tx.Exec(ctx, updateTaskStatusQuery, taskID, status, completedAt); err != nil {
		return nil, "", fmt.Errorf("update status: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, "", err
	}

	if eff.Completed {
		p.metrics.TasksCompleted.Inc()
	}
	if eff.Reopened {
		p.metrics.TasksReopened.Inc()
	}

	task.Status = status
	if completedAt != nil {
		task.CompletedAt = completedAt
	}

	p.log.Infow("task status updated", "task_id", taskID, "old", oldStatus, "new", status)
	return task, oldStatus, nil
}

// SubmitForReview records PR metadata and moves the task into review. No
// point accounting is involved.
func (p *Postgres) SubmitForReview(ctx context.Context, taskID, pullRequestURL string, actualHours int) (*entities.Task, error) {
	task, err := scanTask(p.db.QueryRow(ctx, submitForReviewQuery, taskID, entities.StatusInReview, pullRequestURL, actualHours))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, entities.ErrTaskNotFound
		}
		return nil, fmt.Errorf("submit for review: %w", err)
	}
	p.log.Infow("task submitted for review", "task_id", taskID)
	return task, nil
}

// SetTaskRisk stores the advisor's prediction on the task.
func (p *Postgres) SetTaskRisk(ctx context.Context, taskID string, pred entities.RiskPrediction) (*entities.Task, error) {
	task, err := scanTask(p.db.QueryRow(ctx, setTaskRiskQuery, taskID, pred.Score, pred.Level))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, entities.ErrTaskNotFound
		}
		return nil, fmt.Errorf("set task risk: %w", err)
	}
	return task, nil
}
