// Package domain contains application usecases orchestrating the core
// business logic by task.
package domain

import (
	"context"
	"fmt"
	"time"

	"github.com/Vedant634/flowdesk-project/internal/advisor"
	"github.com/Vedant634/flowdesk-project/internal/entities"
	"github.com/Vedant634/flowdesk-project/internal/events"

	"github.com/google/uuid"
)

// CreateTask validates and creates a task, then annotates it with a risk
// prediction. The prediction never blocks the creation result.
func (u *Usecase) CreateTask(ctx context.Context, task entities.Task) (*entities.Task, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	if task.Title == "" || task.ProjectID == "" || task.CreatedByUserID == "" {
		return nil, fmt.Errorf("%w: title, project_id and created_by are required", entities.ErrInvalidArgument)
	}
	if err := entities.ValidateStoryPoints(task.StoryPoints); err != nil {
		return nil, err
	}
	if task.ID == "" {
		task.ID = uuid.NewString()
	}
	task.Status = entities.StatusTodo
	if task.Priority == "" {
		task.Priority = entities.PriorityMedium
	}

	created, err := u.repo.CreateTask(ctx, task)
	if err != nil {
		return nil, err
	}

	if annotated, err := u.annotateRisk(ctx, created); err != nil {
		u.log.Warnw("risk annotation skipped", "task_id", created.ID, "error", err)
	} else {
		created = annotated
	}

	u.emit(events.Event{Kind: events.TaskCreated, TaskID: created.ID, SubjectUserID: created.CreatedByUserID})
	if created.Assigned() {
		u.emit(events.Event{Kind: events.TaskAssigned, TaskID: created.ID, SubjectUserID: *created.AssignedToUserID})
	}

	u.log.Infow("task created", "task_id", created.ID, "project_id", created.ProjectID)
	return created, nil
}

// Task returns a task by id.
func (u *Usecase) Task(ctx context.Context, taskID string) (*entities.Task, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	if taskID == "" {
		return nil, fmt.Errorf("%w: task_id is required", entities.ErrInvalidArgument)
	}
	return u.repo.GetTask(ctx, taskID)
}

// UpdateTask updates mutable task details. Story point changes propagate to
// project and workload accounting inside the repository transaction.
func (u *Usecase) UpdateTask(ctx context.Context, taskID string, upd entities.TaskUpdate) (*entities.Task, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	if taskID == "" {
		return nil, fmt.Errorf("%w: task_id is required", entities.ErrInvalidArgument)
	}
	if upd.Title == "" {
		return nil, fmt.Errorf("%w: title is required", entities.ErrInvalidArgument)
	}
	if err := entities.ValidateStoryPoints(upd.StoryPoints); err != nil {
		return nil, err
	}
	return u.repo.UpdateTaskDetails(ctx, taskID, upd)
}

// AssignTask moves the task onto userID's plate.
func (u *Usecase) AssignTask(ctx context.Context, taskID, userID string) (*entities.Task, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	if taskID == "" || userID == "" {
		return nil, fmt.Errorf("%w: task_id and user_id are required", entities.ErrInvalidArgument)
	}

	task, err := u.repo.AssignTask(ctx, taskID, userID)
	if err != nil {
		return nil, err
	}

	u.emit(events.Event{Kind: events.TaskAssigned, TaskID: taskID, SubjectUserID: userID})
	return task, nil
}

// UpdateTaskStatus transitions the task to the requested status.
func (u *Usecase) UpdateTaskStatus(ctx context.Context, taskID string, status entities.TaskStatus) (*entities.Task, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	if taskID == "" {
		return nil, fmt.Errorf("%w: task_id is required", entities.ErrInvalidArgument)
	}

	task, oldStatus, err := u.repo.SetTaskStatus(ctx, taskID, status)
	if err != nil {
		return nil, err
	}

	subject := ""
	if task.Assigned() {
		subject = *task.AssignedToUserID
	}
	u.emit(events.Event{
		Kind:          events.TaskStatusChanged,
		TaskID:        taskID,
		SubjectUserID: subject,
		Metadata:      map[string]string{"old": string(oldStatus), "new": string(status)},
	})
	if entities.Transition(oldStatus, status, task.StoryPoints).Completed {
		u.emit(events.Event{Kind: events.TaskCompleted, TaskID: taskID, SubjectUserID: subject})
	}

	return task, nil
}

// SubmitForReview attaches PR metadata and moves the task into review. An
// optional comment is recorded on the task under the submitter's name.
// The status write skips the transition table: entering IN_REVIEW carries
// no accounting effects from any prior status, so there is nothing for
// Transition to apply.
func (u *Usecase) SubmitForReview(ctx context.Context, taskID, pullRequestURL string, actualHours int, submitterID, comment string) (*entities.Task, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	if taskID == "" || pullRequestURL == "" {
		return nil, fmt.Errorf("%w: task_id and pull_request_url are required", entities.ErrInvalidArgument)
	}
	if actualHours < 0 {
		return nil, fmt.Errorf("%w: actual_hours must not be negative", entities.ErrInvalidArgument)
	}

	task, err := u.repo.SubmitForReview(ctx, taskID, pullRequestURL, actualHours)
	if err != nil {
		return nil, err
	}

	if comment != "" && submitterID != "" {
		// The submission already committed; a lost comment is logged, not
		// surfaced.
		if _, err := u.AddComment(ctx, taskID, submitterID, comment); err != nil {
			u.log.Warnw("review comment not recorded", "task_id", taskID, "error", err)
		}
	}

	u.emit(events.Event{Kind: events.TaskSubmittedForReview, TaskID: taskID, SubjectUserID: task.CreatedByUserID})
	return task, nil
}

// ApproveTask accepts a review and completes the task.
func (u *Usecase) ApproveTask(ctx context.Context, taskID string) (*entities.Task, error) {
	return u.UpdateTaskStatus(ctx, taskID, entities.StatusDone)
}

// RequestChanges sends a reviewed task back to work.
func (u *Usecase) RequestChanges(ctx context.Context, taskID string) (*entities.Task, error) {
	return u.UpdateTaskStatus(ctx, taskID, entities.StatusInProgress)
}

// PredictTaskRisk re-runs the advisor for a task, stores the prediction and
// recomputes the owning project's risk level.
func (u *Usecase) PredictTaskRisk(ctx context.Context, taskID string) (*entities.Task, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	if taskID == "" {
		return nil, fmt.Errorf("%w: task_id is required", entities.ErrInvalidArgument)
	}

	task, err := u.repo.GetTask(ctx, taskID)
	if err != nil {
		return nil, err
	}
	return u.annotateRisk(ctx, task)
}

func (u *Usecase) annotateRisk(ctx context.Context, task *entities.Task) (*entities.Task, error) {
	pred := u.advisor.PredictRisk(ctx, u.taskFeatures(ctx, task))

	annotated, err := u.repo.SetTaskRisk(ctx, task.ID, pred)
	if err != nil {
		return nil, err
	}
	if err := u.RecomputeProjectRisk(ctx, task.ProjectID); err != nil {
		u.log.Warnw("project risk recompute failed", "project_id", task.ProjectID, "error", err)
	}
	return annotated, nil
}

// taskFeatures assembles the predictor input. Lookups that fail leave the
// corresponding feature at zero rather than failing the prediction.
func (u *Usecase) taskFeatures(ctx context.Context, task *entities.Task) advisor.Features {
	f := advisor.Features{
		StoryPoints: task.StoryPoints,
		Priority:    advisor.PriorityRank(task.Priority),
	}
	if task.EstimatedHours != nil {
		f.EstimatedHours = float64(*task.EstimatedHours)
	}
	if task.Assigned() {
		if assignee, err := u.repo.GetUser(ctx, *task.AssignedToUserID); err == nil {
			f.DeveloperWorkload = float64(assignee.CurrentWorkloadPoints)
		}
	}
	if subtasks, err := u.repo.GetTaskSubtasks(ctx, task.ID); err == nil {
		f.NumSubtasks = len(subtasks)
	}
	if task.CreatedAt != nil {
		f.TaskAgeDays = int(time.Since(*task.CreatedAt).Hours() / 24)
	}
	return f
}
