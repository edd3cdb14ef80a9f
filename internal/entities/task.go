// Package entities contains core business entities.
package entities

import (
	"fmt"
	"time"
)

// TaskStatus enumerates task lifecycle states.
type TaskStatus string

const (
	// StatusTodo is the initial state of every task.
	StatusTodo TaskStatus = "TODO"
	// StatusInProgress marks active work.
	StatusInProgress TaskStatus = "IN_PROGRESS"
	// StatusInReview marks work submitted for review.
	StatusInReview TaskStatus = "IN_REVIEW"
	// StatusDone is the terminal state.
	StatusDone TaskStatus = "DONE"
)

// ParseTaskStatus validates a status string.
func ParseTaskStatus(s string) (TaskStatus, error) {
	switch TaskStatus(s) {
	case StatusTodo, StatusInProgress, StatusInReview, StatusDone:
		return TaskStatus(s), nil
	default:
		return "", fmt.Errorf("%w: unknown task status %q", ErrInvalidArgument, s)
	}
}

// TaskPriority enumerates task priorities.
type TaskPriority string

const (
	// PriorityLow marks low urgency.
	PriorityLow TaskPriority = "LOW"
	// PriorityMedium is the default priority.
	PriorityMedium TaskPriority = "MEDIUM"
	// PriorityHigh marks high urgency.
	PriorityHigh TaskPriority = "HIGH"
)

// ParseTaskPriority validates a priority string.
func ParseTaskPriority(s string) (TaskPriority, error) {
	switch TaskPriority(s) {
	case PriorityLow, PriorityMedium, PriorityHigh:
		return TaskPriority(s), nil
	default:
		return "", fmt.Errorf("%w: unknown priority %q", ErrInvalidArgument, s)
	}
}

// Story point bounds.
const (
	MinStoryPoints = 1
	MaxStoryPoints = 21
)

// ValidateStoryPoints checks the allowed story point range.
func ValidateStoryPoints(points int) error {
	if points < MinStoryPoints || points > MaxStoryPoints {
		return fmt.Errorf("%w: story points must be within [%d,%d], got %d",
			ErrInvalidArgument, MinStoryPoints, MaxStoryPoints, points)
	}
	return nil
}

// Task is a unit of work inside a project.
type Task struct {
	ID                string
	ProjectID         string
	Title             string
	Description       string
	Status            TaskStatus
	Priority          TaskPriority
	StoryPoints       int
	AssignedToUserID  *string
	EstimatedHours    *int
	ActualHoursLogged int
	StartDate         *time.Time
	DueDate           *time.Time
	CompletedAt       *time.Time
	SubmittedAt       *time.Time
	PullRequestURL    string
	RiskScore         *int
	RiskLevel         RiskLevel
	CreatedByUserID   string
	CreatedAt         *time.Time
}

// Assigned reports whether the task has an assignee.
func (t Task) Assigned() bool {
	return t.AssignedToUserID != nil && *t.AssignedToUserID != ""
}

// TaskUpdate carries the mutable task attributes of a detail update.
type TaskUpdate struct {
	Title          string
	Description    string
	Priority       TaskPriority
	StoryPoints    int
	EstimatedHours *int
	DueDate        *time.Time
}

// TransitionEffects describes the accounting side effects of a status
// change. The machine is driven by (old, new) pairs: every operation that
// moves a task between statuses must route through Transition so that the
// point bookkeeping cannot fork between call sites.
type TransitionEffects struct {
	// Completed is set when the task newly enters DONE.
	Completed bool
	// Reopened is set when the task leaves DONE. Accounting is forward-only:
	// reopening does not reverse the earlier project credit or workload
	// debit. Kept as in the original system; surfaced via a counter instead
	// of silently fixed.
	Reopened bool
	// CompletedPointsDelta is applied to project.completedStoryPoints.
	CompletedPointsDelta int
	// AssigneeWorkloadDelta is applied to the assignee's workload, if any.
	AssigneeWorkloadDelta int
}

// Transition returns the accounting effects of moving a task from old to
// new status. All pairs other than entering DONE are plain status changes.
func Transition(old, new TaskStatus, storyPoints int) TransitionEffects {
	switch {
	case old != StatusDone && new == StatusDone:
		return TransitionEffects{
			Completed:             true,
			CompletedPointsDelta:  storyPoints,
			AssigneeWorkloadDelta: -storyPoints,
		}
	case old == StatusDone && new != StatusDone:
		return TransitionEffects{Reopened: true}
	default:
		return TransitionEffects{}
	}
}
