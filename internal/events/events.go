// Package events defines the activity/notification sink the core emits to.
// Delivery is fire-and-forget: a sink failure never rolls back a task
// mutation.
package events

import (
	"context"
	"time"
)

// Kind enumerates emitted event kinds.
type Kind string

const (
	// TaskCreated fires after a task is created.
	TaskCreated Kind = "TASK_CREATED"
	// TaskAssigned fires when a task gains an assignee.
	TaskAssigned Kind = "TASK_ASSIGNED"
	// TaskStatusChanged fires on every status transition.
	TaskStatusChanged Kind = "TASK_STATUS_CHANGED"
	// TaskSubmittedForReview fires on review submission.
	TaskSubmittedForReview Kind = "TASK_SUBMITTED_FOR_REVIEW"
	// TaskCompleted fires when a task enters DONE.
	TaskCompleted Kind = "TASK_COMPLETED"
	// MemberAdded fires when a user joins a team.
	MemberAdded Kind = "MEMBER_ADDED"
)

// Event is the payload handed to the sink. Formatting into notification
// text happens downstream.
type Event struct {
	Kind          Kind              `json:"kind"`
	TaskID        string            `json:"task_id,omitempty"`
	SubjectUserID string            `json:"subject_user_id,omitempty"`
	Metadata      map[string]string `json:"metadata,omitempty"`
	OccurredAt    time.Time         `json:"occurred_at"`
}

// Sink receives core events.
type Sink interface {
	Emit(ctx context.Context, ev Event) error
}

// Noop discards all events.
type Noop struct{}

// Emit implements Sink.
func (Noop) Emit(_ context.Context, _ Event) error { return nil }
