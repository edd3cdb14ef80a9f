// Package repository contains repository interfaces for persistence layers.
package repository

import (
	"context"

	"github.com/Vedant634/flowdesk-project/internal/entities"
)

// LifecycleInterface describes storage startup/shutdown hooks.
type LifecycleInterface interface {
	OnStart(_ context.Context) error
	OnStop(_ context.Context) error
}

// UserInterface exposes user-related operations.
type UserInterface interface {
	CreateUser(ctx context.Context, user entities.User) (*entities.User, error)
	GetUser(ctx context.Context, userID string) (*entities.User, error)
	GetUserTasks(ctx context.Context, userID string) ([]entities.Task, error)
}

// TeamInterface exposes team and membership operations.
type TeamInterface interface {
	CreateTeam(ctx context.Context, team entities.Team) (*entities.Team, error)
	GetTeam(ctx context.Context, teamID string) (*entities.Team, error)
	AddTeamMember(ctx context.Context, teamID, userID string) error
	RemoveTeamMember(ctx context.Context, teamID, userID string) error
	GetTeamMembers(ctx context.Context, teamID string) ([]entities.User, error)
}

// ProjectInterface exposes project operations. Point counters are written
// only by the task operations below; risk level only by SetProjectRisk.
type ProjectInterface interface {
	CreateProject(ctx context.Context, project entities.Project) (*entities.Project, error)
	GetProject(ctx context.Context, projectID string) (*entities.Project, error)
	UpdateProject(ctx context.Context, projectID string, upd entities.ProjectUpdate) (*entities.Project, error)
	GetProjectTasks(ctx context.Context, projectID string) ([]entities.Task, error)
	GetProjectsByManager(ctx context.Context, managerID string, status *entities.ProjectStatus) ([]entities.Project, error)
	GetProjectsByTeam(ctx context.Context, teamID string) ([]entities.Project, error)
	SetProjectRisk(ctx context.Context, projectID string, level entities.RiskLevel) error
}

// TaskInterface exposes the lifecycle operations. Each call is one
// transaction covering the task row, its project counters and the affected
// user workloads.
type TaskInterface interface {
	CreateTask(ctx context.Context, task entities.Task) (*entities.Task, error)
	GetTask(ctx context.Context, taskID string) (*entities.Task, error)
	UpdateTaskDetails(ctx context.Context, taskID string, upd entities.TaskUpdate) (*entities.Task, error)
	AssignTask(ctx context.Context, taskID, userID string) (*entities.Task, error)
	SetTaskStatus(ctx context.Context, taskID string, status entities.TaskStatus) (*entities.Task, entities.TaskStatus, error)
	SubmitForReview(ctx context.Context, taskID, pullRequestURL string, actualHours int) (*entities.Task, error)
	SetTaskRisk(ctx context.Context, taskID string, pred entities.RiskPrediction) (*entities.Task, error)
}

// CommentInterface exposes task comment operations.
type CommentInterface interface {
	CreateComment(ctx context.Context, comment entities.Comment) (*entities.Comment, error)
	GetTaskComments(ctx context.Context, taskID string) ([]entities.Comment, error)
	UpdateComment(ctx context.Context, commentID, content string) (*entities.Comment, error)
	DeleteComment(ctx context.Context, commentID string) error
}

// SubtaskInterface exposes subtask operations.
type SubtaskInterface interface {
	CreateSubtask(ctx context.Context, subtask entities.Subtask) (*entities.Subtask, error)
	GetTaskSubtasks(ctx context.Context, taskID string) ([]entities.Subtask, error)
	ToggleSubtask(ctx context.Context, subtaskID string) (*entities.Subtask, error)
	DeleteSubtask(ctx context.Context, subtaskID string) error
}
