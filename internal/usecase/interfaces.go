package usecase

import (
	"context"

	"github.com/Vedant634/flowdesk-project/internal/entities"
)

// UserUsecaseInterface abstracts user-related operations for the delivery
// layer.
type UserUsecaseInterface interface {
	RegisterUser(ctx context.Context, user entities.User) (*entities.User, error)
	User(ctx context.Context, userID string) (*entities.User, error)
	UserTasks(ctx context.Context, userID string) ([]entities.Task, error)
	UserWorkload(ctx context.Context, userID string) (*entities.MemberWorkload, error)
	UserDeadlines(ctx context.Context, userID string, days int) ([]entities.TaskSummary, error)
}

// TeamUsecaseInterface abstracts team and membership operations.
type TeamUsecaseInterface interface {
	CreateTeam(ctx context.Context, team entities.Team) (*entities.Team, error)
	Team(ctx context.Context, teamID string) (*entities.Team, error)
	AddTeamMember(ctx context.Context, teamID, userID string) error
	RemoveTeamMember(ctx context.Context, teamID, userID string) error
	TeamMembers(ctx context.Context, teamID string) ([]entities.User, error)
	TeamWorkload(ctx context.Context, teamID string) (*entities.TeamWorkload, error)
}

// ProjectUsecaseInterface abstracts project operations.
type ProjectUsecaseInterface interface {
	CreateProject(ctx context.Context, project entities.Project) (*entities.Project, error)
	Project(ctx context.Context, projectID string) (*entities.Project, error)
	UpdateProject(ctx context.Context, projectID string, upd entities.ProjectUpdate) (*entities.Project, error)
	ProjectTasks(ctx context.Context, projectID string) ([]entities.Task, error)
	ProjectProgress(ctx context.Context, projectID string) (*entities.ProjectProgress, error)
	RecomputeProjectRisk(ctx context.Context, projectID string) error
	ProjectsByManager(ctx context.Context, managerID string, status *entities.ProjectStatus) ([]entities.Project, error)
	ProjectsByTeam(ctx context.Context, teamID string) ([]entities.Project, error)
}

// TaskUsecaseInterface abstracts task lifecycle operations.
type TaskUsecaseInterface interface {
	CreateTask(ctx context.Context, task entities.Task) (*entities.Task, error)
	Task(ctx context.Context, taskID string) (*entities.Task, error)
	UpdateTask(ctx context.Context, taskID string, upd entities.TaskUpdate) (*entities.Task, error)
	AssignTask(ctx context.Context, taskID, userID string) (*entities.Task, error)
	UpdateTaskStatus(ctx context.Context, taskID string, status entities.TaskStatus) (*entities.Task, error)
	SubmitForReview(ctx context.Context, taskID, pullRequestURL string, actualHours int, submitterID, comment string) (*entities.Task, error)
	ApproveTask(ctx context.Context, taskID string) (*entities.Task, error)
	RequestChanges(ctx context.Context, taskID string) (*entities.Task, error)
	PredictTaskRisk(ctx context.Context, taskID string) (*entities.Task, error)
}

// CommentUsecaseInterface abstracts task comment operations.
type CommentUsecaseInterface interface {
	AddComment(ctx context.Context, taskID, authorID, content string) (*entities.Comment, error)
	TaskComments(ctx context.Context, taskID string) ([]entities.Comment, error)
	UpdateComment(ctx context.Context, commentID, content string) (*entities.Comment, error)
	DeleteComment(ctx context.Context, commentID string) error
}

// SubtaskUsecaseInterface abstracts subtask operations.
type SubtaskUsecaseInterface interface {
	AddSubtask(ctx context.Context, taskID, title string) (*entities.Subtask, error)
	Subtasks(ctx context.Context, taskID string) ([]entities.Subtask, error)
	ToggleSubtask(ctx context.Context, subtaskID string) (*entities.Subtask, error)
	DeleteSubtask(ctx context.Context, subtaskID string) error
}

// DashboardUsecaseInterface abstracts the aggregated views.
type DashboardUsecaseInterface interface {
	ManagerDashboard(ctx context.Context, managerID string) (*entities.ManagerDashboard, error)
	DeveloperDashboard(ctx context.Context, userID string) (*entities.DeveloperDashboard, error)
}
