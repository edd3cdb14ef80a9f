// Package api defines the HTTP transport DTOs and error contract.
package api

import "time"

// ErrorCode enumerates machine-readable error codes.
type ErrorCode string

const (
	// CodeNotFound marks a missing resource.
	CodeNotFound ErrorCode = "NOT_FOUND"
	// CodeInvalidArgument marks a rejected input.
	CodeInvalidArgument ErrorCode = "INVALID_ARGUMENT"
	// CodeConflict marks a uniqueness or state conflict.
	CodeConflict ErrorCode = "CONFLICT"
	// CodeUnauthenticated marks a missing or invalid credential.
	CodeUnauthenticated ErrorCode = "UNAUTHENTICATED"
	// CodeForbidden marks an authenticated but disallowed request.
	CodeForbidden ErrorCode = "FORBIDDEN"
	// CodeInternal marks an unexpected failure.
	CodeInternal ErrorCode = "INTERNAL"
)

// ErrorResponse is the envelope for all error replies.
type ErrorResponse struct {
	Error ErrorBody `json:"error"`
}

// ErrorBody carries the code and human-readable message.
type ErrorBody struct {
	Code    ErrorCode `json:"code"`
	Message string    `json:"message"`
}

// RegisterUserRequest creates a user account.
type RegisterUserRequest struct {
	Email             string   `json:"email"`
	FirstName         string   `json:"firstName"`
	LastName          string   `json:"lastName"`
	Role              string   `json:"role,omitempty"`
	Skills            []string `json:"skills,omitempty"`
	MaxCapacityPoints int      `json:"maxCapacityPoints,omitempty"`
}

// User is the transport projection of an account.
type User struct {
	ID                    string     `json:"id"`
	Email                 string     `json:"email"`
	FirstName             string     `json:"firstName"`
	LastName              string     `json:"lastName"`
	Role                  string     `json:"role"`
	Skills                []string   `json:"skills"`
	CurrentWorkloadPoints int        `json:"currentWorkloadPoints"`
	MaxCapacityPoints     int        `json:"maxCapacityPoints"`
	CreatedAt             *time.Time `json:"createdAt,omitempty"`
}

// CreateTeamRequest creates a team.
type CreateTeamRequest struct {
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	ManagerID   string `json:"managerId"`
}

// Team is the transport projection of a team.
type Team struct {
	ID          string     `json:"id"`
	Name        string     `json:"name"`
	Description string     `json:"description,omitempty"`
	ManagerID   string     `json:"managerId"`
	CreatedAt   *time.Time `json:"createdAt,omitempty"`
}

// AddTeamMemberRequest links a user to a team.
type AddTeamMemberRequest struct {
	UserID string `json:"userId"`
}

// CreateProjectRequest creates a project.
type CreateProjectRequest struct {
	Name        string     `json:"name"`
	Description string     `json:"description,omitempty"`
	TeamID      string     `json:"teamId"`
	StartDate   *time.Time `json:"startDate,omitempty"`
	EndDate     *time.Time `json:"endDate,omitempty"`
}

// UpdateProjectRequest carries a partial project update. Absent fields are
// left unchanged.
type UpdateProjectRequest struct {
	Name        *string    `json:"name,omitempty"`
	Description *string    `json:"description,omitempty"`
	Status      *string    `json:"status,omitempty"`
	EndDate     *time.Time `json:"endDate,omitempty"`
}

// Project is the transport projection of a project.
type Project struct {
	ID                   string     `json:"id"`
	Name                 string     `json:"name"`
	Description          string     `json:"description,omitempty"`
	TeamID               string     `json:"teamId"`
	ManagerID            string     `json:"managerId"`
	Status               string     `json:"status"`
	StartDate            *time.Time `json:"startDate,omitempty"`
	EndDate              *time.Time `json:"endDate,omitempty"`
	TotalStoryPoints     int        `json:"totalStoryPoints"`
	CompletedStoryPoints int        `json:"completedStoryPoints"`
	RiskLevel            string     `json:"riskLevel,omitempty"`
	CreatedAt            *time.Time `json:"createdAt,omitempty"`
}

// ProjectProgress is the derived completion snapshot.
type ProjectProgress struct {
	TotalTasks           int     `json:"totalTasks"`
	CompletedTasks       int     `json:"completedTasks"`
	TotalStoryPoints     int     `json:"totalStoryPoints"`
	CompletedStoryPoints int     `json:"completedStoryPoints"`
	CompletionPercentage float64 `json:"completionPercentage"`
}

// CreateTaskRequest creates a task.
type CreateTaskRequest struct {
	ProjectID        string     `json:"projectId"`
	Title            string     `json:"title"`
	Description      string     `json:"description,omitempty"`
	Priority         string     `json:"priority,omitempty"`
	StoryPoints      int        `json:"storyPoints"`
	AssignedToUserID *string    `json:"assignedToUserId,omitempty"`
	EstimatedHours   *int       `json:"estimatedHours,omitempty"`
	DueDate          *time.Time `json:"dueDate,omitempty"`
}

// UpdateTaskRequest replaces the mutable task details.
type UpdateTaskRequest struct {
	Title          string     `json:"title"`
	Description    string     `json:"description,omitempty"`
	Priority       string     `json:"priority"`
	StoryPoints    int        `json:"storyPoints"`
	EstimatedHours *int       `json:"estimatedHours,omitempty"`
	DueDate        *time.Time `json:"dueDate,omitempty"`
}

// AssignTaskRequest moves a task to a user.
type AssignTaskRequest struct {
	UserID string `json:"userId"`
}

// UpdateTaskStatusRequest transitions a task.
type UpdateTaskStatusRequest struct {
	Status string `json:"status"`
}

// SubmitForReviewRequest attaches review metadata. The optional comment is
// recorded on the task under the submitter's name.
type SubmitForReviewRequest struct {
	PullRequestURL string `json:"pullRequestUrl"`
	ActualHours    int    `json:"actualHours"`
	Comment        string `json:"comment,omitempty"`
}

// Task is the transport projection of a task.
type Task struct {
	ID                string     `json:"id"`
	ProjectID         string     `json:"projectId"`
	Title             string     `json:"title"`
	Description       string     `json:"description,omitempty"`
	Status            string     `json:"status"`
	Priority          string     `json:"priority"`
	StoryPoints       int        `json:"storyPoints"`
	AssignedToUserID  *string    `json:"assignedToUserId,omitempty"`
	EstimatedHours    *int       `json:"estimatedHours,omitempty"`
	ActualHoursLogged int        `json:"actualHoursLogged"`
	StartDate         *time.Time `json:"startDate,omitempty"`
	DueDate           *time.Time `json:"dueDate,omitempty"`
	CompletedAt       *time.Time `json:"completedAt,omitempty"`
	SubmittedAt       *time.Time `json:"submittedAt,omitempty"`
	PullRequestURL    string     `json:"pullRequestUrl,omitempty"`
	RiskScore         *int       `json:"riskScore,omitempty"`
	RiskLevel         string     `json:"riskLevel,omitempty"`
	CreatedByUserID   string     `json:"createdByUserId"`
	CreatedAt         *time.Time `json:"createdAt,omitempty"`
}

// TaskSummary is the compact task projection used in dashboards.
type TaskSummary struct {
	ID          string     `json:"id"`
	Title       string     `json:"title"`
	Status      string     `json:"status"`
	Priority    string     `json:"priority"`
	StoryPoints int        `json:"storyPoints"`
	DueDate     *time.Time `json:"dueDate,omitempty"`
	RiskLevel   string     `json:"riskLevel,omitempty"`
}

// AddCommentRequest creates a comment on a task.
type AddCommentRequest struct {
	Content string `json:"content"`
}

// UpdateCommentRequest replaces a comment's content.
type UpdateCommentRequest struct {
	Content string `json:"content"`
}

// Comment is the transport projection of a task comment.
type Comment struct {
	ID        string     `json:"id"`
	TaskID    string     `json:"taskId"`
	AuthorID  string     `json:"authorId"`
	Content   string     `json:"content"`
	CreatedAt *time.Time `json:"createdAt,omitempty"`
}

// AddSubtaskRequest creates a checklist item.
type AddSubtaskRequest struct {
	Title string `json:"title"`
}

// Subtask is the transport projection of a checklist item.
type Subtask struct {
	ID          string     `json:"id"`
	TaskID      string     `json:"taskId"`
	Title       string     `json:"title"`
	IsCompleted bool       `json:"isCompleted"`
	CompletedAt *time.Time `json:"completedAt,omitempty"`
}

// MemberWorkload is one member's slice of the team workload view.
type MemberWorkload struct {
	User                  User          `json:"user"`
	CurrentWorkload       int           `json:"currentWorkload"`
	MaxCapacity           int           `json:"maxCapacity"`
	UtilizationPercentage float64       `json:"utilizationPercentage"`
	ActiveTasks           []TaskSummary `json:"activeTasks"`
}

// TeamWorkload is the balancer's team-wide view.
type TeamWorkload struct {
	Members            []MemberWorkload `json:"members"`
	IsBalanced         bool             `json:"isBalanced"`
	AverageUtilization float64          `json:"averageUtilization"`
}

// ManagerDashboard is the manager's aggregate view.
type ManagerDashboard struct {
	ActiveProjects    int              `json:"activeProjects"`
	TotalTasks        int              `json:"totalTasks"`
	CompletedTasks    int              `json:"completedTasks"`
	HighRiskTasks     int              `json:"highRiskTasks"`
	UpcomingDeadlines []TaskSummary    `json:"upcomingDeadlines"`
	TeamWorkload      []MemberWorkload `json:"teamWorkload"`
}

// DeveloperDashboard is the developer's personal view.
type DeveloperDashboard struct {
	MyTasks           int            `json:"myTasks"`
	CurrentWorkload   int            `json:"currentWorkload"`
	CompletedThisWeek int            `json:"completedThisWeek"`
	UpcomingDeadlines []TaskSummary  `json:"upcomingDeadlines"`
	TasksByStatus     map[string]int `json:"tasksByStatus"`
}
