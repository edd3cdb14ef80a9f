// Package mapper converts between domain models and transport DTOs.
package mapper

import (
	"github.com/Vedant634/flowdesk-project/internal/api"
	"github.com/Vedant634/flowdesk-project/internal/entities"
)

// ToAPIUser maps entities.User to transport model.
func ToAPIUser(u entities.User) api.User {
	return api.User{
		ID:                    u.ID,
		Email:                 u.Email,
		FirstName:             u.FirstName,
		LastName:              u.LastName,
		Role:                  string(u.Role),
		Skills:                u.Skills,
		CurrentWorkloadPoints: u.CurrentWorkloadPoints,
		MaxCapacityPoints:     u.MaxCapacityPoints,
		CreatedAt:             u.CreatedAt,
	}
}

// ToAPIUserList maps a slice of users.
func ToAPIUserList(list []entities.User) []api.User {
	res := make([]api.User, 0, len(list))
	for _, u := range list {
		res = append(res, ToAPIUser(u))
	}
	return res
}

// ToAPITeam maps entities.Team to transport model.
func ToAPITeam(t entities.Team) api.Team {
	return api.Team{
		ID:          t.ID,
		Name:        t.Name,
		Description: t.Description,
		ManagerID:   t.ManagerID,
		CreatedAt:   t.CreatedAt,
	}
}

// ToAPIProject maps entities.Project to transport model.
func ToAPIProject(p entities.Project) api.Project {
	return api.Project{
		ID:                   p.ID,
		Name:                 p.Name,
		Description:          p.Description,
		TeamID:               p.TeamID,
		ManagerID:            p.ManagerID,
		Status:               string(p.Status),
		StartDate:            p.StartDate,
		EndDate:              p.EndDate,
		TotalStoryPoints:     p.TotalStoryPoints,
		CompletedStoryPoints: p.CompletedStoryPoints,
		RiskLevel:            string(p.RiskLevel),
		CreatedAt:            p.CreatedAt,
	}
}

// ToAPIProjectList maps a slice of projects.
func ToAPIProjectList(list []entities.Project) []api.Project {
	res := make([]api.Project, 0, len(list))
	for _, p := range list {
		res = append(res, ToAPIProject(p))
	}
	return res
}

// ToAPIProgress maps entities.ProjectProgress to transport model.
func ToAPIProgress(p entities.ProjectProgress) api.ProjectProgress {
	return api.ProjectProgress{
		TotalTasks:           p.TotalTasks,
		CompletedTasks:       p.CompletedTasks,
		TotalStoryPoints:     p.TotalStoryPoints,
		CompletedStoryPoints: p.CompletedStoryPoints,
		CompletionPercentage: p.CompletionPercentage,
	}
}

// ToAPITask maps entities.Task to transport model.
func ToAPITask(t entities.Task) api.Task {
	return api.Task{
		ID:                t.ID,
		ProjectID:         t.ProjectID,
		Title:             t.Title,
		Description:       t.Description,
		Status:            string(t.Status),
		Priority:          string(t.Priority),
		StoryPoints:       t.StoryPoints,
		AssignedToUserID:  t.AssignedToUserID,
		EstimatedHours:    t.EstimatedHours,
		ActualHoursLogged: t.ActualHoursLogged,
		StartDate:         t.StartDate,
		DueDate:           t.DueDate,
		CompletedAt:       t.CompletedAt,
		SubmittedAt:       t.SubmittedAt,
		PullRequestURL:    t.PullRequestURL,
		RiskScore:         t.RiskScore,
		RiskLevel:         string(t.RiskLevel),
		CreatedByUserID:   t.CreatedByUserID,
		CreatedAt:         t.CreatedAt,
	}
}

// ToAPITaskList maps a slice of tasks.
func ToAPITaskList(list []entities.Task) []api.Task {
	res := make([]api.Task, 0, len(list))
	for _, t := range list {
		res = append(res, ToAPITask(t))
	}
	return res
}

// ToAPITaskSummary maps entities.TaskSummary to transport model.
func ToAPITaskSummary(s entities.TaskSummary) api.TaskSummary {
	return api.TaskSummary{
		ID:          s.ID,
		Title:       s.Title,
		Status:      string(s.Status),
		Priority:    string(s.Priority),
		StoryPoints: s.StoryPoints,
		DueDate:     s.DueDate,
		RiskLevel:   string(s.RiskLevel),
	}
}

// ToAPITaskSummaryList maps a slice of task summaries.
func ToAPITaskSummaryList(list []entities.TaskSummary) []api.TaskSummary {
	res := make([]api.TaskSummary, 0, len(list))
	for _, s := range list {
		res = append(res, ToAPITaskSummary(s))
	}
	return res
}

// ToAPISubtask maps entities.Subtask to transport model.
func ToAPISubtask(s entities.Subtask) api.Subtask {
	return api.Subtask{
		ID:          s.ID,
		TaskID:      s.TaskID,
		Title:       s.Title,
		IsCompleted: s.IsCompleted,
		CompletedAt: s.CompletedAt,
	}
}

// ToAPISubtaskList maps a slice of subtasks.
func ToAPISubtaskList(list []entities.Subtask) []api.Subtask {
	res := make([]api.Subtask, 0, len(list))
	for _, s := range list {
		res = append(res, ToAPISubtask(s))
	}
	return res
}

// ToAPIComment maps entities.Comment to transport model.
func ToAPIComment(c entities.Comment) api.Comment {
	return api.Comment{
		ID:        c.ID,
		TaskID:    c.TaskID,
		AuthorID:  c.AuthorID,
		Content:   c.Content,
		CreatedAt: c.CreatedAt,
	}
}

// ToAPICommentList maps a slice of comments.
func ToAPICommentList(list []entities.Comment) []api.Comment {
	res := make([]api.Comment, 0, len(list))
	for _, c := range list {
		res = append(res, ToAPIComment(c))
	}
	return res
}

// ToAPIMemberWorkload maps entities.MemberWorkload to transport model.
func ToAPIMemberWorkload(m entities.MemberWorkload) api.MemberWorkload {
	return api.MemberWorkload{
		User:                  ToAPIUser(m.User),
		CurrentWorkload:       m.CurrentWorkload,
		MaxCapacity:           m.MaxCapacity,
		UtilizationPercentage: m.UtilizationPercentage,
		ActiveTasks:           ToAPITaskSummaryList(m.ActiveTasks),
	}
}

// ToAPIMemberWorkloadList maps a slice of member workloads.
func ToAPIMemberWorkloadList(list []entities.MemberWorkload) []api.MemberWorkload {
	res := make([]api.MemberWorkload, 0, len(list))
	for _, m := range list {
		res = append(res, ToAPIMemberWorkload(m))
	}
	return res
}

// ToAPITeamWorkload maps entities.TeamWorkload to transport model.
func ToAPITeamWorkload(w entities.TeamWorkload) api.TeamWorkload {
	return api.TeamWorkload{
		Members:            ToAPIMemberWorkloadList(w.Members),
		IsBalanced:         w.IsBalanced,
		AverageUtilization: w.AverageUtilization,
	}
}

// ToAPIManagerDashboard maps entities.ManagerDashboard to transport model.
func ToAPIManagerDashboard(d entities.ManagerDashboard) api.ManagerDashboard {
	return api.ManagerDashboard{
		ActiveProjects:    d.ActiveProjects,
		TotalTasks:        d.TotalTasks,
		CompletedTasks:    d.CompletedTasks,
		HighRiskTasks:     d.HighRiskTasks,
		UpcomingDeadlines: ToAPITaskSummaryList(d.UpcomingDeadlines),
		TeamWorkload:      ToAPIMemberWorkloadList(d.TeamWorkload),
	}
}

// ToAPIDeveloperDashboard maps entities.DeveloperDashboard to transport model.
func ToAPIDeveloperDashboard(d entities.DeveloperDashboard) api.DeveloperDashboard {
	byStatus := make(map[string]int, len(d.TasksByStatus))
	for status, n := range d.TasksByStatus {
		byStatus[string(status)] = n
	}
	return api.DeveloperDashboard{
		MyTasks:           d.MyTasks,
		CurrentWorkload:   d.CurrentWorkload,
		CompletedThisWeek: d.CompletedThisWeek,
		UpcomingDeadlines: ToAPITaskSummaryList(d.UpcomingDeadlines),
		TasksByStatus:     byStatus,
	}
}
