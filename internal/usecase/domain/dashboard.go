// Package domain contains application usecases orchestrating the core
// business logic by dashboard.
package domain

import (
	"context"
	"fmt"
	"time"

	"github.com/Vedant634/flowdesk-project/internal/entities"
)

const (
	deadlineWindowDays   = 7
	managerDeadlineLimit = 10
)

// ManagerDashboard aggregates the manager's active projects, their task
// counters and the combined workload of the owning teams.
func (u *Usecase) ManagerDashboard(ctx context.Context, managerID string) (*entities.ManagerDashboard, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	if managerID == "" {
		return nil, fmt.Errorf("%w: manager_id is required", entities.ErrInvalidArgument)
	}

	active := entities.ProjectActive
	projects, err := u.repo.GetProjectsByManager(ctx, managerID, &active)
	if err != nil {
		return nil, err
	}

	dash := entities.ManagerDashboard{ActiveProjects: len(projects)}

	allTasks := make([]entities.Task, 0)
	for _, pr := range projects {
		tasks, err := u.repo.GetProjectTasks(ctx, pr.ID)
		if err != nil {
			return nil, err
		}
		allTasks = append(allTasks, tasks...)
	}

	// The workload panel spans every team the manager owns a project on,
	// paused and completed projects included.
	allProjects, err := u.repo.GetProjectsByManager(ctx, managerID, nil)
	if err != nil {
		return nil, err
	}
	teamIDs := make([]string, 0)
	seenTeams := make(map[string]struct{})
	for _, pr := range allProjects {
		if _, ok := seenTeams[pr.TeamID]; !ok {
			seenTeams[pr.TeamID] = struct{}{}
			teamIDs = append(teamIDs, pr.TeamID)
		}
	}

	for _, t := range allTasks {
		dash.TotalTasks++
		if t.Status == entities.StatusDone {
			dash.CompletedTasks++
		}
		if t.RiskLevel == entities.RiskHigh {
			dash.HighRiskTasks++
		}
	}
	dash.UpcomingDeadlines = entities.UpcomingDeadlines(allTasks, time.Now(), deadlineWindowDays, managerDeadlineLimit)

	members := make([]entities.MemberWorkload, 0)
	seenUsers := make(map[string]struct{})
	for _, teamID := range teamIDs {
		workload, err := u.TeamWorkload(ctx, teamID)
		if err != nil {
			return nil, err
		}
		for _, m := range workload.Members {
			if _, ok := seenUsers[m.User.ID]; ok {
				continue
			}
			seenUsers[m.User.ID] = struct{}{}
			members = append(members, m)
		}
	}
	dash.TeamWorkload = entities.BuildTeamWorkload(members).Members

	return &dash, nil
}

// DeveloperDashboard aggregates a developer's personal view over their
// assigned tasks.
func (u *Usecase) DeveloperDashboard(ctx context.Context, userID string) (*entities.DeveloperDashboard, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	if userID == "" {
		return nil, fmt.Errorf("%w: user_id is required", entities.ErrInvalidArgument)
	}

	user, err := u.repo.GetUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	tasks, err := u.repo.GetUserTasks(ctx, userID)
	if err != nil {
		return nil, err
	}

	dash := entities.DeveloperDashboard{
		CurrentWorkload: user.CurrentWorkloadPoints,
		TasksByStatus:   make(map[entities.TaskStatus]int),
	}

	// MyTasks counts every assigned task; DONE tasks stay assigned and
	// still count here, only the workload number excludes them.
	dash.MyTasks = len(tasks)

	weekAgo := time.Now().AddDate(0, 0, -deadlineWindowDays)
	for _, t := range tasks {
		dash.TasksByStatus[t.Status]++
		if t.Status == entities.StatusDone && t.CompletedAt != nil && t.CompletedAt.After(weekAgo) {
			dash.CompletedThisWeek++
		}
	}
	// The personal view keeps the full 7-day window, uncapped.
	dash.UpcomingDeadlines = entities.UpcomingDeadlines(tasks, time.Now(), deadlineWindowDays, 0)

	return &dash, nil
}
