// Package domain contains application usecases orchestrating the core
// business logic by project.
package domain

import (
	"context"
	"fmt"

	"github.com/Vedant634/flowdesk-project/internal/entities"

	"github.com/google/uuid"
)

// CreateProject validates and creates a project with zeroed counters.
func (u *Usecase) CreateProject(ctx context.Context, project entities.Project) (*entities.Project, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	if project.Name == "" || project.TeamID == "" || project.ManagerID == "" {
		return nil, fmt.Errorf("%w: name, team_id and manager_id are required", entities.ErrInvalidArgument)
	}
	if project.ID == "" {
		project.ID = uuid.NewString()
	}
	if project.Status == "" {
		project.Status = entities.ProjectActive
	}
	return u.repo.CreateProject(ctx, project)
}

// Project returns a project by id.
func (u *Usecase) Project(ctx context.Context, projectID string) (*entities.Project, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	if projectID == "" {
		return nil, fmt.Errorf("%w: project_id is required", entities.ErrInvalidArgument)
	}
	return u.repo.GetProject(ctx, projectID)
}

// UpdateProject applies the non-nil fields of the update.
func (u *Usecase) UpdateProject(ctx context.Context, projectID string, upd entities.ProjectUpdate) (*entities.Project, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	if projectID == "" {
		return nil, fmt.Errorf("%w: project_id is required", entities.ErrInvalidArgument)
	}
	if upd.Name != nil && *upd.Name == "" {
		return nil, fmt.Errorf("%w: name must not be empty", entities.ErrInvalidArgument)
	}
	return u.repo.UpdateProject(ctx, projectID, upd)
}

// ProjectTasks lists the project's tasks.
func (u *Usecase) ProjectTasks(ctx context.Context, projectID string) ([]entities.Task, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	if projectID == "" {
		return nil, fmt.Errorf("%w: project_id is required", entities.ErrInvalidArgument)
	}
	return u.repo.GetProjectTasks(ctx, projectID)
}

// ProjectProgress derives the completion snapshot from the maintained
// counters and current task rows.
func (u *Usecase) ProjectProgress(ctx context.Context, projectID string) (*entities.ProjectProgress, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	if projectID == "" {
		return nil, fmt.Errorf("%w: project_id is required", entities.ErrInvalidArgument)
	}

	project, err := u.repo.GetProject(ctx, projectID)
	if err != nil {
		return nil, err
	}
	tasks, err := u.repo.GetProjectTasks(ctx, projectID)
	if err != nil {
		return nil, err
	}

	completed := 0
	for _, t := range tasks {
		if t.Status == entities.StatusDone {
			completed++
		}
	}

	progress := project.Progress(len(tasks), completed)
	return &progress, nil
}

// RecomputeProjectRisk rolls up task risk levels into the project's level
// and persists it.
func (u *Usecase) RecomputeProjectRisk(ctx context.Context, projectID string) error {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	if projectID == "" {
		return fmt.Errorf("%w: project_id is required", entities.ErrInvalidArgument)
	}

	tasks, err := u.repo.GetProjectTasks(ctx, projectID)
	if err != nil {
		return err
	}

	levels := make([]entities.RiskLevel, 0, len(tasks))
	for _, t := range tasks {
		levels = append(levels, t.RiskLevel)
	}

	level := entities.RollupRisk(levels)
	if err := u.repo.SetProjectRisk(ctx, projectID, level); err != nil {
		return err
	}

	u.log.Infow("project risk recomputed", "project_id", projectID, "level", level)
	return nil
}

// ProjectsByManager lists a manager's projects, optionally filtered by
// status.
func (u *Usecase) ProjectsByManager(ctx context.Context, managerID string, status *entities.ProjectStatus) ([]entities.Project, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	if managerID == "" {
		return nil, fmt.Errorf("%w: manager_id is required", entities.ErrInvalidArgument)
	}
	return u.repo.GetProjectsByManager(ctx, managerID, status)
}

// ProjectsByTeam lists a team's projects.
func (u *Usecase) ProjectsByTeam(ctx context.Context, teamID string) ([]entities.Project, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	if teamID == "" {
		return nil, fmt.Errorf("%w: team_id is required", entities.ErrInvalidArgument)
	}
	return u.repo.GetProjectsByTeam(ctx, teamID)
}
