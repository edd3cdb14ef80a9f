// Package domain contains application usecases orchestrating the core
// business logic by team.
package domain

import (
	"context"
	"fmt"

	"github.com/Vedant634/flowdesk-project/internal/entities"
	"github.com/Vedant634/flowdesk-project/internal/events"

	"github.com/google/uuid"
)

// CreateTeam validates and creates a team.
func (u *Usecase) CreateTeam(ctx context.Context, team entities.Team) (*entities.Team, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	if team.Name == "" || team.ManagerID == "" {
		return nil, fmt.Errorf("%w: name and manager_id are required", entities.ErrInvalidArgument)
	}
	if team.ID == "" {
		team.ID = uuid.NewString()
	}
	return u.repo.CreateTeam(ctx, team)
}

// Team returns a team by id.
func (u *Usecase) Team(ctx context.Context, teamID string) (*entities.Team, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	if teamID == "" {
		return nil, fmt.Errorf("%w: team_id is required", entities.ErrInvalidArgument)
	}
	return u.repo.GetTeam(ctx, teamID)
}

// AddTeamMember adds a user to the team.
func (u *Usecase) AddTeamMember(ctx context.Context, teamID, userID string) error {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	if teamID == "" || userID == "" {
		return fmt.Errorf("%w: team_id and user_id are required", entities.ErrInvalidArgument)
	}

	if err := u.repo.AddTeamMember(ctx, teamID, userID); err != nil {
		return err
	}

	u.emit(events.Event{Kind: events.MemberAdded, SubjectUserID: userID, Metadata: map[string]string{"team_id": teamID}})
	return nil
}

// RemoveTeamMember removes a user from the team.
func (u *Usecase) RemoveTeamMember(ctx context.Context, teamID, userID string) error {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	if teamID == "" || userID == "" {
		return fmt.Errorf("%w: team_id and user_id are required", entities.ErrInvalidArgument)
	}
	return u.repo.RemoveTeamMember(ctx, teamID, userID)
}

// TeamMembers lists the team's users.
func (u *Usecase) TeamMembers(ctx context.Context, teamID string) ([]entities.User, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	if teamID == "" {
		return nil, fmt.Errorf("%w: team_id is required", entities.ErrInvalidArgument)
	}
	return u.repo.GetTeamMembers(ctx, teamID)
}

// TeamWorkload builds the balancer view: per-member utilization with active
// tasks, the spread-based balance flag and the team average.
func (u *Usecase) TeamWorkload(ctx context.Context, teamID string) (*entities.TeamWorkload, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	if teamID == "" {
		return nil, fmt.Errorf("%w: team_id is required", entities.ErrInvalidArgument)
	}

	members, err := u.repo.GetTeamMembers(ctx, teamID)
	if err != nil {
		return nil, err
	}

	views := make([]entities.MemberWorkload, 0, len(members))
	for _, m := range members {
		tasks, err := u.repo.GetUserTasks(ctx, m.ID)
		if err != nil {
			return nil, err
		}

		active := make([]entities.TaskSummary, 0)
		for _, t := range tasks {
			if t.Status == entities.StatusDone {
				continue
			}
			active = append(active, entities.SummarizeTask(t))
		}

		views = append(views, entities.MemberWorkload{
			User:                  m,
			CurrentWorkload:       m.CurrentWorkloadPoints,
			MaxCapacity:           m.MaxCapacityPoints,
			UtilizationPercentage: entities.Utilization(m.CurrentWorkloadPoints, m.MaxCapacityPoints),
			ActiveTasks:           active,
		})
	}

	workload := entities.BuildTeamWorkload(views)
	return &workload, nil
}
