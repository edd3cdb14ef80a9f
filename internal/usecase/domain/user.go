// Package domain contains application usecases orchestrating the core
// business logic by user.
package domain

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/Vedant634/flowdesk-project/internal/entities"

	"github.com/google/uuid"
)

// RegisterUser creates a user account with zero workload and the default
// capacity unless one is supplied.
func (u *Usecase) RegisterUser(ctx context.Context, user entities.User) (*entities.User, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	if user.Email == "" || !strings.Contains(user.Email, "@") {
		return nil, fmt.Errorf("%w: a valid email is required", entities.ErrInvalidArgument)
	}
	if user.FirstName == "" || user.LastName == "" {
		return nil, fmt.Errorf("%w: first_name and last_name are required", entities.ErrInvalidArgument)
	}
	if user.Role == "" {
		user.Role = entities.RoleDeveloper
	}
	if user.ID == "" {
		user.ID = uuid.NewString()
	}
	return u.repo.CreateUser(ctx, user)
}

// User returns a user by id.
func (u *Usecase) User(ctx context.Context, userID string) (*entities.User, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	if userID == "" {
		return nil, fmt.Errorf("%w: user_id is required", entities.ErrInvalidArgument)
	}
	return u.repo.GetUser(ctx, userID)
}

// UserTasks lists the tasks assigned to a user.
func (u *Usecase) UserTasks(ctx context.Context, userID string) ([]entities.Task, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	if userID == "" {
		return nil, fmt.Errorf("%w: user_id is required", entities.ErrInvalidArgument)
	}
	return u.repo.GetUserTasks(ctx, userID)
}

// UserDeadlines lists the user's unfinished tasks due within the next
// days, sorted by due date.
func (u *Usecase) UserDeadlines(ctx context.Context, userID string, days int) ([]entities.TaskSummary, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	if userID == "" {
		return nil, fmt.Errorf("%w: user_id is required", entities.ErrInvalidArgument)
	}
	if days <= 0 {
		days = deadlineWindowDays
	}

	tasks, err := u.repo.GetUserTasks(ctx, userID)
	if err != nil {
		return nil, err
	}
	return entities.UpcomingDeadlines(tasks, time.Now(), days, 0), nil
}

// UserWorkload returns the member view for a single user.
func (u *Usecase) UserWorkload(ctx context.Context, userID string) (*entities.MemberWorkload, error) {
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

	active := make([]entities.TaskSummary, 0)
	for _, t := range tasks {
		if t.Status == entities.StatusDone {
			continue
		}
		active = append(active, entities.SummarizeTask(t))
	}

	return &entities.MemberWorkload{
		User:                  *user,
		CurrentWorkload:       user.CurrentWorkloadPoints,
		MaxCapacity:           user.MaxCapacityPoints,
		UtilizationPercentage: entities.Utilization(user.CurrentWorkloadPoints, user.MaxCapacityPoints),
		ActiveTasks:           active,
	}, nil
}
