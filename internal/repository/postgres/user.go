package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/Vedant634/flowdesk-project/internal/entities"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

const (
	userColumns = `id, email, first_name, last_name, role, skills, current_workload_points, max_capacity_points, created_at`

	insertUserQuery = `
INSERT INTO users (id, email, first_name, last_name, role, skills, current_workload_points, max_capacity_points)
VALUES ($1, $2, $3, $4, $5, $6, 0, $7)
RETURNING created_at`

	selectUserQuery = `SELECT ` + userColumns + ` FROM users WHERE id=$1`
)

// CreateUser inserts a registered user with zero workload.
func (p *Postgres) CreateUser(ctx context.Context, user entities.User) (*entities.User, error) {
	if user.MaxCapacityPoints <= 0 {
		user.MaxCapacityPoints = entities.DefaultMaxCapacityPoints
	}
	err := p.db.QueryRow(ctx, insertUserQuery,
		user.ID, user.Email, user.FirstName, user.LastName, user.Role, user.Skills, user.MaxCapacityPoints,
	).Scan(&user.CreatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return nil, entities.ErrUserExists
		}
		p.log.Errorw("failed to insert user", "error", err, "email", user.Email)
		return nil, fmt.Errorf("insert user: %w", err)
	}

	user.CurrentWorkloadPoints = 0
	p.log.Infow("user created", "user_id", user.ID, "role", user.Role)
	return &user, nil
}

// GetUser fetches a user by id.
func (p *Postgres) GetUser(ctx context.Context, userID string) (*entities.User, error) {
	var u entities.User
	err := p.db.QueryRow(ctx, selectUserQuery, userID).Scan(
		&u.ID, &u.Email, &u.FirstName, &u.LastName, &u.Role, &u.Skills,
		&u.CurrentWorkloadPoints, &u.MaxCapacityPoints, &u.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, entities.ErrUserNotFound
		}
		return nil, fmt.Errorf("get user: %w", err)
	}
	return &u, nil
}

// GetUserTasks returns tasks assigned to the user.
func (p *Postgres) GetUserTasks(ctx context.Context, userID string) ([]entities.Task, error) {
	rows, err := p.db.Query(ctx, `SELECT `+taskColumns+` FROM tasks WHERE assigned_to_user_id=$1 ORDER BY created_at`, userID)
	if err != nil {
		return nil, fmt.Errorf("get user tasks: %w", err)
	}
	defer rows.Close()
	return collectTasks(rows)
}
