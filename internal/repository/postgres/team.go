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
	insertTeamQuery = `
INSERT INTO teams (id, name, description, manager_id)
VALUES ($1, $2, $3, $4)
RETURNING created_at`

	selectTeamQuery = `SELECT id, name, description, manager_id, created_at FROM teams WHERE id=$1`

	teamExistsQuery = `SELECT true FROM teams WHERE id=$1`

	insertTeamMemberQuery = `INSERT INTO team_members (team_id, user_id) VALUES ($1, $2)`

	deleteTeamMemberQuery = `DELETE FROM team_members WHERE team_id=$1 AND user_id=$2`

	selectTeamMembersQuery = `
SELECT u.id, u.email, u.first_name, u.last_name, u.role, u.skills, u.current_workload_points, u.max_capacity_points, u.created_at
FROM team_members tm
JOIN users u ON u.id = tm.user_id
WHERE tm.team_id=$1
ORDER BY tm.joined_at`
)

// CreateTeam inserts a team owned by a manager.
func (p *Postgres) CreateTeam(ctx context.Context, team entities.Team) (*entities.Team, error) {
	tx, err := p.db.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return nil, err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	var exists bool
	if err := tx.QueryRow(ctx, userExistsQuery, team.ManagerID).Scan(&exists); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, entities.ErrUserNotFound
		}
		return nil, fmt.Errorf("manager lookup: %w", err)
	}

	if err := tx.QueryRow(ctx, insertTeamQuery, team.ID, team.Name, team.Description, team.ManagerID).
		Scan(&team.CreatedAt); err != nil {
		return nil, fmt.Errorf("insert team: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, err
	}

	p.log.Infow("team created", "team_id", team.ID, "manager_id", team.ManagerID)
	return &team, nil
}

// GetTeam fetches a team by id.
func (p *Postgres) GetTeam(ctx context.Context, teamID string) (*entities.Team, error) {
	var t entities.Team
	err := p.db.QueryRow(ctx, selectTeamQuery, teamID).
		Scan(&t.ID, &t.Name, &t.Description, &t.ManagerID, &t.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, entities.ErrTeamNotFound
		}
		return nil, fmt.Errorf("get team: %w", err)
	}
	return &t, nil
}

// AddTeamMember links a user to a team. Adding the same user twice yields
// ErrMemberExists.
func (p *Postgres) AddTeamMember(ctx context.Context, teamID, userID string) error {
	tx, err := p.db.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	var exists bool
	if err := tx.QueryRow(ctx, teamExistsQuery, teamID).Scan(&exists); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return entities.ErrTeamNotFound
		}
		return fmt.Errorf("team lookup: %w", err)
	}
	if err := tx.QueryRow(ctx, userExistsQuery, userID).Scan(&exists); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return entities.ErrUserNotFound
		}
		return fmt.Errorf("user lookup: %w", err)
	}

	if _, err := tx.Exec(ctx, insertTeamMemberQuery, teamID, userID); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return entities.ErrMemberExists
		}
		return fmt.Errorf("insert member: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return err
	}

	p.log.Infow("team member added", "team_id", teamID, "user_id", userID)
	return nil
}

// RemoveTeamMember unlinks a user from a team.
func (p *Postgres) RemoveTeamMember(ctx context.Context, teamID, userID string) error {
	tag, err := p.db.Exec(ctx, deleteTeamMemberQuery, teamID, userID)
	if err != nil {
		return fmt.Errorf("delete member: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return entities.ErrMemberNotFound
	}
	p.log.Infow("team member removed", "team_id", teamID, "user_id", userID)
	return nil
}

// GetTeamMembers lists a team's users in join order.
func (p *Postgres) GetTeamMembers(ctx context.Context, teamID string) ([]entities.User, error) {
	var exists bool
	if err := p.db.QueryRow(ctx, teamExistsQuery, teamID).Scan(&exists); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, entities.ErrTeamNotFound
		}
		return nil, fmt.Errorf("team lookup: %w", err)
	}

	rows, err := p.db.Query(ctx, selectTeamMembersQuery, teamID)
	if err != nil {
		return nil, fmt.Errorf("select members: %w", err)
	}
	defer rows.Close()

	members := make([]entities.User, 0)
	for rows.Next() {
		var u entities.User
		if err := rows.Scan(
			&u.ID, &u.Email, &u.FirstName, &u.LastName, &u.Role, &u.Skills,
			&u.CurrentWorkloadPoints, &u.MaxCapacityPoints, &u.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan member: %w", err)
		}
		members = append(members, u)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate members: %w", err)
	}
	return members, nil
}
