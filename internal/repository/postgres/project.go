package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/Vedant634/flowdesk-project/internal/entities"

	"github.com/jackc/pgx/v5"
)

const (
	projectColumns = `id, team_id, manager_id, name, description, status, start_date, end_date,
total_story_points, completed_story_points, risk_level, created_at`

	insertProjectQuery = `
INSERT INTO projects (id, team_id, manager_id, name, description, status, start_date, end_date)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
RETURNING created_at`

	selectProjectQuery = `SELECT ` + projectColumns + ` FROM projects WHERE id=$1`

	updateProjectQuery = `
UPDATE projects
SET name=COALESCE($2, name),
    description=COALESCE($3, description),
    status=COALESCE($4, status),
    end_date=COALESCE($5, end_date),
    updated_at=NOW()
WHERE id=$1
RETURNING ` + projectColumns

	selectProjectTasksQuery = `SELECT ` + taskColumns + ` FROM tasks WHERE project_id=$1 ORDER BY created_at`

	selectProjectsByManagerQuery = `SELECT ` + projectColumns + ` FROM projects WHERE manager_id=$1 ORDER BY created_at`

	selectProjectsByManagerStatusQuery = `SELECT ` + projectColumns + ` FROM projects WHERE manager_id=$1 AND status=$2 ORDER BY created_at`

	selectProjectsByTeamQuery = `SELECT ` + projectColumns + ` FROM projects WHERE team_id=$1 ORDER BY created_at`

	setProjectRiskQuery = `UPDATE projects SET risk_level=$2, updated_at=NOW() WHERE id=$1`
)

func scanProject(row pgx.Row) (*entities.Project, error) {
	var pr entities.Project
	var riskLevel *string
	err := row.Scan(
		&pr.ID, &pr.TeamID, &pr.ManagerID, &pr.Name, &pr.Description, &pr.Status,
		&pr.StartDate, &pr.EndDate, &pr.TotalStoryPoints, &pr.CompletedStoryPoints,
		&riskLevel, &pr.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	if riskLevel != nil {
		pr.RiskLevel = entities.RiskLevel(*riskLevel)
	}
	return &pr, nil
}

func collectProjects(rows pgx.Rows) ([]entities.Project, error) {
	projects := make([]entities.Project, 0)
	for rows.Next() {
		pr, err := scanProject(rows)
		if err != nil {
			return nil, fmt.Errorf("scan project: %w", err)
		}
		projects = append(projects, *pr)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate projects: %w", err)
	}
	return projects, nil
}

// CreateProject inserts a project with zeroed point counters.
func (p *Postgres) CreateProject(ctx context.Context, project entities.Project) (*entities.Project, error) {
	tx, err := p.db.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return nil, err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	var exists bool
	if err := tx.QueryRow(ctx, teamExistsQuery, project.TeamID).Scan(&exists); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, entities.ErrTeamNotFound
		}
		return nil, fmt.Errorf("team lookup: %w", err)
	}
	if err := tx.QueryRow(ctx, userExistsQuery, project.ManagerID).Scan(&exists); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, entities.ErrUserNotFound
		}
		return nil, fmt.Errorf("manager lookup: %w", err)
	}

	if err := tx.QueryRow(ctx, insertProjectQuery,
		project.ID, project.TeamID, project.ManagerID, project.Name, project.Description,
		project.Status, project.StartDate, project.EndDate,
	).Scan(&project.CreatedAt); err != nil {
		return nil, fmt.Errorf("insert project: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, err
	}

	project.TotalStoryPoints = 0
	project.CompletedStoryPoints = 0

	p.log.Infow("project created", "project_id", project.ID, "team_id", project.TeamID)
	return &project, nil
}

// GetProject fetches a project by id.
func (p *Postgres) GetProject(ctx context.Context, projectID string) (*entities.Project, error) {
	pr, err := scanProject(p.db.QueryRow(ctx, selectProjectQuery, projectID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, entities.ErrProjectNotFound
		}
		return nil, fmt.Errorf("get project: %w", err)
	}
	return pr, nil
}

// UpdateProject applies the non-nil fields of the update.
func (p *Postgres) UpdateProject(ctx context.Context, projectID string, upd entities.ProjectUpdate) (*entities.Project, error) {
	pr, err := scanProject(p.db.QueryRow(ctx, updateProjectQuery,
		projectID, upd.Name, upd.Description, upd.Status, upd.EndDate,
	))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, entities.ErrProjectNotFound
		}
		return nil, fmt.Errorf("update project: %w", err)
	}
	p.log.Infow("project updated", "project_id", projectID)
	return pr, nil
}

// GetProjectTasks returns all tasks of the project in creation order.
func (p *Postgres) GetProjectTasks(ctx context.Context, projectID string) ([]entities.Task, error) {
	var exists bool
	if err := p.db.QueryRow(ctx, `SELECT true FROM projects WHERE id=$1`, projectID).Scan(&exists); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, entities.ErrProjectNotFound
		}
		return nil, fmt.Errorf("project lookup: %w", err)
	}

	rows, err := p.db.Query(ctx, selectProjectTasksQuery, projectID)
	if err != nil {
		return nil, fmt.Errorf("select project tasks: %w", err)
	}
	defer rows.Close()
	return collectTasks(rows)
}

// GetProjectsByManager lists a manager's projects, optionally filtered by status.
func (p *Postgres) GetProjectsByManager(ctx context.Context, managerID string, status *entities.ProjectStatus) ([]entities.Project, error) {
	var (
		rows pgx.Rows
		err  error
	)
	if status != nil {
		rows, err = p.db.Query(ctx, selectProjectsByManagerStatusQuery, managerID, *status)
	} else {
		rows, err = p.db.Query(ctx, selectProjectsByManagerQuery, managerID)
	}
	if err != nil {
		return nil, fmt.Errorf("select projects by manager: %w", err)
	}
	defer rows.Close()
	return collectProjects(rows)
}

// GetProjectsByTeam lists a team's projects.
func (p *Postgres) GetProjectsByTeam(ctx context.Context, teamID string) ([]entities.Project, error) {
	rows, err := p.db.Query(ctx, selectProjectsByTeamQuery, teamID)
	if err != nil {
		return nil, fmt.Errorf("select projects by team: %w", err)
	}
	defer rows.Close()
	return collectProjects(rows)
}

// SetProjectRisk stores the rolled-up risk level.
func (p *Postgres) SetProjectRisk(ctx context.Context, projectID string, level entities.RiskLevel) error {
	tag, err := p.db.Exec(ctx, setProjectRiskQuery, projectID, level)
	if err != nil {
		return fmt.Errorf("set project risk: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return entities.ErrProjectNotFound
	}
	return nil
}
