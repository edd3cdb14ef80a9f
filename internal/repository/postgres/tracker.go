package postgres

import (
	"context"
	"fmt"

	"github.com/Vedant634/flowdesk-project/internal/entities"

	"github.com/jackc/pgx/v5"
)

// The project aggregate tracker's write side. Both point counters are
// mutated only here, as one atomic in-place arithmetic update, so
// concurrent task operations on the same project cannot lose increments.

const addProjectPointsQuery = `
UPDATE projects
SET total_story_points = total_story_points + $2,
    completed_story_points = completed_story_points + $3,
    updated_at = NOW()
WHERE id = $1`

func (p *Postgres) addProjectPoints(ctx context.Context, tx pgx.Tx, projectID string, totalDelta, completedDelta int) error {
	tag, err := tx.Exec(ctx, addProjectPointsQuery, projectID, totalDelta, completedDelta)
	if err != nil {
		return fmt.Errorf("adjust project points: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return entities.ErrProjectNotFound
	}
	return nil
}
