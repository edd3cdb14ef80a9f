package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/Vedant634/flowdesk-project/internal/entities"

	"github.com/jackc/pgx/v5"
)

// The workload ledger. Every change to users.current_workload_points in
// the system flows through adjustWorkload, inside the caller's
// transaction, so the counter cannot desynchronize across call sites.

const (
	selectWorkloadForUpdateQuery = `SELECT current_workload_points FROM users WHERE id=$1 FOR UPDATE`
	updateWorkloadQuery          = `UPDATE users SET current_workload_points=$2, updated_at=NOW() WHERE id=$1`
)

// adjustWorkload applies delta to the user's workload under a row lock.
// Debits clamp at zero: going negative signals an accounting defect
// upstream, so the clamp is counted and logged instead of persisted.
func (p *Postgres) adjustWorkload(ctx context.Context, tx pgx.Tx, userID string, delta int) error {
	var current int
	if err := tx.QueryRow(ctx, selectWorkloadForUpdateQuery, userID).Scan(&current); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return entities.ErrUserNotFound
		}
		return fmt.Errorf("lock workload: %w", err)
	}

	next, clamped := entities.ApplyWorkloadDelta(current, delta)
	if clamped {
		p.metrics.WorkloadClamps.Inc()
		p.log.Warnw("workload debit clamped at zero",
			"user_id", userID, "current", current, "delta", delta)
	}

	if _, err := tx.Exec(ctx, updateWorkloadQuery, userID, next); err != nil {
		return fmt.Errorf("update workload: %w", err)
	}
	return nil
}

// transferWorkload moves points from one user to another inside a single
// transaction. Rows are locked in deterministic order so two concurrent
// transfers over the same pair cannot deadlock.
func (p *Postgres) transferWorkload(ctx context.Context, tx pgx.Tx, fromUserID, toUserID string, points int) error {
	type step struct {
		userID string
		delta  int
	}
	steps := []step{{fromUserID, -points}, {toUserID, points}}
	if toUserID < fromUserID {
		steps[0], steps[1] = steps[1], steps[0]
	}
	for _, s := range steps {
		if err := p.adjustWorkload(ctx, tx, s.userID, s.delta); err != nil {
			return err
		}
	}
	return nil
}
