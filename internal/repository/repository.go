// Package repository provides factory for repositories.
package repository

import (
	"context"
	"fmt"

	"github.com/Vedant634/flowdesk-project/config"
	"github.com/Vedant634/flowdesk-project/internal/metrics"
	"github.com/Vedant634/flowdesk-project/internal/repository/postgres"

	"go.uber.org/zap"
)

// Repository aggregates all persistence interfaces.
type Repository interface {
	LifecycleInterface
	UserInterface
	TeamInterface
	ProjectInterface
	TaskInterface
	SubtaskInterface
	CommentInterface
}

// New constructs repository backend by name.
func New(ctx context.Context, name string, log *zap.SugaredLogger, cfg *config.Config, m *metrics.Metrics) (Repository, error) {
	switch name {
	case "postgres":
		return postgres.New(ctx, log, cfg, m), nil
	default:
		return nil, fmt.Errorf("unknown repo backend: %s", name)
	}
}
