// Package entities contains core business entities.
package entities

import (
	"fmt"
	"time"
)

// ProjectStatus enumerates project lifecycle states.
type ProjectStatus string

const (
	// ProjectActive marks a project as in flight.
	ProjectActive ProjectStatus = "ACTIVE"
	// ProjectOnHold marks a paused project.
	ProjectOnHold ProjectStatus = "ON_HOLD"
	// ProjectCompleted marks a finished project.
	ProjectCompleted ProjectStatus = "COMPLETED"
)

// ParseProjectStatus validates a project status string.
func ParseProjectStatus(s string) (ProjectStatus, error) {
	switch ProjectStatus(s) {
	case ProjectActive, ProjectOnHold, ProjectCompleted:
		return ProjectStatus(s), nil
	default:
		return "", fmt.Errorf("%w: unknown project status %q", ErrInvalidArgument, s)
	}
}

// Project owns its tasks and carries derived point counters. The counters
// are mutated only by the aggregate tracker; risk level only by RollupRisk
// recomputation.
type Project struct {
	ID                   string
	TeamID               string
	ManagerID            string
	Name                 string
	Description          string
	Status               ProjectStatus
	StartDate            *time.Time
	EndDate              *time.Time
	TotalStoryPoints     int
	CompletedStoryPoints int
	RiskLevel            RiskLevel
	CreatedAt            *time.Time
}

// ProjectUpdate carries mutable project attributes. Nil fields are left
// unchanged.
type ProjectUpdate struct {
	Name        *string
	Description *string
	Status      *ProjectStatus
	EndDate     *time.Time
}

// ProjectProgress is a derived completion snapshot.
type ProjectProgress struct {
	TotalTasks           int
	CompletedTasks       int
	TotalStoryPoints     int
	CompletedStoryPoints int
	CompletionPercentage float64
}

// Progress derives the completion snapshot from the project counters.
// Percentage is story-point based and 0.0 for an empty project.
func (p Project) Progress(totalTasks, completedTasks int) ProjectProgress {
	pct := 0.0
	if p.TotalStoryPoints > 0 {
		pct = Round2(float64(p.CompletedStoryPoints) * 100.0 / float64(p.TotalStoryPoints))
	}
	return ProjectProgress{
		TotalTasks:           totalTasks,
		CompletedTasks:       completedTasks,
		TotalStoryPoints:     p.TotalStoryPoints,
		CompletedStoryPoints: p.CompletedStoryPoints,
		CompletionPercentage: pct,
	}
}
