// Package entities contains core business entities.
package entities

import (
	"sort"
	"time"
)

// TaskSummary is a compact projection for listings and dashboards.
type TaskSummary struct {
	ID          string
	Title       string
	Status      TaskStatus
	Priority    TaskPriority
	StoryPoints int
	DueDate     *time.Time
	RiskLevel   RiskLevel
}

// SummarizeTask projects a task for display.
func SummarizeTask(t Task) TaskSummary {
	return TaskSummary{
		ID:          t.ID,
		Title:       t.Title,
		Status:      t.Status,
		Priority:    t.Priority,
		StoryPoints: t.StoryPoints,
		DueDate:     t.DueDate,
		RiskLevel:   t.RiskLevel,
	}
}

// UpcomingDeadlines filters tasks due within days of now (inclusive on both
// ends), not yet DONE, sorted by due date ascending. limit caps the result;
// zero means uncapped.
func UpcomingDeadlines(tasks []Task, now time.Time, days, limit int) []TaskSummary {
	from := now.Truncate(24 * time.Hour)
	to := from.AddDate(0, 0, days)

	due := make([]Task, 0)
	for _, t := range tasks {
		if t.DueDate == nil || t.Status == StatusDone {
			continue
		}
		d := t.DueDate.Truncate(24 * time.Hour)
		if d.Before(from) || d.After(to) {
			continue
		}
		due = append(due, t)
	}

	sort.SliceStable(due, func(i, j int) bool {
		return due[i].DueDate.Before(*due[j].DueDate)
	})
	if limit > 0 && len(due) > limit {
		due = due[:limit]
	}

	out := make([]TaskSummary, 0, len(due))
	for _, t := range due {
		out = append(out, SummarizeTask(t))
	}
	return out
}

// ManagerDashboard aggregates a manager's active projects, task counters
// and team workload.
type ManagerDashboard struct {
	ActiveProjects    int
	TotalTasks        int
	CompletedTasks    int
	HighRiskTasks     int
	UpcomingDeadlines []TaskSummary
	TeamWorkload      []MemberWorkload
}

// DeveloperDashboard aggregates a developer's personal view.
type DeveloperDashboard struct {
	MyTasks           int
	CurrentWorkload   int
	CompletedThisWeek int
	UpcomingDeadlines []TaskSummary
	TasksByStatus     map[TaskStatus]int
}
