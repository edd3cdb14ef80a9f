package entities

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestUpcomingDeadlines(t *testing.T) {
	now := time.Date(2025, 3, 10, 15, 0, 0, 0, time.UTC)
	day := func(offset int) *time.Time {
		d := now.AddDate(0, 0, offset)
		return &d
	}

	tasks := []Task{
		{ID: "overdue", Status: StatusTodo, DueDate: day(-2)},
		{ID: "today", Status: StatusInProgress, DueDate: day(0)},
		{ID: "soon", Status: StatusTodo, DueDate: day(3)},
		{ID: "edge", Status: StatusTodo, DueDate: day(7)},
		{ID: "far", Status: StatusTodo, DueDate: day(9)},
		{ID: "finished", Status: StatusDone, DueDate: day(2)},
		{ID: "undated", Status: StatusTodo},
	}

	got := UpcomingDeadlines(tasks, now, 7, 0)

	ids := make([]string, 0, len(got))
	for _, s := range got {
		ids = append(ids, s.ID)
	}
	require.Equal(t, []string{"today", "soon", "edge"}, ids)
}

func TestUpcomingDeadlinesLimit(t *testing.T) {
	now := time.Now()
	tasks := make([]Task, 0, 10)
	for i := 0; i < 10; i++ {
		due := now.AddDate(0, 0, i%7)
		tasks = append(tasks, Task{ID: string(rune('a' + i)), Status: StatusTodo, DueDate: &due})
	}

	require.Len(t, UpcomingDeadlines(tasks, now, 7, 5), 5)
	require.Len(t, UpcomingDeadlines(tasks, now, 7, 0), 10)
}

func TestProjectProgress(t *testing.T) {
	p := Project{TotalStoryPoints: 8, CompletedStoryPoints: 5}
	progress := p.Progress(2, 1)
	require.Equal(t, 62.5, progress.CompletionPercentage)
	require.Equal(t, 2, progress.TotalTasks)
	require.Equal(t, 1, progress.CompletedTasks)

	empty := Project{}
	require.Equal(t, 0.0, empty.Progress(0, 0).CompletionPercentage)
}
