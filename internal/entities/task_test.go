package entities

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestTransition(t *testing.T) {
	tests := []struct {
		name     string
		old      TaskStatus
		new      TaskStatus
		points   int
		expected TransitionEffects
	}{
		{
			name:   "todo to in_progress is plain",
			old:    StatusTodo,
			new:    StatusInProgress,
			points: 5,
		},
		{
			name:   "in_progress to in_review is plain",
			old:    StatusInProgress,
			new:    StatusInReview,
			points: 5,
		},
		{
			name:   "in_review to done completes",
			old:    StatusInReview,
			new:    StatusDone,
			points: 5,
			expected: TransitionEffects{
				Completed:             true,
				CompletedPointsDelta:  5,
				AssigneeWorkloadDelta: -5,
			},
		},
		{
			name:   "todo straight to done completes",
			old:    StatusTodo,
			new:    StatusDone,
			points: 8,
			expected: TransitionEffects{
				Completed:             true,
				CompletedPointsDelta:  8,
				AssigneeWorkloadDelta: -8,
			},
		},
		{
			name:     "done to in_progress reopens without accounting",
			old:      StatusDone,
			new:      StatusInProgress,
			points:   5,
			expected: TransitionEffects{Reopened: true},
		},
		{
			name:   "done to done is plain",
			old:    StatusDone,
			new:    StatusDone,
			points: 5,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.expected, Transition(tc.old, tc.new, tc.points))
		})
	}
}

func TestValidateStoryPoints(t *testing.T) {
	require.NoError(t, ValidateStoryPoints(1))
	require.NoError(t, ValidateStoryPoints(21))
	require.ErrorIs(t, ValidateStoryPoints(0), ErrInvalidArgument)
	require.ErrorIs(t, ValidateStoryPoints(22), ErrInvalidArgument)
	require.ErrorIs(t, ValidateStoryPoints(-3), ErrInvalidArgument)
}

func TestParseTaskStatus(t *testing.T) {
	for _, valid := range []string{"TODO", "IN_PROGRESS", "IN_REVIEW", "DONE"} {
		status, err := ParseTaskStatus(valid)
		require.NoError(t, err)
		require.Equal(t, TaskStatus(valid), status)
	}

	_, err := ParseTaskStatus("ARCHIVED")
	require.ErrorIs(t, err, ErrInvalidArgument)

	_, err = ParseTaskStatus("done")
	require.ErrorIs(t, err, ErrInvalidArgument)
}

func TestTaskAssigned(t *testing.T) {
	var task Task
	require.False(t, task.Assigned())

	empty := ""
	task.AssignedToUserID = &empty
	require.False(t, task.Assigned())

	userID := "u1"
	task.AssignedToUserID = &userID
	require.True(t, task.Assigned())
}
