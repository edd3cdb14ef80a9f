package domain

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/Vedant634/flowdesk-project/internal/advisor"
	"github.com/Vedant634/flowdesk-project/internal/entities"
	"github.com/Vedant634/flowdesk-project/internal/events"
	"github.com/Vedant634/flowdesk-project/internal/repository"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type repoMock struct{ mock.Mock }

var _ repository.Repository = (*repoMock)(nil)

func (m *repoMock) OnStart(_ context.Context) error { return nil }
func (m *repoMock) OnStop(_ context.Context) error  { return nil }

func (m *repoMock) CreateUser(ctx context.Context, user entities.User) (*entities.User, error) {
	args := m.Called(ctx, user)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.User), args.Error(1)
}

func (m *repoMock) GetUser(ctx context.Context, userID string) (*entities.User, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.User), args.Error(1)
}

func (m *repoMock) GetUserTasks(ctx context.Context, userID string) ([]entities.Task, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entities.Task), args.Error(1)
}

func (m *repoMock) CreateTeam(ctx context.Context, team entities.Team) (*entities.Team, error) {
	args := m.Called(ctx, team)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Team), args.Error(1)
}

func (m *repoMock) GetTeam(ctx context.Context, teamID string) (*entities.Team, error) {
	args := m.Called(ctx, teamID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Team), args.Error(1)
}

func (m *repoMock) AddTeamMember(ctx context.Context, teamID, userID string) error {
	return m.Called(ctx, teamID, userID).Error(0)
}

func (m *repoMock) RemoveTeamMember(ctx context.Context, teamID, userID string) error {
	return m.Called(ctx, teamID, userID).Error(0)
}

func (m *repoMock) GetTeamMembers(ctx context.Context, teamID string) ([]entities.User, error) {
	args := m.Called(ctx, teamID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entities.User), args.Error(1)
}

func (m *repoMock) CreateProject(ctx context.Context, project entities.Project) (*entities.Project, error) {
	args := m.Called(ctx, project)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Project), args.Error(1)
}

func (m *repoMock) GetProject(ctx context.Context, projectID string) (*entities.Project, error) {
	args := m.Called(ctx, projectID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Project), args.Error(1)
}

func (m *repoMock) UpdateProject(ctx context.Context, projectID string, upd entities.ProjectUpdate) (*entities.Project, error) {
	args := m.Called(ctx, projectID, upd)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Project), args.Error(1)
}

func (m *repoMock) GetProjectTasks(ctx context.Context, projectID string) ([]entities.Task, error) {
	args := m.Called(ctx, projectID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entities.Task), args.Error(1)
}

func (m *repoMock) GetProjectsByManager(ctx context.Context, managerID string, status *entities.ProjectStatus) ([]entities.Project, error) {
	args := m.Called(ctx, managerID, status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entities.Project), args.Error(1)
}

func (m *repoMock) GetProjectsByTeam(ctx context.Context, teamID string) ([]entities.Project, error) {
	args := m.Called(ctx, teamID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entities.Project), args.Error(1)
}

func (m *repoMock) SetProjectRisk(ctx context.Context, projectID string, level entities.RiskLevel) error {
	return m.Called(ctx, projectID, level).Error(0)
}

func (m *repoMock) CreateTask(ctx context.Context, task entities.Task) (*entities.Task, error) {
	args := m.Called(ctx, task)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Task), args.Error(1)
}

func (m *repoMock) GetTask(ctx context.Context, taskID string) (*entities.Task, error) {
	args := m.Called(ctx, taskID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Task), args.Error(1)
}

func (m *repoMock) UpdateTaskDetails(ctx context.Context, taskID string, upd entities.TaskUpdate) (*entities.Task, error) {
	args := m.Called(ctx, taskID, upd)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Task), args.Error(1)
}

func (m *repoMock) AssignTask(ctx context.Context, taskID, userID string) (*entities.Task, error) {
	args := m.Called(ctx, taskID, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Task), args.Error(1)
}

func (m *repoMock) SetTaskStatus(ctx context.Context, taskID string, status entities.TaskStatus) (*entities.Task, entities.TaskStatus, error) {
	args := m.Called(ctx, taskID, status)
	var task *entities.Task
	if args.Get(0) != nil {
		task = args.Get(0).(*entities.Task)
	}
	return task, args.Get(1).(entities.TaskStatus), args.Error(2)
}

func (m *repoMock) SubmitForReview(ctx context.Context, taskID, pullRequestURL string, actualHours int) (*entities.Task, error) {
	args := m.Called(ctx, taskID, pullRequestURL, actualHours)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Task), args.Error(1)
}

func (m *repoMock) SetTaskRisk(ctx context.Context, taskID string, pred entities.RiskPrediction) (*entities.Task, error) {
	args := m.Called(ctx, taskID, pred)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Task), args.Error(1)
}

func (m *repoMock) CreateSubtask(ctx context.Context, subtask entities.Subtask) (*entities.Subtask, error) {
	args := m.Called(ctx, subtask)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Subtask), args.Error(1)
}

func (m *repoMock) GetTaskSubtasks(ctx context.Context, taskID string) ([]entities.Subtask, error) {
	args := m.Called(ctx, taskID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entities.Subtask), args.Error(1)
}

func (m *repoMock) ToggleSubtask(ctx context.Context, subtaskID string) (*entities.Subtask, error) {
	args := m.Called(ctx, subtaskID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Subtask), args.Error(1)
}

func (m *repoMock) DeleteSubtask(ctx context.Context, subtaskID string) error {
	return m.Called(ctx, subtaskID).Error(0)
}

func (m *repoMock) CreateComment(ctx context.Context, comment entities.Comment) (*entities.Comment, error) {
	args := m.Called(ctx, comment)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Comment), args.Error(1)
}

func (m *repoMock) GetTaskComments(ctx context.Context, taskID string) ([]entities.Comment, error) {
	args := m.Called(ctx, taskID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entities.Comment), args.Error(1)
}

func (m *repoMock) UpdateComment(ctx context.Context, commentID, content string) (*entities.Comment, error) {
	args := m.Called(ctx, commentID, content)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Comment), args.Error(1)
}

func (m *repoMock) DeleteComment(ctx context.Context, commentID string) error {
	return m.Called(ctx, commentID).Error(0)
}

type advisorStub struct {
	pred entities.RiskPrediction
}

func (a advisorStub) PredictRisk(_ context.Context, _ advisor.Features) entities.RiskPrediction {
	return a.pred
}

type recordingSink struct {
	mu     sync.Mutex
	events []events.Event
}

func (s *recordingSink) Emit(_ context.Context, ev events.Event) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.events = append(s.events, ev)
	return nil
}

func (s *recordingSink) kinds() []events.Kind {
	s.mu.Lock()
	defer s.mu.Unlock()
	res := make([]events.Kind, 0, len(s.events))
	for _, ev := range s.events {
		res = append(res, ev.Kind)
	}
	return res
}

func (s *recordingSink) waitFor(t *testing.T, n int) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		s.mu.Lock()
		got := len(s.events)
		s.mu.Unlock()
		if got >= n {
			return
		}
		time.Sleep(5 * time.Millisecond)
	}
	t.Fatalf("expected %d events", n)
}

func newTestUsecase(repo *repoMock, adv advisor.Advisor, sink events.Sink) *Usecase {
	if adv == nil {
		adv = advisorStub{pred: entities.NeutralRiskPrediction()}
	}
	if sink == nil {
		sink = events.Noop{}
	}
	return New(zap.NewNop().Sugar(), context.Background(), repo, adv, sink, time.Second)
}

func TestUsecase_CreateTaskValidation(t *testing.T) {
	repo := &repoMock{}
	uc := newTestUsecase(repo, nil, nil)

	_, err := uc.CreateTask(context.Background(), entities.Task{ProjectID: "p1", CreatedByUserID: "u1", StoryPoints: 3})
	require.ErrorIs(t, err, entities.ErrInvalidArgument)

	_, err = uc.CreateTask(context.Background(), entities.Task{Title: "t", ProjectID: "p1", CreatedByUserID: "u1", StoryPoints: 22})
	require.ErrorIs(t, err, entities.ErrInvalidArgument)

	_, err = uc.CreateTask(context.Background(), entities.Task{Title: "t", ProjectID: "p1", CreatedByUserID: "u1", StoryPoints: 0})
	require.ErrorIs(t, err, entities.ErrInvalidArgument)

	repo.AssertNotCalled(t, "CreateTask", mock.Anything, mock.Anything)
}

func TestUsecase_CreateTaskAnnotatesRisk(t *testing.T) {
	repo := &repoMock{}
	pred := entities.RiskPrediction{Level: entities.RiskHigh, Score: 82}
	uc := newTestUsecase(repo, advisorStub{pred: pred}, nil)

	created := &entities.Task{ID: "t1", ProjectID: "p1", Title: "demo", Status: entities.StatusTodo, StoryPoints: 5, CreatedByUserID: "u1"}
	annotated := *created
	annotated.RiskLevel = entities.RiskHigh

	repo.On("CreateTask", mock.Anything, mock.MatchedBy(func(task entities.Task) bool {
		return task.Title == "demo" && task.Status == entities.StatusTodo && task.Priority == entities.PriorityMedium && task.ID != ""
	})).Return(created, nil)
	repo.On("GetTaskSubtasks", mock.Anything, "t1").Return([]entities.Subtask{}, nil)
	repo.On("SetTaskRisk", mock.Anything, "t1", pred).Return(&annotated, nil)
	repo.On("GetProjectTasks", mock.Anything, "p1").Return([]entities.Task{annotated}, nil)
	repo.On("SetProjectRisk", mock.Anything, "p1", entities.RiskHigh).Return(nil)

	task, err := uc.CreateTask(context.Background(), entities.Task{Title: "demo", ProjectID: "p1", CreatedByUserID: "u1", StoryPoints: 5})
	require.NoError(t, err)
	require.Equal(t, entities.RiskHigh, task.RiskLevel)
	repo.AssertExpectations(t)
}

func TestUsecase_CreateTaskSurvivesRiskStoreFailure(t *testing.T) {
	repo := &repoMock{}
	uc := newTestUsecase(repo, nil, nil)

	created := &entities.Task{ID: "t1", ProjectID: "p1", Title: "demo", StoryPoints: 3, CreatedByUserID: "u1"}
	repo.On("CreateTask", mock.Anything, mock.Anything).Return(created, nil)
	repo.On("GetTaskSubtasks", mock.Anything, "t1").Return([]entities.Subtask{}, nil)
	repo.On("SetTaskRisk", mock.Anything, "t1", mock.Anything).Return(nil, entities.ErrTaskNotFound)

	task, err := uc.CreateTask(context.Background(), entities.Task{Title: "demo", ProjectID: "p1", CreatedByUserID: "u1", StoryPoints: 3})
	require.NoError(t, err)
	require.Equal(t, created, task)
}

func TestUsecase_UpdateTaskStatusEmitsCompletion(t *testing.T) {
	repo := &repoMock{}
	sink := &recordingSink{}
	uc := newTestUsecase(repo, nil, sink)

	assignee := "u2"
	done := &entities.Task{ID: "t1", ProjectID: "p1", Status: entities.StatusDone, StoryPoints: 5, AssignedToUserID: &assignee}
	repo.On("SetTaskStatus", mock.Anything, "t1", entities.StatusDone).Return(done, entities.StatusInReview, nil)

	task, err := uc.UpdateTaskStatus(context.Background(), "t1", entities.StatusDone)
	require.NoError(t, err)
	require.Equal(t, entities.StatusDone, task.Status)

	sink.waitFor(t, 2)
	require.ElementsMatch(t, []events.Kind{events.TaskStatusChanged, events.TaskCompleted}, sink.kinds())
}

func TestUsecase_UpdateTaskStatusPlainTransition(t *testing.T) {
	repo := &repoMock{}
	sink := &recordingSink{}
	uc := newTestUsecase(repo, nil, sink)

	task := &entities.Task{ID: "t1", ProjectID: "p1", Status: entities.StatusInProgress, StoryPoints: 5}
	repo.On("SetTaskStatus", mock.Anything, "t1", entities.StatusInProgress).Return(task, entities.StatusTodo, nil)

	_, err := uc.UpdateTaskStatus(context.Background(), "t1", entities.StatusInProgress)
	require.NoError(t, err)

	sink.waitFor(t, 1)
	require.Equal(t, []events.Kind{events.TaskStatusChanged}, sink.kinds())
}

func TestUsecase_ApproveAndRequestChanges(t *testing.T) {
	repo := &repoMock{}
	uc := newTestUsecase(repo, nil, nil)

	done := &entities.Task{ID: "t1", Status: entities.StatusDone, StoryPoints: 3}
	inProgress := &entities.Task{ID: "t1", Status: entities.StatusInProgress, StoryPoints: 3}
	repo.On("SetTaskStatus", mock.Anything, "t1", entities.StatusDone).Return(done, entities.StatusInReview, nil)
	repo.On("SetTaskStatus", mock.Anything, "t1", entities.StatusInProgress).Return(inProgress, entities.StatusInReview, nil)

	task, err := uc.ApproveTask(context.Background(), "t1")
	require.NoError(t, err)
	require.Equal(t, entities.StatusDone, task.Status)

	task, err = uc.RequestChanges(context.Background(), "t1")
	require.NoError(t, err)
	require.Equal(t, entities.StatusInProgress, task.Status)
	repo.AssertExpectations(t)
}

func TestUsecase_SubmitForReviewValidation(t *testing.T) {
	repo := &repoMock{}
	uc := newTestUsecase(repo, nil, nil)

	_, err := uc.SubmitForReview(context.Background(), "t1", "", 2, "u1", "")
	require.ErrorIs(t, err, entities.ErrInvalidArgument)

	_, err = uc.SubmitForReview(context.Background(), "t1", "https://git.example/pr/1", -1, "u1", "")
	require.ErrorIs(t, err, entities.ErrInvalidArgument)

	repo.AssertNotCalled(t, "SubmitForReview", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestUsecase_SubmitForReviewRecordsComment(t *testing.T) {
	repo := &repoMock{}
	uc := newTestUsecase(repo, nil, nil)

	repo.On("SubmitForReview", mock.Anything, "t1", "https://git.example/pr/1", 4).
		Return(&entities.Task{ID: "t1", Status: entities.StatusInReview, CreatedByUserID: "m1"}, nil)
	repo.On("CreateComment", mock.Anything, mock.MatchedBy(func(c entities.Comment) bool {
		return c.TaskID == "t1" && c.AuthorID == "u1" && c.Content == "ready for a look" && c.ID != ""
	})).Return(&entities.Comment{ID: "c1"}, nil)

	task, err := uc.SubmitForReview(context.Background(), "t1", "https://git.example/pr/1", 4, "u1", "ready for a look")
	require.NoError(t, err)
	require.Equal(t, entities.StatusInReview, task.Status)
	repo.AssertExpectations(t)
}

func TestUsecase_SubmitForReviewWithoutComment(t *testing.T) {
	repo := &repoMock{}
	uc := newTestUsecase(repo, nil, nil)

	repo.On("SubmitForReview", mock.Anything, "t1", "https://git.example/pr/1", 4).
		Return(&entities.Task{ID: "t1", Status: entities.StatusInReview}, nil)

	_, err := uc.SubmitForReview(context.Background(), "t1", "https://git.example/pr/1", 4, "u1", "")
	require.NoError(t, err)
	repo.AssertNotCalled(t, "CreateComment", mock.Anything, mock.Anything)
}

func TestUsecase_CommentValidation(t *testing.T) {
	repo := &repoMock{}
	uc := newTestUsecase(repo, nil, nil)

	_, err := uc.AddComment(context.Background(), "t1", "u1", "")
	require.ErrorIs(t, err, entities.ErrInvalidArgument)

	_, err = uc.AddComment(context.Background(), "", "u1", "hi")
	require.ErrorIs(t, err, entities.ErrInvalidArgument)

	_, err = uc.UpdateComment(context.Background(), "c1", "")
	require.ErrorIs(t, err, entities.ErrInvalidArgument)

	repo.AssertNotCalled(t, "CreateComment", mock.Anything, mock.Anything)
}

func TestUsecase_RegisterUserValidation(t *testing.T) {
	repo := &repoMock{}
	uc := newTestUsecase(repo, nil, nil)

	_, err := uc.RegisterUser(context.Background(), entities.User{Email: "not-an-email", FirstName: "A", LastName: "B"})
	require.ErrorIs(t, err, entities.ErrInvalidArgument)

	_, err = uc.RegisterUser(context.Background(), entities.User{Email: "a@b.c", FirstName: "", LastName: "B"})
	require.ErrorIs(t, err, entities.ErrInvalidArgument)
}

func TestUsecase_RegisterUserDefaultsRole(t *testing.T) {
	repo := &repoMock{}
	uc := newTestUsecase(repo, nil, nil)

	repo.On("CreateUser", mock.Anything, mock.MatchedBy(func(user entities.User) bool {
		return user.Role == entities.RoleDeveloper && user.ID != ""
	})).Return(&entities.User{ID: "u1", Role: entities.RoleDeveloper}, nil)

	_, err := uc.RegisterUser(context.Background(), entities.User{Email: "a@b.c", FirstName: "A", LastName: "B"})
	require.NoError(t, err)
	repo.AssertExpectations(t)
}

func TestUsecase_RecomputeProjectRisk(t *testing.T) {
	repo := &repoMock{}
	uc := newTestUsecase(repo, nil, nil)

	tasks := []entities.Task{
		{ID: "t1", RiskLevel: entities.RiskHigh},
		{ID: "t2", RiskLevel: entities.RiskLow},
	}
	repo.On("GetProjectTasks", mock.Anything, "p1").Return(tasks, nil)
	repo.On("SetProjectRisk", mock.Anything, "p1", entities.RiskHigh).Return(nil)

	require.NoError(t, uc.RecomputeProjectRisk(context.Background(), "p1"))
	repo.AssertExpectations(t)
}

func TestUsecase_RecomputeProjectRiskEmptyProject(t *testing.T) {
	repo := &repoMock{}
	uc := newTestUsecase(repo, nil, nil)

	repo.On("GetProjectTasks", mock.Anything, "p1").Return([]entities.Task{}, nil)
	repo.On("SetProjectRisk", mock.Anything, "p1", entities.RiskLow).Return(nil)

	require.NoError(t, uc.RecomputeProjectRisk(context.Background(), "p1"))
	repo.AssertExpectations(t)
}

func TestUsecase_TeamWorkloadView(t *testing.T) {
	repo := &repoMock{}
	uc := newTestUsecase(repo, nil, nil)

	members := []entities.User{
		{ID: "u1", CurrentWorkloadPoints: 36, MaxCapacityPoints: 40},
		{ID: "u2", CurrentWorkloadPoints: 24, MaxCapacityPoints: 40},
	}
	repo.On("GetTeamMembers", mock.Anything, "team1").Return(members, nil)
	repo.On("GetUserTasks", mock.Anything, "u1").Return([]entities.Task{
		{ID: "t1", Status: entities.StatusInProgress, StoryPoints: 5},
		{ID: "t2", Status: entities.StatusDone, StoryPoints: 3},
	}, nil)
	repo.On("GetUserTasks", mock.Anything, "u2").Return([]entities.Task{}, nil)

	view, err := uc.TeamWorkload(context.Background(), "team1")
	require.NoError(t, err)

	require.Len(t, view.Members, 2)
	require.Equal(t, "u1", view.Members[0].User.ID)
	require.Equal(t, 90.0, view.Members[0].UtilizationPercentage)
	require.Equal(t, 60.0, view.Members[1].UtilizationPercentage)
	require.False(t, view.IsBalanced)
	require.Equal(t, 75.0, view.AverageUtilization)

	require.Len(t, view.Members[0].ActiveTasks, 1)
	require.Equal(t, "t1", view.Members[0].ActiveTasks[0].ID)
}

func TestUsecase_TeamWorkloadBalanced(t *testing.T) {
	repo := &repoMock{}
	uc := newTestUsecase(repo, nil, nil)

	members := []entities.User{
		{ID: "u1", CurrentWorkloadPoints: 28, MaxCapacityPoints: 40},
		{ID: "u2", CurrentWorkloadPoints: 22, MaxCapacityPoints: 40},
	}
	repo.On("GetTeamMembers", mock.Anything, "team1").Return(members, nil)
	repo.On("GetUserTasks", mock.Anything, mock.Anything).Return([]entities.Task{}, nil)

	view, err := uc.TeamWorkload(context.Background(), "team1")
	require.NoError(t, err)
	require.True(t, view.IsBalanced)
}

func TestUsecase_ProjectProgress(t *testing.T) {
	repo := &repoMock{}
	uc := newTestUsecase(repo, nil, nil)

	repo.On("GetProject", mock.Anything, "p1").Return(&entities.Project{
		ID: "p1", TotalStoryPoints: 8, CompletedStoryPoints: 5,
	}, nil)
	repo.On("GetProjectTasks", mock.Anything, "p1").Return([]entities.Task{
		{ID: "t1", Status: entities.StatusDone, StoryPoints: 5},
		{ID: "t2", Status: entities.StatusTodo, StoryPoints: 3},
	}, nil)

	progress, err := uc.ProjectProgress(context.Background(), "p1")
	require.NoError(t, err)
	require.Equal(t, 2, progress.TotalTasks)
	require.Equal(t, 1, progress.CompletedTasks)
	require.Equal(t, 62.5, progress.CompletionPercentage)
}

func TestUsecase_AddTeamMemberEmitsEvent(t *testing.T) {
	repo := &repoMock{}
	sink := &recordingSink{}
	uc := newTestUsecase(repo, nil, sink)

	repo.On("AddTeamMember", mock.Anything, "team1", "u1").Return(nil)

	require.NoError(t, uc.AddTeamMember(context.Background(), "team1", "u1"))
	sink.waitFor(t, 1)
	require.Equal(t, []events.Kind{events.MemberAdded}, sink.kinds())
}

func TestUsecase_DeveloperDashboard(t *testing.T) {
	repo := &repoMock{}
	uc := newTestUsecase(repo, nil, nil)

	now := time.Now()
	yesterday := now.AddDate(0, 0, -1)
	lastMonth := now.AddDate(0, -1, 0)
	tomorrow := now.AddDate(0, 0, 1)

	repo.On("GetUser", mock.Anything, "u1").Return(&entities.User{ID: "u1", CurrentWorkloadPoints: 8, MaxCapacityPoints: 40}, nil)
	repo.On("GetUserTasks", mock.Anything, "u1").Return([]entities.Task{
		{ID: "t1", Status: entities.StatusInProgress, StoryPoints: 5, DueDate: &tomorrow},
		{ID: "t2", Status: entities.StatusTodo, StoryPoints: 3},
		{ID: "t3", Status: entities.StatusDone, StoryPoints: 2, CompletedAt: &yesterday},
		{ID: "t4", Status: entities.StatusDone, StoryPoints: 1, CompletedAt: &lastMonth},
	}, nil)

	dash, err := uc.DeveloperDashboard(context.Background(), "u1")
	require.NoError(t, err)
	// Every assigned task counts, finished ones included.
	require.Equal(t, 4, dash.MyTasks)
	require.Equal(t, 8, dash.CurrentWorkload)
	require.Equal(t, 1, dash.CompletedThisWeek)
	require.Equal(t, 1, dash.TasksByStatus[entities.StatusInProgress])
	require.Equal(t, 2, dash.TasksByStatus[entities.StatusDone])
	require.Len(t, dash.UpcomingDeadlines, 1)
	require.Equal(t, "t1", dash.UpcomingDeadlines[0].ID)
}

func TestUsecase_ManagerDashboard(t *testing.T) {
	repo := &repoMock{}
	uc := newTestUsecase(repo, nil, nil)

	tomorrow := time.Now().AddDate(0, 0, 1)
	active := entities.ProjectActive

	// Task counters come from active projects only; the workload panel
	// spans the teams of every project the manager owns.
	repo.On("GetProjectsByManager", mock.Anything, "m1", &active).Return([]entities.Project{
		{ID: "p1", TeamID: "teamA"},
	}, nil)
	repo.On("GetProjectsByManager", mock.Anything, "m1", (*entities.ProjectStatus)(nil)).Return([]entities.Project{
		{ID: "p1", TeamID: "teamA"},
		{ID: "p2", TeamID: "teamB", Status: entities.ProjectOnHold},
	}, nil)
	repo.On("GetProjectTasks", mock.Anything, "p1").Return([]entities.Task{
		{ID: "t1", Status: entities.StatusDone, StoryPoints: 3},
		{ID: "t2", Status: entities.StatusInProgress, StoryPoints: 5, RiskLevel: entities.RiskHigh, DueDate: &tomorrow},
	}, nil)
	repo.On("GetTeamMembers", mock.Anything, "teamA").Return([]entities.User{
		{ID: "u1", CurrentWorkloadPoints: 20, MaxCapacityPoints: 40},
	}, nil)
	repo.On("GetTeamMembers", mock.Anything, "teamB").Return([]entities.User{
		{ID: "u2", CurrentWorkloadPoints: 30, MaxCapacityPoints: 40},
	}, nil)
	repo.On("GetUserTasks", mock.Anything, "u1").Return([]entities.Task{}, nil)
	repo.On("GetUserTasks", mock.Anything, "u2").Return([]entities.Task{}, nil)

	dash, err := uc.ManagerDashboard(context.Background(), "m1")
	require.NoError(t, err)
	require.Equal(t, 1, dash.ActiveProjects)
	require.Equal(t, 2, dash.TotalTasks)
	require.Equal(t, 1, dash.CompletedTasks)
	require.Equal(t, 1, dash.HighRiskTasks)
	require.Len(t, dash.UpcomingDeadlines, 1)

	// teamB only reaches the manager through the on-hold project.
	require.Len(t, dash.TeamWorkload, 2)
	require.Equal(t, "u2", dash.TeamWorkload[0].User.ID)
	require.Equal(t, "u1", dash.TeamWorkload[1].User.ID)
}

func TestUsecase_UserDeadlines(t *testing.T) {
	repo := &repoMock{}
	uc := newTestUsecase(repo, nil, nil)

	now := time.Now()
	tomorrow := now.AddDate(0, 0, 1)
	nextMonth := now.AddDate(0, 1, 0)

	repo.On("GetUserTasks", mock.Anything, "u1").Return([]entities.Task{
		{ID: "t1", Status: entities.StatusTodo, DueDate: &tomorrow},
		{ID: "t2", Status: entities.StatusTodo, DueDate: &nextMonth},
		{ID: "t3", Status: entities.StatusDone, DueDate: &tomorrow},
	}, nil)

	// Default window is a week; only t1 is due and unfinished.
	summaries, err := uc.UserDeadlines(context.Background(), "u1", 0)
	require.NoError(t, err)
	require.Len(t, summaries, 1)
	require.Equal(t, "t1", summaries[0].ID)

	// A wider window picks up the far task too.
	summaries, err = uc.UserDeadlines(context.Background(), "u1", 60)
	require.NoError(t, err)
	require.Len(t, summaries, 2)

	_, err = uc.UserDeadlines(context.Background(), "", 7)
	require.ErrorIs(t, err, entities.ErrInvalidArgument)
}

func TestUsecase_SubtaskValidation(t *testing.T) {
	repo := &repoMock{}
	uc := newTestUsecase(repo, nil, nil)

	_, err := uc.AddSubtask(context.Background(), "t1", "")
	require.ErrorIs(t, err, entities.ErrInvalidArgument)

	_, err = uc.ToggleSubtask(context.Background(), "")
	require.ErrorIs(t, err, entities.ErrInvalidArgument)
}
