package postgres

import (
	"context"
	"database/sql"
	"path/filepath"
	"strconv"
	"testing"
	"time"

	"github.com/Vedant634/flowdesk-project/config"
	"github.com/Vedant634/flowdesk-project/internal/entities"
	"github.com/Vedant634/flowdesk-project/internal/metrics"

	_ "github.com/lib/pq"
	"github.com/ory/dockertest/v3"
	"github.com/ory/dockertest/v3/docker"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestRepositoryIntegration(t *testing.T) {
	ctx := context.Background()

	cfg, cleanup := setupPostgres(t)
	t.Cleanup(cleanup)

	repo := New(ctx, testLogger(t), cfg, metrics.New(prometheus.NewRegistry()))
	require.NoError(t, repo.OnStart(ctx))
	t.Cleanup(func() { _ = repo.OnStop(ctx) })

	manager, err := repo.CreateUser(ctx, entities.User{
		ID: "m1", Email: "m@corp.io", FirstName: "Maya", LastName: "Lin", Role: entities.RoleManager,
	})
	require.NoError(t, err)
	require.Equal(t, 0, manager.CurrentWorkloadPoints)
	require.Equal(t, entities.DefaultMaxCapacityPoints, manager.MaxCapacityPoints)

	_, err = repo.CreateUser(ctx, entities.User{
		ID: "u1", Email: "a@corp.io", FirstName: "Alice", LastName: "Ng", Role: entities.RoleDeveloper, Skills: []string{"go", "sql"},
	})
	require.NoError(t, err)
	_, err = repo.CreateUser(ctx, entities.User{
		ID: "u2", Email: "b@corp.io", FirstName: "Bob", LastName: "Oh", Role: entities.RoleDeveloper,
	})
	require.NoError(t, err)

	_, err = repo.CreateUser(ctx, entities.User{
		ID: "u9", Email: "a@corp.io", FirstName: "Dup", LastName: "Email", Role: entities.RoleDeveloper,
	})
	require.ErrorIs(t, err, entities.ErrUserExists)

	team, err := repo.CreateTeam(ctx, entities.Team{ID: "team1", Name: "backend", ManagerID: "m1"})
	require.NoError(t, err)
	require.NotNil(t, team.CreatedAt)

	require.NoError(t, repo.AddTeamMember(ctx, "team1", "u1"))
	require.NoError(t, repo.AddTeamMember(ctx, "team1", "u2"))
	require.ErrorIs(t, repo.AddTeamMember(ctx, "team1", "u1"), entities.ErrMemberExists)
	require.ErrorIs(t, repo.AddTeamMember(ctx, "missing", "u1"), entities.ErrTeamNotFound)

	members, err := repo.GetTeamMembers(ctx, "team1")
	require.NoError(t, err)
	require.Len(t, members, 2)
	require.Equal(t, []string{"go", "sql"}, members[0].Skills)

	project, err := repo.CreateProject(ctx, entities.Project{
		ID: "p1", TeamID: "team1", ManagerID: "m1", Name: "Billing", Status: entities.ProjectActive,
	})
	require.NoError(t, err)
	require.Zero(t, project.TotalStoryPoints)
	require.Zero(t, project.CompletedStoryPoints)

	// Creating an unassigned task credits the project total only.
	task, err := repo.CreateTask(ctx, entities.Task{
		ID: "t1", ProjectID: "p1", Title: "invoices", Status: entities.StatusTodo,
		Priority: entities.PriorityMedium, StoryPoints: 5, CreatedByUserID: "m1",
	})
	require.NoError(t, err)
	require.Nil(t, task.StartDate)

	project, err = repo.GetProject(ctx, "p1")
	require.NoError(t, err)
	require.Equal(t, 5, project.TotalStoryPoints)
	require.Equal(t, 0, project.CompletedStoryPoints)

	// Assignment credits the assignee's workload and stamps the start date.
	task, err = repo.AssignTask(ctx, "t1", "u1")
	require.NoError(t, err)
	require.Equal(t, "u1", *task.AssignedToUserID)
	require.NotNil(t, task.StartDate)

	alice, err := repo.GetUser(ctx, "u1")
	require.NoError(t, err)
	require.Equal(t, 5, alice.CurrentWorkloadPoints)

	// Completion credits the project and releases the workload.
	task, oldStatus, err := repo.SetTaskStatus(ctx, "t1", entities.StatusDone)
	require.NoError(t, err)
	require.Equal(t, entities.StatusTodo, oldStatus)
	require.NotNil(t, task.CompletedAt)

	project, err = repo.GetProject(ctx, "p1")
	require.NoError(t, err)
	require.Equal(t, 5, project.CompletedStoryPoints)

	alice, err = repo.GetUser(ctx, "u1")
	require.NoError(t, err)
	require.Equal(t, 0, alice.CurrentWorkloadPoints)

	// Reopening is a plain status change; the earlier accounting stands.
	_, oldStatus, err = repo.SetTaskStatus(ctx, "t1", entities.StatusInProgress)
	require.NoError(t, err)
	require.Equal(t, entities.StatusDone, oldStatus)

	project, err = repo.GetProject(ctx, "p1")
	require.NoError(t, err)
	require.Equal(t, 5, project.CompletedStoryPoints)

	// Assign-on-create credits the workload in the same transaction.
	_, err = repo.CreateTask(ctx, entities.Task{
		ID: "t2", ProjectID: "p1", Title: "payments", Status: entities.StatusTodo,
		Priority: entities.PriorityHigh, StoryPoints: 8, AssignedToUserID: strPtr("u1"), CreatedByUserID: "m1",
	})
	require.NoError(t, err)

	project, err = repo.GetProject(ctx, "p1")
	require.NoError(t, err)
	require.Equal(t, 13, project.TotalStoryPoints)

	alice, err = repo.GetUser(ctx, "u1")
	require.NoError(t, err)
	require.Equal(t, 8, alice.CurrentWorkloadPoints)

	// Reassignment moves the points between developers atomically.
	_, err = repo.AssignTask(ctx, "t2", "u2")
	require.NoError(t, err)

	alice, err = repo.GetUser(ctx, "u1")
	require.NoError(t, err)
	require.Equal(t, 0, alice.CurrentWorkloadPoints)

	bob, err := repo.GetUser(ctx, "u2")
	require.NoError(t, err)
	require.Equal(t, 8, bob.CurrentWorkloadPoints)

	// A story point change applies the delta to project and assignee.
	_, err = repo.UpdateTaskDetails(ctx, "t2", entities.TaskUpdate{
		Title: "payments", Priority: entities.PriorityHigh, StoryPoints: 13,
	})
	require.NoError(t, err)

	project, err = repo.GetProject(ctx, "p1")
	require.NoError(t, err)
	require.Equal(t, 18, project.TotalStoryPoints)

	bob, err = repo.GetUser(ctx, "u2")
	require.NoError(t, err)
	require.Equal(t, 13, bob.CurrentWorkloadPoints)

	// Review submission touches no counters.
	task, err = repo.SubmitForReview(ctx, "t2", "https://git.corp.io/pr/42", 6)
	require.NoError(t, err)
	require.Equal(t, entities.StatusInReview, task.Status)
	require.Equal(t, "https://git.corp.io/pr/42", task.PullRequestURL)
	require.Equal(t, 6, task.ActualHoursLogged)
	require.NotNil(t, task.SubmittedAt)

	bob, err = repo.GetUser(ctx, "u2")
	require.NoError(t, err)
	require.Equal(t, 13, bob.CurrentWorkloadPoints)

	comment, err := repo.CreateComment(ctx, entities.Comment{ID: "c1", TaskID: "t2", AuthorID: "u2", Content: "ready for a look"})
	require.NoError(t, err)
	require.NotNil(t, comment.CreatedAt)

	_, err = repo.CreateComment(ctx, entities.Comment{ID: "c2", TaskID: "missing", AuthorID: "u2", Content: "x"})
	require.ErrorIs(t, err, entities.ErrTaskNotFound)

	comment, err = repo.UpdateComment(ctx, "c1", "ready for another look")
	require.NoError(t, err)
	require.Equal(t, "ready for another look", comment.Content)

	comments, err := repo.GetTaskComments(ctx, "t2")
	require.NoError(t, err)
	require.Len(t, comments, 1)
	require.Equal(t, "u2", comments[0].AuthorID)

	require.NoError(t, repo.DeleteComment(ctx, "c1"))
	require.ErrorIs(t, repo.DeleteComment(ctx, "c1"), entities.ErrCommentNotFound)

	task, err = repo.SetTaskRisk(ctx, "t2", entities.RiskPrediction{Level: entities.RiskHigh, Score: 82})
	require.NoError(t, err)
	require.Equal(t, entities.RiskHigh, task.RiskLevel)
	require.Equal(t, 82, *task.RiskScore)

	require.NoError(t, repo.SetProjectRisk(ctx, "p1", entities.RiskHigh))
	project, err = repo.GetProject(ctx, "p1")
	require.NoError(t, err)
	require.Equal(t, entities.RiskHigh, project.RiskLevel)

	tasks, err := repo.GetProjectTasks(ctx, "p1")
	require.NoError(t, err)
	require.Len(t, tasks, 2)

	myTasks, err := repo.GetUserTasks(ctx, "u2")
	require.NoError(t, err)
	require.Len(t, myTasks, 1)

	active := entities.ProjectActive
	projects, err := repo.GetProjectsByManager(ctx, "m1", &active)
	require.NoError(t, err)
	require.Len(t, projects, 1)

	onHold := entities.ProjectOnHold
	projects, err = repo.GetProjectsByManager(ctx, "m1", &onHold)
	require.NoError(t, err)
	require.Empty(t, projects)

	require.NoError(t, repo.RemoveTeamMember(ctx, "team1", "u2"))
	require.ErrorIs(t, repo.RemoveTeamMember(ctx, "team1", "u2"), entities.ErrMemberNotFound)
}

func TestSubtasksIntegration(t *testing.T) {
	ctx := context.Background()

	cfg, cleanup := setupPostgres(t)
	t.Cleanup(cleanup)

	repo := New(ctx, testLogger(t), cfg, metrics.New(prometheus.NewRegistry()))
	require.NoError(t, repo.OnStart(ctx))
	t.Cleanup(func() { _ = repo.OnStop(ctx) })

	_, err := repo.CreateUser(ctx, entities.User{ID: "m1", Email: "m@corp.io", FirstName: "Maya", LastName: "Lin", Role: entities.RoleManager})
	require.NoError(t, err)
	_, err = repo.CreateTeam(ctx, entities.Team{ID: "team1", Name: "backend", ManagerID: "m1"})
	require.NoError(t, err)
	_, err = repo.CreateProject(ctx, entities.Project{ID: "p1", TeamID: "team1", ManagerID: "m1", Name: "Billing", Status: entities.ProjectActive})
	require.NoError(t, err)
	_, err = repo.CreateTask(ctx, entities.Task{
		ID: "t1", ProjectID: "p1", Title: "invoices", Status: entities.StatusTodo,
		Priority: entities.PriorityMedium, StoryPoints: 3, CreatedByUserID: "m1",
	})
	require.NoError(t, err)

	_, err = repo.CreateSubtask(ctx, entities.Subtask{ID: "s1", TaskID: "missing", Title: "x"})
	require.ErrorIs(t, err, entities.ErrTaskNotFound)

	sub, err := repo.CreateSubtask(ctx, entities.Subtask{ID: "s1", TaskID: "t1", Title: "write schema"})
	require.NoError(t, err)
	require.False(t, sub.IsCompleted)

	sub, err = repo.ToggleSubtask(ctx, "s1")
	require.NoError(t, err)
	require.True(t, sub.IsCompleted)
	require.NotNil(t, sub.CompletedAt)

	sub, err = repo.ToggleSubtask(ctx, "s1")
	require.NoError(t, err)
	require.False(t, sub.IsCompleted)
	require.Nil(t, sub.CompletedAt)

	subs, err := repo.GetTaskSubtasks(ctx, "t1")
	require.NoError(t, err)
	require.Len(t, subs, 1)

	require.NoError(t, repo.DeleteSubtask(ctx, "s1"))
	require.ErrorIs(t, repo.DeleteSubtask(ctx, "s1"), entities.ErrSubtaskNotFound)
}

func strPtr(s string) *string { return &s }

func setupPostgres(t *testing.T) (*config.Config, func()) {
	t.Helper()

	pool, err := dockertest.NewPool("")
	require.NoError(t, err)

	resource, err := pool.RunWithOptions(&dockertest.RunOptions{
		Repository: "postgres",
		Tag:        "16-alpine",
		Env: []string{
			"POSTGRES_PASSWORD=postgres",
			"POSTGRES_USER=postgres",
			"POSTGRES_DB=flowdesk_db",
		},
	}, func(hc *docker.HostConfig) {
		hc.AutoRemove = true
	})
	require.NoError(t, err)

	hostPort := resource.GetPort("5432/tcp")

	port, err := strconv.Atoi(hostPort)
	require.NoError(t, err)
	migrationsDir, err := filepath.Abs(filepath.Join("..", "..", "..", "db", "migrations"))
	require.NoError(t, err)
	require.DirExists(t, migrationsDir)

	cfg := &config.Config{
		Server: config.ServerConfig{Host: "0.0.0.0", Port: 8080, ShutdownTimeout: 5 * time.Second},
		HTTP:   config.HTTPConfig{RequestTimeout: 5 * time.Second},
		Postgres: config.PostgresConfig{
			Host:           "localhost",
			Port:           port,
			User:           "postgres",
			Password:       "postgres",
			DBName:         "flowdesk_db",
			SSLMode:        "disable",
			MigrationsDir:  migrationsDir,
			QueryTimeout:   10 * time.Second,
			MigrateTimeout: 20 * time.Second,
			MaxConns:       4,
			MinConns:       1,
		},
	}

	require.NoError(t, pool.Retry(func() error {
		db, err := sql.Open("postgres", "host=localhost port="+hostPort+" user=postgres password=postgres dbname=flowdesk_db sslmode=disable")
		if err != nil {
			return err
		}
		defer func() { _ = db.Close() }()
		return db.Ping()
	}))

	cleanup := func() {
		_ = pool.Purge(resource)
	}

	return cfg, cleanup
}

func testLogger(t *testing.T) *zap.SugaredLogger {
	t.Helper()

	l, _ := zap.NewDevelopment()
	t.Cleanup(func() { _ = l.Sync() })
	return l.Sugar()
}
