package service

import (
	"context"
	"database/sql"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/taskflowhq/taskflow/internal/domain"
	"github.com/taskflowhq/taskflow/internal/repository"
	"github.com/taskflowhq/taskflow/internal/testutil"
)

type testEnv struct {
	db       *sql.DB
	users    repository.UserRepo
	projects repository.ProjectRepo
	nodes    repository.TaskNodeRepo
	edges    repository.TaskEdgeRepo
	svc      ProjectService
	user     *domain.User
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	database := testutil.NewTestDB(t)

	env := &testEnv{
		db:       database,
		users:    repository.NewSQLiteUserRepo(database),
		projects: repository.NewSQLiteProjectRepo(database),
		nodes:    repository.NewSQLiteTaskNodeRepo(database),
		edges:    repository.NewSQLiteTaskEdgeRepo(database),
	}
	env.svc = NewProjectService(testutil.NewTestUoW(database), env.projects, env.nodes, env.edges)

	env.user = testutil.NewTestUser("Owner")
	require.NoError(t, env.users.Create(context.Background(), env.user))
	return env
}

func (e *testEnv) seedUser(t *testing.T, name string) *domain.User {
	t.Helper()
	u := testutil.NewTestUser(name)
	require.NoError(t, e.users.Create(context.Background(), u))
	return u
}

func (e *testEnv) createProject(t *testing.T, name string) *domain.Project {
	t.Helper()
	p, err := e.svc.Create(context.Background(), name, e.user.ID)
	require.NoError(t, err)
	return p
}

func strPtr(s string) *string { return &s }
