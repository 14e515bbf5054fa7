package repository

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/taskflowhq/taskflow/internal/domain"
	"github.com/taskflowhq/taskflow/internal/testutil"
)

func seedUser(t *testing.T, db *sql.DB, name string) *domain.User {
	t.Helper()
	user := testutil.NewTestUser(name)
	require.NoError(t, NewSQLiteUserRepo(db).Create(context.Background(), user))
	return user
}

func TestProjectRepo_CreateAndGetForUser(t *testing.T) {
	db := testutil.NewTestDB(t)
	ctx := context.Background()
	repo := NewSQLiteProjectRepo(db)
	owner := seedUser(t, db, "Owner")

	proj := testutil.NewTestProject("Sprint 1", owner.ID)
	require.NoError(t, repo.Create(ctx, proj))

	fetched, err := repo.GetForUser(ctx, proj.ID, owner.ID)
	require.NoError(t, err)
	assert.Equal(t, "Sprint 1", fetched.Name)
	assert.Equal(t, owner.ID, fetched.OwnerID)
}

func TestProjectRepo_GetForUser_OwnershipScoped(t *testing.T) {
	db := testutil.NewTestDB(t)
	ctx := context.Background()
	repo := NewSQLiteProjectRepo(db)
	owner := seedUser(t, db, "Owner")
	other := seedUser(t, db, "Other")

	proj := testutil.NewTestProject("Private", owner.ID)
	require.NoError(t, repo.Create(ctx, proj))

	_, err := repo.GetForUser(ctx, proj.ID, other.ID)
	require.Error(t, err)
	assert.Equal(t, domain.KindNotFound, domain.KindOf(err), "foreign project should look absent")
}

func TestProjectRepo_Create_MissingOwner_BadRequest(t *testing.T) {
	db := testutil.NewTestDB(t)
	ctx := context.Background()
	repo := NewSQLiteProjectRepo(db)

	proj := testutil.NewTestProject("Orphan", "no-such-user")
	err := repo.Create(ctx, proj)
	require.Error(t, err)
	assert.Equal(t, domain.KindBadRequest, domain.KindOf(err))
}

func TestProjectRepo_ListByUser(t *testing.T) {
	db := testutil.NewTestDB(t)
	ctx := context.Background()
	repo := NewSQLiteProjectRepo(db)
	owner := seedUser(t, db, "Owner")
	other := seedUser(t, db, "Other")

	require.NoError(t, repo.Create(ctx, testutil.NewTestProject("A", owner.ID)))
	require.NoError(t, repo.Create(ctx, testutil.NewTestProject("B", owner.ID)))
	require.NoError(t, repo.Create(ctx, testutil.NewTestProject("C", other.ID)))

	projects, err := repo.ListByUser(ctx, owner.ID)
	require.NoError(t, err)
	require.Len(t, projects, 2)
	names := []string{projects[0].Name, projects[1].Name}
	assert.ElementsMatch(t, []string{"A", "B"}, names)
}

func TestProjectRepo_RenameAndTouch(t *testing.T) {
	db := testutil.NewTestDB(t)
	ctx := context.Background()
	repo := NewSQLiteProjectRepo(db)
	owner := seedUser(t, db, "Owner")

	proj := testutil.NewTestProject("Old", owner.ID)
	require.NoError(t, repo.Create(ctx, proj))

	require.NoError(t, repo.Rename(ctx, proj.ID, "New"))
	stamp := time.Now().UTC().Add(time.Hour).Truncate(time.Second)
	require.NoError(t, repo.Touch(ctx, proj.ID, stamp))

	fetched, err := repo.GetForUser(ctx, proj.ID, owner.ID)
	require.NoError(t, err)
	assert.Equal(t, "New", fetched.Name)
	assert.True(t, fetched.UpdatedAt.Equal(stamp))
}

func TestProjectRepo_Delete_ScopedToOwner(t *testing.T) {
	db := testutil.NewTestDB(t)
	ctx := context.Background()
	repo := NewSQLiteProjectRepo(db)
	owner := seedUser(t, db, "Owner")
	other := seedUser(t, db, "Other")

	proj := testutil.NewTestProject("Doomed", owner.ID)
	require.NoError(t, repo.Create(ctx, proj))

	err := repo.Delete(ctx, proj.ID, other.ID)
	require.Error(t, err)
	assert.Equal(t, domain.KindNotFound, domain.KindOf(err))

	require.NoError(t, repo.Delete(ctx, proj.ID, owner.ID))

	_, err = repo.GetForUser(ctx, proj.ID, owner.ID)
	assert.Equal(t, domain.KindNotFound, domain.KindOf(err))
}
