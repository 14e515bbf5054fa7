package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/taskflowhq/taskflow/internal/domain"
	"github.com/taskflowhq/taskflow/internal/testutil"
)

func TestUserRepo_CreateAndGet(t *testing.T) {
	db := testutil.NewTestDB(t)
	ctx := context.Background()
	repo := NewSQLiteUserRepo(db)

	photo := "https://example.com/a.png"
	user := testutil.NewTestUser("Ada", testutil.WithPhotoURL(photo))
	require.NoError(t, repo.Create(ctx, user))

	byID, err := repo.GetByID(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, user.Email, byID.Email)
	assert.Equal(t, "Ada", byID.DisplayName)
	require.NotNil(t, byID.PhotoURL)
	assert.Equal(t, photo, *byID.PhotoURL)
	assert.Nil(t, byID.PhoneNumber)

	byEmail, err := repo.GetByEmail(ctx, user.Email)
	require.NoError(t, err)
	assert.Equal(t, user.ID, byEmail.ID)
}

func TestUserRepo_GetMissing_NotFound(t *testing.T) {
	db := testutil.NewTestDB(t)
	ctx := context.Background()
	repo := NewSQLiteUserRepo(db)

	_, err := repo.GetByID(ctx, "missing")
	require.Error(t, err)
	assert.Equal(t, domain.KindNotFound, domain.KindOf(err))

	_, err = repo.GetByEmail(ctx, "nobody@example.com")
	require.Error(t, err)
	assert.Equal(t, domain.KindNotFound, domain.KindOf(err))
}

func TestUserRepo_DuplicateEmail_Conflict(t *testing.T) {
	db := testutil.NewTestDB(t)
	ctx := context.Background()
	repo := NewSQLiteUserRepo(db)

	first := testutil.NewTestUser("First", testutil.WithEmail("dup@example.com"))
	require.NoError(t, repo.Create(ctx, first))

	second := testutil.NewTestUser("Second", testutil.WithEmail("dup@example.com"))
	err := repo.Create(ctx, second)
	require.Error(t, err)
	assert.Equal(t, domain.KindConflict, domain.KindOf(err))
}
