package domain

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKindOf(t *testing.T) {
	assert.Equal(t, KindNotFound, KindOf(NotFoundf("project %s not found", "p1")))
	assert.Equal(t, KindConflict, KindOf(Conflictf("duplicate")))
	assert.Equal(t, KindBadRequest, KindOf(BadRequestf("bad")))
	assert.Equal(t, KindUnauthorized, KindOf(Unauthorizedf("nope")))
	assert.Equal(t, KindForbidden, KindOf(Forbiddenf("nope")))
	assert.Equal(t, KindInternal, KindOf(errors.New("untagged")))
}

func TestKindOf_SurvivesWrapping(t *testing.T) {
	inner := NotFoundf("node n1 not found")
	wrapped := fmt.Errorf("editing project: %w", inner)
	assert.Equal(t, KindNotFound, KindOf(wrapped))
	assert.True(t, IsKind(wrapped, KindNotFound))
	assert.False(t, IsKind(nil, KindInternal))
}

func TestWrapInternal_KeepsCause(t *testing.T) {
	cause := errors.New("disk i/o error")
	err := WrapInternal("saving project", cause)
	assert.Equal(t, KindInternal, KindOf(err))
	assert.ErrorIs(t, err, cause)
	assert.Contains(t, err.Error(), "saving project")
	assert.Contains(t, err.Error(), "disk i/o error")
}
