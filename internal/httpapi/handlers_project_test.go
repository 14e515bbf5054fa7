package httpapi

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/taskflowhq/taskflow/internal/domain"
)

func TestProjects_RequireAuth(t *testing.T) {
	api := newTestAPI(t)

	rec := api.do(t, http.MethodGet, "/projects", "", nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	body := decodeBody[errorResponse](t, rec)
	assert.Equal(t, "Unauthorized: No token provided", body.Message)

	rec = api.do(t, http.MethodGet, "/projects", "forged-token", nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	body = decodeBody[errorResponse](t, rec)
	assert.Equal(t, "Unauthorized: Invalid token", body.Message)
}

func TestProjects_CreateListGet(t *testing.T) {
	api := newTestAPI(t)

	rec := api.do(t, http.MethodPost, "/projects", api.token, map[string]string{"name": "Roadmap"})
	require.Equal(t, http.StatusCreated, rec.Code)
	created := decodeBody[domain.Project](t, rec)
	assert.NotEmpty(t, created.ID)
	assert.Equal(t, "Roadmap", created.Name)
	assert.NotContains(t, rec.Body.String(), api.user.ID, "owner id must not leak into the payload")

	rec = api.do(t, http.MethodGet, "/projects", api.token, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	list := decodeBody[[]domain.Project](t, rec)
	require.Len(t, list, 1)
	assert.Equal(t, created.ID, list[0].ID)

	rec = api.do(t, http.MethodGet, "/projects/"+created.ID, api.token, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	got := decodeBody[domain.Project](t, rec)
	assert.Equal(t, "Roadmap", got.Name)
	assert.NotNil(t, got.Nodes)
	assert.NotNil(t, got.Edges)
}

func TestProjects_List_EmptyIsArray(t *testing.T) {
	api := newTestAPI(t)

	rec := api.do(t, http.MethodGet, "/projects", api.token, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "[]\n", rec.Body.String())
}

func TestProjects_GetUnknown_NotFound(t *testing.T) {
	api := newTestAPI(t)

	rec := api.do(t, http.MethodGet, "/projects/no-such-id", api.token, nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	body := decodeBody[errorResponse](t, rec)
	assert.Equal(t, http.StatusNotFound, body.Status)
	assert.NotEmpty(t, body.Message)
}

func TestProjects_EditFlow(t *testing.T) {
	api := newTestAPI(t)

	rec := api.do(t, http.MethodPost, "/projects", api.token, map[string]string{"name": "Graph"})
	require.Equal(t, http.StatusCreated, rec.Code)
	created := decodeBody[domain.Project](t, rec)

	diff := map[string]any{
		"name": "Graph v2",
		"nodesToAdd": []map[string]any{
			{
				"id":       "n1",
				"data":     map[string]any{"title": "Design", "status": "TODO"},
				"position": map[string]any{"x": 10, "y": 20},
			},
			{
				"id":   "n2",
				"data": map[string]any{"title": "Build"},
			},
		},
		"edgesToAdd": []map[string]any{
			{"id": "e1", "source": "n1", "target": "n2"},
		},
	}
	rec = api.do(t, http.MethodPatch, "/projects/"+created.ID, api.token, diff)
	require.Equal(t, http.StatusOK, rec.Code)
	updated := decodeBody[domain.Project](t, rec)
	assert.Equal(t, "Graph v2", updated.Name)
	require.Len(t, updated.Nodes, 2)
	require.Len(t, updated.Edges, 1)
	assert.True(t, updated.Edges[0].Deletable)

	// Same endpoints again, different edge id.
	rec = api.do(t, http.MethodPatch, "/projects/"+created.ID, api.token, map[string]any{
		"edgesToAdd": []map[string]any{{"id": "e2", "source": "n1", "target": "n2"}},
	})
	assert.Equal(t, http.StatusConflict, rec.Code)

	// Removing a node that was never added.
	rec = api.do(t, http.MethodPatch, "/projects/"+created.ID, api.token, map[string]any{
		"nodesToRemove": []map[string]any{{"id": "ghost"}},
	})
	assert.Equal(t, http.StatusNotFound, rec.Code)
	body := decodeBody[errorResponse](t, rec)
	assert.Contains(t, body.Message, "ghost")
}

func TestProjects_Edit_InvalidJSON_BadRequest(t *testing.T) {
	api := newTestAPI(t)

	rec := api.do(t, http.MethodPost, "/projects", api.token, map[string]string{"name": "Graph"})
	require.Equal(t, http.StatusCreated, rec.Code)
	created := decodeBody[domain.Project](t, rec)

	rec = api.do(t, http.MethodPatch, "/projects/"+created.ID, api.token, "not a diff")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestProjects_Delete(t *testing.T) {
	api := newTestAPI(t)

	rec := api.do(t, http.MethodPost, "/projects", api.token, map[string]string{"name": "Doomed"})
	require.Equal(t, http.StatusCreated, rec.Code)
	created := decodeBody[domain.Project](t, rec)

	rec = api.do(t, http.MethodDelete, "/projects/"+created.ID, api.token, nil)
	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Empty(t, rec.Body.String())

	rec = api.do(t, http.MethodGet, "/projects/"+created.ID, api.token, nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = api.do(t, http.MethodDelete, "/projects/"+created.ID, api.token, nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestRouter_UnknownRoute_NamesPath(t *testing.T) {
	api := newTestAPI(t)

	rec := api.do(t, http.MethodGet, "/nope", api.token, nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	body := decodeBody[errorResponse](t, rec)
	assert.Equal(t, "route /nope not found", body.Message)
}
