package service

import (
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/taskflowhq/taskflow/internal/domain"
	"github.com/taskflowhq/taskflow/internal/llm"
)

type stubLLM struct {
	text string
	err  error
}

func (s *stubLLM) Generate(ctx context.Context, req llm.GenerateRequest) (*llm.GenerateResponse, error) {
	if s.err != nil {
		return nil, s.err
	}
	return &llm.GenerateResponse{Text: s.text, Model: "stub"}, nil
}

func (s *stubLLM) Available(ctx context.Context) bool { return s.err == nil }

func newSuggestionSvc(env *testEnv, client llm.Client) SuggestionService {
	return NewSuggestionService(env.projects, client, slog.Default())
}

func TestSuggestions_GenerateFromModelOutput(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	p := env.createProject(t, "Planning")

	client := &stubLLM{text: `{"suggestions": [
		{"title": "Write docs", "description": "User-facing docs", "status": "TODO"},
		{"title": "Add CI", "description": "", "status": "TODO"}
	]}`}
	svc := newSuggestionSvc(env, client)

	res, err := svc.Generate(ctx, SuggestionRequest{ProjectID: p.ID, UserID: env.user.ID, Query: "what next?"})
	require.NoError(t, err)
	assert.True(t, res.Success)
	require.Len(t, res.Suggestions, 2)
	assert.Equal(t, "Write docs", res.Suggestions[0].Data.Title)
	assert.Equal(t, domain.StatusTodo, res.Suggestions[0].Data.Status)
	assert.NotEmpty(t, res.Suggestions[0].ID)
	assert.Equal(t, 220.0, res.Suggestions[1].Position.X, "suggestions are spread horizontally")
	assert.Contains(t, res.Message, "2 task suggestions")
}

func TestSuggestions_ModelUnavailable_InBandFailure(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	p := env.createProject(t, "Planning")

	svc := newSuggestionSvc(env, &stubLLM{err: llm.ErrUnavailable})

	res, err := svc.Generate(ctx, SuggestionRequest{ProjectID: p.ID, UserID: env.user.ID, Query: "what next?"})
	require.NoError(t, err, "model outages are reported in-band, not as errors")
	assert.False(t, res.Success)
	assert.Empty(t, res.Suggestions)
	assert.Contains(t, res.Message, "unavailable")
}

func TestSuggestions_UnparseableOutput_InBandFailure(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	p := env.createProject(t, "Planning")

	svc := newSuggestionSvc(env, &stubLLM{text: "I think you should focus on testing first."})

	res, err := svc.Generate(ctx, SuggestionRequest{ProjectID: p.ID, UserID: env.user.ID, Query: "what next?"})
	require.NoError(t, err)
	assert.False(t, res.Success)
	assert.Contains(t, res.Message, "could not parse")
}

func TestSuggestions_EmptyQuery_BadRequest(t *testing.T) {
	env := newTestEnv(t)
	p := env.createProject(t, "Planning")

	svc := newSuggestionSvc(env, &stubLLM{})

	_, err := svc.Generate(context.Background(), SuggestionRequest{ProjectID: p.ID, UserID: env.user.ID})
	require.Error(t, err)
	assert.Equal(t, domain.KindBadRequest, domain.KindOf(err))
}

func TestSuggestions_WrongOwner_NotFound(t *testing.T) {
	env := newTestEnv(t)
	other := env.seedUser(t, "Other")
	p := env.createProject(t, "Planning")

	svc := newSuggestionSvc(env, &stubLLM{})

	_, err := svc.Generate(context.Background(), SuggestionRequest{ProjectID: p.ID, UserID: other.ID, Query: "q"})
	require.Error(t, err)
	assert.Equal(t, domain.KindNotFound, domain.KindOf(err))
}

func TestSuggestions_ContextNodesIncludedInPrompt(t *testing.T) {
	req := SuggestionRequest{
		Query: "break down the release",
		AssociatedNodes: []domain.TaskNode{
			{Data: domain.NodeData{Title: "Ship v1", Status: domain.StatusInProgress, Description: "Cut the release"}},
		},
	}
	prompt := buildSuggestionPrompt(req)
	assert.Contains(t, prompt, "break down the release")
	assert.Contains(t, prompt, "Ship v1")
	assert.Contains(t, prompt, "IN_PROGRESS")
}
