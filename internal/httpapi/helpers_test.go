package httpapi

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/taskflowhq/taskflow/internal/domain"
	"github.com/taskflowhq/taskflow/internal/identity"
	"github.com/taskflowhq/taskflow/internal/llm"
	"github.com/taskflowhq/taskflow/internal/repository"
	"github.com/taskflowhq/taskflow/internal/service"
	"github.com/taskflowhq/taskflow/internal/testutil"
)

// stubVerifier resolves bearer tokens from a fixed map instead of the
// provider.
type stubVerifier struct {
	ids map[string]*identity.Identity
}

func (v *stubVerifier) Verify(ctx context.Context, idToken string) (*identity.Identity, error) {
	if id, ok := v.ids[idToken]; ok {
		return id, nil
	}
	return nil, identity.ErrInvalidToken
}

type stubRefresher struct {
	pair *identity.TokenPair
	err  error
}

func (s *stubRefresher) Refresh(ctx context.Context, refreshToken string) (*identity.TokenPair, error) {
	return s.pair, s.err
}

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

type testAPI struct {
	handler   http.Handler
	user      *domain.User
	token     string
	refresher *stubRefresher
	llm       *stubLLM
}

// newTestAPI wires the full stack over an in-memory database, with the
// identity provider and the model stubbed out.
func newTestAPI(t *testing.T) *testAPI {
	t.Helper()
	database := testutil.NewTestDB(t)

	users := repository.NewSQLiteUserRepo(database)
	projects := repository.NewSQLiteProjectRepo(database)
	nodes := repository.NewSQLiteTaskNodeRepo(database)
	edges := repository.NewSQLiteTaskEdgeRepo(database)
	uow := testutil.NewTestUoW(database)

	user := testutil.NewTestUser("Owner")
	require.NoError(t, users.Create(context.Background(), user))

	refresher := &stubRefresher{}
	model := &stubLLM{}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	srv := NewServer(Options{
		Logger:         logger,
		Development:    true,
		AllowedOrigins: []string{"http://localhost:3000"},
		Verifier: &stubVerifier{ids: map[string]*identity.Identity{
			"good-token": {UID: user.ID, Email: user.Email, DisplayName: user.DisplayName},
		}},
		Projects:    service.NewProjectService(uow, projects, nodes, edges),
		Auth:        service.NewAuthService(users, refresher),
		Suggestions: service.NewSuggestionService(projects, model, logger),
	})

	return &testAPI{
		handler:   srv.Routes(),
		user:      user,
		token:     "good-token",
		refresher: refresher,
		llm:       model,
	}
}

func (a *testAPI) do(t *testing.T, method, path, token string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(data)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	a.handler.ServeHTTP(rec, req)
	return rec
}

func decodeBody[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var out T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
	return out
}
