package service

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"
	"github.com/taskflowhq/taskflow/internal/domain"
	"github.com/taskflowhq/taskflow/internal/llm"
	"github.com/taskflowhq/taskflow/internal/repository"
)

const suggestionSystemPrompt = `You are a project planning assistant for a task graph editor.
Given a request and the existing tasks it relates to, propose new tasks.
Respond with a single JSON object of this exact shape and nothing else:
{"suggestions": [{"title": "...", "description": "...", "status": "TODO"}]}
Propose between 1 and 5 tasks. Status must always be "TODO".`

// suggestionPayload is the structured output expected from the model.
type suggestionPayload struct {
	Suggestions []struct {
		Title       string `json:"title"`
		Description string `json:"description"`
		Status      string `json:"status"`
	} `json:"suggestions"`
}

type suggestionService struct {
	projects repository.ProjectRepo
	client   llm.Client
	log      *slog.Logger
}

func NewSuggestionService(projects repository.ProjectRepo, client llm.Client, log *slog.Logger) SuggestionService {
	return &suggestionService{projects: projects, client: client, log: log}
}

// Generate produces task suggestions for a project. Model failures are
// reported in-band via Success=false; only invalid requests return an error.
func (s *suggestionService) Generate(ctx context.Context, req SuggestionRequest) (*SuggestionResult, error) {
	if req.Query == "" {
		return nil, domain.BadRequestf("query is required")
	}
	if _, err := s.projects.GetForUser(ctx, req.ProjectID, req.UserID); err != nil {
		return nil, err
	}

	resp, err := s.client.Generate(ctx, llm.GenerateRequest{
		SystemPrompt: suggestionSystemPrompt,
		UserPrompt:   buildSuggestionPrompt(req),
	})
	if err != nil {
		s.log.Warn("suggestion generation failed", "project_id", req.ProjectID, "err", err)
		return &SuggestionResult{Success: false, Message: "task suggestion service is currently unavailable"}, nil
	}

	payload, err := llm.ExtractJSON[suggestionPayload](resp.Text, validateSuggestions)
	if err != nil {
		s.log.Warn("suggestion output rejected", "project_id", req.ProjectID, "err", err)
		return &SuggestionResult{Success: false, Message: "could not parse generated suggestions"}, nil
	}

	nodes := make([]domain.TaskNode, 0, len(payload.Suggestions))
	for i, sug := range payload.Suggestions {
		nodes = append(nodes, domain.TaskNode{
			ID: uuid.New().String(),
			Data: domain.NodeData{
				Title:       sug.Title,
				Description: sug.Description,
				Status:      domain.StatusTodo,
			},
			// Spread suggestions horizontally so they don't stack on the canvas.
			Position: domain.Position{X: float64(i) * 220},
			Type:     domain.NodeTask,
		})
	}

	return &SuggestionResult{
		Success:     true,
		Suggestions: nodes,
		Message:     fmt.Sprintf("Generated %d task suggestions based on your query", len(nodes)),
	}, nil
}

func buildSuggestionPrompt(req SuggestionRequest) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Request: %s\n", req.Query)
	if len(req.AssociatedNodes) > 0 {
		b.WriteString("Related existing tasks:\n")
		for _, n := range req.AssociatedNodes {
			fmt.Fprintf(&b, "- %s (%s): %s\n", n.Data.Title, n.Data.Status, n.Data.Description)
		}
	}
	return b.String()
}

func validateSuggestions(p suggestionPayload) error {
	if len(p.Suggestions) == 0 {
		return fmt.Errorf("no suggestions returned")
	}
	for i, s := range p.Suggestions {
		if s.Title == "" {
			return fmt.Errorf("suggestion %d has no title", i)
		}
	}
	return nil
}
