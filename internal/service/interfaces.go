package service

import (
	"context"

	"github.com/taskflowhq/taskflow/internal/domain"
	"github.com/taskflowhq/taskflow/internal/identity"
)

// ProjectService owns the project lifecycle and the graph edit operation.
// All operations are scoped to the calling user.
type ProjectService interface {
	Create(ctx context.Context, name, userID string) (*domain.Project, error)
	List(ctx context.Context, userID string) ([]*domain.Project, error)
	GetByID(ctx context.Context, id, userID string) (*domain.Project, error)
	Edit(ctx context.Context, id, userID string, diff domain.ProjectDiff) (*domain.Project, error)
	Delete(ctx context.Context, id, userID string) error
}

// LoginInput carries the provider-attested account fields sent on login.
type LoginInput struct {
	UID         string
	Email       string
	DisplayName string
	PhotoURL    *string
	PhoneNumber *string
}

// AuthService creates users lazily on first login and rotates refresh tokens
// through the identity provider.
type AuthService interface {
	Login(ctx context.Context, in LoginInput) (*domain.User, error)
	Refresh(ctx context.Context, refreshToken string) (*identity.TokenPair, error)
}

// SuggestionRequest asks for task suggestions for a project, given a natural
// language query and the nodes the user has selected as context.
type SuggestionRequest struct {
	ProjectID       string
	UserID          string
	Query           string
	AssociatedNodes []domain.TaskNode
}

// SuggestionResult mirrors the wire response: generation failures are
// reported in-band, not as errors.
type SuggestionResult struct {
	Success     bool              `json:"success"`
	Suggestions []domain.TaskNode `json:"suggestions,omitempty"`
	Message     string            `json:"message,omitempty"`
}

type SuggestionService interface {
	Generate(ctx context.Context, req SuggestionRequest) (*SuggestionResult, error)
}
