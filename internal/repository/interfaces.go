package repository

import (
	"context"
	"time"

	"github.com/taskflowhq/taskflow/internal/domain"
)

type UserRepo interface {
	Create(ctx context.Context, u *domain.User) error
	GetByID(ctx context.Context, id string) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
}

// ProjectRepo operates on project rows only; nodes and edges are loaded
// through their own repositories. Reads and deletes are scoped to the owning
// user at the query boundary.
type ProjectRepo interface {
	Create(ctx context.Context, p *domain.Project) error
	GetForUser(ctx context.Context, id, userID string) (*domain.Project, error)
	ListByUser(ctx context.Context, userID string) ([]*domain.Project, error)
	Rename(ctx context.Context, id, name string) error
	Touch(ctx context.Context, id string, updatedAt time.Time) error
	Delete(ctx context.Context, id, userID string) error
}

type TaskNodeRepo interface {
	ListByProject(ctx context.Context, projectID string) ([]domain.TaskNode, error)
	ExistsInProject(ctx context.Context, id, projectID string) (bool, error)
	Upsert(ctx context.Context, n *domain.TaskNode) error
	Update(ctx context.Context, n *domain.TaskNode) error
	Delete(ctx context.Context, id, projectID string) error
	DeleteByProject(ctx context.Context, projectID string) error
}

type TaskEdgeRepo interface {
	ListByProject(ctx context.Context, projectID string) ([]domain.TaskEdge, error)
	ExistsInProject(ctx context.Context, id, projectID string) (bool, error)
	// ExistsBetween checks every project for an edge connecting the pair,
	// matching the duplicate check of the edit path.
	ExistsBetween(ctx context.Context, source, target string) (bool, error)
	Upsert(ctx context.Context, e *domain.TaskEdge) error
	Delete(ctx context.Context, id, projectID string) error
	DeleteByProject(ctx context.Context, projectID string) error
}
