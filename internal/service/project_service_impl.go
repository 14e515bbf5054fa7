package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/taskflowhq/taskflow/internal/db"
	"github.com/taskflowhq/taskflow/internal/domain"
	"github.com/taskflowhq/taskflow/internal/repository"
)

type projectService struct {
	uow      db.UnitOfWork
	projects repository.ProjectRepo
	nodes    repository.TaskNodeRepo
	edges    repository.TaskEdgeRepo
}

func NewProjectService(uow db.UnitOfWork, projects repository.ProjectRepo, nodes repository.TaskNodeRepo, edges repository.TaskEdgeRepo) ProjectService {
	return &projectService{uow: uow, projects: projects, nodes: nodes, edges: edges}
}

func (s *projectService) Create(ctx context.Context, name, userID string) (*domain.Project, error) {
	now := time.Now().UTC()
	p := &domain.Project{
		ID:        uuid.New().String(),
		Name:      name,
		OwnerID:   userID,
		CreatedAt: now,
		UpdatedAt: now,
		Nodes:     []domain.TaskNode{},
		Edges:     []domain.TaskEdge{},
	}
	if err := s.projects.Create(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

func (s *projectService) List(ctx context.Context, userID string) ([]*domain.Project, error) {
	projects, err := s.projects.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	for _, p := range projects {
		if err := s.loadGraph(ctx, p); err != nil {
			return nil, err
		}
	}
	return projects, nil
}

func (s *projectService) GetByID(ctx context.Context, id, userID string) (*domain.Project, error) {
	p, err := s.projects.GetForUser(ctx, id, userID)
	if err != nil {
		return nil, err
	}
	if err := s.loadGraph(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

func (s *projectService) Delete(ctx context.Context, id, userID string) error {
	// Ownership check up front so an unowned id reports NotFound before any
	// write is attempted.
	if _, err := s.projects.GetForUser(ctx, id, userID); err != nil {
		return err
	}
	return s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		txNodes := repository.NewSQLiteTaskNodeRepo(tx)
		txEdges := repository.NewSQLiteTaskEdgeRepo(tx)
		txProjects := repository.NewSQLiteProjectRepo(tx)

		if err := txNodes.DeleteByProject(ctx, id); err != nil {
			return err
		}
		if err := txEdges.DeleteByProject(ctx, id); err != nil {
			return err
		}
		return txProjects.Delete(ctx, id, userID)
	})
}

// loadGraph populates the node and edge sets of a project.
func (s *projectService) loadGraph(ctx context.Context, p *domain.Project) error {
	nodes, err := s.nodes.ListByProject(ctx, p.ID)
	if err != nil {
		return err
	}
	edges, err := s.edges.ListByProject(ctx, p.ID)
	if err != nil {
		return err
	}
	p.Nodes = nodes
	p.Edges = edges
	return nil
}
