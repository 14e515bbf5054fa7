package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/taskflowhq/taskflow/internal/db"
	"github.com/taskflowhq/taskflow/internal/domain"
	"github.com/taskflowhq/taskflow/internal/repository"
)

// Edit reconciles a client-submitted diff against the persisted project graph.
//
// Validation runs first, in order: removed nodes must exist in the project,
// added edges must not duplicate an existing (source, target) pair, removed
// edges must exist in the project, and pure updates must target existing
// nodes. Only then are all mutations applied inside a single transaction, so
// a failing diff never partially mutates the graph.
//
// An id appearing in both nodesToAdd and nodesToUpdate is resolved add-wins:
// the update for that id is skipped and the add's upsert provides the final
// field values.
//
// An empty diff is a no-op that returns the current state without touching
// updated_at.
func (s *projectService) Edit(ctx context.Context, id, userID string, diff domain.ProjectDiff) (*domain.Project, error) {
	project, err := s.projects.GetForUser(ctx, id, userID)
	if err != nil {
		return nil, err
	}

	if diff.Empty() {
		if err := s.loadGraph(ctx, project); err != nil {
			return nil, err
		}
		return project, nil
	}

	if err := s.validateDiff(ctx, id, &diff); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	err = s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		txProjects := repository.NewSQLiteProjectRepo(tx)
		txNodes := repository.NewSQLiteTaskNodeRepo(tx)
		txEdges := repository.NewSQLiteTaskEdgeRepo(tx)

		if diff.Name != nil {
			if err := txProjects.Rename(ctx, id, *diff.Name); err != nil {
				return err
			}
		}

		addIDs := make(map[string]bool, len(diff.NodesToAdd))
		for _, n := range diff.NodesToAdd {
			addIDs[n.ID] = true
		}

		// Updates before upserts: when an id is in both sets the later
		// upsert overwrites, making add the winner.
		for _, n := range diff.NodesToUpdate {
			if addIDs[n.ID] {
				continue
			}
			n.ProjectID = id
			if err := txNodes.Update(ctx, &n); err != nil {
				return err
			}
		}
		for _, n := range diff.NodesToAdd {
			n.ProjectID = id
			if err := txNodes.Upsert(ctx, &n); err != nil {
				return err
			}
		}
		for _, ref := range diff.NodesToRemove {
			if err := txNodes.Delete(ctx, ref.ID, id); err != nil {
				return err
			}
		}

		for _, in := range diff.EdgesToAdd {
			edge := &domain.TaskEdge{
				ID:            in.ID,
				ProjectID:     id,
				Source:        in.Source,
				Target:        in.Target,
				Type:          domain.NodeTask,
				Animated:      false,
				Deletable:     true,
				Reconnectable: true,
			}
			if err := txEdges.Upsert(ctx, edge); err != nil {
				return err
			}
		}
		for _, ref := range diff.EdgesToRemove {
			if err := txEdges.Delete(ctx, ref.ID, id); err != nil {
				return err
			}
		}

		return txProjects.Touch(ctx, id, now)
	})
	if err != nil {
		return nil, err
	}

	return s.GetByID(ctx, id, userID)
}

// validateDiff performs the existence and uniqueness reads of the edit
// operation and normalizes client payloads (generated ids, default status
// and type). The checks are reads only; mutations happen afterwards in one
// transaction.
func (s *projectService) validateDiff(ctx context.Context, projectID string, diff *domain.ProjectDiff) error {
	for _, ref := range diff.NodesToRemove {
		exists, err := s.nodes.ExistsInProject(ctx, ref.ID, projectID)
		if err != nil {
			return err
		}
		if !exists {
			return domain.NotFoundf("node %s not found in project %s", ref.ID, projectID)
		}
	}

	for i := range diff.EdgesToAdd {
		e := &diff.EdgesToAdd[i]
		if e.Source == "" || e.Target == "" {
			return domain.BadRequestf("edge %s is missing source or target", e.ID)
		}
		if e.ID == "" {
			e.ID = uuid.New().String()
		}
		dup, err := s.edges.ExistsBetween(ctx, e.Source, e.Target)
		if err != nil {
			return err
		}
		if dup {
			return domain.Conflictf("edge already exists between source %s and target %s", e.Source, e.Target)
		}
	}

	for _, ref := range diff.EdgesToRemove {
		exists, err := s.edges.ExistsInProject(ctx, ref.ID, projectID)
		if err != nil {
			return err
		}
		if !exists {
			return domain.NotFoundf("edge %s not found in project %s", ref.ID, projectID)
		}
	}

	addIDs := make(map[string]bool, len(diff.NodesToAdd))
	for i := range diff.NodesToAdd {
		n := &diff.NodesToAdd[i]
		if n.ID == "" {
			n.ID = uuid.New().String()
		}
		if err := normalizeNode(n); err != nil {
			return err
		}
		addIDs[n.ID] = true
	}

	for i := range diff.NodesToUpdate {
		n := &diff.NodesToUpdate[i]
		if addIDs[n.ID] {
			continue
		}
		if err := normalizeNode(n); err != nil {
			return err
		}
		exists, err := s.nodes.ExistsInProject(ctx, n.ID, projectID)
		if err != nil {
			return err
		}
		if !exists {
			return domain.NotFoundf("node %s not found in project %s", n.ID, projectID)
		}
	}

	return nil
}

func normalizeNode(n *domain.TaskNode) error {
	if n.Data.Status == "" {
		n.Data.Status = domain.StatusTodo
	}
	if !n.Data.Status.Valid() {
		return domain.BadRequestf("node %s has invalid status %q", n.ID, n.Data.Status)
	}
	if n.Type == "" {
		n.Type = domain.NodeTask
	}
	if !n.Type.Valid() {
		return domain.BadRequestf("node %s has invalid type %q", n.ID, n.Type)
	}
	return nil
}
