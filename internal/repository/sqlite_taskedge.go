package repository

import (
	"context"
	"fmt"

	"github.com/taskflowhq/taskflow/internal/db"
	"github.com/taskflowhq/taskflow/internal/domain"
)

// SQLiteTaskEdgeRepo implements TaskEdgeRepo using a SQLite database.
type SQLiteTaskEdgeRepo struct {
	db db.DBTX
}

// NewSQLiteTaskEdgeRepo creates a new SQLiteTaskEdgeRepo.
func NewSQLiteTaskEdgeRepo(conn db.DBTX) *SQLiteTaskEdgeRepo {
	return &SQLiteTaskEdgeRepo{db: conn}
}

func (r *SQLiteTaskEdgeRepo) ListByProject(ctx context.Context, projectID string) ([]domain.TaskEdge, error) {
	query := `SELECT id, project_id, source, target, type, animated, deletable, reconnectable
		FROM task_edges WHERE project_id = ?`
	rows, err := r.db.QueryContext(ctx, query, projectID)
	if err != nil {
		return nil, fmt.Errorf("listing edges: %w", err)
	}
	defer rows.Close()

	edges := []domain.TaskEdge{}
	for rows.Next() {
		var e domain.TaskEdge
		var typ string
		var animated, deletable, reconnectable int
		if err := rows.Scan(&e.ID, &e.ProjectID, &e.Source, &e.Target,
			&typ, &animated, &deletable, &reconnectable); err != nil {
			return nil, fmt.Errorf("scanning edge: %w", err)
		}
		e.Type = domain.NodeType(typ)
		e.Animated = intToBool(animated)
		e.Deletable = intToBool(deletable)
		e.Reconnectable = intToBool(reconnectable)
		edges = append(edges, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating edges: %w", err)
	}
	return edges, nil
}

func (r *SQLiteTaskEdgeRepo) ExistsInProject(ctx context.Context, id, projectID string) (bool, error) {
	query := `SELECT COUNT(*) FROM task_edges WHERE id = ? AND project_id = ?`
	var count int
	if err := r.db.QueryRowContext(ctx, query, id, projectID).Scan(&count); err != nil {
		return false, fmt.Errorf("checking edge existence: %w", err)
	}
	return count > 0, nil
}

func (r *SQLiteTaskEdgeRepo) ExistsBetween(ctx context.Context, source, target string) (bool, error) {
	query := `SELECT COUNT(*) FROM task_edges WHERE source = ? AND target = ?`
	var count int
	if err := r.db.QueryRowContext(ctx, query, source, target).Scan(&count); err != nil {
		return false, fmt.Errorf("checking edge endpoints: %w", err)
	}
	return count > 0, nil
}

func (r *SQLiteTaskEdgeRepo) Upsert(ctx context.Context, e *domain.TaskEdge) error {
	query := `INSERT INTO task_edges (id, project_id, source, target, type, animated, deletable, reconnectable)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(id, project_id) DO UPDATE SET
			source = excluded.source,
			target = excluded.target`
	_, err := r.db.ExecContext(ctx, query,
		e.ID, e.ProjectID, e.Source, e.Target, string(e.Type),
		boolToInt(e.Animated), boolToInt(e.Deletable), boolToInt(e.Reconnectable),
	)
	if err != nil {
		if terr := translateConstraint(err,
			fmt.Sprintf("edge already exists between source %s and target %s", e.Source, e.Target),
			fmt.Sprintf("project %s does not exist", e.ProjectID)); terr != err {
			return terr
		}
		return fmt.Errorf("upserting edge: %w", err)
	}
	return nil
}

func (r *SQLiteTaskEdgeRepo) Delete(ctx context.Context, id, projectID string) error {
	query := `DELETE FROM task_edges WHERE id = ? AND project_id = ?`
	_, err := r.db.ExecContext(ctx, query, id, projectID)
	if err != nil {
		return fmt.Errorf("deleting edge: %w", err)
	}
	return nil
}

func (r *SQLiteTaskEdgeRepo) DeleteByProject(ctx context.Context, projectID string) error {
	query := `DELETE FROM task_edges WHERE project_id = ?`
	_, err := r.db.ExecContext(ctx, query, projectID)
	if err != nil {
		return fmt.Errorf("deleting project edges: %w", err)
	}
	return nil
}
