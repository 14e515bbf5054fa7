package repository

import (
	"context"
	"fmt"

	"github.com/taskflowhq/taskflow/internal/db"
	"github.com/taskflowhq/taskflow/internal/domain"
)

// SQLiteTaskNodeRepo implements TaskNodeRepo using a SQLite database.
type SQLiteTaskNodeRepo struct {
	db db.DBTX
}

// NewSQLiteTaskNodeRepo creates a new SQLiteTaskNodeRepo.
func NewSQLiteTaskNodeRepo(conn db.DBTX) *SQLiteTaskNodeRepo {
	return &SQLiteTaskNodeRepo{db: conn}
}

func (r *SQLiteTaskNodeRepo) ListByProject(ctx context.Context, projectID string) ([]domain.TaskNode, error) {
	query := `SELECT id, project_id, title, description, status, position_x, position_y, type
		FROM task_nodes WHERE project_id = ?`
	rows, err := r.db.QueryContext(ctx, query, projectID)
	if err != nil {
		return nil, fmt.Errorf("listing nodes: %w", err)
	}
	defer rows.Close()

	nodes := []domain.TaskNode{}
	for rows.Next() {
		var n domain.TaskNode
		var status, typ string
		if err := rows.Scan(&n.ID, &n.ProjectID, &n.Data.Title, &n.Data.Description,
			&status, &n.Position.X, &n.Position.Y, &typ); err != nil {
			return nil, fmt.Errorf("scanning node: %w", err)
		}
		n.Data.Status = domain.NodeStatus(status)
		n.Type = domain.NodeType(typ)
		nodes = append(nodes, n)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating nodes: %w", err)
	}
	return nodes, nil
}

func (r *SQLiteTaskNodeRepo) ExistsInProject(ctx context.Context, id, projectID string) (bool, error) {
	query := `SELECT COUNT(*) FROM task_nodes WHERE id = ? AND project_id = ?`
	var count int
	if err := r.db.QueryRowContext(ctx, query, id, projectID).Scan(&count); err != nil {
		return false, fmt.Errorf("checking node existence: %w", err)
	}
	return count > 0, nil
}

func (r *SQLiteTaskNodeRepo) Upsert(ctx context.Context, n *domain.TaskNode) error {
	query := `INSERT INTO task_nodes (id, project_id, title, description, status, position_x, position_y, type)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(id, project_id) DO UPDATE SET
			title = excluded.title,
			description = excluded.description,
			status = excluded.status,
			position_x = excluded.position_x,
			position_y = excluded.position_y,
			type = excluded.type`
	_, err := r.db.ExecContext(ctx, query,
		n.ID, n.ProjectID, n.Data.Title, n.Data.Description,
		string(n.Data.Status), n.Position.X, n.Position.Y, string(n.Type),
	)
	if err != nil {
		if terr := translateConstraint(err,
			fmt.Sprintf("node %s conflicts with an existing node", n.ID),
			fmt.Sprintf("project %s does not exist", n.ProjectID)); terr != err {
			return terr
		}
		return fmt.Errorf("upserting node: %w", err)
	}
	return nil
}

func (r *SQLiteTaskNodeRepo) Update(ctx context.Context, n *domain.TaskNode) error {
	query := `UPDATE task_nodes SET title = ?, description = ?, status = ?, position_x = ?, position_y = ?, type = ?
		WHERE id = ? AND project_id = ?`
	res, err := r.db.ExecContext(ctx, query,
		n.Data.Title, n.Data.Description, string(n.Data.Status),
		n.Position.X, n.Position.Y, string(n.Type),
		n.ID, n.ProjectID,
	)
	if err != nil {
		return fmt.Errorf("updating node: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("checking updated rows: %w", err)
	}
	if affected == 0 {
		return domain.NotFoundf("node %s not found in project %s", n.ID, n.ProjectID)
	}
	return nil
}

func (r *SQLiteTaskNodeRepo) Delete(ctx context.Context, id, projectID string) error {
	query := `DELETE FROM task_nodes WHERE id = ? AND project_id = ?`
	_, err := r.db.ExecContext(ctx, query, id, projectID)
	if err != nil {
		return fmt.Errorf("deleting node: %w", err)
	}
	return nil
}

func (r *SQLiteTaskNodeRepo) DeleteByProject(ctx context.Context, projectID string) error {
	query := `DELETE FROM task_nodes WHERE project_id = ?`
	_, err := r.db.ExecContext(ctx, query, projectID)
	if err != nil {
		return fmt.Errorf("deleting project nodes: %w", err)
	}
	return nil
}
