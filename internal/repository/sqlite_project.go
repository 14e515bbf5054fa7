package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/taskflowhq/taskflow/internal/db"
	"github.com/taskflowhq/taskflow/internal/domain"
)

// SQLiteProjectRepo implements ProjectRepo using a SQLite database.
type SQLiteProjectRepo struct {
	db db.DBTX
}

// NewSQLiteProjectRepo creates a new SQLiteProjectRepo.
func NewSQLiteProjectRepo(conn db.DBTX) *SQLiteProjectRepo {
	return &SQLiteProjectRepo{db: conn}
}

func (r *SQLiteProjectRepo) Create(ctx context.Context, p *domain.Project) error {
	query := `INSERT INTO projects (id, name, user_id, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		p.ID,
		p.Name,
		p.OwnerID,
		p.CreatedAt.Format(time.RFC3339),
		p.UpdatedAt.Format(time.RFC3339),
	)
	if err != nil {
		if terr := translateConstraint(err,
			fmt.Sprintf("project %s already exists", p.ID),
			fmt.Sprintf("owner %s does not exist", p.OwnerID)); terr != err {
			return terr
		}
		return fmt.Errorf("inserting project: %w", err)
	}
	return nil
}

func (r *SQLiteProjectRepo) GetForUser(ctx context.Context, id, userID string) (*domain.Project, error) {
	query := `SELECT id, name, user_id, created_at, updated_at
		FROM projects WHERE id = ? AND user_id = ?`
	row := r.db.QueryRowContext(ctx, query, id, userID)
	return r.scanProject(row, id)
}

func (r *SQLiteProjectRepo) ListByUser(ctx context.Context, userID string) ([]*domain.Project, error) {
	query := `SELECT id, name, user_id, created_at, updated_at
		FROM projects WHERE user_id = ? ORDER BY created_at`
	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("listing projects: %w", err)
	}
	defer rows.Close()

	var projects []*domain.Project
	for rows.Next() {
		p, err := r.scanProjectFromRows(rows)
		if err != nil {
			return nil, err
		}
		projects = append(projects, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating projects: %w", err)
	}
	return projects, nil
}

func (r *SQLiteProjectRepo) Rename(ctx context.Context, id, name string) error {
	query := `UPDATE projects SET name = ? WHERE id = ?`
	_, err := r.db.ExecContext(ctx, query, name, id)
	if err != nil {
		return fmt.Errorf("renaming project: %w", err)
	}
	return nil
}

func (r *SQLiteProjectRepo) Touch(ctx context.Context, id string, updatedAt time.Time) error {
	query := `UPDATE projects SET updated_at = ? WHERE id = ?`
	_, err := r.db.ExecContext(ctx, query, updatedAt.Format(time.RFC3339), id)
	if err != nil {
		return fmt.Errorf("touching project: %w", err)
	}
	return nil
}

func (r *SQLiteProjectRepo) Delete(ctx context.Context, id, userID string) error {
	query := `DELETE FROM projects WHERE id = ? AND user_id = ?`
	res, err := r.db.ExecContext(ctx, query, id, userID)
	if err != nil {
		return fmt.Errorf("deleting project: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("checking deleted rows: %w", err)
	}
	if affected == 0 {
		return domain.NotFoundf("project %s not found", id)
	}
	return nil
}

func (r *SQLiteProjectRepo) scanProject(row *sql.Row, id string) (*domain.Project, error) {
	var p domain.Project
	var createdAtStr, updatedAtStr string

	err := row.Scan(&p.ID, &p.Name, &p.OwnerID, &createdAtStr, &updatedAtStr)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, domain.NotFoundf("project %s not found", id)
		}
		return nil, fmt.Errorf("scanning project: %w", err)
	}

	var parseErr error
	p.CreatedAt, parseErr = parseTimestamp(createdAtStr)
	if parseErr != nil {
		return nil, fmt.Errorf("parsing created_at: %w", parseErr)
	}
	p.UpdatedAt, parseErr = parseTimestamp(updatedAtStr)
	if parseErr != nil {
		return nil, fmt.Errorf("parsing updated_at: %w", parseErr)
	}

	return &p, nil
}

func (r *SQLiteProjectRepo) scanProjectFromRows(rows *sql.Rows) (*domain.Project, error) {
	var p domain.Project
	var createdAtStr, updatedAtStr string

	err := rows.Scan(&p.ID, &p.Name, &p.OwnerID, &createdAtStr, &updatedAtStr)
	if err != nil {
		return nil, fmt.Errorf("scanning project row: %w", err)
	}

	var parseErr error
	p.CreatedAt, parseErr = parseTimestamp(createdAtStr)
	if parseErr != nil {
		return nil, fmt.Errorf("parsing created_at: %w", parseErr)
	}
	p.UpdatedAt, parseErr = parseTimestamp(updatedAtStr)
	if parseErr != nil {
		return nil, fmt.Errorf("parsing updated_at: %w", parseErr)
	}

	return &p, nil
}
