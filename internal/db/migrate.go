package db

import (
	"database/sql"
	"fmt"
	"strings"
)

// Migrate runs all schema migrations.
func Migrate(db *sql.DB) error {
	for i, stmt := range migrations {
		if _, err := db.Exec(stmt); err != nil {
			// Tolerate "duplicate column name" errors from ALTER TABLE
			// since the migration system re-runs all statements.
			if strings.Contains(err.Error(), "duplicate column name") {
				continue
			}
			return fmt.Errorf("migration %d: %w", i, err)
		}
	}
	return nil
}

var migrations = []string{
	`CREATE TABLE IF NOT EXISTS users (
		id           TEXT PRIMARY KEY,
		email        TEXT NOT NULL UNIQUE,
		display_name TEXT NOT NULL DEFAULT '',
		photo_url    TEXT,
		phone_number TEXT,
		created_at   TEXT NOT NULL,
		updated_at   TEXT NOT NULL
	)`,

	`CREATE TABLE IF NOT EXISTS projects (
		id         TEXT PRIMARY KEY,
		name       TEXT NOT NULL DEFAULT '',
		user_id    TEXT NOT NULL REFERENCES users(id),
		created_at TEXT NOT NULL,
		updated_at TEXT NOT NULL
	)`,

	`CREATE INDEX IF NOT EXISTS idx_projects_user ON projects(user_id)`,

	// Node ids are unique within a project, not globally; the composite
	// primary key also backs the upsert in the edit path.
	`CREATE TABLE IF NOT EXISTS task_nodes (
		id          TEXT NOT NULL,
		project_id  TEXT NOT NULL REFERENCES projects(id) ON DELETE CASCADE,
		title       TEXT NOT NULL DEFAULT '',
		description TEXT NOT NULL DEFAULT '',
		status      TEXT NOT NULL DEFAULT 'TODO'
		            CHECK(status IN ('TODO','IN_PROGRESS','DONE')),
		position_x  REAL NOT NULL DEFAULT 0,
		position_y  REAL NOT NULL DEFAULT 0,
		type        TEXT NOT NULL DEFAULT 'TASK',
		PRIMARY KEY (id, project_id)
	)`,

	`CREATE INDEX IF NOT EXISTS idx_task_nodes_project ON task_nodes(project_id)`,

	`CREATE TABLE IF NOT EXISTS task_edges (
		id            TEXT NOT NULL,
		project_id    TEXT NOT NULL REFERENCES projects(id) ON DELETE CASCADE,
		source        TEXT NOT NULL,
		target        TEXT NOT NULL,
		type          TEXT NOT NULL DEFAULT 'TASK',
		animated      INTEGER NOT NULL DEFAULT 0,
		deletable     INTEGER NOT NULL DEFAULT 1,
		reconnectable INTEGER NOT NULL DEFAULT 1,
		PRIMARY KEY (id, project_id)
	)`,

	`CREATE INDEX IF NOT EXISTS idx_task_edges_project ON task_edges(project_id)`,

	// Source of truth for the one-edge-per-pair invariant. The service layer
	// pre-checks for a friendlier message; two writers racing past the check
	// are resolved here, with the violation translated to a conflict.
	`CREATE UNIQUE INDEX IF NOT EXISTS idx_task_edges_pair ON task_edges(project_id, source, target)`,
}
