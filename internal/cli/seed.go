package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/taskflowhq/taskflow/internal/config"
	"github.com/taskflowhq/taskflow/internal/db"
	"github.com/taskflowhq/taskflow/internal/domain"
	"github.com/taskflowhq/taskflow/internal/repository"
)

// newSeedCmd creates a demo user with a small sample graph, for local
// development against a fresh database.
func newSeedCmd() *cobra.Command {
	var dbPath string
	var email string

	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Populate the database with sample data",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := config.Load()
			if dbPath != "" {
				cfg.DBPath = dbPath
			}

			database, err := db.OpenDB(cfg.DBPath)
			if err != nil {
				return fmt.Errorf("opening database: %w", err)
			}
			defer database.Close()

			ctx := context.Background()
			now := time.Now().UTC()

			users := repository.NewSQLiteUserRepo(database)
			projects := repository.NewSQLiteProjectRepo(database)
			nodes := repository.NewSQLiteTaskNodeRepo(database)
			edges := repository.NewSQLiteTaskEdgeRepo(database)

			user := &domain.User{
				ID:          uuid.New().String(),
				Email:       email,
				DisplayName: "Test User",
				CreatedAt:   now,
				UpdatedAt:   now,
			}
			if err := users.Create(ctx, user); err != nil {
				return err
			}

			project := &domain.Project{
				ID:        uuid.New().String(),
				Name:      "Sample Project",
				OwnerID:   user.ID,
				CreatedAt: now,
				UpdatedAt: now,
			}
			if err := projects.Create(ctx, project); err != nil {
				return err
			}

			n1 := &domain.TaskNode{
				ID:        uuid.New().String(),
				ProjectID: project.ID,
				Data: domain.NodeData{
					Title:       "Task 1",
					Description: "Description for Task 1",
					Status:      domain.StatusTodo,
				},
				Position: domain.Position{X: 100, Y: 200},
				Type:     domain.NodeTask,
			}
			n2 := &domain.TaskNode{
				ID:        uuid.New().String(),
				ProjectID: project.ID,
				Data: domain.NodeData{
					Title:       "Task 2",
					Description: "Description for Task 2",
					Status:      domain.StatusInProgress,
				},
				Position: domain.Position{X: 300, Y: 400},
				Type:     domain.NodeTask,
			}
			for _, n := range []*domain.TaskNode{n1, n2} {
				if err := nodes.Upsert(ctx, n); err != nil {
					return err
				}
			}

			edge := &domain.TaskEdge{
				ID:            uuid.New().String(),
				ProjectID:     project.ID,
				Source:        n1.ID,
				Target:        n2.ID,
				Type:          domain.NodeTask,
				Deletable:     true,
				Reconnectable: true,
			}
			if err := edges.Upsert(ctx, edge); err != nil {
				return err
			}

			fmt.Printf("Seeded user %s with project %s\n", user.Email, project.ID)
			return nil
		},
	}

	cmd.Flags().StringVar(&dbPath, "db", "", "database path (overrides TASKFLOW_DB)")
	cmd.Flags().StringVar(&email, "email", "test@example.com", "email of the seeded user")
	return cmd
}
