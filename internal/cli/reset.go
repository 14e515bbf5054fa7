package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/taskflowhq/taskflow/internal/config"
	"github.com/taskflowhq/taskflow/internal/db"
)

// newResetCmd wipes all application data. Requires --yes so it can't be run
// by accident.
func newResetCmd() *cobra.Command {
	var dbPath string
	var yes bool

	cmd := &cobra.Command{
		Use:   "reset",
		Short: "Delete all data from the database",
		RunE: func(cmd *cobra.Command, args []string) error {
			if !yes {
				return fmt.Errorf("refusing to delete data without --yes")
			}

			cfg := config.Load()
			if dbPath != "" {
				cfg.DBPath = dbPath
			}

			database, err := db.OpenDB(cfg.DBPath)
			if err != nil {
				return fmt.Errorf("opening database: %w", err)
			}
			defer database.Close()

			// Children first so the order works even without cascade pragmas.
			for _, table := range []string{"task_edges", "task_nodes", "projects", "users"} {
				if _, err := database.Exec("DELETE FROM " + table); err != nil {
					return fmt.Errorf("clearing %s: %w", table, err)
				}
			}

			fmt.Println("Database cleared")
			return nil
		},
	}

	cmd.Flags().StringVar(&dbPath, "db", "", "database path (overrides TASKFLOW_DB)")
	cmd.Flags().BoolVar(&yes, "yes", false, "confirm deletion")
	return cmd
}
