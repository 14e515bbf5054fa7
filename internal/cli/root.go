package cli

import (
	"github.com/spf13/cobra"
)

// NewRootCmd creates the top-level "taskflow" command and registers all
// subcommands.
func NewRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "taskflow",
		Short: "Task graph editor backend",
	}

	root.AddCommand(
		newServeCmd(),
		newSeedCmd(),
		newResetCmd(),
	)

	return root
}
