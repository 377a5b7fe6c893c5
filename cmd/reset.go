package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/codegenio/codegenio/internal/config"
)

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Delete all stored accounts and progress",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := config.Load()

		dbPath, err := resolveDBPath(cmd, cfg)
		if err != nil {
			return fmt.Errorf("resolve DB path: %w", err)
		}

		force, _ := cmd.Flags().GetBool("force")
		if !force {
			fmt.Printf("This deletes %s and all progress. Re-run with --force to confirm.\n", dbPath)
			return nil
		}

		if err := os.Remove(dbPath); err != nil {
			if os.IsNotExist(err) {
				fmt.Println("Nothing to reset.")
				return nil
			}
			return fmt.Errorf("remove database: %w", err)
		}
		// SQLite sidecar files from WAL mode.
		os.Remove(dbPath + "-wal")
		os.Remove(dbPath + "-shm")

		fmt.Println("All data deleted.")
		return nil
	},
}

func init() {
	resetCmd.Flags().Bool("force", false, "Skip the confirmation prompt")
}
