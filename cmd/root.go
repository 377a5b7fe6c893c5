package cmd

import (
	"github.com/spf13/cobra"

	"github.com/codegenio/codegenio/internal/config"
	"github.com/codegenio/codegenio/internal/store"
)

var rootCmd = &cobra.Command{
	Use:   "codegenio",
	Short: "Programming lessons for kids",
	Long:  "CodeGenio — terminal app that teaches children programming through a gamified course with an AI tutor.",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd)
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("db", "", "Path to SQLite database file (overrides CODEGENIO_DB env var)")

	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(versionCmd)
}

// resolveDBPath returns the database path using --db flag (highest
// priority), then the CODEGENIO_DB env var, then the default XDG path.
func resolveDBPath(cmd *cobra.Command, cfg config.Config) (string, error) {
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		return p, store.EnsureDir(p)
	}
	if cfg.DBPath != "" {
		return cfg.DBPath, store.EnsureDir(cfg.DBPath)
	}
	return store.DefaultDBPath()
}
