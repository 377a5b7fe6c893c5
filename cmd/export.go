package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/codegenio/codegenio/internal/config"
	"github.com/codegenio/codegenio/internal/export"
	"github.com/codegenio/codegenio/internal/store"
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export the active account's performance report as CSV",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := config.Load()

		dbPath, err := resolveDBPath(cmd, cfg)
		if err != nil {
			return fmt.Errorf("resolve DB path: %w", err)
		}
		st, err := store.Open(dbPath)
		if err != nil {
			return fmt.Errorf("open store: %w", err)
		}
		defer st.Close()

		appState, err := st.LoadActiveAccountState()
		if err != nil {
			return fmt.Errorf("load account: %w", err)
		}
		if appState == nil || appState.Account == nil {
			return fmt.Errorf("no active account; log in through the app first")
		}

		dir, _ := cmd.Flags().GetString("out")
		if dir == "" {
			dir = cfg.ExportDir
		}

		path, err := export.WriteFile(dir, appState.Profiles, time.Now())
		if err != nil {
			return fmt.Errorf("write report: %w", err)
		}
		fmt.Println("Report written to", path)
		return nil
	},
}

func init() {
	exportCmd.Flags().StringP("out", "o", "", "Directory to write the report to (default: CODEGENIO_EXPORT_DIR or .)")
}
