package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "medrem",
	Short: "Medication reminder engine",
	Long: `medrem stores medication schedules, materializes their dose
occurrences and notifies owners by email and push when a dose is due.

Examples:
  medrem serve
  medrem dispatch
  medrem migrate`,
	SilenceUsage: true,
}

func init() {
	rootCmd.AddCommand(serveCmd, dispatchCmd, migrateCmd)
}

func main() {
	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		slog.Error("command failed", "error", err)
		os.Exit(1)
	}
}
