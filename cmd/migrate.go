package main

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/charlinto/MedRemApp/internal/infra/repository"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Create or update the database tables",
	RunE: func(cmd *cobra.Command, _ []string) error {
		ctx := cmd.Context()

		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		db, err := initDatabase(cfg.Database)
		if err != nil {
			return fmt.Errorf("failed to initialize database: %w", err)
		}

		sqlDB, err := db.DB()
		if err != nil {
			return err
		}
		defer sqlDB.Close()

		if err := repository.Migrate(ctx, db); err != nil {
			return fmt.Errorf("failed to migrate: %w", err)
		}

		slog.InfoContext(ctx, "database migrated")

		return nil
	},
}
