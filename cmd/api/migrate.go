package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"newsdesk/internal/infra/db"
)

var migrateDown bool

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Apply (or with --down, drop) the database schema",
	RunE: func(cmd *cobra.Command, _ []string) error {
		ctx := cmd.Context()
		database, err := openDatabase(ctx, appCfg)
		if err != nil {
			return err
		}
		defer func() { _ = database.Close() }()

		if migrateDown {
			if err := db.MigrateDown(ctx, database); err != nil {
				return fmt.Errorf("migrate down: %w", err)
			}
			logger.Info("schema dropped")
			return nil
		}

		if err := db.MigrateUp(ctx, database); err != nil {
			return fmt.Errorf("migrate up: %w", err)
		}
		logger.Info("schema up to date")
		return nil
	},
}

func init() {
	migrateCmd.Flags().BoolVar(&migrateDown, "down", false, "drop the articles table")
}
