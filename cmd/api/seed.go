package main

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	pgRepo "newsdesk/internal/infra/adapter/persistence/postgres"
	"newsdesk/internal/infra/db"
	"newsdesk/internal/seed"
	artUC "newsdesk/internal/usecase/article"
)

var seedFile string

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Import fixture articles from a YAML file",
	RunE: func(cmd *cobra.Command, _ []string) error {
		articles, err := seed.LoadFile(seedFile)
		if err != nil {
			return err
		}

		ctx := cmd.Context()
		database, err := openDatabase(ctx, appCfg)
		if err != nil {
			return err
		}
		defer func() { _ = database.Close() }()

		if err := db.MigrateUp(ctx, database); err != nil {
			return fmt.Errorf("migrate: %w", err)
		}

		svc := artUC.NewService(pgRepo.NewArticleRepo(database))
		n, err := svc.Import(ctx, articles)
		logger.Info("seed finished",
			slog.String("file", seedFile),
			slog.Int("imported", n),
			slog.Int("total", len(articles)))
		return err
	},
}

func init() {
	seedCmd.Flags().StringVarP(&seedFile, "file", "f", "articles.yaml", "YAML fixture file")
}
