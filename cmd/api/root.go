package main

import (
	"context"
	"database/sql"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"newsdesk/internal/common/pagination"
	"newsdesk/internal/config"
	"newsdesk/internal/infra/db"
	"newsdesk/internal/observability/logging"
)

var (
	cfgFile string
	appCfg  config.Config
	logger  = slog.Default()
)

var rootCmd = &cobra.Command{
	Use:           "newsdesk",
	Short:         "News article listing and submission service",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
		return initConfig()
	},
	RunE: func(cmd *cobra.Command, _ []string) error {
		return runServe(cmd.Context(), appCfg, logger)
	},
}

// Execute runs the root command; without a subcommand it serves HTTP.
func Execute(ctx context.Context) error {
	err := rootCmd.ExecuteContext(ctx)
	if err != nil {
		logger.Error("command failed", slog.Any("error", err))
	}
	return err
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: ./config.yaml or ./configs/config.yaml)")
	rootCmd.AddCommand(serveCmd, migrateCmd, seedCmd)
}

func initConfig() error {
	cfg, err := config.Load(viper.GetViper(), cfgFile)
	if err != nil {
		return err
	}
	appCfg = cfg

	logger = logging.New(os.Stdout, cfg.Log.Level, cfg.Log.Format)
	slog.SetDefault(logger)
	return nil
}

// paginationConfig maps the loaded settings onto the list defaults.
func paginationConfig(cfg config.Config) pagination.Config {
	pc := pagination.DefaultConfig()
	pc.DefaultLimit = cfg.Pagination.DefaultLimit
	pc.MaxLimit = cfg.Pagination.MaxLimit
	return pc
}

// connectionConfig maps the loaded settings onto the database pool.
func connectionConfig(cfg config.Config) db.ConnectionConfig {
	cc := db.DefaultConnectionConfig()
	cc.MaxOpenConns = cfg.Database.MaxOpenConns
	cc.MaxIdleConns = cfg.Database.MaxIdleConns
	cc.ConnMaxLifetime = cfg.Database.ConnMaxLifetime
	cc.ConnMaxIdleTime = cfg.Database.ConnMaxIdleTime
	return cc
}

// openDatabase validates cfg and opens the connection pool.
func openDatabase(ctx context.Context, cfg config.Config) (*sql.DB, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return db.Open(ctx, cfg.Database.URL, connectionConfig(cfg))
}
