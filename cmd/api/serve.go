package main

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/spf13/cobra"

	"newsdesk/internal/config"
	hhttp "newsdesk/internal/handler/http"
	harticle "newsdesk/internal/handler/http/article"
	hcategory "newsdesk/internal/handler/http/category"
	"newsdesk/internal/handler/http/requestid"
	pgRepo "newsdesk/internal/infra/adapter/persistence/postgres"
	"newsdesk/internal/infra/db"
	"newsdesk/internal/observability/tracing"
	"newsdesk/internal/resilience/circuitbreaker"
	artUC "newsdesk/internal/usecase/article"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP API server",
	RunE: func(cmd *cobra.Command, _ []string) error {
		return runServe(cmd.Context(), appCfg, logger)
	},
}

// runServe opens the database, applies migrations and serves HTTP until ctx
// is cancelled, then shuts down gracefully.
func runServe(ctx context.Context, cfg config.Config, logger *slog.Logger) error {
	database, err := openDatabase(ctx, cfg)
	if err != nil {
		return err
	}
	defer func() {
		if err := database.Close(); err != nil {
			logger.Error("failed to close database", slog.Any("error", err))
		}
	}()

	if err := db.MigrateUp(ctx, database); err != nil {
		return fmt.Errorf("migrate: %w", err)
	}

	srv := &http.Server{
		Addr:              cfg.Server.Addr(),
		Handler:           newHandler(database, cfg, logger),
		ReadHeaderTimeout: 10 * time.Second, // Prevent Slowloris attacks
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("server starting",
			slog.String("addr", srv.Addr),
			slog.String("version", cfg.Server.Version))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err, ok := <-errCh:
		if ok {
			return fmt.Errorf("server failed: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	logger.Info("shutting down server...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server shutdown: %w", err)
	}
	logger.Info("server stopped")
	return nil
}

// newHandler wires repositories, services and routes and wraps them with the
// middleware chain.
func newHandler(database *sql.DB, cfg config.Config, logger *slog.Logger) http.Handler {
	var (
		querier pgRepo.Querier = database
		breaker hhttp.BreakerState
	)
	if cfg.Database.CircuitBreakerEnabled {
		cb := circuitbreaker.NewDBCircuitBreaker(database)
		querier = cb
		breaker = cb
	}

	artSvc := artUC.NewService(pgRepo.NewArticleRepo(querier))

	mux := http.NewServeMux()
	harticle.Register(mux, artSvc, paginationConfig(cfg), logger)
	hcategory.Register(mux)

	mux.Handle("GET /health", &hhttp.HealthHandler{DB: database, Breaker: breaker, Version: cfg.Server.Version})
	mux.Handle("GET /ready", &hhttp.ReadyHandler{DB: database})
	mux.Handle("GET /live", &hhttp.LiveHandler{})
	mux.Handle("GET /metrics", hhttp.MetricsHandler())

	// Request ID → Tracing → Input Validation → Recovery → Logging → Timeout → Body Limit → Metrics
	return hhttp.Chain(tracing.Route(mux),
		requestid.Middleware,
		tracing.Middleware,
		hhttp.InputValidation(),
		hhttp.Recover(logger),
		hhttp.Logging(logger),
		hhttp.Timeout(cfg.Server.RequestTimeout),
		hhttp.LimitRequestBody(hhttp.MaxRequestBodyBytes),
		hhttp.MetricsMiddleware,
	)
}
