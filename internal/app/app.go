package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/stdlib"

	"github.com/heartmarshall/moe-backend/internal/adapter/postgres"
	"github.com/heartmarshall/moe-backend/internal/adapter/postgres/activity"
	"github.com/heartmarshall/moe-backend/internal/adapter/postgres/learnedword"
	"github.com/heartmarshall/moe-backend/internal/config"
	"github.com/heartmarshall/moe-backend/internal/domain"
	"github.com/heartmarshall/moe-backend/internal/service/learning"
	"github.com/heartmarshall/moe-backend/internal/transport/middleware"
	"github.com/heartmarshall/moe-backend/internal/transport/rest"
	"github.com/heartmarshall/moe-backend/migrations"
)

const rateLimitCleanupInterval = time.Minute

// Run is the application entry point. It loads configuration, connects to
// the database, wires the learn-word pipeline and serves HTTP until ctx is
// cancelled.
func Run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := NewLogger(cfg.Log)

	logger.Info("starting application",
		slog.String("version", BuildVersion()),
		slog.String("log_level", cfg.Log.Level),
		slog.String("llm_provider", cfg.LLM.Provider),
		slog.Bool("ai_enabled", cfg.LLM.APIKey != ""),
		slog.Bool("auth_enabled", cfg.Auth.Enabled()),
	)

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		return err
	}
	defer pool.Close()

	if cfg.Database.AutoMigrate {
		if err := migrate(ctx, pool); err != nil {
			return err
		}
		logger.Info("database migrations applied")
	}

	resolver, err := NewResolver(ctx, cfg, logger)
	if err != nil {
		return err
	}

	svc := learning.NewService(logger, resolver, learnedword.New(pool), newActivitySink(cfg.ActivityLog, pool))

	limiter := middleware.NewRateLimiter(cfg.RateLimit.RPS, cfg.RateLimit.Burst, rateLimitCleanupInterval)
	defer limiter.Stop()

	handler := newRouter(routerDeps{
		cfg:     cfg,
		logger:  logger,
		learn:   rest.NewLearnWordHandler(svc, logger, rest.WithStaffRoles(cfg.Auth.StaffRoleList()...)),
		health:  rest.NewHealthHandler(pool, BuildVersion(), pipelineInfo(cfg)),
		limiter: limiter,
	})

	srv := &http.Server{
		Addr:         net.JoinHostPort(cfg.Server.Host, strconv.Itoa(cfg.Server.Port)),
		Handler:      handler,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	return serve(ctx, srv, cfg.Server.ShutdownTimeout, logger)
}

type activitySink interface {
	AppendActivity(ctx context.Context, entry domain.ActivityEntry) error
	AppendSession(ctx context.Context, s domain.StudySession) error
}

// newActivitySink returns the Postgres activity log, or a no-op sink when
// activity logging is switched off.
func newActivitySink(cfg config.ActivityLogConfig, db postgres.DB) activitySink {
	if !cfg.Enabled {
		return learning.NopSink{}
	}
	return activity.New(db)
}

// pipelineInfo summarizes the resolution settings for /health.
func pipelineInfo(cfg *config.Config) rest.PipelineInfo {
	info := rest.PipelineInfo{ActivityLog: cfg.ActivityLog.Enabled}
	if cfg.LLM.APIKey != "" {
		info.AIProvider = strings.ToLower(cfg.LLM.Provider)
	}
	return info
}

func migrate(ctx context.Context, pool *pgxpool.Pool) error {
	db := stdlib.OpenDBFromPool(pool)
	defer db.Close()

	if err := postgres.Migrate(ctx, db, migrations.FS); err != nil {
		return fmt.Errorf("migrate: %w", err)
	}
	return nil
}

// serve runs srv until ctx is cancelled, then shuts it down gracefully.
func serve(ctx context.Context, srv *http.Server, shutdownTimeout time.Duration, logger *slog.Logger) error {
	errCh := make(chan error, 1)
	go func() {
		logger.Info("http server listening", slog.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	logger.Info("shutting down http server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("http server shutdown: %w", err)
	}
	return nil
}
