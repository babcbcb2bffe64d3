package main

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/sendou-ink/sendou-pages/internal/config"
	"github.com/sendou-ink/sendou-pages/internal/handler"
	"github.com/sendou-ink/sendou-pages/internal/i18n"
	"github.com/sendou-ink/sendou-pages/internal/meta"
	"github.com/sendou-ink/sendou-pages/internal/permissions"
	"github.com/sendou-ink/sendou-pages/internal/proxy"
	"github.com/sendou-ink/sendou-pages/internal/repository"
	"github.com/sendou-ink/sendou-pages/internal/router"
	"github.com/sendou-ink/sendou-pages/internal/seed"
	"github.com/sendou-ink/sendou-pages/internal/service"
)

func main() {
	if err := newRootCmd().ExecuteContext(context.Background()); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var migrate bool

	serve := &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP server",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runServe(cmd.Context(), migrate)
		},
	}
	serve.Flags().BoolVar(&migrate, "migrate", false, "apply pending migrations before serving")

	root := &cobra.Command{
		Use:          "sendou-pages",
		Short:        "Server rendered pages of sendou.ink",
		SilenceUsage: true,
		RunE:         serve.RunE,
	}
	root.Flags().AddFlagSet(serve.Flags())

	var fixture string
	seedCmd := &cobra.Command{
		Use:   "seed",
		Short: "Load users, teams and groups from a YAML fixture",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runSeed(cmd.Context(), fixture)
		},
	}
	seedCmd.Flags().StringVarP(&fixture, "file", "f", "", "fixture file")
	_ = seedCmd.MarkFlagRequired("file")

	root.AddCommand(serve, &cobra.Command{
		Use:   "migrate",
		Short: "Apply pending database migrations",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runMigrate(cmd.Context())
		},
	}, seedCmd)

	return root
}

func newLogger(cfg config.LogConfig) (*zap.Logger, error) {
	zapCfg := zap.NewProductionConfig()
	if cfg.Dev {
		zapCfg = zap.NewDevelopmentConfig()
	}

	level, err := zap.ParseAtomicLevel(cfg.Level)
	if err != nil {
		return nil, fmt.Errorf("invalid LOG_LEVEL %q: %w", cfg.Level, err)
	}
	zapCfg.Level = level

	return zapCfg.Build()
}

func openDB(cfg config.DatabaseConfig) (*sql.DB, error) {
	db, err := repository.NewDB(cfg.Driver, cfg.DSN(), repository.Pool{
		MaxOpenConns: cfg.MaxOpenConns,
		MaxIdleConns: cfg.MaxIdleConns,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	return db, nil
}

func runMigrate(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}
	logger, err := newLogger(cfg.Log)
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	db, err := openDB(cfg.Database)
	if err != nil {
		return err
	}
	defer func() { _ = db.Close() }()

	applied, err := repository.Migrate(ctx, db, cfg.Database.Driver)
	if err != nil {
		return err
	}
	logger.Info("migrations applied", zap.Int("count", applied), zap.String("driver", cfg.Database.Driver))
	return nil
}

func runSeed(ctx context.Context, path string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}
	logger, err := newLogger(cfg.Log)
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	file, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("failed to open fixture: %w", err)
	}
	defer func() { _ = file.Close() }()

	fixture, err := seed.Parse(file)
	if err != nil {
		return err
	}

	db, err := openDB(cfg.Database)
	if err != nil {
		return err
	}
	defer func() { _ = db.Close() }()

	res, err := seed.NewSeeder(db, logger.Named("seed")).Apply(ctx, fixture)
	if err != nil {
		return err
	}
	logger.Info("fixture applied",
		zap.String("file", path),
		zap.Int("users", res.Users),
		zap.Int("teams", res.Teams),
		zap.Int("groups", res.Groups),
		zap.Int("trusts", res.Trusts),
		zap.Int("skipped", res.Skipped),
	)
	return nil
}

func runServe(ctx context.Context, migrate bool) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}
	logger, err := newLogger(cfg.Log)
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	gin.SetMode(cfg.Server.GinMode)

	db, err := openDB(cfg.Database)
	if err != nil {
		return err
	}
	defer func() { _ = db.Close() }()

	if migrate {
		applied, err := repository.Migrate(ctx, db, cfg.Database.Driver)
		if err != nil {
			return err
		}
		logger.Info("migrations applied", zap.Int("count", applied))
	}

	bundle, err := i18n.Load(cfg.Site.DefaultLanguage)
	if err != nil {
		return fmt.Errorf("failed to load translations: %w", err)
	}

	site := meta.Site{BaseURL: cfg.Site.BaseURL, Name: cfg.Site.Name}
	policy := permissions.NewPolicy(cfg.Site.AdminDiscordID)

	searchService, err := service.NewSearchService(db)
	if err != nil {
		return err
	}
	avatars := proxy.NewDiscordAvatarClient(proxy.Options{
		BaseURL:       cfg.Proxy.DiscordCDNBase,
		Timeout:       cfg.Proxy.Timeout,
		RatePerSecond: cfg.Proxy.RatePerSecond,
		Burst:         cfg.Proxy.Burst,
	}, logger.Named("proxy"))

	r, err := router.SetupRoutes(router.Handlers{
		User:   handler.NewUserHandler(service.NewProfileService(db, policy), searchService, site),
		Badge:  handler.NewBadgeHandler(service.NewBadgeService(db), policy, site),
		Vod:    handler.NewVodHandler(service.NewVodService(db), policy, site),
		Player: handler.NewPlayerHandler(service.NewPlacementService(db), site),
		Team:   handler.NewTeamHandler(service.NewTeamService(db), site),
		Proxy:  handler.NewProxyHandler(avatars),
		Q:      handler.NewQHandler(service.NewGroupService(db), site),
		Health: handler.NewHealthHandler(db),
	}, router.Deps{
		Logger:  logger.Named("http"),
		Bundle:  bundle,
		Viewers: service.NewViewerService(db),
	})
	if err != nil {
		return err
	}

	addr := fmt.Sprintf("%s:%s", cfg.Server.Host, cfg.Server.Port)
	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	serveErr := make(chan error, 1)
	go func() {
		logger.Info("server starting", zap.String("addr", addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
		close(serveErr)
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-serveErr:
		if err != nil {
			return fmt.Errorf("failed to start server: %w", err)
		}
	case <-quit:
	}

	logger.Info("shutting down server")

	// Graceful shutdown with timeout
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server forced to shutdown: %w", err)
	}

	logger.Info("server exited")
	return nil
}
