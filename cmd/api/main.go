// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Command api serves the Folio content API.
//
// It connects PostgreSQL and Redis, applies pending migrations, starts the
// sitemap revalidator, then serves HTTP until SIGINT or SIGTERM.
package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/taibuivan/folio/internal/api"
	"github.com/taibuivan/folio/internal/contact"
	"github.com/taibuivan/folio/internal/content"
	"github.com/taibuivan/folio/internal/dashboard"
	"github.com/taibuivan/folio/internal/media"
	"github.com/taibuivan/folio/internal/platform/config"
	"github.com/taibuivan/folio/internal/platform/constants"
	"github.com/taibuivan/folio/internal/platform/middleware"
	"github.com/taibuivan/folio/internal/platform/migration"
	pgstore "github.com/taibuivan/folio/internal/platform/postgres"
	redisstore "github.com/taibuivan/folio/internal/platform/redis"
	"github.com/taibuivan/folio/internal/platform/sec"
	"github.com/taibuivan/folio/internal/session"
	"github.com/taibuivan/folio/internal/sitemap"
)

func main() {
	// ── 1. Logger ──────────────────────────────────────────────────────────
	rawLog := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))

	log := rawLog.With(slog.String("app", constants.AppName))
	slog.SetDefault(log)

	log.Info("service_initializing", slog.String("version", constants.AppVersion))

	// ── 2. Configuration ──────────────────────────────────────────────────
	cfg, err := config.Load()
	must(log, err, "load configuration")

	if cfg.Debug {
		debugLog := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		}))
		log = debugLog.With(slog.String("app", constants.AppName))
		slog.SetDefault(log)
		log.Debug("debug_logging_enabled")
	}

	log.Info("configuration_loaded",
		slog.String("environment", cfg.Environment),
		slog.String("port", cfg.ServerPort),
		slog.Bool("uploads_enabled", cfg.UploadsEnabled()),
	)

	// Root context lives until shutdown; background workers stop with it.
	rootCtx, rootCancel := context.WithCancel(context.Background())
	defer rootCancel()

	startupCtx, startupCancel := context.WithTimeout(rootCtx, 30*time.Second)
	defer startupCancel()

	// ── 3. PostgreSQL ─────────────────────────────────────────────────────
	pool, err := pgstore.NewPool(startupCtx, cfg.DatabaseURL, log)
	must(log, err, "connect to postgres")
	defer func() {
		log.Info("postgres_closing")
		pool.Close()
	}()

	// ── 4. Redis ──────────────────────────────────────────────────────────
	rdb, err := redisstore.NewClient(startupCtx, cfg.RedisURL, log)
	must(log, err, "connect to redis")
	defer func() {
		log.Info("redis_closing")
		if cerr := rdb.Close(); cerr != nil {
			log.Error("redis_close_failed", slog.Any("error", cerr))
		}
	}()

	// ── 5. Migrations ─────────────────────────────────────────────────────
	must(log, migration.RunUp(cfg.DatabaseURL, cfg.MigrationPath, log), "run migrations")

	// ── 6. Auth ───────────────────────────────────────────────────────────
	tokenSvc, err := sec.NewTokenService(cfg.SessionSecret, constants.AuthIssuer)
	must(log, err, "initialize session token service")

	credentials := sec.Credentials{Secret: cfg.APISecret, IsProduction: cfg.IsProduction()}
	guard := middleware.RequireAdmin(credentials)

	// ── 7. Probes ─────────────────────────────────────────────────────────
	liveness, readiness := api.NewHealthHandlers(api.HealthDependencies{
		CheckDatabase: func(ctx context.Context) error {
			return pgstore.Ping(ctx, pool)
		},
		CheckCache: func(ctx context.Context) error {
			return redisstore.Ping(ctx, rdb)
		},
	}, log)

	// ── 8. Content stores and sitemap ─────────────────────────────────────
	schemas := content.Schemas()
	repositories := make([]content.Repository, len(schemas))
	sources := make([]sitemap.Source, len(schemas))
	for i, s := range schemas {
		repositories[i] = content.NewPostgresRepository(pool, s)
		sources[i] = content.NewSource(repositories[i], s)
	}

	revalidator := sitemap.NewRevalidator(sitemap.NewRedisStore(rdb), cfg.SiteBaseURL, log, sources)
	go revalidator.Run(rootCtx)

	// The artifact may predate the last deploy's content.
	revalidator.Trigger()

	// ── 9. Media uploads (optional) ───────────────────────────────────────
	var mediaHandler *media.Handler
	if cfg.UploadsEnabled() {
		uploader, err := media.NewS3Uploader(startupCtx, media.S3Options{
			Bucket:          cfg.Storage.Bucket,
			Region:          cfg.Storage.Region,
			Endpoint:        cfg.Storage.Endpoint,
			AccessKeyID:     cfg.Storage.AccessKeyID,
			SecretAccessKey: cfg.Storage.SecretAccessKey,
			PublicBaseURL:   cfg.Storage.PublicBaseURL,
		})
		must(log, err, "initialize object storage")
		mediaHandler = media.NewHandler(uploader, log)
	}

	// ── 10. Services and handlers ─────────────────────────────────────────
	services := make([]*content.Service, len(schemas))
	contentHandlers := make([]*content.Handler, len(schemas))
	for i, s := range schemas {
		services[i] = content.NewService(repositories[i], s, revalidator, log)
		contentHandlers[i] = content.NewHandler(services[i], guard)
		if mediaHandler != nil {
			contentHandlers[i].WithUpload(mediaHandler.Upload(s.Folder))
		}
	}

	contactService := contact.NewService(contact.NewPostgresRepository(pool), log)
	byKind := content.ByKind(services...)
	reporter := dashboard.NewReporter(
		byKind[content.KindProject], byKind[content.KindVideo], byKind[content.KindAchievement],
		contactService, log,
	)
	sessionService := session.NewService(cfg.AdminPasswordHash, tokenSvc, log)

	// ── 11. HTTP Server ───────────────────────────────────────────────────
	handlers := api.Handlers{
		Liveness:  liveness,
		Readiness: readiness,
		Sitemap:   sitemap.NewHandler(revalidator),
		Session:   session.NewHandler(sessionService, credentials),
		Content:   contentHandlers,
		Catalog:   content.NewCatalogHandler(services...),
		Contact:   contact.NewHandler(contactService, guard),
		Dashboard: dashboard.NewHandler(reporter, guard),
	}

	server := api.NewServer(rootCtx, cfg, log, tokenSvc, handlers)

	// ── 12. Graceful Shutdown ─────────────────────────────────────────────
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGTERM, syscall.SIGINT)

	serverErr := make(chan error, 1)
	go func() {
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	select {
	case sig := <-quit:
		log.Info("shutdown_signal_received", slog.String("signal", sig.String()))
	case err := <-serverErr:
		log.Error("server_listen_failed", slog.Any("error", err))
	}

	log.Info("server_shutting_down", slog.Duration("timeout", constants.ShutdownTimeout))
	if err := server.Shutdown(constants.ShutdownTimeout); err != nil {
		log.Error("server_shutdown_failed", slog.Any("error", err))
		os.Exit(1)
	}

	rootCancel()
	log.Info("server_stopped")
}

// must exits the process when a startup step fails.
func must(log *slog.Logger, err error, step string) {
	if err == nil {
		return
	}
	log.Error("startup_failed", slog.String("step", step), slog.Any("error", err))
	os.Exit(1)
}
