package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/BruksfildServices01/salon-backoffice/internal/audit"
	"github.com/BruksfildServices01/salon-backoffice/internal/cache"
	"github.com/BruksfildServices01/salon-backoffice/internal/config"
	dbpkg "github.com/BruksfildServices01/salon-backoffice/internal/db"
	"github.com/BruksfildServices01/salon-backoffice/internal/handlers"
	"github.com/BruksfildServices01/salon-backoffice/internal/infra/memory"
	"github.com/BruksfildServices01/salon-backoffice/internal/routes"
	"github.com/BruksfildServices01/salon-backoffice/internal/storage"
	"github.com/BruksfildServices01/salon-backoffice/internal/timezone"
)

func main() {

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load config")
	}
	setupLogger(cfg)

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	if !timezone.IsValid(cfg.Timezone) {
		log.Warn().Str("timezone", cfg.Timezone).Msg("unknown SALON_TIMEZONE, using default")
		cfg.Timezone = timezone.DefaultTimezone
	}

	deps := routes.Deps{
		Config: cfg,
		Clock:  timezone.NewClock(cfg.Timezone),
		Cache:  cache.Nop{},
		Checks: map[string]handlers.Check{},
	}

	// ======================================================
	// STORE
	// ======================================================
	switch cfg.StoreDriver {
	case config.StoreMemory:
		log.Warn().Msg("using in-memory store, data is lost on exit")
		deps.Stores = routes.MemoryStores(memory.NewStore())
	default:
		db, err := dbpkg.NewDB(cfg)
		if err != nil {
			log.Fatal().Err(err).Msg("failed to connect to postgres")
		}
		deps.Stores = routes.GormStores(db)
		deps.Checks["database"] = func(ctx context.Context) error { return dbpkg.Ping(ctx, db) }
	}

	// ======================================================
	// CATALOG CACHE
	// ======================================================
	if cfg.RedisURL != "" {
		rc, err := cache.NewRedis(cfg.RedisURL, "salon:servicios", cfg.CatalogCacheTTL())
		if err != nil {
			log.Fatal().Err(err).Msg("failed to configure redis")
		}
		defer rc.Close()
		deps.Cache = rc
		deps.Checks["redis"] = rc.Ping
	}

	// ======================================================
	// IMAGE STORAGE
	// ======================================================
	if cfg.StorageEnabled() {
		deps.Uploader = storage.NewS3(storage.Options{
			Bucket:    cfg.S3Bucket,
			Region:    cfg.S3Region,
			Endpoint:  cfg.S3Endpoint,
			AccessKey: cfg.S3AccessKey,
			SecretKey: cfg.S3SecretKey,
			PublicURL: cfg.S3PublicURL,
		})
	}

	// ======================================================
	// AUDIT
	// ======================================================
	dispatcher := audit.NewDispatcher(audit.New(deps.Stores.AuditLogs), cfg.AuditQueueSize)
	deps.Audit = dispatcher

	r := gin.New()
	routes.RegisterRoutes(r, deps)

	srv := &http.Server{
		Addr:         cfg.Addr(),
		Handler:      r,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Info().Str("addr", cfg.Addr()).Str("store", cfg.StoreDriver).Msg("server running")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server error")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("shutting down server")
	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Error().Err(err).Msg("forced shutdown")
	}

	// Drain pending audit events once no handler can enqueue more.
	dispatcher.Close()
	log.Info().Msg("server exited")
}

func setupLogger(cfg *config.Config) {
	level, err := zerolog.ParseLevel(cfg.LogLevel)
	if err != nil || level == zerolog.NoLevel {
		level = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(level)

	if !cfg.IsProduction() {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})
	}
}
