package main

import (
	"context"
	"errors"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/oggyb/matching-service/internal/app"
	"github.com/oggyb/matching-service/internal/cache"
	"github.com/oggyb/matching-service/internal/config"
	"github.com/oggyb/matching-service/internal/db"
	"github.com/oggyb/matching-service/internal/events"
	"github.com/oggyb/matching-service/internal/handlers"
	"github.com/oggyb/matching-service/internal/logger"
	"github.com/oggyb/matching-service/internal/server"
	"github.com/oggyb/matching-service/internal/service/match"
)

const shutdownTimeout = 15 * time.Second

func main() {
	cfg, err := config.New()
	if err != nil {
		slog.Error("failed to load config", "err", err)
		os.Exit(1)
	}

	// Init logger (global singleton)
	logger.InitFromConfig(cfg)
	log := logger.L()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Init DB
	database, err := db.NewDB(cfg)
	if err != nil {
		log.Error("failed to init db", "err", err)
		os.Exit(1)
	}

	// Init Redis; visitor counts fall back to the DB without it
	var redisCache *cache.RedisCache
	if cfg.Redis.Addr != "" {
		redisCache = cache.NewRedisCache(cfg)
		if err := redisCache.Ping(ctx); err != nil {
			log.Warn("redis unavailable, running without cache", "addr", cfg.Redis.Addr, "err", err)
			_ = redisCache.Close()
			redisCache = nil
		}
	}

	publisher, err := events.NewPublisher(cfg)
	if err != nil {
		log.Error("failed to init event publisher", "driver", cfg.Events.Driver, "err", err)
		os.Exit(1)
	}

	appCtx := app.New(database, redisCache, log, app.WithPublisher(publisher))

	if cfg.IsDevelopment() {
		if err := db.SeedTestData(database); err != nil {
			log.Error("failed to seed", "err", err)
		}
	}

	// gRPC
	grpcServer, hs := server.NewGRPCServer(match.NewRegistrar(appCtx))
	lis, err := server.Listen(cfg)
	if err != nil {
		log.Error("failed to listen for gRPC", "err", err)
		os.Exit(1)
	}

	// HTTP
	httpServer := &http.Server{
		Addr: net.JoinHostPort(cfg.HTTP.Host, cfg.HTTP.Port),
		Handler: handlers.NewRouter(appCtx,
			handlers.WithBasePath(cfg.HTTP.BasePath),
			handlers.WithCORSOrigins(cfg.HTTP.CORSOrigins...),
			handlers.WithAPIKeyHash(cfg.Auth.APIKeyHash),
		),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 2)
	go func() {
		log.Info("starting gRPC server", "addr", lis.Addr().String())
		errCh <- grpcServer.Serve(lis)
	}()
	go func() {
		log.Info("starting HTTP server", "addr", httpServer.Addr)
		if err := httpServer.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case <-ctx.Done():
		log.Info("shutdown signal received")
	case err := <-errCh:
		log.Error("server stopped unexpectedly", "err", err)
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	hs.Shutdown()
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		log.Error("http graceful shutdown failed", "err", err)
	}
	grpcStopped := make(chan struct{})
	go func() {
		grpcServer.GracefulStop()
		close(grpcStopped)
	}()
	select {
	case <-grpcStopped:
	case <-shutdownCtx.Done():
		grpcServer.Stop()
	}

	if err := publisher.Close(); err != nil {
		log.Warn("failed to close event publisher", "err", err)
	}
	if redisCache != nil {
		_ = redisCache.Close()
	}
	if sqlDB, err := database.DB(); err == nil {
		_ = sqlDB.Close()
	}
	log.Info("shutdown complete")
}
