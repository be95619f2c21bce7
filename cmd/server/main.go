package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"airline-warehouse/internal/analytics"
	"airline-warehouse/internal/auth"
	"airline-warehouse/internal/generator"
	"airline-warehouse/internal/middleware"
	"airline-warehouse/internal/server"
	"airline-warehouse/internal/shared/config"
	"airline-warehouse/internal/shared/cookies"
	"airline-warehouse/internal/shared/database"
	"airline-warehouse/internal/shared/logger"
	"airline-warehouse/internal/shared/redis"
)

func main() {
	issueToken := flag.String("issue-token", "", "print an admin token for this subject and exit")
	withDB := flag.Bool("db", false, "connect to the warehouse database for health reporting")
	flag.Parse()

	if err := config.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize config: %v\n", err)
		os.Exit(1)
	}
	logger.Init()
	cfg := config.GlobalConfig

	if *issueToken != "" {
		token, err := auth.GenerateJWT(*issueToken, auth.RoleAdmin, cfg.Auth.TokenExpiration)
		if err != nil {
			slog.Error("Failed to issue token", "error", err)
			os.Exit(1)
		}
		fmt.Println(token)
		return
	}

	if err := run(cfg, *withDB); err != nil {
		slog.Error("Server stopped with error", "error", err)
		os.Exit(1)
	}
}

func run(cfg *config.Config, withDB bool) error {
	log := slog.With("component", "server", "operation", "run")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	var db *database.DB
	if withDB {
		var err error
		db, err = database.Connect(ctx)
		if err != nil {
			return err
		}
		defer db.Close()
	}

	cache, closeCache, err := newCache(ctx, cfg.Redis)
	if err != nil {
		return err
	}
	defer closeCache()

	service := analytics.NewService(cache, cfg.Redis.CacheTTL, slog.Default())
	defaults := generator.ConfigFrom(cfg.Generator)
	if _, err := service.Regenerate(ctx, defaults); err != nil {
		return fmt.Errorf("failed to generate initial dataset: %w", err)
	}

	jar := cookies.NewJar(cfg.Auth, cfg.Frontend.URL)
	routes := server.NewRoutes(db, service, defaults, jar, slog.Default())
	mux := routes.Setup()

	limiter := middleware.NewRateLimiter(cfg.RateLimit)
	defer limiter.Stop()
	cors := middleware.NewCORS(cfg.Frontend)

	srv := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      cors.Middleware(limiter.Middleware(mux)),
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info("Server starting", "addr", srv.Addr, "environment", cfg.Server.Environment)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	log.Info("Shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}

// newCache picks Redis when enabled and falls back to process memory.
func newCache(ctx context.Context, cfg config.RedisConfig) (analytics.Cache, func(), error) {
	client, err := redis.Connect(ctx, cfg)
	if err != nil {
		return nil, nil, err
	}
	if client == nil {
		return analytics.NewMemoryCache(), func() {}, nil
	}
	return analytics.NewRedisCache(client), func() { _ = client.Close() }, nil
}
