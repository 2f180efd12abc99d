package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"consultdesk/internal/config"
	"consultdesk/internal/database"
	"consultdesk/internal/logging"
	"consultdesk/internal/middleware"
	"consultdesk/internal/notification"
	"consultdesk/internal/repository"
	"consultdesk/internal/server"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
)

func main() {
	if err := run(); err != nil {
		log.Fatalf("Fatal error: %v", err)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := logging.New(cfg.Logging, cfg.AppEnv)
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	db, err := database.Connect(cfg.DatabaseURL, logger)
	if err != nil {
		logger.Error().Err(err).Msg("database connection failed")
		return err
	}
	if err := database.Migrate(db, repository.Models()...); err != nil {
		logger.Error().Err(err).Msg("migration failed")
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	redisClient := initRedis(ctx, cfg, logger)
	if redisClient != nil {
		defer redisClient.Close()
	}

	direct, err := initSink(cfg, logger)
	if err != nil {
		logger.Error().Err(err).Msg("mailer setup failed")
		return err
	}
	dispatcher := notification.NewDispatcher(direct, notification.DispatcherOptions{
		Workers:   cfg.Notify.Workers,
		QueueSize: cfg.Notify.QueueSize,
		Retry: notification.RetryPolicy{
			MaxRetries:    cfg.Notify.MaxRetries,
			InitialDelay:  cfg.Notify.RetryBase,
			MaxDelay:      time.Minute,
			BackoffFactor: 2,
		},
	}, logger)

	router := server.NewRouter(server.Deps{
		Config:  cfg,
		Log:     logger,
		DB:      db,
		Sink:    dispatcher,
		Direct:  direct,
		Limiter: initLimiter(cfg, redisClient),
	})

	srv := &http.Server{
		Addr:              cfg.HTTPAddr,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info().Str("addr", cfg.HTTPAddr).Msg("HTTP server listening")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case <-ctx.Done():
		logger.Info().Msg("shutting down")
	case err := <-errCh:
		if err != nil {
			logger.Error().Err(err).Msg("HTTP server error")
			return err
		}
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Warn().Err(err).Msg("HTTP shutdown incomplete")
	}
	if err := dispatcher.Close(shutdownCtx); err != nil {
		logger.Warn().Err(err).Msg("pending notifications abandoned")
	}

	if sqlDB, err := db.DB(); err == nil {
		_ = sqlDB.Close()
	}
	return nil
}

func initRedis(ctx context.Context, cfg *config.Config, logger *zerolog.Logger) *redis.Client {
	if cfg.Redis.Address == "" {
		return nil
	}

	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Address,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})

	pingCtx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()
	if err := client.Ping(pingCtx).Err(); err != nil {
		logger.Warn().Err(err).Msg("Redis unavailable, falling back to in-memory rate limiting")
		_ = client.Close()
		return nil
	}

	logger.Info().Str("addr", cfg.Redis.Address).Msg("Redis connected")
	return client
}

func initLimiter(cfg *config.Config, client *redis.Client) middleware.Limiter {
	if cfg.RateLimitPerMinute <= 0 {
		return nil
	}
	if client != nil {
		return middleware.NewRedisLimiter(client, cfg.RateLimitPerMinute, time.Minute)
	}
	return middleware.NewMemoryLimiter(cfg.RateLimitPerMinute, time.Minute)
}

func initSink(cfg *config.Config, logger *zerolog.Logger) (notification.Sink, error) {
	if !cfg.SMTP.Enabled() {
		logger.Warn().Msg("SMTP_HOST not set, notifications are logged only")
		return notification.NewLogSink(logger), nil
	}
	return notification.NewMailer(cfg.SMTP)
}
