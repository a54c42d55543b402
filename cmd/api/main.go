package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"

	"github.com/medibridge/directory-api/internal/config"
	"github.com/medibridge/directory-api/internal/email"
	"github.com/medibridge/directory-api/internal/handler"
	accountHandler "github.com/medibridge/directory-api/internal/handler/account"
	analyticsHandler "github.com/medibridge/directory-api/internal/handler/analytics"
	bookingHandler "github.com/medibridge/directory-api/internal/handler/booking"
	chatHandler "github.com/medibridge/directory-api/internal/handler/chat"
	contactHandler "github.com/medibridge/directory-api/internal/handler/contact"
	directoryHandler "github.com/medibridge/directory-api/internal/handler/directory"
	documentHandler "github.com/medibridge/directory-api/internal/handler/document"
	estimateHandler "github.com/medibridge/directory-api/internal/handler/estimate"
	healthHandler "github.com/medibridge/directory-api/internal/handler/health"
	reviewHandler "github.com/medibridge/directory-api/internal/handler/review"
	"github.com/medibridge/directory-api/internal/middleware"
	"github.com/medibridge/directory-api/internal/repository/store"
	"github.com/medibridge/directory-api/internal/router"
	accountService "github.com/medibridge/directory-api/internal/service/account"
	analyticsService "github.com/medibridge/directory-api/internal/service/analytics"
	bookingService "github.com/medibridge/directory-api/internal/service/booking"
	chatService "github.com/medibridge/directory-api/internal/service/chat"
	directoryService "github.com/medibridge/directory-api/internal/service/directory"
	documentService "github.com/medibridge/directory-api/internal/service/document"
	estimateService "github.com/medibridge/directory-api/internal/service/estimate"
	reviewService "github.com/medibridge/directory-api/internal/service/review"
	"github.com/medibridge/directory-api/pkg/logger"
	"github.com/medibridge/directory-api/pkg/messaging"
	redisbroker "github.com/medibridge/directory-api/pkg/messaging/redis"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load configuration")
	}

	appLogger := logger.New(logger.Config{
		Level:  cfg.Log.Level,
		Pretty: cfg.Log.Pretty,
	})

	// Record store backend
	backend, err := newBackend(cfg)
	if err != nil {
		appLogger.Fatal().Err(err).Msg("failed to connect to record store")
	}
	defer backend.Close()

	// Seed sample directory data once per seed version
	seeded, err := store.EnsureSeed(context.Background(), backend)
	if err != nil {
		appLogger.Fatal().Err(err).Msg("seed migration failed")
	}
	if seeded {
		appLogger.Info().Int("version", store.SeedVersion).Msg("sample directory data seeded")
	}

	// Optional collaborators
	var broker messaging.Broker = messaging.NoopBroker{}
	if cfg.Redis.URL != "" {
		broker, err = redisbroker.NewRedisBroker(redisbroker.Config{
			URL:      cfg.Redis.URL,
			PoolSize: cfg.Redis.PoolSize,
		}, appLogger)
		if err != nil {
			appLogger.Fatal().Err(err).Msg("failed to connect to Redis")
		}
	}
	defer broker.Close()

	var mailer email.Service = email.Noop{}
	if cfg.SMTP.Host != "" {
		mailer = email.NewSMTPService(email.Config{
			Host:     cfg.SMTP.Host,
			Port:     cfg.SMTP.Port,
			User:     cfg.SMTP.User,
			Password: cfg.SMTP.Password,
			From:     cfg.SMTP.From,
			NotifyTo: cfg.SMTP.NotifyTo,
		})
	}

	// Services
	directorySvc := directoryService.NewService(backend)
	estimateSvc := estimateService.NewService(backend)
	bookingSvc := bookingService.NewService(backend, mailer, appLogger)
	chatSvc := chatService.NewService(backend, broker, appLogger)
	documentSvc := documentService.NewService(backend)
	reviewSvc := reviewService.NewService(backend)
	analyticsSvc := analyticsService.NewService(backend)
	accountSvc := accountService.NewService(backend)

	// Router
	corsConfig := middleware.DefaultCORSConfig()
	if len(cfg.Security.AllowedOrigins) > 0 {
		corsConfig.AllowOrigins = cfg.Security.AllowedOrigins
	}

	sizeLimit := middleware.DefaultSizeLimitConfig()
	if cfg.Server.MaxBodyBytes > 0 {
		sizeLimit.MaxBodySize = cfg.Server.MaxBodyBytes
	}
	if cfg.Server.MaxUploadBytes > 0 {
		sizeLimit.MaxUploadSize = cfg.Server.MaxUploadBytes
	}

	r := router.New(
		router.Config{
			RateLimitRPS:   cfg.Server.RateLimitRPS,
			RateLimitBurst: cfg.Server.RateLimitBurst,
			SizeLimit:      sizeLimit,
			CORS:           corsConfig,
			Logger:         appLogger,
		},
		handler.NewHandler(backend),
		healthHandler.NewHandler(backend),
		directoryHandler.NewHandler(directorySvc),
		estimateHandler.NewHandler(estimateSvc),
		bookingHandler.NewHandler(bookingSvc),
		chatHandler.NewHandler(chatSvc),
		documentHandler.NewHandler(documentSvc),
		reviewHandler.NewHandler(reviewSvc),
		analyticsHandler.NewHandler(analyticsSvc),
		accountHandler.NewHandler(accountSvc),
		contactHandler.NewHandler(),
	)

	srv := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.Server.Port),
		Handler: r.Engine(),
	}

	go func() {
		appLogger.Info().Int("port", cfg.Server.Port).Msg("server listening")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			appLogger.Fatal().Err(err).Msg("failed to start server")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	appLogger.Info().Msg("shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		appLogger.Fatal().Err(err).Msg("server forced to shutdown")
	}

	appLogger.Info().Msg("server exited properly")
}

func newBackend(cfg *config.Config) (store.Backend, error) {
	switch cfg.Store.Driver {
	case "memory":
		return store.NewMemory(), nil
	default:
		return store.NewPostgres(store.PostgresConfig{
			Host:     cfg.Store.Host,
			Port:     cfg.Store.Port,
			User:     cfg.Store.User,
			Password: cfg.Store.Password,
			Name:     cfg.Store.Name,
			SSLMode:  cfg.Store.SSLMode,
		})
	}
}
