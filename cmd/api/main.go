package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	httptransport "github.com/spec-kit/campaign-service/internal/api/http"
	"github.com/spec-kit/campaign-service/internal/api/http/handlers"
	"github.com/spec-kit/campaign-service/internal/auth"
	"github.com/spec-kit/campaign-service/internal/config"
	"github.com/spec-kit/campaign-service/internal/events"
	"github.com/spec-kit/campaign-service/internal/observability"
	"github.com/spec-kit/campaign-service/internal/persistence"
	"github.com/spec-kit/campaign-service/internal/repository"
	"github.com/spec-kit/campaign-service/internal/service"
	"github.com/spec-kit/campaign-service/internal/storage"
	"github.com/spec-kit/campaign-service/internal/worker"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logger, err := observability.NewLogger(cfg.Logger)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logger.Sync() //nolint:errcheck

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pg, err := persistence.NewPostgres(ctx, cfg.Postgres, logger)
	if err != nil {
		logger.Fatal("failed to connect postgres", zap.Error(err))
	}
	defer pg.Close()

	if cfg.Postgres.RunMigrations {
		if err := persistence.RunMigrations(ctx, pg.PoolHandle(), logger); err != nil {
			logger.Fatal("failed to run migrations", zap.Error(err))
		}
	}

	redis := persistence.NewRedis(cfg.Redis, logger)
	defer redis.Close()

	pool := pg.PoolHandle()
	userRepo := repository.NewUserRepository(pool)
	campaignRepo := repository.NewCampaignRepository(pool)
	likeRepo := repository.NewLikeRepository(pool)
	applicationRepo := repository.NewApplicationRepository(pool)
	notificationRepo := repository.NewNotificationRepository(pool)
	imageRepo := repository.NewImageRepository(pool)
	revocations := repository.NewRevocationRepository(redis.Client)

	dispatcher := events.NewInMemoryDispatcher()

	authService := service.NewAuthService(cfg.Auth, userRepo, revocations)
	campaignService := service.NewCampaignService(campaignRepo, likeRepo, dispatcher)
	applicationService := service.NewApplicationService(applicationRepo, campaignRepo, dispatcher)
	notificationService := service.NewNotificationService(notificationRepo, dispatcher, logger, cfg.Notification)

	imageStore, err := storage.NewDiskStore(cfg.Upload.Dir, cfg.Upload.BaseURL)
	if err != nil {
		logger.Fatal("failed to init image store", zap.Error(err))
	}
	imageService := service.NewImageService(imageRepo, imageStore, cfg.Upload.MaxSizeMB)

	worker.StartNotificationWorker(notificationService)

	exemptions, err := auth.NewExemptionRules(cfg.Auth.ExemptPrefixes, cfg.Auth.CampaignBrowsePattern, cfg.Auth.CampaignProgressPattern)
	if err != nil {
		logger.Fatal("failed to compile exemption rules", zap.Error(err))
	}
	gate := auth.NewRequestGate(
		authService.TokenManager(),
		revocations,
		repository.NewPrincipalDirectory(userRepo),
		exemptions,
		logger,
	)

	metrics := observability.NewMetrics()

	app := fiber.New()
	httptransport.RegisterMiddlewares(app, logger, metrics, gate, cfg.App.RequestTimeout())

	httptransport.RegisterRoutes(app, httptransport.RouteConfig{
		Health:        handlers.NewHealthHandler(cfg.App.Name, cfg.App.Version, pg, redis),
		Auth:          handlers.NewAuthHandler(authService),
		Campaigns:     handlers.NewCampaignsHandler(campaignService),
		Applications:  handlers.NewApplicationsHandler(applicationService),
		Notifications: handlers.NewNotificationsHandler(notificationService),
		Images:        handlers.NewImagesHandler(imageService),
	})

	go func() {
		if err := app.Listen(cfg.App.Addr()); err != nil {
			logger.Fatal("fiber listen", zap.Error(err))
		}
	}()

	waitForShutdown(logger)

	_ = app.Shutdown()
}

func waitForShutdown(logger *zap.Logger) {
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	sig := <-sigCh
	logger.Info("shutting down", zap.String("signal", sig.String()))
}
