package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	httptransport "github.com/spec-kit/metro-service/internal/api/http"
	"github.com/spec-kit/metro-service/internal/api/http/handlers"
	"github.com/spec-kit/metro-service/internal/auth"
	"github.com/spec-kit/metro-service/internal/config"
	"github.com/spec-kit/metro-service/internal/events"
	"github.com/spec-kit/metro-service/internal/observability"
	"github.com/spec-kit/metro-service/internal/persistence"
	"github.com/spec-kit/metro-service/internal/qr"
	"github.com/spec-kit/metro-service/internal/repository"
	"github.com/spec-kit/metro-service/internal/service"
	"github.com/spec-kit/metro-service/internal/worker"
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
	ticketRepo := repository.NewTicketRepository(pool)
	journeyRepo := repository.NewJourneyRepository(pool)
	paymentRepo := repository.NewPaymentRepository(pool)
	lostItemRepo := repository.NewLostItemRepository(pool)
	lostReportRepo := repository.NewLostReportRepository(pool)
	feedbackRepo := repository.NewFeedbackRepository(pool)
	complaintRepo := repository.NewComplaintRepository(pool)
	medicalRepo := repository.NewMedicalHelpRepository(pool)
	alertRepo := repository.NewServiceAlertRepository(pool)
	quizRepo := repository.NewQuizResultRepository(pool)

	dispatcher := events.NewInMemoryDispatcher()
	notificationService := service.NewNotificationService(dispatcher, logger, cfg.Notify)
	worker.StartNotificationWorker(notificationService)

	authService := service.NewAuthService(cfg.Auth, userRepo)
	authMiddleware := auth.NewAuthMiddleware(authService.TokenManager(), userRepo)

	encoder := qr.NewEncoder(cfg.QR)
	ticketService := service.NewTicketService(service.TicketDependencies{
		TicketRepo: ticketRepo,
		Encoder:    encoder,
		BaseURL:    cfg.QR.BaseURL,
		Dispatcher: dispatcher,
	})
	journeyService := service.NewJourneyService(journeyRepo, paymentRepo)
	paymentService := service.NewPaymentService(paymentRepo)
	lostService := service.NewLostService(lostItemRepo, lostReportRepo)
	supportService := service.NewSupportService(feedbackRepo, complaintRepo)
	medicalService := service.NewMedicalService(medicalRepo, dispatcher)
	alertService := service.NewAlertService(service.AlertDependencies{
		AlertRepo:  alertRepo,
		Cache:      redis,
		CacheTTL:   cfg.Redis.AlertTTL(),
		Dispatcher: dispatcher,
		Logger:     logger,
	})
	quizService := service.NewQuizService(quizRepo)
	analyticsService := service.NewAnalyticsService(service.AnalyticsDependencies{
		UserRepo:    userRepo,
		JourneyRepo: journeyRepo,
		PaymentRepo: paymentRepo,
	})

	metrics := observability.NewMetrics()

	app := fiber.New(fiber.Config{
		AppName:               cfg.App.Name,
		DisableStartupMessage: cfg.App.Env == "production",
	})
	httptransport.RegisterMiddlewares(app, logger, metrics, cfg.App.RequestTimeout())

	httptransport.RegisterRoutes(app, httptransport.RouteConfig{
		Health:         handlers.NewHealthHandler(cfg.App.Name, cfg.App.Version, pg, redis),
		Users:          handlers.NewUsersHandler(authService),
		Tickets:        handlers.NewTicketsHandler(ticketService),
		Journeys:       handlers.NewJourneysHandler(journeyService),
		Payments:       handlers.NewPaymentsHandler(paymentService),
		Lost:           handlers.NewLostHandler(lostService),
		Support:        handlers.NewSupportHandler(supportService),
		Medical:        handlers.NewMedicalHandler(medicalService),
		Alerts:         handlers.NewAlertsHandler(alertService),
		Quiz:           handlers.NewQuizHandler(quizService),
		Analytics:      handlers.NewAnalyticsHandler(analyticsService),
		AuthMiddleware: authMiddleware,
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
