package bootstrap

import (
	"context"
	"log"

	"climb-coach-be/internal/config"
	"climb-coach-be/internal/controller"
	"climb-coach-be/internal/handler"
	"climb-coach-be/internal/pkg/logger"
	"climb-coach-be/internal/pkg/mailer"
	"climb-coach-be/internal/repository/implementation"
	"climb-coach-be/internal/repository/memory"
	"climb-coach-be/internal/repository/unitofwork"
	"climb-coach-be/internal/service"
	"climb-coach-be/internal/websocket"
	"climb-coach-be/pkg/aigen"

	pktNats "climb-coach-be/pkg/nats"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

type Container struct {
	// Controllers
	ScenarioController controller.IScenarioController
	ReviewController   controller.IReviewController
	SessionController  controller.ISessionController

	// Background Services (Exposed for main.go to run)
	ConsumerService service.IConsumerService

	// WebSockets & Notification
	NotificationHandler *handler.NotificationHandler
	WebSocketHub        *websocket.Hub
}

func NewContainer(db *gorm.DB, cfg *config.Config) *Container {
	// 1. Core Facades
	uowFactory := unitofwork.NewRepositoryFactory(db)
	sysLogger := logger.NewZapLogger(cfg.App.LogFilePath, cfg.App.Environment == "production")

	emailService := mailer.NewEmailService(
		cfg.SMTP.Host,
		cfg.SMTP.Port,
		cfg.SMTP.Email,
		cfg.SMTP.Password,
		cfg.SMTP.SenderName,
	)

	// 2. Event Bus (in-process, for the embedding pipeline)
	watermillLogger := watermill.NewStdLogger(false, false)
	pubSub := gochannel.NewGoChannel(
		gochannel.Config{},
		watermillLogger,
	)

	// AI provider. Both scenario generation and embeddings go through the
	// same provider so the vectors stay in one model's space.
	var provider aigen.Provider
	if cfg.Ai.Provider == "ollama" {
		provider = aigen.NewOllamaProvider(cfg.Ai.BaseURL, cfg.Ai.Model, cfg.Ai.EmbeddingModel)
		log.Printf("[INFO] Using AI Provider: OLLAMA (%s)", cfg.Ai.Model)
	} else {
		provider = aigen.NewGeminiProvider(cfg.Ai.ApiKey, cfg.Ai.Model, cfg.Ai.EmbeddingModel)
		log.Printf("[INFO] Using AI Provider: GEMINI (%s)", cfg.Ai.Model)
	}

	// In-memory draft storage for open review panels
	draftRepo := memory.NewDraftRepository()

	// 2.5 Infrastructure
	// NATS
	natsPub, err := pktNats.NewPublisher(cfg.App.NatsURL)
	if err != nil {
		log.Printf("[WARN] Failed to connect to NATS Publisher: %v", err)
	}
	natsSub, err := pktNats.NewSubscriber(cfg.App.NatsURL)
	if err != nil {
		log.Printf("[WARN] Failed to connect to NATS Subscriber: %v", err)
	}

	// Redis
	opt, err := redis.ParseURL(cfg.App.RedisURL)
	if err != nil {
		log.Printf("[WARN] Failed to parse Redis URL: %v. Using direct Addr", err)
		opt = &redis.Options{
			Addr: cfg.App.RedisURL,
		}
	}
	rdb := redis.NewClient(opt)
	if _, err := rdb.Ping(context.Background()).Result(); err != nil {
		log.Printf("[WARN] Failed to connect to Redis: %v", err)
	}

	// WebSocket Hub
	wsLogger := logger.NewIsolatedLogger("logs/notification.log")
	wsHub := websocket.NewHub(rdb, wsLogger)
	go wsHub.Run()

	publisherService := service.NewPublisherService(cfg.App.EmbedTopic, pubSub)
	consumerService := service.NewConsumerService(
		pubSub,
		cfg.App.EmbedTopic,
		uowFactory,
		provider,
	)

	// 3. Services
	reviewService := service.NewReviewService(uowFactory, draftRepo, natsPub, sysLogger)
	scenarioService := service.NewScenarioService(
		uowFactory,
		publisherService,
		natsPub,
		provider,
		cfg.Ai.ApiKey,
		cfg.Ai.Model,
		emailService,
		cfg.App.CoachEmail,
		sysLogger,
	)
	sessionService := service.NewSessionService(uowFactory)

	// 3.5 Notification System
	notifRepo := implementation.NewNotificationRepository(db)
	notifService := service.NewNotificationService(notifRepo, natsSub, wsHub, wsLogger) // Hub implements NotificationDelivery

	// Start Service (Worker)
	if natsSub != nil {
		go notifService.Start()
	}

	notifHandler := handler.NewNotificationHandler(notifService, wsHub, wsLogger)

	// 4. Controllers
	return &Container{
		NotificationHandler: notifHandler,
		WebSocketHub:        wsHub,
		ScenarioController:  controller.NewScenarioController(scenarioService),
		ReviewController:    controller.NewReviewController(reviewService),
		SessionController:   controller.NewSessionController(sessionService),

		ConsumerService: consumerService,
	}
}
