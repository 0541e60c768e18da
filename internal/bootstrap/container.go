package bootstrap

import (
	"context"
	"log"
	"time"

	"catalog-chatbot-be/internal/config"
	"catalog-chatbot-be/internal/controller"
	"catalog-chatbot-be/internal/pkg/logger"
	"catalog-chatbot-be/internal/repository/memory"
	"catalog-chatbot-be/internal/repository/redisstore"
	"catalog-chatbot-be/internal/repository/unitofwork"
	"catalog-chatbot-be/internal/service"
	"catalog-chatbot-be/internal/websocket"
	"catalog-chatbot-be/pkg/match"
	pktNats "catalog-chatbot-be/pkg/nats"
	"catalog-chatbot-be/pkg/session"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

type Container struct {
	// Controllers
	ChatController    controller.IChatController
	SuggestController controller.ISuggestController
	CatalogController controller.ICatalogController

	// Background Services (Exposed for main.go to run)
	ConsumerService service.IConsumerService
}

func NewContainer(db *gorm.DB, cfg *config.Config) *Container {
	// 1. Core Facades
	uowFactory := unitofwork.NewRepositoryFactory(db)
	sysLogger := logger.NewZapLogger(cfg.App.LogFilePath, cfg.App.Environment == "production")

	// 2. Event Bus
	watermillLogger := watermill.NewStdLogger(false, false)
	pubSub := gochannel.NewGoChannel(
		gochannel.Config{},
		watermillLogger,
	)

	// 3. Session Storage
	sessionTTL := time.Duration(cfg.Session.TTLMinutes) * time.Minute
	var sessionStore session.Store
	if cfg.Session.Store == "redis" {
		opts, err := redis.ParseURL(cfg.Session.RedisURL)
		if err != nil {
			log.Printf("[WARN] Invalid REDIS_URL, falling back to in-memory sessions: %v", err)
			sessionStore = memory.NewSessionRepository(sessionTTL)
		} else {
			sessionStore = redisstore.NewSessionRepository(redis.NewClient(opts), sessionTTL)
			log.Printf("[INFO] Using Session Store: REDIS")
		}
	} else {
		sessionStore = memory.NewSessionRepository(sessionTTL)
		log.Printf("[INFO] Using Session Store: MEMORY")
	}
	sessionManager := session.NewManager(sessionStore, sysLogger)

	// 4. Infrastructure
	// NATS is auxiliary; the process runs without it.
	natsPub, err := pktNats.NewPublisher(cfg.App.NatsURL)
	if err != nil {
		log.Printf("[WARN] Failed to connect to NATS Publisher: %v", err)
		natsPub = nil
	}

	// 5. Services
	publisherService := service.NewPublisherService(pubSub, cfg.App.ProductAddedTopic)
	catalogService := service.NewCatalogService(uowFactory, publisherService, natsPub, sysLogger)
	catalogService.Probe(context.Background())

	ranker := match.NewRanker(catalogService)
	conversationService := service.NewConversationService(sessionManager, catalogService, ranker, sysLogger)
	suggestionService := service.NewSuggestionService(ranker, sessionManager, sysLogger)
	consumerService := service.NewConsumerService(pubSub, cfg.App.ProductAddedTopic, uowFactory, sysLogger)

	// Live suggestion traffic is chatty; keep it out of the main log.
	liveLogger := logger.NewIsolatedLogger(cfg.App.LiveLogFilePath)
	liveHandler := websocket.NewLiveHandler(suggestionService, liveLogger)

	// 6. Controllers
	return &Container{
		ChatController:    controller.NewChatController(conversationService),
		SuggestController: controller.NewSuggestController(suggestionService, liveHandler),
		CatalogController: controller.NewCatalogController(consumerService),
		ConsumerService:   consumerService,
	}
}
