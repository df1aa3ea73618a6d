package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"thozhahub/internal/cache"
	"thozhahub/internal/config"
	"thozhahub/internal/event"
	"thozhahub/internal/repository"
	"thozhahub/internal/service"
	"thozhahub/internal/transport/rest"
	"thozhahub/internal/transport/ws"

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

func main() {
	log.Println("started")
	ctx := context.Background()

	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment")
	}

	cfg := config.Load()
	aiConfig := config.DefaultAIConfig()
	log.Printf("AI model: %s", aiConfig.Model)
	if aiConfig.IsEnabled() {
		log.Println("AI API key: configured")
	} else {
		log.Println("AI API key: NOT SET (using fallback insights)")
	}

	// MongoDB connection
	mongoClient, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.MongoURI))
	if err != nil {
		log.Fatal("Failed to connect to MongoDB:", err)
	}
	defer mongoClient.Disconnect(ctx)

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := mongoClient.Ping(pingCtx, nil); err != nil {
		log.Fatal("Failed to ping MongoDB:", err)
	}
	log.Println("Connected to MongoDB")

	db := mongoClient.Database(cfg.MongoDatabase)

	// Redis connection
	rdb := redis.NewClient(&redis.Options{
		Addr: cfg.RedisAddr,
	})
	defer rdb.Close()

	if _, err := rdb.Ping(ctx).Result(); err != nil {
		log.Fatal("Failed to ping Redis:", err)
	}
	log.Println("Connected to Redis")

	// Event publisher is optional: without a broker the service still runs,
	// it just publishes nothing.
	var events *event.Publisher
	if cfg.AMQPURL != "" {
		events, err = event.NewPublisher(cfg.AMQPURL, cfg.EventExchange)
		if err != nil {
			log.Printf("Warning: event publisher disabled: %v", err)
			events = nil
		} else {
			defer events.Close()
			log.Println("Connected to event broker")
		}
	}

	// Initialize WebSocket hub
	wsHub := ws.NewHub()
	log.Println("WebSocket hub started")

	// Initialize repositories and caches
	userRepo := repository.NewUserRepo(db)
	resultRepo := repository.NewResultRepo(db)
	resultCache := cache.NewResultCache(rdb)

	// Initialize services
	authSvc := service.NewAuthService(userRepo, cfg.JWTSecret)
	insightSvc := service.NewInsightService(aiConfig)
	profileSvc, err := service.NewProfileService(userRepo, resultRepo, resultCache, insightSvc)
	if err != nil {
		log.Fatal("Failed to build question banks:", err)
	}

	// Inject notifier (wsHub implements service.Notifier)
	profileSvc.SetNotifier(wsHub)
	profileSvc.SetEvents(events)

	// Create router with container
	container := &rest.Container{
		AuthService:    authSvc,
		ProfileService: profileSvc,
		WSHub:          wsHub,
	}

	router := rest.NewRouter(container)

	srv := &http.Server{
		Addr:    ":" + cfg.HTTPPort,
		Handler: router,
	}

	go func() {
		log.Printf("Server starting on :%s", cfg.HTTPPort)
		log.Println("Endpoints:")
		log.Println("  POST /v1/auth/register")
		log.Println("  POST /v1/auth/login")
		log.Println("  GET  /v1/profile/questions")
		log.Println("  POST /v1/profile/questionnaire")
		log.Println("  GET  /v1/profile/results")
		log.Println("  GET  /v1/profile/adaptive/start")
		log.Println("  POST /v1/profile/adaptive/next")
		log.Println("  POST /v1/profile/adaptive/submit")
		log.Println("  GET  /v1/profile/adaptive/results")
		log.Println("  WS   /v1/ws/profile")

		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("ListenAndServe:", err)
		}
	}()

	// Wait for interrupt
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down server...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Fatal("Server forced to shutdown:", err)
	}

	log.Println("Server exited")
}
