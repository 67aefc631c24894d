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

	"github.com/gorilla/mux"
	"github.com/jmoiron/sqlx"
	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"

	"github.com/sevatrust/donation-engine/internal/config"
	"github.com/sevatrust/donation-engine/internal/handler"
	"github.com/sevatrust/donation-engine/internal/repository"
	"github.com/sevatrust/donation-engine/internal/service"
	"github.com/sevatrust/donation-engine/pkg/response"
)

func main() {
	// Local development convenience; a missing .env is fine
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	db, err := initDB(cfg)
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	defer db.Close()

	redisClient := initRedis(cfg)
	defer redisClient.Close()

	// Repositories
	donationRepo := repository.NewDonationRepository(db)
	projectRepo := repository.NewProjectRepository(db)
	eventStore := repository.NewEventStore(redisClient)

	// Services
	donationService := service.NewDonationService(donationRepo, eventStore, cfg)
	projectService := service.NewProjectService(projectRepo, donationRepo, cfg)

	// Handlers
	donationHandler := handler.NewDonationHandler(donationService)
	projectHandler := handler.NewProjectHandler(projectService)
	webhookHandler := handler.NewWebhookHandler(donationService)
	healthHandler := handler.NewHealthHandler(db, redisClient, cfg.GetHealthTimeout())

	router := setupRoutes(donationHandler, projectHandler, webhookHandler, healthHandler)

	server := &http.Server{
		Addr:         cfg.Server.Host + ":" + cfg.Server.Port,
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	go func() {
		log.Printf("Server starting on %s", server.Addr)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("Server failed to start: %v", err)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	log.Println("Server exited")
}

func initDB(cfg *config.Config) (*sqlx.DB, error) {
	db, err := sqlx.Connect("postgres", cfg.Database.DSN())
	if err != nil {
		return nil, err
	}

	db.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	db.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	db.SetConnMaxLifetime(cfg.Database.ConnMaxLifetime)

	return db, nil
}

func initRedis(cfg *config.Config) *redis.Client {
	return redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Host + ":" + cfg.Redis.Port,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
}

func setupRoutes(
	donationHandler *handler.DonationHandler,
	projectHandler *handler.ProjectHandler,
	webhookHandler *handler.WebhookHandler,
	healthHandler *handler.HealthHandler,
) *mux.Router {
	router := mux.NewRouter()
	router.Use(response.LoggingMiddleware)
	router.Use(response.CORSMiddleware)
	router.Use(handler.MetricsMiddleware)

	// Health and metrics
	router.HandleFunc("/health", healthHandler.Health).Methods("GET")
	router.HandleFunc("/health/ready", healthHandler.Ready).Methods("GET")
	router.Handle("/metrics", promhttp.Handler()).Methods("GET")

	// API routes
	api := router.PathPrefix("/api/v1").Subrouter()

	api.HandleFunc("/donations", donationHandler.Create).Methods("POST")
	api.HandleFunc("/donations", donationHandler.List).Methods("GET")
	api.HandleFunc("/donations/{donationId}", donationHandler.Get).Methods("GET")
	api.HandleFunc("/dashboard/stats", donationHandler.Stats).Methods("GET")

	api.HandleFunc("/payments/webhook", webhookHandler.HandlePaymentEvent).Methods("POST")

	api.HandleFunc("/projects", projectHandler.Create).Methods("POST")
	api.HandleFunc("/projects", projectHandler.List).Methods("GET")
	api.HandleFunc("/projects/{slug}", projectHandler.Get).Methods("GET")

	return router
}
