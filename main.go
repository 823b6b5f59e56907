package main

import (
	"context"
	"fmt"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/hosteldesk/complaint-service/internal/config"
	"github.com/hosteldesk/complaint-service/internal/events"
	"github.com/hosteldesk/complaint-service/internal/handlers"
	"github.com/hosteldesk/complaint-service/internal/models"
	"github.com/hosteldesk/complaint-service/internal/repositories/postgres"
	"github.com/hosteldesk/complaint-service/internal/services"
	"github.com/hosteldesk/complaint-service/internal/session"
	"github.com/hosteldesk/complaint-service/internal/utils"
	"github.com/hosteldesk/complaint-service/internal/validator"
	"github.com/hosteldesk/complaint-service/pkg"
)

func main() {
	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Initialize logger
	slogLogger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: cfg.LogLevel,
	}))
	logger := utils.NewSlogLogger(slogLogger)

	// Initialize database
	db, err := pkg.InitDatabase(cfg)
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}

	// Initialize Redis (session store backend)
	redisClient, err := pkg.NewRedisClient(cfg)
	if err != nil {
		log.Fatalf("Failed to initialize Redis: %v", err)
	}

	// Initialize repositories
	repo := postgres.NewPostgreSQLRepository(db)

	// Initialize session store
	sessionStore := session.NewStore(redisClient, cfg.SessionSecret, cfg.SessionTTL)

	// Initialize event publisher (in-process unless Kafka brokers are set)
	eventPublisher, err := events.NewPublisher(cfg.KafkaBrokers, slogLogger)
	if err != nil {
		log.Fatalf("Failed to initialize event publisher: %v", err)
	}

	// Initialize services
	v := validator.New()
	serviceManager := services.NewServiceManager(repo, eventPublisher, slogLogger, v)

	// Initialize handlers
	handlerManager := handlers.NewHandlerManager(serviceManager, sessionStore, repo, redisClient, logger, cfg.IsProduction())

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	// One surface per role, same handler set underneath.
	studentServer := &http.Server{
		Addr:    fmt.Sprintf(":%s", cfg.StudentPort),
		Handler: handlerManager.BuildRouter(models.RoleStudent),
	}
	technicianServer := &http.Server{
		Addr:    fmt.Sprintf(":%s", cfg.TechnicianPort),
		Handler: handlerManager.BuildRouter(models.RoleTechnician),
	}

	go func() {
		logger.Info("Starting student server", "port", cfg.StudentPort, "environment", cfg.Environment)
		if err := studentServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Failed to start student server: %v", err)
		}
	}()
	go func() {
		logger.Info("Starting technician server", "port", cfg.TechnicianPort, "environment", cfg.Environment)
		if err := technicianServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Failed to start technician server: %v", err)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown both servers
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down servers...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := studentServer.Shutdown(ctx); err != nil {
		logger.Error("Student server shutdown failed", "error", err.Error())
	}
	if err := technicianServer.Shutdown(ctx); err != nil {
		logger.Error("Technician server shutdown failed", "error", err.Error())
	}

	if err := eventPublisher.Close(); err != nil {
		logger.Error("Event publisher close failed", "error", err.Error())
	}
	if err := repo.Close(); err != nil {
		logger.Error("Repository close failed", "error", err.Error())
	}
	if err := redisClient.Close(); err != nil {
		logger.Error("Redis close failed", "error", err.Error())
	}

	logger.Info("Servers stopped")
}
