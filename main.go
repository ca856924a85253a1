package main

import (
	"context"
	"log"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"

	"motorent-api/config"
	"motorent-api/database"
	"motorent-api/jobs"
	"motorent-api/messaging"
	"motorent-api/repositories"
	"motorent-api/routes"
	"motorent-api/services"
)

func main() {
	// Load .env if present, then configuration
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}
	cfg := config.Load()

	// Initialize database
	db, err := database.Initialize(cfg.DatabaseURL)
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}

	// Run migrations
	if err := database.Migrate(db); err != nil {
		log.Fatal("Failed to migrate database:", err)
	}

	// Seed rental plans and the default admin
	if err := database.SeedData(db, cfg); err != nil {
		log.Printf("Warning: Failed to seed database: %v", err)
	}

	// Redis backs the token blacklist and the fleet event bus
	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
	})

	// Start the fleet event consumer
	consumer := messaging.NewConsumer(rdb, repositories.NewNotificationRepository(db))
	consumer.Start(context.Background())

	// Email service for confirmations and receipts
	emailService := services.NewEmailService(cfg)

	// Remind renters whose rentals have run past their expected end date
	overdueJob := jobs.NewOverdueRentalJob(db, emailService, time.Hour)
	overdueJob.Start()

	// Set Gin mode based on environment
	if cfg.Port == "8080" { // Development
		gin.SetMode(gin.DebugMode)
	} else {
		gin.SetMode(gin.ReleaseMode)
	}

	// Create router
	router := gin.Default()

	// Setup CORS middleware
	router.Use(routes.SetupCORS())

	// Setup routes
	routes.SetupRoutes(router, db, rdb, cfg, emailService)

	// Start server
	log.Printf("Starting MotoRent API server on port %s", cfg.Port)
	log.Printf("Health check available at: http://localhost:%s/ping", cfg.Port)

	if err := router.Run(":" + cfg.Port); err != nil {
		log.Fatal("Failed to start server:", err)
	}
}
