package routes

import (
	"context"
	"log"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"motorent-api/config"
	"motorent-api/controllers"
	"motorent-api/messaging"
	"motorent-api/middleware"
	"motorent-api/repositories"
	"motorent-api/services"
)

func SetupCORS() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", "*")
		c.Header("Access-Control-Allow-Methods", "GET, POST, PUT, PATCH, DELETE, OPTIONS")
		c.Header("Access-Control-Allow-Headers", "Origin, Content-Type, Authorization")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	}
}

func SetupRoutes(r *gin.Engine, db *gorm.DB, rdb *redis.Client, cfg *config.Config, emailService *services.EmailService) {
	// Repositories
	userRepo := repositories.NewUserRepository(db)
	motorcycleRepo := repositories.NewMotorcycleRepository(db)
	rentalRepo := repositories.NewRentalRepository(db)
	planRepo := repositories.NewRentalPlanRepository(db)

	// Services
	publisher := messaging.NewPublisher(rdb)
	userService := services.NewUserService(userRepo)
	motorcycleService := services.NewMotorcycleService(motorcycleRepo, rentalRepo, publisher)
	rentalService := services.NewRentalService(rentalRepo, userRepo, motorcycleRepo, planRepo, emailService, cfg.LateFeePerDay)

	photoService, err := services.NewCNHPhotoService(cfg)
	if err != nil {
		log.Printf("Warning: CNH photo storage unavailable: %v", err)
	} else if err := photoService.EnsureBucket(context.Background()); err != nil {
		log.Printf("Warning: Could not ensure CNH photo bucket: %v", err)
	}

	// Controllers
	blacklist := middleware.NewTokenBlacklist(rdb)
	authController := controllers.NewAuthController(userService, cfg.JWTSecret, blacklist)
	userController := controllers.NewUserController(userService, photoService)
	motorcycleController := controllers.NewMotorcycleController(motorcycleService)
	rentalController := controllers.NewRentalController(rentalService)
	planController := controllers.NewPlanController(planRepo)

	r.GET("/ping", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"message": "pong",
			"status":  "healthy",
		})
	})

	// API version 1
	v1 := r.Group("/api/v1")

	// Auth routes (public, rate limited)
	auth := v1.Group("/auth")
	auth.Use(middleware.RateLimit(30, 10))
	{
		auth.POST("/register", authController.Register)
		auth.POST("/login", authController.Login)
		auth.POST("/logout", authController.Logout)
	}

	// Protected routes
	protected := v1.Group("/")
	protected.Use(middleware.AuthMiddleware(cfg.JWTSecret, blacklist))
	{
		// User routes
		users := protected.Group("/users")
		{
			users.GET("/me", userController.GetProfile)
			users.POST("/me/cnh-photo", userController.UploadCNHPhoto)
		}

		// Plan catalog (read-only)
		plans := protected.Group("/plans")
		{
			plans.GET("/", planController.GetPlans)
			plans.GET("/:days", planController.GetPlanByDays)
		}

		// Rental routes
		rentals := protected.Group("/rentals")
		{
			rentals.POST("/", rentalController.CreateRental)
			rentals.POST("/:id/return", rentalController.ReturnRental)
			rentals.GET("/me", rentalController.GetMyRentals)
			rentals.GET("/", middleware.RequireAdmin(), rentalController.GetAllRentals)
			rentals.GET("/motorcycle/:id", middleware.RequireAdmin(), rentalController.GetRentalsByMotorcycle)
		}

		// Motorcycle routes (fleet administration, except availability)
		motorcycles := protected.Group("/motorcycles")
		{
			motorcycles.GET("/available", motorcycleController.GetAvailableMotorcycles)

			admin := motorcycles.Group("/")
			admin.Use(middleware.RequireAdmin())
			{
				admin.POST("/", motorcycleController.CreateMotorcycle)
				admin.GET("/", motorcycleController.GetMotorcycles)
				admin.GET("/vin/:vin", motorcycleController.GetMotorcycleByVIN)
				admin.PATCH("/:id/vin", motorcycleController.UpdateMotorcycleVIN)
				admin.DELETE("/:id", motorcycleController.DeleteMotorcycle)
			}
		}
	}
}
