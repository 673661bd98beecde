package main

import (
	"fmt"
	"net/http"
	"os"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"spendwise/internal/config"
	"spendwise/internal/database"
	"spendwise/internal/handlers"
	"spendwise/internal/logger"
	"spendwise/internal/middleware"
	"spendwise/internal/seed"
	"spendwise/internal/services"
	"spendwise/internal/token"
	"spendwise/internal/validator"

	_ "spendwise/internal/docs" // Import swagger docs
)

// @title           Spendwise API
// @version         1.0
// @description     Spendwise is a personal expense tracker: users register, authenticate, and manage expense records grouped by categories.

// @host      localhost:8080
// @BasePath  /

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

func main() {
	logger.Init(os.Getenv("ENV"))
	defer logger.Sync()

	if err := run(); err != nil {
		logger.Get().Fatalf("Fatal error: %v", err)
	}
}

func run() error {
	log := logger.Named("api")

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	issuer, err := token.NewIssuer(cfg.JWTSecret, cfg.JWTAlgorithm, cfg.AccessTokenTTL, cfg.RefreshTokenTTL)
	if err != nil {
		return fmt.Errorf("failed to configure token issuer: %w", err)
	}

	dbManager, err := database.NewManager(cfg.DatabaseURL)
	if err != nil {
		return fmt.Errorf("failed to create database manager: %w", err)
	}

	if err := dbManager.RunMigrations(); err != nil {
		return fmt.Errorf("failed to run database migrations: %w", err)
	}

	db := dbManager.DB()
	if err := seed.Run(db); err != nil {
		return fmt.Errorf("failed to seed default categories: %w", err)
	}

	validator.Register()

	// Services
	userService := services.NewUserService(db)
	authService := services.NewAuthService(userService, issuer)
	categoryService := services.NewCategoryService(db)
	expenseService := services.NewExpenseService(db, categoryService)

	// Handlers
	authHandler := handlers.NewAuthHandler(authService)
	categoryHandler := handlers.NewCategoryHandler(categoryService)
	expenseHandler := handlers.NewExpenseHandler(expenseService)

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestLogging())
	router.Use(middleware.ErrorHandler())

	// CORS middleware
	router.Use(func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	})

	// Swagger documentation
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Health check endpoint
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// Public routes
	auth := router.Group("/auth")
	auth.POST("/register", authHandler.Register)
	auth.POST("/login", authHandler.Login)
	auth.POST("/refresh", authHandler.Refresh)

	// Protected routes
	protected := router.Group("/")
	protected.Use(middleware.AuthMiddleware(issuer))

	protected.GET("/auth/me", authHandler.Me)

	categories := protected.Group("/categories")
	categories.POST("", categoryHandler.Create)
	categories.GET("", categoryHandler.List)
	categories.GET("/:id", categoryHandler.Get)

	expenses := protected.Group("/expenses")
	expenses.POST("", expenseHandler.Create)
	expenses.GET("", expenseHandler.List)
	expenses.GET("/:id", expenseHandler.Get)
	expenses.PUT("/:id", expenseHandler.Update)
	expenses.DELETE("/:id", expenseHandler.Delete)

	log.Infof("Starting Spendwise API on port %s", cfg.Port)
	log.Infof("Swagger documentation available at http://localhost:%s/swagger/index.html", cfg.Port)
	return router.Run(":" + cfg.Port)
}
