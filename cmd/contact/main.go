// The contact binary is a standalone relay that accepts contact-form
// submissions and forwards them to a fixed recipient over SMTP. It shares
// nothing with the expense API beyond the logging and handler plumbing.
package main

import (
	"fmt"
	"net/http"
	"os"

	"github.com/gin-gonic/gin"

	"spendwise/internal/handlers"
	"spendwise/internal/logger"
	"spendwise/internal/mailer"
	"spendwise/internal/middleware"
)

func main() {
	logger.Init(os.Getenv("ENV"))
	defer logger.Sync()

	if err := run(); err != nil {
		logger.Get().Fatalf("Fatal error: %v", err)
	}
}

func run() error {
	log := logger.Named("contact")

	cfg, err := mailer.LoadConfig()
	if err != nil {
		return fmt.Errorf("failed to load mail configuration: %w", err)
	}

	m, err := mailer.New(cfg)
	if err != nil {
		return fmt.Errorf("failed to create mailer: %w", err)
	}

	contactHandler := handlers.NewContactHandler(m)

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestLogging())

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	router.POST("/contact", contactHandler.Send)

	port := os.Getenv("CONTACT_PORT")
	if port == "" {
		port = "8081"
	}

	log.Infof("Starting contact relay on port %s", port)
	return router.Run(":" + port)
}
