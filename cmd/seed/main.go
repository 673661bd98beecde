package main

import (
	"fmt"
	"os"

	"spendwise/internal/config"
	"spendwise/internal/database"
	"spendwise/internal/logger"
	"spendwise/internal/seed"
)

func main() {
	logger.Init(os.Getenv("ENV"))
	defer logger.Sync()

	if err := run(); err != nil {
		logger.Get().Fatalf("Seed error: %v", err)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	dbManager, err := database.NewManager(cfg.DatabaseURL)
	if err != nil {
		return fmt.Errorf("failed to create database manager: %w", err)
	}

	return seed.Run(dbManager.DB())
}
