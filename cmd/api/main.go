package main

import (
	"context"
	"fmt"
	"os"

	"dealbook/internal/app"
	"dealbook/internal/config"
	"dealbook/internal/database"
	"dealbook/internal/flash"
	"dealbook/internal/logger"
	"dealbook/internal/storage"
)

// @title           Dealbook API
// @version         1.0
// @description     Read-only JSON access to the debt-portfolio agreements register.

// @host      localhost:8080
// @BasePath  /api

func main() {
	// Initialize logger (use ENV var if available, default to development)
	logger.Init(os.Getenv("ENV"))
	defer logger.Sync()

	if err := run(); err != nil {
		logger.Get().Fatalf("Fatal error: %v", err)
	}
}

func run() error {
	log := logger.Get()

	// Load configuration
	appConfig, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	// Initialize database configuration
	dbConfig, err := database.NewConfig(appConfig)
	if err != nil {
		return fmt.Errorf("failed to load database configuration: %w", err)
	}

	// Create database manager
	dbManager, err := database.NewManager(dbConfig)
	if err != nil {
		return fmt.Errorf("failed to create database manager: %w", err)
	}
	defer func() {
		if err := dbManager.Close(); err != nil {
			log.Warnf("database close error: %v", err)
		}
	}()

	// Run migrations
	if err := dbManager.Migrate(); err != nil {
		return fmt.Errorf("failed to run database migrations: %w", err)
	}

	// Document storage
	store, err := storage.New(context.Background(), appConfig)
	if err != nil {
		return fmt.Errorf("failed to initialize document storage: %w", err)
	}
	if closer, ok := store.(interface{ Close() error }); ok {
		defer func() { _ = closer.Close() }()
	}

	router, err := app.NewRouter(app.Options{
		DB:        dbManager.DB(),
		Store:     store,
		Flash:     flash.New(appConfig.FlashSecret, appConfig.FlashTTL, appConfig.Env == "production"),
		MaxUpload: appConfig.MaxUploadBytes,
	})
	if err != nil {
		return err
	}

	log.Infof("Starting Dealbook server on port %s", appConfig.Port)
	log.Infof("Swagger documentation available at http://localhost:%s/swagger/index.html", appConfig.Port)
	return router.Run(":" + appConfig.Port)
}
