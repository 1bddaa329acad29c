package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/BerylCAtieno/resume-autofill-api/internal/config"
	"github.com/BerylCAtieno/resume-autofill-api/internal/db"
	"github.com/BerylCAtieno/resume-autofill-api/internal/extractor"
	"github.com/BerylCAtieno/resume-autofill-api/internal/repository"
	"github.com/BerylCAtieno/resume-autofill-api/internal/router"
	"github.com/BerylCAtieno/resume-autofill-api/internal/services"
	"github.com/BerylCAtieno/resume-autofill-api/internal/storage"
	"github.com/BerylCAtieno/resume-autofill-api/internal/utils"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Initialize logger
	logger := utils.NewLogger(cfg.LogLevel)

	// Run migrations
	if err := db.RunMigrations(cfg.DatabasePath); err != nil {
		logger.Fatal("Failed to run migrations", "error", err, "path", cfg.DatabasePath)
	}

	// Initialize database
	database, err := db.NewSQLiteDB(cfg.DatabasePath)
	if err != nil {
		logger.Fatal("Failed to open database", "error", err, "path", cfg.DatabasePath)
	}
	defer database.Close()

	// Initialize resume storage
	initCtx, initCancel := context.WithTimeout(context.Background(), 10*time.Second)
	store, err := storage.New(initCtx, cfg)
	initCancel()
	if err != nil {
		logger.Fatal("Failed to initialize storage", "error", err, "backend", cfg.StorageBackend, "endpoint", cfg.S3Endpoint)
	}
	if cfg.StorageBackend == config.StorageMemory {
		logger.Warn("Using in-memory resume storage; uploads are lost on restart")
	}

	// Initialize services
	textExtractor := extractor.New(logger.Logger)
	appRepo := repository.NewApplicationRepository(database)

	svc := router.Services{
		Resumes:      services.NewResumeService(textExtractor, cfg, logger),
		Applications: services.NewApplicationService(appRepo, store, cfg, logger),
	}

	// Setup HTTP router
	handler := router.NewRouter(svc, cfg.MaxFileSize, logger)

	// Extraction is bounded by ExtractTimeout; leave room to write the response.
	writeTimeout := cfg.ExtractTimeout + 15*time.Second

	// Create HTTP server
	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      handler,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: writeTimeout,
		IdleTimeout:  60 * time.Second,
	}

	// Start server
	go func() {
		logger.Info("Starting server",
			"port", cfg.Port,
			"max_file_size", cfg.MaxFileSize,
			"extract_timeout", cfg.ExtractTimeout.String())
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("Server failed to start", "error", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Fatal("Server forced to shutdown", "error", err)
	}

	logger.Info("Server exited")
}
