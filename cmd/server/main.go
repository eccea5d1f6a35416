package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/tradetracker/stats-backend/internal/api"
	"github.com/tradetracker/stats-backend/internal/config"
	"github.com/tradetracker/stats-backend/internal/database"
	"github.com/tradetracker/stats-backend/internal/repository"
	"github.com/tradetracker/stats-backend/internal/service"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Open the transaction store. The service must not start serving
	// without a usable source, so any failure here is fatal.
	db, err := database.Open(cfg.Database.Path)
	if err != nil {
		log.Fatalf("Failed to open database: %v", err)
	}
	defer db.Close()

	log.Printf("Connected to database: %s", cfg.Database.Path)

	// Create repositories and services
	transactionRepo := repository.NewTransactionRepository(db)
	statsService := service.NewStatsService(transactionRepo)
	systemService := service.NewSystemService(db)

	// Create router
	router := api.NewRouter(systemService, statsService, cfg)

	// Periodic health log; the store lives on disk and is written by
	// another process, so connectivity can degrade underneath us.
	scheduler := cron.New()
	if cfg.Monitor.HealthSchedule != "" {
		_, err := scheduler.AddFunc(cfg.Monitor.HealthSchedule, func() {
			if err := database.HealthCheck(db); err != nil {
				log.Printf("Database health check failed: %v", err)
			}
		})
		if err != nil {
			log.Fatalf("Invalid health schedule %q: %v", cfg.Monitor.HealthSchedule, err)
		}
		scheduler.Start()
	}

	// Create HTTP server
	server := &http.Server{
		Addr:         cfg.Server.Addr,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start server in a goroutine
	go func() {
		log.Printf("Starting server on %s", cfg.Server.Addr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server failed to start: %v", err)
		}
	}()

	// Wait for interrupt signal for graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down server...")

	scheduler.Stop()

	// Graceful shutdown with timeout
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	log.Println("Server exited")
}
