// Package startup prepares the application server
package startup

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/StillwaterStudio/stillwater-go/internal/application/container"
	"github.com/StillwaterStudio/stillwater-go/internal/infrastructure/observability/logging"
	"github.com/StillwaterStudio/stillwater-go/internal/infrastructure/persistence/database"
	"github.com/StillwaterStudio/stillwater-go/internal/presentation/http/server"
	"github.com/StillwaterStudio/stillwater-go/pkg/config"
	"github.com/gin-gonic/gin"
)

// Initialize performs the complete startup sequence: logging, database,
// container wiring, HTTP server, and graceful shutdown on SIGINT/SIGTERM.
func Initialize() error {
	setupGinMode()

	start := time.Now().UTC()

	logger, err := logging.NewChanneledLogger(nil)
	if err != nil {
		return fmt.Errorf("failed to initialize logging: %w", err)
	}
	defer logger.Close()

	logger.Startup().Info("Starting Stillwater content server")

	// Database
	dbStart := time.Now()
	db, err := database.NewConnectionWithLogger(config.DBDriver, config.DBDataSource, logger)
	if err != nil {
		logger.LogStartupPhase("database", time.Since(dbStart), false)
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer db.Close()
	logger.LogStartupPhase("database", time.Since(dbStart), true)

	// Container
	containerStart := time.Now()
	appContainer := container.NewContainer(db, logger)
	if err := appContainer.PageRepo.EnsureSchema(); err != nil {
		logger.LogStartupPhase("container", time.Since(containerStart), false)
		return fmt.Errorf("failed to prepare schema: %w", err)
	}
	logger.LogStartupPhase("container", time.Since(containerStart), true)

	// HTTP server
	port := os.Getenv("PORT")
	if port == "" {
		port = config.Port
	}
	httpServer := server.New(port, appContainer)

	gracefulShutdown := make(chan os.Signal, 1)
	signal.Notify(gracefulShutdown, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		logger.System().Info("Starting HTTP server", "address", ":"+port)
		if err := httpServer.Start(); err != nil {
			logger.System().Error("HTTP server failed", "error", err.Error())
		}
	}()

	logger.Startup().Info("Application startup complete",
		"totalDuration", time.Since(start),
		"port", port)

	<-gracefulShutdown
	logger.Shutdown().Info("Shutdown signal received, starting graceful shutdown...")

	shutdownStart := time.Now()
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := httpServer.Stop(shutdownCtx); err != nil {
		logger.Shutdown().Error("Error during server shutdown", "error", err.Error())
	} else {
		logger.Shutdown().Info("HTTP server stopped successfully")
	}

	logger.Shutdown().Info("Application shutdown complete",
		"totalUptime", time.Since(start),
		"shutdownDuration", time.Since(shutdownStart))

	return nil
}

// setupGinMode configures the gin runtime mode before any engine is created.
func setupGinMode() {
	if os.Getenv("GIN_MODE") == "release" {
		gin.SetMode(gin.ReleaseMode)
	} else {
		log.Println("Running in development mode")
	}
}
