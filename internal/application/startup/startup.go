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

	"github.com/moodrise/moodrise-go/internal/application/container"
	"github.com/moodrise/moodrise-go/internal/infrastructure/observability/logging"
	"github.com/moodrise/moodrise-go/internal/presentation/http/server"
	"github.com/moodrise/moodrise-go/pkg/config"
	"github.com/robfig/cron/v3"
)

// Initialize performs the complete startup sequence
func Initialize() error {
	start := time.Now().UTC()

	log.Println("\033[32m" + `
  __  __                 _ ____  _
 |  \/  | ___   ___   __| |  _ \(_)___  ___
 | |\/| |/ _ \ / _ \ / _` + "`" + ` | |_) | / __|/ _ \
 | |  | | (_) | (_) | (_| |  _ <| \__ \  __/
 |_|  |_|\___/ \___/ \__,_|_| \_\_|___/\___|
` + "\033[0m")

	// Step 1: Create dependency injection container
	log.Println("Initializing dependency injection container...")
	appContainer, err := container.NewContainer()
	if err != nil {
		return fmt.Errorf("failed to build container: %w", err)
	}

	logger := appContainer.Logger
	logger.Startup().Info("Container initialization complete - switching to channeled logging")

	// Step 2: Schedule the idle-state sweep
	logger.Startup().Info("Scheduling state sweep", "schedule", config.StateSweepSchedule, "ttl", config.UserStateTTL.String())
	sweeper := cron.New()
	sweepLog := logger.WithOperation(logging.ChannelState, "state-sweep")
	if _, err := sweeper.AddFunc(config.StateSweepSchedule, func() {
		evicted := appContainer.StateStore.EvictIdle(config.UserStateTTL)
		sweepLog.Info("State sweep completed", "evicted", evicted, "remaining", appContainer.StateStore.Len())
	}); err != nil {
		return fmt.Errorf("failed to schedule state sweep: %w", err)
	}
	sweeper.Start()

	// Step 3: Start HTTP server
	logger.Startup().Info("Starting HTTP server...", "port", config.Port)
	httpServer := server.New(config.Port, appContainer)

	gracefulShutdown := make(chan os.Signal, 1)
	signal.Notify(gracefulShutdown, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		if err := httpServer.Start(); err != nil {
			logger.System().Error("HTTP server failed", "error", err.Error())
			gracefulShutdown <- syscall.SIGTERM
		}
	}()

	logger.Startup().Info("Startup complete", "duration", time.Since(start).String())

	// Step 4: Wait for shutdown signal
	<-gracefulShutdown
	logger.Shutdown().Info("Shutdown signal received")

	sweepCtx := sweeper.Stop()
	<-sweepCtx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := httpServer.Stop(shutdownCtx); err != nil {
		logger.Shutdown().Error("HTTP server shutdown failed", "error", err.Error())
		return fmt.Errorf("server shutdown failed: %w", err)
	}

	logger.Shutdown().Info("Shutdown complete")
	return appContainer.Logger.Close()
}
