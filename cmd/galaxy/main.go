package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/ReyMelin/FabledGalaxyWebsite/internal/config"
)

const (
	startupTimeout  = 30 * time.Second
	shutdownTimeout = 10 * time.Second
)

func main() {
	InitLogger()

	if err := run(); err != nil {
		slog.Error("Fabled Galaxy stopped", "error", err)
		os.Exit(1)
	}
}

// run owns the process lifetime: it connects and migrates the database,
// serves until a signal arrives, then shuts every component down.
func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load configuration: %w", err)
	}

	startCtx, cancel := context.WithTimeout(context.Background(), startupTimeout)
	app, err := NewApp(startCtx, cfg)
	cancel()
	if err != nil {
		return fmt.Errorf("initialize application: %w", err)
	}

	runErr := app.Run()
	if runErr == nil {
		WaitForShutdown()
	}

	shutdownCtx, cancelShutdown := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancelShutdown()
	if err := app.Shutdown(shutdownCtx); err != nil {
		slog.Error("Application shutdown error", "error", err)
	}

	if runErr != nil {
		return fmt.Errorf("start application: %w", runErr)
	}
	return nil
}
