package main

import (
	"log/slog"
	"os"

	"github.com/c2n2p/portal/internal/config"
	"github.com/c2n2p/portal/internal/logging"
	"github.com/c2n2p/portal/internal/server"
)

func main() {
	cfg := config.New()
	logging.New(cfg.GetLogFormat(), cfg.GetLogLevel())

	// Create a new server instance.
	s, err := server.New(cfg)
	if err != nil {
		slog.Error("Failed to create server", "error", err)
		os.Exit(1)
	}

	// Register all application routes.
	if err := s.RegisterRoutes(); err != nil {
		slog.Error("Failed to register routes", "error", err)
		os.Exit(1)
	}

	// Start the server.
	s.Start()
}
