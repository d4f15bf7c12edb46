package main

import (
	"context"
	"os"

	"github.com/karmachari/portal/internal/pkg/logger"
	"github.com/karmachari/portal/internal/server"
)

func main() {
	srv, err := server.NewServer(context.Background())
	if err != nil {
		// Setup functions log their own details
		logger.Error().Err(err).Msg("Failed to initialize server")
		os.Exit(1)
	}

	// Run blocks until a shutdown signal arrives
	if err := srv.Run(); err != nil {
		logger.Error().Err(err).Msg("Server execution failed or shutdown encountered errors")
		os.Exit(1)
	}

	logger.Info().Msg("Application finished gracefully.")
}
