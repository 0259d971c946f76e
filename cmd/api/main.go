package main

import (
	"os"

	"github.com/gestionski/skistation/internal/pkg/logger"
	"github.com/gestionski/skistation/internal/server"
)

// @title Ski Station Instructor API
// @version 1.0
// @description Instructor records, course assignment and seniority for a ski station

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:8080
// @BasePath /api/v1
// @schemes http https

func main() {
	srv, err := server.NewServer()
	if err != nil {
		logger.Fatal().Err(err).Msg("Failed to initialize server")
	}

	// Run the server (this blocks until shutdown signal)
	if err := srv.Run(); err != nil {
		logger.Fatal().Err(err).Msg("Server execution failed or shutdown encountered errors")
	}

	logger.Info().Msg("Application finished gracefully.")
	os.Exit(0)
}
