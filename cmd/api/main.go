package main

import (
	"os"

	"github.com/yigit/acadservice/internal/pkg/logger"
	"github.com/yigit/acadservice/internal/server"
)

// @title Acad Service API
// @version 1.0
// @description Read-only academic records and IPS calculation
// @termsOfService http://swagger.io/terms/

// @contact.name API Support

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:8080
// @BasePath /
// @schemes http

func main() {
	srv, err := server.NewServer()
	if err != nil {
		// Setup failures are already logged in detail by the bootstrap functions
		logger.Error().Err(err).Msg("Failed to initialize server")
		os.Exit(1)
	}

	// Blocks until a shutdown signal arrives
	if err := srv.Run(); err != nil {
		logger.Error().Err(err).Msg("Server execution failed or shutdown encountered errors")
		os.Exit(1)
	}

	logger.Info().Msg("Application finished gracefully.")
}
