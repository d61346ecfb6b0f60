package main

import (
	"os"

	"github.com/campuslink/backend/internal/pkg/logger"
	"github.com/campuslink/backend/internal/server"
)

// @title CampusLink API
// @version 1.0
// @description Post and comment feed API for the CampusLink university social platform

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:8080
// @BasePath /
// @schemes http https

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Bearer token from the external identity provider

func main() {
	srv, err := server.NewServer()
	if err != nil {
		logger.Error().Err(err).Msg("Failed to initialize server")
		os.Exit(1)
	}

	if err := srv.Run(); err != nil {
		logger.Error().Err(err).Msg("Server execution failed")
		os.Exit(1)
	}
}
