package main

import (
	"petstay/config"
	"petstay/di"
	"petstay/helper"
	"petstay/shared/logger"

	"github.com/rs/zerolog/log"
)

// @title PetStay API
// @version 1.0
// @description Booking lifecycle and room allocation for a pet boarding hotel.
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and the access token.
func main() {
	cfg := config.Get()

	logger.InitLogger()

	logger.SetLogLevel(cfg)

	if cfg.DB.Postgres.AutoMigrate {
		if err := helper.Run(cfg, helper.ActionUp); err != nil {
			log.Fatal().Err(err).Msg("Failed to migrate database")
		}
	}

	http := di.InitializeService()
	http.Serve()
}
