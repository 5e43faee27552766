package main

import (
	"rooming/config"
	"rooming/di"
	"rooming/helper"
	"rooming/shared/logger"
	"rooming/shared/timezone"

	"github.com/rs/zerolog/log"
)

// @title Rooming List Manager API
// @version 1.0
// @description Events, bookings and hotel rooming lists.
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and the JWT.
func main() {
	cfg := config.Get()

	logger.InitLogger()

	logger.SetLogLevel(cfg)

	timezone.Init(cfg.App.Timezone)

	if cfg.DB.Postgres.AutoMigrate {
		if err := helper.Up(cfg); err != nil {
			log.Fatal().Err(err).Msg("Failed to run database migrations")
		}
	}

	http := di.InitializeService()
	http.Serve()
}
