package main

import (
	"context"
	"coworking/config"
	"coworking/di"
	"coworking/shared/logger"

	"github.com/rs/zerolog/log"
)

func main() {
	cfg := config.Get()

	logger.InitLogger(nil)

	logger.SetLogLevel(cfg)

	app := di.InitializeService()

	ctx := context.Background()

	if app.Config.App.Seed {
		if err := app.Seeder.Run(ctx); err != nil {
			log.Fatal().Err(err).Msg("Failed to seed demo data")
		}
	}

	err := app.HTTP.Serve(ctx)

	if shutdownErr := app.Otel.Shutdown(context.Background()); shutdownErr != nil {
		log.Error().Err(shutdownErr).Msg("Failed to shut down tracer provider")
	}

	if err != nil {
		log.Fatal().Err(err).Msg("HTTP server stopped with an error")
	}
}
