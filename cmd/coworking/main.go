package main

import (
	"context"
	"coworking/config"
	"coworking/di"
	"coworking/shared/logger"
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog/log"
)

func main() {
	cfg := config.Get()

	logger.InitLogger(os.Stderr)

	logger.SetLogLevel(cfg)

	app := di.InitializeConsole()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if app.Config.App.Seed {
		if err := app.Seeder.Run(ctx); err != nil {
			log.Fatal().Err(err).Msg("Failed to seed demo data")
		}
	}

	err := app.Console.Run(ctx, os.Stdin, os.Stdout)

	if shutdownErr := app.Otel.Shutdown(context.Background()); shutdownErr != nil {
		log.Error().Err(shutdownErr).Msg("Failed to shut down tracer provider")
	}

	if err != nil {
		log.Fatal().Err(err).Msg("Console session failed")
	}
}
