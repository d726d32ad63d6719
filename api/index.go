package handler

import (
	"context"
	"coworking/config"
	"coworking/di"
	"coworking/shared/logger"
	"net/http"
	"sync"

	"github.com/rs/zerolog/log"
)

var (
	app  *di.ServerApp
	once sync.Once
)

// Handler serves the API from a serverless function. The ledger lives as long as the function instance.
func Handler(w http.ResponseWriter, r *http.Request) {
	r.RequestURI = r.URL.String()

	once.Do(func() {
		cfg := config.Get()

		logger.InitLogger(nil)

		logger.SetLogLevel(cfg)

		app = di.InitializeService()

		if cfg.App.Seed {
			if err := app.Seeder.Run(context.Background()); err != nil {
				log.Error().Err(err).Msg("Failed to seed demo data")
			}
		}
	})

	app.HTTP.ServeHTTP(w, r)
}
