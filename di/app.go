package di

import (
	"coworking/config"
	"coworking/infras/otel"
	"coworking/internal/seed"
	"coworking/transport/console"
	"coworking/transport/http"
)

// ConsoleApp is everything the interactive binary needs.
type ConsoleApp struct {
	Config  *config.Config
	Otel    otel.Otel
	Seeder  *seed.Seeder
	Console *console.Console
}

// ServerApp is everything the HTTP binary needs.
type ServerApp struct {
	Config *config.Config
	Otel   otel.Otel
	Seeder *seed.Seeder
	HTTP   *http.HTTP
}
