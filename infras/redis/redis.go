package redis

import (
	"context"
	"coworking/config"
	"net"
	"time"

	goRedis "github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

const pingTimeout = 3 * time.Second

// New connects to the primary Redis instance used for slot caching and rate limiting.
// It returns nil when caching is disabled or the server cannot be reached, which callers treat as no cache.
func New(config *config.Config) *goRedis.Client {
	if !config.Cache.Enable {
		log.Debug().Msg("Cache disabled, slots are computed on every request")

		return nil
	}

	primary := config.Cache.Redis.Primary

	client := goRedis.NewClient(&goRedis.Options{
		Addr:     net.JoinHostPort(primary.Host, primary.Port),
		Password: primary.Password,
		DB:       primary.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), pingTimeout)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		log.Error().Err(err).Str("addr", client.Options().Addr).Msg("Redis unreachable, running without cache")

		if closeErr := client.Close(); closeErr != nil {
			log.Warn().Err(closeErr).Msg("Failed to close Redis client")
		}

		return nil
	}

	log.Info().
		Int("db", primary.DB).
		Str("addr", client.Options().Addr).
		Msg("Connected to Redis")

	return client
}
