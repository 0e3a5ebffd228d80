package infra

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

// NewRedis connects to the optional cache. An empty URL or a failed
// ping returns nil; callers treat a nil client as cache-off.
func NewRedis(url string) *redis.Client {
	if url == "" {
		return nil
	}
	opts, err := redis.ParseURL(url)
	if err != nil {
		log.Warn().Err(err).Msg("REDIS_URL invalida, cache deshabilitado")
		return nil
	}
	client := redis.NewClient(opts)

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		log.Warn().Err(err).Msg("redis no disponible, cache deshabilitado")
		return nil
	}

	log.Info().Msg("cache redis conectado")
	return client
}
