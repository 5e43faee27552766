package redis

import (
	"context"
	"net"
	"rooming/config"
	"time"

	goRedis "github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

// New connects to the primary redis. CACHE_REDIS_PRIMARY_URL wins over host and port.
// An unreachable server is logged, not fatal: the cache and the rate limiter both degrade to pass-through.
func New(config *config.Config) *goRedis.Client {
	primary := config.Cache.Redis.Primary
	dialTimeout := time.Duration(config.Cache.DialTimeoutSeconds) * time.Second

	options := &goRedis.Options{
		Addr:        net.JoinHostPort(primary.Host, primary.Port),
		Password:    primary.Password,
		DB:          primary.DB,
		DialTimeout: dialTimeout,
	}

	if primary.URL != "" {
		parsed, err := goRedis.ParseURL(primary.URL)
		if err != nil {
			log.Fatal().Err(err).Msg("Invalid redis URL")
		}

		parsed.DialTimeout = dialTimeout
		options = parsed
	}

	client := goRedis.NewClient(options)

	ctx, cancel := context.WithTimeout(context.Background(), dialTimeout)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		log.Warn().Err(err).Str("addr", options.Addr).Msg("Redis unreachable, caching and rate limiting are disabled until it recovers")

		return client
	}

	log.Info().
		Int("db", options.DB).
		Str("addr", options.Addr).
		Msg("Connected to Redis")

	return client
}
