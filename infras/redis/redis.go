package redis

import (
	"context"
	"habitrack/config"
	"net"

	goRedis "github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

// New returns nil when redis is disabled; everything built on top of it
// treats a nil client as "feature off".
func New(config *config.Config) *goRedis.Client {
	redisConfig := config.Cache.Redis
	if !redisConfig.Enable {
		log.Debug().Msg("Redis disabled, rate limiting will be skipped")

		return nil
	}

	client := goRedis.NewClient(&goRedis.Options{
		Addr:     net.JoinHostPort(redisConfig.Primary.Host, redisConfig.Primary.Port),
		Password: redisConfig.Primary.Password,
		DB:       redisConfig.Primary.DB,
	})

	if _, err := client.Ping(context.Background()).Result(); err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to Redis")
	}

	log.Info().
		Int("db", redisConfig.Primary.DB).
		Str("host", redisConfig.Primary.Host).
		Str("port", redisConfig.Primary.Port).
		Msg("Connected to Redis")

	return client
}
