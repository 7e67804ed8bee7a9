package main

import (
	"context"
	"habitrack/config"
	"habitrack/helper"
	"habitrack/infras/database"
	"habitrack/infras/otel"
	"habitrack/infras/s3"
	"habitrack/shared/logger"
	"os"
	"time"

	"github.com/rs/zerolog/log"
)

func main() {
	cfg := config.Get()

	logger.InitLogger()
	logger.SetLogLevel(cfg)

	ctx := context.Background()
	otl := otel.New(cfg)
	defer func() { _ = otl.Shutdown(ctx) }()

	store, err := s3.New(ctx, cfg, otl)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to configure S3")
	}

	db := database.New(cfg)
	defer db.Close()

	key, err := helper.Backup(ctx, db, store, time.Now())
	if err != nil {
		log.Error().Err(err).Msg("Backup failed")
		os.Exit(1) //nolint:gocritic
	}

	log.Info().Str("key", key).Msg("Backup completed")
}
