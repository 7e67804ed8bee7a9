package main

import (
	"context"
	"flag"
	"habitrack/config"
	"habitrack/helper"
	"habitrack/infras/database"
	"habitrack/infras/otel"
	checkinRepo "habitrack/internal/domains/checkin/repository"
	habitRepo "habitrack/internal/domains/habit/repository"
	"habitrack/shared/logger"
	"time"

	"github.com/rs/zerolog/log"
)

func main() {
	seed := flag.Uint64("seed", uint64(time.Now().UnixNano()), "random seed for the generated history")
	flag.Parse()

	cfg := config.Get()

	logger.InitLogger()
	logger.SetLogLevel(cfg)

	if err := helper.Up(cfg); err != nil {
		log.Fatal().Err(err).Msg("Failed to apply database migrations")
	}

	ctx := context.Background()
	otl := otel.New(cfg)
	db := database.New(cfg)

	defer func() {
		_ = db.Close()
		_ = otl.Shutdown(ctx)
	}()

	seeder := helper.NewSeeder(habitRepo.New(db, otl), checkinRepo.New(db, otl), *seed)

	res, err := seeder.Run(ctx)
	if err != nil {
		log.Error().Err(err).Msg("Failed to populate demo data")

		return
	}

	log.Info().
		Int("habits", res.Habits).
		Int("checkins", res.Checkins).
		Int("done", res.Done).
		Int("missed", res.Missed).
		Int("days", helper.SeedDays).
		Msg("Demo data populated")
}
