package helper

//nolint:revive
import (
	"errors"
	"fmt"
	"habitrack/config"
	"habitrack/infras/database"
	"habitrack/migrations"
	"net/url"
	"os"
	"path/filepath"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/database/sqlite"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	"github.com/rs/zerolog/log"
)

const (
	ActionUp     = "up"
	ActionDown   = "down"
	ActionStepUp = "step-up"
	ActionDrop   = "drop"
)

func getDBName(config *config.Config, baseName string) string {
	if config.DB.Postgres.Prefix != "" {
		return config.DB.Postgres.Prefix + baseName
	}

	return baseName
}

func databaseURL(cfg *config.Config) (string, string, error) {
	switch cfg.DB.Driver {
	case config.DriverSQLite, "":
		query := url.Values{}
		query.Set("x-migrations-table", cfg.DB.MigrationTable)
		query.Add("_pragma", "foreign_keys(1)")

		return config.DriverSQLite, "sqlite://" + cfg.DB.SQLite.Path + "?" + query.Encode(), nil
	case config.DriverPostgres:
		write := cfg.DB.Postgres.Write
		base := database.PostgresURL(write.Username, write.Password, write.Host, write.Port, getDBName(cfg, write.Name), write.SSLMode)

		return config.DriverPostgres, base + "&x-migrations-table=" + url.QueryEscape(cfg.DB.MigrationTable), nil
	default:
		return "", "", fmt.Errorf("unsupported database driver %q", cfg.DB.Driver)
	}
}

func getConnection(cfg *config.Config) (*migrate.Migrate, error) {
	dir, connectionString, err := databaseURL(cfg)
	if err != nil {
		return nil, err
	}

	if dir == config.DriverSQLite {
		if err = os.MkdirAll(filepath.Dir(cfg.DB.SQLite.Path), 0o755); err != nil {
			return nil, fmt.Errorf("creating database directory: %w", err)
		}
	}

	source, err := iofs.New(migrations.FS, dir)
	if err != nil {
		return nil, fmt.Errorf("error opening embedded migrations: %w", err)
	}

	mig, err := migrate.NewWithSourceInstance("iofs", source, connectionString)
	if err != nil {
		return nil, fmt.Errorf("error creating migrate instance: %w", err)
	}

	return mig, nil
}

func Runner(config *config.Config, action string) error {
	mig, err := getConnection(config)
	if err != nil {
		return err
	}

	defer mig.Close()

	switch action {
	case ActionUp:
		if err := mig.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
			return fmt.Errorf("error running migrations: %w", err)
		}

		log.Info().Str("driver", config.DB.Driver).Msg("Database migrations completed successfully")

		return nil
	case ActionDown:
		if err := mig.Steps(-1); err != nil && !errors.Is(err, migrate.ErrNoChange) {
			return fmt.Errorf("error rolling back migrations: %w", err)
		}

		log.Info().Str("driver", config.DB.Driver).Msg("Database migrations rolled back successfully")

		return nil
	case ActionStepUp:
		if err := mig.Steps(1); err != nil && !errors.Is(err, migrate.ErrNoChange) {
			return fmt.Errorf("error running migrations: %w", err)
		}

		log.Info().Str("driver", config.DB.Driver).Msg("Database migrations completed successfully")

		return nil
	case ActionDrop:
		if err := mig.Down(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
			return fmt.Errorf("error rolling back migrations: %w", err)
		}

		log.Info().Str("driver", config.DB.Driver).Msg("Database migrations rolled back successfully")

		return nil
	}

	return fmt.Errorf("unknown migration action %q", action)
}

func Up(config *config.Config) error {
	return Runner(config, ActionUp)
}

func StepUp(config *config.Config) error {
	return Runner(config, ActionStepUp)
}

func Down(config *config.Config) error {
	return Runner(config, ActionDown)
}

func Drop(config *config.Config) error {
	return Runner(config, ActionDrop)
}

// AutoMigrate runs pending migrations at startup when DB_AUTO_MIGRATE is on.
func AutoMigrate(config *config.Config) {
	if !config.DB.AutoMigrate {
		return
	}

	if err := Up(config); err != nil {
		log.Fatal().Err(err).Msg("Failed to apply database migrations")
	}
}
