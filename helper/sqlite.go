package helper

import (
	"habitrack/config"
	"habitrack/infras/database"
)

const defaultMigrationTable = "schema_migrations"

// OpenSQLite migrates the sqlite file at path to the latest schema and opens
// it. The file is created when missing.
func OpenSQLite(path string) (*database.Connection, error) {
	cfg := &config.Config{}
	cfg.DB.Driver = config.DriverSQLite
	cfg.DB.MigrationTable = defaultMigrationTable
	cfg.DB.SQLite.Path = path
	cfg.DB.SQLite.BusyTimeoutMillis = 5000

	if err := Up(cfg); err != nil {
		return nil, err
	}

	return database.OpenSQLite(path, cfg.DB.SQLite.BusyTimeoutMillis)
}
