package database

//nolint:revive
import (
	"context"
	"errors"
	"fmt"
	"habitrack/config"
	"net"
	"net/url"
	"os"
	"path/filepath"
	"time"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	"github.com/rs/zerolog/log"
	_ "modernc.org/sqlite"
)

const (
	postgresMaxIdleConnection = 10
	postgresMaxOpenConnection = 10
	sqliteMaxOpenReadConn     = 4
)

func init() {
	sqlx.BindDriver(config.DriverSQLite, sqlx.QUESTION)
}

// Connection splits reads from writes. On SQLite the write pool holds a
// single connection so writers queue in process instead of failing with
// SQLITE_BUSY.
type Connection struct {
	Driver string
	Read   *sqlx.DB
	Write  *sqlx.DB
}

func New(config *config.Config) *Connection {
	conn, err := Open(config)
	if err != nil {
		log.Fatal().Err(err).Str("driver", config.DB.Driver).Msg("Failed to open database")
	}

	return conn
}

func Open(cfg *config.Config) (*Connection, error) {
	switch cfg.DB.Driver {
	case config.DriverSQLite, "":
		return OpenSQLite(cfg.DB.SQLite.Path, cfg.DB.SQLite.BusyTimeoutMillis)
	case config.DriverPostgres:
		read := CreatePostgresReadConn(*cfg)
		write := CreatePostgresWriteConn(*cfg)

		if read == nil || write == nil {
			return nil, errors.New("could not connect to postgres")
		}

		return &Connection{Driver: config.DriverPostgres, Read: read, Write: write}, nil
	default:
		return nil, fmt.Errorf("unsupported database driver %q", cfg.DB.Driver)
	}
}

// SQLiteDSN enables foreign keys, WAL and a busy timeout on every pooled
// connection.
func SQLiteDSN(path string, busyTimeoutMillis int) string {
	query := url.Values{}
	query.Add("_pragma", "foreign_keys(1)")
	query.Add("_pragma", "journal_mode(wal)")
	query.Add("_pragma", fmt.Sprintf("busy_timeout(%d)", busyTimeoutMillis))

	return "file:" + path + "?" + query.Encode()
}

func OpenSQLite(path string, busyTimeoutMillis int) (*Connection, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("creating database directory: %w", err)
		}
	}

	dsn := SQLiteDSN(path, busyTimeoutMillis)

	write, err := sqlx.Connect(config.DriverSQLite, dsn)
	if err != nil {
		return nil, fmt.Errorf("opening sqlite write connection: %w", err)
	}

	write.SetMaxOpenConns(1)

	read, err := sqlx.Connect(config.DriverSQLite, dsn)
	if err != nil {
		write.Close()

		return nil, fmt.Errorf("opening sqlite read connection: %w", err)
	}

	read.SetMaxOpenConns(sqliteMaxOpenReadConn)

	log.Info().Str("path", path).Msg("Connected to database")

	return &Connection{Driver: config.DriverSQLite, Read: read, Write: write}, nil
}

func (c *Connection) Ping(ctx context.Context) error {
	if err := c.Write.PingContext(ctx); err != nil {
		return fmt.Errorf("pinging write connection: %w", err)
	}

	if err := c.Read.PingContext(ctx); err != nil {
		return fmt.Errorf("pinging read connection: %w", err)
	}

	return nil
}

func (c *Connection) Close() error {
	return errors.Join(c.Read.Close(), c.Write.Close())
}

// getDBName returns the database name with prefix if configured
func getDBName(config config.Config, baseName string) string {
	if config.DB.Postgres.Prefix != "" {
		return config.DB.Postgres.Prefix + baseName
	}
	return baseName
}

// CreatePostgresWriteConn creates a database connection for write access.
func CreatePostgresWriteConn(config config.Config) *sqlx.DB {
	return CreatePostgresConnection(
		"write",
		config.DB.Postgres.Write.Username,
		config.DB.Postgres.Write.Password,
		config.DB.Postgres.Write.Host,
		config.DB.Postgres.Write.Port,
		getDBName(config, config.DB.Postgres.Write.Name),
		config.DB.Postgres.Write.SSLMode,
		config.DB.Postgres.MaxRetry,
		config.DB.Postgres.RetryWaitTime,
	)
}

// CreatePostgresReadConn creates a database connection for read access.
func CreatePostgresReadConn(config config.Config) *sqlx.DB {
	return CreatePostgresConnection(
		"read",
		config.DB.Postgres.Read.Username,
		config.DB.Postgres.Read.Password,
		config.DB.Postgres.Read.Host,
		config.DB.Postgres.Read.Port,
		getDBName(config, config.DB.Postgres.Read.Name),
		config.DB.Postgres.Read.SSLMode,
		config.DB.Postgres.MaxRetry,
		config.DB.Postgres.RetryWaitTime,
	)
}

// PostgresURL is shared by the pool and the migration runner.
func PostgresURL(username, password, host, port, dbName, sslMode string) string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s/%s?sslmode=%s",
		url.QueryEscape(username),
		url.QueryEscape(password),
		net.JoinHostPort(host, port),
		dbName,
		sslMode,
	)
}

// CreatePostgresConnection creates a database connection.
func CreatePostgresConnection(name, username, password, host, port, dbName, sslMode string, maxRetry, waitTime int) *sqlx.DB {
	descriptor := PostgresURL(username, password, host, port, dbName, sslMode)

	for retry := range maxRetry {
		sqlDB, err := sqlx.Connect(config.DriverPostgres, descriptor)
		if err == nil {
			log.
				Info().
				Str("name", name).
				Str("host", host).
				Str("port", port).
				Str("dbName", dbName).
				Msg("Connected to database")
			sqlDB.SetMaxIdleConns(postgresMaxIdleConnection)
			sqlDB.SetMaxOpenConns(postgresMaxOpenConnection)

			return sqlDB
		}

		log.
			Error().
			Err(err).
			Str("name", name).
			Str("host", host).
			Str("port", port).
			Str("dbName", dbName).
			Int("attempt", retry+1).
			Msg("Failed connecting to database, retrying")

		time.Sleep(time.Duration(waitTime) * time.Second)
	}

	return nil
}
