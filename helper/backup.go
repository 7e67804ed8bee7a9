package helper

import (
	"context"
	"errors"
	"fmt"
	"habitrack/config"
	"habitrack/infras/database"
	"habitrack/infras/s3"
	"os"
	"path/filepath"
	"time"

	"github.com/rs/zerolog/log"
)

const (
	backupContentType = "application/vnd.sqlite3"
	backupTimeLayout  = "20060102T150405Z"
)

var ErrBackupUnsupported = errors.New("backups are only supported for the sqlite driver")

// Snapshot writes a consistent copy of a sqlite database to dest using
// VACUUM INTO. dest must not exist.
func Snapshot(ctx context.Context, db *database.Connection, dest string) error {
	if db.Driver != config.DriverSQLite {
		return ErrBackupUnsupported
	}

	if _, err := db.Write.ExecContext(ctx, "VACUUM INTO ?", dest); err != nil {
		return fmt.Errorf("vacuum into %s: %w", dest, err)
	}

	return nil
}

// Backup snapshots the database into a temp file and uploads it, returning
// the object key.
func Backup(ctx context.Context, db *database.Connection, store s3.S3, now time.Time) (string, error) {
	dir, err := os.MkdirTemp("", "habitrack-backup-")
	if err != nil {
		return "", fmt.Errorf("creating temp dir: %w", err)
	}
	defer os.RemoveAll(dir)

	name := fmt.Sprintf("habits-%s.db", now.UTC().Format(backupTimeLayout))
	dest := filepath.Join(dir, name)

	if err = Snapshot(ctx, db, dest); err != nil {
		return "", err
	}

	file, err := os.Open(dest)
	if err != nil {
		return "", fmt.Errorf("opening snapshot: %w", err)
	}
	defer file.Close()

	info, err := file.Stat()
	if err != nil {
		return "", fmt.Errorf("reading snapshot size: %w", err)
	}

	key, err := store.Upload(ctx, name, backupContentType, file, info.Size())
	if err != nil {
		return "", fmt.Errorf("uploading snapshot: %w", err)
	}

	log.Info().Str("key", key).Int64("bytes", info.Size()).Msg("Backup uploaded")

	return key, nil
}
