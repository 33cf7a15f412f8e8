package database

import (
	"context"
	"fmt"
	"log"
	"strings"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/mrlokans/bookreviews/internal/config"
)

// sqlitePragmas enables foreign keys (required for cascade delete), WAL
// journaling and a busy timeout for concurrent request handlers.
const sqlitePragmas = "_foreign_keys=on&_journal_mode=WAL&_busy_timeout=5000"

type Database struct {
	DB     *gorm.DB
	Driver string
}

func NewDatabase(cfg config.Database) (*Database, error) {
	dialector, err := openDialector(cfg)
	if err != nil {
		return nil, err
	}

	db, err := gorm.Open(dialector, &gorm.Config{
		Logger:         logger.Default.LogMode(parseLogLevel(cfg.LogLevel)),
		TranslateError: true,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	database := &Database{DB: db, Driver: dialector.Name()}

	if cfg.AutoMigrate {
		applied, err := NewMigrator(db).Up(context.Background())
		if err != nil {
			database.Close()
			return nil, fmt.Errorf("failed to migrate database: %w", err)
		}
		if len(applied) > 0 {
			log.Printf("Applied %d migration(s): %s", len(applied), strings.Join(applied, ", "))
		}
	}

	log.Printf("Database initialized successfully (%s)", database.Driver)

	return database, nil
}

func (d *Database) Close() error {
	sqlDB, err := d.DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

// Ping checks that the underlying connection pool can reach the store.
func (d *Database) Ping(ctx context.Context) error {
	sqlDB, err := d.DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}

func openDialector(cfg config.Database) (gorm.Dialector, error) {
	switch cfg.Driver {
	case "", config.DriverSQLite:
		if cfg.Path == "" {
			return nil, fmt.Errorf("database path is not set")
		}
		return sqlite.Open(sqliteDSN(cfg.Path)), nil
	case config.DriverPostgres:
		if cfg.DSN == "" {
			return nil, fmt.Errorf("database DSN is not set")
		}
		return postgres.Open(cfg.DSN), nil
	default:
		return nil, fmt.Errorf("unsupported database driver %q", cfg.Driver)
	}
}

func sqliteDSN(path string) string {
	if strings.Contains(path, "?") {
		return path + "&" + sqlitePragmas
	}
	return path + "?" + sqlitePragmas
}

func parseLogLevel(level string) logger.LogLevel {
	switch strings.ToLower(level) {
	case "silent":
		return logger.Silent
	case "error":
		return logger.Error
	case "info":
		return logger.Info
	default:
		return logger.Warn
	}
}
