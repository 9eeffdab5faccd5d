package database

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/golang-migrate/migrate/v4"
	migratepg "github.com/golang-migrate/migrate/v4/database/postgres"
	migratesqlite "github.com/golang-migrate/migrate/v4/database/sqlite"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/luach/luach/internal/config"
	log "github.com/sirupsen/logrus"
	_ "modernc.org/sqlite"
)

// Open opens the configured database and verifies the connection.
func Open(cfg config.Database) (*sql.DB, error) {
	var db *sql.DB
	var err error

	switch cfg.Driver {
	case "", "sqlite":
		db, err = sql.Open("sqlite", cfg.Path)
		if err != nil {
			return nil, fmt.Errorf("failed to open sqlite database: %w", err)
		}
		// A single writer keeps sqlite from returning SQLITE_BUSY under
		// concurrent requests.
		db.SetMaxOpenConns(1)
	case "postgres":
		dsn := fmt.Sprintf("host=%s port=%d user=%s password='%s' dbname=%s sslmode=disable",
			cfg.Host, cfg.Port, cfg.User, cfg.Pass, cfg.Name)
		db, err = sql.Open("pgx", dsn)
		if err != nil {
			return nil, fmt.Errorf("failed to open postgres database: %w", err)
		}
	default:
		return nil, fmt.Errorf("unsupported database driver: %q", cfg.Driver)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	return db, nil
}

// Migrate applies all pending migrations for the configured driver. It is
// idempotent and must run before the server accepts traffic.
func Migrate(db *sql.DB, cfg config.Database) error {
	driverName := cfg.Driver
	if driverName == "" {
		driverName = "sqlite"
	}

	migrationsPath, err := findMigrationsPath(driverName)
	if err != nil {
		return fmt.Errorf("failed to locate migrations directory: %w", err)
	}

	var m *migrate.Migrate
	switch driverName {
	case "sqlite":
		driver, err := migratesqlite.WithInstance(db, &migratesqlite.Config{})
		if err != nil {
			return fmt.Errorf("failed to create sqlite migration driver: %w", err)
		}
		m, err = migrate.NewWithDatabaseInstance("file://"+migrationsPath, "sqlite", driver)
		if err != nil {
			return fmt.Errorf("failed to create migrate instance: %w", err)
		}
	case "postgres":
		driver, err := migratepg.WithInstance(db, &migratepg.Config{})
		if err != nil {
			return fmt.Errorf("failed to create postgres migration driver: %w", err)
		}
		m, err = migrate.NewWithDatabaseInstance("file://"+migrationsPath, "postgres", driver)
		if err != nil {
			return fmt.Errorf("failed to create migrate instance: %w", err)
		}
	default:
		return fmt.Errorf("unsupported database driver: %q", driverName)
	}

	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("migration up failed: %w", err)
	}
	log.Debugf("migrations applied from %s", migrationsPath)

	return nil
}

// findMigrationsPath searches upward from the current working directory for the
// "migrations/<driver>" directory and returns its absolute path. This makes
// migrations resolution robust in tests where the working directory can be
// different from the project root.
func findMigrationsPath(driver string) (string, error) {
	dir, err := os.Getwd()
	if err != nil {
		return "", err
	}

	for {
		candidate := filepath.Join(dir, "migrations", driver)
		info, err := os.Stat(candidate)
		if err == nil && info.IsDir() {
			abs, err := filepath.Abs(candidate)
			if err != nil {
				return "", err
			}
			return abs, nil
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}

	return "", fmt.Errorf("migrations directory for driver %q not found", driver)
}
