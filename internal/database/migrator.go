package database

import (
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"household-expenses/internal/config"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	_ "github.com/lib/pq"
)

const defaultMigrationsPath = "db/migrations"

var (
	maxRetries    = 30
	retryInterval = 2 * time.Second
)

// MigrationRunner applies the SQL migrations with golang-migrate
type MigrationRunner struct {
	db             *sql.DB
	migrationsPath string
}

// NewMigrationRunner creates a runner reading migrations from path. An empty path uses db/migrations.
func NewMigrationRunner(db *sql.DB, path string) *MigrationRunner {
	if path == "" {
		path = defaultMigrationsPath
	}
	return &MigrationRunner{
		db:             db,
		migrationsPath: path,
	}
}

// WaitForDatabase pings until the database answers or retries run out
func (mr *MigrationRunner) WaitForDatabase() error {
	var err error
	for i := 0; i < maxRetries; i++ {
		if err = mr.db.Ping(); err == nil {
			return nil
		}

		slog.Info("Database not ready", "attempt", i+1, "max_attempts", maxRetries, "error", err)
		time.Sleep(retryInterval)
	}

	return fmt.Errorf("database not ready after %d attempts: %w", maxRetries, err)
}

func (mr *MigrationRunner) newMigrate() (*migrate.Migrate, error) {
	absPath, err := filepath.Abs(mr.migrationsPath)
	if err != nil {
		return nil, fmt.Errorf("failed to get absolute path for migrations: %w", err)
	}

	driver, err := postgres.WithInstance(mr.db, &postgres.Config{})
	if err != nil {
		return nil, fmt.Errorf("failed to create postgres driver: %w", err)
	}

	m, err := migrate.NewWithDatabaseInstance("file://"+absPath, "postgres", driver)
	if err != nil {
		return nil, fmt.Errorf("failed to create migration instance: %w", err)
	}
	return m, nil
}

// Up applies every pending migration. A dirty database is forced back to its recorded version first.
func (mr *MigrationRunner) Up() error {
	if _, err := os.Stat(mr.migrationsPath); os.IsNotExist(err) {
		return fmt.Errorf("migrations directory not found at %s", mr.migrationsPath)
	}

	m, err := mr.newMigrate()
	if err != nil {
		return err
	}

	version, dirty, err := m.Version()
	if err != nil && !errors.Is(err, migrate.ErrNilVersion) {
		return fmt.Errorf("failed to get migration version: %w", err)
	}

	if dirty {
		slog.Warn("Database is dirty, forcing version", "version", version)
		if err := m.Force(int(version)); err != nil {
			return fmt.Errorf("failed to force version: %w", err)
		}
	}

	err = m.Up()
	if errors.Is(err, migrate.ErrNoChange) {
		slog.Info("No new migrations to apply", "version", version)
		return nil
	}
	if err != nil {
		return fmt.Errorf("migration failed: %w", err)
	}

	newVersion, _, err := m.Version()
	if err != nil {
		return fmt.Errorf("failed to get new migration version: %w", err)
	}
	slog.Info("Applied migrations", "version", newVersion)
	return nil
}

// RunMigrations opens a dedicated lib/pq connection, waits for the server and applies migrations
func RunMigrations(cfg *config.DatabaseConfig) error {
	sqlDB, err := sql.Open("postgres", cfg.MigrationURL())
	if err != nil {
		return fmt.Errorf("failed to open migration connection: %w", err)
	}
	defer sqlDB.Close()

	runner := NewMigrationRunner(sqlDB, cfg.MigrationsPath)

	if err := runner.WaitForDatabase(); err != nil {
		return fmt.Errorf("database readiness check failed: %w", err)
	}

	return runner.Up()
}
