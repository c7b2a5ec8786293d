package database

import (
	"fmt"
	"log/slog"
	"time"

	"household-expenses/internal/config"
	"household-expenses/internal/models"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

type DB struct {
	*gorm.DB
	config *config.DatabaseConfig
}

// New opens the configured database and applies pool settings
func New(cfg *config.DatabaseConfig) (*DB, error) {
	gormConfig := &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
		NowFunc: func() time.Time {
			return time.Now().UTC()
		},
		TranslateError: true,
	}

	var dialector gorm.Dialector
	switch cfg.Driver {
	case config.DriverSQLite:
		dialector = sqlite.Open(cfg.SQLitePath)
	default:
		dialector = postgres.Open(cfg.DSN())
	}

	db, err := gorm.Open(dialector, gormConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get sql.DB: %w", err)
	}

	sqlDB.SetMaxOpenConns(cfg.MaxConnections)
	sqlDB.SetMaxIdleConns(cfg.MaxIdleConns)
	sqlDB.SetConnMaxLifetime(cfg.ConnMaxLifetime)

	if err := sqlDB.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return &DB{
		DB:     db,
		config: cfg,
	}, nil
}

// AutoMigrate creates or updates every table from the gorm models
func (db *DB) AutoMigrate() error {
	return db.DB.AutoMigrate(
		&models.User{},
		&models.Session{},
		&models.RevokedAccessToken{},
		&models.AuditLog{},
		&models.ExpenseRecord{},
		&models.BudgetRecord{},
		&models.BankTransactionRecord{},
	)
}

func (db *DB) Close() error {
	sqlDB, err := db.DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

// HealthCheck pings the underlying connection pool
func (db *DB) HealthCheck() error {
	sqlDB, err := db.DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.Ping()
}

// CleanupExpiredTokens deletes sessions and revoked access tokens past their expiry
func (db *DB) CleanupExpiredTokens() error {
	now := time.Now().UTC()

	if err := db.DB.Where("expires_at < ?", now).Delete(&models.Session{}).Error; err != nil {
		return fmt.Errorf("failed to cleanup expired sessions: %w", err)
	}

	if err := db.DB.Where("expires_at < ?", now).Delete(&models.RevokedAccessToken{}).Error; err != nil {
		return fmt.Errorf("failed to cleanup expired revoked tokens: %w", err)
	}

	return nil
}

// Initialize connects and brings the schema up to date. Postgres uses the SQL migrations under
// MigrationsPath and falls back to gorm AutoMigrate if they fail; SQLite always uses AutoMigrate.
func Initialize(cfg *config.Config) (*DB, error) {
	db, err := New(&cfg.Database)
	if err != nil {
		return nil, err
	}

	if !cfg.Database.AutoMigrate {
		slog.Info("Auto-migration disabled")
		return db, nil
	}

	if cfg.Database.Driver == config.DriverPostgres {
		if err := RunMigrations(&cfg.Database); err != nil {
			slog.Warn("Migration runner failed, falling back to AutoMigrate", "error", err)
			if err := db.AutoMigrate(); err != nil {
				return nil, fmt.Errorf("failed to run migrations: %w", err)
			}
		}
	} else if err := db.AutoMigrate(); err != nil {
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	slog.Info("Database initialized", "driver", cfg.Database.Driver)
	return db, nil
}
