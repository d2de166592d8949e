package database

import (
	"fmt"
	"time"

	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// Supported driver names.
const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

var DB *gorm.DB

// Connect opens the relational store and runs migrations. Postgres is the
// production driver; sqlite keeps local runs self-contained (the DSN is the
// database file path).
func Connect(logger *zap.Logger, driver, dsn string, autoMigrateModels ...interface{}) error {
	var err error
	DB, err = open(logger, driver, dsn)
	if err != nil {
		logger.Error("Failed to connect to database", zap.String("driver", driver), zap.Error(err))
		return err
	}

	if len(autoMigrateModels) > 0 {
		if err := DB.AutoMigrate(autoMigrateModels...); err != nil {
			return fmt.Errorf("AutoMigrate failed: %w", err)
		}
	}
	return nil
}

func open(logger *zap.Logger, driver, dsn string) (*gorm.DB, error) {
	switch driver {
	case DriverSQLite:
		db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
		if err != nil {
			return nil, fmt.Errorf("failed to open sqlite database %q: %w", dsn, err)
		}
		logger.Info("Connected to SQLite", zap.String("path", dsn))
		return db, nil

	case DriverPostgres:
		var db *gorm.DB
		var err error
		for i := 0; i < 10; i++ {
			db, err = gorm.Open(postgres.Open(dsn), &gorm.Config{})
			if err == nil {
				sqlDB, poolErr := db.DB()
				if poolErr == nil {
					sqlDB.SetMaxOpenConns(25)
					sqlDB.SetMaxIdleConns(5)
					sqlDB.SetConnMaxLifetime(5 * time.Minute)
				}
				logger.Info("Connected to PostgreSQL successfully")
				return db, nil
			}
			logger.Warn("DB connection failed, retrying",
				zap.Int("attempt", i+1),
				zap.Error(err),
			)
			time.Sleep(time.Duration(i+1) * 2 * time.Second)
		}
		return nil, fmt.Errorf("failed to connect to PostgreSQL after retries: %w", err)

	default:
		return nil, fmt.Errorf("unsupported DB driver %q", driver)
	}
}

// Close releases the underlying connection pool.
func Close() error {
	if DB == nil {
		return nil
	}
	sqlDB, err := DB.DB()
	if err != nil {
		return fmt.Errorf("failed to get database instance: %w", err)
	}
	return sqlDB.Close()
}
