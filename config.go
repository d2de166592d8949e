package main

import (
	"fmt"
	"os"
	"strconv"

	"payment-api/database"

	"github.com/joho/godotenv"
)

// Config holds all configuration for the payment API.
type Config struct {
	Port     string
	Env      string
	DBDriver string
	// SQLite
	SQLitePath string
	// Postgres
	PostgresUser     string
	PostgresPassword string
	PostgresDB       string
	PostgresHost     string
	PostgresPort     string
	PostgresSSLMode  string
	PostgresTimeZone string
	// Policy flags. The two upstream deployment profiles differ on these,
	// so they are explicit configuration rather than hard-coded rules.
	MinOrderAmount    float64
	EnableCustomerAPI bool
	SimulateDelay     bool
}

// DSN builds the connection string for the configured driver.
func (c *Config) DSN() string {
	if c.DBDriver == database.DriverSQLite {
		return c.SQLitePath
	}
	return fmt.Sprintf(
		"host=%s user=%s password=%s dbname=%s port=%s sslmode=%s TimeZone=%s",
		c.PostgresHost, c.PostgresUser, c.PostgresPassword, c.PostgresDB,
		c.PostgresPort, c.PostgresSSLMode, c.PostgresTimeZone,
	)
}

// LoadConfig reads configuration from the environment, with .env support for
// local runs.
func LoadConfig() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		Port:              getEnv("PORT", "8080"),
		Env:               getEnv("ENV", "development"),
		DBDriver:          getEnv("DB_DRIVER", database.DriverSQLite),
		SQLitePath:        getEnv("SQLITE_PATH", "payments.db"),
		PostgresUser:      os.Getenv("POSTGRES_USER"),
		PostgresPassword:  os.Getenv("POSTGRES_PASSWORD"),
		PostgresDB:        os.Getenv("POSTGRES_DB"),
		PostgresHost:      getEnv("POSTGRES_HOST", "localhost"),
		PostgresPort:      getEnv("POSTGRES_PORT", "5432"),
		PostgresSSLMode:   getEnv("POSTGRES_SSLMODE", "disable"),
		PostgresTimeZone:  getEnv("POSTGRES_TIMEZONE", "UTC"),
		MinOrderAmount:    getEnvFloat("MIN_ORDER_AMOUNT", 0),
		EnableCustomerAPI: getEnvBool("ENABLE_CUSTOMER_API", true),
		SimulateDelay:     getEnvBool("SIMULATE_DELAY", false),
	}

	switch cfg.DBDriver {
	case database.DriverSQLite:
		if cfg.SQLitePath == "" {
			return nil, fmt.Errorf("SQLITE_PATH is required with the sqlite driver")
		}
	case database.DriverPostgres:
		if cfg.PostgresUser == "" || cfg.PostgresPassword == "" || cfg.PostgresDB == "" {
			return nil, fmt.Errorf("database config incomplete")
		}
	default:
		return nil, fmt.Errorf("unsupported DB_DRIVER %q", cfg.DBDriver)
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}

func getEnvFloat(key string, fallback float64) float64 {
	if val := os.Getenv(key); val != "" {
		if f, err := strconv.ParseFloat(val, 64); err == nil {
			return f
		}
	}
	return fallback
}

func getEnvBool(key string, fallback bool) bool {
	if val := os.Getenv(key); val != "" {
		if b, err := strconv.ParseBool(val); err == nil {
			return b
		}
	}
	return fallback
}
