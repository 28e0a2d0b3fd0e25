// Package config reads server and database settings from environment
// variables with sensible defaults. Command-line flags in cmd/server may
// override individual fields after Load.
package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

// Driver names understood by cmd/server.
const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite3"
)

// Config holds all application configuration.
type Config struct {
	Port     int
	Driver   string
	Database DatabaseConfig

	// SQLitePath is the database file when Driver is sqlite3.
	// ":memory:" is accepted.
	SQLitePath string
}

// DatabaseConfig holds the PostgreSQL connection settings.
type DatabaseConfig struct {
	Host     string
	Name     string
	User     string
	Password string
	Port     int
	Timeout  time.Duration
}

// Load reads configuration from the environment.
func Load() Config {
	return Config{
		Port:       getEnvInt("PORT", 8080),
		Driver:     getEnv("DB_DRIVER", DriverPostgres),
		SQLitePath: getEnv("SQLITE_PATH", "assets.db"),
		Database: DatabaseConfig{
			Host:     getEnv("DB_HOST", ""),
			Name:     getEnv("DB_NAME", ""),
			User:     getEnv("DB_USER", ""),
			Password: getEnv("DB_PASSWORD", ""),
			Port:     getEnvInt("DB_PORT", 5432),
			Timeout:  getEnvDuration("DB_TIMEOUT", 10*time.Second),
		},
	}
}

// Validate checks that the settings the chosen driver needs are present.
// It fails fast at startup rather than on the first load.
func (c Config) Validate() error {
	switch c.Driver {
	case DriverPostgres:
		if c.Database.Host == "" || c.Database.Name == "" || c.Database.User == "" {
			return fmt.Errorf("postgres driver requires DB_HOST, DB_NAME and DB_USER")
		}
	case DriverSQLite:
		if c.SQLitePath == "" {
			return fmt.Errorf("sqlite3 driver requires a database path")
		}
	default:
		return fmt.Errorf("unknown database driver %q", c.Driver)
	}
	return nil
}

func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value, exists := os.LookupEnv(key); exists {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	if value, exists := os.LookupEnv(key); exists {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}
