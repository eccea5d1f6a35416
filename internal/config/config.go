package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
)

// Config holds all configuration for the application
type Config struct {
	Server   ServerConfig
	Database DatabaseConfig
	Monitor  MonitorConfig
	CORS     CORSConfig
}

// ServerConfig holds server-specific configuration
type ServerConfig struct {
	Port string
	Host string
	Addr string // Combined host:port for convenience
}

// DatabaseConfig holds database-specific configuration
type DatabaseConfig struct {
	Path string
}

// MonitorConfig holds settings for the periodic health log job.
type MonitorConfig struct {
	// HealthSchedule is a cron expression; an empty value disables the job.
	HealthSchedule string
}

// CORSConfig holds CORS-specific configuration
type CORSConfig struct {
	AllowedOrigins []string
}

// Load reads configuration from environment variables and .env file
func Load() (*Config, error) {
	// Try to load .env file (ignore error if it doesn't exist)
	_ = godotenv.Load()

	config := &Config{
		Server: ServerConfig{
			Port: getEnv("PORT", "3000"),
			Host: getEnv("HOST", ""),
		},
		Database: DatabaseConfig{
			Path: getEnv("DB_PATH", defaultDatabasePath()),
		},
		Monitor: MonitorConfig{
			HealthSchedule: getEnv("HEALTH_SCHEDULE", "@every 15m"),
		},
		CORS: CORSConfig{
			AllowedOrigins: []string{
				"http://localhost:3000",
				"http://localhost",
			},
		},
	}

	// Combine host and port
	config.Server.Addr = fmt.Sprintf("%s:%s", config.Server.Host, config.Server.Port)

	return config, nil
}

// defaultDatabasePath returns the platform-dependent location where the
// trade-logger application keeps its transaction store.
func defaultDatabasePath() string {
	configDir, err := os.UserConfigDir()
	if err != nil {
		return "./transactions.db"
	}
	return filepath.Join(configDir, "trade-logger", "transactions.db")
}

// getEnv gets an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}
