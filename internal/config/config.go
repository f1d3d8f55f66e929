package config

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
)

// Config holds all application configuration
type Config struct {
	Port            string
	TwilioAuthToken string
	Sheet           SheetConfig
	Database        DatabaseConfig
	Session         SessionConfig
}

// SheetConfig holds the Google Sheets log settings
type SheetConfig struct {
	SpreadsheetID   string
	SheetName       string
	CredentialsJSON string
}

// DatabaseConfig holds database connection settings
type DatabaseConfig struct {
	Host     string
	Port     string
	Name     string
	User     string
	Password string
}

// SessionConfig selects the session backend
type SessionConfig struct {
	Backend   string // "memory" or "redis"
	RedisAddr string
}

// Load reads configuration from environment variables
func Load() (*Config, error) {
	// Try to load .env file (ignore error if not exists)
	_ = godotenv.Load()

	cfg := &Config{
		Port:            getEnv("PORT", "8080"),
		TwilioAuthToken: os.Getenv("TWILIO_AUTH_TOKEN"),
		Sheet: SheetConfig{
			SpreadsheetID:   os.Getenv("SHEET_KEY"),
			SheetName:       getEnv("SHEET_NAME", "Log"),
			CredentialsJSON: os.Getenv("GOOGLE_CREDENTIALS_JSON"),
		},
		Database: DatabaseConfig{
			Host:     getEnv("DB_HOST", "localhost"),
			Port:     getEnv("DB_PORT", "5432"),
			Name:     getEnv("DB_NAME", "shopbot"),
			User:     getEnv("DB_USER", "shopbot"),
			Password: os.Getenv("DB_PASSWORD"),
		},
		Session: SessionConfig{
			Backend:   getEnv("SESSION_BACKEND", "memory"),
			RedisAddr: getEnv("REDIS_ADDR", "localhost:6379"),
		},
	}

	// Validate required fields
	if cfg.Sheet.SpreadsheetID == "" {
		return nil, fmt.Errorf("SHEET_KEY is required")
	}
	if cfg.Sheet.CredentialsJSON == "" {
		return nil, fmt.Errorf("GOOGLE_CREDENTIALS_JSON is required")
	}
	if cfg.Database.Password == "" {
		return nil, fmt.Errorf("DB_PASSWORD is required")
	}
	if cfg.Session.Backend != "memory" && cfg.Session.Backend != "redis" {
		return nil, fmt.Errorf("SESSION_BACKEND must be memory or redis, got %q", cfg.Session.Backend)
	}

	return cfg, nil
}

// DSN returns PostgreSQL connection string
func (c *Config) DSN() string {
	return fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
		c.Database.Host,
		c.Database.Port,
		c.Database.User,
		c.Database.Password,
		c.Database.Name,
	)
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
