package config

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
)

// requiredEnv are the variables Load validates; tests reset them around runs
var requiredEnv = []string{
	"SHEET_KEY",
	"GOOGLE_CREDENTIALS_JSON",
	"DB_PASSWORD",
	"TWILIO_AUTH_TOKEN",
	"SESSION_BACKEND",
	"DB_HOST", "DB_PORT", "DB_NAME", "DB_USER",
	"PORT", "SHEET_NAME", "REDIS_ADDR",
}

func withCleanEnv(t *testing.T) {
	t.Helper()
	for _, key := range requiredEnv {
		if original, ok := os.LookupEnv(key); ok {
			t.Setenv(key, original)
		}
		os.Unsetenv(key)
	}
}

func setRequired(t *testing.T) {
	t.Helper()
	t.Setenv("SHEET_KEY", "sheet-id")
	t.Setenv("GOOGLE_CREDENTIALS_JSON", `{"type":"service_account"}`)
	t.Setenv("DB_PASSWORD", "test_db_password")
}

func TestGetEnv(t *testing.T) {
	tests := []struct {
		name         string
		key          string
		defaultValue string
		setEnv       bool
		envValue     string
		expected     string
	}{
		{
			name:         "env variable set",
			key:          "TEST_KEY",
			defaultValue: "default",
			setEnv:       true,
			envValue:     "custom",
			expected:     "custom",
		},
		{
			name:         "env variable not set",
			key:          "TEST_KEY_NOT_SET",
			defaultValue: "default",
			setEnv:       false,
			expected:     "default",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.setEnv {
				t.Setenv(tt.key, tt.envValue)
			}

			result := getEnv(tt.key, tt.defaultValue)
			assert.Equal(t, tt.expected, result)
		})
	}
}

func TestConfig_DSN(t *testing.T) {
	cfg := &Config{
		Database: DatabaseConfig{
			Host:     "localhost",
			Port:     "5432",
			User:     "testuser",
			Password: "testpass",
			Name:     "testdb",
		},
	}

	dsn := cfg.DSN()
	expected := "host=localhost port=5432 user=testuser password=testpass dbname=testdb sslmode=disable"
	assert.Equal(t, expected, dsn)
}

func TestLoad_MissingSheetKey(t *testing.T) {
	withCleanEnv(t)
	t.Setenv("GOOGLE_CREDENTIALS_JSON", "{}")
	t.Setenv("DB_PASSWORD", "pass")

	cfg, err := Load()
	assert.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "SHEET_KEY")
}

func TestLoad_MissingCredentials(t *testing.T) {
	withCleanEnv(t)
	t.Setenv("SHEET_KEY", "sheet-id")
	t.Setenv("DB_PASSWORD", "pass")

	cfg, err := Load()
	assert.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "GOOGLE_CREDENTIALS_JSON")
}

func TestLoad_MissingDBPassword(t *testing.T) {
	withCleanEnv(t)
	t.Setenv("SHEET_KEY", "sheet-id")
	t.Setenv("GOOGLE_CREDENTIALS_JSON", "{}")

	cfg, err := Load()
	assert.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "DB_PASSWORD")
}

func TestLoad_InvalidSessionBackend(t *testing.T) {
	withCleanEnv(t)
	setRequired(t)
	t.Setenv("SESSION_BACKEND", "dynamo")

	cfg, err := Load()
	assert.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "SESSION_BACKEND")
}

func TestLoad_WithDefaults(t *testing.T) {
	withCleanEnv(t)
	setRequired(t)

	cfg, err := Load()
	assert.NoError(t, err)
	assert.NotNil(t, cfg)
	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "sheet-id", cfg.Sheet.SpreadsheetID)
	assert.Equal(t, "Log", cfg.Sheet.SheetName)
	assert.Equal(t, "localhost", cfg.Database.Host)
	assert.Equal(t, "5432", cfg.Database.Port)
	assert.Equal(t, "shopbot", cfg.Database.Name)
	assert.Equal(t, "shopbot", cfg.Database.User)
	assert.Equal(t, "memory", cfg.Session.Backend)
	assert.Equal(t, "localhost:6379", cfg.Session.RedisAddr)
	assert.Empty(t, cfg.TwilioAuthToken)
}
