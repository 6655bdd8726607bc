package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds all application configuration.
type Config struct {
	Database DatabaseConfig
	HTTP     HTTPConfig
	Auth     AuthConfig
}

// DatabaseConfig contains database-related settings.
type DatabaseConfig struct {
	Path string // SQLite database file path
}

// HTTPConfig contains HTTP server settings.
type HTTPConfig struct {
	Address string // listen address (e.g., ":8080")
}

// AuthConfig contains authentication settings.
type AuthConfig struct {
	JWTSecret  string // JWT signing secret
	TTLMinutes int    // token lifetime
}

// Load loads configuration from environment variables (optionally from a
// .env file if present) with sensible defaults. JWT_SECRET is mandatory.
func Load() (*Config, error) {
	cfg := load()
	if cfg.Auth.JWTSecret == "" {
		return nil, fmt.Errorf("JWT_SECRET environment variable is not set; required for production")
	}
	return cfg, nil
}

// LoadWithDefaults is like Load but uses a safe default for JWT_SECRET in
// development. WARNING: only use in development.
func LoadWithDefaults() (*Config, error) {
	cfg := load()
	if cfg.Auth.JWTSecret == "" {
		cfg.Auth.JWTSecret = "dev-secret-change-me"
	}
	return cfg, nil
}

func load() *Config {
	// .env is optional; ignore a missing file.
	_ = godotenv.Load()
	return &Config{
		Database: DatabaseConfig{
			Path: getEnv("DB_PATH", "shop.db"),
		},
		HTTP: HTTPConfig{
			Address: getEnv("HTTP_ADDRESS", ":8080"),
		},
		Auth: AuthConfig{
			JWTSecret:  getEnv("JWT_SECRET", ""),
			TTLMinutes: getEnvInt("JWT_TTL_MINUTES", 60),
		},
	}
}

// getEnv retrieves an environment variable with a default fallback.
func getEnv(key, defaultVal string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultVal
}

// getEnvInt retrieves an environment variable as an integer with a default fallback.
func getEnvInt(key string, defaultVal int) int {
	if value, exists := os.LookupEnv(key); exists {
		if n, err := strconv.Atoi(value); err == nil {
			return n
		}
	}
	return defaultVal
}

// String returns a string representation of the config (sensitive values are masked).
func (c *Config) String() string {
	return fmt.Sprintf("Config{DB: %s, HTTP: %s, Auth: *** (masked) ***}", c.Database.Path, c.HTTP.Address)
}
