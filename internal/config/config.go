package config

import (
	"os"

	"github.com/joho/godotenv"
)

// Default credentials used when INVENTORY_USERNAME / INVENTORY_PASSWORD are
// unset. They exist for local convenience only and must be overridden in any
// real deployment; main logs a warning whenever they are in effect.
const (
	DefaultUsername = "admin"
	DefaultPassword = "inventory123"
)

type Config struct {
	Port        string
	Environment string
	// SQLite Configuration
	SQLitePath string
	// JWT Configuration
	JWTSecret string
	// Login credentials for the single inventory user
	InventoryUsername string
	InventoryPassword string
}

func Load() *Config {
	// Load .env file if it exists
	_ = godotenv.Load()

	return &Config{
		Port:        getEnv("PORT", "8080"),
		Environment: getEnv("ENVIRONMENT", "development"),
		// SQLite Configuration
		SQLitePath: getEnv("SQLITE_PATH", "./electronics_inventory.db"),
		// JWT Configuration
		JWTSecret: getEnv("JWT_SECRET", "your-secret-key-change-in-production-min-32-chars"),
		// Login credentials
		InventoryUsername: getEnv("INVENTORY_USERNAME", DefaultUsername),
		InventoryPassword: getEnv("INVENTORY_PASSWORD", DefaultPassword),
	}
}

// UsingDefaultCredentials reports whether either credential fell back to the
// insecure built-in default.
func (c *Config) UsingDefaultCredentials() bool {
	return c.InventoryUsername == DefaultUsername || c.InventoryPassword == DefaultPassword
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
