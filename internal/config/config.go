package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all configuration for the application
type Config struct {
	AppMode    string
	Port       string
	Database   DatabaseConfig
	Simulation SimulationConfig
	// FixturesPath points to a dataset written by `portalctl seed`. Empty
	// means the built-in fixtures.
	FixturesPath string
	// ResetSchedule is a cron expression for reseeding the store. Empty disables it.
	ResetSchedule      string
	RateLimitPerMinute int
}

// DatabaseConfig holds database configuration
type DatabaseConfig struct {
	Driver string // sqlite, mysql, postgres
	DSN    string
}

// SimulationConfig holds the network simulation defaults
type SimulationConfig struct {
	DefaultDelay time.Duration
}

// Load reads configuration from .env file and environment variables
func Load() (*Config, error) {
	// Load .env file (ignore error if file doesn't exist)
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found, using environment variables")
	}

	// trim spaces for Windows compatibility
	appMode := strings.TrimSpace(getEnv("APP_MODE", "dev"))
	if appMode != "dev" && appMode != "prod" {
		return nil, fmt.Errorf("invalid APP_MODE: '%s' (must be 'dev' or 'prod')", appMode)
	}

	database, err := loadDatabaseConfig()
	if err != nil {
		return nil, err
	}

	config := &Config{
		AppMode:            appMode,
		Port:               getEnv("PORT", "3000"),
		Database:           database,
		Simulation:         loadSimulationConfig(),
		FixturesPath:       getEnv("FIXTURES_PATH", ""),
		ResetSchedule:      strings.TrimSpace(getEnv("RESET_SCHEDULE", "")),
		RateLimitPerMinute: getEnvAsInt("RATE_LIMIT_PER_MINUTE", 0),
	}

	log.Printf("✅ Configuration loaded successfully [MODE: %s]", appMode)
	return config, nil
}

// loadDatabaseConfig loads the store backend. The default is a private
// in-memory SQLite database.
func loadDatabaseConfig() (DatabaseConfig, error) {
	driver := strings.ToLower(strings.TrimSpace(getEnv("DB_DRIVER", "sqlite")))
	switch driver {
	case "sqlite", "mysql", "mariadb", "postgres", "postgresql":
	default:
		return DatabaseConfig{}, fmt.Errorf("invalid DB_DRIVER: '%s' (must be sqlite, mysql or postgres)", driver)
	}

	dsn := getEnv("DB_DSN", "")
	if dsn == "" {
		if driver != "sqlite" {
			return DatabaseConfig{}, fmt.Errorf("DB_DSN is required for DB_DRIVER=%s", driver)
		}
		dsn = InMemoryDSN
	}

	return DatabaseConfig{Driver: driver, DSN: dsn}, nil
}

// loadSimulationConfig reads the default latency in milliseconds
func loadSimulationConfig() SimulationConfig {
	ms := 0
	for _, key := range []string{"SIM_DELAY_MS", "API_DELAY_MS", "API_LATENCY_MS"} {
		if value := os.Getenv(key); value != "" {
			if parsed, err := strconv.Atoi(strings.TrimSpace(value)); err == nil && parsed > 0 {
				ms = parsed
			}
			break
		}
	}
	return SimulationConfig{DefaultDelay: time.Duration(ms) * time.Millisecond}
}

// getEnv gets environment variable with default value
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvAsInt gets an environment variable as an integer or returns a default value
func getEnvAsInt(key string, defaultValue int) int {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.Atoi(strings.TrimSpace(valueStr))
	if err != nil {
		return defaultValue
	}
	return value
}

// IsDev returns true if running in development mode
func (c *Config) IsDev() bool {
	return c.AppMode == "dev"
}

// IsProd returns true if running in production mode
func (c *Config) IsProd() bool {
	return c.AppMode == "prod"
}

// GetAllowedOrigins returns allowed origins for CORS
func (c *Config) GetAllowedOrigins() string {
	origins := getEnv("ALLOWED_ORIGINS", "")
	if origins == "" {
		if c.IsDev() {
			return "*"
		}
		return "http://localhost:5173"
	}
	return origins
}
