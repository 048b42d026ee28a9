package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all configuration for the service.
type Config struct {
	// App
	AppEnv     string
	AppVersion string
	Port       string

	// Postgres. When DSN is empty the service falls back to SQLite at
	// SQLitePath, which keeps local development databaseless.
	PostgresDSN string
	SQLitePath  string

	// Redis. Empty address selects the in-memory cache.
	RedisAddr     string
	RedisPassword string

	// Risk engine
	AtRiskThreshold time.Duration

	// Enrichment scraper
	ArrivalsPageURL     string
	ScrapeCacheTTL      time.Duration
	ScrapeRatePerSecond float64
}

// Load reads configuration from the environment, with a .env file applied
// first when present.
func Load() *Config {
	godotenv.Load()

	return &Config{
		AppEnv:     getEnv("APP_ENV", "development"),
		AppVersion: getEnv("APP_VERSION", "1.0.0"),
		Port:       getEnv("PORT", "8080"),

		PostgresDSN: getEnv("POSTGRES_DSN", ""),
		SQLitePath:  getEnv("SQLITE_PATH", "transferdesk.db"),

		RedisAddr:     getEnv("REDIS_ADDR", ""),
		RedisPassword: getEnv("REDIS_PASSWORD", ""),

		AtRiskThreshold: time.Duration(getEnvAsInt("AT_RISK_THRESHOLD_MINUTES", 60)) * time.Minute,

		ArrivalsPageURL:     getEnv("ARRIVALS_PAGE_URL", ""),
		ScrapeCacheTTL:      time.Duration(getEnvAsInt("SCRAPE_CACHE_TTL_SECONDS", 120)) * time.Second,
		ScrapeRatePerSecond: getEnvAsFloat("SCRAPE_RATE_PER_SECOND", 0.5),
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value, err := strconv.Atoi(os.Getenv(key)); err == nil {
		return value
	}
	return defaultValue
}

func getEnvAsFloat(key string, defaultValue float64) float64 {
	if value, err := strconv.ParseFloat(os.Getenv(key), 64); err == nil {
		return value
	}
	return defaultValue
}
