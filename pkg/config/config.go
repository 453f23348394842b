package config

import (
	"os"
	"strconv"
	"time"
)

// Config holds the application configuration.
type Config struct {
	ServerPort string
	LogLevel   string

	// Crawl behaviour.
	PageLoadTimeout  time.Duration
	PageSettle       time.Duration
	SearchPages      int
	ExcludeJobBoards bool

	// Optional archive of accepted records.
	ArchiveEnabled   bool
	PostgresHost     string
	PostgresPort     string
	PostgresUser     string
	PostgresPassword string
	PostgresDB       string

	// Optional cross-run visited cache.
	VisitedCacheEnabled bool
	VisitedExpiry       time.Duration
	RedisAddr           string
	RedisPassword       string
	RedisDB             int
}

// Load loads configuration from environment variables.
func Load() *Config {
	return &Config{
		ServerPort:       getEnv("SERVER_PORT", "8080"),
		LogLevel:         getEnv("LOG_LEVEL", "info"),
		PageLoadTimeout:  getEnvAsDuration("PAGE_LOAD_TIMEOUT_SECONDS", 10) * time.Second,
		PageSettle:       getEnvAsDuration("PAGE_SETTLE_MS", 2000) * time.Millisecond,
		SearchPages:      getEnvAsInt("SEARCH_PAGES", 3),
		ExcludeJobBoards: getEnvAsBool("EXCLUDE_JOB_BOARDS", true),

		ArchiveEnabled:   getEnvAsBool("ARCHIVE_ENABLED", false),
		PostgresHost:     getEnv("POSTGRES_HOST", "localhost"),
		PostgresPort:     getEnv("POSTGRES_PORT", "5432"),
		PostgresUser:     getEnv("POSTGRES_USER", "user"),
		PostgresPassword: getEnv("POSTGRES_PASSWORD", "password"),
		PostgresDB:       getEnv("POSTGRES_DB", "companies"),

		VisitedCacheEnabled: getEnvAsBool("VISITED_CACHE_ENABLED", false),
		VisitedExpiry:       getEnvAsDuration("VISITED_EXPIRY_HOURS", 48) * time.Hour,
		RedisAddr:           getEnv("REDIS_ADDR", "localhost:6379"),
		RedisPassword:       getEnv("REDIS_PASSWORD", ""),
		RedisDB:             getEnvAsInt("REDIS_DB", 0),
	}
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

func getEnvAsInt(key string, fallback int) int {
	valueStr := getEnv(key, "")
	if value, err := strconv.Atoi(valueStr); err == nil {
		return value
	}
	return fallback
}

func getEnvAsBool(key string, fallback bool) bool {
	valueStr := getEnv(key, "")
	if value, err := strconv.ParseBool(valueStr); err == nil {
		return value
	}
	return fallback
}

func getEnvAsDuration(key string, fallback int) time.Duration {
	return time.Duration(getEnvAsInt(key, fallback))
}
