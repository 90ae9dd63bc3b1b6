package config

import (
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"slices"
	"strconv"
	"strings"
	"time"

	"golang.org/x/text/language"

	"mindful/internal/log"
)

// Backend names accepted by DATA_BACKEND.
const (
	BackendMemory   = "memory"
	BackendFile     = "file"
	BackendSQLite   = "sqlite"
	BackendRedis    = "redis"
	BackendPostgres = "postgres"
)

var validBackends = []string{BackendMemory, BackendFile, BackendSQLite, BackendRedis, BackendPostgres}

type Config struct {
	// Storage
	DataBackend   string
	DataDir       string
	SQLiteDBPath  string
	RedisAddr     string
	RedisPassword string
	RedisDB       int
	PostgresURL   string
	KeyPrefix     string

	// Read cache (disabled when CacheTTL is 0)
	CacheTTL  time.Duration
	CacheSize int

	// Display
	Locale   string
	Currency string

	// Change feed (disabled when AMQPURL is empty)
	AMQPURL      string
	AMQPExchange string
	AMQPQueue    string

	LogLevel    string
	SeedOnStart bool
}

func Load() *Config {
	dataDir := getEnv("DATA_DIR", "./data")

	cfg := &Config{
		DataBackend:   getEnv("DATA_BACKEND", BackendFile),
		DataDir:       dataDir,
		SQLiteDBPath:  getEnv("SQLITE_DB_PATH", filepath.Join(dataDir, "mindful.db")),
		RedisAddr:     getEnv("REDIS_ADDR", "localhost:6379"),
		RedisPassword: getEnv("REDIS_PASSWORD", ""),
		RedisDB:       getEnvInt("REDIS_DB", 0),
		PostgresURL:   getEnv("POSTGRES_URL", ""),
		KeyPrefix:     getEnv("KEY_PREFIX", "msj"),

		CacheTTL:  getEnvDuration("CACHE_TTL", 0),
		CacheSize: getEnvInt("CACHE_SIZE", 64),

		Locale:   getEnv("LOCALE", "en-US"),
		Currency: getEnv("CURRENCY", "USD"),

		AMQPURL:      getEnv("AMQP_URL", ""),
		AMQPExchange: getEnv("AMQP_EXCHANGE", "mindful"),
		AMQPQueue:    getEnv("AMQP_QUEUE", "journal_changes"),

		LogLevel:    getEnv("LOG_LEVEL", "info"),
		SeedOnStart: getEnvBool("SEED_ON_START", true),
	}

	return cfg
}

// CacheEnabled reports whether reads should go through the LRU cache.
func (c *Config) CacheEnabled() bool {
	return c.CacheTTL > 0
}

// AMQPEnabled reports whether journal changes should be published.
func (c *Config) AMQPEnabled() bool {
	return c.AMQPURL != ""
}

// Validate validates the configuration and returns an error if invalid
func (c *Config) Validate() error {
	var errors []string

	// Validate data backend
	if !slices.Contains(validBackends, c.DataBackend) {
		errors = append(errors, fmt.Sprintf("invalid data backend '%s': must be one of %v", c.DataBackend, validBackends))
	}

	switch c.DataBackend {
	case BackendFile:
		if c.DataDir == "" {
			errors = append(errors, "data directory cannot be empty when using file backend")
		}
	case BackendSQLite:
		if c.SQLiteDBPath == "" {
			errors = append(errors, "SQLite database path cannot be empty when using sqlite backend")
		} else {
			// Check if directory exists or can be created
			dir := filepath.Dir(c.SQLiteDBPath)
			if dir != "." && dir != "" {
				if _, err := os.Stat(dir); os.IsNotExist(err) {
					if err := os.MkdirAll(dir, 0755); err != nil {
						errors = append(errors, fmt.Sprintf("cannot create SQLite database directory '%s': %v", dir, err))
					}
				}
			}
		}
	case BackendRedis:
		if c.RedisAddr == "" {
			errors = append(errors, "Redis address cannot be empty when using redis backend")
		}
		if c.RedisDB < 0 || c.RedisDB > 15 {
			errors = append(errors, fmt.Sprintf("invalid Redis database %d: must be between 0 and 15", c.RedisDB))
		}
	case BackendPostgres:
		if c.PostgresURL == "" {
			errors = append(errors, "POSTGRES_URL is required when using postgres backend")
		} else if parsedURL, err := url.Parse(c.PostgresURL); err != nil {
			errors = append(errors, fmt.Sprintf("invalid Postgres URL: %v", err))
		} else if parsedURL.Scheme != "postgres" && parsedURL.Scheme != "postgresql" {
			errors = append(errors, fmt.Sprintf("invalid Postgres URL scheme '%s': must be 'postgres' or 'postgresql'", parsedURL.Scheme))
		}
	}

	if c.KeyPrefix == "" || strings.ContainsAny(c.KeyPrefix, " \t\n") {
		errors = append(errors, fmt.Sprintf("invalid key prefix '%s': must be non-empty without whitespace", c.KeyPrefix))
	}

	// Validate cache settings
	if c.CacheTTL < 0 {
		errors = append(errors, fmt.Sprintf("invalid cache TTL %v: must not be negative", c.CacheTTL))
	}
	if c.CacheEnabled() {
		if c.CacheSize < 1 {
			errors = append(errors, fmt.Sprintf("invalid cache size %d: must be at least 1", c.CacheSize))
		} else if c.CacheSize > 10000 {
			errors = append(errors, fmt.Sprintf("invalid cache size %d: must be at most 10000", c.CacheSize))
		}
	}

	// Validate display settings
	if _, err := language.Parse(c.Locale); err != nil {
		errors = append(errors, fmt.Sprintf("invalid locale '%s': %v", c.Locale, err))
	}
	if c.Currency == "" {
		errors = append(errors, "currency code cannot be empty")
	}

	// Validate AMQP URL if provided
	if c.AMQPURL != "" {
		if parsedURL, err := url.Parse(c.AMQPURL); err != nil {
			errors = append(errors, fmt.Sprintf("invalid AMQP URL '%s': %v", c.AMQPURL, err))
		} else if parsedURL.Scheme != "amqp" && parsedURL.Scheme != "amqps" {
			errors = append(errors, fmt.Sprintf("invalid AMQP URL scheme '%s': must be 'amqp' or 'amqps'", parsedURL.Scheme))
		}

		if c.AMQPExchange == "" {
			errors = append(errors, "AMQP exchange name cannot be empty when AMQP URL is provided")
		}
		if c.AMQPQueue == "" {
			errors = append(errors, "AMQP queue name cannot be empty when AMQP URL is provided")
		}
	}

	if _, err := log.ParseLevel(c.LogLevel); err != nil {
		errors = append(errors, fmt.Sprintf("invalid log level '%s': %v", c.LogLevel, err))
	}

	// Return combined errors
	if len(errors) > 0 {
		return fmt.Errorf("configuration validation failed:\n- %s", strings.Join(errors, "\n- "))
	}

	return nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if i, err := strconv.Atoi(value); err == nil {
			return i
		}
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if b, err := strconv.ParseBool(value); err == nil {
			return b
		}
	}
	return defaultValue
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return defaultValue
}
