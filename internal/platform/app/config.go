package app

import (
	"os"
	"strconv"
	"time"
)

type Config struct {
	Issuer   string        // Issuer claim of session tokens (default: bettoyou-platform)
	TokenTTL time.Duration // Session token lifetime (default: 1h)
	NumKeys  int           // Signing keys generated at startup (default: 2, min: 1, max: 10)

	StoreDriver  string // Record store backend: memory or sqlite (default: memory)
	DatabaseFile string // SQLite database file when StoreDriver is sqlite (default: platform.db)

	WorldIDAppID         string        // World ID application id (default: app_staging_123456789)
	WorldIDAction        string        // World ID action name (default: verify-user)
	MockFailureRate      float64       // Simulated verification failure probability (default: 0.1)
	MockLatency          time.Duration // Simulated verification round trip (default: 1s)
	SessionMaxAge        time.Duration // Idle sessions older than this are purged (default: 168h)
	Env                  string        // Environment (dev, staging, prod) (default: dev)
	LogLevel             string        // Log level (debug, info, warn, error) (default: info)
	LogFormat            string        // Log format (json, text) (default: json)
	Port                 int           // HTTP server port (default: 8080)
	ShutdownGracePeriod  time.Duration // Graceful shutdown timeout (default: 10s)
	HousekeepingInterval time.Duration // Housekeeping interval (default: 1h)
}

func LoadConfig() Config {
	return Config{
		Issuer:   getEnvOrDefault("TOKEN_ISSUER", "bettoyou-platform"),
		TokenTTL: getEnvDurationOrDefault("TOKEN_TTL", time.Hour),
		NumKeys:  getEnvIntOrDefault("SIGNING_KEYS", 2),

		StoreDriver:  getEnvOrDefault("STORE_DRIVER", "memory"),
		DatabaseFile: getEnvOrDefault("DATABASE_FILE", "platform.db"),

		WorldIDAppID:         getEnvOrDefault("WORLDID_APP_ID", "app_staging_123456789"),
		WorldIDAction:        getEnvOrDefault("WORLDID_ACTION", "verify-user"),
		MockFailureRate:      getEnvFloatOrDefault("WORLDID_MOCK_FAILURE_RATE", 0.1),
		MockLatency:          getEnvDurationOrDefault("WORLDID_MOCK_LATENCY", time.Second),
		SessionMaxAge:        getEnvDurationOrDefault("SESSION_MAX_AGE", 168*time.Hour),
		Env:                  getEnvOrDefault("ENV", "dev"),
		LogLevel:             getEnvOrDefault("LOG_LEVEL", "info"),
		LogFormat:            getEnvOrDefault("LOG_FORMAT", "json"),
		Port:                 getEnvIntOrDefault("PORT", 8080),
		ShutdownGracePeriod:  getEnvDurationOrDefault("SHUTDOWN_GRACE_PERIOD", 10*time.Second),
		HousekeepingInterval: getEnvDurationOrDefault("HOUSEKEEPING_INTERVAL", time.Hour),
	}
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvIntOrDefault(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	if intValue, err := strconv.Atoi(value); err == nil {
		return intValue
	}

	return defaultValue
}

func getEnvFloatOrDefault(key string, defaultValue float64) float64 {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	if f, err := strconv.ParseFloat(value, 64); err == nil {
		return f
	}

	return defaultValue
}

func getEnvDurationOrDefault(key string, defaultValue time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	// "1h", "30m", "90s"
	if duration, err := time.ParseDuration(value); err == nil {
		return duration
	}

	// Bare integers are minutes.
	if minutes, err := strconv.Atoi(value); err == nil {
		return time.Duration(minutes) * time.Minute
	}

	return defaultValue
}
