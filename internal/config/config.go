// Package config reads daemon configuration from the environment and
// sets up structured logging.
package config

import (
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"
)

// Config holds all daemon configuration values.
type Config struct {
	// HTTP API
	Port     int
	AdminKey string // Bearer token for POST endpoints. Empty = POST disabled.
	RelayKey string // Bearer token for the SSE stream. Empty = streaming disabled.

	// Simulation
	Seed         int64         // Disturbance walk seed (0 = random)
	TickInterval time.Duration // Base engine tick interval
	AutoMode     bool          // Start with feed disturbance enabled

	// Operating targets
	TargetsFile string // Optional YAML override of the default bands

	// Logging
	LogFile  string
	LogLevel slog.Level
}

// Load reads configuration from environment variables, with defaults
// suitable for local operation.
func Load() Config {
	return Config{
		Port:     getEnvInt("FLOATSIM_PORT", 8080),
		AdminKey: os.Getenv("FLOATSIM_ADMIN_KEY"),
		RelayKey: os.Getenv("FLOATSIM_RELAY_KEY"),

		Seed:         int64(getEnvInt("FLOATSIM_SEED", 0)),
		TickInterval: time.Duration(getEnvInt("FLOATSIM_TICK_MS", 1000)) * time.Millisecond,
		AutoMode:     getEnv("FLOATSIM_MODE", "auto") == "auto",

		TargetsFile: os.Getenv("FLOATSIM_TARGETS"),

		LogFile:  getEnv("FLOATSIM_LOG_FILE", ""),
		LogLevel: parseLogLevel(getEnv("FLOATSIM_LOG_LEVEL", "INFO")),
	}
}

func getEnv(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}

func getEnvInt(key string, defaultVal int) int {
	if val := os.Getenv(key); val != "" {
		if n, err := strconv.Atoi(val); err == nil {
			return n
		}
	}
	return defaultVal
}

func parseLogLevel(s string) slog.Level {
	switch strings.ToUpper(s) {
	case "DEBUG":
		return slog.LevelDebug
	case "INFO":
		return slog.LevelInfo
	case "WARN", "WARNING":
		return slog.LevelWarn
	case "ERROR":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
