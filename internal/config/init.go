package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

type Config struct {
	Server struct {
		Host            string
		Port            string
		Debug           bool
		Version         string
		ShutdownTimeout time.Duration
	}
	Activity struct {
		DSN           string // MySQL DSN for the audit table; empty disables the sink
		BatchSize     int
		QueueSize     int
		FlushInterval time.Duration
	}
	Redis struct {
		Addr     string // empty disables the recent-activity feed
		Password string
		DB       int
		FeedSize int64
	}
}

// Addr is the listen address of the HTTP server.
func (c *Config) Addr() string {
	return c.Server.Host + ":" + c.Server.Port
}

// Load reads an optional .env file and then the environment.
// Invalid numbers fall back to their defaults; the returned warnings say which.
func Load() (*Config, []string) {
	var warnings []string
	if err := godotenv.Load(); err != nil {
		warnings = append(warnings, "No .env file found, using system environment variables")
	}

	cfg := &Config{}
	cfg.Server.Host = getEnv("HOST", "0.0.0.0")
	cfg.Server.Port = getEnv("PORT", "5000")
	cfg.Server.Debug = getBool("APP_DEBUG", true, &warnings)
	cfg.Server.Version = getEnv("APP_VERSION", "1.0.0")
	cfg.Server.ShutdownTimeout = getDuration("SHUTDOWN_TIMEOUT", 10*time.Second, &warnings)

	cfg.Activity.DSN = os.Getenv("ACTIVITY_DB_DSN")
	cfg.Activity.BatchSize = getInt("ACTIVITY_BATCH_SIZE", 100, &warnings)
	cfg.Activity.QueueSize = getInt("ACTIVITY_QUEUE_SIZE", 1024, &warnings)
	cfg.Activity.FlushInterval = getDuration("ACTIVITY_FLUSH_INTERVAL", 2*time.Second, &warnings)

	cfg.Redis.Addr = os.Getenv("REDIS_ADDR")
	cfg.Redis.Password = os.Getenv("REDIS_PASSWORD")
	cfg.Redis.DB = getInt("REDIS_DB", 0, &warnings)
	cfg.Redis.FeedSize = int64(getInt("ACTIVITY_FEED_SIZE", 200, &warnings))

	return cfg, warnings
}

// LogWarnings reports what Load fell back on.
func LogWarnings(logger *zap.Logger, warnings []string) {
	for _, w := range warnings {
		logger.Warn(w)
	}
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists && value != "" {
		return value
	}
	return fallback
}

func getInt(key string, fallback int, warnings *[]string) int {
	raw, exists := os.LookupEnv(key)
	if !exists || raw == "" {
		return fallback
	}
	v, err := strconv.Atoi(raw)
	if err != nil || v < 0 {
		*warnings = append(*warnings, "Invalid "+key+" "+strconv.Quote(raw)+", using default "+strconv.Itoa(fallback))
		return fallback
	}
	return v
}

func getBool(key string, fallback bool, warnings *[]string) bool {
	raw, exists := os.LookupEnv(key)
	if !exists || raw == "" {
		return fallback
	}
	v, err := strconv.ParseBool(raw)
	if err != nil {
		*warnings = append(*warnings, "Invalid "+key+" "+strconv.Quote(raw)+", using default "+strconv.FormatBool(fallback))
		return fallback
	}
	return v
}

func getDuration(key string, fallback time.Duration, warnings *[]string) time.Duration {
	raw, exists := os.LookupEnv(key)
	if !exists || raw == "" {
		return fallback
	}
	v, err := time.ParseDuration(raw)
	if err != nil || v <= 0 {
		*warnings = append(*warnings, "Invalid "+key+" "+strconv.Quote(raw)+", using default "+fallback.String())
		return fallback
	}
	return v
}
