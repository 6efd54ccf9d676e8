package config

import (
	"fmt"
	"log/slog"
	"net"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/mcoot/recruitment-api/internal/storage"
)

// Config aggregates the server settings read from the environment
type Config struct {
	Server  ServerConfig
	Storage StorageConfig
	Log     LogConfig
}

// Load reads configuration from environment variables
func Load() (*Config, error) {
	server, err := loadServerConfig()
	if err != nil {
		return nil, err
	}

	store, err := loadStorageConfig()
	if err != nil {
		return nil, err
	}

	log, err := loadLogConfig()
	if err != nil {
		return nil, err
	}

	return &Config{Server: server, Storage: store, Log: log}, nil
}

// ServerConfig describes the HTTP listener
type ServerConfig struct {
	Host            string
	Port            int
	ShutdownTimeout time.Duration
}

// loadServerConfig accepts PORT as either "8080" or "host:8080"
func loadServerConfig() (ServerConfig, error) {
	raw := getEnvOrDefault("PORT", "8080")

	host := ""
	portStr := raw
	if strings.Contains(raw, ":") {
		h, p, err := net.SplitHostPort(raw)
		if err != nil {
			return ServerConfig{}, fmt.Errorf("invalid PORT value %q: %w", raw, err)
		}
		host, portStr = h, p
	}

	port, err := strconv.Atoi(portStr)
	if err != nil || port < 0 || port > 65535 {
		return ServerConfig{}, fmt.Errorf("invalid PORT value: %q", raw)
	}

	shutdown, err := parseDurationEnv("SHUTDOWN_TIMEOUT", 30*time.Second)
	if err != nil {
		return ServerConfig{}, err
	}

	return ServerConfig{Host: host, Port: port, ShutdownTimeout: shutdown}, nil
}

// StorageConfig selects the registry backend
type StorageConfig struct {
	Type     string
	RedisURL string
}

func loadStorageConfig() (StorageConfig, error) {
	storageType := strings.ToLower(getEnvOrDefault("STORAGE_TYPE", storage.TypeMemory))
	redisURL := strings.TrimSpace(os.Getenv("REDIS_URL"))

	switch storageType {
	case storage.TypeMemory:
	case storage.TypeRedis:
		if redisURL == "" {
			return StorageConfig{}, fmt.Errorf("REDIS_URL is required when STORAGE_TYPE is %q", storage.TypeRedis)
		}
	default:
		return StorageConfig{}, fmt.Errorf("invalid STORAGE_TYPE value %q: must be %q or %q", storageType, storage.TypeMemory, storage.TypeRedis)
	}

	return StorageConfig{Type: storageType, RedisURL: redisURL}, nil
}

// LogConfig controls the application logger
type LogConfig struct {
	Level slog.Level
}

func loadLogConfig() (LogConfig, error) {
	raw := getEnvOrDefault("LOG_LEVEL", "info")

	var level slog.Level
	if err := level.UnmarshalText([]byte(raw)); err != nil {
		return LogConfig{}, fmt.Errorf("invalid LOG_LEVEL value %q: %w", raw, err)
	}
	return LogConfig{Level: level}, nil
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := strings.TrimSpace(os.Getenv(key)); value != "" {
		return value
	}
	return defaultValue
}

func parseDurationEnv(key string, defaultValue time.Duration) (time.Duration, error) {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return defaultValue, nil
	}

	val, err := time.ParseDuration(raw)
	if err != nil {
		return 0, fmt.Errorf("invalid %s value %q: %w", key, raw, err)
	}
	return val, nil
}
