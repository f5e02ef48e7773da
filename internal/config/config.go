// Package config loads configuration from environment variables.
package config

import (
	"os"
	"strconv"
	"time"
)

// Config holds runtime settings. Validation of required fields belongs to
// the command that needs them; the simulation core takes no configuration.
type Config struct {
	DatabaseURL  string
	RedisAddr    string
	RedisPrefix  string
	CacheTTL     time.Duration
	UserName     string
	CharacterID  string
	SnapshotTopK int
}

// Load reads env vars and applies defaults.
func Load() Config {
	cfg := Config{
		DatabaseURL: os.Getenv("DATABASE_URL"),
		RedisAddr:   os.Getenv("REDIS_ADDR"),
		RedisPrefix: os.Getenv("REDIS_PREFIX"),
		UserName:    os.Getenv("USER_NAME"),
		CharacterID: os.Getenv("CHARACTER_ID"),
	}

	cfg.CacheTTL = time.Duration(getEnvInt("CACHE_TTL_SECONDS", 0)) * time.Second
	cfg.SnapshotTopK = getEnvInt("SNAPSHOT_TOP_K", 5)

	if cfg.UserName == "" {
		cfg.UserName = "User"
	}

	return cfg
}

func getEnvInt(key string, defaultVal int) int {
	if val := os.Getenv(key); val != "" {
		if parsed, err := strconv.Atoi(val); err == nil {
			return parsed
		}
	}
	return defaultVal
}
